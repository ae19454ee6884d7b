// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements the node tree: a hierarchy of named nodes,
// each owning an [element.Element] and an ordered list of children and
// templates, whose render pass descends the hierarchy publishing
// ancestor values and writing positioned geometry into a
// [rendertree.Tree]. Templates cover this tree's one incremental
// construction need, letting a node stamp out a new child from a
// previously registered prototype without re-specifying its element.
package tree

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jinzhu/copier"

	"cogentcore.org/scene/base/slicesx"
	"cogentcore.org/scene/element"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/mesh"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/value"
)

// ErrDuplicateChildName is returned by [Node.ConstructChild] when name
// collides with an existing child or template.
var ErrDuplicateChildName = errors.New("tree: duplicate child name")

// ErrUnknownTemplate is returned by [Node.TryMakeTemplate] when no
// template with the given name exists on the node.
var ErrUnknownTemplate = errors.New("tree: unknown template")

// template is a prototype subtree stored on a [Node], along with the
// child-list index it was recorded at when added.
type template struct {
	Name           string
	Root           *Node
	InsertionIndex int
}

// Node owns an [element.Element] and an ordered list of child nodes
// and templates. Nodes are always constructed through [New] or a
// parent's Construct* methods, which return the same shared pointer
// the tree itself holds -- external callers may keep that pointer
// (to re-apply attributes, say) without affecting tree ownership.
type Node struct {
	Name     string
	Element  element.Element
	Parent   *Node
	Children []*Node

	templates []*template
}

// New returns a new, unparented root node named name.
func New(name string, el element.Element) *Node {
	return &Node{Name: name, Element: el}
}

// Path returns the dot-separated path from the root to n.
func (n *Node) Path() path.Path {
	var names []string
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		names = append([]string{cur.Name}, names...)
	}
	p, err := path.New(names...)
	if err != nil {
		// Names are validated at construction time; this can only
		// happen if a caller builds a Node by hand with an invalid
		// name, which is a programmer error, not a runtime condition.
		panic(fmt.Sprintf("tree: node has invalid path: %v", err))
	}
	return p
}

// childNamed looks up a child by name with [slicesx.Search], starting
// from the middle of the slice: a node's children list is typically
// short, but the bidirectional probe costs nothing when it isn't.
func (n *Node) childNamed(name string) (*Node, int) {
	i := slicesx.Search(n.Children, func(c *Node) bool { return c.Name == name })
	if i < 0 {
		return nil, -1
	}
	return n.Children[i], i
}

func (n *Node) templateNamed(name string) (*template, int) {
	i := slicesx.Search(n.templates, func(t *template) bool { return t.Name == name })
	if i < 0 {
		return nil, -1
	}
	return n.templates[i], i
}

func (n *Node) nameTaken(name string) bool {
	if _, idx := n.childNamed(name); idx != -1 {
		return true
	}
	if _, idx := n.templateNamed(name); idx != -1 {
		return true
	}
	return false
}

// ConstructChild appends a new child named name, owning el, to n's
// children. name must not collide with an existing child or template
// name.
func (n *Node) ConstructChild(name string, el element.Element) (*Node, error) {
	if n.nameTaken(name) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateChildName, name)
	}
	c := New(name, el)
	c.Parent = n
	n.Children = append(n.Children, c)
	return c, nil
}

// ConstructTemplate appends a new template named name, owning el, to
// n's template list, recording its insertion index as n's current
// child count.
func (n *Node) ConstructTemplate(name string, el element.Element) (*Node, error) {
	if n.nameTaken(name) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateChildName, name)
	}
	root := New(name, el)
	n.templates = append(n.templates, &template{Name: name, Root: root, InsertionIndex: len(n.Children)})
	return root, nil
}

// computeChildInsertionIndex returns the index at which a
// materialization of templateName should be spliced into n.Children.
func (n *Node) computeChildInsertionIndex(templateName string) (int, error) {
	t, _ := n.templateNamed(templateName)
	if t == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTemplate, templateName)
	}
	return t.InsertionIndex, nil
}

// TryMakeTemplate clones the template subtree named templateName,
// renames its root to newName, parents the clone to n, and splices it
// into n.Children at that template's recorded insertion index,
// bumping every template's insertion index at or after that position
// by one.
func (n *Node) TryMakeTemplate(templateName, newName string) (*Node, error) {
	if n.nameTaken(newName) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateChildName, newName)
	}
	idx, err := n.computeChildInsertionIndex(templateName)
	if err != nil {
		return nil, err
	}
	t, _ := n.templateNamed(templateName)

	clone, err := cloneSubtree(t.Root)
	if err != nil {
		return nil, fmt.Errorf("tree: cloning template %q: %w", templateName, err)
	}
	clone.Name = newName
	clone.Parent = n

	n.Children = append(n.Children, nil)
	copy(n.Children[idx+1:], n.Children[idx:])
	n.Children[idx] = clone

	for _, ot := range n.templates {
		if ot.InsertionIndex >= idx {
			ot.InsertionIndex++
		}
	}
	return clone, nil
}

// cloneSubtree deep-copies root and every descendant via
// [github.com/jinzhu/copier]: the element held by each node is copied
// as a value, so clones never alias the original's feature state.
func cloneSubtree(root *Node) (*Node, error) {
	clone := &Node{Name: root.Name}
	dst := reflect.New(reflect.TypeOf(root.Element).Elem())
	if err := copier.CopyWithOption(dst.Interface(), root.Element, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	clone.Element, _ = dst.Interface().(element.Element)
	clone.Children = make([]*Node, len(root.Children))
	for i, c := range root.Children {
		cc, err := cloneSubtree(c)
		if err != nil {
			return nil, err
		}
		cc.Parent = clone
		clone.Children[i] = cc
	}
	return clone, nil
}

// RemoveChild removes the child named name, if present, and
// decrements every template's insertion index that was at or past its
// position.
func (n *Node) RemoveChild(name string) {
	c, idx := n.childNamed(name)
	if c == nil {
		return
	}
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	for _, t := range n.templates {
		if t.InsertionIndex > idx {
			t.InsertionIndex--
		}
	}
}

// FindDescendant returns the node at p relative to n, recursively
// descending by name. p being a single part equal to n's own name
// returns n itself.
func (n *Node) FindDescendant(p path.Path) (*Node, bool) {
	if p.Len() == 1 && p.Part(0) == n.Name {
		return n, true
	}
	if p.Len() == 0 {
		return nil, false
	}
	cur := n
	for i := 0; i < p.Len(); i++ {
		next, idx := cur.childNamed(p.Part(i))
		if idx == -1 {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Render descends the hierarchy from n: it publishes the hierarchical
// values every node gets for free (children, the number of direct
// children; equal, 100/children or 0), publishes n's own feature
// values into scope, renders every child with a copy of scope, then
// renders n's own element. If the element left no geometry at n's
// path, one is synthesized from the union of its direct children's
// positioned bounds, matching the layout-only elements' contract.
func (n *Node) Render(scope *value.Scope, rt *rendertree.Tree, meshes mesh.Provider) error {
	numChildren := len(n.Children)
	scope.SetInt("children", numChildren)
	if numChildren > 0 {
		scope.SetFloat("equal", 100/float32(numChildren))
	} else {
		scope.SetFloat("equal", 0)
	}

	if err := n.Element.UpdateAncestorValues(scope); err != nil {
		return fmt.Errorf("tree: %s: %w", n.Path(), err)
	}

	childPaths := make([]path.Path, len(n.Children))
	for i, c := range n.Children {
		if err := c.Render(scope.Copy(), rt, meshes); err != nil {
			return err
		}
		childPaths[i] = c.Path()
	}

	p := n.Path()
	ctx := &element.Context{Tree: rt, Children: childPaths, Meshes: meshes}
	if err := n.Element.Render(p, ctx); err != nil {
		return fmt.Errorf("tree: %s: %w", p, err)
	}

	if rt.NeedsUpdating(p) {
		var union math32.Bounds
		for _, cp := range childPaths {
			union = union.Union(rt.PositionedBoundsOf(cp))
		}
		g := rendertree.NewGeometry()
		g.SetDeclaredBounds(math32.Bounds{End: union.Lengths()})
		g.SetPos(union.Base)
		rt.Update(p, g)
	}
	return nil
}
