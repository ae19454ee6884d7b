// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package txn implements the scoped, exclusive transaction a producer
// opens to mutate the node tree and/or element attributes, then
// re-render and publish the resulting delta events. A transaction
// always re-renders the whole tree from its root and diffs the two
// complete render-tree snapshots, rather than reconciling incrementally,
// so every mutation's effect is captured regardless of how many nodes
// it touches.
package txn

import (
	"log/slog"
	"sync"

	"cogentcore.org/scene/element"
	"cogentcore.org/scene/events"
	"cogentcore.org/scene/mesh"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/tree"
	"cogentcore.org/scene/value"
)

// Source is the state a Transaction reads and mutates: the node tree
// root, the engine's current render tree, and the mesh provider used
// to triangulate parametric shapes during render. Implemented by
// *engine.Engine; kept as an interface here so txn never imports
// engine, which would be a cycle (engine constructs Transactions).
type Source interface {
	Root() *tree.Node
	RenderTree() *rendertree.Tree
	SetRenderTree(*rendertree.Tree)
	EventServer() *events.Server
	Meshes() mesh.Provider
}

// Transaction is the scoped, exclusive handle [Begin] returns. The
// exclusive lock it holds is a plain, non-reentrant [sync.Mutex], so a
// caller that opens a second Transaction on the same goroutine before
// ending the first deadlocks; nesting transactions is not supported.
type Transaction struct {
	src    Source
	mu     *sync.Mutex
	before *rendertree.Tree
	ended  bool
}

// Begin acquires mu (the owner's exclusive transaction lock) and
// snapshots src's current render tree by value. Callers must call
// [Transaction.End] exactly once, typically via defer.
func Begin(src Source, mu *sync.Mutex) *Transaction {
	mu.Lock()
	return &Transaction{src: src, mu: mu, before: src.RenderTree().Clone()}
}

// End releases the transaction lock. It is safe to call more than
// once; only the first call has effect.
func (t *Transaction) End() {
	if t.ended {
		return
	}
	t.ended = true
	t.mu.Unlock()
}

// Render triggers a full re-render of src's node tree from its root
// into a fresh render tree, diffs that fresh tree against the
// snapshot taken at [Begin], and appends one [events.Event] per
// [rendertree.Diff]. It returns false, appending nothing, if the event
// server has been dropped (no listener can still observe the stream);
// this is an expected, silent outcome, not an error.
func (t *Transaction) Render() bool {
	fresh := rendertree.New()
	if err := t.src.Root().Render(value.NewScope(), fresh, t.src.Meshes()); err != nil {
		slog.Error("txn.Transaction.Render: render aborted", "err", err)
		return false
	}

	diffs := fresh.DifferencesFrom(t.before)
	evs := make([]events.Event, 0, len(diffs))
	for _, d := range diffs {
		g, _ := fresh.Get(d.Path)
		evs = append(evs, events.FromDiff(d, g))
	}

	ok := t.src.EventServer().TryAppend(evs...)
	if !ok {
		slog.Warn("txn.Transaction.Render: event server gone, events dropped", "count", len(evs))
		return false
	}
	t.src.SetRenderTree(fresh)
	return true
}

// ConstructChild is a convenience wrapper that appends a named child
// under the node at p (or the root, if p is empty) without needing
// direct access to the node tree. It does not itself render.
func (t *Transaction) ConstructChild(p []string, name string, el element.Element) (*tree.Node, error) {
	parent, err := t.findOrRoot(p)
	if err != nil {
		return nil, err
	}
	return parent.ConstructChild(name, el)
}

// ConstructTemplate mirrors [Transaction.ConstructChild] for
// templates.
func (t *Transaction) ConstructTemplate(p []string, name string, el element.Element) (*tree.Node, error) {
	parent, err := t.findOrRoot(p)
	if err != nil {
		return nil, err
	}
	return parent.ConstructTemplate(name, el)
}

// MakeTemplate materializes the template named templateName on the
// node at p as a new child named newName.
func (t *Transaction) MakeTemplate(p []string, templateName, newName string) (*tree.Node, error) {
	parent, err := t.findOrRoot(p)
	if err != nil {
		return nil, err
	}
	return parent.TryMakeTemplate(templateName, newName)
}

// RemoveChild removes the named child of the node at p.
func (t *Transaction) RemoveChild(p []string, name string) error {
	parent, err := t.findOrRoot(p)
	if err != nil {
		return err
	}
	parent.RemoveChild(name)
	return nil
}

// FindNode returns the node at p, or the root if p is empty.
func (t *Transaction) FindNode(p []string) (*tree.Node, error) {
	return t.findOrRoot(p)
}

func (t *Transaction) findOrRoot(p []string) (*tree.Node, error) {
	root := t.src.Root()
	if len(p) == 0 {
		return root, nil
	}
	full, err := newPath(p)
	if err != nil {
		return nil, err
	}
	node, ok := root.FindDescendant(full)
	if !ok {
		return nil, errNodeNotFound(full.String())
	}
	return node, nil
}
