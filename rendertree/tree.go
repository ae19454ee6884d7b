// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertree

import (
	"sort"

	"cogentcore.org/scene/base/ordmap"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
)

// Tree is the render tree: a path-keyed set of [Geometry] values that
// preserves insertion order for stable iteration of a path's direct
// children, backed by [ordmap.Map]'s slice-plus-index structure.
type Tree struct {
	entries *ordmap.Map[string, *Geometry]
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{entries: ordmap.New[string, *Geometry]()}
}

// NeedsUpdating reports whether p has no geometry recorded yet.
func (t *Tree) NeedsUpdating(p path.Path) bool {
	_, ok := t.entries.ValueByKeyTry(p.String())
	return !ok
}

// Update records g at p, appending to the insertion-order list if p
// is new, or replacing the existing entry in place otherwise.
func (t *Tree) Update(p path.Path, g *Geometry) {
	t.entries.Add(p.String(), g)
}

// Get returns the geometry at p, if any.
func (t *Tree) Get(p path.Path) (*Geometry, bool) {
	return t.entries.ValueByKeyTry(p.String())
}

// Delete removes p's entry, if present.
func (t *Tree) Delete(p path.Path) {
	t.entries.DeleteKey(p.String())
}

// Len returns the number of paths recorded.
func (t *Tree) Len() int { return t.entries.Len() }

// Paths returns every recorded path, in insertion order.
func (t *Tree) Paths() []path.Path {
	out := make([]path.Path, 0, t.entries.Len())
	for _, kv := range t.entries.Order {
		p, err := path.Parse(kv.Key)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Children returns the direct children of parent among the recorded
// paths, in insertion order.
func (t *Tree) Children(parent path.Path) []path.Path {
	var out []path.Path
	for _, p := range t.Paths() {
		if p.IsChildOf(parent) {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy of t, suitable as a pre-render snapshot
// to diff against after the render completes.
func (t *Tree) Clone() *Tree {
	out := New()
	for _, kv := range t.entries.Order {
		out.entries.Add(kv.Key, kv.Value.Clone())
	}
	return out
}

// PositionedBoundsOf returns the union of the positioned bounds of p
// and every recorded path that is p or a descendant of p.
func (t *Tree) PositionedBoundsOf(p path.Path) math32.Bounds {
	var b math32.Bounds
	for _, kv := range t.entries.Order {
		cp, err := path.Parse(kv.Key)
		if err != nil {
			continue
		}
		if cp.Equal(p) || cp.IsDescendantOf(p) {
			b = b.Union(kv.Value.PositionedBounds())
		}
	}
	return b
}

// inclusiveDescendants returns every path equal to or descending from
// p, excluding any path that is p or a descendant of a path in
// exclude.
func (t *Tree) inclusiveDescendants(p path.Path, exclude []path.Path) []path.Path {
	var out []path.Path
	for _, cp := range t.Paths() {
		if !(cp.Equal(p) || cp.IsDescendantOf(p)) {
			continue
		}
		excluded := false
		for _, ex := range exclude {
			if cp.Equal(ex) || cp.IsDescendantOf(ex) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, cp)
		}
	}
	return out
}

// MoveParentAndDescendantsBy adds delta to the position of the
// geometry at p and every strict descendant of p, excluding any
// subtree rooted at a path in exclude.
func (t *Tree) MoveParentAndDescendantsBy(p path.Path, delta math32.Point, exclude ...path.Path) {
	for _, cp := range t.inclusiveDescendants(p, exclude) {
		g, ok := t.Get(cp)
		if !ok {
			continue
		}
		g.OffsetPos(delta)
	}
}

// ScaleParentAndDescendantsBy calls [Geometry.ScaleBy] on the geometry
// at p and every descendant of p.
func (t *Tree) ScaleParentAndDescendantsBy(p path.Path, f math32.Point) {
	for _, cp := range t.inclusiveDescendants(p, nil) {
		g, ok := t.Get(cp)
		if !ok {
			continue
		}
		g.ScaleBy(f)
	}
}

// RotateParentAndDescendantsInPlace rotates the geometry at p and
// every descendant of p around the center of p's positioned bounds,
// then translates all of them back so the pre-rotation bottom-left of
// p's positioned bounds is unchanged.
func (t *Tree) RotateParentAndDescendantsInPlace(p path.Path, r math32.Rotation) {
	before := t.PositionedBoundsOf(p)
	center := before.Center()
	descendants := t.inclusiveDescendants(p, nil)
	for _, cp := range descendants {
		g, ok := t.Get(cp)
		if !ok {
			continue
		}
		g.RotateAround(center, r)
	}
	after := t.PositionedBoundsOf(p)
	delta := before.Base.Sub(after.Base)
	for _, cp := range descendants {
		g, ok := t.Get(cp)
		if !ok {
			continue
		}
		g.OffsetPos(delta)
	}
}

// InvalidateParentAndChildPos wipes the entire render tree. This
// mirrors the reference implementation's current (coarse) behavior;
// a subtree-scoped erase is an open optimization, not yet done here.
func (t *Tree) InvalidateParentAndChildPos(p path.Path) {
	_ = p
	t.entries = ordmap.New[string, *Geometry]()
}

// sortedPaths returns t's paths sorted by [path.Compare].
func (t *Tree) sortedPaths() []path.Path {
	ps := t.Paths()
	sort.Slice(ps, func(i, j int) bool { return ps[i].Compare(ps[j]) < 0 })
	return ps
}
