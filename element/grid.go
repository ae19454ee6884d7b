// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/value"
	"cogentcore.org/scene/vshape"
)

// Grid arranges its children into a square grid of side
// ⌈√n⌉, each cell sized to its column's maximum width and its row's
// maximum depth over the children assigned to it. It is layout-only.
type Grid struct {
	Spacing *feature.Spacing
}

// NewGrid returns a Grid with zero spacing.
func NewGrid() *Grid { return &Grid{Spacing: feature.NewSpacing()} }

// UpdateFromAttributes implements [Element].
func (g *Grid) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, g.Spacing)
}

// Attributes implements [Element].
func (g *Grid) Attributes() map[string]string { return collectAttributes(g.Spacing) }

// UpdateAncestorValues implements [Element].
func (g *Grid) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, g.Spacing)
}

// Render implements [Element]: it assigns each child in order to a
// cell of a ⌈√n⌉×⌈√n⌉ grid, row-major, measures every cell against
// its row's depth and column's width, then moves each child to its
// cell's offset. It writes no geometry of its own.
func (g *Grid) Render(p path.Path, ctx *Context) error {
	n := len(ctx.Children)
	if n == 0 {
		return nil
	}
	side := vshape.Diameter(n)
	grid := vshape.NewGrid(side, side, g.Spacing.Amount.Value)

	cellOf := func(i int) (row, col int) { return i / side, i % side }

	for i, c := range ctx.Children {
		row, col := cellOf(i)
		b := ctx.Tree.PositionedBoundsOf(c)
		grid.Measure(vshape.Cell{Row: row, Col: col, Width: b.Length(math32.X), Depth: b.Length(math32.Z)})
	}

	for i, c := range ctx.Children {
		row, col := cellOf(i)
		offset := grid.Offset(row, col)
		b := ctx.Tree.PositionedBoundsOf(c)
		delta := offset.Sub(b.Base)
		ctx.Tree.MoveParentAndDescendantsBy(c, delta)
	}
	return nil
}
