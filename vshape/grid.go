// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vshape implements the synthetic cell grid the grid and
// street elements place their children against: a 2D arrangement of
// rows and columns where each cell's size is the per-column maximum
// width and per-row maximum depth of the children assigned to it,
// and each cell's offset is the cumulative sum of the preceding
// rows'/columns' sizes. Adapted from this package's former role as a
// flat-array shape generator (Shape, ShapeBase, the per-plane Box
// builder); that approach measured planes of a single cuboid, the
// same "lay out a 2D array of same-kind cells by cumulative extent"
// problem the layout engine's grid now needs.
package vshape

import "cogentcore.org/scene/math32"

// Cell is one entry in a [Grid]: its row/column indices and the
// width (along the grid's first axis) and depth (along its second)
// of the child assigned to it.
type Cell struct {
	Row, Col     int
	Width, Depth float32
}

// Grid lays out cells into a rectangular arrangement whose row
// depths and column widths are each the maximum over the cells that
// share that row or column.
type Grid struct {
	Rows, Cols   int
	Spacing      float32
	rowDepths    []float32
	colWidths    []float32
}

// NewGrid returns a Grid with the given row/column count and
// inter-cell spacing.
func NewGrid(rows, cols int, spacing float32) *Grid {
	return &Grid{
		Rows: rows, Cols: cols, Spacing: spacing,
		rowDepths: make([]float32, rows),
		colWidths: make([]float32, cols),
	}
}

// Measure records c's extent against its row's and column's running
// maximum. Cells must all be measured before [Grid.Offset] is called.
func (g *Grid) Measure(c Cell) {
	if c.Width > g.colWidths[c.Col] {
		g.colWidths[c.Col] = c.Width
	}
	if c.Depth > g.rowDepths[c.Row] {
		g.rowDepths[c.Row] = c.Depth
	}
}

// Offset returns the (x, z) position of the cell at (row, col): the
// cumulative sum of the preceding columns' widths (plus spacing) on
// x, and the preceding rows' depths (plus spacing) on z.
func (g *Grid) Offset(row, col int) math32.Point {
	var x, z float32
	for c := 0; c < col; c++ {
		x += g.colWidths[c] + g.Spacing
	}
	for r := 0; r < row; r++ {
		z += g.rowDepths[r] + g.Spacing
	}
	return math32.Pt(x, 0, z)
}

// Lengths returns the total width and depth of the grid, summing
// every column's width and every row's depth plus inter-cell spacing.
func (g *Grid) Lengths() (width, depth float32) {
	for _, w := range g.colWidths {
		width += w
	}
	if len(g.colWidths) > 1 {
		width += g.Spacing * float32(len(g.colWidths)-1)
	}
	for _, d := range g.rowDepths {
		depth += d
	}
	if len(g.rowDepths) > 1 {
		depth += g.Spacing * float32(len(g.rowDepths)-1)
	}
	return width, depth
}

// Diameter returns ⌈√n⌉, the side length of the smallest square grid
// that can hold n cells, as used by the grid element to lay out its
// children when no explicit row/column count is given.
func Diameter(n int) int {
	d := int(math32.Sqrt(float32(n)))
	if d*d < n {
		d++
	}
	return d
}
