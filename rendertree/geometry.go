// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rendertree implements the materialized scene a render pass
// produces: a path-keyed set of [Geometry] values, the bulk transforms
// a layout element applies to itself and its descendants, and the
// structural diff that turns two render trees into delta events.
package rendertree

import (
	"cogentcore.org/scene/colors"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
)

// Geometry is the fully positioned, colored shape a render pass
// produces for one path: vertices and triangular faces in local
// (unpositioned) space, a world position, a color, hide/show
// distances, an optional text label, and a cached local-space bounds.
type Geometry struct {
	Vertices []math32.Point
	Faces    [][3]int

	Pos   math32.Point
	Color colors.RGBA

	HideDistance float32
	ShowDistance float32

	Text string

	bounds      math32.Bounds
	boundsValid bool

	declaredBounds math32.Bounds
	hasDeclared    bool
}

// NewGeometry returns an empty Geometry at the origin.
func NewGeometry() *Geometry {
	return &Geometry{}
}

// ShouldDraw reports whether g has any vertices to draw.
func (g *Geometry) ShouldDraw() bool {
	return len(g.Vertices) > 0
}

// Bounds returns the local-space axis-aligned bounds of g's vertices,
// computed once and cached until the next mutation -- unless a
// [Geometry.SetDeclaredBounds] override is in effect, for layout-only
// elements (padding, juxtapose, no-layout) that report a size without
// drawing any vertices.
func (g *Geometry) Bounds() math32.Bounds {
	if g.hasDeclared {
		return g.declaredBounds
	}
	if g.boundsValid {
		return g.bounds
	}
	var b math32.Bounds
	for i, v := range g.Vertices {
		if i == 0 {
			b = math32.Bounds{Base: v, End: v}
			continue
		}
		b = math32.Bounds{
			Base: math32.Pt(math32.Min(b.Base.X, v.X), math32.Min(b.Base.Y, v.Y), math32.Min(b.Base.Z, v.Z)),
			End:  math32.Pt(math32.Max(b.End.X, v.X), math32.Max(b.End.Y, v.Y), math32.Max(b.End.Z, v.Z)),
		}
	}
	g.bounds = b
	g.boundsValid = true
	return b
}

// SetDeclaredBounds overrides g's reported bounds with b, independent
// of its (possibly empty) vertex list.
func (g *Geometry) SetDeclaredBounds(b math32.Bounds) {
	g.declaredBounds = b
	g.hasDeclared = true
}

// PositionedBounds returns g's bounds translated by its position.
func (g *Geometry) PositionedBounds() math32.Bounds {
	return g.Bounds().Translate(g.Pos)
}

func (g *Geometry) invalidate() { g.boundsValid = false }

// ScaleBy scales g's vertices and position componentwise by f, about
// the origin.
func (g *Geometry) ScaleBy(f math32.Point) {
	for i, v := range g.Vertices {
		g.Vertices[i] = math32.Pt(v.X*f.X, v.Y*f.Y, v.Z*f.Z)
	}
	g.Pos = math32.Pt(g.Pos.X*f.X, g.Pos.Y*f.Y, g.Pos.Z*f.Z)
	g.invalidate()
}

// StretchBy extends every vertex coordinate on the given axis that is
// positive by delta, leaving coordinates at or below zero on that axis
// unchanged: it stretches a shape's far face outward without moving
// its near face.
func (g *Geometry) StretchBy(axis math32.Axis, delta float32) {
	for i, v := range g.Vertices {
		if c := v.Get(axis); c > 0 {
			g.Vertices[i] = v.With(axis, c+delta)
		}
	}
	g.invalidate()
}

// CombineWith appends other's vertices and faces (offset by the
// current vertex count) into g, as a union of two meshes into one
// geometry.
func (g *Geometry) CombineWith(other *Geometry) {
	base := len(g.Vertices)
	g.Vertices = append(g.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		g.Faces = append(g.Faces, [3]int{f[0] + base, f[1] + base, f[2] + base})
	}
	g.invalidate()
}

// RotateAround rotates g's position, its declared bounds override (if
// any), and every vertex, all around center by r. A layout-only
// geometry carries no vertices to derive fresh bounds from after the
// rotation, so its declared bounds must be rotated explicitly rather
// than left to invalidate-and-recompute.
func (g *Geometry) RotateAround(center math32.Point, r math32.Rotation) {
	g.Pos = r.RotateCoord(center, g.Pos)
	if g.hasDeclared {
		g.declaredBounds = g.declaredBounds.RotatedAround(center, r)
	}
	for i, v := range g.Vertices {
		g.Vertices[i] = r.RotateCoord(center, v)
	}
	g.invalidate()
}

// OffsetPos adds delta to g's position.
func (g *Geometry) OffsetPos(delta math32.Point) { g.Pos = g.Pos.Add(delta) }

// SetColor sets g's color.
func (g *Geometry) SetColor(c colors.RGBA) { g.Color = c }

// SetPos sets g's position.
func (g *Geometry) SetPos(p math32.Point) { g.Pos = p }

// SetDistances sets g's hide and show distances.
func (g *Geometry) SetDistances(hide, show float32) {
	g.HideDistance = hide
	g.ShowDistance = show
}

// SetText sets g's text label.
func (g *Geometry) SetText(t string) { g.Text = t }

// Clone returns a deep copy of g, safe to store in a snapshot taken
// before a render.
func (g *Geometry) Clone() *Geometry {
	out := *g
	out.Vertices = append([]math32.Point(nil), g.Vertices...)
	out.Faces = append([][3]int(nil), g.Faces...)
	return &out
}

// Entry pairs a path with the geometry rendered at it, the unit the
// render tree's ordered index stores.
type Entry struct {
	Path     path.Path
	Geometry *Geometry
}
