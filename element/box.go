// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/value"
)

// boxWinding is the 12-triangle winding order for the 8 vertices of
// a unit-orientation cuboid, indexed 0..7 as 0=(0,0,0), 1=(0,h,0),
// 2=(w,0,0), 3=(w,h,0), 4=(0,0,d), 5=(0,h,d), 6=(w,0,d), 7=(w,h,d).
// Preserved verbatim rather than re-derived, since client code depends
// on its exact face order for lighting/culling parity with the
// reference renderer.
var boxWinding = [12][3]int{
	{1, 2, 0}, {1, 3, 2},
	{0, 4, 1}, {4, 5, 1},
	{4, 6, 5}, {6, 7, 5},
	{3, 6, 2}, {3, 7, 6},
	{2, 4, 0}, {2, 6, 4},
	{1, 5, 3}, {5, 7, 3},
}

func boxVertices(w, h, d float32) [8]math32.Point {
	return [8]math32.Point{
		math32.Pt(0, 0, 0), math32.Pt(0, h, 0),
		math32.Pt(w, 0, 0), math32.Pt(w, h, 0),
		math32.Pt(0, 0, d), math32.Pt(0, h, d),
		math32.Pt(w, 0, d), math32.Pt(w, h, d),
	}
}

func boxGeometry(w, h, d float32) *rendertree.Geometry {
	g := rendertree.NewGeometry()
	verts := boxVertices(w, h, d)
	g.Vertices = verts[:]
	for _, f := range boxWinding {
		g.Faces = append(g.Faces, f)
	}
	return g
}

// Box is a unit-orientation cuboid element.
type Box struct {
	Size    *feature.Size
	Color   *feature.Color
	Optics  *feature.Optics
	HideShow *feature.HideShow
	Text    *feature.Text
}

// NewBox returns a Box with all features at their defaults.
func NewBox() *Box {
	return &Box{
		Size: feature.NewSize(), Color: feature.NewColor(),
		Optics: feature.NewOptics(), HideShow: feature.NewHideShow(),
		Text: feature.NewText(),
	}
}

func (b *Box) features() []feature.Feature {
	return []feature.Feature{b.Size, b.Color, b.Optics, b.HideShow, b.Text}
}

// UpdateFromAttributes implements [Element].
func (b *Box) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, b.features()...)
}

// Attributes implements [Element].
func (b *Box) Attributes() map[string]string { return collectAttributes(b.features()...) }

// UpdateAncestorValues implements [Element].
func (b *Box) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, b.features()...)
}

// Render implements [Element]: it writes a box geometry of the
// element's declared size, colored and positioned at the origin of
// its own local space. Size has already been evaluated against the
// ancestor scope by the node tree's earlier call to
// [Box.UpdateAncestorValues], so Render only reads its result.
func (b *Box) Render(p path.Path, ctx *Context) error {
	w, h, d := b.Size.Lengths()
	g := boxGeometry(w, h, d)
	g.SetColor(b.Color.ComputeColor(b.Optics.Opacity.Value))
	g.SetDistances(b.HideShow.HideDistance.Value, b.HideShow.ShowDistance.Value)
	g.SetText(b.Text.Value.Value)
	ctx.Tree.Update(p, g)
	return nil
}
