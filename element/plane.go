// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/value"
)

// Plane is a box-shaped base that pads and grows to contain its
// descendants, then offsets them to sit on top of it.
type Plane struct {
	Size    *feature.Size
	Color   *feature.Color
	Optics  *feature.Optics
	Padding *feature.Padding
}

// NewPlane returns a Plane with all features at their defaults.
func NewPlane() *Plane {
	return &Plane{
		Size: feature.NewSize(), Color: feature.NewColor(),
		Optics: feature.NewOptics(), Padding: feature.NewPadding(),
	}
}

func (pl *Plane) features() []feature.Feature {
	return []feature.Feature{pl.Size, pl.Color, pl.Optics, pl.Padding}
}

// UpdateFromAttributes implements [Element].
func (pl *Plane) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, pl.features()...)
}

// Attributes implements [Element].
func (pl *Plane) Attributes() map[string]string { return collectAttributes(pl.features()...) }

// UpdateAncestorValues implements [Element].
func (pl *Plane) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, pl.features()...)
}

// Render implements [Element]: the plane grows to
// max(descendant-lengths, own-lengths) + 2*padding on width and
// depth, then offsets every child by (padding, height, padding) so
// descendants sit on top of the plane rather than inside it.
func (pl *Plane) Render(p path.Path, ctx *Context) error {
	ownW, ownH, ownD := pl.Size.Lengths()
	padding := pl.Padding.Amount.Value

	var childrenUnion math32.Bounds
	for _, c := range ctx.Children {
		childrenUnion = childrenUnion.Union(ctx.Tree.PositionedBoundsOf(c))
	}
	lengths := childrenUnion.Lengths()

	w := math32.Max(ownW, lengths.X) + 2*padding
	d := math32.Max(ownD, lengths.Z) + 2*padding

	offset := math32.Pt(padding, ownH, padding)
	for _, c := range ctx.Children {
		ctx.Tree.MoveParentAndDescendantsBy(c, offset)
	}

	g := boxGeometry(w, ownH, d)
	g.SetColor(pl.Color.ComputeColor(pl.Optics.Opacity.Value))
	ctx.Tree.Update(p, g)
	return nil
}
