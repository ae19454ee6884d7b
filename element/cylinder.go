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

// Cylinder is a circular-cross-section element whose height comes
// from its [feature.Size] and whose radius and slice count come from
// its [feature.Circular].
type Cylinder struct {
	Circular *feature.Circular
	Size     *feature.Size
	Color    *feature.Color
	Optics   *feature.Optics
}

// NewCylinder returns a Cylinder with all features at their
// defaults.
func NewCylinder() *Cylinder {
	return &Cylinder{
		Circular: feature.NewCircular(), Size: feature.NewSize(),
		Color: feature.NewColor(), Optics: feature.NewOptics(),
	}
}

func (c *Cylinder) features() []feature.Feature {
	return []feature.Feature{c.Circular, c.Size, c.Color, c.Optics}
}

// UpdateFromAttributes implements [Element].
func (c *Cylinder) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, c.features()...)
}

// Attributes implements [Element].
func (c *Cylinder) Attributes() map[string]string { return collectAttributes(c.features()...) }

// UpdateAncestorValues implements [Element].
func (c *Cylinder) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, c.features()...)
}

// Render implements [Element]: it generates a cylinder(n, radius,
// height) with n = [feature.Circular.NumCircularSlices], triangulates
// it, and shifts it by (radius, 0, radius) so its bounds' base sits
// at the origin.
func (c *Cylinder) Render(p path.Path, ctx *Context) error {
	radius := c.Circular.Radius.Value
	_, height, _ := c.Size.Lengths()
	n := c.Circular.NumCircularSlices()

	m, err := ctx.Meshes.Cylinder(n, radius, height)
	if err != nil {
		return err
	}
	g := rendertree.NewGeometry()
	g.Vertices = m.Vertices
	g.Faces = m.Triangulate()
	shift := math32.Pt(radius, 0, radius)
	for i, v := range g.Vertices {
		g.Vertices[i] = v.Add(shift)
	}
	g.SetColor(c.Color.ComputeColor(c.Optics.Opacity.Value))
	ctx.Tree.Update(p, g)
	return nil
}
