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

// Sphere is a uv-sphere element whose slice count is derived from
// its [feature.Circular] detail and radius.
type Sphere struct {
	Circular *feature.Circular
	Color    *feature.Color
	Optics   *feature.Optics
}

// NewSphere returns a Sphere with all features at their defaults.
func NewSphere() *Sphere {
	return &Sphere{Circular: feature.NewCircular(), Color: feature.NewColor(), Optics: feature.NewOptics()}
}

func (s *Sphere) features() []feature.Feature {
	return []feature.Feature{s.Circular, s.Color, s.Optics}
}

// UpdateFromAttributes implements [Element].
func (s *Sphere) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, s.features()...)
}

// Attributes implements [Element].
func (s *Sphere) Attributes() map[string]string { return collectAttributes(s.features()...) }

// UpdateAncestorValues implements [Element].
func (s *Sphere) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, s.features()...)
}

// Render implements [Element]: it generates a uv_sphere(radius, n, n)
// with n = [feature.Circular.NumCircularSlices], triangulates it, and
// shifts it by (radius, 0, radius) so its bounds' base sits at the
// origin.
func (s *Sphere) Render(p path.Path, ctx *Context) error {
	radius := s.Circular.Radius.Value
	n := s.Circular.NumCircularSlices()

	m, err := ctx.Meshes.UVSphere(radius, n, n)
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
	g.SetColor(s.Color.ComputeColor(s.Optics.Opacity.Value))
	ctx.Tree.Update(p, g)
	return nil
}
