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

// MeshImport wraps an externally provided mesh, loaded by path
// through the engine's [mesh.Provider], normalized to sit at the
// origin, and scaled to its declared target lengths.
type MeshImport struct {
	Path   *value.Typed[string]
	Scale  *feature.Scale
	Color  *feature.Color
	Optics *feature.Optics
}

// NewMeshImport returns a MeshImport with no source path and all
// features at their defaults.
func NewMeshImport() *MeshImport {
	return &MeshImport{
		Path:   value.NewDefault("mesh_path", "mp", ""),
		Scale:  feature.NewScale(), Color: feature.NewColor(), Optics: feature.NewOptics(),
	}
}

func (m *MeshImport) features() []feature.Feature { return []feature.Feature{m.Scale, m.Color, m.Optics} }

// UpdateFromAttributes implements [Element].
func (m *MeshImport) UpdateFromAttributes(attrs map[string]string) error {
	if s, ok := attrs[m.Path.Name]; ok {
		m.Path.SetValue(s)
	} else if s, ok := attrs[m.Path.Abbrev]; ok {
		m.Path.SetValue(s)
	}
	return applyAttributes(attrs, m.features()...)
}

// Attributes implements [Element].
func (m *MeshImport) Attributes() map[string]string {
	out := collectAttributes(m.features()...)
	if !m.Path.Defaulted {
		out[m.Path.Name] = m.Path.Value
	}
	return out
}

// UpdateAncestorValues implements [Element].
func (m *MeshImport) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, m.features()...)
}

// Render implements [Element]: it loads the mesh, translates it so
// its bounds' base sits at the origin, then scales it by
// [feature.Scale.ComputeScaleFactor] against its current lengths.
func (m *MeshImport) Render(p path.Path, ctx *Context) error {
	loaded, err := ctx.Meshes.Read(m.Path.Value)
	if err != nil {
		return err
	}
	g := rendertree.NewGeometry()
	g.Vertices = loaded.Vertices
	g.Faces = loaded.Triangulate()

	base := g.Bounds().Base
	for i, v := range g.Vertices {
		g.Vertices[i] = v.Sub(base)
	}

	lengths := g.Bounds().Lengths()
	factor := m.Scale.ComputeScaleFactor(lengths.X, lengths.Y, lengths.Z)
	g.ScaleBy(math32.Pt(factor, factor, factor))

	g.SetColor(m.Color.ComputeColor(m.Optics.Opacity.Value))
	ctx.Tree.Update(p, g)
	return nil
}
