// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh defines the external mesh-provider interface the
// sphere, cylinder, and mesh-import elements render against, plus a
// built-in provider that generates uv spheres and cylinders. A
// provider returns an abstract, possibly non-triangular face list,
// leaving triangulation to the caller.
package mesh

import "cogentcore.org/scene/math32"

// Face is a polygon given as a list of indices into a [Mesh]'s
// Vertices, in circular order. A Face may have any number of corners
// greater than or equal to 3.
type Face []int

// Mesh is vertices plus faces that may not yet be triangles.
type Mesh struct {
	Vertices []math32.Point
	Faces    []Face
}

// Triangulate fans every face with more than 3 corners from its
// first corner, returning a flat list of triangles as [3]int index
// triples. Faces already triangular are returned unchanged.
func (m *Mesh) Triangulate() [][3]int {
	var tris [][3]int
	for _, f := range m.Faces {
		if len(f) < 3 {
			continue
		}
		for i := 1; i < len(f)-1; i++ {
			tris = append(tris, [3]int{f[0], f[i], f[i+1]})
		}
	}
	return tris
}

// Provider is the abstract mesh source the sphere, cylinder, and
// mesh-import elements consume; a production system supplies one that
// wraps an asset pipeline, while [BuiltIn] covers the two primitives
// the core itself must be able to render with no external dependency.
type Provider interface {
	// UVSphere returns a sphere of the given radius, with slices
	// longitude segments and stacks latitude segments.
	UVSphere(radius float32, slices, stacks int) (*Mesh, error)
	// Cylinder returns a cylinder of the given radius and height,
	// with slices segments around its circumference.
	Cylinder(slices int, radius, height float32) (*Mesh, error)
	// Read loads a mesh from an external path; the core never
	// interprets the path's format itself.
	Read(path string) (*Mesh, error)
}
