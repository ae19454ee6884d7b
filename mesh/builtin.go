// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/scene/math32"
)

// BuiltIn is the [Provider] the sphere and cylinder elements use when
// no external asset pipeline is wired in: it generates the two
// parametric primitives directly and reports [Provider.Read] as
// unsupported, since reading an external mesh format is explicitly
// out of scope for the core.
type BuiltIn struct{}

// UVSphere generates a sphere as a ring of quads between stacks-1
// latitude bands, capped with triangle fans at the poles. The sphere
// is centered on the Y axis and rests on the XZ plane: y runs from 0
// to 2*radius.
func (BuiltIn) UVSphere(radius float32, slices, stacks int) (*Mesh, error) {
	if slices < 3 || stacks < 2 {
		return nil, fmt.Errorf("mesh: uv_sphere needs slices>=3 and stacks>=2, got %d, %d", slices, stacks)
	}
	m := &Mesh{}
	top := len(m.Vertices)
	m.Vertices = append(m.Vertices, math32.Pt(0, 2*radius, 0))

	rings := make([][]int, stacks-1)
	for ring := 1; ring < stacks; ring++ {
		phi := math32.Pi * float32(ring) / float32(stacks)
		y := radius + radius*math32.Cos(phi)
		r := radius * math32.Sin(phi)
		idxs := make([]int, slices)
		for s := 0; s < slices; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(slices)
			idxs[s] = len(m.Vertices)
			m.Vertices = append(m.Vertices, math32.Pt(r*math32.Cos(theta), y, r*math32.Sin(theta)))
		}
		rings[ring-1] = idxs
	}

	bottom := len(m.Vertices)
	m.Vertices = append(m.Vertices, math32.Pt(0, 0, 0))

	for s := 0; s < slices; s++ {
		m.Faces = append(m.Faces, Face{top, rings[0][s], rings[0][(s+1)%slices]})
	}
	for ring := 0; ring < len(rings)-1; ring++ {
		a, b := rings[ring], rings[ring+1]
		for s := 0; s < slices; s++ {
			sn := (s + 1) % slices
			m.Faces = append(m.Faces, Face{a[s], b[s], b[sn], a[sn]})
		}
	}
	last := rings[len(rings)-1]
	for s := 0; s < slices; s++ {
		m.Faces = append(m.Faces, Face{bottom, last[(s+1)%slices], last[s]})
	}
	return m, nil
}

// Cylinder generates a cylinder of the given radius and height, its
// base centered on the origin's XZ plane and its axis along Y, with
// a slices-sided polygon as each cap.
func (BuiltIn) Cylinder(slices int, radius, height float32) (*Mesh, error) {
	if slices < 3 {
		return nil, fmt.Errorf("mesh: cylinder needs slices>=3, got %d", slices)
	}
	m := &Mesh{}
	bottomRing := make([]int, slices)
	topRing := make([]int, slices)
	for s := 0; s < slices; s++ {
		theta := 2 * math32.Pi * float32(s) / float32(slices)
		x, z := radius*math32.Cos(theta), radius*math32.Sin(theta)
		bottomRing[s] = len(m.Vertices)
		m.Vertices = append(m.Vertices, math32.Pt(x, 0, z))
		topRing[s] = len(m.Vertices)
		m.Vertices = append(m.Vertices, math32.Pt(x, height, z))
	}

	for s := 0; s < slices; s++ {
		sn := (s + 1) % slices
		m.Faces = append(m.Faces, Face{bottomRing[s], bottomRing[sn], topRing[sn], topRing[s]})
	}

	bottomCap := make(Face, slices)
	topCap := make(Face, slices)
	for s := 0; s < slices; s++ {
		bottomCap[slices-1-s] = bottomRing[s]
		topCap[s] = topRing[s]
	}
	m.Faces = append(m.Faces, bottomCap, topCap)
	return m, nil
}

// Read always fails: the core consumes only meshes an external
// pipeline has already loaded and validated.
func (BuiltIn) Read(path string) (*Mesh, error) {
	return nil, fmt.Errorf("mesh: BuiltIn.Read does not support loading %q; supply a Provider that does", path)
}
