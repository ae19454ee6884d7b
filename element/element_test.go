// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"testing"

	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPath(t *testing.T, parts ...string) path.Path {
	t.Helper()
	p, err := path.New(parts...)
	require.NoError(t, err)
	return p
}

func putBox(t *testing.T, tree *rendertree.Tree, p path.Path, pos math32.Point, lengths math32.Point) {
	t.Helper()
	verts := boxVertices(lengths.X, lengths.Y, lengths.Z)
	g := rendertree.NewGeometry()
	g.Vertices = verts[:]
	g.SetPos(pos)
	tree.Update(p, g)
}

func TestBoxRenderWritesWoundGeometry(t *testing.T) {
	b := NewBox()
	require.NoError(t, b.UpdateFromAttributes(map[string]string{"width": "2", "height": "1", "depth": "3"}))

	tree := rendertree.New()
	root := mustPath(t, "root")
	require.NoError(t, b.UpdateAncestorValues(value.NewScope()))
	require.NoError(t, b.Render(root, &Context{Tree: tree}))

	g, ok := tree.Get(root)
	require.True(t, ok)
	assert.Len(t, g.Vertices, 8)
	assert.Len(t, g.Faces, 12)
	lengths := g.Bounds().Lengths()
	assert.Equal(t, math32.Pt(2, 1, 3), lengths)
}

func TestPlaneRenderGrowsAndOffsetsChildren(t *testing.T) {
	pl := NewPlane()
	require.NoError(t, pl.UpdateFromAttributes(map[string]string{"width": "0", "height": "1", "depth": "0", "padding": "1"}))

	tree := rendertree.New()
	root := mustPath(t, "root")
	child := mustPath(t, "root", "child")
	putBox(t, tree, child, math32.Pt(0, 0, 0), math32.Pt(4, 2, 5))

	require.NoError(t, pl.UpdateAncestorValues(value.NewScope()))
	require.NoError(t, pl.Render(root, &Context{Tree: tree, Children: []path.Path{child}}))

	cg, ok := tree.Get(child)
	require.True(t, ok)
	assert.Equal(t, math32.Pt(1, 1, 1), cg.Pos)

	g, ok := tree.Get(root)
	require.True(t, ok)
	lengths := g.Bounds().Lengths()
	assert.Equal(t, float32(6), lengths.X) // 4 + 2*padding
	assert.Equal(t, float32(7), lengths.Z) // 5 + 2*padding
}

func TestGridRenderArrangesChildrenInSquareGrid(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.UpdateFromAttributes(map[string]string{"spacing": "1"}))

	tree := rendertree.New()
	root := mustPath(t, "root")
	var children []path.Path
	for i := 0; i < 4; i++ {
		c := mustPath(t, "root", "c"+string(rune('0'+i)))
		putBox(t, tree, c, math32.Pt(0, 0, 0), math32.Pt(2, 1, 2))
		children = append(children, c)
	}

	require.NoError(t, g.Render(root, &Context{Tree: tree, Children: children}))

	// side = ceil(sqrt(4)) = 2: a 2x2 grid, each cell 2x2 with 1 unit spacing.
	g0, _ := tree.Get(children[0])
	g1, _ := tree.Get(children[1])
	g2, _ := tree.Get(children[2])
	assert.Equal(t, math32.Pt(0, 0, 0), g0.Pos)
	assert.Equal(t, math32.Pt(3, 0, 0), g1.Pos)
	assert.Equal(t, math32.Pt(0, 0, 3), g2.Pos)
}

func TestJuxtaposeRenderWithNoAttributesLeavesPerpendicularOffsetAlone(t *testing.T) {
	j := NewJuxtapose()
	require.NoError(t, j.UpdateFromAttributes(nil))

	tree := rendertree.New()
	root := mustPath(t, "root")
	child := mustPath(t, "root", "c")
	putBox(t, tree, child, math32.Pt(0, 5, 7), math32.Pt(2, 1, 1))

	require.NoError(t, j.Render(root, &Context{Tree: tree, Children: []path.Path{child}}))

	cg, ok := tree.Get(child)
	require.True(t, ok)
	// With no axis/width/height/depth attributes set, neither
	// CenterWithinAxis nor Align should run: a child positioned off
	// the sweep axis before render keeps that offset afterward,
	// rather than being forced to zero on both perpendicular axes.
	assert.Equal(t, math32.Pt(0, 5, 7), cg.Pos)
}

func TestStreetRenderFlanksHousesAndStretchesStreet(t *testing.T) {
	s := NewStreet()
	require.NoError(t, s.UpdateFromAttributes(map[string]string{"spacing": "1"}))

	tree := rendertree.New()
	root := mustPath(t, "root")
	house0 := mustPath(t, "root", "h0")
	house1 := mustPath(t, "root", "h1")
	street := mustPath(t, "root", "street")

	putBox(t, tree, house0, math32.Pt(0, 0, 0), math32.Pt(1, 1, 1))
	putBox(t, tree, house1, math32.Pt(0, 0, 0), math32.Pt(1, 1, 1))
	putBox(t, tree, street, math32.Pt(0, 0, 0), math32.Pt(1, 1, 1))

	children := []path.Path{house0, house1, street}
	require.NoError(t, s.Render(root, &Context{Tree: tree, Children: children}))

	hg0, _ := tree.Get(house0)
	hg1, _ := tree.Get(house1)
	sg, _ := tree.Get(street)

	assert.NotEqual(t, hg0.Pos.Z, hg1.Pos.Z, "near and far houses sit on opposite sides")
	// house1, the far side, has been rotated 180 around Y: its original
	// (1,0,0)-to-(0,0,0) edge is flipped, so no vertex keeps its
	// original x coordinate of 1 while also keeping the original z.
	unrotated := boxVertices(1, 1, 1)
	assert.NotEqual(t, unrotated[:], hg1.Vertices, "far-side house vertices should differ after rotation")

	streetLength := sg.Bounds().Length(math32.X)
	assert.Greater(t, streetLength, float32(1), "street should be stretched to span the houses")
}
