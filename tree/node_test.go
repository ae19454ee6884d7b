// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/element"
	"cogentcore.org/scene/mesh"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/value"
)

func childNames(n *Node) []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Name
	}
	return out
}

func TestConstructChildRejectsDuplicateNames(t *testing.T) {
	root := New("root", element.NewJuxtapose())
	_, err := root.ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	_, err = root.ConstructChild("a", element.NewBox())
	assert.ErrorIs(t, err, ErrDuplicateChildName)
}

func TestTemplateMaterializationOrder(t *testing.T) {
	// Registering template t, then constructing child a, then child c,
	// then materializing t as b should yield [a, b, c]: b lands where
	// the template was registered, not at the end.
	root := New("root", element.NewJuxtapose())
	_, err := root.ConstructTemplate("t", element.NewBox())
	require.NoError(t, err)
	_, err = root.ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	_, err = root.ConstructChild("c", element.NewBox())
	require.NoError(t, err)
	_, err = root.TryMakeTemplate("t", "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, childNames(root))
}

func TestTryMakeTemplateRejectsUnknownTemplate(t *testing.T) {
	root := New("root", element.NewJuxtapose())
	_, err := root.TryMakeTemplate("missing", "b")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestTryMakeTemplateDeepCopiesElementState(t *testing.T) {
	box := element.NewBox()
	require.NoError(t, box.UpdateFromAttributes(map[string]string{"width": "2"}))

	root := New("root", element.NewJuxtapose())
	_, err := root.ConstructTemplate("t", box)
	require.NoError(t, err)
	clone, err := root.TryMakeTemplate("t", "b")
	require.NoError(t, err)

	clonedBox := clone.Element.(*element.Box)
	require.NoError(t, clonedBox.UpdateFromAttributes(map[string]string{"width": "9"}))

	// Mutating the clone's width must not affect the template's own box.
	assert.NotEqual(t, box.Attributes()["width"], clonedBox.Attributes()["width"])
}

func TestRemoveChildShiftsTemplateInsertionIndex(t *testing.T) {
	root := New("root", element.NewJuxtapose())
	_, err := root.ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	_, err = root.ConstructTemplate("t", element.NewBox()) // insertion index recorded as 1
	require.NoError(t, err)
	root.RemoveChild("a")

	_, err = root.TryMakeTemplate("t", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, childNames(root))
}

func TestFindDescendant(t *testing.T) {
	root := New("root", element.NewJuxtapose())
	a, err := root.ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	b, err := a.ConstructChild("b", element.NewBox())
	require.NoError(t, err)

	_, ok := root.FindDescendant(root.Path())
	assert.False(t, ok) // root.Path() is empty, never a single-part match

	found, ok := root.FindDescendant(b.Path())
	require.True(t, ok)
	assert.Same(t, b, found)
}

func TestRenderSingleBox(t *testing.T) {
	// A single box under a juxtapose(axis=x) child of the root.
	root := New("", element.NewJuxtapose())
	j, err := root.ConstructChild("j", element.NewJuxtapose())
	require.NoError(t, err)
	boxEl := element.NewBox()
	require.NoError(t, boxEl.UpdateFromAttributes(map[string]string{"width": "2", "height": "3", "depth": "4"}))
	_, err = j.ConstructChild("b", boxEl)
	require.NoError(t, err)

	rt := rendertree.New()
	require.NoError(t, root.Render(value.NewScope(), rt, mesh.BuiltIn{}))

	boxPath := j.Children[0].Path()
	g, ok := rt.Get(boxPath)
	require.True(t, ok)
	assert.Len(t, g.Vertices, 8)
	assert.Len(t, g.Faces, 12)
}

func TestRenderSynthesizesGeometryForLayoutOnlyElement(t *testing.T) {
	root := New("", element.NewJuxtapose())
	rotate, err := root.ConstructChild("r", element.NewRotate())
	require.NoError(t, err)
	boxEl := element.NewBox()
	require.NoError(t, boxEl.UpdateFromAttributes(map[string]string{"width": "2", "height": "1", "depth": "1"}))
	_, err = rotate.ConstructChild("b", boxEl)
	require.NoError(t, err)

	rt := rendertree.New()
	require.NoError(t, root.Render(value.NewScope(), rt, mesh.BuiltIn{}))

	g, ok := rt.Get(rotate.Path())
	require.True(t, ok)
	assert.False(t, g.ShouldDraw())
}
