// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"testing"

	"cogentcore.org/scene/colors"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/value"
	"github.com/stretchr/testify/assert"
)

func TestSizeComputesWidthRelativeToHeight(t *testing.T) {
	s := NewSize()
	assert.NoError(t, s.UpdateFromAttributes(map[string]string{"width": "50height%", "height": "10"}))
	scope := value.NewScope()
	// An ancestor's own "width" must already be published for the
	// percentage branch to resolve against, per the relative-value
	// evaluation rule.
	scope.SetFloat("width", 20)
	assert.NoError(t, s.ComputeAndUpdateAncestorValues(scope))
	w, h, _ := s.Lengths()
	assert.Equal(t, float32(10), h)
	// target(height=10) * multiplier(50) * ancestor-width(20)/100 = 100
	assert.Equal(t, float32(100), w)
}

func TestColorComputeColorDarkensAndSetsOpacity(t *testing.T) {
	c := NewColor()
	assert.NoError(t, c.UpdateFromAttributes(map[string]string{"color": "red5", "darkness": "0.5"}))
	got := c.ComputeColor(colors.UnitInterval(1))
	want, _ := colors.Parse("red5")
	want = want.DarkenBy(0.5)
	want = want.WithOpacity(1)
	assert.Equal(t, want, got)
}

func TestCircularNumSlicesNeverBelowTen(t *testing.T) {
	c := NewCircular()
	assert.NoError(t, c.UpdateFromAttributes(map[string]string{"radius": "1", "detail": "0"}))
	assert.GreaterOrEqual(t, c.NumCircularSlices(), 10)
}

func TestScaleComputeScaleFactorAllDefaultedIsOne(t *testing.T) {
	s := NewScale()
	assert.Equal(t, float32(1), s.ComputeScaleFactor(5, 5, 5))
}

func TestScaleComputeScaleFactorNamedAxis(t *testing.T) {
	s := NewScale()
	assert.NoError(t, s.UpdateFromAttributes(map[string]string{
		"scale_width": "10", "scale_axis": "x",
	}))
	assert.Equal(t, float32(2), s.ComputeScaleFactor(5, 5, 5))
}

func TestScaleComputeScaleFactorDefaultedAxisTakesMin(t *testing.T) {
	s := NewScale()
	assert.NoError(t, s.UpdateFromAttributes(map[string]string{
		"scale_width": "10", "scale_height": "20",
	}))
	// width factor = 10/5 = 2, height factor = 20/5 = 4, min is 2.
	assert.Equal(t, float32(2), s.ComputeScaleFactor(5, 5, 5))
}

func TestJuxtaposeSweepsAlongAxis(t *testing.T) {
	j := NewJuxtaposeSet()
	assert.NoError(t, j.UpdateFromAttributes(map[string]string{"axis": "x", "spacing": "1"}))

	tree := rendertree.New()
	g1 := rendertree.NewGeometry()
	g1.Vertices = []math32.Point{math32.Pt(0, 0, 0), math32.Pt(2, 1, 1)}
	g2 := rendertree.NewGeometry()
	g2.Vertices = []math32.Point{math32.Pt(0, 0, 0), math32.Pt(3, 1, 1)}

	p1, p2 := path.MustParse(".a"), path.MustParse(".b")
	tree.Update(p1, g1)
	tree.Update(p2, g2)

	j.Juxtapose([]path.Path{p1, p2}, tree)

	got1, _ := tree.Get(p1)
	got2, _ := tree.Get(p2)
	assert.Equal(t, float32(0), got1.Pos.X)
	assert.Equal(t, float32(3), got2.Pos.X) // 2 (width of first) + 1 (spacing)
}
