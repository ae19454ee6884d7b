// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertree

import (
	"testing"

	"cogentcore.org/scene/colors"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"github.com/stretchr/testify/assert"
)

func box(w, h, d float32) *Geometry {
	g := NewGeometry()
	g.Vertices = []math32.Point{
		math32.Pt(0, 0, 0), math32.Pt(w, h, d),
	}
	return g
}

func TestUpdateAndGet(t *testing.T) {
	tr := New()
	p := path.MustParse(".a")
	tr.Update(p, box(1, 2, 3))
	g, ok := tr.Get(p)
	assert.True(t, ok)
	assert.Equal(t, float32(1), g.Bounds().Lengths().X)
}

func TestChildrenPreservesInsertionOrder(t *testing.T) {
	tr := New()
	tr.Update(path.MustParse(".a.y"), box(1, 1, 1))
	tr.Update(path.MustParse(".a.x"), box(1, 1, 1))
	kids := tr.Children(path.MustParse(".a"))
	assert.Equal(t, ".a.y", kids[0].String())
	assert.Equal(t, ".a.x", kids[1].String())
}

func TestMoveParentAndDescendantsBy(t *testing.T) {
	tr := New()
	tr.Update(path.MustParse(".a"), box(1, 1, 1))
	tr.Update(path.MustParse(".a.b"), box(1, 1, 1))
	tr.MoveParentAndDescendantsBy(path.MustParse(".a"), math32.Pt(5, 0, 0))
	ga, _ := tr.Get(path.MustParse(".a"))
	gb, _ := tr.Get(path.MustParse(".a.b"))
	assert.Equal(t, float32(5), ga.Pos.X)
	assert.Equal(t, float32(5), gb.Pos.X)
}

func TestMoveExcludesSubtree(t *testing.T) {
	tr := New()
	tr.Update(path.MustParse(".a"), box(1, 1, 1))
	tr.Update(path.MustParse(".a.b"), box(1, 1, 1))
	tr.MoveParentAndDescendantsBy(path.MustParse(".a"), math32.Pt(5, 0, 0), path.MustParse(".a.b"))
	gb, _ := tr.Get(path.MustParse(".a.b"))
	assert.Equal(t, float32(0), gb.Pos.X)
}

func TestRotateAroundRotatesDeclaredBounds(t *testing.T) {
	g := NewGeometry()
	g.SetDeclaredBounds(math32.Bounds{Base: math32.Pt(0, 0, 0), End: math32.Pt(2, 0, 0)})
	g.RotateAround(math32.Pt(0, 0, 0), math32.FromYawPitchRoll(90, 0, 0))
	got := g.Bounds().Lengths()
	// A 90-degree yaw turns a 2-unit run along X into a 2-unit run
	// along Z; the layout-only declared bounds must follow the
	// rotation even though there are no vertices to recompute it from.
	tolEqualGeom(t, 0, got.X)
	tolEqualGeom(t, 2, got.Z)
}

func TestRotateParentAndDescendantsInPlacePreservesDeclaredBoundsLength(t *testing.T) {
	tr := New()
	p := path.MustParse(".a")
	g := NewGeometry()
	g.SetDeclaredBounds(math32.Bounds{Base: math32.Pt(0, 0, 0), End: math32.Pt(2, 0, 0)})
	tr.Update(p, g)

	tr.RotateParentAndDescendantsInPlace(p, math32.FromYawPitchRoll(90, 0, 0))

	got, _ := tr.Get(p)
	assert.InDelta(t, float32(2), got.Bounds().Lengths().Z, 1e-4)
	assert.InDelta(t, float32(0), got.Bounds().Lengths().X, 1e-4)
}

func tolEqualGeom(t *testing.T, want, got float32) {
	t.Helper()
	assert.InDelta(t, want, got, 1e-4)
}

func TestDifferencesFromSymmetry(t *testing.T) {
	a := New()
	a.Update(path.MustParse(".x"), box(1, 1, 1))
	b := New()
	b.Update(path.MustParse(".y"), box(1, 1, 1))

	forward := a.DifferencesFrom(b)
	backward := b.DifferencesFrom(a)

	firstMissing := map[string]bool{}
	for _, d := range forward {
		if d.Kind == FirstMissing {
			firstMissing[d.Path.String()] = true
		}
	}
	secondMissingReverse := map[string]bool{}
	for _, d := range backward {
		if d.Kind == SecondMissing {
			secondMissingReverse[d.Path.String()] = true
		}
	}
	assert.Equal(t, firstMissing, secondMissingReverse)
}

func TestDifferencesFromDetectsColorChange(t *testing.T) {
	prev := New()
	g1 := box(1, 1, 1)
	prev.Update(path.MustParse(".a"), g1)

	next := New()
	g2 := box(1, 1, 1)
	g2.SetColor(colors.RGBA{R: 255, A: 255})
	next.Update(path.MustParse(".a"), g2)

	diffs := next.DifferencesFrom(prev)
	assert.Len(t, diffs, 1)
	assert.Equal(t, Color, diffs[0].Kind)
}
