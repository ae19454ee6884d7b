// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-4)

func tolEqual(t *testing.T, want, got float32) {
	t.Helper()
	assert.InDeltaf(t, want, got, float64(standardTol), "want %v got %v", want, got)
}

func TestBoundsUnionCommutes(t *testing.T) {
	a := Bounds{Pt(0, 0, 0), Pt(2, 3, 4)}
	b := Bounds{Pt(1, 1, 1), Pt(5, 5, 5)}
	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a, a.Union(Bounds{}))
	assert.Equal(t, a, Bounds{}.Union(a))
}

func TestBoundsLengths(t *testing.T) {
	b := Bounds{Pt(0, 0, 0), Pt(2, 3, 4)}
	l := b.Lengths()
	assert.Equal(t, Pt(2, 3, 4), l)
}

func TestRotationInverse(t *testing.T) {
	r := FromYawPitchRoll(37, 12, -9)
	p := Pt(1, 2, 3)
	rp := r.Apply(p)
	back := r.Inverse().Apply(rp)
	tolEqual(t, p.X, back.X)
	tolEqual(t, p.Y, back.Y)
	tolEqual(t, p.Z, back.Z)
}

func TestYawPitchRollRoundTrip(t *testing.T) {
	r := FromYawPitchRoll(37, 12, -9)
	yaw, pitch, roll := r.YawPitchRoll()
	tolEqual(t, 37, yaw)
	tolEqual(t, 12, pitch)
	tolEqual(t, -9, roll)
}

func TestYawPitchRollNoNaNAtQuarterTurn(t *testing.T) {
	r := FromYawPitchRoll(90, 0, 0)
	_, pitch, roll := r.YawPitchRoll()
	assert.False(t, IsNaN(pitch))
	assert.False(t, IsNaN(roll))
	tolEqual(t, 0, pitch)
	tolEqual(t, 0, roll)
}

func TestBoundsRotatedAroundRotatesBaseAndEnd(t *testing.T) {
	b := Bounds{Base: Pt(0, 0, 0), End: Pt(2, 0, 0)}
	got := b.RotatedAround(Pt(0, 0, 0), FromYawPitchRoll(90, 0, 0))
	// A 90-degree yaw carries the X-axis run onto Z.
	tolEqual(t, 0, got.Lengths().X)
	tolEqual(t, 2, got.Lengths().Z)
}

func TestRotateCoordIdentity(t *testing.T) {
	r := Identity()
	center := Pt(1, 0, 1)
	p := Pt(5, 5, 5)
	assert.Equal(t, p, r.RotateCoord(center, p))
}

func TestOppositeAxis(t *testing.T) {
	assert.Equal(t, X, OppositeAxis(Y))
	assert.Equal(t, Z, OppositeAxis(X))
	assert.Equal(t, X, OppositeAxis(Z))
}

func TestPointLessIsPartial(t *testing.T) {
	a := Pt(1, 5, 0)
	b := Pt(2, 0, 0)
	// a.Y > b.Y but a.X < b.X, so Less is true in both directions:
	// this is the documented non-strict, OR-based partial order.
	assert.True(t, a.Less(b))
	assert.True(t, b.Less(a))
}
