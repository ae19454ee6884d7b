// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Bounds is an axis-aligned box given by an ordered pair of points,
// Base and End, with Base <= End on every axis after any operation
// that produces a Bounds. Lengths are |End - Base| per axis.
type Bounds struct {
	Base, End Point
}

// BoundsFromPoints returns the smallest [Bounds] that contains both
// given points, regardless of their relative order.
func BoundsFromPoints(a, b Point) Bounds {
	return Bounds{
		Base: Pt(Min(a.X, b.X), Min(a.Y, b.Y), Min(a.Z, b.Z)),
		End:  Pt(Max(a.X, b.X), Max(a.Y, b.Y), Max(a.Z, b.Z)),
	}
}

// IsZero reports whether b is the zero-value Bounds (Base and End are
// both the origin). A zero Bounds is treated as the additive identity
// by [Bounds.Union] -- this is a known quirk of the original
// implementation (a shape that happens to occupy the origin-to-origin
// box is indistinguishable from "no bounds"), preserved rather than
// fixed.
func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// Length returns the extent of b along the given axis.
func (b Bounds) Length(a Axis) float32 {
	return Abs(b.End.Get(a) - b.Base.Get(a))
}

// Lengths returns the extent of b along each axis.
func (b Bounds) Lengths() Point {
	return Pt(b.Length(X), b.Length(Y), b.Length(Z))
}

// Center returns the midpoint of b.
func (b Bounds) Center() Point {
	return b.Base.Add(b.End).MulScalar(0.5)
}

// Union returns the smallest Bounds containing both b and other. A
// zero-value argument on either side acts as an identity: Bounds{} +
// other == other, and other + Bounds{} == other.
func (b Bounds) Union(other Bounds) Bounds {
	if other.IsZero() {
		return b
	}
	if b.IsZero() {
		return other
	}
	return BoundsFromPoints(
		Pt(Min(b.Base.X, other.Base.X), Min(b.Base.Y, other.Base.Y), Min(b.Base.Z, other.Base.Z)),
		Pt(Max(b.End.X, other.End.X), Max(b.End.Y, other.End.Y), Max(b.End.Z, other.End.Z)),
	)
}

// Translate returns b shifted by delta.
func (b Bounds) Translate(delta Point) Bounds {
	return Bounds{Base: b.Base.Add(delta), End: b.End.Add(delta)}
}

// Scale returns b scaled componentwise about the origin by f.
func (b Bounds) Scale(f Point) Bounds {
	return BoundsFromPoints(
		Pt(b.Base.X*f.X, b.Base.Y*f.Y, b.Base.Z*f.Z),
		Pt(b.End.X*f.X, b.End.Y*f.Y, b.End.Z*f.Z),
	)
}

// RotatedAround returns the axis-aligned bounds of b after rotating
// its Base and End points around center by r and re-deriving min/max
// per axis from those two. This only tracks a rotated box exactly
// when the rotation keeps it axis-aligned (multiples of 90 degrees);
// an arbitrary rotation can under-cover the true rotated extent,
// since the other six corners are never considered. This matches the
// original implementation's behavior rather than computing the true
// rotated bounding box from all eight corners.
func (b Bounds) RotatedAround(center Point, r Rotation) Bounds {
	return BoundsFromPoints(
		r.RotateCoord(center, b.Base),
		r.RotateCoord(center, b.End),
	)
}
