// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 point, bounds, and rotation
// primitives that the layout engine builds on: [Point], [Bounds], and
// [Rotation]. It is deliberately small -- it is not a general purpose
// vector/matrix library, just the arithmetic the renderer needs.
package math32

import (
	"github.com/chewxy/math32"
)

// Mathematical constants, re-exported from [github.com/chewxy/math32]
// so callers never need to import both packages.
const (
	Pi      = math32.Pi
	Infinity = math32.MaxFloat32 // the largest finite float32, not IEEE +Inf
)

// Abs, Sqrt, Sin, Cos, Atan, and Floor are thin wrappers around
// [github.com/chewxy/math32], which provides optimized float32
// implementations instead of converting through float64.
func Abs(x float32) float32   { return math32.Abs(x) }
func Sqrt(x float32) float32  { return math32.Sqrt(x) }
func Sin(x float32) float32   { return math32.Sin(x) }
func Cos(x float32) float32   { return math32.Cos(x) }
func Atan(x float32) float32  { return math32.Atan(x) }
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }
func Floor(x float32) float32 { return math32.Floor(x) }
func Log10(x float32) float32 { return math32.Log10(x) }
func IsNaN(x float32) bool    { return math32.IsNaN(x) }
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
func Clamp(x, lo, hi float32) float32 {
	return Max(lo, Min(hi, x))
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 { return rad * 180 / Pi }
