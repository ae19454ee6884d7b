// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Rotation is a 3x3 rotation matrix stored in row-major order. Yaw,
// pitch, and roll are Tait-Bryan angles in the yxz convention, which
// matches this module's y-up coordinate swap: yaw rotates around Y,
// pitch around X, roll around Z.
type Rotation struct {
	m [3][3]float32
}

// Identity returns the identity rotation.
func Identity() Rotation {
	r := Rotation{}
	r.m[0][0], r.m[1][1], r.m[2][2] = 1, 1, 1
	return r
}

// FromYawPitchRoll builds a Rotation from Tait-Bryan angles given in
// degrees, composed in yaw, then pitch, then roll order (R = Ry * Rx
// * Rz).
func FromYawPitchRoll(yawDeg, pitchDeg, rollDeg float32) Rotation {
	y := DegToRad(yawDeg)
	x := DegToRad(pitchDeg)
	z := DegToRad(rollDeg)

	ry := axisRotation(Y, y)
	rx := axisRotation(X, x)
	rz := axisRotation(Z, z)
	return ry.Mul(rx).Mul(rz)
}

func axisRotation(axis Axis, rad float32) Rotation {
	c, s := Cos(rad), Sin(rad)
	r := Identity()
	switch axis {
	case X:
		r.m[1][1], r.m[1][2] = c, -s
		r.m[2][1], r.m[2][2] = s, c
	case Y:
		r.m[0][0], r.m[0][2] = c, s
		r.m[2][0], r.m[2][2] = -s, c
	case Z:
		r.m[0][0], r.m[0][1] = c, -s
		r.m[1][0], r.m[1][1] = s, c
	}
	return r
}

// Mul returns the matrix product r*other, i.e. applying other first
// and then r.
func (r Rotation) Mul(other Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += r.m[i][k] * other.m[k][j]
			}
			out.m[i][j] = sum
		}
	}
	return out
}

// Apply rotates the vector p around the origin.
func (r Rotation) Apply(p Point) Point {
	v := [3]float32{p.X, p.Y, p.Z}
	var out [3]float32
	for i := 0; i < 3; i++ {
		out[i] = r.m[i][0]*v[0] + r.m[i][1]*v[1] + r.m[i][2]*v[2]
	}
	return Pt(out[0], out[1], out[2])
}

// RotateCoord rotates p around center by r: center + r*(p - center).
func (r Rotation) RotateCoord(center, p Point) Point {
	return center.Add(r.Apply(p.Sub(center)))
}

// Inverse returns the inverse rotation, which for an orthonormal
// rotation matrix is its transpose.
func (r Rotation) Inverse() Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.m[i][j] = r.m[j][i]
		}
	}
	return out
}

// YawPitchRoll extracts approximate Tait-Bryan angles in degrees.
// As in the original implementation, this uses [Atan] rather than
// [Atan2], which leaves a two-quadrant ambiguity in the result; this
// is a known quirk preserved rather than fixed, since code elsewhere
// depends on its exact (if imprecise) behavior.
func (r Rotation) YawPitchRoll() (yawDeg, pitchDeg, rollDeg float32) {
	pitch := Atan(-r.m[1][2] / Sqrt(1-r.m[1][2]*r.m[1][2]))
	yaw := Atan(r.m[0][2] / r.m[2][2])
	roll := Atan(r.m[1][0] / r.m[1][1])
	return RadToDeg(yaw), RadToDeg(pitch), RadToDeg(roll)
}
