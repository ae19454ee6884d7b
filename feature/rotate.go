// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/value"
)

// Rotate carries the yaw/pitch/roll (degrees) an element applies to
// itself and its descendants in place.
type Rotate struct {
	Yaw, Pitch, Roll *value.Typed[float32]
}

// NewRotate returns a Rotate defaulted to no rotation.
func NewRotate() *Rotate {
	return &Rotate{
		Yaw:   value.NewDefault("yaw", "yw", float32(0)),
		Pitch: value.NewDefault("pitch", "pt", float32(0)),
		Roll:  value.NewDefault("roll", "rl", float32(0)),
	}
}

func (r *Rotate) fields() []*value.Typed[float32] {
	return []*value.Typed[float32]{r.Yaw, r.Pitch, r.Roll}
}

// UpdateFromAttributes implements [Feature].
func (r *Rotate) UpdateFromAttributes(attrs map[string]string) error {
	for _, f := range r.fields() {
		if s, ok := lookup(attrs, f.Name, f.Abbrev); ok {
			v, err := parseFloat(s)
			if err != nil {
				return err
			}
			f.SetValue(v)
		}
	}
	return nil
}

// Attributes implements [Feature].
func (r *Rotate) Attributes() map[string]string {
	out := map[string]string{}
	for _, f := range r.fields() {
		if !f.Defaulted {
			out[f.Name] = formatFloat(f.Value)
		}
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (r *Rotate) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	for _, f := range r.fields() {
		value.UpdateAncestorValues(f, scope, (*value.Scope).SetFloat)
	}
	return nil
}

// Rotation returns the [math32.Rotation] this feature describes.
func (r *Rotate) Rotation() math32.Rotation {
	return math32.FromYawPitchRoll(r.Yaw.Value, r.Pitch.Value, r.Roll.Value)
}

// IsIdentity reports whether all three angles are still at their
// default of zero, so callers can skip the rotate pass entirely.
func (r *Rotate) IsIdentity() bool {
	return r.Yaw.Defaulted && r.Pitch.Defaulted && r.Roll.Defaulted
}
