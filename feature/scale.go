// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/value"
)

// Scale carries the target lengths the scale element and mesh-import
// element scale themselves to, and the axis whose factor to use when
// more than one axis has a target.
type Scale struct {
	Width, Height, Depth *value.Typed[float32]
	Axis                 *value.Typed[math32.Axis]
}

// NewScale returns a Scale with no target lengths set and the axis
// defaulted (meaning "use the minimum finite factor across axes").
func NewScale() *Scale {
	return &Scale{
		Width:  value.NewDefault("scale_width", "sw", float32(0)),
		Height: value.NewDefault("scale_height", "sh", float32(0)),
		Depth:  value.NewDefault("scale_depth", "sd", float32(0)),
		Axis:   value.NewDefault("scale_axis", "sax", math32.X),
	}
}

func (s *Scale) lengthFields() []*value.Typed[float32] {
	return []*value.Typed[float32]{s.Width, s.Height, s.Depth}
}

// UpdateFromAttributes implements [Feature].
func (s *Scale) UpdateFromAttributes(attrs map[string]string) error {
	for _, f := range s.lengthFields() {
		if str, ok := lookup(attrs, f.Name, f.Abbrev); ok {
			v, err := parseFloat(str)
			if err != nil {
				return err
			}
			f.SetValue(v)
		}
	}
	if str, ok := lookup(attrs, s.Axis.Name, s.Axis.Abbrev); ok {
		v, err := parseAxis(str)
		if err != nil {
			return err
		}
		s.Axis.SetValue(v)
	}
	return nil
}

// Attributes implements [Feature].
func (s *Scale) Attributes() map[string]string {
	out := map[string]string{}
	for _, f := range s.lengthFields() {
		if !f.Defaulted {
			out[f.Name] = formatFloat(f.Value)
		}
	}
	if !s.Axis.Defaulted {
		out[s.Axis.Name] = s.Axis.Value.String()
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (s *Scale) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	for _, f := range s.lengthFields() {
		value.UpdateAncestorValues(f, scope, (*value.Scope).SetFloat)
	}
	value.UpdateAncestorValues(s.Axis, scope, (*value.Scope).SetAxis)
	return nil
}

// ComputeScaleFactor compares the current lengths (w, h, d) against
// this feature's target lengths: if every target is still defaulted,
// the factor is 1 (no scaling declared). Otherwise each non-defaulted
// target with a non-zero current length yields a candidate factor of
// target/current; when the axis itself is defaulted the result is the
// minimum of those candidates (or 1 if none could be computed),
// otherwise it is the candidate for the named axis (or 1 if that axis
// has no usable candidate).
func (s *Scale) ComputeScaleFactor(w, h, d float32) float32 {
	targets := [3]*value.Typed[float32]{s.Width, s.Height, s.Depth}
	currents := [3]float32{w, h, d}

	allDefaulted := true
	for _, t := range targets {
		if !t.Defaulted {
			allDefaulted = false
			break
		}
	}
	if allDefaulted {
		return 1
	}

	var factors [3]float32
	var has [3]bool
	for i, t := range targets {
		if t.Defaulted || currents[i] == 0 {
			continue
		}
		factors[i] = t.Value / currents[i]
		has[i] = true
	}

	if s.Axis.Defaulted {
		best := float32(math32.Infinity)
		found := false
		for i, ok := range has {
			if !ok || math32.IsNaN(factors[i]) {
				continue
			}
			if factors[i] < best {
				best = factors[i]
				found = true
			}
		}
		if !found {
			return 1
		}
		return best
	}

	i := int(s.Axis.Value)
	if !has[i] {
		return 1
	}
	return factors[i]
}
