// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import "cogentcore.org/scene/value"

// Spacing carries the gap a juxtapose or grid element leaves between
// successive children along its layout axis.
type Spacing struct {
	Amount *value.Typed[float32]
}

// NewSpacing returns a Spacing defaulted to zero.
func NewSpacing() *Spacing {
	return &Spacing{Amount: value.NewDefault("spacing", "sp", float32(0))}
}

// UpdateFromAttributes implements [Feature].
func (s *Spacing) UpdateFromAttributes(attrs map[string]string) error {
	if str, ok := lookup(attrs, s.Amount.Name, s.Amount.Abbrev); ok {
		v, err := parseFloat(str)
		if err != nil {
			return err
		}
		s.Amount.SetValue(v)
	}
	return nil
}

// Attributes implements [Feature].
func (s *Spacing) Attributes() map[string]string {
	out := map[string]string{}
	if !s.Amount.Defaulted {
		out[s.Amount.Name] = formatFloat(s.Amount.Value)
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (s *Spacing) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(s.Amount, scope, (*value.Scope).SetFloat)
	return nil
}
