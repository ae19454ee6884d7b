// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"cogentcore.org/scene/colors"
	"cogentcore.org/scene/value"
)

// Optics carries an element's opacity, published separately from
// [Color] so an element can set opacity for descendants to inherit
// without also setting a color.
type Optics struct {
	Opacity *value.Typed[colors.UnitInterval]
}

// NewOptics returns an Optics defaulted to fully opaque.
func NewOptics() *Optics {
	return &Optics{Opacity: value.NewDefault("opacity", "o", colors.UnitInterval(1))}
}

// UpdateFromAttributes implements [Feature].
func (o *Optics) UpdateFromAttributes(attrs map[string]string) error {
	if s, ok := lookup(attrs, o.Opacity.Name, o.Opacity.Abbrev); ok {
		f, err := parseUnitInterval(s)
		if err != nil {
			return err
		}
		o.Opacity.SetValue(f)
	}
	return nil
}

// Attributes implements [Feature].
func (o *Optics) Attributes() map[string]string {
	out := map[string]string{}
	if !o.Opacity.Defaulted {
		out[o.Opacity.Name] = formatUnitInterval(o.Opacity.Value)
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (o *Optics) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(o.Opacity, scope, (*value.Scope).SetUnitInterval)
	return nil
}
