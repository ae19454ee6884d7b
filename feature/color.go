// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"cogentcore.org/scene/colors"
	"cogentcore.org/scene/value"
)

// Color carries an element's base color and darkness; optics (opacity)
// is kept as a separate [Optics] feature so opacity can be set and
// resolved for descendants independently of color.
type Color struct {
	Value    *value.Typed[colors.RGBA]
	Darkness *value.Typed[colors.UnitInterval]
}

// NewColor returns a Color defaulted to transparent black with no
// darkening.
func NewColor() *Color {
	return &Color{
		Value:    value.NewDefault("color", "c", colors.RGBA{}),
		Darkness: value.NewDefault("darkness", "dk", colors.UnitInterval(0)),
	}
}

// UpdateFromAttributes implements [Feature].
func (c *Color) UpdateFromAttributes(attrs map[string]string) error {
	if s, ok := lookup(attrs, c.Value.Name, c.Value.Abbrev); ok {
		v, err := colors.Parse(s)
		if err != nil {
			return err
		}
		c.Value.SetValue(v)
	}
	if s, ok := lookup(attrs, c.Darkness.Name, c.Darkness.Abbrev); ok {
		f, err := parseUnitInterval(s)
		if err != nil {
			return err
		}
		c.Darkness.SetValue(f)
	}
	return nil
}

// Attributes implements [Feature].
func (c *Color) Attributes() map[string]string {
	out := map[string]string{}
	if !c.Value.Defaulted {
		out[c.Value.Name] = c.Value.Value.String()
	}
	if !c.Darkness.Defaulted {
		out[c.Darkness.Name] = formatUnitInterval(c.Darkness.Value)
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (c *Color) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(c.Value, scope, (*value.Scope).SetColor)
	value.UpdateAncestorValues(c.Darkness, scope, (*value.Scope).SetUnitInterval)
	return nil
}

// ComputeColor returns the feature's color darkened by Darkness and
// with its alpha set from the given opacity.
func (c *Color) ComputeColor(opacity colors.UnitInterval) colors.RGBA {
	return c.Value.Value.DarkenBy(c.Darkness.Value.Clamp()).WithOpacity(opacity)
}
