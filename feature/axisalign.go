// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/value"
)

// Axis carries the layout axis a juxtapose or street element sweeps
// its children along.
type Axis struct {
	Value *value.Typed[math32.Axis]
}

// NewAxis returns an Axis defaulted to X.
func NewAxis() *Axis {
	return &Axis{Value: value.NewDefault("axis", "ax", math32.X)}
}

// UpdateFromAttributes implements [Feature].
func (a *Axis) UpdateFromAttributes(attrs map[string]string) error {
	if s, ok := lookup(attrs, a.Value.Name, a.Value.Abbrev); ok {
		v, err := parseAxis(s)
		if err != nil {
			return err
		}
		a.Value.SetValue(v)
	}
	return nil
}

// Attributes implements [Feature].
func (a *Axis) Attributes() map[string]string {
	out := map[string]string{}
	if !a.Value.Defaulted {
		out[a.Value.Name] = a.Value.Value.String()
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (a *Axis) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(a.Value, scope, (*value.Scope).SetAxis)
	return nil
}

// Align carries the alignment a juxtapose element applies to its
// children on the two axes orthogonal to the layout axis.
type Align struct {
	Value *value.Typed[value.Alignment]
}

// NewAlign returns an Align defaulted to left.
func NewAlign() *Align {
	return &Align{Value: value.NewDefault("align", "al", value.AlignLeft)}
}

// UpdateFromAttributes implements [Feature].
func (a *Align) UpdateFromAttributes(attrs map[string]string) error {
	if s, ok := lookup(attrs, a.Value.Name, a.Value.Abbrev); ok {
		v, err := parseAlignment(s)
		if err != nil {
			return err
		}
		a.Value.SetValue(v)
	}
	return nil
}

// Attributes implements [Feature].
func (a *Align) Attributes() map[string]string {
	out := map[string]string{}
	if !a.Value.Defaulted {
		out[a.Value.Name] = a.Value.Value.String()
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (a *Align) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(a.Value, scope, (*value.Scope).SetAlignment)
	return nil
}
