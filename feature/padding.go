// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import "cogentcore.org/scene/value"

// Padding carries the uniform padding amount used by the padding and
// plane elements to inset (or outset) their declared size around
// their descendants.
type Padding struct {
	Amount *value.Typed[float32]
}

// NewPadding returns a Padding defaulted to zero.
func NewPadding() *Padding {
	return &Padding{Amount: value.NewDefault("padding", "p", float32(0))}
}

// UpdateFromAttributes implements [Feature].
func (p *Padding) UpdateFromAttributes(attrs map[string]string) error {
	if s, ok := lookup(attrs, p.Amount.Name, p.Amount.Abbrev); ok {
		v, err := parseFloat(s)
		if err != nil {
			return err
		}
		p.Amount.SetValue(v)
	}
	return nil
}

// Attributes implements [Feature].
func (p *Padding) Attributes() map[string]string {
	out := map[string]string{}
	if !p.Amount.Defaulted {
		out[p.Amount.Name] = formatFloat(p.Amount.Value)
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (p *Padding) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(p.Amount, scope, (*value.Scope).SetFloat)
	return nil
}
