// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import "cogentcore.org/scene/value"

// Text carries a label string a viewer renders at an element's
// position; the core never lays text out itself (spec Non-goals).
type Text struct {
	Value *value.Typed[string]
}

// NewText returns a Text defaulted to the empty string.
func NewText() *Text {
	return &Text{Value: value.NewDefault("text", "tx", "")}
}

// UpdateFromAttributes implements [Feature].
func (t *Text) UpdateFromAttributes(attrs map[string]string) error {
	if s, ok := lookup(attrs, t.Value.Name, t.Value.Abbrev); ok {
		t.Value.SetValue(s)
	}
	return nil
}

// Attributes implements [Feature].
func (t *Text) Attributes() map[string]string {
	out := map[string]string{}
	if !t.Value.Defaulted {
		out[t.Value.Name] = t.Value.Value
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (t *Text) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(t.Value, scope, (*value.Scope).SetString)
	return nil
}
