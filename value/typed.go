// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Typed stores a value of type T along with a name, a short
// abbreviation, and whether the value is still at its default. Only
// non-defaulted values propagate into a [Scope].
type Typed[T any] struct {
	Name      string
	Abbrev    string
	Value     T
	Defaulted bool
}

// NewDefault returns a Typed value starting out at its default.
func NewDefault[T any](name, abbrev string, def T) *Typed[T] {
	return &Typed[T]{Name: name, Abbrev: abbrev, Value: def, Defaulted: true}
}

// SetValue sets v's value and clears Defaulted.
func (v *Typed[T]) SetValue(val T) {
	v.Value = val
	v.Defaulted = false
}

// UpdateAncestorValues writes v into s under its name (and
// abbreviation alias) iff v is not defaulted, through the
// caller-supplied setter, since Go generics cannot express "if T is
// one of these concrete types" directly.
func UpdateAncestorValues[T any](v *Typed[T], s *Scope, setter func(s *Scope, name string, val T)) {
	s.Alias(v.Name, v.Abbrev)
	if v.Defaulted {
		return
	}
	setter(s, v.Name, v.Value)
}
