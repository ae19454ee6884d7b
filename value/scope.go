// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the typed attribute values that give
// elements their dimensions: plain defaulted values, relative values
// that depend on an ancestor's published value, and the ancestor
// scope and topological resolution that make that possible.
package value

import (
	"errors"
	"fmt"

	"cogentcore.org/scene/colors"
	"cogentcore.org/scene/math32"
)

// Alignment is a one-dimensional alignment along an axis.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "?"
	}
}

// ErrMissingAncestorValue is returned when a scope lookup names an
// attribute that is absent, or bound to an incompatible type.
var ErrMissingAncestorValue = errors.New("missing ancestor value")

// entry is one bound value in a [Scope].
type entry struct {
	kind  string
	value any
}

// Scope is the ancestor-values mapping populated as the renderer
// descends the node tree: a mapping from attribute name (or
// abbreviation) to a typed value. Each feature publishes its
// non-defaulted values into a Scope before its children are
// rendered, and descendants look values up by full name or
// abbreviation.
type Scope struct {
	entries map[string]entry
	aliases map[string]string // abbreviation -> full name
}

// NewScope returns an empty Scope.
func NewScope() *Scope {
	return &Scope{entries: map[string]entry{}, aliases: map[string]string{}}
}

// Copy returns a shallow copy of s, suitable for passing to a single
// child during a render descent: children see the parent's published
// values, but mutations a child makes to its own copy do not leak
// back to siblings.
func (s *Scope) Copy() *Scope {
	if s == nil {
		return NewScope()
	}
	out := &Scope{
		entries: make(map[string]entry, len(s.entries)),
		aliases: make(map[string]string, len(s.aliases)),
	}
	for k, v := range s.entries {
		out.entries[k] = v
	}
	for k, v := range s.aliases {
		out.aliases[k] = v
	}
	return out
}

// Alias registers abbrev as an alternate name for full, so that
// lookups and sets of either name resolve to the same entry.
func (s *Scope) Alias(full, abbrev string) {
	if abbrev != "" && abbrev != full {
		s.aliases[abbrev] = full
	}
}

// Resolve returns the canonical name for name, following any
// registered alias.
func (s *Scope) Resolve(name string) string {
	if full, ok := s.aliases[name]; ok {
		return full
	}
	return name
}

func (s *Scope) set(name, kind string, v any) {
	s.entries[s.Resolve(name)] = entry{kind: kind, value: v}
}

func (s *Scope) get(name, kind string) (any, error) {
	e, ok := s.entries[s.Resolve(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not set", ErrMissingAncestorValue, name)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%w: %q is a %s, not a %s", ErrMissingAncestorValue, name, e.kind, kind)
	}
	return e.value, nil
}

// SetFloat publishes a float value under name.
func (s *Scope) SetFloat(name string, v float32) { s.set(name, "float", v) }

// GetFloat looks up a float value by full name or abbreviation.
func (s *Scope) GetFloat(name string) (float32, error) {
	v, err := s.get(name, "float")
	if err != nil {
		return 0, err
	}
	return v.(float32), nil
}

// SetInt publishes an int value under name.
func (s *Scope) SetInt(name string, v int) { s.set(name, "int", v) }

// GetInt looks up an int value.
func (s *Scope) GetInt(name string) (int, error) {
	v, err := s.get(name, "int")
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// SetBool publishes a bool value under name.
func (s *Scope) SetBool(name string, v bool) { s.set(name, "bool", v) }

// GetBool looks up a bool value.
func (s *Scope) GetBool(name string) (bool, error) {
	v, err := s.get(name, "bool")
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// SetUnitInterval publishes a [colors.UnitInterval] value under name.
func (s *Scope) SetUnitInterval(name string, v colors.UnitInterval) { s.set(name, "unit", v) }

// GetUnitInterval looks up a [colors.UnitInterval] value.
func (s *Scope) GetUnitInterval(name string) (colors.UnitInterval, error) {
	v, err := s.get(name, "unit")
	if err != nil {
		return 0, err
	}
	return v.(colors.UnitInterval), nil
}

// SetString publishes a string value under name.
func (s *Scope) SetString(name string, v string) { s.set(name, "string", v) }

// GetString looks up a string value.
func (s *Scope) GetString(name string) (string, error) {
	v, err := s.get(name, "string")
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// SetColor publishes an [colors.RGBA] value under name.
func (s *Scope) SetColor(name string, v colors.RGBA) { s.set(name, "color", v) }

// GetColor looks up an [colors.RGBA] value.
func (s *Scope) GetColor(name string) (colors.RGBA, error) {
	v, err := s.get(name, "color")
	if err != nil {
		return colors.RGBA{}, err
	}
	return v.(colors.RGBA), nil
}

// SetRotation publishes a [math32.Rotation] value under name.
func (s *Scope) SetRotation(name string, v math32.Rotation) { s.set(name, "rotation", v) }

// GetRotation looks up a [math32.Rotation] value.
func (s *Scope) GetRotation(name string) (math32.Rotation, error) {
	v, err := s.get(name, "rotation")
	if err != nil {
		return math32.Rotation{}, err
	}
	return v.(math32.Rotation), nil
}

// SetAxis publishes a [math32.Axis] value under name.
func (s *Scope) SetAxis(name string, v math32.Axis) { s.set(name, "axis", v) }

// GetAxis looks up a [math32.Axis] value.
func (s *Scope) GetAxis(name string) (math32.Axis, error) {
	v, err := s.get(name, "axis")
	if err != nil {
		return 0, err
	}
	return v.(math32.Axis), nil
}

// SetAlignment publishes an [Alignment] value under name.
func (s *Scope) SetAlignment(name string, v Alignment) { s.set(name, "alignment", v) }

// GetAlignment looks up an [Alignment] value.
func (s *Scope) GetAlignment(name string) (Alignment, error) {
	v, err := s.get(name, "alignment")
	if err != nil {
		return 0, err
	}
	return v.(Alignment), nil
}
