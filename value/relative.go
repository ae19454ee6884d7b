// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RelativeFloat is a numeric attribute value that may be a plain
// literal, a percentage of itself, or relative to another named
// attribute (optionally combined with a percentage of that target's
// own size). See [RelativeFloat.Evaluate] for the exact evaluation
// rule.
type RelativeFloat struct {
	Name      string
	Abbrev    string
	Defaulted bool

	Multiplier   float32
	IsPercentage bool
	RelativeName string // empty if not relative to another attribute

	computed float32
}

// relativeRe matches "[+-]?[digits.]?[name][%]?": an optional sign,
// an optional numeric multiplier, an optional target name, and an
// optional trailing percent sign. At least one of the numeric part or
// the name must be present.
var relativeRe = regexp.MustCompile(`^([+-]?[0-9]*\.?[0-9]*)([A-Za-z_][A-Za-z0-9_]*)?(%)?$`)

// ParseRelativeFloat parses an attribute string of the form
// "[+-]?[digits.]?[name][%]?" into its multiplier, relative-name, and
// percentage fields. A value with only a name is purely relative
// (multiplier defaults to 1).
func ParseRelativeFloat(name, abbrev, s string) (*RelativeFloat, error) {
	m := relativeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, fmt.Errorf("value: invalid attribute %q for %q", s, name)
	}
	numStr, relName, pct := m[1], m[2], m[3] == "%"
	if relName == "" && strings.Trim(numStr, "+-.") == "" {
		return nil, fmt.Errorf("value: invalid attribute %q for %q: no number or name", s, name)
	}

	mult := float32(1)
	if numStr != "" && numStr != "+" && numStr != "-" {
		f, err := strconv.ParseFloat(numStr, 32)
		if err != nil {
			return nil, fmt.Errorf("value: invalid attribute %q for %q: %w", s, name, err)
		}
		mult = float32(f)
	} else if numStr == "-" {
		mult = -1
	}

	return &RelativeFloat{
		Name:         name,
		Abbrev:       abbrev,
		Multiplier:   mult,
		IsPercentage: pct,
		RelativeName: relName,
		Defaulted:    false,
	}, nil
}

// DefaultRelativeFloat returns a [RelativeFloat] at its default
// value, flagged as Defaulted until [RelativeFloat.SetValue] or a
// reparse via [ParseRelativeFloat] is applied.
func DefaultRelativeFloat(name, abbrev string, defaultMult float32) *RelativeFloat {
	return &RelativeFloat{Name: name, Abbrev: abbrev, Multiplier: defaultMult, Defaulted: true}
}

// SetValue sets a plain literal multiplier and clears Defaulted.
func (r *RelativeFloat) SetValue(mult float32) {
	r.Multiplier = mult
	r.Defaulted = false
}

// Evaluate resolves r against scope, following the rule from the
// specification:
//   - not relative, not percentage: multiplier * stored (stored == 1
//     for a bare literal created via SetValue, since the literal is
//     already folded into Multiplier)
//   - not relative, percentage: multiplier is itself the percent, of
//     r's own Name looked up in scope
//   - relative: scope.GetFloat(RelativeName) * multiplier, then if
//     also percentage, multiplied again by scope.GetFloat(Name)/100
//
// The computed literal is cached on r (as if written back into
// itself) so repeated evaluation against the same scope is
// idempotent; [RelativeFloat.Evaluate] must be called before
// [RelativeFloat.UpdateAncestorValues] publishes the plain value.
func (r *RelativeFloat) Evaluate(s *Scope) (float32, error) {
	switch {
	case r.RelativeName == "" && !r.IsPercentage:
		r.computed = r.Multiplier
	case r.RelativeName == "" && r.IsPercentage:
		own, err := s.GetFloat(r.Name)
		if err != nil {
			return 0, err
		}
		r.computed = r.Multiplier / 100 * own
	default:
		target, err := s.GetFloat(r.RelativeName)
		if err != nil {
			return 0, err
		}
		v := target * r.Multiplier
		if r.IsPercentage {
			own, err := s.GetFloat(r.Name)
			if err != nil {
				return 0, err
			}
			v *= own / 100
		}
		r.computed = v
	}
	return r.computed, nil
}

// UpdateAncestorValues publishes r's already-[RelativeFloat.Evaluate]d
// computed value into s under its own name, unless r is Defaulted.
func (r *RelativeFloat) UpdateAncestorValues(s *Scope) {
	s.Alias(r.Name, r.Abbrev)
	if r.Defaulted {
		return
	}
	s.SetFloat(r.Name, r.computed)
}

// Computed returns the literal value cached by the most recent call
// to [RelativeFloat.Evaluate].
func (r *RelativeFloat) Computed() float32 { return r.computed }

// DependsOn reports the attribute name r's evaluation depends on, if
// any: RelativeName when relative, or r's own Name when it is a
// self-percentage, or "" when r has no dependency.
func (r *RelativeFloat) DependsOn() string {
	if r.RelativeName != "" {
		return r.RelativeName
	}
	if r.IsPercentage {
		return r.Name
	}
	return ""
}
