// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"strconv"

	"cogentcore.org/scene/value"
)

// Size is the canonical user of [value.TopologicalSortWithAliases]:
// width, height, and depth may each be relative to one another (and
// to ancestor values), so they must be evaluated in an order where
// each target is already published before it is read.
type Size struct {
	Width, Height, Depth *value.RelativeFloat
}

// NewSize returns a Size with width, height, and depth all defaulted
// to zero.
func NewSize() *Size {
	return &Size{
		Width:  value.DefaultRelativeFloat("width", "w", 0),
		Height: value.DefaultRelativeFloat("height", "h", 0),
		Depth:  value.DefaultRelativeFloat("depth", "d", 0),
	}
}

func (s *Size) fields() map[string]*value.RelativeFloat {
	return map[string]*value.RelativeFloat{
		"width": s.Width, "w": s.Width,
		"height": s.Height, "h": s.Height,
		"depth": s.Depth, "d": s.Depth,
	}
}

// UpdateFromAttributes implements [Feature].
func (s *Size) UpdateFromAttributes(attrs map[string]string) error {
	fields := s.fields()
	for key, str := range attrs {
		target, ok := fields[key]
		if !ok {
			continue
		}
		rv, err := value.ParseRelativeFloat(target.Name, target.Abbrev, str)
		if err != nil {
			return err
		}
		*target = *rv
	}
	return nil
}

// Attributes implements [Feature].
func (s *Size) Attributes() map[string]string {
	out := map[string]string{}
	for _, rv := range []*value.RelativeFloat{s.Width, s.Height, s.Depth} {
		if !rv.Defaulted {
			out[rv.Name] = encodeRelativeFloat(rv)
		}
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature]: it evaluates
// width, height, and depth in topological order, detecting cycles
// among the three (for example width relative to height while height
// is relative to width), then publishes each evaluated value before
// evaluating the next.
func (s *Size) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	byName := map[string]*value.RelativeFloat{
		"width":  s.Width,
		"height": s.Height,
		"depth":  s.Depth,
	}
	deps := map[string][]string{}
	aliases := map[string]string{"w": "width", "h": "height", "d": "depth"}
	for name, rv := range byName {
		d := rv.DependsOn()
		if full, ok := aliases[d]; ok {
			d = full
		}
		// A self-percentage reads the ancestor's value of the same name,
		// which is already in scope, so it adds no edge.
		if d != "" && d != name {
			deps[name] = []string{d}
		} else {
			deps[name] = nil
		}
	}
	order, err := value.TopologicalSortWithAliases(deps, aliases)
	if err != nil {
		return err
	}
	for _, name := range order {
		rv, ok := byName[name]
		if !ok {
			continue
		}
		if _, err := rv.Evaluate(scope); err != nil {
			return err
		}
		rv.UpdateAncestorValues(scope)
	}
	return nil
}

// Lengths returns the evaluated width, height, and depth as computed
// by the most recent [Size.ComputeAndUpdateAncestorValues].
func (s *Size) Lengths() (width, height, depth float32) {
	return s.Width.Computed(), s.Height.Computed(), s.Depth.Computed()
}

func encodeRelativeFloat(rv *value.RelativeFloat) string {
	out := ""
	if rv.Multiplier != 1 || rv.RelativeName == "" {
		out += strconv.FormatFloat(float64(rv.Multiplier), 'g', -1, 32)
	}
	out += rv.RelativeName
	if rv.IsPercentage {
		out += "%"
	}
	return out
}
