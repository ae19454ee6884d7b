// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativeFloatPlainLiteral(t *testing.T) {
	rv, err := ParseRelativeFloat("width", "w", "10")
	assert.NoError(t, err)
	s := NewScope()
	v, err := rv.Evaluate(s)
	assert.NoError(t, err)
	assert.Equal(t, float32(10), v)
}

func TestRelativeFloatPercentageOfSelf(t *testing.T) {
	rv, err := ParseRelativeFloat("opacity", "o", "50%")
	assert.NoError(t, err)
	s := NewScope()
	s.SetFloat("opacity", 100)
	v, err := rv.Evaluate(s)
	assert.NoError(t, err)
	assert.Equal(t, float32(50), v)
}

func TestRelativeFloatRelativeToOther(t *testing.T) {
	rv, err := ParseRelativeFloat("width", "w", "height")
	assert.NoError(t, err)
	s := NewScope()
	s.SetFloat("height", 10)
	v, err := rv.Evaluate(s)
	assert.NoError(t, err)
	assert.Equal(t, float32(10), v)
}

func TestRelativeFloatPercentageOfTarget(t *testing.T) {
	rv, err := ParseRelativeFloat("width", "w", "50height%")
	assert.NoError(t, err)
	s := NewScope()
	s.SetFloat("height", 10)
	s.SetFloat("width", 20) // width's own attribute value is the percent base
	v, err := rv.Evaluate(s)
	assert.NoError(t, err)
	// target(height=10) * multiplier(50) * own(width=20)/100 = 100
	assert.Equal(t, float32(100), v)
}

func TestRelativeFloatIdempotent(t *testing.T) {
	rv, err := ParseRelativeFloat("width", "w", "50height%")
	assert.NoError(t, err)
	s := NewScope()
	s.SetFloat("height", 10)
	s.SetFloat("width", 20)
	v1, err := rv.Evaluate(s)
	assert.NoError(t, err)
	v2, err := rv.Evaluate(s)
	assert.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestRelativeFloatMissingAncestorFails(t *testing.T) {
	rv, err := ParseRelativeFloat("width", "w", "height")
	assert.NoError(t, err)
	s := NewScope()
	_, err = rv.Evaluate(s)
	assert.ErrorIs(t, err, ErrMissingAncestorValue)
}

func TestScopeLookupByAbbreviation(t *testing.T) {
	s := NewScope()
	s.Alias("width", "w")
	s.SetFloat("width", 42)
	v, err := s.GetFloat("w")
	assert.NoError(t, err)
	assert.Equal(t, float32(42), v)
}

func TestScopeWrongTypeFails(t *testing.T) {
	s := NewScope()
	s.SetFloat("width", 42)
	_, err := s.GetInt("width")
	assert.ErrorIs(t, err, ErrMissingAncestorValue)
}

func TestTopologicalSortAcyclic(t *testing.T) {
	deps := map[string][]string{
		"width":  {"height"},
		"height": {},
		"depth":  {"width"},
	}
	order, err := TopologicalSortWithAliases(deps, nil)
	assert.NoError(t, err)
	pos := map[string]int{}
	for i, n := range order {
		pos[n] = i
	}
	assert.Less(t, pos["height"], pos["width"])
	assert.Less(t, pos["width"], pos["depth"])
}

func TestTopologicalSortCycleFails(t *testing.T) {
	deps := map[string][]string{
		"width":  {"height"},
		"height": {"width"},
	}
	_, err := TopologicalSortWithAliases(deps, nil)
	assert.ErrorIs(t, err, ErrAttributeCycle)
}

func TestTopologicalSortResolvesAliases(t *testing.T) {
	deps := map[string][]string{
		"width":  {"h"}, // abbreviation for height
		"height": {},
	}
	order, err := TopologicalSortWithAliases(deps, map[string]string{"h": "height"})
	assert.NoError(t, err)
	pos := map[string]int{}
	for i, n := range order {
		pos[n] = i
	}
	assert.Less(t, pos["height"], pos["width"])
}
