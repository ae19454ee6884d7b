// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"strconv"

	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/value"
)

// Circular carries the radius and level of detail used by the sphere
// and cylinder elements to derive a mesh's slice count.
type Circular struct {
	Radius *value.Typed[float32]
	Detail *value.Typed[int]
}

// NewCircular returns a Circular defaulted to radius 1, detail 0.
func NewCircular() *Circular {
	return &Circular{
		Radius: value.NewDefault("radius", "r", float32(1)),
		Detail: value.NewDefault("detail", "dt", 0),
	}
}

// UpdateFromAttributes implements [Feature].
func (c *Circular) UpdateFromAttributes(attrs map[string]string) error {
	if s, ok := lookup(attrs, c.Radius.Name, c.Radius.Abbrev); ok {
		v, err := parseFloat(s)
		if err != nil {
			return err
		}
		c.Radius.SetValue(v)
	}
	if s, ok := lookup(attrs, c.Detail.Name, c.Detail.Abbrev); ok {
		v, err := parseInt(s)
		if err != nil {
			return err
		}
		c.Detail.SetValue(v)
	}
	return nil
}

// Attributes implements [Feature].
func (c *Circular) Attributes() map[string]string {
	out := map[string]string{}
	if !c.Radius.Defaulted {
		out[c.Radius.Name] = formatFloat(c.Radius.Value)
	}
	if !c.Detail.Defaulted {
		out[c.Detail.Name] = strconv.Itoa(c.Detail.Value)
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (c *Circular) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(c.Radius, scope, (*value.Scope).SetFloat)
	value.UpdateAncestorValues(c.Detail, scope, (*value.Scope).SetInt)
	return nil
}

// NumCircularSlices computes floor(log10(sqrt(detail+1)) * radius +
// 10), clamped to a minimum of 10: higher detail or radius produces a
// finer mesh, but the slice count never drops below the minimum that
// keeps a sphere or cylinder recognizable.
func (c *Circular) NumCircularSlices() int {
	detail := float32(c.Detail.Value)
	n := math32.Floor(math32.Log10(math32.Sqrt(detail+1))*c.Radius.Value + 10)
	if n < 10 {
		n = 10
	}
	return int(n)
}
