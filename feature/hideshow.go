// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import "cogentcore.org/scene/value"

// HideShow carries an element's hide/show distances, beyond which a
// viewer should stop or start drawing it, and two flags controlling
// whether descendants' own distances are clamped up to this element's
// during render.
type HideShow struct {
	HideDistance *value.Typed[float32]
	ShowDistance *value.Typed[float32]

	ClampDescendantHideDistances *value.Typed[bool]
	ClampDescendantShowDistances *value.Typed[bool]
}

// NewHideShow returns a HideShow with both distances defaulted to
// zero (no effect) and clamping disabled.
func NewHideShow() *HideShow {
	return &HideShow{
		HideDistance:                 value.NewDefault("hide_distance", "hd", float32(0)),
		ShowDistance:                 value.NewDefault("show_distance", "sd", float32(0)),
		ClampDescendantHideDistances: value.NewDefault("clamp_descendant_hide_distances", "cdhd", false),
		ClampDescendantShowDistances: value.NewDefault("clamp_descendant_show_distances", "cdsd", false),
	}
}

func (h *HideShow) fields() []*value.Typed[float32] {
	return []*value.Typed[float32]{h.HideDistance, h.ShowDistance}
}

// UpdateFromAttributes implements [Feature].
func (h *HideShow) UpdateFromAttributes(attrs map[string]string) error {
	for _, f := range h.fields() {
		if s, ok := lookup(attrs, f.Name, f.Abbrev); ok {
			v, err := parseFloat(s)
			if err != nil {
				return err
			}
			f.SetValue(v)
		}
	}
	for _, f := range []*value.Typed[bool]{h.ClampDescendantHideDistances, h.ClampDescendantShowDistances} {
		if s, ok := lookup(attrs, f.Name, f.Abbrev); ok {
			v, err := parseBool(s)
			if err != nil {
				return err
			}
			f.SetValue(v)
		}
	}
	return nil
}

// Attributes implements [Feature].
func (h *HideShow) Attributes() map[string]string {
	out := map[string]string{}
	for _, f := range h.fields() {
		if !f.Defaulted {
			out[f.Name] = formatFloat(f.Value)
		}
	}
	for _, f := range []*value.Typed[bool]{h.ClampDescendantHideDistances, h.ClampDescendantShowDistances} {
		if !f.Defaulted {
			out[f.Name] = boolString(f.Value)
		}
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (h *HideShow) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	value.UpdateAncestorValues(h.HideDistance, scope, (*value.Scope).SetFloat)
	value.UpdateAncestorValues(h.ShowDistance, scope, (*value.Scope).SetFloat)
	value.UpdateAncestorValues(h.ClampDescendantHideDistances, scope, (*value.Scope).SetBool)
	value.UpdateAncestorValues(h.ClampDescendantShowDistances, scope, (*value.Scope).SetBool)
	return nil
}

// ClampDistance raises distance up to this element's own distance
// when the corresponding clamp flag is set, as applied to a
// descendant's hide or show distance during render.
func ClampDistance(clamp bool, ancestor, descendant float32) float32 {
	if clamp && descendant < ancestor {
		return ancestor
	}
	return descendant
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
