// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feature implements the composable attribute mixins that
// elements combine to get their behavior: size, color, optics,
// hide/show, rotate, padding, spacing, axis/align, circular, text,
// scale, and the juxtapose attribute set. Each feature parses itself
// from a string attribute map, round-trips back to one, and publishes
// its non-defaulted values into a [value.Scope] during render.
package feature

import "cogentcore.org/scene/value"

// Feature is implemented by every attribute mixin.
type Feature interface {
	// UpdateFromAttributes parses attrs (by full name or
	// abbreviation) into the feature's fields.
	UpdateFromAttributes(attrs map[string]string) error

	// Attributes round-trips the feature's current state back into
	// a string map.
	Attributes() map[string]string

	// ComputeAndUpdateAncestorValues resolves any relative values
	// against scope and publishes the feature's non-defaulted values
	// into scope for descendants to see.
	ComputeAndUpdateAncestorValues(scope *value.Scope) error
}
