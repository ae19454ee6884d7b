// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/value"
)

// Scale rescales itself and its descendants by the factor its
// [feature.Scale] computes against its own current positioned
// bounds. It is layout-only: it never writes its own geometry,
// leaving the node tree to synthesize one from the rescaled children.
type Scale struct {
	Target *feature.Scale
}

// NewScale returns a Scale with no target lengths set.
func NewScale() *Scale { return &Scale{Target: feature.NewScale()} }

// UpdateFromAttributes implements [Element].
func (s *Scale) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, s.Target)
}

// Attributes implements [Element].
func (s *Scale) Attributes() map[string]string { return collectAttributes(s.Target) }

// UpdateAncestorValues implements [Element].
func (s *Scale) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, s.Target)
}

// Render implements [Element]: it measures its own positioned bounds
// (the union of its already-rendered children), computes the scale
// factor against that, and applies it to itself and every descendant.
func (s *Scale) Render(p path.Path, ctx *Context) error {
	current := ctx.Tree.PositionedBoundsOf(p).Lengths()
	factor := s.Target.ComputeScaleFactor(current.X, current.Y, current.Z)
	ctx.Tree.ScaleParentAndDescendantsBy(p, math32.Pt(factor, factor, factor))
	return nil
}
