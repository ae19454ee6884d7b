// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/value"
)

// HideShow clamps its descendants' hide and show distances up to its
// own, when its corresponding flag is set. It is layout-only.
type HideShow struct {
	HideShow *feature.HideShow
}

// NewHideShow returns a HideShow with both distances at zero and
// clamping disabled.
func NewHideShow() *HideShow { return &HideShow{HideShow: feature.NewHideShow()} }

// UpdateFromAttributes implements [Element].
func (h *HideShow) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, h.HideShow)
}

// Attributes implements [Element].
func (h *HideShow) Attributes() map[string]string { return collectAttributes(h.HideShow) }

// UpdateAncestorValues implements [Element].
func (h *HideShow) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, h.HideShow)
}

// Render implements [Element]: it walks every rendered descendant of
// p and raises its hide/show distance up to this element's own,
// where the corresponding clamp flag is set.
func (h *HideShow) Render(p path.Path, ctx *Context) error {
	hide := h.HideShow.HideDistance.Value
	show := h.HideShow.ShowDistance.Value
	clampHide := h.HideShow.ClampDescendantHideDistances.Value
	clampShow := h.HideShow.ClampDescendantShowDistances.Value
	if !clampHide && !clampShow {
		return nil
	}
	for _, cp := range ctx.Tree.Paths() {
		if !cp.IsDescendantOf(p) {
			continue
		}
		g, ok := ctx.Tree.Get(cp)
		if !ok {
			continue
		}
		newHide := feature.ClampDistance(clampHide, hide, g.HideDistance)
		newShow := feature.ClampDistance(clampShow, show, g.ShowDistance)
		g.SetDistances(newHide, newShow)
	}
	return nil
}
