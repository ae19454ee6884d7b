// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/value"
)

// Rotate rotates itself and its descendants in place around the
// center of its own positioned bounds. It is layout-only.
type Rotate struct {
	Rotate *feature.Rotate
}

// NewRotate returns a Rotate with no rotation applied.
func NewRotate() *Rotate { return &Rotate{Rotate: feature.NewRotate()} }

// UpdateFromAttributes implements [Element].
func (r *Rotate) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, r.Rotate)
}

// Attributes implements [Element].
func (r *Rotate) Attributes() map[string]string { return collectAttributes(r.Rotate) }

// UpdateAncestorValues implements [Element].
func (r *Rotate) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, r.Rotate)
}

// Render implements [Element]: it rotates p and its descendants
// around the center of p's positioned bounds, leaving that bounds'
// base unchanged.
func (r *Rotate) Render(p path.Path, ctx *Context) error {
	if r.Rotate.IsIdentity() {
		return nil
	}
	ctx.Tree.RotateParentAndDescendantsInPlace(p, r.Rotate.Rotation())
	return nil
}
