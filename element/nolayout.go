// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/value"
)

// NoLayout contributes no geometry of its own; it only reserves its
// declared size as bounds for ancestors' layout math, leaving
// children exactly where they rendered.
type NoLayout struct {
	Size *feature.Size
}

// NewNoLayout returns a NoLayout with its size defaulted to zero.
func NewNoLayout() *NoLayout { return &NoLayout{Size: feature.NewSize()} }

// UpdateFromAttributes implements [Element].
func (n *NoLayout) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, n.Size)
}

// Attributes implements [Element].
func (n *NoLayout) Attributes() map[string]string { return collectAttributes(n.Size) }

// UpdateAncestorValues implements [Element].
func (n *NoLayout) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, n.Size)
}

// Render implements [Element]: it writes a geometry with no vertices
// (so it is never drawn) but a declared bounds equal to its own
// size, and leaves children untouched.
func (n *NoLayout) Render(p path.Path, ctx *Context) error {
	w, h, d := n.Size.Lengths()
	g := rendertree.NewGeometry()
	g.SetDeclaredBounds(math32.Bounds{End: math32.Pt(w, h, d)})
	ctx.Tree.Update(p, g)
	return nil
}
