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

// Padding reserves a bounds of max(own, children) per axis without
// moving its children.
type Padding struct {
	Size *feature.Size
}

// NewPadding returns a Padding with size defaulted to zero.
func NewPadding() *Padding { return &Padding{Size: feature.NewSize()} }

// UpdateFromAttributes implements [Element].
func (p *Padding) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, p.Size)
}

// Attributes implements [Element].
func (p *Padding) Attributes() map[string]string { return collectAttributes(p.Size) }

// UpdateAncestorValues implements [Element].
func (p *Padding) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, p.Size)
}

// Render implements [Element].
func (p *Padding) Render(pp path.Path, ctx *Context) error {
	ownW, ownH, ownD := p.Size.Lengths()

	var union math32.Bounds
	for _, c := range ctx.Children {
		union = union.Union(ctx.Tree.PositionedBoundsOf(c))
	}
	childLengths := union.Lengths()

	lengths := math32.Pt(
		math32.Max(ownW, childLengths.X),
		math32.Max(ownH, childLengths.Y),
		math32.Max(ownD, childLengths.Z),
	)

	g := rendertree.NewGeometry()
	g.SetDeclaredBounds(math32.Bounds{End: lengths})
	g.SetPos(union.Base)
	ctx.Tree.Update(pp, g)
	return nil
}
