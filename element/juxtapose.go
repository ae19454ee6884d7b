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

// Juxtapose lays its children out one after another along an axis,
// with optional spacing, perpendicular alignment, and centering
// within its own declared axis length.
type Juxtapose struct {
	Size      *feature.Size
	Juxtapose *feature.JuxtaposeSet
}

// NewJuxtapose returns a Juxtapose with all features at their
// defaults.
func NewJuxtapose() *Juxtapose {
	return &Juxtapose{Size: feature.NewSize(), Juxtapose: feature.NewJuxtaposeSet()}
}

func (j *Juxtapose) features() []feature.Feature { return []feature.Feature{j.Size, j.Juxtapose} }

// UpdateFromAttributes implements [Element].
func (j *Juxtapose) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, j.features()...)
}

// Attributes implements [Element].
func (j *Juxtapose) Attributes() map[string]string { return collectAttributes(j.features()...) }

// UpdateAncestorValues implements [Element].
func (j *Juxtapose) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, j.features()...)
}

// Render implements [Element]: it sweeps children along the chosen
// axis, centers the row within the declared axis length if one was
// given, aligns them on the two perpendicular axes if an axis was
// explicitly chosen, then writes an empty geometry at the resulting
// bounds' min corner.
func (j *Juxtapose) Render(p path.Path, ctx *Context) error {
	axis := j.Juxtapose.Axis.Value.Value
	j.Juxtapose.Juxtapose(ctx.Children, ctx.Tree)

	if !feature.AxisLengthDefaulted(j.Size, axis) {
		w, h, d := j.Size.Lengths()
		j.Juxtapose.CenterWithinAxis(ctx.Children, ctx.Tree, math32.Pt(w, h, d).Get(axis))
	}

	total := j.Juxtapose.PositionedBoundsWithProvidedLengths(ctx.Children, ctx.Tree, j.Size)
	if !j.Juxtapose.Axis.Value.Defaulted {
		j.Juxtapose.Align(ctx.Children, ctx.Tree, total)
	}

	g := rendertree.NewGeometry()
	g.SetDeclaredBounds(math32.Bounds{End: total.Lengths()})
	g.SetPos(total.Base)
	ctx.Tree.Update(p, g)
	return nil
}
