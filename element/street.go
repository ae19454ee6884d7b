// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/value"
	"cogentcore.org/scene/vshape"
)

// Street arranges its last child as a street running along an axis,
// flanked by its preceding children ("houses") alternating to the two
// sides. Houses are placed against a synthetic grid whose two
// perpendicular-axis columns hold the near and far side, and whose
// along-axis rows hold successive house pairs; far-side houses are
// then rotated 180° in place so they face back toward the street. The
// street itself is finally stretched along the axis to span the
// houses' combined length plus spacing. It is layout-only.
type Street struct {
	Axis    *feature.Axis
	Spacing *feature.Spacing
}

// NewStreet returns a Street with axis X and zero spacing.
func NewStreet() *Street {
	return &Street{Axis: feature.NewAxis(), Spacing: feature.NewSpacing()}
}

func (s *Street) features() []feature.Feature { return []feature.Feature{s.Axis, s.Spacing} }

// UpdateFromAttributes implements [Element].
func (s *Street) UpdateFromAttributes(attrs map[string]string) error {
	return applyAttributes(attrs, s.features()...)
}

// Attributes implements [Element].
func (s *Street) Attributes() map[string]string { return collectAttributes(s.features()...) }

// UpdateAncestorValues implements [Element].
func (s *Street) UpdateAncestorValues(scope *value.Scope) error {
	return publishAncestorValues(scope, s.features()...)
}

// Render implements [Element].
func (s *Street) Render(p path.Path, ctx *Context) error {
	if len(ctx.Children) == 0 {
		return nil
	}
	street := ctx.Children[len(ctx.Children)-1]
	houses := ctx.Children[:len(ctx.Children)-1]
	if len(houses) == 0 {
		return nil
	}

	axis := s.Axis.Value.Value
	perp := math32.OppositeAxis(axis)
	spacing := s.Spacing.Amount.Value

	const nearCol, farCol = 0, 2
	rows := (len(houses) + 1) / 2
	grid := vshape.NewGrid(rows, 3, spacing)

	sideOf := func(i int) int {
		if i%2 == 0 {
			return nearCol
		}
		return farCol
	}

	for i, h := range houses {
		row, col := i/2, sideOf(i)
		b := ctx.Tree.PositionedBoundsOf(h)
		grid.Measure(vshape.Cell{Row: row, Col: col, Width: b.Length(perp), Depth: b.Length(axis)})
	}
	streetBounds := ctx.Tree.PositionedBoundsOf(street)
	grid.Measure(vshape.Cell{Row: 0, Col: 1, Width: streetBounds.Length(perp), Depth: streetBounds.Length(axis)})

	rotation180 := math32.FromYawPitchRoll(180, 0, 0)
	for i, h := range houses {
		row, col := i/2, sideOf(i)
		offset := grid.Offset(row, col)
		b := ctx.Tree.PositionedBoundsOf(h)
		delta := math32.Point{}.With(perp, offset.X-b.Base.Get(perp)).With(axis, offset.Z-b.Base.Get(axis))
		ctx.Tree.MoveParentAndDescendantsBy(h, delta)
		if col == farCol {
			ctx.Tree.RotateParentAndDescendantsInPlace(h, rotation180)
		}
	}

	streetOffset := grid.Offset(0, 1)
	sb := ctx.Tree.PositionedBoundsOf(street)
	streetDelta := math32.Point{}.With(perp, streetOffset.X-sb.Base.Get(perp)).With(axis, streetOffset.Z-sb.Base.Get(axis))
	ctx.Tree.MoveParentAndDescendantsBy(street, streetDelta)

	var houseUnion math32.Bounds
	for _, h := range houses {
		houseUnion = houseUnion.Union(ctx.Tree.PositionedBoundsOf(h))
	}
	target := houseUnion.Length(axis) + spacing
	sb = ctx.Tree.PositionedBoundsOf(street)
	if g, ok := ctx.Tree.Get(street); ok {
		g.StretchBy(axis, target-sb.Length(axis))
	}
	return nil
}
