// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/value"
)

// JuxtaposeSet composes the axis, align, and spacing features the
// juxtapose element needs to lay its children out one after another.
type JuxtaposeSet struct {
	Axis      *Axis
	Alignment *Align
	Spacing   *Spacing
}

// NewJuxtaposeSet returns a JuxtaposeSet with default axis (X),
// alignment (left), and spacing (0).
func NewJuxtaposeSet() *JuxtaposeSet {
	return &JuxtaposeSet{
		Axis:      NewAxis(),
		Alignment: NewAlign(),
		Spacing:   NewSpacing(),
	}
}

// UpdateFromAttributes implements [Feature].
func (j *JuxtaposeSet) UpdateFromAttributes(attrs map[string]string) error {
	for _, f := range []Feature{j.Axis, j.Alignment, j.Spacing} {
		if err := f.UpdateFromAttributes(attrs); err != nil {
			return err
		}
	}
	return nil
}

// Attributes implements [Feature].
func (j *JuxtaposeSet) Attributes() map[string]string {
	out := map[string]string{}
	for _, f := range []Feature{j.Axis, j.Alignment, j.Spacing} {
		for k, v := range f.Attributes() {
			out[k] = v
		}
	}
	return out
}

// ComputeAndUpdateAncestorValues implements [Feature].
func (j *JuxtaposeSet) ComputeAndUpdateAncestorValues(scope *value.Scope) error {
	for _, f := range []Feature{j.Axis, j.Alignment, j.Spacing} {
		if err := f.ComputeAndUpdateAncestorValues(scope); err != nil {
			return err
		}
	}
	return nil
}

// Juxtapose sweeps paths (in the order given, typically child order)
// along j's axis, moving each one so its positioned bounds starts
// where the previous one's ended plus j's spacing; no spacing is
// added after the last child.
func (j *JuxtaposeSet) Juxtapose(paths []path.Path, tree *rendertree.Tree) {
	axis := j.Axis.Value.Value
	spacing := j.Spacing.Amount.Value

	cursor := float32(0)
	for i, p := range paths {
		b := tree.PositionedBoundsOf(p)
		delta := math32.Point{}.With(axis, cursor-b.Base.Get(axis))
		tree.MoveParentAndDescendantsBy(p, delta)

		cursor += b.Length(axis)
		if i != len(paths)-1 {
			cursor += spacing
		}
	}
}

// Align shifts each of paths on the two axes orthogonal to axis, so
// that its positioned bounds land at j's alignment (left, center, or
// right) within total on each of those axes. A child whose positioned
// bounds are the zero bounds is treated as having no bounds and is
// left unshifted, per the reference implementation's Bounds{}+x==x
// identity.
func (j *JuxtaposeSet) Align(paths []path.Path, tree *rendertree.Tree, total math32.Bounds) {
	axis := j.Axis.Value.Value
	align := j.Alignment.Value.Value
	perp := math32.Perpendiculars(axis)

	for _, p := range paths {
		b := tree.PositionedBoundsOf(p)
		if b.IsZero() {
			continue
		}
		delta := math32.Point{}
		for _, a := range perp {
			var offset float32
			switch align {
			case value.AlignLeft:
				offset = total.Base.Get(a) - b.Base.Get(a)
			case value.AlignCenter:
				offset = total.Center().Get(a) - b.Center().Get(a)
			case value.AlignRight:
				offset = total.End.Get(a) - b.End.Get(a)
			}
			delta = delta.With(a, offset)
		}
		tree.MoveParentAndDescendantsBy(p, delta)
	}
}

// CenterWithinAxis distributes any surplus between the sum of paths'
// lengths along j's axis and axisLength as equal half-offsets at
// both ends: every child is shifted by half the surplus. Callers only
// invoke this when the axis length was explicitly set, since an
// unconstrained axis length has no surplus to distribute.
func (j *JuxtaposeSet) CenterWithinAxis(paths []path.Path, tree *rendertree.Tree, axisLength float32) {
	axis := j.Axis.Value.Value
	var sum float32
	for _, p := range paths {
		sum += tree.PositionedBoundsOf(p).Length(axis)
	}
	half := (axisLength - sum) / 2
	if half == 0 {
		return
	}
	delta := math32.Point{}.With(axis, half)
	for _, p := range paths {
		tree.MoveParentAndDescendantsBy(p, delta)
	}
}

// PositionedBoundsWithProvidedLengths returns the union of paths'
// positioned bounds, with each axis that size declares non-defaulted
// overridden to run from that union's base out to the declared
// length. This is the target rectangle [JuxtaposeSet.Align] aligns
// children within: explicit width/height/depth take precedence over
// whatever the children's own bounds happen to sum to.
func (j *JuxtaposeSet) PositionedBoundsWithProvidedLengths(paths []path.Path, tree *rendertree.Tree, size *Size) math32.Bounds {
	var total math32.Bounds
	for _, p := range paths {
		total = total.Union(tree.PositionedBoundsOf(p))
	}
	base, end := total.Base, total.End
	if !size.Width.Defaulted {
		end = end.With(math32.X, base.X+size.Width.Computed())
	}
	if !size.Height.Defaulted {
		end = end.With(math32.Y, base.Y+size.Height.Computed())
	}
	if !size.Depth.Defaulted {
		end = end.With(math32.Z, base.Z+size.Depth.Computed())
	}
	return math32.Bounds{Base: base, End: end}
}

// AxisLengthDefaulted reports whether size's dimension along axis was
// left at its default (unset) value.
func AxisLengthDefaulted(size *Size, axis math32.Axis) bool {
	switch axis {
	case math32.Y:
		return size.Height.Defaulted
	case math32.Z:
		return size.Depth.Defaulted
	default:
		return size.Width.Defaulted
	}
}
