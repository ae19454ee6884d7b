// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertree

import "cogentcore.org/scene/path"

// DiffKind identifies which field changed between two renders of the
// same path, or whether the path appeared or disappeared.
type DiffKind int

const (
	// FirstMissing marks a path present in the second tree but absent
	// from the first (the diff's receiver): a producer emits Remove.
	FirstMissing DiffKind = iota
	// SecondMissing marks a path present in the first tree but absent
	// from the second: a producer emits Add.
	SecondMissing
	Pos
	Bounds
	Color
	Text
)

// Diff is one recorded difference between two render trees at a path.
type Diff struct {
	Path path.Path
	Kind DiffKind
}

// DifferencesFrom compares t (the new tree) against prev (the old
// tree, typically a [Tree.Clone] snapshot taken before render), and
// returns one [Diff] per changed field, walking both trees in
// sorted-path order via a linear merge. A common path can contribute
// up to one Diff for each of Pos, Bounds, Color, and Text, in that
// order, if multiple fields changed.
func (t *Tree) DifferencesFrom(prev *Tree) []Diff {
	a := prev.sortedPaths()
	b := t.sortedPaths()

	var out []Diff
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := a[i].Compare(b[j]); {
		case c < 0:
			// a[i] exists in prev but not in t: it disappeared, so the
			// producer emits Remove.
			out = append(out, Diff{Path: a[i], Kind: FirstMissing})
			i++
		case c > 0:
			// b[j] exists in t but not in prev: it is new, so the
			// producer emits Add.
			out = append(out, Diff{Path: b[j], Kind: SecondMissing})
			j++
		default:
			out = append(out, fieldDiffs(a[i], prev, t)...)
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		out = append(out, Diff{Path: a[i], Kind: FirstMissing})
	}
	for ; j < len(b); j++ {
		out = append(out, Diff{Path: b[j], Kind: SecondMissing})
	}
	return out
}

func fieldDiffs(p path.Path, prev, next *Tree) []Diff {
	oldG, _ := prev.Get(p)
	newG, _ := next.Get(p)
	if oldG == nil || newG == nil {
		return nil
	}
	var out []Diff
	if !oldG.Pos.Eq(newG.Pos) {
		out = append(out, Diff{Path: p, Kind: Pos})
	}
	if oldG.Bounds() != newG.Bounds() {
		out = append(out, Diff{Path: p, Kind: Bounds})
	}
	if oldG.Color != newG.Color {
		out = append(out, Diff{Path: p, Kind: Color})
	}
	if oldG.Text != newG.Text {
		out = append(out, Diff{Path: p, Kind: Text})
	}
	return out
}
