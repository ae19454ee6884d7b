// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	f := func(parts []string) bool {
		clean := make([]string, 0, len(parts))
		for _, p := range parts {
			if p != "" && partRe.MatchString(p) {
				clean = append(clean, p)
			}
		}
		p, err := New(clean...)
		if err != nil {
			return false
		}
		back, err := Parse(p.String())
		if err != nil {
			return false
		}
		return p.Equal(back)
	}
	assert.NoError(t, quick.Check(f, nil))
}

func TestRootStringIsDot(t *testing.T) {
	assert.Equal(t, ".", Root.String())
	p, err := Parse(".")
	assert.NoError(t, err)
	assert.True(t, p.IsRoot())
}

func TestInvalidPartRejected(t *testing.T) {
	_, err := New("bad part")
	assert.ErrorIs(t, err, ErrInvalidPath)
	_, err = Parse(".a..b")
	assert.Error(t, err)
}

func TestIsChildOfAndDescendantOf(t *testing.T) {
	root := MustParse(".a")
	child := MustParse(".a.b")
	grandchild := MustParse(".a.b.c")
	assert.True(t, child.IsChildOf(root))
	assert.False(t, grandchild.IsChildOf(root))
	assert.True(t, grandchild.IsDescendantOf(root))
	assert.False(t, root.IsDescendantOf(root))
	assert.True(t, root.IsDescendantOfInclusive(root))
}

func TestCommonAncestor(t *testing.T) {
	a := MustParse(".a.b.c")
	b := MustParse(".a.b.d")
	assert.Equal(t, ".a.b", a.CommonAncestorWith(b).String())
}

func TestOrderingIsTotal(t *testing.T) {
	paths := []Path{
		MustParse(".a.b"),
		MustParse(".a"),
		MustParse(".b"),
		MustParse(".a.a"),
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].Less(paths[j]) })
	got := make([]string, len(paths))
	for i, p := range paths {
		got[i] = p.String()
	}
	assert.Equal(t, []string{".a", ".b", ".a.a", ".a.b"}, got)

	// antisymmetric + transitive spot checks
	x, y, z := paths[0], paths[1], paths[2]
	if x.Less(y) {
		assert.False(t, y.Less(x))
	}
	if x.Less(y) && y.Less(z) {
		assert.True(t, x.Less(z))
	}
}

func TestAncestorPaths(t *testing.T) {
	p := MustParse(".a.b.c")
	anc := p.AncestorPaths()
	assert.Equal(t, []string{".", ".a", ".a.b"}, []string{anc[0].String(), anc[1].String(), anc[2].String()})
}
