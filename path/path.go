// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path implements the dot-separated node path addressing used
// throughout the layout engine: an explicit part regex, and the
// ordering and ancestry relations the render tree and node tree
// require.
package path

import (
	"fmt"
	"regexp"
	"strings"
)

// partRe matches a single valid path part.
var partRe = regexp.MustCompile(`^[A-Za-z0-9:_-]+$`)

// Path is an ordered sequence of name parts. The zero value is the
// empty path, ".".
type Path struct {
	parts []string
}

// Root is the empty path, ".".
var Root = Path{}

// New constructs a Path from individual parts, validating each one.
func New(parts ...string) (Path, error) {
	for _, p := range parts {
		if !partRe.MatchString(p) {
			return Path{}, fmt.Errorf("path: %w: invalid part %q", ErrInvalidPath, p)
		}
	}
	out := make([]string, len(parts))
	copy(out, parts)
	return Path{parts: out}, nil
}

// ErrInvalidPath is returned when a path part fails the part regex,
// or a dotted string is malformed (e.g. contains "..").
var ErrInvalidPath = fmt.Errorf("invalid path")

// Parse parses a dot-separated string such as ".a.b.c" or the bare
// root "." into a Path.
func Parse(s string) (Path, error) {
	if s == "." || s == "" {
		return Root, nil
	}
	if !strings.HasPrefix(s, ".") {
		return Path{}, fmt.Errorf("path: %w: %q must start with '.'", ErrInvalidPath, s)
	}
	rest := s[1:]
	if rest == "" || strings.Contains(rest, "..") {
		return Path{}, fmt.Errorf("path: %w: %q has an empty segment", ErrInvalidPath, s)
	}
	return New(strings.Split(rest, ".")...)
}

// MustParse parses s and panics on error; intended for tests and
// literal constants, not for untrusted input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders p in dot form: ".a.b.c", or "." for the root.
func (p Path) String() string {
	if len(p.parts) == 0 {
		return "."
	}
	return "." + strings.Join(p.parts, ".")
}

// IsRoot reports whether p is the empty path.
func (p Path) IsRoot() bool { return len(p.parts) == 0 }

// Len returns the number of parts in p.
func (p Path) Len() int { return len(p.parts) }

// Part returns the i-th part of p.
func (p Path) Part(i int) string { return p.parts[i] }

// First returns the first part of p, or "" for the root.
func (p Path) First() string {
	if p.IsRoot() {
		return ""
	}
	return p.parts[0]
}

// Last returns the last part of p, or "" for the root.
func (p Path) Last() string {
	if p.IsRoot() {
		return ""
	}
	return p.parts[len(p.parts)-1]
}

// WithoutFirst returns p with its first part removed.
func (p Path) WithoutFirst() Path {
	if p.IsRoot() {
		return p
	}
	return Path{parts: append([]string{}, p.parts[1:]...)}
}

// WithoutLast returns p with its last part removed.
func (p Path) WithoutLast() Path {
	if p.IsRoot() {
		return p
	}
	return Path{parts: append([]string{}, p.parts[:len(p.parts)-1]...)}
}

// Join returns p concatenated with the given parts, appended in
// order and validated individually.
func (p Path) Join(parts ...string) (Path, error) {
	np, err := New(parts...)
	if err != nil {
		return Path{}, err
	}
	return Path{parts: append(append([]string{}, p.parts...), np.parts...)}, nil
}

// Concat returns p followed by other.
func (p Path) Concat(other Path) Path {
	return Path{parts: append(append([]string{}, p.parts...), other.parts...)}
}

// Equal reports whether p and other denote the same path.
func (p Path) Equal(other Path) bool {
	return p.String() == other.String()
}

// IsChildOf reports whether p is a direct child of parent.
func (p Path) IsChildOf(parent Path) bool {
	return p.Len() == parent.Len()+1 && p.WithoutLast().Equal(parent)
}

// IsDescendantOf reports whether p is a strict descendant of
// ancestor (p != ancestor).
func (p Path) IsDescendantOf(ancestor Path) bool {
	if p.Len() <= ancestor.Len() {
		return false
	}
	for i := 0; i < ancestor.Len(); i++ {
		if p.parts[i] != ancestor.parts[i] {
			return false
		}
	}
	return true
}

// IsDescendantOfInclusive reports whether p equals ancestor or is a
// strict descendant of it.
func (p Path) IsDescendantOfInclusive(ancestor Path) bool {
	return p.Equal(ancestor) || p.IsDescendantOf(ancestor)
}

// CommonAncestorWith returns the longest path that is an ancestor of
// (or equal to) both p and other.
func (p Path) CommonAncestorWith(other Path) Path {
	n := p.Len()
	if other.Len() < n {
		n = other.Len()
	}
	i := 0
	for i < n && p.parts[i] == other.parts[i] {
		i++
	}
	return Path{parts: append([]string{}, p.parts[:i]...)}
}

// AncestorPaths returns every ancestor of p, from the root down to
// (but not including) p itself.
func (p Path) AncestorPaths() []Path {
	out := make([]Path, p.Len())
	for i := range p.parts {
		out[i] = Path{parts: append([]string{}, p.parts[:i]...)}
	}
	return out
}

// Compare orders paths primarily by length, then part-wise
// lexicographically. It returns a negative number if p < other, zero
// if equal, and positive if p > other.
func (p Path) Compare(other Path) int {
	if p.Len() != other.Len() {
		return p.Len() - other.Len()
	}
	for i := range p.parts {
		if c := strings.Compare(p.parts[i], other.parts[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether p sorts before other under [Path.Compare].
func (p Path) Less(other Path) bool { return p.Compare(other) < 0 }
