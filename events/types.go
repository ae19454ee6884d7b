// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events implements the delta-event stream a transaction emits
// when it diffs a render tree, and the append-only server that lets
// many listeners replay that stream at their own pace, each at its own
// cursor, with or without a blocking timeout.
package events

import (
	"fmt"

	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
)

// Kind identifies what a client should do with an [Event]'s path and
// geometry.
type Kind int

const (
	// Add means a client should create a mesh at the event's path.
	Add Kind = iota
	// Remove means a client should delete the mesh at the event's path.
	Remove
	// Move means a client should update the position of the mesh at
	// the event's path.
	Move
	// Resize means a client should update the mesh's shape; this may
	// be implemented as Remove followed by Add.
	Resize
	// Recolor means a client should update the mesh's material color
	// and opacity.
	Recolor
	// Retext means a client should update the mesh's text label.
	Retext
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "Add"
	case Remove:
		return "Remove"
	case Move:
		return "Move"
	case Resize:
		return "Resize"
	case Recolor:
		return "Recolor"
	case Retext:
		return "Retext"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one typed delta between two render-tree states: a path, a
// snapshot of the geometry a client should now reflect (nil for
// Remove), and the kind of change.
type Event struct {
	Path     path.Path
	Geometry *rendertree.Geometry
	Kind     Kind
}

// FromDiff translates one [rendertree.Diff] into the [Event] a
// transaction appends for it. g is the geometry to snapshot: the new
// tree's geometry at d.Path for every kind except Remove, which has
// none.
func FromDiff(d rendertree.Diff, g *rendertree.Geometry) Event {
	kinds := map[rendertree.DiffKind]Kind{
		rendertree.FirstMissing:  Remove,
		rendertree.SecondMissing: Add,
		rendertree.Pos:           Move,
		rendertree.Bounds:        Resize,
		rendertree.Color:         Recolor,
		rendertree.Text:          Retext,
	}
	ev := Event{Path: d.Path, Kind: kinds[d.Kind]}
	if ev.Kind != Remove {
		ev.Geometry = g
	}
	return ev
}
