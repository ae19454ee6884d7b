// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element implements the primitive element kinds: box, plane,
// sphere, cylinder, mesh import, no-layout, scale, hide/show, rotate,
// juxtapose, padding, grid, and street. Each combines a set of
// [feature.Feature] mixins with a render procedure that writes its
// own [rendertree.Geometry] (or, for layout-only kinds, leaves that to
// the node tree's union-of-children synthesis).
package element

import (
	"cogentcore.org/scene/feature"
	"cogentcore.org/scene/mesh"
	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/value"
)

// Context carries what an element's Render needs beyond its own
// attributes: the render tree to read and write, the paths of its
// direct children (already rendered, in node-tree order), and the
// mesh provider backing the sphere, cylinder, and mesh-import kinds.
type Context struct {
	Tree     *rendertree.Tree
	Children []path.Path
	Meshes   mesh.Provider
}

// Element is implemented by every primitive kind.
type Element interface {
	// UpdateFromAttributes parses attrs into the element's features.
	UpdateFromAttributes(attrs map[string]string) error
	// Attributes round-trips the element's current state.
	Attributes() map[string]string
	// UpdateAncestorValues publishes the element's non-defaulted
	// feature values into scope for descendants.
	UpdateAncestorValues(scope *value.Scope) error
	// Render writes (or deliberately omits) this element's own
	// geometry at path, and may rearrange ctx.Children's already
	// rendered geometries in ctx.Tree.
	Render(p path.Path, ctx *Context) error
}

// applyAttributes runs UpdateFromAttributes across every given
// feature, stopping at the first error.
func applyAttributes(attrs map[string]string, features ...feature.Feature) error {
	for _, f := range features {
		if err := f.UpdateFromAttributes(attrs); err != nil {
			return err
		}
	}
	return nil
}

// collectAttributes merges Attributes() from every given feature.
func collectAttributes(features ...feature.Feature) map[string]string {
	out := map[string]string{}
	for _, f := range features {
		for k, v := range f.Attributes() {
			out[k] = v
		}
	}
	return out
}

// publishAncestorValues runs ComputeAndUpdateAncestorValues across
// every given feature, stopping at the first error.
func publishAncestorValues(scope *value.Scope, features ...feature.Feature) error {
	for _, f := range features {
		if err := f.ComputeAndUpdateAncestorValues(scope); err != nil {
			return err
		}
	}
	return nil
}
