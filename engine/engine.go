// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the layout engine façade: it owns the
// singleton node tree, the render tree, and the event server behind
// one exclusive transaction lock, wiring those pieces together into
// one constructible object rather than leaving callers to assemble
// them by hand.
package engine

import (
	"sync"

	"cogentcore.org/scene/config"
	"cogentcore.org/scene/element"
	"cogentcore.org/scene/events"
	"cogentcore.org/scene/mesh"
	"cogentcore.org/scene/rendertree"
	"cogentcore.org/scene/tree"
	"cogentcore.org/scene/txn"
)

// Engine owns the node tree, the render tree, and the event server,
// and serializes every mutation through one exclusive transaction
// lock. The zero Engine is not valid; construct one with [New].
type Engine struct {
	mu sync.Mutex

	root   *tree.Node
	rt     *rendertree.Tree
	server *events.Server
	meshes mesh.Provider
}

// New returns an Engine with a synthetic, no-op root node named
// cfg.RootName, an empty render tree, and a fresh event server.
func New(cfg config.Config, meshes mesh.Provider) *Engine {
	if meshes == nil {
		meshes = mesh.BuiltIn{}
	}
	return &Engine{
		root:   tree.New(cfg.RootName, element.NewNoLayout()),
		rt:     rendertree.New(),
		server: events.NewServer(),
		meshes: meshes,
	}
}

// Root implements [txn.Source].
func (e *Engine) Root() *tree.Node { return e.root }

// RenderTree implements [txn.Source].
func (e *Engine) RenderTree() *rendertree.Tree { return e.rt }

// SetRenderTree implements [txn.Source].
func (e *Engine) SetRenderTree(rt *rendertree.Tree) { e.rt = rt }

// EventServer implements [txn.Source].
func (e *Engine) EventServer() *events.Server { return e.server }

// Meshes implements [txn.Source].
func (e *Engine) Meshes() mesh.Provider { return e.meshes }

// Transaction opens a new [txn.Transaction], acquiring e's exclusive
// transaction lock. Callers must call the returned transaction's End
// method exactly once, typically via defer, to release it.
func (e *Engine) Transaction() *txn.Transaction {
	return txn.Begin(e, &e.mu)
}

// RequestListener returns a new listener bound to e's event server,
// with the given filter.
func (e *Engine) RequestListener(filter events.Filter) *events.Listener {
	return e.server.RequestListener(filter)
}

// Close shuts down e's event server, unblocking every listener with
// [events.ErrServerGone].
func (e *Engine) Close() {
	e.server.Close()
}
