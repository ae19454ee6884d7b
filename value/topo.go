// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"fmt"
	"sort"
)

// ErrAttributeCycle is returned when a dependency graph over relative
// attribute values contains a cycle.
var ErrAttributeCycle = errors.New("attribute dependency cycle")

// TopologicalSortWithAliases resolves abbreviations to full names
// using aliases (abbreviation -> full name) and returns a topological
// order over the keys of deps, such that every name appears after
// every (resolved) dependency it lists. It fails with
// [ErrAttributeCycle] if deps contains a cycle; the returned error
// names the attributes on the cycle.
//
// Kahn's algorithm is used rather than a recursive DFS so that the
// cycle report can name every implicated node, not just the first one
// found on a particular call stack.
func TopologicalSortWithAliases(deps map[string][]string, aliases map[string]string) ([]string, error) {
	resolve := func(name string) string {
		if full, ok := aliases[name]; ok {
			return full
		}
		return name
	}

	// Build the resolved graph; every name that appears anywhere
	// (as a key or a dependency) gets a node, even if it has no
	// explicit dependency list of its own.
	nodes := map[string]bool{}
	edges := map[string]map[string]bool{} // node -> set of dependencies
	for name, ds := range deps {
		n := resolve(name)
		nodes[n] = true
		if edges[n] == nil {
			edges[n] = map[string]bool{}
		}
		for _, d := range ds {
			rd := resolve(d)
			nodes[rd] = true
			edges[n][rd] = true
		}
	}

	// indegree here counts, for each node, how many other nodes
	// depend on it -- i.e. how many edges point *into* it as a
	// dependency target from the "must come after" direction. We
	// instead track outstanding dependency counts per node (how many
	// unresolved dependencies it still has) and process nodes whose
	// count drops to zero.
	remaining := map[string]map[string]bool{}
	for n := range nodes {
		remaining[n] = map[string]bool{}
		for d := range edges[n] {
			remaining[n][d] = true
		}
	}

	var order []string
	for len(remaining) > 0 {
		ready := []string{}
		for n, deps := range remaining {
			if len(deps) == 0 {
				ready = append(ready, n)
			}
		}
		if len(ready) == 0 {
			implicated := make([]string, 0, len(remaining))
			for n := range remaining {
				implicated = append(implicated, n)
			}
			sort.Strings(implicated)
			return nil, fmt.Errorf("%w: %v", ErrAttributeCycle, implicated)
		}
		sort.Strings(ready) // deterministic order among independent nodes
		for _, n := range ready {
			order = append(order, n)
			delete(remaining, n)
		}
		for n, deps := range remaining {
			for _, r := range ready {
				delete(deps, r)
			}
			remaining[n] = deps
		}
	}
	return order, nil
}
