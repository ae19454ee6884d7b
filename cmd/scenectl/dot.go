// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"cogentcore.org/scene/base/indent"
	"cogentcore.org/scene/tree"
)

// printNode writes n and its descendants to w, one line each, indented
// by depth with [indent.Tabs].
func printNode(w io.Writer, n *tree.Node, depth int) {
	kind := strings.TrimPrefix(fmt.Sprintf("%T", n.Element), "*element.")
	fmt.Fprintf(w, "%s%s (%s)\n", indent.Tabs(depth), n.Name, kind)
	for _, c := range n.Children {
		printNode(w, c, depth+1)
	}
}

// nodeTreeToDOT renders root's node tree as Graphviz DOT, one node per
// tree.Node, labeled with its name and element kind.
func nodeTreeToDOT(root *tree.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=12];\n\n")
	writeDOTNode(&buf, root, "root")
	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n *tree.Node, id string) {
	kind := strings.TrimPrefix(fmt.Sprintf("%T", n.Element), "*element.")
	fmt.Fprintf(buf, "  %q [label=%q];\n", id, n.Name+"\n"+kind)
	for i, c := range n.Children {
		childID := fmt.Sprintf("%s_%d", id, i)
		fmt.Fprintf(buf, "  %q -> %q;\n", id, childID)
		writeDOTNode(buf, c, childID)
	}
}

// dotToSVG renders a DOT string to SVG via Graphviz.
func dotToSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
