// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenectl replays scenario scripts against the layout engine
// from the command line: "replay" prints the delta events a script
// produces, "tree dot"/"tree print" dump the resulting node tree as
// Graphviz DOT (or render it to SVG) or as indented text, and "listen"
// opens a bare listener and prints events as they arrive.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "scenectl",
		Short: "Replay and inspect layout engine scenario scripts",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config.toml (default: ~/.scenectl/config.toml)")

	root.AddCommand(replayCommand(&configPath))
	root.AddCommand(treeCommand(&configPath))
	root.AddCommand(listenCommand(&configPath))
	return root
}
