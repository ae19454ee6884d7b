// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/scene/scenario"
)

func treeCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Inspect the node tree a scenario script produces",
	}
	cmd.AddCommand(treeDotCommand(configPath))
	cmd.AddCommand(treePrintCommand(configPath))
	return cmd
}

func treePrintCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "print <scenario.yaml>",
		Short: "Replay a scenario script and print its node tree, indented by depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := buildEngine(*configPath)
			if err != nil {
				return err
			}
			defer eng.Close()

			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if _, err := scenario.Run(eng, s); err != nil {
				return fmt.Errorf("tree print: %w", err)
			}
			printNode(cmd.OutOrStdout(), eng.Root(), 0)
			return nil
		},
	}
}

func treeDotCommand(configPath *string) *cobra.Command {
	var svgOut string

	cmd := &cobra.Command{
		Use:   "dot <scenario.yaml>",
		Short: "Replay a scenario script and dump its node tree as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := buildEngine(*configPath)
			if err != nil {
				return err
			}
			defer eng.Close()

			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if _, err := scenario.Run(eng, s); err != nil {
				return fmt.Errorf("tree dot: %w", err)
			}

			dot := nodeTreeToDOT(eng.Root())
			if svgOut == "" {
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return nil
			}
			svg, err := dotToSVG(dot)
			if err != nil {
				return fmt.Errorf("tree dot: %w", err)
			}
			return os.WriteFile(svgOut, svg, 0o644)
		},
	}
	cmd.Flags().StringVar(&svgOut, "svg", "", "render to this SVG file instead of printing DOT")
	return cmd
}
