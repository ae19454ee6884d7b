// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cogentcore.org/scene/config"
	"cogentcore.org/scene/engine"
	"cogentcore.org/scene/events"
	"cogentcore.org/scene/scenario"
)

func replayCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay a scenario script and print the events it emits",
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
			evs, err := scenario.Run(eng, s)
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}
			for _, ev := range evs {
				fmt.Fprintln(cmd.OutOrStdout(), formatEvent(ev))
			}
			return nil
		},
	}
}

func buildEngine(configPath string) (*engine.Engine, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return engine.New(cfg, nil), cfg, nil
}

func formatEvent(ev events.Event) string {
	if ev.Geometry == nil {
		return fmt.Sprintf("%-7s %s", ev.Kind, ev.Path.String())
	}
	pos := ev.Geometry.Pos
	return fmt.Sprintf("%-7s %s pos=(%.2f,%.2f,%.2f) color=%s", ev.Kind, ev.Path.String(), pos.X, pos.Y, pos.Z, ev.Geometry.Color)
}
