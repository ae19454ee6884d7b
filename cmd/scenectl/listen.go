// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cogentcore.org/scene/events"
)

func listenCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Boot an empty engine and print events as they arrive",
		Long: `Boot an empty engine, open a listener against it using the
configured default filter, and block printing events as they arrive
until the engine is closed or the process is interrupted. A demo of
the blocking Wait path: the engine lives only in this process, so
events appear only when code running in the same process (such as a
test harness) mutates it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := buildEngine(*configPath)
			if err != nil {
				return err
			}
			defer eng.Close()

			l := eng.RequestListener(cfg.Filter())
			fmt.Fprintln(cmd.OutOrStdout(), "listening (ctrl-c to stop)...")
			for {
				ev, err := l.Wait()
				if err != nil {
					if errors.Is(err, events.ErrServerGone) {
						return nil
					}
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatEvent(ev))
			}
		},
	}
}
