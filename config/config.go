// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the engine's startup options from a TOML file,
// resolved relative to the user's home directory unless an explicit
// path is given: a main config file in the home directory, overridable
// with an explicit flag.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/scene/events"
)

// Config carries the engine's startup options.
type Config struct {
	// DefaultFilter is the event filter new listeners get when a
	// caller does not specify one explicitly: "all" or
	// "skip-non-drawable".
	DefaultFilter string `toml:"default_filter"`

	// EventBufferHint is loaded from the configuration file but is not
	// read by the engine: the event server's log starts empty and grows
	// as events are appended.
	EventBufferHint int `toml:"event_buffer_hint"`

	// RootName is the name of the synthetic, no-op root node every
	// engine is constructed with.
	RootName string `toml:"root_name"`
}

// Filter resolves DefaultFilter to an [events.Filter]. An unrecognized
// value falls back to [events.ReceiveAll].
func (c Config) Filter() events.Filter {
	if c.DefaultFilter == "skip-non-drawable" {
		return events.SkipNonDrawable
	}
	return events.ReceiveAll
}

// Default returns the configuration an engine uses when no file is
// found at the resolved path.
func Default() Config {
	return Config{DefaultFilter: "all", EventBufferHint: 64, RootName: "root"}
}

// DefaultPath returns "~/.scenectl/config.toml" with the leading ~
// resolved via [homedir.Dir].
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("config: resolving home directory: %w", err)
	}
	return filepath.Join(home, ".scenectl", "config.toml"), nil
}

// fileExists reports whether path names a regular file.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// Load reads a Config from path, or from [DefaultPath] if path is
// empty. A missing file at the resolved path is not an error: Load
// returns [Default] unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = resolved
	}

	exists, err := fileExists(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: checking %s: %w", path, err)
	}
	cfg := Default()
	if !exists {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
