// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario implements a YAML-described sequence of
// transactions for driving an [engine.Engine]: a human-authored,
// checked-in script format for replaying a sequence of node tree
// mutations without writing Go code for each one.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cogentcore.org/scene/element"
)

// Step is one mutation a [Scenario] applies to the node tree.
type Step struct {
	// Op is one of "add_child", "add_template", "make_template",
	// "remove_child", or "set_attributes".
	Op string `yaml:"op"`

	// Path addresses the node the operation targets: the parent for
	// add_child/add_template/remove_child, or the node itself for
	// set_attributes. Empty means the root.
	Path []string `yaml:"path,omitempty"`

	// Name is the new child or template's name (add_child,
	// add_template) or the child to remove (remove_child).
	Name string `yaml:"name,omitempty"`

	// Kind is the element kind to construct, for add_child and
	// add_template: one of the primitive element names (box, plane,
	// sphere, cylinder, mesh, juxtapose, padding, scale, grid, rotate,
	// hide_show, street, no_layout).
	Kind string `yaml:"kind,omitempty"`

	// Template is the template name to materialize, for
	// make_template.
	Template string `yaml:"template,omitempty"`

	// NewName is the materialized child's name, for make_template.
	NewName string `yaml:"new_name,omitempty"`

	// Attributes carries the attribute map for add_child,
	// add_template, and set_attributes.
	Attributes map[string]string `yaml:"attributes,omitempty"`

	// Batch groups this step with the run of consecutive steps also
	// marked Batch into a single transaction, rather than one
	// transaction per step.
	Batch bool `yaml:"batch,omitempty"`
}

// Scenario is an ordered list of steps.
type Scenario struct {
	Steps []Step `yaml:"steps"`
}

// Load parses a Scenario from the YAML file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}
	return &s, nil
}

// kinds maps a scenario step's Kind string to an element constructor.
// This registry is the scenario package's stand-in for whatever
// parses a real ingestion format's element vocabulary into
// [element.Element] values.
var kinds = map[string]func() element.Element{
	"box":       func() element.Element { return element.NewBox() },
	"plane":     func() element.Element { return element.NewPlane() },
	"sphere":    func() element.Element { return element.NewSphere() },
	"cylinder":  func() element.Element { return element.NewCylinder() },
	"mesh":      func() element.Element { return element.NewMeshImport() },
	"juxtapose": func() element.Element { return element.NewJuxtapose() },
	"padding":   func() element.Element { return element.NewPadding() },
	"scale":     func() element.Element { return element.NewScale() },
	"grid":      func() element.Element { return element.NewGrid() },
	"rotate":    func() element.Element { return element.NewRotate() },
	"hide_show": func() element.Element { return element.NewHideShow() },
	"street":    func() element.Element { return element.NewStreet() },
	"no_layout": func() element.Element { return element.NewNoLayout() },
}

// ErrUnknownKind is returned by [newElement] when a step names a kind
// not in the registry.
var ErrUnknownKind = fmt.Errorf("scenario: unknown element kind")

func newElement(kind string) (element.Element, error) {
	ctor, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(), nil
}
