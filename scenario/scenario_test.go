// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/config"
	"cogentcore.org/scene/engine"
	"cogentcore.org/scene/events"
)

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - op: add_child
    name: j
    kind: juxtapose
  - op: add_child
    path: [j]
    name: b
    kind: box
    attributes:
      width: "2"
      height: "3"
      depth: "4"
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, "add_child", s.Steps[0].Op)
	assert.Equal(t, []string{"j"}, s.Steps[1].Path)
	assert.Equal(t, "4", s.Steps[1].Attributes["depth"])
}

func TestRunSingleBoxScenario(t *testing.T) {
	// A single box under a juxtapose, expressed as a scenario script.
	s := &Scenario{Steps: []Step{
		{Op: "add_child", Name: "j", Kind: "juxtapose"},
		{Op: "add_child", Path: []string{"j"}, Name: "b", Kind: "box",
			Attributes: map[string]string{"width": "2", "height": "3", "depth": "4"}},
	}}

	eng := engine.New(config.Default(), nil)
	evs, err := Run(eng, s)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, events.Add, evs[0].Kind)
	assert.Equal(t, ".j.b", evs[0].Path.String())
	assert.Len(t, evs[0].Geometry.Vertices, 8)
}

func TestRunBatchesConsecutiveSteps(t *testing.T) {
	s := &Scenario{Steps: []Step{
		{Op: "add_child", Name: "a", Kind: "box", Batch: true},
		{Op: "add_child", Name: "b", Kind: "box", Batch: true},
		{Op: "add_child", Name: "c", Kind: "box"},
	}}

	eng := engine.New(config.Default(), nil)
	evs, err := Run(eng, s)
	require.NoError(t, err)
	// All three still produce one Add each, but a and b share a
	// transaction: there is no way to observe that from the event
	// stream alone, so this just confirms nothing was lost or
	// duplicated across the batch boundary.
	require.Len(t, evs, 3)
	var paths []string
	for _, ev := range evs {
		paths = append(paths, ev.Path.String())
	}
	assert.ElementsMatch(t, []string{".a", ".b", ".c"}, paths)
}

func TestRunMakeTemplateScenario(t *testing.T) {
	s := &Scenario{Steps: []Step{
		{Op: "add_template", Name: "t", Kind: "box"},
		{Op: "add_child", Name: "a", Kind: "box"},
		{Op: "add_child", Name: "c", Kind: "box"},
		{Op: "make_template", Template: "t", NewName: "b"},
	}}

	eng := engine.New(config.Default(), nil)
	_, err := Run(eng, s)
	require.NoError(t, err)

	names := make([]string, len(eng.Root().Children))
	for i, c := range eng.Root().Children {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestNewElementRejectsUnknownKind(t *testing.T) {
	_, err := newElement("teleporter")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
