// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"log/slog"

	"cogentcore.org/scene/engine"
	"cogentcore.org/scene/events"
	"cogentcore.org/scene/txn"
)

// Run applies s's steps to eng, opening one transaction per step
// except that a run of consecutive steps all marked Batch shares a
// single transaction. It returns every event emitted, in append
// order.
func Run(eng *engine.Engine, s *Scenario) ([]events.Event, error) {
	l := eng.RequestListener(events.ReceiveAll)

	i := 0
	for i < len(s.Steps) {
		batch := []Step{s.Steps[i]}
		i++
		if s.Steps[i-1].Batch {
			for i < len(s.Steps) && s.Steps[i].Batch {
				batch = append(batch, s.Steps[i])
				i++
			}
		}
		if err := applyBatch(eng, batch); err != nil {
			return nil, err
		}
	}

	var out []events.Event
	for {
		ev, ok, err := l.TryPop()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, ev)
	}
	return out, nil
}

func applyBatch(eng *engine.Engine, steps []Step) error {
	tx := eng.Transaction()
	defer tx.End()

	for _, step := range steps {
		if err := applyStep(tx, step); err != nil {
			return fmt.Errorf("scenario: step %q: %w", step.Op, err)
		}
	}
	if !tx.Render() {
		slog.Warn("scenario.applyBatch: event server gone, batch's events were dropped", "steps", len(steps))
	}
	return nil
}

func applyStep(tx *txn.Transaction, step Step) error {
	switch step.Op {
	case "add_child":
		el, err := newElement(step.Kind)
		if err != nil {
			return err
		}
		if err := el.UpdateFromAttributes(step.Attributes); err != nil {
			return err
		}
		_, err = tx.ConstructChild(step.Path, step.Name, el)
		return err
	case "add_template":
		el, err := newElement(step.Kind)
		if err != nil {
			return err
		}
		if err := el.UpdateFromAttributes(step.Attributes); err != nil {
			return err
		}
		_, err = tx.ConstructTemplate(step.Path, step.Name, el)
		return err
	case "make_template":
		_, err := tx.MakeTemplate(step.Path, step.Template, step.NewName)
		return err
	case "remove_child":
		return tx.RemoveChild(step.Path, step.Name)
	case "set_attributes":
		node, err := tx.FindNode(step.Path)
		if err != nil {
			return err
		}
		return node.Element.UpdateFromAttributes(step.Attributes)
	default:
		return fmt.Errorf("scenario: unknown op %q", step.Op)
	}
}
