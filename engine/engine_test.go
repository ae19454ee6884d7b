// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/config"
	"cogentcore.org/scene/element"
	"cogentcore.org/scene/events"
)

func TestTransactionRendersAndEmitsAdd(t *testing.T) {
	eng := New(config.Default(), nil)
	l := eng.RequestListener(events.ReceiveAll)

	tx := eng.Transaction()
	j, err := tx.ConstructChild(nil, "j", element.NewJuxtapose())
	require.NoError(t, err)
	boxEl := element.NewBox()
	require.NoError(t, boxEl.UpdateFromAttributes(map[string]string{"width": "2", "height": "3", "depth": "4", "color": "red5"}))
	_, err = j.ConstructChild("b", boxEl)
	require.NoError(t, err)
	require.True(t, tx.Render())
	tx.End()

	ev, ok, err := l.TryPop()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, events.Add, ev.Kind)
	assert.Len(t, ev.Geometry.Vertices, 8)
	assert.Len(t, ev.Geometry.Faces, 12)
}

func TestListenerLifecycleAcrossTransactions(t *testing.T) {
	// L1 registers, a producer commits events across transactions, L1
	// pops them in order; L2 registers afterward at cursor 0 and pops
	// the same events in the same order.
	eng := New(config.Default(), nil)
	l1 := eng.RequestListener(events.ReceiveAll)

	names := []string{"a", "b", "c"}
	for _, name := range names {
		tx := eng.Transaction()
		_, err := tx.ConstructChild(nil, name, element.NewBox())
		require.NoError(t, err)
		require.True(t, tx.Render())
		tx.End()
	}

	var gotL1 []string
	for i := 0; i < len(names); i++ {
		ev, ok, err := l1.TryPop()
		require.NoError(t, err)
		require.True(t, ok)
		gotL1 = append(gotL1, ev.Path.String())
	}

	l2 := eng.RequestListener(events.ReceiveAll)
	var gotL2 []string
	for i := 0; i < len(names); i++ {
		ev, ok, err := l2.TryPop()
		require.NoError(t, err)
		require.True(t, ok)
		gotL2 = append(gotL2, ev.Path.String())
	}
	assert.Equal(t, gotL1, gotL2)
}

func TestCloseUnblocksListener(t *testing.T) {
	eng := New(config.Default(), nil)
	l := eng.RequestListener(events.ReceiveAll)
	eng.Close()

	_, _, err := l.TryPop()
	assert.ErrorIs(t, err, events.ErrServerGone)
}
