// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/path"
	"cogentcore.org/scene/rendertree"
)

func mustPath(t *testing.T, parts ...string) path.Path {
	t.Helper()
	p, err := path.New(parts...)
	require.NoError(t, err)
	return p
}

func TestListenerLifecycle(t *testing.T) {
	// L1 registers, a producer commits 3 events, L1 pops all 3; L2
	// registers afterward at cursor 0 and pops the same 3 events in
	// the same order.
	s := NewServer()
	l1 := s.RequestListener(ReceiveAll)

	p1, p2, p3 := mustPath(t, "a"), mustPath(t, "b"), mustPath(t, "c")
	s.Append(Event{Path: p1, Kind: Add}, Event{Path: p2, Kind: Add}, Event{Path: p3, Kind: Remove})

	for _, want := range []path.Path{p1, p2, p3} {
		ev, ok, err := l1.TryPop()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, want.Equal(ev.Path))
	}
	_, ok, err := l1.TryPop()
	require.NoError(t, err)
	assert.False(t, ok)

	l2 := s.RequestListener(ReceiveAll)
	for _, want := range []path.Path{p1, p2, p3} {
		ev, ok, err := l2.TryPop()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, want.Equal(ev.Path))
	}
}

func TestSkipNonDrawableFilter(t *testing.T) {
	s := NewServer()
	l := s.RequestListener(SkipNonDrawable)

	nonDrawable := rendertree.NewGeometry() // ShouldDraw false: no vertices

	removeEv := Event{Path: mustPath(t, "gone"), Kind: Remove}
	skippedEv := Event{Path: mustPath(t, "invisible"), Kind: Add, Geometry: nonDrawable}
	s.Append(skippedEv, removeEv)

	ev, ok, err := l.TryPop()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Remove, ev.Kind, "non-drawable Add should be skipped, Remove always delivered")
}

func TestWaitForTimesOutWithoutEvent(t *testing.T) {
	s := NewServer()
	l := s.RequestListener(ReceiveAll)

	start := time.Now()
	_, ok, err := l.WaitFor(20 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWaitWakesOnAppend(t *testing.T) {
	s := NewServer()
	l := s.RequestListener(ReceiveAll)

	done := make(chan Event, 1)
	go func() {
		ev, err := l.Wait()
		if err == nil {
			done <- ev
		}
	}()

	time.Sleep(10 * time.Millisecond)
	want := mustPath(t, "x")
	s.Append(Event{Path: want, Kind: Add})

	select {
	case ev := <-done:
		assert.True(t, want.Equal(ev.Path))
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Append")
	}
}

func TestServerGoneUnblocksListeners(t *testing.T) {
	s := NewServer()
	l := s.RequestListener(ReceiveAll)

	errc := make(chan error, 1)
	go func() {
		_, err := l.Wait()
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	s.Close()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrServerGone)
	case <-time.After(time.Second):
		t.Fatal("Wait did not unblock after Close")
	}

	_, _, err := l.TryPop()
	assert.ErrorIs(t, err, ErrServerGone)
}

func TestFromDiffMapsKinds(t *testing.T) {
	p := mustPath(t, "n")
	g := rendertree.NewGeometry()

	cases := []struct {
		dk   rendertree.DiffKind
		want Kind
		geom bool
	}{
		{rendertree.FirstMissing, Remove, false},
		{rendertree.SecondMissing, Add, true},
		{rendertree.Pos, Move, true},
		{rendertree.Bounds, Resize, true},
		{rendertree.Color, Recolor, true},
		{rendertree.Text, Retext, true},
	}
	for _, c := range cases {
		ev := FromDiff(rendertree.Diff{Path: p, Kind: c.dk}, g)
		assert.Equal(t, c.want, ev.Kind)
		if c.geom {
			assert.Same(t, g, ev.Geometry)
		} else {
			assert.Nil(t, ev.Geometry)
		}
	}
}
