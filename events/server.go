// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrServerGone is returned by a [Listener]'s operations once its
// [Server] has been destroyed. It is returned forever after, to every
// listener, the first time it is observed.
var ErrServerGone = errors.New("events: server gone")

// Filter selects which events a [Listener] receives.
type Filter int

const (
	// ReceiveAll delivers every event.
	ReceiveAll Filter = iota
	// SkipNonDrawable delivers only events whose geometry has
	// [rendertree.Geometry.ShouldDraw] true; Remove events, which carry
	// no geometry, are always delivered.
	SkipNonDrawable
)

// Server is the append-only event log a transaction appends to, and
// many listeners replay. A mutex plus condition variable guard the
// shared log; each listener pops non-destructively by advancing its
// own cursor, rather than the log having a single consumer.
type Server struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []Event
	gone   bool
}

// NewServer returns a new, empty Server.
func NewServer() *Server {
	s := &Server{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Append adds evs to the end of the log, in order, and wakes any
// listener blocked in [Server.Wait]. Producers serialize appends
// through the transaction lock (see the txn package); Append itself
// additionally takes the server's own lock so concurrent listener
// operations never observe a partial append.
func (s *Server) Append(evs ...Event) {
	if len(evs) == 0 {
		return
	}
	s.mu.Lock()
	s.events = append(s.events, evs...)
	s.mu.Unlock()
	s.cond.Broadcast()
}

// TryAppend adds evs to the log and reports true, unless s has been
// closed, in which case it does nothing and reports false. Producers
// use this instead of [Server.Append] so a transaction can treat "no
// listener can still observe the stream" as the documented silent
// render failure rather than an error.
func (s *Server) TryAppend(evs ...Event) bool {
	s.mu.Lock()
	if s.gone {
		s.mu.Unlock()
		return false
	}
	if len(evs) > 0 {
		s.events = append(s.events, evs...)
	}
	s.mu.Unlock()
	s.cond.Broadcast()
	return true
}

// Close marks s as gone. Every blocked or future listener operation on
// s now returns [ErrServerGone].
func (s *Server) Close() {
	s.mu.Lock()
	s.gone = true
	s.mu.Unlock()
	s.cond.Broadcast()
}

// RequestListener returns a new [Listener] bound to s, with a cursor
// of zero and the given filter.
func (s *Server) RequestListener(filter Filter) *Listener {
	return &Listener{server: s, token: uuid.New(), filter: filter}
}

// skips reports whether ev should be skipped by filter.
func skips(filter Filter, ev Event) bool {
	if filter != SkipNonDrawable {
		return false
	}
	if ev.Kind == Remove {
		return false
	}
	return ev.Geometry == nil || !ev.Geometry.ShouldDraw()
}

// tryPopLocked advances l's cursor past any events its filter skips,
// and returns the next deliverable event without blocking. s.mu must
// be held.
func (s *Server) tryPopLocked(l *Listener) (Event, bool) {
	for l.cursor < len(s.events) {
		ev := s.events[l.cursor]
		l.cursor++
		if !skips(l.filter, ev) {
			return ev, true
		}
	}
	return Event{}, false
}

// TryPop returns the next event l's cursor has not yet seen, or
// (Event{}, false, nil) if none is available yet.
func (s *Server) TryPop(l *Listener) (Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone {
		slog.Warn("events.Server.TryPop: listener observed dead server", "token", l.token)
		return Event{}, false, ErrServerGone
	}
	ev, ok := s.tryPopLocked(l)
	return ev, ok, nil
}

// Wait blocks until an event is available for l, or s is closed.
func (s *Server) Wait(l *Listener) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if s.gone {
			slog.Warn("events.Server.Wait: listener observed dead server", "token", l.token)
			return Event{}, ErrServerGone
		}
		if ev, ok := s.tryPopLocked(l); ok {
			return ev, nil
		}
		s.cond.Wait()
	}
}

// WaitFor blocks until an event is available for l, s is closed, or
// timeout elapses, whichever comes first. sync.Cond has no native
// timeout, so a timer is used to force a spurious wakeup at the
// deadline; the loop re-checks the real condition under the lock
// either way.
func (s *Server) WaitFor(l *Listener, timeout time.Duration) (Event, bool, error) {
	deadline := time.Now().Add(timeout)
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if s.gone {
			slog.Warn("events.Server.WaitFor: listener observed dead server", "token", l.token)
			return Event{}, false, ErrServerGone
		}
		if ev, ok := s.tryPopLocked(l); ok {
			return ev, true, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return Event{}, false, nil
		}
		timer := time.AfterFunc(remaining, s.cond.Broadcast)
		s.cond.Wait()
		timer.Stop()
	}
}

// Listener is a cursor over a [Server]'s append-only event sequence,
// identified by an opaque token, optionally filtering non-drawable
// events. The zero Listener is not valid; obtain one from
// [Server.RequestListener].
type Listener struct {
	server *Server
	token  uuid.UUID
	filter Filter
	cursor int
}

// Token returns l's opaque identity.
func (l *Listener) Token() uuid.UUID { return l.token }

// TryPop is a convenience wrapper for [Server.TryPop](l.server, l).
func (l *Listener) TryPop() (Event, bool, error) { return l.server.TryPop(l) }

// Wait is a convenience wrapper for [Server.Wait](l.server, l).
func (l *Listener) Wait() (Event, error) { return l.server.Wait(l) }

// WaitFor is a convenience wrapper for [Server.WaitFor](l.server, l, timeout).
func (l *Listener) WaitFor(timeout time.Duration) (Event, bool, error) {
	return l.server.WaitFor(l, timeout)
}

// Release detaches l from its server; l must not be used afterward.
// There is no shared state to reclaim beyond l itself, since each
// listener owns its own cursor rather than holding a slot in a
// server-side table.
func (l *Listener) Release() { l.server = nil }
