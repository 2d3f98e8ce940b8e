// Package observability aggregates runtime counters for the monitor worker
// and the operator console.
package observability

import "sync/atomic"

// Stats collects delivery and session counters. All counters are atomic;
// Stats is safe for concurrent use by every session worker.
type Stats struct {
	delivered      atomic.Uint64
	dropped        atomic.Uint64
	sessionsOpened atomic.Uint64
	sessionsClosed atomic.Uint64
	authFailures   atomic.Uint64
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Delivered      uint64
	Dropped        uint64
	SessionsOpened uint64
	SessionsClosed uint64
	AuthFailures   uint64
}

func NewStats() *Stats {
	return &Stats{}
}

// IncrDelivered counts one successful fan-out write.
func (s *Stats) IncrDelivered() {
	s.delivered.Add(1)
}

// IncrDropped counts one failed write to a gone or stalled peer.
func (s *Stats) IncrDropped() {
	s.dropped.Add(1)
}

func (s *Stats) IncrSessionsOpened() {
	s.sessionsOpened.Add(1)
}

func (s *Stats) IncrSessionsClosed() {
	s.sessionsClosed.Add(1)
}

func (s *Stats) IncrAuthFailures() {
	s.authFailures.Add(1)
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Delivered:      s.delivered.Load(),
		Dropped:        s.dropped.Load(),
		SessionsOpened: s.sessionsOpened.Load(),
		SessionsClosed: s.sessionsClosed.Load(),
		AuthFailures:   s.authFailures.Load(),
	}
}
