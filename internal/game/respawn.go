package game

import (
	"slices"
	"time"
)

// RespawnScheduler tracks at most one pending respawn per player. Entries are
// polled by the room tick rather than run on their own timers, so a cancelled
// entry can never fire against a removed record.
type RespawnScheduler struct {
	delay   time.Duration
	pending map[string]time.Time
}

func NewRespawnScheduler(delay time.Duration) *RespawnScheduler {
	return &RespawnScheduler{
		delay:   delay,
		pending: make(map[string]time.Time),
	}
}

// Schedule replaces any pending entry for id with one due at now+delay.
func (s *RespawnScheduler) Schedule(id string, now time.Time) time.Time {
	s.Cancel(id)
	at := now.Add(s.delay)
	s.pending[id] = at
	return at
}

// Cancel drops the pending entry for id, if any.
func (s *RespawnScheduler) Cancel(id string) bool {
	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}

func (s *RespawnScheduler) Pending(id string) (time.Time, bool) {
	at, ok := s.pending[id]
	return at, ok
}

// Due removes and returns every entry whose time has come, in id order.
func (s *RespawnScheduler) Due(now time.Time) []string {
	var due []string
	for id, at := range s.pending {
		if !now.Before(at) {
			due = append(due, id)
		}
	}
	slices.Sort(due)
	for _, id := range due {
		delete(s.pending, id)
	}
	return due
}

// Reset drops every pending entry.
func (s *RespawnScheduler) Reset() {
	clear(s.pending)
}
