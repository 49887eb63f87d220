package game

import (
	"slices"
	"testing"
	"time"
)

func TestRespawnSchedulerDue(t *testing.T) {
	s := NewRespawnScheduler(3 * time.Second)
	s.Schedule("b", testEpoch)
	s.Schedule("a", testEpoch.Add(time.Second))

	if due := s.Due(testEpoch.Add(2999 * time.Millisecond)); len(due) != 0 {
		t.Fatalf("due too early: %v", due)
	}
	if due := s.Due(testEpoch.Add(3 * time.Second)); !slices.Equal(due, []string{"b"}) {
		t.Fatalf("due = %v, want [b]", due)
	}
	if due := s.Due(testEpoch.Add(10 * time.Second)); !slices.Equal(due, []string{"a"}) {
		t.Fatalf("due = %v, want [a]", due)
	}
	if due := s.Due(testEpoch.Add(time.Hour)); len(due) != 0 {
		t.Fatalf("entries fired twice: %v", due)
	}
}

func TestRespawnSchedulerRescheduleKeepsOneEntry(t *testing.T) {
	s := NewRespawnScheduler(3 * time.Second)
	s.Schedule("a", testEpoch)
	at := s.Schedule("a", testEpoch.Add(time.Second))

	got, ok := s.Pending("a")
	if !ok || !got.Equal(at) {
		t.Fatalf("pending = %v %v, want %v", got, ok, at)
	}
	if due := s.Due(testEpoch.Add(3 * time.Second)); len(due) != 0 {
		t.Fatalf("stale entry fired: %v", due)
	}
}

func TestRespawnSchedulerCancel(t *testing.T) {
	s := NewRespawnScheduler(time.Second)
	s.Schedule("a", testEpoch)
	if !s.Cancel("a") {
		t.Fatalf("expected cancel to find the entry")
	}
	if s.Cancel("a") {
		t.Fatalf("second cancel should be a no-op")
	}
	if due := s.Due(testEpoch.Add(time.Hour)); len(due) != 0 {
		t.Fatalf("cancelled entry fired: %v", due)
	}
}
