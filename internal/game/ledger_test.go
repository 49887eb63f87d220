package game

import (
	"testing"

	"skirmish/internal/protocol"
)

func TestLedgerDeduplicates(t *testing.T) {
	l := NewDestructibleLedger()
	prop := protocol.DestroyedProp{PropID: "crate-7", Type: "crate"}

	if !l.Record(prop) {
		t.Fatalf("first record should be new")
	}
	if l.Record(prop) {
		t.Fatalf("duplicate record should be ignored")
	}
	if l.Len() != 1 {
		t.Fatalf("len = %d, want 1", l.Len())
	}

	entries := l.Entries()
	entries[0].PropID = "mutated"
	if l.Entries()[0].PropID != "crate-7" {
		t.Fatalf("Entries exposed internal storage")
	}

	l.Reset()
	if l.Len() != 0 || !l.Record(prop) {
		t.Fatalf("reset did not clear the ledger")
	}
}

func TestWinMonitorFiresOnce(t *testing.T) {
	m := NewWinMonitor(2)
	p := &Player{ID: "a", Kills: 1}
	if m.Check(p) {
		t.Fatalf("fired below the limit")
	}
	p.Kills = 2
	if !m.Check(p) {
		t.Fatalf("did not fire at the limit")
	}
	p.Kills = 3
	if m.Check(p) || m.Check(&Player{ID: "b", Kills: 9}) {
		t.Fatalf("fired a second time")
	}
	m.Reset()
	if !m.Check(p) {
		t.Fatalf("did not re-arm after reset")
	}
}
