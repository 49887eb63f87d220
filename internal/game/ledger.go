package game

import "skirmish/internal/protocol"

// DestructibleLedger records destroyed world props once each, in the order
// they were first reported.
type DestructibleLedger struct {
	entries []protocol.DestroyedProp
	seen    map[string]struct{}
}

func NewDestructibleLedger() *DestructibleLedger {
	return &DestructibleLedger{seen: make(map[string]struct{})}
}

// Record appends prop unless its id is already in the ledger. It reports
// whether the prop was new.
func (l *DestructibleLedger) Record(prop protocol.DestroyedProp) bool {
	if _, dup := l.seen[prop.PropID]; dup {
		return false
	}
	l.seen[prop.PropID] = struct{}{}
	l.entries = append(l.entries, prop)
	return true
}

// Entries returns a copy of the ledger contents.
func (l *DestructibleLedger) Entries() []protocol.DestroyedProp {
	out := make([]protocol.DestroyedProp, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *DestructibleLedger) Len() int {
	return len(l.entries)
}

func (l *DestructibleLedger) Reset() {
	l.entries = nil
	clear(l.seen)
}
