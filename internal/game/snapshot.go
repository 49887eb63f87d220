package game

import (
	"log"
	"sync/atomic"
	"time"

	"skirmish/internal/protocol"
)

// RoomStats summarizes a room for the status endpoint.
type RoomStats struct {
	Players        int   `json:"players"`
	Connections    int   `json:"connections"`
	DestroyedProps int   `json:"destroyedProps"`
	GameOver       bool  `json:"gameOver"`
	Snapshots      int64 `json:"snapshots"`
	SnapshotBytes  int64 `json:"snapshotBytes"`
}

// Stats returns a point-in-time summary of the room.
func (r *Room) Stats() RoomStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RoomStats{
		Players:        r.players.Len(),
		Connections:    len(r.clients),
		DestroyedProps: r.ledger.Len(),
		GameOver:       r.win.GameOver(),
		Snapshots:      atomic.LoadInt64(&r.snapshotCount),
		SnapshotBytes:  atomic.LoadInt64(&r.totalSnapshotSize),
	}
}

// buildSnapshot captures every player's full state plus the destruction
// ledger.
func (r *Room) buildSnapshot(now time.Time) protocol.StateSnapshot {
	snap := protocol.StateSnapshot{
		Timestamp:      now.UnixMilli(),
		Players:        make(map[string]protocol.PlayerState, r.players.Len()),
		DestroyedProps: r.ledger.Entries(),
	}
	for _, id := range r.players.IDs() {
		p, _ := r.players.Get(id)
		snap.Players[id] = p.State()
	}
	return snap
}

// broadcastSnapshot sends the current state to every client. Empty rooms send
// nothing.
func (r *Room) broadcastSnapshot(now time.Time) {
	if r.players.Len() == 0 {
		return
	}
	data, err := protocol.Encode(protocol.MsgStateSnapshot, r.buildSnapshot(now))
	if err != nil {
		log.Printf("Error marshaling snapshot: %v", err)
		return
	}
	for _, client := range r.clients {
		client.queue(data)
	}
	atomic.AddInt64(&r.snapshotCount, 1)
	atomic.AddInt64(&r.totalSnapshotSize, int64(len(data)))
}

// broadcast sends an event to every attached client.
func (r *Room) broadcast(msgType string, payload any) {
	r.broadcastExcept("", msgType, payload)
}

// broadcastExcept sends an event to every attached client but exclude.
func (r *Room) broadcastExcept(exclude, msgType string, payload any) {
	data, err := protocol.Encode(msgType, payload)
	if err != nil {
		log.Printf("Error marshaling %s message: %v", msgType, err)
		return
	}
	for id, client := range r.clients {
		if id == exclude {
			continue
		}
		client.queue(data)
	}
}

// sendTo sends a message to a single client.
func (r *Room) sendTo(id, msgType string, payload any) {
	client, ok := r.clients[id]
	if !ok {
		return
	}
	data, err := protocol.Encode(msgType, payload)
	if err != nil {
		log.Printf("Error marshaling %s message: %v", msgType, err)
		return
	}
	if !client.queue(data) {
		log.Printf("Could not send %s to client %s", msgType, id)
	}
}
