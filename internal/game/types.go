package game

import (
	"math"
	"time"

	"skirmish/internal/protocol"
)

// Player is the canonical record of one connected participant.
type Player struct {
	ID           string
	Name         string
	Position     protocol.Vec3
	Rotation     float64 // yaw in radians
	Health       float64
	Armor        float64
	Weapon       string
	Crouching    bool
	Moving       bool
	FlashlightOn bool
	LastUpdate   time.Time
	Kills        int
	Deaths       int
	Connected    bool
}

// NewPlayer creates a player with full health, no armor and the given spawn.
func NewPlayer(id, name string, spawn protocol.Vec3, weapon string, now time.Time) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Position:   spawn,
		Health:     MaxHealth,
		Armor:      0,
		Weapon:     weapon,
		LastUpdate: now,
		Connected:  true,
	}
}

// Alive reports whether the player can still take damage.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// State returns the wire view of the player.
func (p *Player) State() protocol.PlayerState {
	return protocol.PlayerState{
		ID:           p.ID,
		Name:         p.Name,
		Position:     p.Position,
		Rotation:     p.Rotation,
		Health:       p.Health,
		Armor:        p.Armor,
		Weapon:       p.Weapon,
		Crouching:    p.Crouching,
		IsMoving:     p.Moving,
		FlashlightOn: p.FlashlightOn,
		Kills:        p.Kills,
		Deaths:       p.Deaths,
	}
}

// clamp bounds v to [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
