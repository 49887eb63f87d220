package game

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"skirmish/internal/protocol"
)

// PlayerStore owns the canonical player records of a room. It is not safe for
// concurrent use; the owning Room serializes access.
type PlayerStore struct {
	rules    *Rules
	movement MovementValidator
	players  map[string]*Player
}

func NewPlayerStore(rules *Rules) *PlayerStore {
	return &PlayerStore{
		rules:    rules,
		movement: newMovementValidator(rules),
		players:  make(map[string]*Player),
	}
}

// Join inserts a fresh record for id, replacing any stale one.
func (s *PlayerStore) Join(id, name string, now time.Time) *Player {
	weapon, _ := s.rules.Weapons.Lookup("")
	p := NewPlayer(id, sanitizeName(name, id), s.rules.DefaultSpawn(), weapon, now)
	s.players[id] = p
	return p
}

// Remove deletes the record for id and reports whether it existed.
func (s *PlayerStore) Remove(id string) bool {
	p, ok := s.players[id]
	if !ok {
		return false
	}
	p.Connected = false
	delete(s.players, id)
	return true
}

func (s *PlayerStore) Get(id string) (*Player, bool) {
	p, ok := s.players[id]
	return p, ok
}

func (s *PlayerStore) Len() int {
	return len(s.players)
}

// IDs returns the player ids in sorted order so multi-target passes are
// deterministic.
func (s *PlayerStore) IDs() []string {
	ids := make([]string, 0, len(s.players))
	for id := range s.players {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ApplyUpdate commits the present fields of u to the player's record. A
// position that fails movement validation is dropped while the other fields
// still apply. It returns false when the player is unknown.
func (s *PlayerStore) ApplyUpdate(id string, u protocol.StateUpdate, now time.Time) (positionAccepted bool, ok bool) {
	p, ok := s.players[id]
	if !ok {
		return false, false
	}

	if u.Position != nil {
		if s.movement.Validate(p.Position, p.LastUpdate, *u.Position, now) {
			p.Position = *u.Position
			positionAccepted = true
		}
	}
	// Non-finite numbers are treated as absent.
	if u.Rotation != nil && finite(*u.Rotation) {
		p.Rotation = *u.Rotation
	}
	if u.Health != nil && finite(*u.Health) {
		p.Health = clamp(*u.Health, 0, MaxHealth)
	}
	if u.Armor != nil && finite(*u.Armor) {
		p.Armor = clamp(*u.Armor, 0, MaxArmor)
	}
	if u.Weapon != nil {
		p.Weapon, _ = s.rules.Weapons.Lookup(*u.Weapon)
	}
	if u.Crouching != nil {
		p.Crouching = *u.Crouching
	}
	if u.IsMoving != nil {
		p.Moving = *u.IsMoving
	}

	// Anchors the next movement check even when the position was rejected.
	p.LastUpdate = now
	return positionAccepted, true
}

// sanitizeName trims the requested name and caps its length. An empty name
// becomes "Player-" plus the start of the id.
func sanitizeName(name, id string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	if name == "" {
		short := id
		if len(short) > 4 {
			short = short[:4]
		}
		name = "Player-" + short
	}
	return name
}
