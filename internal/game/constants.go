package game

import "time"

// Player limits
const (
	MaxHealth       = 100.0
	MaxArmor        = 100.0
	MaxNameLength   = 16
	DefaultMaxSlots = 32
)

// Movement tuning
const (
	MaxMoveSpeed       = 9.9 // units per second
	MoveSpeedTolerance = 1.5
	MinMoveDelta       = 16 * time.Millisecond
)

// Combat tuning
const (
	FireRateTolerance  = 0.9
	ArmorAbsorption    = 0.6 // share of incoming damage armor can soak
	HeadshotThreshold  = 0.5 // hit point height above the feet, in units
	HeadshotMultiplier = 2.0
	LethalDamage       = 1000.0
	GrenadeCooldown    = time.Second // between damaging detonations per player
)

// Session tuning
const (
	KillLimit    = 25
	RespawnDelay = 3 * time.Second
	SnapshotRate = 20 // snapshots per second
)

// Explosive props
const (
	PropTypeBarrel = "barrel"
	BarrelRadius   = 4.0
	BarrelDamage   = 80.0
)

// GameOverReasonKillLimit is reported when a player reaches the kill limit.
const GameOverReasonKillLimit = "kill_limit"
