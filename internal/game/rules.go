package game

import (
	"time"

	"skirmish/internal/protocol"
)

// Grenade types
const (
	GrenadeFrag  = "frag"
	GrenadeFlash = "flash"
	GrenadeSmoke = "smoke"
)

// GrenadeStats describes the area damage dealt when a grenade detonates.
// Zero damage means the grenade is purely cosmetic on the server.
type GrenadeStats struct {
	Radius float64
	Damage float64
}

// Rules is the full balance and tuning configuration of a session. It is
// copied into a Room at construction so alternate configurations can run side
// by side.
type Rules struct {
	Weapons  WeaponTable
	Grenades map[string]GrenadeStats

	// GrenadeCooldown is the minimum gap between two damaging detonations
	// reported by the same player.
	GrenadeCooldown time.Duration

	// SpawnPoints must not be empty. The first entry is where new players
	// appear on join.
	SpawnPoints []protocol.Vec3

	MaxSpeed       float64
	SpeedTolerance float64
	MinMoveDelta   time.Duration

	FireRateTolerance  float64
	ArmorAbsorption    float64
	HeadshotThreshold  float64
	HeadshotMultiplier float64
	LethalDamage       float64

	ExplosivePropType string
	ExplosiveRadius   float64
	ExplosiveDamage   float64

	KillLimit    int
	RespawnDelay time.Duration
	SnapshotRate int
	MaxPlayers   int
}

// DefaultRules returns the stock configuration.
func DefaultRules() Rules {
	return Rules{
		Weapons: DefaultWeapons(),
		Grenades: map[string]GrenadeStats{
			GrenadeFrag:  {Radius: 6, Damage: 100},
			GrenadeFlash: {},
			GrenadeSmoke: {},
		},
		GrenadeCooldown: GrenadeCooldown,
		SpawnPoints: []protocol.Vec3{
			{X: 0, Y: 1, Z: 0},
			{X: 20, Y: 1, Z: 20},
			{X: -20, Y: 1, Z: 20},
			{X: 20, Y: 1, Z: -20},
			{X: -20, Y: 1, Z: -20},
			{X: 0, Y: 1, Z: 30},
			{X: 0, Y: 1, Z: -30},
			{X: 30, Y: 1, Z: 0},
		},
		MaxSpeed:           MaxMoveSpeed,
		SpeedTolerance:     MoveSpeedTolerance,
		MinMoveDelta:       MinMoveDelta,
		FireRateTolerance:  FireRateTolerance,
		ArmorAbsorption:    ArmorAbsorption,
		HeadshotThreshold:  HeadshotThreshold,
		HeadshotMultiplier: HeadshotMultiplier,
		LethalDamage:       LethalDamage,
		ExplosivePropType:  PropTypeBarrel,
		ExplosiveRadius:    BarrelRadius,
		ExplosiveDamage:    BarrelDamage,
		KillLimit:          KillLimit,
		RespawnDelay:       RespawnDelay,
		SnapshotRate:       SnapshotRate,
		MaxPlayers:         DefaultMaxSlots,
	}
}

// DefaultSpawn is where freshly joined players are placed.
func (r *Rules) DefaultSpawn() protocol.Vec3 {
	if len(r.SpawnPoints) == 0 {
		return protocol.Vec3{}
	}
	return r.SpawnPoints[0]
}
