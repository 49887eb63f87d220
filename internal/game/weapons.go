package game

import "time"

// Weapon classes
const (
	WeaponPistol  = "pistol"
	WeaponRifle   = "rifle"
	WeaponShotgun = "shotgun"
	WeaponSniper  = "sniper"
)

// WeaponStats holds the server-side balance values of a weapon class.
type WeaponStats struct {
	Damage           float64
	Range            float64
	RoundsPerSecond  float64
	LethalOnHeadshot bool // headshots kill through any armor
}

// MinInterval is the shortest legal gap between two shots.
func (s WeaponStats) MinInterval() time.Duration {
	if s.RoundsPerSecond <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / s.RoundsPerSecond)
}

// WeaponTable maps weapon class names to their stats. Unknown classes resolve
// to the Default entry.
type WeaponTable struct {
	Default string
	Stats   map[string]WeaponStats
}

// DefaultWeapons returns the stock balance table.
func DefaultWeapons() WeaponTable {
	return WeaponTable{
		Default: WeaponPistol,
		Stats: map[string]WeaponStats{
			WeaponPistol:  {Damage: 25, Range: 60, RoundsPerSecond: 3},
			WeaponRifle:   {Damage: 20, Range: 100, RoundsPerSecond: 8},
			WeaponShotgun: {Damage: 60, Range: 20, RoundsPerSecond: 1.2},
			WeaponSniper:  {Damage: 90, Range: 300, RoundsPerSecond: 0.8, LethalOnHeadshot: true},
		},
	}
}

// Lookup returns the canonical class name and stats for class, falling back
// to the default entry for unknown names.
func (t WeaponTable) Lookup(class string) (string, WeaponStats) {
	if s, ok := t.Stats[class]; ok {
		return class, s
	}
	return t.Default, t.Stats[t.Default]
}

// FireRateValidator rejects shots that arrive faster than a weapon allows.
type FireRateValidator struct {
	Tolerance float64
}

// Allow reports whether a shot at now is legal given the previous accepted
// shot. hasLast is false when the player has not fired yet.
func (v FireRateValidator) Allow(last time.Time, hasLast bool, weapon WeaponStats, now time.Time) bool {
	if !hasLast {
		return true
	}
	minGap := time.Duration(float64(weapon.MinInterval()) * v.Tolerance)
	return now.Sub(last) >= minGap
}
