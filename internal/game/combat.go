package game

import (
	"math"

	"skirmish/internal/protocol"
)

// Hit is the outcome of damage applied to one victim.
type Hit struct {
	AttackerID string // empty for environment damage
	VictimID   string
	Weapon     string
	Damage     float64
	Headshot   bool
	Killed     bool
	Credited   bool // attacker was awarded the kill
}

// CombatResolver applies direct and area damage to canonical player records
// and keeps kill/death counters. It does not broadcast; the Room turns the
// returned hits into events.
type CombatResolver struct {
	rules *Rules
}

func NewCombatResolver(rules *Rules) *CombatResolver {
	return &CombatResolver{rules: rules}
}

// ApplyArmor splits damage between the armor and health pools. Armor soaks at
// most ArmorAbsorption of the damage; toArmor+toHealth always equals damage.
func (c *CombatResolver) ApplyArmor(p *Player, damage float64) (toArmor, toHealth float64) {
	if damage <= 0 {
		return 0, 0
	}
	toArmor = math.Min(p.Armor, c.rules.ArmorAbsorption*damage)
	toHealth = damage - toArmor
	p.Armor = clamp(p.Armor-toArmor, 0, MaxArmor)
	p.Health = clamp(p.Health-toHealth, 0, MaxHealth)
	return toArmor, toHealth
}

// ResolveShot validates a claimed direct hit and applies it. origin is the
// shooter's claimed muzzle position; the victim's canonical position is what
// the range check is measured against. It returns false when the shot is
// rejected.
func (c *CombatResolver) ResolveShot(shooter, victim *Player, weaponClass string, origin protocol.Vec3, hitPoint *protocol.Vec3) (Hit, bool) {
	if shooter == nil || victim == nil || shooter.ID == victim.ID {
		return Hit{}, false
	}
	if !victim.Alive() {
		return Hit{}, false
	}

	weapon, stats := c.rules.Weapons.Lookup(weaponClass)
	// Written so that a NaN distance fails the check.
	if dist := origin.DistanceTo(victim.Position); !(dist <= stats.Range) {
		return Hit{}, false
	}
	if hitPoint != nil && !hitPoint.Finite() {
		hitPoint = nil
	}

	damage := stats.Damage
	headshot := hitPoint != nil && hitPoint.Y-victim.Position.Y >= c.rules.HeadshotThreshold
	if headshot {
		if stats.LethalOnHeadshot {
			damage = c.rules.LethalDamage
		} else {
			damage *= c.rules.HeadshotMultiplier
		}
	}

	hit := Hit{
		AttackerID: shooter.ID,
		VictimID:   victim.ID,
		Weapon:     weapon,
		Damage:     damage,
		Headshot:   headshot,
	}
	c.ApplyArmor(victim, damage)
	if !victim.Alive() {
		hit.Killed = true
		hit.Credited = c.creditKill(shooter, victim)
	}
	return hit, true
}

// ResolveArea damages every living player within radius of center with
// linear falloff. attacker may be nil for environment sources. Victims are
// visited in id order.
func (c *CombatResolver) ResolveArea(store *PlayerStore, center protocol.Vec3, radius, baseDamage float64, attacker *Player, source string) []Hit {
	if radius <= 0 || baseDamage <= 0 || !center.Finite() {
		return nil
	}
	attackerID := ""
	if attacker != nil {
		attackerID = attacker.ID
	}

	var hits []Hit
	for _, id := range store.IDs() {
		victim, _ := store.Get(id)
		if !victim.Alive() {
			continue
		}
		dist := center.DistanceTo(victim.Position)
		if !(dist < radius) {
			continue
		}
		damage := baseDamage * (1 - dist/radius)
		if damage <= 0 {
			continue
		}

		hit := Hit{
			AttackerID: attackerID,
			VictimID:   victim.ID,
			Weapon:     source,
			Damage:     damage,
		}
		c.ApplyArmor(victim, damage)
		if !victim.Alive() {
			hit.Killed = true
			hit.Credited = c.creditKill(attacker, victim)
		}
		hits = append(hits, hit)
	}
	return hits
}

// creditKill records the death and, unless it was a self or environment
// kill, the attacker's kill.
func (c *CombatResolver) creditKill(attacker, victim *Player) bool {
	victim.Deaths++
	if attacker == nil || attacker.ID == victim.ID {
		return false
	}
	attacker.Kills++
	return true
}
