package game

import (
	"testing"
	"time"
)

func TestFireRateValidator(t *testing.T) {
	v := FireRateValidator{Tolerance: FireRateTolerance}
	weapons := DefaultWeapons()

	for class, stats := range weapons.Stats {
		t.Run(class, func(t *testing.T) {
			minGap := stats.MinInterval()
			if !v.Allow(time.Time{}, false, stats, testEpoch) {
				t.Fatalf("first shot rejected")
			}
			if !v.Allow(testEpoch, true, stats, testEpoch.Add(minGap)) {
				t.Fatalf("shot exactly one interval later rejected")
			}
			tolerated := time.Duration(float64(minGap) * FireRateTolerance)
			if !v.Allow(testEpoch, true, stats, testEpoch.Add(tolerated)) {
				t.Fatalf("shot at the tolerance boundary rejected")
			}
			if v.Allow(testEpoch, true, stats, testEpoch.Add(tolerated-time.Millisecond)) {
				t.Fatalf("shot inside the tolerance window accepted")
			}
		})
	}
}

func TestWeaponMinInterval(t *testing.T) {
	rifle := DefaultWeapons().Stats[WeaponRifle]
	if got := rifle.MinInterval(); got != 125*time.Millisecond {
		t.Fatalf("rifle interval = %v, want 125ms", got)
	}
	if got := (WeaponStats{}).MinInterval(); got != 0 {
		t.Fatalf("zero rate interval = %v, want 0", got)
	}
}

func TestWeaponLookupFallback(t *testing.T) {
	table := DefaultWeapons()
	name, stats := table.Lookup("")
	if name != WeaponPistol || stats != table.Stats[WeaponPistol] {
		t.Fatalf("empty class resolved to %q %+v", name, stats)
	}
	name, _ = table.Lookup(WeaponSniper)
	if name != WeaponSniper {
		t.Fatalf("sniper resolved to %q", name)
	}
}
