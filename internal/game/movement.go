package game

import (
	"time"

	"skirmish/internal/protocol"
)

// MovementValidator rejects position updates that imply a speed above the
// allowed maximum.
type MovementValidator struct {
	MaxSpeed  float64
	Tolerance float64
	MinDelta  time.Duration
}

func newMovementValidator(rules *Rules) MovementValidator {
	return MovementValidator{
		MaxSpeed:  rules.MaxSpeed,
		Tolerance: rules.SpeedTolerance,
		MinDelta:  rules.MinMoveDelta,
	}
}

// Validate reports whether moving from `from` (stored at `last`) to `to` at
// `now` is physically plausible. A non-finite target is never accepted;
// otherwise updates closer together than MinDelta always are.
func (v MovementValidator) Validate(from protocol.Vec3, last time.Time, to protocol.Vec3, now time.Time) bool {
	if !to.Finite() {
		return false
	}
	elapsed := now.Sub(last)
	if elapsed <= v.MinDelta {
		return true
	}
	allowed := v.MaxSpeed * v.Tolerance * elapsed.Seconds()
	return from.DistanceTo(to) <= allowed
}
