package protocol

import (
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Inbound message types
const (
	MsgJoin                  = "join"
	MsgStateUpdate           = "stateUpdate"
	MsgWeaponFire            = "weaponFire"
	MsgGrenadeThrow          = "grenadeThrow"
	MsgGrenadeExplosion      = "grenadeExplosion"
	MsgFlashlightToggle      = "flashlightToggle"
	MsgDestructibleDestroyed = "destructibleDestroyed"
)

// Outbound message types
const (
	MsgWelcome           = "welcome"
	MsgPlayerJoined      = "playerJoined"
	MsgPlayerLeft        = "playerLeft"
	MsgStateSnapshot     = "stateSnapshot"
	MsgWeaponFired       = "weaponFired"
	MsgPlayerDamaged     = "playerDamaged"
	MsgPlayerDied        = "playerDied"
	MsgPlayerRespawned   = "playerRespawned"
	MsgGrenadeThrown     = "grenadeThrown"
	MsgGrenadeExploded   = "grenadeExploded"
	MsgFlashlightToggled = "flashlightToggled"
	MsgPropDestroyed     = MsgDestructibleDestroyed
	MsgGameOver          = "gameOver"
)

// Envelope wraps every frame on the wire. Data holds the msgpack-encoded payload.
type Envelope struct {
	Type string             `msgpack:"type"`
	Data msgpack.RawMessage `msgpack:"data"`
}

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
	Z float64 `msgpack:"z"`
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Length returns the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the straight-line distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Finite reports whether every component of v is a real number. Positions
// read off the wire must pass this before any distance math uses them.
func (v Vec3) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
