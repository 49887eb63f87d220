package protocol

// Join is sent once by a client after connecting.
type Join struct {
	Username string `msgpack:"username"`
}

// StateUpdate carries a partial player update. Nil fields are absent and leave
// the canonical value untouched.
type StateUpdate struct {
	Position  *Vec3    `msgpack:"position,omitempty"`
	Rotation  *float64 `msgpack:"rotation,omitempty"`
	Health    *float64 `msgpack:"health,omitempty"`
	Armor     *float64 `msgpack:"armor,omitempty"`
	Weapon    *string  `msgpack:"weapon,omitempty"`
	Crouching *bool    `msgpack:"crouching,omitempty"`
	IsMoving  *bool    `msgpack:"isMoving,omitempty"`
}

// WeaponFire reports a shot and, optionally, the player it claims to have hit.
type WeaponFire struct {
	WeaponType  string `msgpack:"weaponType"`
	Origin      *Vec3  `msgpack:"origin,omitempty"`
	Direction   Vec3   `msgpack:"direction"`
	Timestamp   int64  `msgpack:"timestamp"`
	HitPlayerID string `msgpack:"hitPlayerId,omitempty"`
	HitPoint    *Vec3  `msgpack:"hitPoint,omitempty"`
}

type GrenadeThrow struct {
	GrenadeType string `msgpack:"grenadeType"`
	Origin      Vec3   `msgpack:"origin"`
	Direction   Vec3   `msgpack:"direction"`
	Timestamp   int64  `msgpack:"timestamp"`
}

type GrenadeExplosion struct {
	GrenadeType string `msgpack:"grenadeType"`
	Position    Vec3   `msgpack:"position"`
	Timestamp   int64  `msgpack:"timestamp"`
}

type FlashlightToggle struct {
	IsOn bool `msgpack:"isOn"`
}

// DestructibleDestroyed reports a world prop destroyed on the sender's client.
type DestructibleDestroyed struct {
	PropID    string `msgpack:"propId"`
	Position  Vec3   `msgpack:"position"`
	Type      string `msgpack:"type"`
	Timestamp int64  `msgpack:"timestamp"`
}
