package protocol

// PlayerState is the full gameplay-relevant view of one player.
type PlayerState struct {
	ID           string  `msgpack:"id"`
	Name         string  `msgpack:"name"`
	Position     Vec3    `msgpack:"position"`
	Rotation     float64 `msgpack:"rotation"`
	Health       float64 `msgpack:"health"`
	Armor        float64 `msgpack:"armor"`
	Weapon       string  `msgpack:"weapon"`
	Crouching    bool    `msgpack:"crouching"`
	IsMoving     bool    `msgpack:"isMoving"`
	FlashlightOn bool    `msgpack:"flashlightOn"`
	Kills        int     `msgpack:"kills"`
	Deaths       int     `msgpack:"deaths"`
}

// DestroyedProp is one ledger entry.
type DestroyedProp struct {
	PropID   string `msgpack:"propId"`
	Position Vec3   `msgpack:"position"`
	Type     string `msgpack:"type"`
}

type Welcome struct {
	PlayerID string      `msgpack:"playerId"`
	Player   PlayerState `msgpack:"player"`
}

type PlayerJoined struct {
	Player PlayerState `msgpack:"player"`
}

type PlayerLeft struct {
	PlayerID string `msgpack:"playerId"`
}

// StateSnapshot is broadcast at the fixed snapshot rate.
type StateSnapshot struct {
	Timestamp      int64                  `msgpack:"timestamp"`
	Players        map[string]PlayerState `msgpack:"players"`
	DestroyedProps []DestroyedProp        `msgpack:"destroyedProps"`
}

type WeaponFired struct {
	PlayerID   string `msgpack:"playerId"`
	WeaponType string `msgpack:"weaponType"`
	Origin     Vec3   `msgpack:"origin"`
	Direction  Vec3   `msgpack:"direction"`
	Timestamp  int64  `msgpack:"timestamp"`
}

type PlayerDamaged struct {
	ShooterID string  `msgpack:"shooterId"`
	VictimID  string  `msgpack:"victimId"`
	Damage    float64 `msgpack:"damage"`
	Headshot  bool    `msgpack:"headshot"`
	Health    float64 `msgpack:"health"`
	Armor     float64 `msgpack:"armor"`
	Timestamp int64   `msgpack:"timestamp"`
}

type PlayerDied struct {
	VictimID   string `msgpack:"victimId"`
	KillerID   string `msgpack:"killerId"`
	WeaponType string `msgpack:"weaponType"`
	Timestamp  int64  `msgpack:"timestamp"`
}

type PlayerRespawned struct {
	PlayerID  string  `msgpack:"playerId"`
	Position  Vec3    `msgpack:"position"`
	Health    float64 `msgpack:"health"`
	Armor     float64 `msgpack:"armor"`
	Timestamp int64   `msgpack:"timestamp"`
}

type GrenadeThrown struct {
	PlayerID    string `msgpack:"playerId"`
	GrenadeType string `msgpack:"grenadeType"`
	Origin      Vec3   `msgpack:"origin"`
	Direction   Vec3   `msgpack:"direction"`
	Timestamp   int64  `msgpack:"timestamp"`
}

type GrenadeExploded struct {
	PlayerID    string `msgpack:"playerId"`
	GrenadeType string `msgpack:"grenadeType"`
	Position    Vec3   `msgpack:"position"`
	Timestamp   int64  `msgpack:"timestamp"`
}

type FlashlightToggled struct {
	PlayerID string `msgpack:"playerId"`
	IsOn     bool   `msgpack:"isOn"`
}

type PropDestroyed struct {
	PropID    string `msgpack:"propId"`
	Position  Vec3   `msgpack:"position"`
	Type      string `msgpack:"type"`
	Timestamp int64  `msgpack:"timestamp"`
}

// GameOver is sent once per session when a player reaches the kill limit.
type GameOver struct {
	WinnerID   string `msgpack:"winnerId"`
	WinnerName string `msgpack:"winnerName"`
	Reason     string `msgpack:"reason"`
	Timestamp  int64  `msgpack:"timestamp"`
}
