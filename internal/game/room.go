package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"skirmish/internal/protocol"
)

// Room is the session coordinator. It owns every piece of session state and
// is the only component that emits frames to clients.
//
// All state is guarded by mu. Inbound actions, the snapshot tick and respawn
// polling each take it for the whole handler, so validators and the resolver
// never run concurrently with one another. Do not add finer-grained locks to
// the components; keep this one guard.
type Room struct {
	mu sync.Mutex

	rules       Rules
	clients     map[string]*Client
	players     *PlayerStore
	lastFire    map[string]time.Time
	lastGrenade map[string]time.Time
	respawns    *RespawnScheduler
	win         *WinMonitor
	ledger      *DestructibleLedger
	combat      *CombatResolver
	fireRate    FireRateValidator

	clock func() time.Time
	rng   *rand.Rand

	running  bool
	quit     chan struct{}
	stopOnce sync.Once

	snapshotCount     int64
	totalSnapshotSize int64
}

// Option customizes a Room.
type Option func(*Room)

// WithClock replaces the wall clock. Tests use it to drive validators and
// respawn timing deterministically.
func WithClock(clock func() time.Time) Option {
	return func(r *Room) { r.clock = clock }
}

// WithRand sets the source used to pick spawn points.
func WithRand(rng *rand.Rand) Option {
	return func(r *Room) { r.rng = rng }
}

// NewRoom creates an empty room running under rules.
func NewRoom(rules Rules, opts ...Option) *Room {
	r := &Room{
		rules:       rules,
		clients:     make(map[string]*Client),
		lastFire:    make(map[string]time.Time),
		lastGrenade: make(map[string]time.Time),
		clock:       time.Now,
		quit:        make(chan struct{}),
	}
	r.players = NewPlayerStore(&r.rules)
	r.respawns = NewRespawnScheduler(rules.RespawnDelay)
	r.win = NewWinMonitor(rules.KillLimit)
	r.ledger = NewDestructibleLedger()
	r.combat = NewCombatResolver(&r.rules)
	r.fireRate = FireRateValidator{Tolerance: rules.FireRateTolerance}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(r.clock().UnixNano()))
	}
	return r
}

// Start runs the snapshot loop until Stop is called.
func (r *Room) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	rate := r.rules.SnapshotRate
	if rate <= 0 {
		rate = SnapshotRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	log.Printf("Room started, snapshots at %d Hz", rate)
	for {
		select {
		case <-r.quit:
			log.Println("Room stopped")
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Stop ends the snapshot loop.
func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// Tick runs due respawns and broadcasts one snapshot.
func (r *Room) Tick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	r.processRespawns(now)
	r.broadcastSnapshot(now)
}

// AddClient attaches a connection. The client receives frames but has no
// player record until it sends a join.
func (r *Room) AddClient(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.ID] = c
}

// Join creates the player record for an attached client.
func (r *Room) Join(id, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[id]
	if !ok {
		return
	}
	if _, rejoin := r.players.Get(id); !rejoin && r.rules.MaxPlayers > 0 && r.players.Len() >= r.rules.MaxPlayers {
		log.Printf("Room full (%d players), ignoring join from %s", r.players.Len(), id)
		return
	}

	now := r.clock()
	r.respawns.Cancel(id)
	delete(r.lastFire, id)
	delete(r.lastGrenade, id)
	player := r.players.Join(id, username, now)
	client.JoinedAt = now

	r.sendTo(id, protocol.MsgWelcome, protocol.Welcome{PlayerID: id, Player: player.State()})
	r.broadcastExcept(id, protocol.MsgPlayerJoined, protocol.PlayerJoined{Player: player.State()})
	log.Printf("Player %s (%s) joined the game", id, player.Name)
}

// Leave removes the player and detaches the client. It is safe to call for
// ids that never joined.
func (r *Room) Leave(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.respawns.Cancel(id)
	delete(r.lastFire, id)
	delete(r.lastGrenade, id)

	if client, ok := r.clients[id]; ok {
		client.close()
		delete(r.clients, id)
	}

	player, ok := r.players.Get(id)
	if !ok {
		return
	}
	r.players.Remove(id)
	r.broadcast(protocol.MsgPlayerLeft, protocol.PlayerLeft{PlayerID: id})
	log.Printf("Player %s (%s) left the game", id, player.Name)

	if r.players.Len() == 0 {
		r.resetSession()
	}
}

// resetSession clears the per-session state once the room is empty so the
// next group starts clean.
func (r *Room) resetSession() {
	r.ledger.Reset()
	r.win.Reset()
	r.respawns.Reset()
	clear(r.lastFire)
	clear(r.lastGrenade)
	log.Println("Room empty, session state reset")
}

// UpdateState applies a partial state update from a player.
func (r *Room) UpdateState(id string, u protocol.StateUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players.ApplyUpdate(id, u, r.clock())
}

// Fire handles a weapon discharge and any hit it claims.
func (r *Room) Fire(id string, msg protocol.WeaponFire) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shooter, ok := r.players.Get(id)
	if !ok || !shooter.Alive() {
		return
	}

	now := r.clock()
	weapon, stats := r.rules.Weapons.Lookup(msg.WeaponType)
	last, hasLast := r.lastFire[id]
	if !r.fireRate.Allow(last, hasLast, stats, now) {
		return
	}
	r.lastFire[id] = now

	// The claimed origin is only a hint; fall back to the canonical position
	// when it is missing or not a real point.
	origin := shooter.Position
	if msg.Origin != nil && msg.Origin.Finite() {
		origin = *msg.Origin
	}
	r.broadcastExcept(id, protocol.MsgWeaponFired, protocol.WeaponFired{
		PlayerID:   id,
		WeaponType: weapon,
		Origin:     origin,
		Direction:  msg.Direction,
		Timestamp:  msg.Timestamp,
	})

	if msg.HitPlayerID == "" {
		return
	}
	victim, ok := r.players.Get(msg.HitPlayerID)
	if !ok {
		return
	}
	hit, ok := r.combat.ResolveShot(shooter, victim, weapon, origin, msg.HitPoint)
	if !ok {
		return
	}
	r.applyHit(hit, now)
}

// ThrowGrenade echoes a throw to the other players.
func (r *Room) ThrowGrenade(id string, msg protocol.GrenadeThrow) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players.Get(id); !ok {
		return
	}
	r.broadcastExcept(id, protocol.MsgGrenadeThrown, protocol.GrenadeThrown{
		PlayerID:    id,
		GrenadeType: msg.GrenadeType,
		Origin:      msg.Origin,
		Direction:   msg.Direction,
		Timestamp:   msg.Timestamp,
	})
}

// ExplodeGrenade echoes a detonation and applies its area damage, attributed
// to the thrower. Damaging grenades are limited to one per GrenadeCooldown
// per player; detonations inside the cooldown are dropped silently.
func (r *Room) ExplodeGrenade(id string, msg protocol.GrenadeExplosion) {
	r.mu.Lock()
	defer r.mu.Unlock()

	thrower, ok := r.players.Get(id)
	if !ok || !msg.Position.Finite() {
		return
	}
	now := r.clock()
	stats, damaging := r.rules.Grenades[msg.GrenadeType]
	damaging = damaging && stats.Damage > 0
	if damaging {
		if last, ok := r.lastGrenade[id]; ok && now.Sub(last) < r.rules.GrenadeCooldown {
			return
		}
		r.lastGrenade[id] = now
	}

	r.broadcastExcept(id, protocol.MsgGrenadeExploded, protocol.GrenadeExploded{
		PlayerID:    id,
		GrenadeType: msg.GrenadeType,
		Position:    msg.Position,
		Timestamp:   msg.Timestamp,
	})

	if !damaging {
		return
	}
	for _, hit := range r.combat.ResolveArea(r.players, msg.Position, stats.Radius, stats.Damage, thrower, msg.GrenadeType) {
		r.applyHit(hit, now)
	}
}

// ToggleFlashlight records and echoes a flashlight change.
func (r *Room) ToggleFlashlight(id string, msg protocol.FlashlightToggle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players.Get(id)
	if !ok {
		return
	}
	player.FlashlightOn = msg.IsOn
	r.broadcastExcept(id, protocol.MsgFlashlightToggled, protocol.FlashlightToggled{PlayerID: id, IsOn: msg.IsOn})
}

// DestroyProp records a prop destruction once. Explosive props also deal area
// damage credited to the reporting player.
func (r *Room) DestroyProp(id string, msg protocol.DestructibleDestroyed) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reporter, ok := r.players.Get(id)
	if !ok || msg.PropID == "" || !msg.Position.Finite() {
		return
	}
	prop := protocol.DestroyedProp{PropID: msg.PropID, Position: msg.Position, Type: msg.Type}
	if !r.ledger.Record(prop) {
		return
	}
	r.broadcast(protocol.MsgPropDestroyed, protocol.PropDestroyed{
		PropID:    msg.PropID,
		Position:  msg.Position,
		Type:      msg.Type,
		Timestamp: msg.Timestamp,
	})

	if msg.Type != r.rules.ExplosivePropType {
		return
	}
	now := r.clock()
	for _, hit := range r.combat.ResolveArea(r.players, msg.Position, r.rules.ExplosiveRadius, r.rules.ExplosiveDamage, reporter, msg.Type) {
		r.applyHit(hit, now)
	}
}

// applyHit turns a resolved hit into events and runs death bookkeeping.
func (r *Room) applyHit(hit Hit, now time.Time) {
	ts := now.UnixMilli()
	victim, ok := r.players.Get(hit.VictimID)
	if !ok {
		return
	}
	r.broadcast(protocol.MsgPlayerDamaged, protocol.PlayerDamaged{
		ShooterID: hit.AttackerID,
		VictimID:  hit.VictimID,
		Damage:    hit.Damage,
		Headshot:  hit.Headshot,
		Health:    victim.Health,
		Armor:     victim.Armor,
		Timestamp: ts,
	})
	if !hit.Killed {
		return
	}

	r.broadcast(protocol.MsgPlayerDied, protocol.PlayerDied{
		VictimID:   hit.VictimID,
		KillerID:   hit.AttackerID,
		WeaponType: hit.Weapon,
		Timestamp:  ts,
	})
	if hit.Credited {
		killer, _ := r.players.Get(hit.AttackerID)
		log.Printf("Player %s (%s) was killed by Player %s with %s", victim.ID, victim.Name, hit.AttackerID, hit.Weapon)
		if r.win.Check(killer) {
			r.broadcast(protocol.MsgGameOver, protocol.GameOver{
				WinnerID:   killer.ID,
				WinnerName: killer.Name,
				Reason:     GameOverReasonKillLimit,
				Timestamp:  ts,
			})
			log.Printf("Game over: Player %s (%s) reached %d kills", killer.ID, killer.Name, killer.Kills)
		}
	} else {
		log.Printf("Player %s (%s) died to %s", victim.ID, victim.Name, hit.Weapon)
	}
	r.respawns.Schedule(victim.ID, now)
}

// processRespawns restores every player whose respawn delay has elapsed.
func (r *Room) processRespawns(now time.Time) {
	for _, id := range r.respawns.Due(now) {
		player, ok := r.players.Get(id)
		if !ok {
			continue
		}
		player.Position = r.pickSpawn()
		player.Health = MaxHealth
		player.Armor = 0
		player.LastUpdate = now
		r.broadcast(protocol.MsgPlayerRespawned, protocol.PlayerRespawned{
			PlayerID:  id,
			Position:  player.Position,
			Health:    player.Health,
			Armor:     player.Armor,
			Timestamp: now.UnixMilli(),
		})
		log.Printf("Player %s (%s) respawned", id, player.Name)
	}
}

func (r *Room) pickSpawn() protocol.Vec3 {
	if len(r.rules.SpawnPoints) == 0 {
		return protocol.Vec3{}
	}
	return r.rules.SpawnPoints[r.rng.Intn(len(r.rules.SpawnPoints))]
}

// HandleMessage decodes an inbound envelope from client id and dispatches it.
// Malformed payloads are logged and dropped.
func (r *Room) HandleMessage(id string, env protocol.Envelope) {
	switch env.Type {
	case protocol.MsgJoin:
		if msg, ok := decode[protocol.Join](id, env); ok {
			r.Join(id, msg.Username)
		}
	case protocol.MsgStateUpdate:
		if msg, ok := decode[protocol.StateUpdate](id, env); ok {
			r.UpdateState(id, msg)
		}
	case protocol.MsgWeaponFire:
		if msg, ok := decode[protocol.WeaponFire](id, env); ok {
			r.Fire(id, msg)
		}
	case protocol.MsgGrenadeThrow:
		if msg, ok := decode[protocol.GrenadeThrow](id, env); ok {
			r.ThrowGrenade(id, msg)
		}
	case protocol.MsgGrenadeExplosion:
		if msg, ok := decode[protocol.GrenadeExplosion](id, env); ok {
			r.ExplodeGrenade(id, msg)
		}
	case protocol.MsgFlashlightToggle:
		if msg, ok := decode[protocol.FlashlightToggle](id, env); ok {
			r.ToggleFlashlight(id, msg)
		}
	case protocol.MsgDestructibleDestroyed:
		if msg, ok := decode[protocol.DestructibleDestroyed](id, env); ok {
			r.DestroyProp(id, msg)
		}
	default:
		log.Printf("Unknown message type %q from client %s", env.Type, id)
	}
}

func decode[T any](id string, env protocol.Envelope) (T, bool) {
	msg, err := protocol.DecodePayload[T](env)
	if err != nil {
		log.Printf("Error decoding message from client %s: %v", id, err)
		return msg, false
	}
	return msg, true
}
