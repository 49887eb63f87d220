package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"skirmish/internal/protocol"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestRoom(t *testing.T, rules Rules) (*Room, *testClock) {
	t.Helper()
	clock := &testClock{now: testEpoch}
	r := NewRoom(rules, WithClock(clock.Now), WithRand(rand.New(rand.NewSource(1))))
	return r, clock
}

// joinPlayer attaches a fake client, joins it and discards the join traffic.
func joinPlayer(t *testing.T, r *Room, id, name string) *Client {
	t.Helper()
	c := NewClient(id, nil)
	r.AddClient(c)
	r.Join(id, name)
	if _, ok := r.players.Get(id); !ok {
		t.Fatalf("player %s was not created", id)
	}
	drainAll(r)
	return c
}

func drainAll(r *Room) {
	for _, c := range r.clients {
		drain(c)
	}
}

// drain returns every frame currently queued for c, decoded.
func drain(c *Client) []protocol.Envelope {
	var out []protocol.Envelope
	for {
		select {
		case b, ok := <-c.Send:
			if !ok {
				return out
			}
			env, err := protocol.DecodeEnvelope(b)
			if err != nil {
				panic(err)
			}
			out = append(out, env)
		default:
			return out
		}
	}
}

func ofType(envs []protocol.Envelope, msgType string) []protocol.Envelope {
	var out []protocol.Envelope
	for _, env := range envs {
		if env.Type == msgType {
			out = append(out, env)
		}
	}
	return out
}

func payload[T any](t *testing.T, env protocol.Envelope) T {
	t.Helper()
	out, err := protocol.DecodePayload[T](env)
	if err != nil {
		t.Fatalf("decode %s: %v", env.Type, err)
	}
	return out
}

func mustPlayer(t *testing.T, r *Room, id string) *Player {
	t.Helper()
	p, ok := r.players.Get(id)
	if !ok {
		t.Fatalf("player %s not found", id)
	}
	return p
}

func place(t *testing.T, r *Room, id string, pos protocol.Vec3) {
	t.Helper()
	mustPlayer(t, r, id).Position = pos
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func ptr[T any](v T) *T { return &v }

var testEpoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
