package protocol

import (
	"errors"
	"math"
	"testing"
)

func TestEncodeDecodeSnapshotKeepsKillsAndDeaths(t *testing.T) {
	snap := StateSnapshot{
		Timestamp: 1234,
		Players: map[string]PlayerState{
			"a": {ID: "a", Name: "alice", Health: 90, Armor: 35, Kills: 3, Deaths: 1},
		},
		DestroyedProps: []DestroyedProp{{PropID: "crate-1", Type: "crate"}},
	}
	b, err := Encode(MsgStateSnapshot, snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Type != MsgStateSnapshot {
		t.Fatalf("type = %q, want %q", env.Type, MsgStateSnapshot)
	}
	got, err := DecodePayload[StateSnapshot](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	p, ok := got.Players["a"]
	if !ok {
		t.Fatalf("player a missing from snapshot")
	}
	if p.Kills != 3 || p.Deaths != 1 {
		t.Fatalf("kills/deaths = %d/%d, want 3/1", p.Kills, p.Deaths)
	}
	if len(got.DestroyedProps) != 1 || got.DestroyedProps[0].PropID != "crate-1" {
		t.Fatalf("unexpected destroyed props: %+v", got.DestroyedProps)
	}
}

func TestStateUpdateAbsentFieldsStayNil(t *testing.T) {
	crouch := true
	b, err := Encode(MsgStateUpdate, StateUpdate{Crouching: &crouch})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	u, err := DecodePayload[StateUpdate](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if u.Position != nil || u.Health != nil || u.Weapon != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", u)
	}
	if u.Crouching == nil || !*u.Crouching {
		t.Fatalf("expected crouching=true")
	}
}

func TestDecodeEnvelopeRejectsBadFrames(t *testing.T) {
	if _, err := DecodeEnvelope(nil); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("nil frame: got %v, want ErrEmptyFrame", err)
	}
	if _, err := DecodeEnvelope([]byte{0xc1}); err == nil {
		t.Fatalf("expected error for garbage frame")
	}
}

func TestEncodeRejectsEmptyType(t *testing.T) {
	if _, err := Encode("", Join{}); !errors.Is(err, ErrEmptyType) {
		t.Fatalf("got %v, want ErrEmptyType", err)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 3, Y: 4, Z: 0}
	if d := a.DistanceTo(b); d != 5 {
		t.Fatalf("distance = %v, want 5", d)
	}
}

func TestVec3Finite(t *testing.T) {
	cases := []struct {
		v    Vec3
		want bool
	}{
		{Vec3{X: 1, Y: 2, Z: 3}, true},
		{Vec3{X: math.NaN()}, false},
		{Vec3{Y: math.Inf(1)}, false},
		{Vec3{Z: math.Inf(-1)}, false},
	}
	for _, tc := range cases {
		if got := tc.v.Finite(); got != tc.want {
			t.Errorf("%+v.Finite() = %v, want %v", tc.v, got, tc.want)
		}
	}
}
