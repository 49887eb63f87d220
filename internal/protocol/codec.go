package protocol

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrEmptyFrame   = errors.New("empty frame")
	ErrEmptyType    = errors.New("envelope type is empty")
	ErrEmptyPayload = errors.New("envelope payload is empty")
)

// Encode wraps payload in an envelope of type t and returns the msgpack frame.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, ErrEmptyType
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %s: %w", t, ErrEmptyPayload)
	}
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", t, err)
	}
	frame, err := msgpack.Marshal(Envelope{Type: t, Data: data})
	if err != nil {
		return nil, fmt.Errorf("encode %s envelope: %w", t, err)
	}
	return frame, nil
}

// DecodeEnvelope reads the outer envelope of a frame without touching the payload.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyFrame
	}
	var env Envelope
	if err := msgpack.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Type == "" {
		return Envelope{}, ErrEmptyType
	}
	return env, nil
}

// DecodePayload decodes the envelope payload into a T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, fmt.Errorf("decode %s: %w", env.Type, ErrEmptyPayload)
	}
	if err := msgpack.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", env.Type, err)
	}
	return out, nil
}
