package durable

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
)

var ErrChecksum = errors.New("durable: payload checksum mismatch")

// Envelope is the wire form of one durable blob. The cache's bookkeeping
// travels with the payload so a promotion restores the original validity
// window, and the checksum lets a torn or foreign blob be rejected on read.
type Envelope struct {
	Data      json.RawMessage `json:"data"`
	WrittenAt int64           `json:"written_at"`
	TTL       int64           `json:"ttl_ns"`
	Sum       uint64          `json:"sum"`
}

func Encode[T any](value T, writtenAt time.Time, ttl time.Duration) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	blob, err := json.Marshal(Envelope{
		Data:      data,
		WrittenAt: writtenAt.UnixNano(),
		TTL:       ttl.Nanoseconds(),
		Sum:       xxh3.Hash(data),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	return blob, nil
}

func Decode[T any](blob []byte) (value T, writtenAt time.Time, ttl time.Duration, err error) {
	var env Envelope
	if err = json.Unmarshal(blob, &env); err != nil {
		return value, writtenAt, ttl, fmt.Errorf("unmarshal envelope: %w", err)
	}

	if xxh3.Hash(env.Data) != env.Sum {
		return value, writtenAt, ttl, ErrChecksum
	}

	if err = json.Unmarshal(env.Data, &value); err != nil {
		return value, writtenAt, ttl, fmt.Errorf("unmarshal payload: %w", err)
	}

	return value, time.Unix(0, env.WrittenAt), time.Duration(env.TTL), nil
}
