package session

import (
	"context"
	"errors"
)

// ErrAbsent means there is nothing usable under the key. Slot.Load also
// returns it for values that exist but cannot be decoded or validated.
var ErrAbsent = errors.New("session value absent")

// Store is a per-session key/value space. Values are opaque bytes; there is
// no locking and the last writer wins.
type Store interface {
	Write(ctx context.Context, sessionID, key string, value []byte) error
	Read(ctx context.Context, sessionID, key string) ([]byte, error)
	Delete(ctx context.Context, sessionID, key string) error
}

func composeKey(prefix, sessionID, key string) string {
	if prefix == "" {
		return sessionID + ":" + key
	}
	return prefix + ":" + sessionID + ":" + key
}
