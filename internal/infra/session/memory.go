package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in process. Values do not expire and are lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Write(ctx context.Context, sessionID, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf := make([]byte, len(value))
	copy(buf, value)

	m.mu.Lock()
	m.data[composeKey("", sessionID, key)] = buf
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Read(ctx context.Context, sessionID, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	v, ok := m.data[composeKey("", sessionID, key)]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrAbsent
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.data, composeKey("", sessionID, key))
	m.mu.Unlock()
	return nil
}
