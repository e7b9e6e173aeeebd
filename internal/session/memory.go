package session

import (
	"context"
	"sync"
)

// MemoryStore keeps tokens in process memory. Used by tests and by
// single-instance development runs without Redis; sessions are lost on
// restart.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]string),
	}
}

func (m *MemoryStore) SetToken(_ context.Context, sid, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[sid] = token
	return nil
}

func (m *MemoryStore) Token(_ context.Context, sid string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return normalize(m.tokens[sid]), nil
}

func (m *MemoryStore) Clear(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, sid)
	return nil
}
