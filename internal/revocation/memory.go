package revocation

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store for single-instance deployments and tests.
// Entries live until the process exits; a restart un-revokes everything that
// has not expired yet, which is an accepted limitation of this backend.
type Memory struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{tokens: make(map[string]struct{})}
}

func (m *Memory) Add(_ context.Context, token string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = struct{}{}
	return nil
}

func (m *Memory) Contains(_ context.Context, token string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.tokens[token]
	return ok, nil
}
