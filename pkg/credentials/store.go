// Package credentials stores the bearer token used to talk to the backend.
//
// A missing token is not an error: Get returns the zero Credentials and
// callers decide whether absence is fatal.
package credentials

import (
	"context"
	"sync"
)

// Credentials is the stored authentication state.
type Credentials struct {
	Token  string
	UserID string
}

// Present reports whether a token is stored.
func (c Credentials) Present() bool {
	return c.Token != ""
}

// Store is the capability to read and write the credentials.
type Store interface {
	Get(ctx context.Context) (Credentials, error)
	Set(ctx context.Context, c Credentials) error
	Clear(ctx context.Context) error
}

// Ensure the in-memory store implements Store
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the credentials in memory only.
type MemoryStore struct {
	mu    sync.RWMutex
	creds Credentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context) (Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds, nil
}

func (m *MemoryStore) Set(_ context.Context, c Credentials) error {
	if c.UserID == "" {
		c.UserID = UserIDFromToken(c.Token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = c
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = Credentials{}
	return nil
}
