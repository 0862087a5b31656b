// internal/infrastructure/storage/memory.go
package storage

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process store with no persistence across restarts.
// One instance is shared by every store, so access is mutex-guarded.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBackend creates an empty in-memory store
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Get returns the value stored under key
func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

// Set stores value under key
func (b *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	copied := make([]byte, len(value))
	copy(copied, value)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = copied
	return nil
}

// Delete removes the value stored under key
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.values, key)
	return nil
}
