// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by a Backend when no value exists for a key
var ErrNotFound = errors.New("storage: key not found")

// Backend is a raw key-value store. Implementations hold serialized JSON
// blobs under string keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Adapter converts an unreliable backend into a total, always-succeeding
// interface: reads fall back to the caller's default, writes and deletes
// swallow failures with a logged warning. No operation ever returns an
// error to its caller.
type Adapter struct {
	backend Backend
	logger  *logrus.Logger
	timeout time.Duration
}

// NewAdapter creates a new storage adapter over the given backend
func NewAdapter(backend Backend, logger *logrus.Logger) *Adapter {
	return &Adapter{
		backend: backend,
		logger:  logger,
		timeout: 3 * time.Second,
	}
}

// Get reads and deserializes the value stored under key into dest. It
// returns false when the key is absent, the payload cannot be decoded, or
// the backend fails; on false the caller's pre-populated fallback stands.
func (a *Adapter) Get(key string, dest interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	data, err := a.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.logger.WithError(err).WithField("key", key).Warn("Failed to read from storage")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		a.logger.WithError(err).WithField("key", key).Warn("Failed to decode stored value")
		return false
	}

	return true
}

// Set serializes value and writes it under key, logging on failure
func (a *Adapter) Set(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		a.logger.WithError(err).WithField("key", key).Warn("Failed to encode value for storage")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.backend.Set(ctx, key, data); err != nil {
		a.logger.WithError(err).WithField("key", key).Warn("Failed to write to storage")
	}
}

// Remove deletes the value stored under key, logging on failure
func (a *Adapter) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.backend.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		a.logger.WithError(err).WithField("key", key).Warn("Failed to remove from storage")
	}
}
