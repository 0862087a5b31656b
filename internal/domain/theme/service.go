// internal/domain/theme/service.go
package theme

import (
	"sync"

	"github.com/your-org/primecart/internal/config"
	"github.com/your-org/primecart/internal/infrastructure/storage"
)

// StorageKey is the persistent store key holding the theme preference
const StorageKey = "theme"

// Theme names
const (
	Light = "light"
	Dark  = "dark"
)

// Service owns the persisted light/dark preference
type Service struct {
	mu      sync.Mutex
	current string
	store   *storage.Adapter
}

// NewService creates a theme service, restoring any persisted preference.
// There is no media query to consult outside a browser, so the fallback
// comes from configuration.
func NewService(store *storage.Adapter, cfg *config.Config) *Service {
	s := &Service{
		current: normalize(cfg.Store.DefaultTheme),
		store:   store,
	}

	var stored string
	if store.Get(StorageKey, &stored) && (stored == Light || stored == Dark) {
		s.current = stored
	}

	return s
}

// Current returns the active theme
func (s *Service) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set switches to the given theme; unknown values fall back to light
func (s *Service) Set(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = normalize(t)
	s.store.Set(StorageKey, s.current)
}

// Toggle flips between light and dark
func (s *Service) Toggle() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == Dark {
		s.current = Light
	} else {
		s.current = Dark
	}
	s.store.Set(StorageKey, s.current)
	return s.current
}

func normalize(t string) string {
	if t == Dark {
		return Dark
	}
	return Light
}
