// internal/domain/cart/service.go
package cart

import (
	"sync"

	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/config"
	"github.com/your-org/primecart/internal/infrastructure/storage"
	"github.com/your-org/primecart/internal/pkg/format"
	"github.com/your-org/primecart/internal/pkg/notify"
)

// StorageKey is the persistent store key holding the cart lines
const StorageKey = "cart"

// Service owns the cart state. It is constructed once at startup, loaded
// from the persistent store, and written through on every mutation. None
// of its operations can fail: malformed input is normalized, not rejected.
type Service struct {
	mu       sync.Mutex
	lines    []Line
	store    *storage.Adapter
	notifier notify.Notifier
	taxRate  float64
}

// NewService creates a cart service, restoring any persisted lines
func NewService(store *storage.Adapter, notifier notify.Notifier, cfg *config.Config) *Service {
	s := &Service{
		lines:    []Line{},
		store:    store,
		notifier: notifier,
		taxRate:  cfg.Store.TaxRate,
	}
	store.Get(StorageKey, &s.lines)
	return s
}

// AddItem adds quantity of a product to the cart, merging with an existing
// line for the same product. Quantities below 1 are treated as 1.
func (s *Service) AddItem(product catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()

	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		s.lines = append(s.lines, Line{Product: product, Quantity: quantity})
	}

	s.persist()
	s.mu.Unlock()

	s.notifier.Success(format.Truncate(product.Title, 30) + " added to cart")
}

// RemoveItem deletes the line for the given product id; absent ids are a no-op
func (s *Service) RemoveItem(id int) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}

	s.persist()
	s.mu.Unlock()

	s.notifier.Success("Item removed from cart")
}

// UpdateQuantity sets the quantity of the line for id. A quantity of zero
// or less removes the line entirely. Silent: quantity changes are frequent
// interactive actions and do not notify.
func (s *Service) UpdateQuantity(id, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID != id {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		break
	}

	s.persist()
}

// Clear empties the cart
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []Line{}
	s.persist()
}

// Items returns a copy of the current lines in insertion order
func (s *Service) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Line, len(s.lines))
	copy(items, s.lines)
	return items
}

// Count returns the sum of quantities across all lines
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked()
}

// Subtotal returns the sum of price times quantity across all lines
func (s *Service) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

// Tax returns the tax on the current subtotal
func (s *Service) Tax() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked() * s.taxRate
}

// Total returns subtotal plus tax
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.subtotalLocked()
	return subtotal + subtotal*s.taxRate
}

// Totals returns a snapshot of all derived values
func (s *Service) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.subtotalLocked()
	tax := subtotal * s.taxRate
	return Totals{
		Count:    s.countLocked(),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

func (s *Service) countLocked() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *Service) subtotalLocked() float64 {
	subtotal := 0.0
	for _, line := range s.lines {
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	return subtotal
}

func (s *Service) persist() {
	s.store.Set(StorageKey, s.lines)
}
