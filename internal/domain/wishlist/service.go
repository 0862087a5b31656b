// internal/domain/wishlist/service.go
package wishlist

import (
	"sync"

	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/infrastructure/storage"
	"github.com/your-org/primecart/internal/pkg/notify"
)

// StorageKey is the persistent store key holding the saved products
const StorageKey = "wishlist"

// Service owns the wishlist: an insertion-ordered set of products, unique
// by product identifier. Same persistence discipline as the cart.
type Service struct {
	mu       sync.Mutex
	items    []catalog.Product
	store    *storage.Adapter
	notifier notify.Notifier
}

// NewService creates a wishlist service, restoring any persisted items
func NewService(store *storage.Adapter, notifier notify.Notifier) *Service {
	s := &Service{
		items:    []catalog.Product{},
		store:    store,
		notifier: notifier,
	}
	store.Get(StorageKey, &s.items)
	return s
}

// Add saves a product to the wishlist; already-present products are not
// duplicated. The notification fires either way.
func (s *Service) Add(product catalog.Product) {
	s.mu.Lock()
	if !s.containsLocked(product.ID) {
		s.items = append(s.items, product)
		s.persist()
	}
	s.mu.Unlock()

	s.notifier.Success("Added to wishlist")
}

// Remove deletes the product with the given id; absent ids leave the set
// unchanged. The notification fires either way.
func (s *Service) Remove(id int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("Removed from wishlist")
}

// Contains reports whether the product with the given id is saved
func (s *Service) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(id)
}

// Toggle removes the product when present, adds it otherwise
func (s *Service) Toggle(product catalog.Product) {
	if s.Contains(product.ID) {
		s.Remove(product.ID)
	} else {
		s.Add(product)
	}
}

// Items returns a copy of the saved products in insertion order
func (s *Service) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]catalog.Product, len(s.items))
	copy(items, s.items)
	return items
}

// Count returns the number of saved products
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Service) containsLocked(id int) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (s *Service) persist() {
	s.store.Set(StorageKey, s.items)
}
