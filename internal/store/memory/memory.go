// internal/store/memory/memory.go
package memory

import (
	"context"
	"sync"

	"github.com/velvet-vogue/storefront-backend/internal/domain/cart"
	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
	"github.com/velvet-vogue/storefront-backend/internal/domain/product"
)

// CartStore keeps session carts in process memory. Used in tests and
// as the development fallback when Redis is not configured.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]cart.Cart
}

// NewCartStore creates an empty in-memory cart store
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]cart.Cart)}
}

// Load returns the cart for a session, or nil when none exists
func (s *CartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return nil, nil
	}

	copied := c
	copied.Items = append([]cart.Item(nil), c.Items...)
	return &copied, nil
}

// Save stores the full cart for its session
func (s *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *c
	copied.Items = append([]cart.Item(nil), c.Items...)
	s.carts[c.SessionID] = copied
	return nil
}

// Delete removes the cart for a session
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// OrderStore keeps the order collection in process memory
type OrderStore struct {
	mu     sync.RWMutex
	orders []order.Order
}

// NewOrderStore creates an empty in-memory order store
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Load returns a copy of the order collection
func (s *OrderStore) Load(ctx context.Context) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]order.Order(nil), s.orders...), nil
}

// Save replaces the order collection
func (s *OrderStore) Save(ctx context.Context, orders []order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]order.Order(nil), orders...)
	return nil
}

// CatalogStore keeps the catalog document in process memory
type CatalogStore struct {
	mu      sync.RWMutex
	catalog product.Catalog
}

// NewCatalogStore creates a catalog store seeded with the given catalog
func NewCatalogStore(catalog product.Catalog) *CatalogStore {
	return &CatalogStore{catalog: catalog}
}

// Load returns a copy of the catalog document
func (s *CatalogStore) Load(ctx context.Context) (*product.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := product.Catalog{
		Products:   append([]product.Product(nil), s.catalog.Products...),
		Categories: append([]product.Category(nil), s.catalog.Categories...),
	}
	return &copied, nil
}

// Save replaces the catalog document
func (s *CatalogStore) Save(ctx context.Context, catalog *product.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = product.Catalog{
		Products:   append([]product.Product(nil), catalog.Products...),
		Categories: append([]product.Category(nil), catalog.Categories...),
	}
	return nil
}
