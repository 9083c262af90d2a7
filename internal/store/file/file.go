// internal/store/file/file.go
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
	"github.com/velvet-vogue/storefront-backend/internal/domain/product"
)

// CatalogStore persists the catalog as a single JSON document on disk.
// Writes go through a temp file and rename so a crash mid-write cannot
// leave a partial catalog, and a mutex serializes read-modify-write
// cycles within the process.
type CatalogStore struct {
	mu   sync.Mutex
	path string
}

// NewCatalogStore creates a catalog store for the given path
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Load reads and decodes the catalog document
func (s *CatalogStore) Load(ctx context.Context) (*product.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var catalog product.Catalog
	if err := readJSON(s.path, &catalog); err != nil {
		if os.IsNotExist(err) {
			return &product.Catalog{Products: []product.Product{}, Categories: []product.Category{}}, nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return &catalog, nil
}

// Save atomically replaces the catalog document
func (s *CatalogStore) Save(ctx context.Context, catalog *product.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, catalog); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// OrderStore persists the order collection as a JSON document, with the
// same atomic-write discipline as the catalog
type OrderStore struct {
	mu   sync.Mutex
	path string
}

// NewOrderStore creates an order store for the given path
func NewOrderStore(path string) *OrderStore {
	return &OrderStore{path: path}
}

// Load reads and decodes the order collection
func (s *OrderStore) Load(ctx context.Context) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []order.Order
	if err := readJSON(s.path, &orders); err != nil {
		if os.IsNotExist(err) {
			return []order.Order{}, nil
		}
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return orders, nil
}

// Save atomically replaces the order collection
func (s *OrderStore) Save(ctx context.Context, orders []order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, orders); err != nil {
		return fmt.Errorf("failed to write orders: %w", err)
	}
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
