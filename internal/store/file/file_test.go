// internal/store/file/file_test.go
package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
	"github.com/velvet-vogue/storefront-backend/internal/domain/product"
)

func TestCatalogStoreMissingFile(t *testing.T) {
	store := NewCatalogStore(filepath.Join(t.TempDir(), "products.json"))

	catalog, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog.Products)
	assert.Empty(t, catalog.Categories)
}

func TestCatalogStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "products.json")
	store := NewCatalogStore(path)
	ctx := context.Background()

	want := &product.Catalog{
		Products: []product.Product{
			{ID: "VV001", Name: "Velvet Blazer", Price: 8999, Category: []string{"women"}},
		},
		Categories: []product.Category{{ID: "women", Name: "Women"}},
	}

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogStoreSaveReplacesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	store := NewCatalogStore(path)
	ctx := context.Background()

	first := &product.Catalog{Products: []product.Product{{ID: "VV001", Name: "A", Price: 100}}}
	require.NoError(t, store.Save(ctx, first))

	second := &product.Catalog{Products: []product.Product{{ID: "VV002", Name: "B", Price: 200}}}
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "VV002", got.Products[0].ID)

	// No temp files left behind by the atomic write
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOrderStoreMissingFile(t *testing.T) {
	store := NewOrderStore(filepath.Join(t.TempDir(), "orders.json"))

	orders, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderStoreRoundTrip(t *testing.T) {
	store := NewOrderStore(filepath.Join(t.TempDir(), "orders.json"))
	ctx := context.Background()

	want := []order.Order{
		{
			ID:        "VV-4815162342",
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Status:    order.StatusProcessing,
			Items:     []order.Item{{ProductID: "VV001", Name: "Velvet Blazer", UnitPrice: 8999, Quantity: 1, TotalPrice: 8999}},
		},
	}

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
