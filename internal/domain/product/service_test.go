// internal/domain/product/service_test.go
package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog keeps the catalog in memory for service tests
type stubCatalog struct {
	catalog Catalog
}

func (s *stubCatalog) Load(ctx context.Context) (*Catalog, error) {
	copied := Catalog{
		Products:   append([]Product(nil), s.catalog.Products...),
		Categories: append([]Category(nil), s.catalog.Categories...),
	}
	return &copied, nil
}

func (s *stubCatalog) Save(ctx context.Context, catalog *Catalog) error {
	s.catalog = *catalog
	return nil
}

func seededService() (*Service, *stubCatalog) {
	repo := &stubCatalog{catalog: Catalog{
		Products: []Product{
			{ID: "VV001", Name: "Velvet Blazer", Price: 8999, Category: []string{"women", "outerwear"}},
			{ID: "VV002", Name: "Merino Roll Neck", Price: 6500, Category: []string{"men", "knitwear"}},
		},
		Categories: []Category{{ID: "women", Name: "Women"}, {ID: "men", Name: "Men"}},
	}}
	return NewService(repo), repo
}

func TestListAll(t *testing.T) {
	svc, _ := seededService()

	catalog, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, catalog.Products, 2)
	assert.Len(t, catalog.Categories, 2)
}

func TestListFiltersByCategory(t *testing.T) {
	svc, _ := seededService()

	catalog, err := svc.List(context.Background(), "men")
	require.NoError(t, err)
	require.Len(t, catalog.Products, 1)
	assert.Equal(t, "VV002", catalog.Products[0].ID)

	// Unknown category filters everything out but keeps the categories
	catalog, err = svc.List(context.Background(), "kids")
	require.NoError(t, err)
	assert.Empty(t, catalog.Products)
	assert.Len(t, catalog.Categories, 2)
}

func TestGetByID(t *testing.T) {
	svc, _ := seededService()

	prod, err := svc.Get(context.Background(), "VV001")
	require.NoError(t, err)
	assert.Equal(t, "Velvet Blazer", prod.Name)

	_, err = svc.Get(context.Background(), "VV999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAssignsSequentialID(t *testing.T) {
	svc, repo := seededService()

	prod, err := svc.Create(context.Background(), &CreateProductRequest{
		Name:     "Leather Tote",
		Price:    9900,
		Category: []string{"accessories"},
	})
	require.NoError(t, err)

	assert.Equal(t, "VV003", prod.ID)
	assert.False(t, prod.CreatedAt.IsZero())
	assert.Len(t, repo.catalog.Products, 3)
}

func TestCreateSkipsTakenIDs(t *testing.T) {
	repo := &stubCatalog{catalog: Catalog{
		Products: []Product{
			{ID: "VV001", Name: "A", Price: 100, Category: []string{"x"}},
			{ID: "VV003", Name: "B", Price: 100, Category: []string{"x"}},
			{ID: "VV004", Name: "C", Price: 100, Category: []string{"x"}},
		},
	}}
	svc := NewService(repo)

	prod, err := svc.Create(context.Background(), &CreateProductRequest{
		Name:     "D",
		Price:    100,
		Category: []string{"x"},
	})
	require.NoError(t, err)

	// len+1 = VV004 is taken, so the sequence walks forward
	assert.Equal(t, "VV005", prod.ID)
}
