// internal/domain/product/repository.go
package product

import "context"

// CatalogRepository persists the catalog document as a whole. Save
// replaces the entire document; implementations must make the write
// atomic so a crash cannot leave a partial catalog behind.
type CatalogRepository interface {
	Load(ctx context.Context) (*Catalog, error)
	Save(ctx context.Context, catalog *Catalog) error
}
