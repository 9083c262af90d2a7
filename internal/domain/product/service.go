// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a product id is not in the catalog
var ErrNotFound = errors.New("product not found")

// Service handles catalog business logic
type Service struct {
	repo CatalogRepository
	now  func() time.Time
}

// NewService creates a new product service
func NewService(repo CatalogRepository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// CreateProductRequest represents admin product creation data
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" binding:"required,min=1"`
	Category    []string `json:"category" binding:"required,min=1"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Featured    bool     `json:"featured"`
}

// List retrieves the catalog, optionally filtered by category
func (s *Service) List(ctx context.Context, category string) (*Catalog, error) {
	catalog, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if category == "" {
		return catalog, nil
	}

	filtered := make([]Product, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		if p.InCategory(category) {
			filtered = append(filtered, p)
		}
	}

	return &Catalog{Products: filtered, Categories: catalog.Categories}, nil
}

// Get retrieves a single product by id
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	catalog, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	for i := range catalog.Products {
		if catalog.Products[i].ID == id {
			return &catalog.Products[i], nil
		}
	}

	return nil, ErrNotFound
}

// Create appends a new product to the catalog with a server-generated
// id and persists the full document
func (s *Service) Create(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	catalog, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	newProduct := Product{
		ID:          s.nextID(catalog),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		Featured:    req.Featured,
		CreatedAt:   s.now(),
	}

	catalog.Products = append(catalog.Products, newProduct)

	if err := s.repo.Save(ctx, catalog); err != nil {
		return nil, fmt.Errorf("failed to save catalog: %w", err)
	}

	return &newProduct, nil
}

// nextID generates the next "VV"-prefixed id. The sequence follows the
// catalog length, skipping forward past any id already taken.
func (s *Service) nextID(catalog *Catalog) string {
	taken := make(map[string]bool, len(catalog.Products))
	for _, p := range catalog.Products {
		taken[p.ID] = true
	}

	seq := len(catalog.Products) + 1
	for {
		id := fmt.Sprintf("VV%03d", seq)
		if !taken[id] {
			return id
		}
		seq++
	}
}
