// internal/domain/product/entity.go
package product

import "time"

// Product represents a catalog product. IDs are server-generated in the
// form "VV" plus a zero-padded sequence number. Price is in pence.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Category    []string  `json:"category"`
	Image       string    `json:"image,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Sizes       []string  `json:"sizes,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	Featured    bool      `json:"featured,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// InCategory reports whether the product belongs to the given category
func (p *Product) InCategory(category string) bool {
	for _, c := range p.Category {
		if c == category {
			return true
		}
	}
	return false
}

// Category is a browsable catalog grouping
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the persisted catalog document
type Catalog struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}
