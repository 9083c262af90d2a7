// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/velvet-vogue/storefront-backend/internal/pricing"
)

// Quantity bounds for a single cart line. A line pushed below MinQuantity
// is removed from the cart, never stored at zero.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Item represents a line in a session cart. UnitPrice is the price in
// pence captured at the time of adding.
type Item struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is the ordered line-item sequence for one browsing session
type Cart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineItems converts the cart to the pricing engine's input
func (c *Cart) LineItems() []pricing.LineItem {
	items := make([]pricing.LineItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = pricing.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return items
}

// TotalQuantity is the sum of all line quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// ClampQuantity forces a requested quantity into the allowed range.
// The bool reports whether the line should survive at all.
func ClampQuantity(quantity int) (int, bool) {
	if quantity < MinQuantity {
		return 0, false
	}
	if quantity > MaxQuantity {
		return MaxQuantity, true
	}
	return quantity, true
}
