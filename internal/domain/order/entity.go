// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/velvet-vogue/storefront-backend/internal/pricing"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Customer is the contact and delivery record captured at checkout
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

// Item is a line snapshotted from the cart at checkout time.
// UnitPrice and TotalPrice are in pence.
type Item struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	TotalPrice int64  `json:"total_price"`
}

// Order is created once at checkout completion and is immutable except
// for Status, which only changes through the lifecycle functions.
type Order struct {
	ID             string                 `json:"id"`
	CreatedAt      time.Time              `json:"created_at"`
	Status         Status                 `json:"status"`
	Items          []Item                 `json:"items"`
	Pricing        pricing.Summary        `json:"pricing"`
	Customer       Customer               `json:"customer"`
	ShippingMethod pricing.ShippingMethod `json:"shipping_method"`
	PaymentMethod  string                 `json:"payment_method"`
	Notes          string                 `json:"notes,omitempty"`
}
