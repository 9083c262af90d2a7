// internal/pricing/pricing.go
package pricing

import (
	"errors"
	"fmt"

	"github.com/velvet-vogue/storefront-backend/internal/config"
)

// ErrEmptyCart is returned when a checkout summary is requested for an
// empty item list. The cart page uses Summary instead, which treats an
// empty cart as a valid all-zero result.
var ErrEmptyCart = errors.New("cart is empty")

// ShippingMethod identifies a fulfilment tier
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingFree     ShippingMethod = "free"
)

// ParseShippingMethod validates a client-supplied shipping method
func ParseShippingMethod(s string) (ShippingMethod, error) {
	switch ShippingMethod(s) {
	case ShippingStandard, ShippingExpress, ShippingFree:
		return ShippingMethod(s), nil
	}
	return "", fmt.Errorf("unknown shipping method %q", s)
}

// LineItem is the product/quantity pairing the engine prices.
// UnitPrice is in pence.
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Summary is the derived pricing breakdown. All amounts are in pence.
// It is recomputed whenever the cart or shipping method changes and is
// never mutated directly.
type Summary struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shipping_cost"`
	TaxAmount    int64 `json:"tax_amount"`
	Total        int64 `json:"total"`
}

// Engine computes pricing summaries. It carries only configuration and
// has no side effects, so results are safe to memoize.
type Engine struct {
	taxRateBasisPoints    int64
	freeShippingThreshold int64
	standardFee           int64
	expressFee            int64
}

// NewEngine creates a pricing engine from configuration
func NewEngine(cfg config.PricingConfig) *Engine {
	return &Engine{
		taxRateBasisPoints:    cfg.TaxRateBasisPoints,
		freeShippingThreshold: cfg.FreeShippingThreshold,
		standardFee:           cfg.StandardShippingFee,
		expressFee:            cfg.ExpressShippingFee,
	}
}

// Summary computes the pricing breakdown for the cart page. An empty
// item list yields the all-zero summary.
func (e *Engine) Summary(items []LineItem, method ShippingMethod) Summary {
	if len(items) == 0 {
		return Summary{}
	}

	subtotal := e.subtotal(items)
	shipping := e.ShippingCost(subtotal, method)
	tax := e.tax(subtotal)

	return Summary{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		TaxAmount:    tax,
		Total:        subtotal + shipping + tax,
	}
}

// CheckoutSummary computes the pricing breakdown for checkout, where an
// empty cart is an error rather than a valid result.
func (e *Engine) CheckoutSummary(items []LineItem, method ShippingMethod) (Summary, error) {
	if len(items) == 0 {
		return Summary{}, ErrEmptyCart
	}
	return e.Summary(items, method), nil
}

// ShippingCost returns the shipping fee for a subtotal and method.
// Standard shipping is waived once the subtotal reaches the free-shipping
// threshold; express always charges its fee.
func (e *Engine) ShippingCost(subtotal int64, method ShippingMethod) int64 {
	switch method {
	case ShippingFree:
		return 0
	case ShippingExpress:
		return e.expressFee
	default:
		if subtotal >= e.freeShippingThreshold {
			return 0
		}
		return e.standardFee
	}
}

// QualifiesForFreeShipping reports whether a subtotal clears the
// threshold that waives the standard fee.
func (e *Engine) QualifiesForFreeShipping(subtotal int64) bool {
	return subtotal >= e.freeShippingThreshold
}

func (e *Engine) subtotal(items []LineItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	return subtotal
}

func (e *Engine) tax(subtotal int64) int64 {
	return subtotal * e.taxRateBasisPoints / 10000
}
