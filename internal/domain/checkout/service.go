// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/velvet-vogue/storefront-backend/internal/domain/cart"
	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
	"github.com/velvet-vogue/storefront-backend/internal/pkg/payment"
	"github.com/velvet-vogue/storefront-backend/internal/pricing"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError reports the checkout fields that are missing or
// malformed
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid checkout fields: %s", strings.Join(e.Fields, ", "))
}

// Service handles checkout business logic: validation, pricing,
// simulated payment and order creation
type Service struct {
	carts     *cart.Service
	orders    *order.Service
	pricer    *pricing.Engine
	processor payment.Processor
	logger    *logrus.Logger
	now       func() time.Time
	newID     func() string
}

// NewService creates a new checkout service
func NewService(carts *cart.Service, orders *order.Service, pricer *pricing.Engine, processor payment.Processor, logger *logrus.Logger) *Service {
	now := func() time.Time { return time.Now().UTC() }
	return &Service{
		carts:     carts,
		orders:    orders,
		pricer:    pricer,
		processor: processor,
		logger:    logger,
		now:       now,
		// Order ids follow the storefront's historical format: "VV-"
		// plus the tail of the millisecond timestamp.
		newID: func() string {
			millis := strconv.FormatInt(now().UnixMilli(), 10)
			return "VV-" + millis[5:]
		},
	}
}

// Request represents a checkout submission
type Request struct {
	Customer       order.Customer `json:"customer"`
	ShippingMethod string         `json:"shipping_method"`
	PaymentMethod  string         `json:"payment_method"`
	Notes          string         `json:"notes"`
}

// Result is returned once payment is captured and the order persisted
type Result struct {
	OrderID  string           `json:"order_id"`
	Message  string           `json:"message"`
	Customer order.Customer   `json:"customer"`
	Pricing  pricing.Summary  `json:"pricing"`
	Receipt  *payment.Receipt `json:"receipt,omitempty"`
}

// Checkout prices the session cart, captures payment through the
// gateway and snapshots the cart into a new order with status
// processing. The cart is cleared on success.
func (s *Service) Checkout(ctx context.Context, sessionID string, req *Request) (*Result, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	method, err := pricing.ParseShippingMethod(req.ShippingMethod)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"shipping_method"}}
	}

	items, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lineItems := make([]pricing.LineItem, len(items))
	for i, item := range items {
		lineItems[i] = pricing.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	summary, err := s.pricer.CheckoutSummary(lineItems, method)
	if err != nil {
		return nil, err
	}

	receipt, err := s.processor.Process(ctx, summary.Total, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	o := order.Order{
		ID:             s.newID(),
		CreatedAt:      s.now(),
		Status:         order.StatusProcessing,
		Items:          snapshotItems(items),
		Pricing:        summary,
		Customer:       req.Customer,
		ShippingMethod: method,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
	}

	if err := s.orders.Create(ctx, &o); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order is already placed; a stale cart is recoverable.
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("failed to clear cart after checkout")
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":       o.ID,
		"total":          summary.Total,
		"transaction_id": receipt.TransactionID,
	}).Info("order placed")

	return &Result{
		OrderID:  o.ID,
		Message:  "Payment successful! Order has been placed.",
		Customer: o.Customer,
		Pricing:  summary,
		Receipt:  receipt,
	}, nil
}

func (s *Service) validate(req *Request) error {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"first_name", req.Customer.FirstName},
		{"last_name", req.Customer.LastName},
		{"email", req.Customer.Email},
		{"phone", req.Customer.Phone},
		{"address", req.Customer.Address},
		{"city", req.Customer.City},
		{"postcode", req.Customer.Postcode},
		{"country", req.Customer.Country},
		{"payment_method", req.PaymentMethod},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if req.Customer.Email != "" && !emailPattern.MatchString(req.Customer.Email) {
		missing = append(missing, "email")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func snapshotItems(items []cart.Item) []order.Item {
	snapshot := make([]order.Item, len(items))
	for i, item := range items {
		snapshot[i] = order.Item{
			ProductID:  item.ProductID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: item.UnitPrice * int64(item.Quantity),
		}
	}
	return snapshot
}
