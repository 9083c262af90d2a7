// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velvet-vogue/storefront-backend/internal/domain/product"
	"github.com/velvet-vogue/storefront-backend/internal/pricing"
)

// ErrItemNotFound is returned when a cart mutation targets a product
// that is not in the cart
var ErrItemNotFound = errors.New("item not found in cart")

// Service handles cart business logic
type Service struct {
	repo     Repository
	products *product.Service
	pricer   *pricing.Engine
	now      func() time.Time
}

// NewService creates a new cart service
func NewService(repo Repository, products *product.Service, pricer *pricing.Engine) *Service {
	return &Service{
		repo:     repo,
		products: products,
		pricer:   pricer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents update cart item request. Quantity 0
// removes the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// Response represents a shopping cart with its pricing summary
type Response struct {
	SessionID     string          `json:"session_id"`
	Items         []Item          `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	Summary       pricing.Summary `json:"summary"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GetCart retrieves the cart for a session with its pricing summary
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Response, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// AddItem adds a product to the cart, merging quantities for a line
// that already exists. The merged quantity is capped at MaxQuantity.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*Response, error) {
	prod, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == req.ProductID {
			quantity, _ := ClampQuantity(c.Items[i].Quantity + req.Quantity)
			c.Items[i].Quantity = quantity
			merged = true
			break
		}
	}

	if !merged {
		quantity, keep := ClampQuantity(req.Quantity)
		if !keep {
			return nil, fmt.Errorf("quantity must be at least %d", MinQuantity)
		}
		c.Items = append(c.Items, Item{
			ProductID: prod.ID,
			Name:      prod.Name,
			UnitPrice: prod.Price,
			Quantity:  quantity,
			Image:     prod.Image,
			AddedAt:   s.now(),
		})
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// UpdateQuantity sets the quantity of a cart line. Quantities above the
// maximum are clamped; a quantity below the minimum removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Response, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		found = true

		clamped, keep := ClampQuantity(quantity)
		if keep {
			c.Items[i].Quantity = clamped
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		break
	}

	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// RemoveItem removes a line from the cart
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*Response, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

// Clear removes all items from the cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Items returns the raw line items for a session, for checkout
func (s *Service) Items(ctx context.Context, sessionID string) ([]Item, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return c.Items, nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart")
	}

	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if c == nil {
		now := s.now()
		c = &Cart{
			SessionID: sessionID,
			Items:     []Item{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return c, nil
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	c.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, c); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *Service) respond(c *Cart) *Response {
	return &Response{
		SessionID:     c.SessionID,
		Items:         c.Items,
		TotalQuantity: c.TotalQuantity(),
		Summary:       s.pricer.Summary(c.LineItems(), pricing.ShippingStandard),
		UpdatedAt:     c.UpdatedAt,
	}
}
