// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when an order id is unknown
var ErrNotFound = errors.New("order not found")

// Service handles order management for the admin panel
type Service struct {
	repo Repository
}

// NewService creates a new order service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves all orders, optionally filtered by status, newest first
func (s *Service) List(ctx context.Context, status Status) ([]Order, error) {
	orders, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	if status == "" {
		return orders, nil
	}

	filtered := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// Get retrieves a single order by id
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	orders, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create prepends a new order to the collection and persists it
func (s *Service) Create(ctx context.Context, o *Order) error {
	orders, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	orders = append([]Order{*o}, orders...)

	if err := s.repo.Save(ctx, orders); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}
	return nil
}

// SetStatus moves an order to target through the validated transition
// table and persists the collection
func (s *Service) SetStatus(ctx context.Context, id string, target Status) (*Order, error) {
	return s.mutate(ctx, id, func(o *Order) error {
		return Transition(o, target)
	})
}

// AdvanceStatus steps an order through the fixed status cycle, exactly
// as the admin panel's update button always has
func (s *Service) AdvanceStatus(ctx context.Context, id string) (*Order, error) {
	return s.mutate(ctx, id, func(o *Order) error {
		Advance(o)
		return nil
	})
}

// Dashboard derives the aggregate stats from all orders
func (s *Service) Dashboard(ctx context.Context) (Stats, error) {
	orders, err := s.repo.Load(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load orders: %w", err)
	}
	return Aggregate(orders), nil
}

func (s *Service) mutate(ctx context.Context, id string, fn func(*Order) error) (*Order, error) {
	orders, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}

		if err := fn(&orders[i]); err != nil {
			return nil, err
		}

		if err := s.repo.Save(ctx, orders); err != nil {
			return nil, fmt.Errorf("failed to save orders: %w", err)
		}

		updated := orders[i]
		return &updated, nil
	}

	return nil, ErrNotFound
}
