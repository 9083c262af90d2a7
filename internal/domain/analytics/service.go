// internal/domain/analytics/service.go
package analytics

import (
	"context"
	"fmt"

	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
	"github.com/velvet-vogue/storefront-backend/internal/domain/product"
)

// Service derives admin dashboard data from the catalog and the order
// collection
type Service struct {
	products *product.Service
	orders   *order.Service
}

// NewService creates a new analytics service
func NewService(products *product.Service, orders *order.Service) *Service {
	return &Service{products: products, orders: orders}
}

// DashboardStats are the headline numbers on the admin dashboard
type DashboardStats struct {
	TotalProducts int                  `json:"total_products"`
	TotalOrders   int                  `json:"total_orders"`
	TotalRevenue  int64                `json:"total_revenue"`
	PendingOrders int                  `json:"pending_orders"`
	CountByStatus map[order.Status]int `json:"count_by_status"`
}

// Dashboard is the full admin dashboard payload
type Dashboard struct {
	Products []product.Product `json:"products"`
	Orders   []order.Order     `json:"orders"`
	Stats    DashboardStats    `json:"stats"`
}

// GetDashboard loads the catalog and orders and aggregates the stats
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	catalog, err := s.products.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	orders, err := s.orders.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	aggregate := order.Aggregate(orders)

	return &Dashboard{
		Products: catalog.Products,
		Orders:   orders,
		Stats: DashboardStats{
			TotalProducts: len(catalog.Products),
			TotalOrders:   aggregate.TotalOrders,
			TotalRevenue:  aggregate.TotalRevenue,
			PendingOrders: aggregate.CountByStatus[order.StatusPending],
			CountByStatus: aggregate.CountByStatus,
		},
	}, nil
}
