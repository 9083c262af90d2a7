// internal/domain/order/service_test.go
package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvet-vogue/storefront-backend/internal/pricing"
)

// fakeRepo keeps the collection in memory for service tests
type fakeRepo struct {
	orders []Order
}

func (r *fakeRepo) Load(ctx context.Context) ([]Order, error) {
	return append([]Order(nil), r.orders...), nil
}

func (r *fakeRepo) Save(ctx context.Context, orders []Order) error {
	r.orders = append([]Order(nil), orders...)
	return nil
}

func seededService(t *testing.T) (*Service, *fakeRepo) {
	t.Helper()

	repo := &fakeRepo{orders: []Order{
		{ID: "VV-1002", Status: StatusProcessing, CreatedAt: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), Pricing: pricing.Summary{Total: 6000}},
		{ID: "VV-1001", Status: StatusDelivered, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Pricing: pricing.Summary{Total: 1699}},
	}}
	return NewService(repo), repo
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := seededService(t)

	orders, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "VV-1002", orders[0].ID)
}

func TestListFilterByStatus(t *testing.T) {
	svc, _ := seededService(t)

	orders, err := svc.List(context.Background(), StatusDelivered)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "VV-1001", orders[0].ID)
}

func TestGetUnknownOrder(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.Get(context.Background(), "VV-9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePrepends(t *testing.T) {
	svc, repo := seededService(t)

	err := svc.Create(context.Background(), &Order{ID: "VV-1003", Status: StatusProcessing})
	require.NoError(t, err)

	require.Len(t, repo.orders, 3)
	assert.Equal(t, "VV-1003", repo.orders[0].ID)
}

func TestSetStatusPersistsValidMove(t *testing.T) {
	svc, repo := seededService(t)

	o, err := svc.SetStatus(context.Background(), "VV-1002", StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status)
	assert.Equal(t, StatusShipped, repo.orders[0].Status)
}

func TestSetStatusRejectsInvalidMove(t *testing.T) {
	svc, repo := seededService(t)

	_, err := svc.SetStatus(context.Background(), "VV-1001", StatusShipped)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusDelivered, repo.orders[1].Status, "rejected move must not be persisted")
}

func TestAdvanceStatusSteps(t *testing.T) {
	svc, _ := seededService(t)

	o, err := svc.AdvanceStatus(context.Background(), "VV-1002")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status)

	// The cycle wraps delivered -> cancelled -> pending
	o, err = svc.AdvanceStatus(context.Background(), "VV-1001")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status)
}

func TestAdvanceStatusUnknownOrder(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.AdvanceStatus(context.Background(), "VV-9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardStats(t *testing.T) {
	svc, _ := seededService(t)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, int64(7699), stats.TotalRevenue)
	assert.Equal(t, 1, stats.CountByStatus[StatusProcessing])
}
