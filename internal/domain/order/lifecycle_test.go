// internal/domain/order/lifecycle_test.go
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvet-vogue/storefront-backend/internal/pricing"
)

func TestAdvanceFollowsCycle(t *testing.T) {
	o := &Order{Status: StatusPending}

	assert.Equal(t, StatusProcessing, Advance(o))
	assert.Equal(t, StatusShipped, Advance(o))
	assert.Equal(t, StatusDelivered, Advance(o))
	assert.Equal(t, StatusCancelled, Advance(o))
	assert.Equal(t, StatusPending, Advance(o))
}

func TestAdvanceFiveTimesIsIdentity(t *testing.T) {
	for _, start := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		o := &Order{Status: start}
		for i := 0; i < 5; i++ {
			Advance(o)
		}
		assert.Equal(t, start, o.Status)
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusPending, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, true},
		{StatusShipped, StatusProcessing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusProcessing, false},
	}

	for _, tt := range tests {
		o := &Order{Status: tt.from}
		err := Transition(o, tt.to)

		if tt.allowed {
			require.NoError(t, err, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.to, o.Status)
		} else {
			require.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.from, o.Status, "status must not change on a rejected transition")
		}
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	o := &Order{Status: StatusPending}
	err := Transition(o, Status("dispatched"))

	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPending, o.Status)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusProcessing))
	assert.False(t, IsTerminal(StatusShipped))
	assert.True(t, IsTerminal(StatusDelivered))
	assert.True(t, IsTerminal(StatusCancelled))
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, int64(0), stats.TotalRevenue)
	for _, s := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.Equal(t, 0, stats.CountByStatus[s])
	}
}

func TestAggregateTotals(t *testing.T) {
	orders := []Order{
		{Status: StatusPending, Pricing: pricing.Summary{Total: 6000}},
		{Status: StatusPending, Pricing: pricing.Summary{Total: 1699}},
		{Status: StatusDelivered, Pricing: pricing.Summary{Total: 12000}},
		{Status: StatusCancelled, Pricing: pricing.Summary{Total: 500}},
	}

	stats := Aggregate(orders)

	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, int64(20199), stats.TotalRevenue)
	assert.Equal(t, 2, stats.CountByStatus[StatusPending])
	assert.Equal(t, 1, stats.CountByStatus[StatusDelivered])
	assert.Equal(t, 1, stats.CountByStatus[StatusCancelled])
	assert.Equal(t, 0, stats.CountByStatus[StatusProcessing])
}

func TestAggregateOrderIndependent(t *testing.T) {
	orders := []Order{
		{Status: StatusPending, Pricing: pricing.Summary{Total: 100}},
		{Status: StatusShipped, Pricing: pricing.Summary{Total: 200}},
		{Status: StatusDelivered, Pricing: pricing.Summary{Total: 300}},
	}
	reversed := []Order{orders[2], orders[1], orders[0]}

	assert.Equal(t, Aggregate(orders), Aggregate(reversed))
}
