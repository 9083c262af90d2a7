// internal/domain/order/lifecycle.go
package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned by Transition for a move the
// transition table does not allow
var ErrInvalidTransition = errors.New("invalid status transition")

// statusCycle is the fixed sequence the admin panel's update button
// steps through, wrapping back to pending after cancelled.
var statusCycle = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// validTransitions is the recommended replacement for the cyclic
// advance: forward-only moves, with cancellation allowed until shipment
// completes and two terminal states.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// Advance moves the order to the next status in the fixed cycle and
// returns the new status. Applied five times it returns the order to
// its original status. It performs no validation; use Transition for
// validated moves.
func Advance(o *Order) Status {
	current := 0
	for i, status := range statusCycle {
		if status == o.Status {
			current = i
			break
		}
	}
	o.Status = statusCycle[(current+1)%len(statusCycle)]
	return o.Status
}

// Transition moves the order to target if the transition table allows
// it. Delivered and cancelled are terminal.
func Transition(o *Order, target Status) error {
	if !target.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}

	for _, allowed := range validTransitions[o.Status] {
		if allowed == target {
			o.Status = target
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
}

// IsTerminal reports whether no validated transition leaves the status
func IsTerminal(s Status) bool {
	return len(validTransitions[s]) == 0
}

// Stats are the dashboard aggregates derived from the order collection
type Stats struct {
	TotalOrders   int            `json:"total_orders"`
	TotalRevenue  int64          `json:"total_revenue"`
	CountByStatus map[Status]int `json:"count_by_status"`
}

// Aggregate derives dashboard stats from a collection of orders in a
// single pass. The result does not depend on the order of the input.
func Aggregate(orders []Order) Stats {
	stats := Stats{
		CountByStatus: map[Status]int{
			StatusPending:    0,
			StatusProcessing: 0,
			StatusShipped:    0,
			StatusDelivered:  0,
			StatusCancelled:  0,
		},
	}

	for _, o := range orders {
		stats.TotalOrders++
		stats.TotalRevenue += o.Pricing.Total
		stats.CountByStatus[o.Status]++
	}

	return stats
}
