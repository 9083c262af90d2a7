// internal/domain/order/repository.go
package order

import "context"

// Repository persists the order collection, newest first. Orders are
// appended at checkout and re-saved on status changes; they are never
// deleted in normal operation.
type Repository interface {
	Load(ctx context.Context) ([]Order, error)
	Save(ctx context.Context, orders []Order) error
}
