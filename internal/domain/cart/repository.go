// internal/domain/cart/repository.go
package cart

import "context"

// Repository persists session carts. Every mutation saves the full item
// sequence; there are no partial updates.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}
