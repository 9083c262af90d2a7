// internal/store/postgres/orders.go
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velvet-vogue/storefront-backend/internal/domain/order"
)

// orderRow is the database representation of an order. The full order
// document is kept as JSONB; id, status and created_at are lifted into
// columns for querying.
type orderRow struct {
	ID        string    `gorm:"primaryKey;size:32"`
	Status    string    `gorm:"size:20;index;not null"`
	CreatedAt time.Time `gorm:"index;not null"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for the order row
func (orderRow) TableName() string {
	return "orders"
}

// OrderStore persists orders in PostgreSQL through GORM
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore creates a PostgreSQL order store and runs its migration
func NewOrderStore(conn *Connection) (*OrderStore, error) {
	if err := conn.GetDB().AutoMigrate(&orderRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate orders table: %w", err)
	}
	return &OrderStore{db: conn.GetDB()}, nil
}

// Load returns all orders, newest first
func (s *OrderStore) Load(ctx context.Context) ([]order.Order, error) {
	var rows []orderRow
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	orders := make([]order.Order, 0, len(rows))
	for _, row := range rows {
		var o order.Order
		if err := json.Unmarshal(row.Payload, &o); err != nil {
			return nil, fmt.Errorf("failed to decode order %s: %w", row.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Save replaces the order collection. Rows are upserted by id and rows
// no longer present are removed, all in one transaction.
func (s *OrderStore) Save(ctx context.Context, orders []order.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(orders) == 0 {
			if err := tx.Where("1 = 1").Delete(&orderRow{}).Error; err != nil {
				return fmt.Errorf("failed to clear orders: %w", err)
			}
			return nil
		}

		ids := make([]string, len(orders))
		rows := make([]orderRow, len(orders))
		for i, o := range orders {
			payload, err := json.Marshal(o)
			if err != nil {
				return fmt.Errorf("failed to encode order %s: %w", o.ID, err)
			}
			ids[i] = o.ID
			rows[i] = orderRow{
				ID:        o.ID,
				Status:    string(o.Status),
				CreatedAt: o.CreatedAt,
				Payload:   payload,
			}
		}

		if err := tx.Where("id NOT IN ?", ids).Delete(&orderRow{}).Error; err != nil {
			return fmt.Errorf("failed to prune orders: %w", err)
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "created_at", "payload"}),
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save orders: %w", err)
		}
		return nil
	})
}
