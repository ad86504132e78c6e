package repository

import (
	"context"
	"time"

	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
)

// InsightsRepository defines the read-only queries behind the dashboard.
// Implementations never modify data. Unlike the CRUD ports these take a context:
// the aggregator fans the calls out in goroutines and shares the request context.
type InsightsRepository interface {
	// CountInventory returns the number of inventory rows for the user.
	CountInventory(ctx context.Context, userID string) (int, error)

	// CountStaff returns the number of staff rows for the user.
	CountStaff(ctx context.Context, userID string) (int, error)

	// CountSuppliers returns the number of supplier rows for the user.
	CountSuppliers(ctx context.Context, userID string) (int, error)

	// CountOutOfStock returns the number of inventory rows with quantity zero.
	CountOutOfStock(ctx context.Context, userID string) (int, error)

	// ListStaleInventory returns items whose last_updated is strictly before the
	// cutoff, ordered oldest first.
	ListStaleInventory(ctx context.Context, userID string, before time.Time) ([]*entity.InventoryItem, error)

	// ListPendingPaymentsDue returns pending payments with due_date in [from, to]
	// inclusive, ordered by due_date ascending. Paid payments never appear.
	ListPendingPaymentsDue(ctx context.Context, userID string, from, to time.Time) ([]*entity.Payment, error)
}
