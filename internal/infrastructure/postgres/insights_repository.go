package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.InsightsRepository = (*InsightsRepo)(nil)

// InsightsRepo implements the read-only dashboard queries over PostgreSQL.
// Counts use COUNT(*) so an empty table yields zero rather than a missing row.
type InsightsRepo struct {
	q Querier
}

// NewInsightsRepository builds the adapter. Pass a pool or tx (Querier).
func NewInsightsRepository(q Querier) *InsightsRepo {
	return &InsightsRepo{q: q}
}

// CountInventory counts the user's inventory rows.
func (r *InsightsRepo) CountInventory(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM inventory WHERE user_id = $1`, userID)
}

// CountStaff counts the user's staff rows.
func (r *InsightsRepo) CountStaff(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM staff WHERE user_id = $1`, userID)
}

// CountSuppliers counts the user's supplier rows.
func (r *InsightsRepo) CountSuppliers(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM suppliers WHERE user_id = $1`, userID)
}

// CountOutOfStock counts the user's inventory rows with quantity zero.
func (r *InsightsRepo) CountOutOfStock(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM inventory WHERE user_id = $1 AND quantity = 0`, userID)
}

// ListStaleInventory returns items whose last_updated is strictly before the cutoff,
// oldest first.
func (r *InsightsRepo) ListStaleInventory(ctx context.Context, userID string, before time.Time) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory
		WHERE user_id = $1 AND last_updated < $2
		ORDER BY last_updated ASC`
	rows, err := r.q.Query(ctx, query, userID, before)
	if err != nil {
		return nil, fmt.Errorf("list stale inventory: %w", err)
	}
	defer rows.Close()
	return scanInventoryRows(rows)
}

// ListPendingPaymentsDue returns pending payments due in [from, to] inclusive,
// ordered by due date ascending. Paid payments are excluded regardless of date.
func (r *InsightsRepo) ListPendingPaymentsDue(ctx context.Context, userID string, from, to time.Time) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE user_id = $1 AND status = $2 AND due_date >= $3 AND due_date <= $4
		ORDER BY due_date ASC`
	rows, err := r.q.Query(ctx, query, userID, entity.PaymentPending, from, to)
	if err != nil {
		return nil, fmt.Errorf("list pending payments: %w", err)
	}
	defer rows.Close()
	return scanPaymentRows(rows)
}

func (r *InsightsRepo) count(ctx context.Context, query, userID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return n, nil
}
