package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implements the InventoryRepository port over PostgreSQL.
// Every query filters on user_id; there is no cross-user path through this type.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the persistence adapter. Pass a pool or tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, user_id, item_name, quantity, reorder_level, cost_price, selling_price, last_updated`

// Create persists a new inventory item.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.ItemName, item.Quantity, item.ReorderLevel,
		item.CostPrice, item.SellingPrice, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID fetches one item scoped by owner.
func (r *InventoryRepo) GetByID(userID, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE user_id = $1 AND id = $2`
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&it.ID, &it.UserID, &it.ItemName, &it.Quantity, &it.ReorderLevel,
		&it.CostPrice, &it.SellingPrice, &it.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// ListByUser lists the user's items, most recently touched first.
func (r *InventoryRepo) ListByUser(userID string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory
		WHERE user_id = $1 ORDER BY last_updated DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	return scanInventoryRows(rows)
}

// Update rewrites all mutable fields of the item.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory
		SET item_name = $3, quantity = $4, reorder_level = $5, cost_price = $6, selling_price = $7, last_updated = $8
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		item.UserID, item.ID, item.ItemName, item.Quantity, item.ReorderLevel,
		item.CostPrice, item.SellingPrice, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// UpdateSellingPrice changes only the price. last_updated is deliberately left
// alone so a markdown does not reset the dead-stock clock.
func (r *InventoryRepo) UpdateSellingPrice(userID, id string, price decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET selling_price = $3 WHERE user_id = $1 AND id = $2`,
		userID, id, price,
	)
	if err != nil {
		return fmt.Errorf("update selling price: %w", err)
	}
	return nil
}

// Delete removes the item scoped by owner.
func (r *InventoryRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func scanInventoryRows(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ItemName, &it.Quantity, &it.ReorderLevel,
			&it.CostPrice, &it.SellingPrice, &it.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
