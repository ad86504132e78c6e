package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implements the SupplierRepository port over PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository builds the persistence adapter. Pass a pool or tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persists a new supplier.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, user_id, name, category, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.UserID, supplier.Name, supplier.Category, supplier.Phone, supplier.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID fetches one supplier scoped by owner.
func (r *SupplierRepo) GetByID(userID, id string) (*entity.Supplier, error) {
	query := `SELECT id, user_id, name, category, COALESCE(phone, ''), created_at
		FROM suppliers WHERE user_id = $1 AND id = $2`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&s.ID, &s.UserID, &s.Name, &s.Category, &s.Phone, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByUser lists the user's suppliers, newest first.
func (r *SupplierRepo) ListByUser(userID string) ([]*entity.Supplier, error) {
	query := `SELECT id, user_id, name, category, COALESCE(phone, ''), created_at
		FROM suppliers WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Phone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update rewrites the supplier's mutable fields.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $3, category = $4, phone = $5
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		supplier.UserID, supplier.ID, supplier.Name, supplier.Category, supplier.Phone,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete removes the supplier scoped by owner.
func (r *SupplierRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM suppliers WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
