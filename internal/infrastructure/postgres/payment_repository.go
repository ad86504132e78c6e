package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements the PaymentRepository port over PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the persistence adapter. Pass a pool or tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, user_id, supplier_name, amount, due_date, status, created_at`

// Create persists a new payment.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.UserID, payment.SupplierName, payment.Amount,
		payment.DueDate, payment.Status, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches one payment scoped by owner.
func (r *PaymentRepo) GetByID(userID, id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 AND id = $2`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&p.ID, &p.UserID, &p.SupplierName, &p.Amount, &p.DueDate, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByUser lists the user's payments ordered by due date ascending.
func (r *PaymentRepo) ListByUser(userID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE user_id = $1 ORDER BY due_date ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return scanPaymentRows(rows)
}

// Update rewrites the payment's mutable fields (amount, due date, status).
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET supplier_name = $3, amount = $4, due_date = $5, status = $6
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		payment.UserID, payment.ID, payment.SupplierName, payment.Amount, payment.DueDate, payment.Status,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete removes the payment scoped by owner.
func (r *PaymentRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM payments WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func scanPaymentRows(rows pgx.Rows) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.SupplierName, &p.Amount, &p.DueDate, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
