package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implements the StaffRepository port over PostgreSQL.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository builds the persistence adapter. Pass a pool or tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// Create persists a new staff member.
func (r *StaffRepo) Create(member *entity.StaffMember) error {
	query := `
		INSERT INTO staff (id, user_id, name, role, phone, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.UserID, member.Name, member.Role, member.Phone, member.Status, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert staff member: %w", err)
	}
	return nil
}

// GetByID fetches one staff member scoped by owner.
func (r *StaffRepo) GetByID(userID, id string) (*entity.StaffMember, error) {
	query := `SELECT id, user_id, name, role, COALESCE(phone, ''), status, created_at
		FROM staff WHERE user_id = $1 AND id = $2`
	var m entity.StaffMember
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Role, &m.Phone, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff member: %w", err)
	}
	return &m, nil
}

// ListByUser lists the user's staff, newest first.
func (r *StaffRepo) ListByUser(userID string) ([]*entity.StaffMember, error) {
	query := `SELECT id, user_id, name, role, COALESCE(phone, ''), status, created_at
		FROM staff WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.StaffMember
	for rows.Next() {
		var m entity.StaffMember
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Role, &m.Phone, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan staff member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update rewrites the member's mutable fields.
func (r *StaffRepo) Update(member *entity.StaffMember) error {
	query := `
		UPDATE staff SET name = $3, role = $4, phone = $5, status = $6
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		member.UserID, member.ID, member.Name, member.Role, member.Phone, member.Status,
	)
	if err != nil {
		return fmt.Errorf("update staff member: %w", err)
	}
	return nil
}

// Delete removes the staff member scoped by owner.
func (r *StaffRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM staff WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete staff member: %w", err)
	}
	return nil
}
