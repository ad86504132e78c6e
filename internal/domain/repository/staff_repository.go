package repository

import "github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"

// StaffRepository defines the persistence port for StaffMember.
type StaffRepository interface {
	Create(member *entity.StaffMember) error
	GetByID(userID, id string) (*entity.StaffMember, error)
	// ListByUser returns the user's staff ordered by created_at descending.
	ListByUser(userID string) ([]*entity.StaffMember, error)
	Update(member *entity.StaffMember) error
	Delete(userID, id string) error
}
