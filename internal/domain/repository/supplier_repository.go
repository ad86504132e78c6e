package repository

import "github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"

// SupplierRepository defines the persistence port for Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(userID, id string) (*entity.Supplier, error)
	// ListByUser returns the user's suppliers ordered by created_at descending.
	ListByUser(userID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(userID, id string) error
}
