package repository

import (
	"github.com/shopspring/decimal"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
)

// InventoryRepository defines the persistence port for InventoryItem.
// Every method is scoped by the owning user id; there is no cross-user access.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(userID, id string) (*entity.InventoryItem, error)
	// ListByUser returns the user's items ordered by last_updated descending.
	ListByUser(userID string) ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateSellingPrice changes only the price, leaving last_updated untouched so a
	// markdown does not reset the dead-stock clock.
	UpdateSellingPrice(userID, id string, price decimal.Decimal) error
	Delete(userID, id string) error
}
