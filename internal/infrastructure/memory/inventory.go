// Package memory holds in-memory implementations of the persistence ports.
// They back the unit tests and the no-database development mode. Guarded by
// mutexes because the dashboard aggregator reads concurrently.
package memory

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo is an in-memory InventoryRepository.
type InventoryRepo struct {
	mu    sync.RWMutex
	items []entity.InventoryItem
}

// NewInventoryRepository creates an empty store.
func NewInventoryRepository() *InventoryRepo {
	return &InventoryRepo{}
}

// Create adds an item.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *item)
	return nil
}

// GetByID returns the item, or nil when absent or owned by someone else.
func (r *InventoryRepo) GetByID(userID, id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.UserID == userID && it.ID == id {
			out := it
			return &out, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's items, most recently touched first.
func (r *InventoryRepo) ListByUser(userID string) ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.InventoryItem
	for _, it := range r.items {
		if it.UserID == userID {
			out := it
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].LastUpdated.After(list[j].LastUpdated) })
	return list, nil
}

// Update replaces the stored item.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.UserID == item.UserID && it.ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return nil
}

// UpdateSellingPrice changes only the price, leaving last_updated untouched.
func (r *InventoryRepo) UpdateSellingPrice(userID, id string, price decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.UserID == userID && it.ID == id {
			r.items[i].SellingPrice = price
			return nil
		}
	}
	return nil
}

// Delete removes the item.
func (r *InventoryRepo) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.UserID == userID && it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
