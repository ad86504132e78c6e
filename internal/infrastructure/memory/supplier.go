package memory

import (
	"sort"
	"sync"

	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo is an in-memory SupplierRepository.
type SupplierRepo struct {
	mu        sync.RWMutex
	suppliers []entity.Supplier
}

// NewSupplierRepository creates an empty store.
func NewSupplierRepository() *SupplierRepo {
	return &SupplierRepo{}
}

// Create adds a supplier.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = append(r.suppliers, *supplier)
	return nil
}

// GetByID returns the supplier, or nil when absent or owned by someone else.
func (r *SupplierRepo) GetByID(userID, id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.suppliers {
		if s.UserID == userID && s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's suppliers, newest first.
func (r *SupplierRepo) ListByUser(userID string) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Supplier
	for _, s := range r.suppliers {
		if s.UserID == userID {
			out := s
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// Update replaces the stored supplier.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.suppliers {
		if s.UserID == supplier.UserID && s.ID == supplier.ID {
			r.suppliers[i] = *supplier
			return nil
		}
	}
	return nil
}

// Delete removes the supplier.
func (r *SupplierRepo) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.suppliers {
		if s.UserID == userID && s.ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			return nil
		}
	}
	return nil
}
