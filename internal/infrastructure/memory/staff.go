package memory

import (
	"sort"
	"sync"

	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo is an in-memory StaffRepository.
type StaffRepo struct {
	mu      sync.RWMutex
	members []entity.StaffMember
}

// NewStaffRepository creates an empty store.
func NewStaffRepository() *StaffRepo {
	return &StaffRepo{}
}

// Create adds a staff member.
func (r *StaffRepo) Create(member *entity.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, *member)
	return nil
}

// GetByID returns the member, or nil when absent or owned by someone else.
func (r *StaffRepo) GetByID(userID, id string) (*entity.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.UserID == userID && m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's staff, newest first.
func (r *StaffRepo) ListByUser(userID string) ([]*entity.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.StaffMember
	for _, m := range r.members {
		if m.UserID == userID {
			out := m
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// Update replaces the stored member.
func (r *StaffRepo) Update(member *entity.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.members {
		if m.UserID == member.UserID && m.ID == member.ID {
			r.members[i] = *member
			return nil
		}
	}
	return nil
}

// Delete removes the staff member.
func (r *StaffRepo) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.members {
		if m.UserID == userID && m.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return nil
}
