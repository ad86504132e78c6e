package memory

import (
	"sort"
	"sync"

	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo is an in-memory PaymentRepository.
type PaymentRepo struct {
	mu       sync.RWMutex
	payments []entity.Payment
}

// NewPaymentRepository creates an empty store.
func NewPaymentRepository() *PaymentRepo {
	return &PaymentRepo{}
}

// Create adds a payment.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, *payment)
	return nil
}

// GetByID returns the payment, or nil when absent or owned by someone else.
func (r *PaymentRepo) GetByID(userID, id string) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.UserID == userID && p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's payments ordered by due date ascending.
func (r *PaymentRepo) ListByUser(userID string) ([]*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out := p
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DueDate.Before(list[j].DueDate) })
	return list, nil
}

// Update replaces the stored payment.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.payments {
		if p.UserID == payment.UserID && p.ID == payment.ID {
			r.payments[i] = *payment
			return nil
		}
	}
	return nil
}

// Delete removes the payment.
func (r *PaymentRepo) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.payments {
		if p.UserID == userID && p.ID == id {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)
			return nil
		}
	}
	return nil
}
