package repository

import "github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"

// PaymentRepository defines the persistence port for Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(userID, id string) (*entity.Payment, error)
	// ListByUser returns the user's payments ordered by due_date ascending.
	ListByUser(userID string) ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(userID, id string) error
}
