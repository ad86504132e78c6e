package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

// PaymentUseCase supplier payment tracking: add, list, mark paid, reschedule.
// Single-row writes only; the backing store's per-row atomicity is all that is relied on.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// Add records a payment due to a supplier. Status defaults to pending.
func (uc *PaymentUseCase) Add(userID string, in dto.AddPaymentRequest) (*dto.PaymentResponse, error) {
	if in.SupplierName == "" || in.DueDate == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	due, err := time.Parse(dto.DueDateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.PaymentPending
	}
	if status != entity.PaymentPending && status != entity.PaymentPaid {
		return nil, domain.ErrInvalidInput
	}
	payment := &entity.Payment{
		ID:           uuid.New().String(),
		UserID:       userID,
		SupplierName: in.SupplierName,
		Amount:       in.Amount,
		DueDate:      due,
		Status:       status,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// List returns the user's payments ordered by due date ascending.
func (uc *PaymentUseCase) List(userID string) (*dto.PaymentListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{Items: items}, nil
}

// MarkPaid flips the payment to paid. Idempotent: marking a paid payment again is a no-op.
func (uc *PaymentUseCase) MarkPaid(userID, id string) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	if payment.Status != entity.PaymentPaid {
		payment.Status = entity.PaymentPaid
		if err := uc.repo.Update(payment); err != nil {
			return nil, err
		}
	}
	return toPaymentResponse(payment), nil
}

// Reschedule moves the due date and resets the payment to pending, matching the
// original flow where rescheduling reopens a payment.
func (uc *PaymentUseCase) Reschedule(userID, id string, in dto.ReschedulePaymentRequest) (*dto.PaymentResponse, error) {
	due, err := time.Parse(dto.DueDateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	payment, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	payment.DueDate = due
	payment.Status = entity.PaymentPending
	if err := uc.repo.Update(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Delete removes the payment.
func (uc *PaymentUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(userID, id)
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:           p.ID,
		SupplierName: p.SupplierName,
		Amount:       p.Amount,
		DueDate:      p.DueDate.Format(dto.DueDateLayout),
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}
}
