package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

// SupplierUseCase CRUD over the user's suppliers.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Add creates a supplier for the user.
func (uc *SupplierUseCase) Add(userID string, in dto.AddSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Category:  in.Category,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List returns the user's suppliers, newest first.
func (uc *SupplierUseCase) List(userID string) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items}, nil
}

// Update patches the given fields.
func (uc *SupplierUseCase) Update(userID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Category != nil {
		supplier.Category = *in.Category
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete removes the supplier. Payments keep the denormalized supplier name.
func (uc *SupplierUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(userID, id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}
