package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	domaininv "github.com/soham-0510/vyapar-sathi-final/internal/domain/inventory"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

// InventoryUseCase CRUD over the user's inventory. Responses carry the computed
// stock status so the client never re-implements the classification.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Add creates an item for the user. Missing prices default to zero.
func (uc *InventoryUseCase) Add(userID string, in dto.AddInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.ItemName == "" || in.Quantity < 0 || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		UserID:       userID,
		ItemName:     in.ItemName,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		CostPrice:    valueOrZero(in.CostPrice),
		SellingPrice: valueOrZero(in.SellingPrice),
		LastUpdated:  time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// List returns the user's items ordered by last_updated descending.
func (uc *InventoryUseCase) List(userID string) (*dto.InventoryListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventoryItemResponse(it))
	}
	return &dto.InventoryListResponse{Items: items}, nil
}

// Update patches the given fields and refreshes last_updated.
func (uc *InventoryUseCase) Update(userID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.ItemName != nil {
		item.ItemName = *in.ItemName
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.CostPrice != nil {
		item.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		item.SellingPrice = *in.SellingPrice
	}
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Delete removes the item.
func (uc *InventoryUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(userID, id)
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func toInventoryItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:           it.ID,
		ItemName:     it.ItemName,
		Quantity:     it.Quantity,
		ReorderLevel: it.ReorderLevel,
		CostPrice:    it.CostPrice,
		SellingPrice: it.SellingPrice,
		LastUpdated:  it.LastUpdated,
		StockStatus:  domaininv.StockStatus(it.Quantity, it.ReorderLevel),
	}
}
