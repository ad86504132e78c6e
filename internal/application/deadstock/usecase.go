// Package deadstock implements the dead-stock workbench: listing items that have
// stopped selling and acting on them (markdown, bundle pricing, disposal, PDF report).
package deadstock

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/insights"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

// Markdown factors applied to the selling price. Same numbers the original used:
// a straight discount takes 20% off, bundle pricing 15%.
var (
	discountFactor = decimal.NewFromFloat(0.80)
	bundleFactor   = decimal.NewFromFloat(0.85)
)

// ReportGenerator renders the dead-stock list as a downloadable document.
type ReportGenerator interface {
	GenerateDeadStockReport(ctx context.Context, businessName string, generatedAt time.Time, items []*entity.InventoryItem) ([]byte, error)
}

// UseCase dead-stock workbench operations.
type UseCase struct {
	insightsRepo  repository.InsightsRepository
	inventoryRepo repository.InventoryRepository
	reports       ReportGenerator
}

// NewUseCase builds the use case. reports may be nil when PDF export is not wired.
func NewUseCase(
	insightsRepo repository.InsightsRepository,
	inventoryRepo repository.InventoryRepository,
	reports ReportGenerator,
) *UseCase {
	return &UseCase{insightsRepo: insightsRepo, inventoryRepo: inventoryRepo, reports: reports}
}

// List returns the user's dead stock, oldest first.
func (uc *UseCase) List(ctx context.Context, userID string) (*dto.DeadStockListResponse, error) {
	cutoff := time.Now().AddDate(0, 0, -insights.DeadStockWindowDays)
	list, err := uc.insightsRepo.ListStaleInventory(ctx, userID, cutoff)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeadStockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toDeadStockResponse(it))
	}
	return &dto.DeadStockListResponse{Items: items}, nil
}

// ApplyDiscount takes 20% off the selling price. The price write does not touch
// last_updated, so the item stays on the workbench until it actually sells.
func (uc *UseCase) ApplyDiscount(userID, id string) (*dto.DeadStockItemResponse, error) {
	return uc.markDown(userID, id, discountFactor)
}

// Bundle reprices the item for bundling, 15% off.
func (uc *UseCase) Bundle(userID, id string) (*dto.DeadStockItemResponse, error) {
	return uc.markDown(userID, id, bundleFactor)
}

// Dispose deletes the item.
func (uc *UseCase) Dispose(userID, id string) error {
	return uc.inventoryRepo.Delete(userID, id)
}

// Report renders the current dead-stock list as a PDF.
func (uc *UseCase) Report(ctx context.Context, userID, businessName string) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("dead stock: report generator not configured")
	}
	cutoff := time.Now().AddDate(0, 0, -insights.DeadStockWindowDays)
	list, err := uc.insightsRepo.ListStaleInventory(ctx, userID, cutoff)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateDeadStockReport(ctx, businessName, time.Now(), list)
}

func (uc *UseCase) markDown(userID, id string, factor decimal.Decimal) (*dto.DeadStockItemResponse, error) {
	item, err := uc.inventoryRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	newPrice := item.SellingPrice.Mul(factor).Round(2)
	if newPrice.IsNegative() {
		newPrice = decimal.Zero
	}
	if err := uc.inventoryRepo.UpdateSellingPrice(userID, id, newPrice); err != nil {
		return nil, err
	}
	item.SellingPrice = newPrice
	return toDeadStockResponse(item), nil
}

func toDeadStockResponse(it *entity.InventoryItem) *dto.DeadStockItemResponse {
	if it == nil {
		return nil
	}
	return &dto.DeadStockItemResponse{
		ID:           it.ID,
		ItemName:     it.ItemName,
		Quantity:     it.Quantity,
		CostPrice:    it.CostPrice,
		SellingPrice: it.SellingPrice,
		LastUpdated:  it.LastUpdated,
	}
}
