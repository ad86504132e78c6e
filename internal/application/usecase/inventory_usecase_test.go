package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/usecase"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/memory"
)

const inventoryTestUser = "00000000-0000-0000-0000-000000000001"

func newInventoryUC() *usecase.InventoryUseCase {
	return usecase.NewInventoryUseCase(memory.NewInventoryRepository())
}

func intPtr(n int) *int { return &n }

func TestInventoryAdd_ComputesStockStatus(t *testing.T) {
	uc := newInventoryUC()

	out, err := uc.Add(inventoryTestUser, dto.AddInventoryItemRequest{
		ItemName:     "Basmati Rice 5kg",
		Quantity:     4,
		ReorderLevel: 20,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Critical", out.StockStatus, "quantity at or below half the reorder level")
	assert.True(t, out.CostPrice.IsZero(), "missing prices default to zero")
}

func TestInventoryAdd_RequiresName(t *testing.T) {
	uc := newInventoryUC()
	_, err := uc.Add(inventoryTestUser, dto.AddInventoryItemRequest{ItemName: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryUpdate_PatchesOnlyGivenFields(t *testing.T) {
	uc := newInventoryUC()
	created, err := uc.Add(inventoryTestUser, dto.AddInventoryItemRequest{
		ItemName:     "Sunflower Oil 1L",
		Quantity:     30,
		ReorderLevel: 10,
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(140)
	out, err := uc.Update(inventoryTestUser, created.ID, dto.UpdateInventoryItemRequest{
		Quantity:     intPtr(8),
		SellingPrice: &price,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Sunflower Oil 1L", out.ItemName, "untouched fields survive the patch")
	assert.Equal(t, 8, out.Quantity)
	assert.Equal(t, "Low Stock", out.StockStatus)
	assert.True(t, price.Equal(out.SellingPrice))
	assert.False(t, out.LastUpdated.Before(created.LastUpdated), "update refreshes last_updated")
}

func TestInventoryUpdate_UnknownIDReturnsNil(t *testing.T) {
	uc := newInventoryUC()
	out, err := uc.Update(inventoryTestUser, "missing", dto.UpdateInventoryItemRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestInventoryUpdate_RejectsNegativeQuantity(t *testing.T) {
	uc := newInventoryUC()
	created, err := uc.Add(inventoryTestUser, dto.AddInventoryItemRequest{ItemName: "Tea 250g", Quantity: 5})
	require.NoError(t, err)

	_, err = uc.Update(inventoryTestUser, created.ID, dto.UpdateInventoryItemRequest{Quantity: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryList_ScopedToUser(t *testing.T) {
	repo := memory.NewInventoryRepository()
	uc := usecase.NewInventoryUseCase(repo)

	_, err := uc.Add("user-a", dto.AddInventoryItemRequest{ItemName: "A's item", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Add("user-b", dto.AddInventoryItemRequest{ItemName: "B's item", Quantity: 1})
	require.NoError(t, err)

	out, err := uc.List("user-a")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "A's item", out.Items[0].ItemName)
}
