package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soham-0510/vyapar-sathi-final/internal/domain/inventory"
)

func TestStockStatus_NoReorderLevel(t *testing.T) {
	// With reorder_level 0 only an empty shelf is Critical.
	assert.Equal(t, inventory.StatusCritical, inventory.StockStatus(0, 0))
	assert.Equal(t, inventory.StatusInStock, inventory.StockStatus(1, 0))
	assert.Equal(t, inventory.StatusInStock, inventory.StockStatus(100, 0))
}

func TestStockStatus_AgainstReorderLevel(t *testing.T) {
	cases := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         string
	}{
		{"well below half", 5, 20, inventory.StatusCritical},
		{"exactly half", 10, 20, inventory.StatusCritical},
		{"just above half", 11, 20, inventory.StatusLowStock},
		{"between half and level", 15, 20, inventory.StatusLowStock},
		{"exactly at level", 20, 20, inventory.StatusLowStock},
		{"above level", 25, 20, inventory.StatusInStock},
		{"zero quantity", 0, 20, inventory.StatusCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.StockStatus(tc.quantity, tc.reorderLevel))
		})
	}
}

func TestStockStatus_OddReorderLevelUsesIntegerHalf(t *testing.T) {
	// reorder_level 5: half truncates to 2, so 3 is already Low Stock.
	assert.Equal(t, inventory.StatusCritical, inventory.StockStatus(2, 5))
	assert.Equal(t, inventory.StatusLowStock, inventory.StockStatus(3, 5))
}
