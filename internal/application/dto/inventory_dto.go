package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddInventoryItemRequest body for POST /api/inventory.
type AddInventoryItemRequest struct {
	ItemName     string           `json:"item_name"`
	Quantity     int              `json:"quantity"`
	ReorderLevel int              `json:"reorder_level"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
}

// UpdateInventoryItemRequest body for PUT /api/inventory/{id}. Nil fields are untouched.
type UpdateInventoryItemRequest struct {
	ItemName     *string          `json:"item_name"`
	Quantity     *int             `json:"quantity"`
	ReorderLevel *int             `json:"reorder_level"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
}

// InventoryItemResponse one inventory row plus its computed stock status.
type InventoryItemResponse struct {
	ID           string          `json:"id"`
	ItemName     string          `json:"item_name"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	LastUpdated  time.Time       `json:"last_updated"`
	StockStatus  string          `json:"stock_status"` // Critical, Low Stock, In Stock
}

// InventoryListResponse response for GET /api/inventory.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
}
