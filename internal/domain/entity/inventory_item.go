package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is one product row owned by a user.
// LastUpdated doubles as the "last sold" proxy: the selling flow refreshes it on every
// sale, so items whose LastUpdated drifts past the dead-stock window are treated as not
// selling. This module does not verify that external flows keep the field fresh.
type InventoryItem struct {
	ID           string
	UserID       string
	ItemName     string
	Quantity     int // non-negative
	ReorderLevel int // 0 means no reorder threshold configured
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	LastUpdated  time.Time
}
