package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert types shown on the dashboard.
const (
	AlertDeadStock  = "dead_stock"
	AlertPaymentDue = "payment_due"
)

// Alert is derived from a source row on every dashboard load; it is never stored.
// ID is borrowed from the row that produced it.
type Alert struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // dead_stock, payment_due
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DashboardStats entity counts for the stat cards.
type DashboardStats struct {
	TotalProducts  int `json:"totalProducts"`
	TotalStaff     int `json:"totalStaff"`
	TotalSuppliers int `json:"totalSuppliers"`
}

// DashboardResponse response for GET /api/dashboard.
//
// The payload is a snapshot assembled from independently-timed reads; a concurrent
// write between sub-fetches can make stats and alerts disagree. Degraded lists the
// sources whose read failed and was replaced with an empty result.
type DashboardResponse struct {
	Stats       DashboardStats `json:"stats"`
	HealthScore int            `json:"healthScore"`
	Alerts      []Alert        `json:"alerts"`
	AISummary   []string       `json:"aiSummary"`
	Degraded    []string       `json:"degraded,omitempty"`
}

// DeadStockItemResponse one dead-stock row on the workbench, oldest first.
type DeadStockItemResponse struct {
	ID           string          `json:"id"`
	ItemName     string          `json:"item_name"`
	Quantity     int             `json:"quantity"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// DeadStockListResponse response for GET /api/dead-stock.
type DeadStockListResponse struct {
	Items []DeadStockItemResponse `json:"items"`
}
