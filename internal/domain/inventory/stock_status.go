// Package inventory holds pure domain calculations over inventory rows.
package inventory

// Stock status labels, in order of urgency.
const (
	StatusCritical = "Critical"
	StatusLowStock = "Low Stock"
	StatusInStock  = "In Stock"
)

// StockStatus classifies a quantity against its reorder level.
//
// With no reorder level configured (0), only a fully empty shelf is Critical.
// Otherwise: at or below half the level is Critical, at or below the level is Low Stock.
// Total function, no error cases.
func StockStatus(quantity, reorderLevel int) string {
	if reorderLevel <= 0 {
		if quantity == 0 {
			return StatusCritical
		}
		return StatusInStock
	}
	if quantity <= reorderLevel/2 {
		return StatusCritical
	}
	if quantity <= reorderLevel {
		return StatusLowStock
	}
	return StatusInStock
}
