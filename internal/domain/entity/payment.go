package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Payment is money owed to a supplier. SupplierName is denormalized on purpose: the
// original data model stores the display name, not a foreign key, and payments survive
// supplier deletion.
type Payment struct {
	ID           string
	UserID       string
	SupplierName string
	Amount       decimal.Decimal
	DueDate      time.Time // date precision; time-of-day is not meaningful
	Status       string    // pending, paid
	CreatedAt    time.Time
}
