package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Due dates travel as plain dates, not timestamps: the original data model stores
// "2006-01-02" and time-of-day carries no meaning for a payment.
const DueDateLayout = "2006-01-02"

// AddPaymentRequest body for POST /api/payments.
type AddPaymentRequest struct {
	SupplierName string          `json:"supplier_name"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"due_date"` // 2006-01-02
	Status       string          `json:"status"`   // defaults to pending
}

// ReschedulePaymentRequest body for PUT /api/payments/{id}/reschedule.
type ReschedulePaymentRequest struct {
	DueDate string `json:"due_date"` // 2006-01-02
}

// PaymentResponse one payment row.
type PaymentResponse struct {
	ID           string          `json:"id"`
	SupplierName string          `json:"supplier_name"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"due_date"` // 2006-01-02
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PaymentListResponse response for GET /api/payments, ordered by due date ascending.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
}
