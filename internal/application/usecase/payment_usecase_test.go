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

const paymentTestUser = "00000000-0000-0000-0000-000000000001"

func newPaymentUC() *usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(memory.NewPaymentRepository())
}

func addPayment(t *testing.T, uc *usecase.PaymentUseCase, supplier, due string) *dto.PaymentResponse {
	t.Helper()
	out, err := uc.Add(paymentTestUser, dto.AddPaymentRequest{
		SupplierName: supplier,
		Amount:       decimal.NewFromInt(2500),
		DueDate:      due,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func TestPaymentAdd_DefaultsToPending(t *testing.T) {
	uc := newPaymentUC()
	out := addPayment(t, uc, "Sharma Traders", "2026-09-15")

	assert.Equal(t, "pending", out.Status)
	assert.Equal(t, "2026-09-15", out.DueDate)
	assert.NotEmpty(t, out.ID)
}

func TestPaymentAdd_RejectsBadInput(t *testing.T) {
	uc := newPaymentUC()

	_, err := uc.Add(paymentTestUser, dto.AddPaymentRequest{SupplierName: "", Amount: decimal.NewFromInt(10), DueDate: "2026-09-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "supplier name is required")

	_, err = uc.Add(paymentTestUser, dto.AddPaymentRequest{SupplierName: "X", Amount: decimal.NewFromInt(10), DueDate: "15/09/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "due date must be 2006-01-02")

	_, err = uc.Add(paymentTestUser, dto.AddPaymentRequest{SupplierName: "X", Amount: decimal.NewFromInt(-10), DueDate: "2026-09-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount must not be negative")

	_, err = uc.Add(paymentTestUser, dto.AddPaymentRequest{SupplierName: "X", Amount: decimal.NewFromInt(10), DueDate: "2026-09-15", Status: "overdue"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "status must be pending or paid")
}

func TestPaymentMarkPaid_Idempotent(t *testing.T) {
	uc := newPaymentUC()
	created := addPayment(t, uc, "Sharma Traders", "2026-09-15")

	out, err := uc.MarkPaid(paymentTestUser, created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "paid", out.Status)

	// Second call is a no-op, not an error.
	out, err = uc.MarkPaid(paymentTestUser, created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "paid", out.Status)
}

func TestPaymentMarkPaid_UnknownIDReturnsNil(t *testing.T) {
	uc := newPaymentUC()
	out, err := uc.MarkPaid(paymentTestUser, "missing")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestPaymentReschedule_ResetsToPending(t *testing.T) {
	uc := newPaymentUC()
	created := addPayment(t, uc, "Sharma Traders", "2026-09-15")

	_, err := uc.MarkPaid(paymentTestUser, created.ID)
	require.NoError(t, err)

	out, err := uc.Reschedule(paymentTestUser, created.ID, dto.ReschedulePaymentRequest{DueDate: "2026-10-01"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "pending", out.Status, "rescheduling reopens the payment")
	assert.Equal(t, "2026-10-01", out.DueDate)
}

func TestPaymentList_DueDateAscending(t *testing.T) {
	uc := newPaymentUC()
	addPayment(t, uc, "later", "2026-10-01")
	addPayment(t, uc, "sooner", "2026-09-05")
	addPayment(t, uc, "middle", "2026-09-20")

	out, err := uc.List(paymentTestUser)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "sooner", out.Items[0].SupplierName)
	assert.Equal(t, "middle", out.Items[1].SupplierName)
	assert.Equal(t, "later", out.Items[2].SupplierName)
}

func TestPaymentDelete_Idempotent(t *testing.T) {
	uc := newPaymentUC()
	created := addPayment(t, uc, "Sharma Traders", "2026-09-15")

	require.NoError(t, uc.Delete(paymentTestUser, created.ID))
	require.NoError(t, uc.Delete(paymentTestUser, created.ID))

	out, err := uc.List(paymentTestUser)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
