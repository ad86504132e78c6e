package insights_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/insights"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/usecase"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/memory"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

type fixture struct {
	inventory *memory.InventoryRepo
	payments  *memory.PaymentRepo
	uc        *insights.DashboardUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	inventory := memory.NewInventoryRepository()
	staff := memory.NewStaffRepository()
	suppliers := memory.NewSupplierRepository()
	payments := memory.NewPaymentRepository()
	repo := memory.NewInsightsRepository(inventory, staff, suppliers, payments)
	return &fixture{
		inventory: inventory,
		payments:  payments,
		uc:        insights.NewDashboardUseCase(repo),
	}
}

func (f *fixture) addItem(t *testing.T, id string, quantity int, lastUpdated time.Time) {
	t.Helper()
	require.NoError(t, f.inventory.Create(&entity.InventoryItem{
		ID:           id,
		UserID:       testUserID,
		ItemName:     "item-" + id,
		Quantity:     quantity,
		ReorderLevel: 10,
		CostPrice:    decimal.NewFromInt(50),
		SellingPrice: decimal.NewFromInt(80),
		LastUpdated:  lastUpdated,
	}))
}

func (f *fixture) addPayment(t *testing.T, id, status string, amount int64, due time.Time) {
	t.Helper()
	require.NoError(t, f.payments.Create(&entity.Payment{
		ID:           id,
		UserID:       testUserID,
		SupplierName: "supplier-" + id,
		Amount:       decimal.NewFromInt(amount),
		DueDate:      due,
		Status:       status,
		CreatedAt:    time.Now(),
	}))
}

func daysAgo(n int) time.Time { return time.Now().AddDate(0, 0, -n) }

// daysAhead builds a due date the way the write path stores them: the calendar
// date as a UTC midnight.
func daysAhead(n int) time.Time {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, n)
}

func TestDeadStock_WindowBoundary(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "old", 5, daysAgo(46))
	f.addItem(t, "fresh", 5, daysAgo(10))

	dead, err := f.uc.DeadStock(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, dead, 1)
	assert.Equal(t, "old", dead[0].ID)
}

func TestDeadStock_OldestFirst(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "older", 5, daysAgo(90))
	f.addItem(t, "oldest", 5, daysAgo(120))
	f.addItem(t, "old", 5, daysAgo(50))

	dead, err := f.uc.DeadStock(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, dead, 3)
	assert.Equal(t, "oldest", dead[0].ID)
	assert.Equal(t, "older", dead[1].ID)
	assert.Equal(t, "old", dead[2].ID)
}

func TestUpcomingPayments_WindowAndStatus(t *testing.T) {
	f := newFixture(t)
	f.addPayment(t, "today", entity.PaymentPending, 100, daysAhead(0))
	f.addPayment(t, "edge", entity.PaymentPending, 200, daysAhead(7))
	f.addPayment(t, "beyond", entity.PaymentPending, 300, daysAhead(8))
	f.addPayment(t, "overdue", entity.PaymentPending, 400, daysAhead(-1))
	f.addPayment(t, "settled", entity.PaymentPaid, 500, daysAhead(2))

	due, err := f.uc.UpcomingPayments(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, due, 2, "only pending payments inside [today, today+7] qualify")
	assert.Equal(t, "today", due[0].ID)
	assert.Equal(t, "edge", due[1].ID)
}

func TestUpcomingPayments_BoundariesHoldInAnyServerZone(t *testing.T) {
	f := newFixture(t)
	paymentUC := usecase.NewPaymentUseCase(f.payments)

	// Go through the real write path: due dates arrive as plain calendar dates.
	for _, tc := range []struct{ supplier, due string }{
		{"due-today", time.Now().Format(dto.DueDateLayout)},
		{"due-day-seven", time.Now().AddDate(0, 0, 7).Format(dto.DueDateLayout)},
	} {
		_, err := paymentUC.Add(testUserID, dto.AddPaymentRequest{
			SupplierName: tc.supplier,
			Amount:       decimal.NewFromInt(100),
			DueDate:      tc.due,
		})
		require.NoError(t, err)
	}

	due, err := f.uc.UpcomingPayments(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, due, 2, "both inclusive boundaries qualify regardless of the host time zone")
	assert.Equal(t, "due-today", due[0].SupplierName)
	assert.Equal(t, "due-day-seven", due[1].SupplierName)
}

func TestAlerts_DeadStockFirstAndCapped(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 4; i++ {
		f.addItem(t, fmt.Sprintf("dead-%d", i), 5, daysAgo(60+i))
	}
	for i := 0; i < 4; i++ {
		f.addPayment(t, fmt.Sprintf("due-%d", i), entity.PaymentPending, 100, daysAhead(i+1))
	}

	alerts, degraded := f.uc.Alerts(context.Background(), testUserID)
	assert.Nil(t, degraded)
	require.Len(t, alerts, insights.MaxDashboardAlerts)
	for _, a := range alerts[:4] {
		assert.Equal(t, dto.AlertDeadStock, a.Type, "dead stock fills the list before payments")
	}
	for _, a := range alerts[4:] {
		assert.Equal(t, dto.AlertPaymentDue, a.Type)
	}
}

func TestDailySummary_FixedLineOrder(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "empty", 0, daysAgo(1))
	f.addItem(t, "stale", 5, daysAgo(50))
	f.addPayment(t, "soon", entity.PaymentPending, 1500, daysAhead(2))

	lines, degraded := f.uc.DailySummary(context.Background(), testUserID)
	assert.Nil(t, degraded)
	require.Len(t, lines, 3)
	assert.Equal(t, "You have 1 low-stock items. Consider restocking.", lines[0])
	assert.Equal(t, "1 products have not sold in over 45 days.", lines[1])
	assert.Contains(t, lines[2], "due in the next few days")
	assert.Contains(t, lines[2], "₹")
	assert.Contains(t, lines[2], "1,500")
}

func TestDailySummary_AllClear(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "healthy", 50, daysAgo(1))

	lines, degraded := f.uc.DailySummary(context.Background(), testUserID)
	assert.Nil(t, degraded)
	require.Len(t, lines, 1)
	assert.Equal(t, "All systems look good today. No alerts.", lines[0])
}

func TestDashboard_EndToEnd(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "empty", 0, daysAgo(1))
	f.addItem(t, "stale", 5, daysAgo(50))
	f.addPayment(t, "soon", entity.PaymentPending, 900, daysAhead(2))

	out := f.uc.Dashboard(context.Background(), testUserID)
	require.NotNil(t, out)
	assert.Equal(t, 2, out.Stats.TotalProducts)
	assert.Equal(t, 0, out.Stats.TotalStaff)
	require.Len(t, out.Alerts, 2, "one dead-stock and one payment-due alert")
	assert.Equal(t, 80, out.HealthScore, "100 minus 10 per alert")
	assert.Len(t, out.AISummary, 3)
	assert.Empty(t, out.Degraded)
}

// failingInsightsRepo errors on every query.
type failingInsightsRepo struct{}

var errDown = errors.New("store down")

func (failingInsightsRepo) CountInventory(context.Context, string) (int, error)  { return 0, errDown }
func (failingInsightsRepo) CountStaff(context.Context, string) (int, error)      { return 0, errDown }
func (failingInsightsRepo) CountSuppliers(context.Context, string) (int, error)  { return 0, errDown }
func (failingInsightsRepo) CountOutOfStock(context.Context, string) (int, error) { return 0, errDown }
func (failingInsightsRepo) ListStaleInventory(context.Context, string, time.Time) ([]*entity.InventoryItem, error) {
	return nil, errDown
}
func (failingInsightsRepo) ListPendingPaymentsDue(context.Context, string, time.Time, time.Time) ([]*entity.Payment, error) {
	return nil, errDown
}

func TestDashboard_DegradedSourcesReported(t *testing.T) {
	uc := insights.NewDashboardUseCase(failingInsightsRepo{})

	out := uc.Dashboard(context.Background(), testUserID)
	require.NotNil(t, out)
	assert.Equal(t, dto.DashboardStats{}, out.Stats)
	assert.Empty(t, out.Alerts)
	assert.Equal(t, 100, out.HealthScore, "no visible alerts when sources are down")
	assert.Equal(t, []string{"Unable to generate summary at this time."}, out.AISummary)
	assert.ElementsMatch(t, []string{"stats", "dead_stock", "payments", "summary"}, out.Degraded)
}
