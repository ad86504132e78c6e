// Package insights contains the dashboard aggregation logic: dead-stock and
// payment-due selectors, the alert builder, the daily summary and the combined
// dashboard payload.
package insights

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/health"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

const (
	// DeadStockWindowDays is the single dead-stock cutoff. The system this replaces
	// used 30 days in its alert path and 45 in its workbench for the same concept;
	// both now use 45 (see DESIGN.md).
	DeadStockWindowDays = 45

	// PaymentWindowDays is the forward window for upcoming payments, inclusive.
	PaymentWindowDays = 7

	// MaxDashboardAlerts caps the merged alert list. Dead-stock entries take priority
	// by list order. Placeholder policy carried over from the original.
	MaxDashboardAlerts = 6
)

// Degraded-source tags reported in the dashboard payload when a read fails.
const (
	sourceStats     = "stats"
	sourceDeadStock = "dead_stock"
	sourcePayments  = "payments"
	sourceSummary   = "summary"
)

// summaryUnavailable replaces the summary when its inputs cannot be read.
const summaryUnavailable = "Unable to generate summary at this time."

// inr formats amounts with Indian digit grouping for the summary line.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// DashboardUseCase assembles the dashboard payload from independent read-only queries.
//
// There is no transaction across the sub-fetches: the payload is a snapshot built from
// independently-timed reads, and a write landing between them can make stats and alerts
// disagree. Accepted limitation, not a bug.
type DashboardUseCase struct {
	repo repository.InsightsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(repo repository.InsightsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// DeadStock returns the user's items not touched in DeadStockWindowDays, oldest first.
func (uc *DashboardUseCase) DeadStock(ctx context.Context, userID string) ([]*entity.InventoryItem, error) {
	cutoff := time.Now().AddDate(0, 0, -DeadStockWindowDays)
	return uc.repo.ListStaleInventory(ctx, userID, cutoff)
}

// UpcomingPayments returns pending payments due within the next PaymentWindowDays,
// both boundaries inclusive, ordered by due date ascending.
func (uc *DashboardUseCase) UpcomingPayments(ctx context.Context, userID string) ([]*entity.Payment, error) {
	from := startOfToday()
	to := from.AddDate(0, 0, PaymentWindowDays)
	return uc.repo.ListPendingPaymentsDue(ctx, userID, from, to)
}

// startOfToday is today's calendar date as a UTC midnight. Due dates are stored the
// same way (plain dates parsed as UTC), so window comparisons are date-vs-date and
// do not shift with the server's time zone.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Alerts merges dead-stock and payment-due alerts, dead stock first, capped at
// MaxDashboardAlerts. A failed selector is logged, contributes nothing, and its tag
// is returned in degraded instead of masquerading as "no alerts".
func (uc *DashboardUseCase) Alerts(ctx context.Context, userID string) (alerts []dto.Alert, degraded []string) {
	alerts = make([]dto.Alert, 0, MaxDashboardAlerts)

	dead, err := uc.DeadStock(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("alerts: dead stock fetch failed")
		degraded = append(degraded, sourceDeadStock)
	}
	for _, d := range dead {
		alerts = append(alerts, dto.Alert{
			ID:          d.ID,
			Type:        dto.AlertDeadStock,
			Title:       d.ItemName,
			Description: fmt.Sprintf("Item not sold in %d+ days", DeadStockWindowDays),
		})
	}

	payments, err := uc.UpcomingPayments(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("alerts: upcoming payments fetch failed")
		degraded = append(degraded, sourcePayments)
	}
	today := startOfToday()
	for _, p := range payments {
		alerts = append(alerts, dto.Alert{
			ID:          p.ID,
			Type:        dto.AlertPaymentDue,
			Title:       p.SupplierName,
			Description: fmt.Sprintf("Payment due in %d days", daysUntil(today, p.DueDate)),
		})
	}

	if len(alerts) > MaxDashboardAlerts {
		alerts = alerts[:MaxDashboardAlerts]
	}
	return alerts, degraded
}

// DailySummary produces the fixed-order summary lines: low stock, dead stock,
// payments due; a single all-clear line when nothing applies. Recomputed on every
// call, never cached.
func (uc *DashboardUseCase) DailySummary(ctx context.Context, userID string) (lines []string, degraded []string) {
	outOfStock, err := uc.repo.CountOutOfStock(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("summary: out-of-stock count failed")
		return []string{summaryUnavailable}, []string{sourceSummary}
	}
	dead, err := uc.DeadStock(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("summary: dead stock fetch failed")
		return []string{summaryUnavailable}, []string{sourceSummary}
	}
	payments, err := uc.UpcomingPayments(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("summary: upcoming payments fetch failed")
		return []string{summaryUnavailable}, []string{sourceSummary}
	}

	totalDue := decimal.Zero
	for _, p := range payments {
		totalDue = totalDue.Add(p.Amount)
	}

	if outOfStock > 0 {
		lines = append(lines, fmt.Sprintf("You have %d low-stock items. Consider restocking.", outOfStock))
	}
	if len(dead) > 0 {
		lines = append(lines, fmt.Sprintf("%d products have not sold in over %d days.", len(dead), DeadStockWindowDays))
	}
	if len(payments) > 0 {
		lines = append(lines, inr.Sprintf("You have ₹%v due in the next few days.", number.Decimal(totalDue.InexactFloat64())))
	}
	if len(lines) == 0 {
		lines = append(lines, "All systems look good today. No alerts.")
	}
	return lines, nil
}

// Dashboard assembles the full payload. The three sections fan out in goroutines the
// same way the stats/alerts/summary reads were issued independently in the original;
// each degrades on its own and reports its tag.
func (uc *DashboardUseCase) Dashboard(ctx context.Context, userID string) *dto.DashboardResponse {
	type statsResult struct {
		stats    dto.DashboardStats
		degraded []string
	}
	type alertsResult struct {
		alerts   []dto.Alert
		degraded []string
	}
	type summaryResult struct {
		lines    []string
		degraded []string
	}

	statsCh := make(chan statsResult, 1)
	alertsCh := make(chan alertsResult, 1)
	summaryCh := make(chan summaryResult, 1)

	go func() {
		stats, degraded := uc.stats(ctx, userID)
		statsCh <- statsResult{stats, degraded}
	}()
	go func() {
		alerts, degraded := uc.Alerts(ctx, userID)
		alertsCh <- alertsResult{alerts, degraded}
	}()
	go func() {
		lines, degraded := uc.DailySummary(ctx, userID)
		summaryCh <- summaryResult{lines, degraded}
	}()

	stats := <-statsCh
	alerts := <-alertsCh
	summary := <-summaryCh

	return &dto.DashboardResponse{
		Stats:       stats.stats,
		HealthScore: health.Score(len(alerts.alerts)),
		Alerts:      alerts.alerts,
		AISummary:   summary.lines,
		Degraded:    mergeDegraded(stats.degraded, alerts.degraded, summary.degraded),
	}
}

// stats runs the three count queries. A single failure degrades the whole block to
// zeros; the counts are only meaningful together.
func (uc *DashboardUseCase) stats(ctx context.Context, userID string) (dto.DashboardStats, []string) {
	products, err := uc.repo.CountInventory(ctx, userID)
	if err == nil {
		var staff, suppliers int
		if staff, err = uc.repo.CountStaff(ctx, userID); err == nil {
			if suppliers, err = uc.repo.CountSuppliers(ctx, userID); err == nil {
				return dto.DashboardStats{
					TotalProducts:  products,
					TotalStaff:     staff,
					TotalSuppliers: suppliers,
				}, nil
			}
		}
	}
	log.Error().Err(err).Str("user_id", userID).Msg("dashboard: stats query failed")
	return dto.DashboardStats{}, []string{sourceStats}
}

// daysUntil counts calendar days from one UTC midnight to another, rounding up,
// matching the original's ceil over the raw time difference.
func daysUntil(from, due time.Time) int {
	return int(math.Ceil(due.Sub(from).Hours() / 24))
}

func mergeDegraded(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range lists {
		for _, s := range l {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
