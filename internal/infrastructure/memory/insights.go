package memory

import (
	"context"
	"sort"
	"time"

	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

var _ repository.InsightsRepository = (*InsightsRepo)(nil)

// InsightsRepo answers the read-only dashboard queries from the in-memory stores.
type InsightsRepo struct {
	inventory *InventoryRepo
	staff     *StaffRepo
	suppliers *SupplierRepo
	payments  *PaymentRepo
}

// NewInsightsRepository wires the insights view over the given stores.
func NewInsightsRepository(inventory *InventoryRepo, staff *StaffRepo, suppliers *SupplierRepo, payments *PaymentRepo) *InsightsRepo {
	return &InsightsRepo{inventory: inventory, staff: staff, suppliers: suppliers, payments: payments}
}

// CountInventory counts the user's inventory rows.
func (r *InsightsRepo) CountInventory(_ context.Context, userID string) (int, error) {
	list, err := r.inventory.ListByUser(userID)
	return len(list), err
}

// CountStaff counts the user's staff rows.
func (r *InsightsRepo) CountStaff(_ context.Context, userID string) (int, error) {
	list, err := r.staff.ListByUser(userID)
	return len(list), err
}

// CountSuppliers counts the user's supplier rows.
func (r *InsightsRepo) CountSuppliers(_ context.Context, userID string) (int, error) {
	list, err := r.suppliers.ListByUser(userID)
	return len(list), err
}

// CountOutOfStock counts the user's inventory rows with quantity zero.
func (r *InsightsRepo) CountOutOfStock(_ context.Context, userID string) (int, error) {
	list, err := r.inventory.ListByUser(userID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, it := range list {
		if it.Quantity == 0 {
			n++
		}
	}
	return n, nil
}

// ListStaleInventory returns items strictly older than the cutoff, oldest first.
func (r *InsightsRepo) ListStaleInventory(_ context.Context, userID string, before time.Time) ([]*entity.InventoryItem, error) {
	list, err := r.inventory.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	var stale []*entity.InventoryItem
	for _, it := range list {
		if it.LastUpdated.Before(before) {
			stale = append(stale, it)
		}
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i].LastUpdated.Before(stale[j].LastUpdated) })
	return stale, nil
}

// ListPendingPaymentsDue returns pending payments due in [from, to] inclusive,
// ordered by due date ascending.
func (r *InsightsRepo) ListPendingPaymentsDue(_ context.Context, userID string, from, to time.Time) ([]*entity.Payment, error) {
	list, err := r.payments.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	var due []*entity.Payment
	for _, p := range list {
		if p.Status != entity.PaymentPending {
			continue
		}
		if p.DueDate.Before(from) || p.DueDate.After(to) {
			continue
		}
		due = append(due, p)
	}
	return due, nil
}
