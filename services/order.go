package services

import (
	"fmt"
	"math/rand"
	"time"

	"foodhub-kiosk/models"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

var statusTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// ValidStatusTransition reports whether an order may move from one
// status to another. The kitchen flow is a linear chain; CANCELLED is
// reachable from any non-terminal status.
func ValidStatusTransition(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError is returned when a status change is rejected.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// AdvanceOrderStatus applies a status transition to an order record.
// Anything outside the transition table fails; the record is untouched
// on failure.
func AdvanceOrderStatus(o *models.OrderRecord, newStatus string) error {
	if !ValidStatusTransition(o.Status, newStatus) {
		return &InvalidTransitionError{From: o.Status, To: newStatus}
	}
	o.Status = newStatus
	return nil
}

// NewOrderID returns a display order number like FH-8812. Uniqueness is
// best effort only: the suffix is random and collisions are neither
// prevented nor detected.
func NewOrderID() string {
	return fmt.Sprintf("FH-%d", 1000+rand.Intn(9000))
}

// OrderDateFormat is the human-readable order date, e.g. "Oct 24, 2023".
const OrderDateFormat = "Jan 2, 2006"

// FinalizeOrder snapshots the cart into an order record: a fresh ID from
// the generator, the formatted date from the clock, a copy of the lines
// and the given totals, starting at PENDING. Clearing the active cart
// afterwards is the caller's contract; FinalizeOrder never touches its
// input. An empty cart still yields a valid record with zero totals.
func FinalizeOrder(cart []models.CartLine, totals models.Totals, newID func() string, now func() time.Time, userID string) models.OrderRecord {
	items := make([]models.CartLine, len(cart))
	copy(items, cart)
	return models.OrderRecord{
		ID:       newID(),
		Date:     now().Format(OrderDateFormat),
		Items:    items,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
		Status:   OrderStatusPending,
		UserID:   userID,
	}
}

// SessionRevenueStats sums up the order history for the admin dashboard.
// Cancelled orders are excluded.
func SessionRevenueStats(history []models.OrderRecord) models.RevenueStats {
	var s models.RevenueStats
	for _, o := range history {
		if o.Status == OrderStatusCancelled {
			continue
		}
		s.OrdersCount++
		s.GrossRevenue += o.Total
		s.TaxCollected += o.Tax
		for _, line := range o.Items {
			if line.IsFree {
				s.FreeUnits += line.Quantity
			}
		}
	}
	return s
}
