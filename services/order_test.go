package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"foodhub-kiosk/models"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusPending, OrderStatusPreparing, true},
		{OrderStatusPending, OrderStatusReady, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusPreparing, OrderStatusPending, false},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusReady, OrderStatusCompleted, true},
		{OrderStatusReady, OrderStatusPreparing, false},
		{OrderStatusReady, OrderStatusCancelled, true},
		{OrderStatusCompleted, OrderStatusPreparing, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{"", OrderStatusPending, false},
		{OrderStatusPending, "", false},
	}
	for _, tt := range tests {
		got := ValidStatusTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAdvanceOrderStatus(t *testing.T) {
	o := models.OrderRecord{ID: "FH-0001", Status: OrderStatusPending}
	if err := AdvanceOrderStatus(&o, OrderStatusCancelled); err != nil {
		t.Fatalf("PENDING -> CANCELLED: %v", err)
	}
	if o.Status != OrderStatusCancelled {
		t.Errorf("status = %s, want CANCELLED", o.Status)
	}

	o = models.OrderRecord{ID: "FH-0002", Status: OrderStatusCompleted}
	err := AdvanceOrderStatus(&o, OrderStatusPreparing)
	if err == nil {
		t.Fatal("COMPLETED -> PREPARING succeeded, want error")
	}
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("error type = %T, want *InvalidTransitionError", err)
	}
	if ite.From != OrderStatusCompleted || ite.To != OrderStatusPreparing {
		t.Errorf("error carries %s -> %s, want COMPLETED -> PREPARING", ite.From, ite.To)
	}
	if o.Status != OrderStatusCompleted {
		t.Errorf("record changed on rejected transition: %s", o.Status)
	}
}

func TestNewOrderID(t *testing.T) {
	re := regexp.MustCompile(`^FH-\d{4}$`)
	for i := 0; i < 50; i++ {
		id := NewOrderID()
		if !re.MatchString(id) {
			t.Fatalf("NewOrderID() = %q, want FH- plus four digits", id)
		}
	}
}

func TestFinalizeOrder(t *testing.T) {
	cart := []models.CartLine{
		{MenuItem: testSalad, Quantity: 1},
		{MenuItem: testPizza, Quantity: 1},
	}
	totals := ComputeTotals(cart)
	newID := func() string { return "FH-4242" }
	now := func() time.Time { return time.Date(2023, time.October, 24, 12, 0, 0, 0, time.UTC) }

	rec := FinalizeOrder(cart, totals, newID, now, "dana")

	if rec.ID != "FH-4242" || rec.Date != "Oct 24, 2023" || rec.UserID != "dana" {
		t.Errorf("record header = %s/%s/%s", rec.ID, rec.Date, rec.UserID)
	}
	if rec.Status != OrderStatusPending {
		t.Errorf("status = %s, want PENDING", rec.Status)
	}
	if rec.Subtotal != 299 || rec.Tax != 15 || rec.Total != 314 {
		t.Errorf("totals = %d/%d/%d, want 299/15/314", rec.Subtotal, rec.Tax, rec.Total)
	}

	// the record holds its own copy of the lines
	cart[1].Quantity = 99
	if rec.Items[1].Quantity != 1 {
		t.Errorf("record shares lines with the cart: %+v", rec.Items[1])
	}
}

func TestFinalizeOrderEmptyCart(t *testing.T) {
	rec := FinalizeOrder(nil, ComputeTotals(nil), NewOrderID, time.Now, "")
	if rec.ID == "" {
		t.Error("empty cart record has no ID")
	}
	if len(rec.Items) != 0 {
		t.Errorf("items = %+v, want none", rec.Items)
	}
	if rec.Subtotal != 0 || rec.Tax != 0 || rec.Total != 0 {
		t.Errorf("totals = %d/%d/%d, want all zero", rec.Subtotal, rec.Tax, rec.Total)
	}
}

func TestSessionRevenueStats(t *testing.T) {
	history := []models.OrderRecord{
		{
			ID: "FH-0001", Status: OrderStatusCompleted, Total: 314, Tax: 15,
			Items: []models.CartLine{
				{MenuItem: testSalad, Quantity: 2},
				{MenuItem: testPizza, Quantity: 1},
			},
		},
		{ID: "FH-0002", Status: OrderStatusCancelled, Total: 999, Tax: 48},
		{ID: "FH-0003", Status: OrderStatusPending, Total: 100, Tax: 5},
	}
	got := SessionRevenueStats(history)
	if got.OrdersCount != 2 {
		t.Errorf("OrdersCount = %d, want 2 (cancelled excluded)", got.OrdersCount)
	}
	if got.GrossRevenue != 414 || got.TaxCollected != 20 {
		t.Errorf("revenue/tax = %d/%d, want 414/20", got.GrossRevenue, got.TaxCollected)
	}
	if got.FreeUnits != 2 {
		t.Errorf("FreeUnits = %d, want 2", got.FreeUnits)
	}
}
