package models

// CartLine is a menu item plus the quantity of it currently on the tray.
// A cart holds at most one line per menu item ID.
type CartLine struct {
	MenuItem
	Quantity int
}

// Totals is the derived bill for a cart. FreeLines and PaidLines
// partition the cart by the free flag, preserving insertion order.
type Totals struct {
	Subtotal   int64
	Tax        int64
	Total      int64
	TotalUnits int
	FreeLines  []CartLine
	PaidLines  []CartLine
}

// OrderRecord is the snapshot taken at checkout. Apart from status
// transitions it never changes after creation.
type OrderRecord struct {
	ID       string
	Date     string
	Items    []CartLine
	Subtotal int64
	Tax      int64
	Total    int64
	Status   string
	UserID   string
}

// RevenueStats aggregates the session's order history for the admin
// dashboard.
type RevenueStats struct {
	OrdersCount  int
	GrossRevenue int64
	TaxCollected int64
	FreeUnits    int
}
