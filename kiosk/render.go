package kiosk

import (
	"fmt"
	"log"

	qrcode "github.com/skip2/go-qrcode"

	"foodhub-kiosk/models"
	"foodhub-kiosk/services"
)

func (k *Kiosk) render() {
	switch k.session.Step {
	case services.StepLanding:
		fmt.Fprintln(k.out, "\n== FoodHub ==")
		fmt.Fprintln(k.out, "The smarter way to dine at the office.")
		fmt.Fprintln(k.out, "Press enter to get started (quit to exit).")
	case services.StepLogin:
		fmt.Fprintln(k.out, "\n== Login ==")
		fmt.Fprintln(k.out, "Enter your company email:")
	case services.StepVerifyOTP:
		fmt.Fprintln(k.out, "\n== Verify Identity ==")
		fmt.Fprintf(k.out, "We sent a code to %s. Enter it (back to re-enter email):\n", k.session.Email)
	case services.StepMenu:
		k.renderMenu()
	case services.StepCart:
		k.renderCart()
	case services.StepSummary:
		k.renderSummary()
	case services.StepPayment:
		k.renderPayment()
	case services.StepOrderStatus:
		k.renderOrderStatus()
	case services.StepCollectionQR:
		k.renderCollectionQR()
	case services.StepCompleted:
		fmt.Fprintln(k.out, "\n== Awesome! ==")
		fmt.Fprintln(k.out, "Your meal has been collected.")
		fmt.Fprintln(k.out, "Commands: menu | profile")
	case services.StepProfile:
		k.renderProfile()
	case services.StepAdmin:
		k.renderAdmin()
	}
}

func priceLabel(it models.MenuItem) string {
	if it.IsFree {
		return "FREE"
	}
	return fmt.Sprintf("₹%d", it.Price)
}

func (k *Kiosk) renderMenu() {
	fmt.Fprintf(k.out, "\n== Today's Menu — %s ==\n", k.cfg.Kiosk.Location)
	for _, it := range k.menu.List() {
		line := fmt.Sprintf("[%s] %s (%s) — %s", it.ID, it.Name, it.Category, priceLabel(it))
		if q := services.ItemQuantity(k.session.Cart, it.ID); q > 0 {
			line += fmt.Sprintf("  (on tray: %d)", q)
		}
		fmt.Fprintln(k.out, line)
	}
	t := k.session.Totals()
	fmt.Fprintf(k.out, "Tray: %d items\n", t.TotalUnits)
	fmt.Fprintln(k.out, "Commands: add <id> | cart | profile")
}

func (k *Kiosk) renderCart() {
	fmt.Fprintln(k.out, "\n== Your Tray ==")
	if len(k.session.Cart) == 0 {
		fmt.Fprintln(k.out, "Empty tray. Head back to the menu to add items.")
	}
	for _, line := range k.session.Cart {
		fmt.Fprintf(k.out, "[%s] %s x%d — %s\n", line.ID, line.Name, line.Quantity, lineLabel(line))
	}
	t := k.session.Totals()
	fmt.Fprintf(k.out, "Subtotal ₹%d  Tax ₹%d  Total ₹%d\n", t.Subtotal, t.Tax, t.Total)
	fmt.Fprintln(k.out, "Commands: add <id> | rm <id> | checkout | menu | profile")
}

func lineLabel(line models.CartLine) string {
	if line.IsFree {
		return "FREE"
	}
	return fmt.Sprintf("₹%d", line.Price*int64(line.Quantity))
}

func (k *Kiosk) renderSummary() {
	t := k.session.Totals()
	fmt.Fprintln(k.out, "\n== Summary ==")
	if len(t.FreeLines) > 0 {
		fmt.Fprintln(k.out, "Free allotment:")
		for _, line := range t.FreeLines {
			fmt.Fprintf(k.out, "  %s x%d — FREE\n", line.Name, line.Quantity)
		}
	}
	if len(t.PaidLines) > 0 {
		fmt.Fprintln(k.out, "Paid items:")
		for _, line := range t.PaidLines {
			fmt.Fprintf(k.out, "  %s x%d — ₹%d\n", line.Name, line.Quantity, line.Price*int64(line.Quantity))
		}
	}
	fmt.Fprintf(k.out, "Subtotal ₹%d  Tax (5%%) ₹%d  Total ₹%d\n", t.Subtotal, t.Tax, t.Total)
	fmt.Fprintln(k.out, "Commands: confirm | back")
}

func (k *Kiosk) renderPayment() {
	t := k.session.Totals()
	fmt.Fprintln(k.out, "\n== Payment ==")
	fmt.Fprintln(k.out, "Method: Corporate Wallet")
	fmt.Fprintf(k.out, "To pay: ₹%d\n", t.Total)
	fmt.Fprintln(k.out, "Commands: pay | back")
}

func (k *Kiosk) renderOrderStatus() {
	fmt.Fprintln(k.out, "\n== Order Status ==")
	o, ok := k.session.Order(k.activeOrderID)
	if !ok {
		fmt.Fprintln(k.out, "No active order.")
		return
	}
	fmt.Fprintf(k.out, "Order %s: %s\n", o.ID, o.Status)
	fmt.Fprintln(k.out, "Press enter to check again.")
}

func (k *Kiosk) renderCollectionQR() {
	fmt.Fprintln(k.out, "\n== Collect Meal ==")
	q, err := qrcode.New(k.activeOrderID, qrcode.Medium)
	if err != nil {
		log.Printf("qr encode: %v", err)
		fmt.Fprintf(k.out, "Show this code at the counter: %s\n", k.activeOrderID)
	} else {
		fmt.Fprint(k.out, q.ToSmallString(false))
	}
	fmt.Fprintln(k.out, "Scan at the counter, then press enter once collected.")
}

func (k *Kiosk) renderProfile() {
	fmt.Fprintln(k.out, "\n== Profile ==")
	name := k.session.UserID()
	if name == "" {
		name = "Guest User"
	}
	fmt.Fprintf(k.out, "%s (%s)\n", name, k.session.Email)
	fmt.Fprintf(k.out, "Orders: %d\n", len(k.session.History))
	for _, o := range k.session.History {
		fmt.Fprintf(k.out, "  %s  %s  ₹%d  %s\n", o.ID, o.Date, o.Total, o.Status)
	}
	fmt.Fprintln(k.out, "Commands: view <order-id> | menu | admin | logout")
}

func (k *Kiosk) renderOrderDetail(o models.OrderRecord) {
	fmt.Fprintf(k.out, "\nOrder %s — %s (%s)\n", o.ID, o.Date, o.Status)
	for _, line := range o.Items {
		fmt.Fprintf(k.out, "  %s x%d — %s\n", line.Name, line.Quantity, lineLabel(line))
	}
	fmt.Fprintf(k.out, "Subtotal ₹%d  Tax ₹%d  Total ₹%d\n", o.Subtotal, o.Tax, o.Total)
}

func (k *Kiosk) renderAdmin() {
	fmt.Fprintln(k.out, "\n== Admin — Kiosk Manager ==")
	stats := k.session.RevenueStats()
	fmt.Fprintf(k.out, "Orders %d  Revenue ₹%d  Tax ₹%d  Free units %d\n",
		stats.OrdersCount, stats.GrossRevenue, stats.TaxCollected, stats.FreeUnits)
	fmt.Fprintln(k.out, "Menu catalog:")
	for _, it := range k.menu.List() {
		tag := "PAID"
		if it.IsFree {
			tag = "FREE"
		}
		fmt.Fprintf(k.out, "  [%s] %s — ₹%d (%s)\n", it.ID, it.Name, it.Price, tag)
	}
	fmt.Fprintln(k.out, "Commands: free <id> | del <id> | add <name>;<category>;<price> | back")
}
