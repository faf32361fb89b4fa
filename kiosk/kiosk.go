package kiosk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"foodhub-kiosk/catalog"
	"foodhub-kiosk/config"
	"foodhub-kiosk/models"
	"foodhub-kiosk/services"
)

// Kiosk is the terminal front-end. It owns the single kiosk session and
// drives it only through the exported core operations; every line of
// input maps to one operation on the current screen.
type Kiosk struct {
	cfg     *config.Config
	menu    *catalog.Catalog
	session *services.Session

	in  *bufio.Scanner
	out io.Writer

	// collaborators for order finalization, swappable in tests
	newID func() string
	now   func() time.Time

	activeOrderID string // order tracked on the status and pickup screens
}

func New(cfg *config.Config, menu *catalog.Catalog) *Kiosk {
	return NewWithIO(cfg, menu, os.Stdin, os.Stdout)
}

func NewWithIO(cfg *config.Config, menu *catalog.Catalog, in io.Reader, out io.Writer) *Kiosk {
	k := &Kiosk{
		cfg:     cfg,
		menu:    menu,
		session: services.NewSession(),
		in:      bufio.NewScanner(in),
		out:     out,
		newID:   services.NewOrderID,
		now:     time.Now,
	}
	k.seedHistory()
	return k
}

// seedHistory preloads a couple of completed demo orders so the profile
// and admin screens have something to show on a fresh kiosk.
func (k *Kiosk) seedHistory() {
	salad, ok1 := k.menu.Get("1")
	pizza, ok2 := k.menu.Get("2")
	wrap, ok3 := k.menu.Get("4")
	if !ok1 || !ok2 || !ok3 {
		return
	}
	limit := k.cfg.Kiosk.PerItemLimit

	first := services.AddItem(nil, salad, limit)
	ft := services.ComputeTotals(first)

	second := services.AddItem(services.AddItem(nil, pizza, limit), wrap, limit)
	st := services.ComputeTotals(second)

	k.session.History = []models.OrderRecord{
		{ID: "FH-8812", Date: "Oct 24, 2023", Items: first, Subtotal: ft.Subtotal, Tax: ft.Tax, Total: ft.Total, Status: services.OrderStatusCompleted},
		{ID: "FH-7741", Date: "Oct 20, 2023", Items: second, Subtotal: st.Subtotal, Tax: st.Tax, Total: st.Total, Status: services.OrderStatusCompleted},
	}
}

// Run drives the screen loop until the user types quit or input ends.
func (k *Kiosk) Run() error {
	fmt.Fprintf(k.out, "FoodHub — %s\n", k.cfg.Kiosk.Location)
	for {
		k.render()
		fmt.Fprint(k.out, "> ")
		if !k.in.Scan() {
			return k.in.Err()
		}
		input := strings.TrimSpace(k.in.Text())
		if strings.EqualFold(input, "quit") {
			fmt.Fprintln(k.out, "Bye.")
			return nil
		}
		if err := k.handle(input); err != nil {
			fmt.Fprintln(k.out, "!", err)
		}
	}
}

func (k *Kiosk) handle(input string) error {
	switch k.session.Step {
	case services.StepLanding:
		return k.session.Go(services.StepLogin)
	case services.StepLogin:
		return k.handleLogin(input)
	case services.StepVerifyOTP:
		return k.handleVerifyOTP(input)
	case services.StepMenu:
		return k.handleMenu(input)
	case services.StepCart:
		return k.handleCart(input)
	case services.StepSummary:
		return k.handleSummary(input)
	case services.StepPayment:
		return k.handlePayment(input)
	case services.StepOrderStatus:
		return k.handleOrderStatus()
	case services.StepCollectionQR:
		return k.handleCollectionQR()
	case services.StepCompleted:
		return k.handleCompleted(input)
	case services.StepProfile:
		return k.handleProfile(input)
	case services.StepAdmin:
		return k.handleAdmin(input)
	}
	return nil
}

func (k *Kiosk) handleLogin(input string) error {
	if input == "" {
		return fmt.Errorf("enter your company email")
	}
	return k.session.Login(input)
}

func (k *Kiosk) handleVerifyOTP(input string) error {
	if strings.EqualFold(input, "back") {
		return k.session.Go(services.StepLogin)
	}
	return k.session.VerifyOTP(input, k.cfg.Kiosk.OTPCode)
}

func (k *Kiosk) handleMenu(input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	switch strings.ToLower(fields[0]) {
	case "add":
		if len(fields) < 2 {
			return fmt.Errorf("usage: add <id>")
		}
		return k.addToCart(fields[1])
	case "cart":
		return k.session.Go(services.StepCart)
	case "profile":
		return k.session.Go(services.StepProfile)
	}
	return fmt.Errorf("unknown command %q", fields[0])
}

func (k *Kiosk) addToCart(itemID string) error {
	item, ok := k.menu.Get(itemID)
	if !ok {
		return fmt.Errorf("no menu item %s", itemID)
	}
	limit := k.cfg.Kiosk.PerItemLimit
	if services.IsAtLimit(k.session.Cart, itemID, limit) {
		return fmt.Errorf("limit reached: max %d of %s per order", limit, item.Name)
	}
	k.session.AddToCart(item, limit)
	fmt.Fprintf(k.out, "Added %s (x%d)\n", item.Name, services.ItemQuantity(k.session.Cart, itemID))
	return nil
}

func (k *Kiosk) handleCart(input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	switch strings.ToLower(fields[0]) {
	case "add":
		if len(fields) < 2 {
			return fmt.Errorf("usage: add <id>")
		}
		return k.addToCart(fields[1])
	case "rm":
		if len(fields) < 2 {
			return fmt.Errorf("usage: rm <id>")
		}
		k.session.RemoveFromCart(fields[1])
		return nil
	case "menu":
		return k.session.Go(services.StepMenu)
	case "profile":
		return k.session.Go(services.StepProfile)
	case "checkout":
		if len(k.session.Cart) == 0 {
			return fmt.Errorf("your tray is empty")
		}
		return k.session.Go(services.StepSummary)
	}
	return fmt.Errorf("unknown command %q", fields[0])
}

func (k *Kiosk) handleSummary(input string) error {
	switch strings.ToLower(input) {
	case "confirm":
		return k.session.Go(services.StepPayment)
	case "back":
		return k.session.Go(services.StepCart)
	}
	return fmt.Errorf("type confirm or back")
}

func (k *Kiosk) handlePayment(input string) error {
	switch strings.ToLower(input) {
	case "pay":
		rec, err := k.session.Checkout(k.newID, k.now)
		if err != nil {
			return err
		}
		k.activeOrderID = rec.ID
		fmt.Fprintf(k.out, "Payment accepted. Order %s placed.\n", rec.ID)
		return k.session.Go(services.StepOrderStatus)
	case "back":
		return k.session.Go(services.StepSummary)
	}
	return fmt.Errorf("type pay or back")
}

// handleOrderStatus steps the demo kitchen: each input advances the
// active order until it is ready, then moves to the pickup screen.
func (k *Kiosk) handleOrderStatus() error {
	o, ok := k.session.Order(k.activeOrderID)
	if !ok {
		return fmt.Errorf("order %s not found", k.activeOrderID)
	}
	switch o.Status {
	case services.OrderStatusPending:
		return k.session.AdvanceOrder(o.ID, services.OrderStatusPreparing)
	case services.OrderStatusPreparing:
		return k.session.AdvanceOrder(o.ID, services.OrderStatusReady)
	default:
		return k.session.Go(services.StepCollectionQR)
	}
}

func (k *Kiosk) handleCollectionQR() error {
	if err := k.session.AdvanceOrder(k.activeOrderID, services.OrderStatusCompleted); err != nil {
		return err
	}
	return k.session.Go(services.StepCompleted)
}

func (k *Kiosk) handleCompleted(input string) error {
	if strings.EqualFold(input, "profile") {
		return k.session.Go(services.StepProfile)
	}
	return k.session.Go(services.StepMenu)
}

func (k *Kiosk) handleProfile(input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	switch strings.ToLower(fields[0]) {
	case "view":
		if len(fields) < 2 {
			return fmt.Errorf("usage: view <order-id>")
		}
		o, ok := k.session.Order(fields[1])
		if !ok {
			return fmt.Errorf("order %s not found", fields[1])
		}
		k.renderOrderDetail(o)
		return nil
	case "menu":
		return k.session.Go(services.StepMenu)
	case "admin":
		return k.session.Go(services.StepAdmin)
	case "logout":
		k.session.Logout()
		return nil
	}
	return fmt.Errorf("unknown command %q", fields[0])
}

func (k *Kiosk) handleAdmin(input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	switch strings.ToLower(fields[0]) {
	case "free":
		if len(fields) < 2 {
			return fmt.Errorf("usage: free <id>")
		}
		return k.menu.ToggleFree(fields[1])
	case "del":
		if len(fields) < 2 {
			return fmt.Errorf("usage: del <id>")
		}
		k.menu.Delete(fields[1])
		return nil
	case "add":
		return k.adminAdd(strings.TrimSpace(strings.TrimPrefix(input, fields[0])))
	case "back":
		return k.session.Go(services.StepProfile)
	}
	return fmt.Errorf("unknown command %q", fields[0])
}

// adminAdd parses "name;category;price" and lists the item.
func (k *Kiosk) adminAdd(arg string) error {
	parts := strings.SplitN(arg, ";", 3)
	if len(parts) != 3 {
		return fmt.Errorf("usage: add <name>;<category>;<price>")
	}
	price, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return fmt.Errorf("bad price %q", parts[2])
	}
	item, err := k.menu.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), price, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(k.out, "Listed %s [%s] at ₹%d\n", item.Name, item.ID, item.Price)
	return nil
}
