package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"foodhub-kiosk/models"
)

// Step is a named screen in the kiosk flow.
type Step string

const (
	StepLanding      Step = "LANDING"
	StepLogin        Step = "LOGIN"
	StepVerifyOTP    Step = "VERIFY_OTP"
	StepMenu         Step = "MENU"
	StepCart         Step = "CART"
	StepSummary      Step = "ORDER_SUMMARY"
	StepPayment      Step = "PAYMENT"
	StepOrderStatus  Step = "ORDER_STATUS"
	StepCollectionQR Step = "COLLECTION_QR"
	StepCompleted    Step = "ORDER_COMPLETED"
	StepProfile      Step = "USER_PROFILE"
	StepAdmin        Step = "ADMIN_DASHBOARD"
)

// stepTransitions is the kiosk flow graph. All screen changes go through
// this table; there is no positional next/previous arithmetic, so adding
// a screen cannot silently reorder the flow.
var stepTransitions = map[Step][]Step{
	StepLanding:      {StepLogin},
	StepLogin:        {StepVerifyOTP},
	StepVerifyOTP:    {StepLogin, StepMenu},
	StepMenu:         {StepCart, StepProfile},
	StepCart:         {StepMenu, StepSummary, StepProfile},
	StepSummary:      {StepCart, StepPayment},
	StepPayment:      {StepSummary, StepOrderStatus},
	StepOrderStatus:  {StepCollectionQR},
	StepCollectionQR: {StepCompleted},
	StepCompleted:    {StepMenu, StepProfile},
	StepProfile:      {StepMenu, StepCart, StepAdmin, StepLanding},
	StepAdmin:        {StepProfile},
}

// ValidStepTransition reports whether the flow may move between two
// screens.
func ValidStepTransition(from, to Step) bool {
	for _, s := range stepTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ErrEmptyCart is returned by Checkout when there is nothing on the
// tray. The flow never offers checkout on an empty cart, but Checkout
// guards it anyway.
var ErrEmptyCart = errors.New("cart is empty")

// Session is the one mutable state of a kiosk sitting: who is ordering,
// which screen they are on, the active cart and the orders placed so
// far, newest first. All cart math goes through the pure engine
// functions; the session only holds their results.
type Session struct {
	ID      string
	Email   string
	Step    Step
	Cart    []models.CartLine
	History []models.OrderRecord
}

// NewSession starts an anonymous session on the landing screen.
func NewSession() *Session {
	return &Session{ID: uuid.NewString(), Step: StepLanding}
}

// Go moves the flow to a named screen, rejecting jumps the flow graph
// does not allow.
func (s *Session) Go(to Step) error {
	if !ValidStepTransition(s.Step, to) {
		return fmt.Errorf("screen %s is not reachable from %s", to, s.Step)
	}
	s.Step = to
	return nil
}

// Login records the corporate email and moves on to OTP verification.
// Only the loosest shape check is applied; the kiosk login is a stub.
func (s *Session) Login(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("enter a company email address")
	}
	s.Email = email
	return s.Go(StepVerifyOTP)
}

// VerifyOTP checks the entered code against the configured acceptance
// code. Nothing is sent anywhere and codes never expire; the whole OTP
// exchange is a static stub.
func (s *Session) VerifyOTP(entered, accept string) error {
	if entered != accept {
		return errors.New("wrong code, request a new one and try again")
	}
	return s.Go(StepMenu)
}

// UserID is the display identity, the local part of the email. Empty for
// anonymous sessions.
func (s *Session) UserID() string {
	if s.Email == "" {
		return ""
	}
	return strings.SplitN(s.Email, "@", 2)[0]
}

// AddToCart puts one unit of the item on the tray, subject to the
// per-item limit.
func (s *Session) AddToCart(item models.MenuItem, limit int) {
	s.Cart = AddItem(s.Cart, item, limit)
}

// RemoveFromCart takes one unit of the item off the tray.
func (s *Session) RemoveFromCart(itemID string) {
	s.Cart = RemoveItem(s.Cart, itemID)
}

// Totals derives the bill for the active cart.
func (s *Session) Totals() models.Totals {
	return ComputeTotals(s.Cart)
}

// Checkout finalizes the active cart into an order record, puts it at
// the head of the history and clears the cart, honoring the finalize
// contract that the caller owns cart clearing.
func (s *Session) Checkout(newID func() string, now func() time.Time) (models.OrderRecord, error) {
	if len(s.Cart) == 0 {
		return models.OrderRecord{}, ErrEmptyCart
	}
	rec := FinalizeOrder(s.Cart, ComputeTotals(s.Cart), newID, now, s.UserID())
	s.History = append([]models.OrderRecord{rec}, s.History...)
	s.Cart = nil
	return rec, nil
}

// Order returns the history record with the given ID.
func (s *Session) Order(id string) (models.OrderRecord, bool) {
	for _, o := range s.History {
		if o.ID == id {
			return o, true
		}
	}
	return models.OrderRecord{}, false
}

// AdvanceOrder applies a status transition to an order in the history.
func (s *Session) AdvanceOrder(id, newStatus string) error {
	for i := range s.History {
		if s.History[i].ID == id {
			return AdvanceOrderStatus(&s.History[i], newStatus)
		}
	}
	return fmt.Errorf("order %s not found", id)
}

// RevenueStats sums up the session's order history.
func (s *Session) RevenueStats() models.RevenueStats {
	return SessionRevenueStats(s.History)
}

// Logout drops the user identity and the active cart and returns to the
// landing screen. Order history stays for the session's lifetime.
func (s *Session) Logout() {
	s.Email = ""
	s.Cart = nil
	s.Step = StepLanding
}
