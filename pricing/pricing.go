// Package pricing combines a cart with a delivery method into totals and
// decides whether a checkout may go ahead.
package pricing

import (
	"strings"

	"laundryhub-backend/cart"

	"github.com/shopspring/decimal"
)

type DeliveryMethod int

const (
	// MethodUnset is the zero value; it carries no fee.
	MethodUnset DeliveryMethod = iota
	DropOff
	PickupService
)

// DefaultPickupFee is used when no fee is configured.
var DefaultPickupFee = decimal.RequireFromString("25.00")

func (m DeliveryMethod) String() string {
	switch m {
	case DropOff:
		return "dropoff"
	case PickupService:
		return "pickup"
	default:
		return "unset"
	}
}

// ParseDeliveryMethod accepts "dropoff", "dropby", "drop-off" and "pickup".
// Anything else yields MethodUnset.
func ParseDeliveryMethod(s string) DeliveryMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dropoff", "drop-off", "dropby", "drop_off":
		return DropOff
	case "pickup", "pickup-service", "pickup_service":
		return PickupService
	default:
		return MethodUnset
	}
}

type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Calculator holds the one pickup fee shared by every pricing path.
type Calculator struct {
	PickupFee decimal.Decimal
}

func NewCalculator(pickupFee decimal.Decimal) Calculator {
	if pickupFee.IsNegative() {
		pickupFee = decimal.Zero
	}
	return Calculator{PickupFee: pickupFee}
}

// DeliveryFee is zero for everything except PickupService.
func (calc Calculator) DeliveryFee(m DeliveryMethod) decimal.Decimal {
	if m == PickupService {
		return calc.PickupFee
	}
	return decimal.Zero
}

// ComputeTotals has no side effects and never fails.
func (calc Calculator) ComputeTotals(c *cart.Cart, m DeliveryMethod) Totals {
	subtotal := decimal.Zero
	if c != nil {
		subtotal = c.Subtotal()
	}
	fee := calc.DeliveryFee(m)
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
}

// AttemptCheckout only checks the precondition; it does not touch the cart.
// The caller clears the cart when this returns nil.
func AttemptCheckout(c *cart.Cart) error {
	if c == nil || c.IsEmpty() {
		return cart.ErrEmptyCart
	}
	return nil
}
