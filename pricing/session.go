package pricing

import "laundryhub-backend/cart"

type SurfaceState int

const (
	Closed SurfaceState = iota
	Open
)

func (s SurfaceState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// CheckoutSession is the open/closed checkout surface over one cart. The
// selected delivery method lives here, never in the cart.
type CheckoutSession struct {
	calc   Calculator
	cart   *cart.Cart
	method DeliveryMethod
	state  SurfaceState
}

// NewCheckoutSession starts closed with DropOff preselected.
func NewCheckoutSession(calc Calculator, c *cart.Cart) *CheckoutSession {
	return &CheckoutSession{calc: calc, cart: c, method: DropOff, state: Closed}
}

func (s *CheckoutSession) State() SurfaceState { return s.state }
func (s *CheckoutSession) Method() DeliveryMethod { return s.method }

func (s *CheckoutSession) Open() { s.state = Open }
func (s *CheckoutSession) Close() { s.state = Closed }
func (s *CheckoutSession) Cancel() { s.state = Closed }

func (s *CheckoutSession) SelectMethod(m DeliveryMethod) {
	s.method = m
}

func (s *CheckoutSession) Totals() Totals {
	return s.calc.ComputeTotals(s.cart, s.method)
}

// Checkout returns the totals that were charged. On ErrEmptyCart neither the
// cart nor the surface state changes; on success the cart is cleared and the
// surface closed.
func (s *CheckoutSession) Checkout() (Totals, error) {
	if err := AttemptCheckout(s.cart); err != nil {
		return Totals{}, err
	}
	totals := s.Totals()
	s.cart.Clear()
	s.state = Closed
	return totals, nil
}
