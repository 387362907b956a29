package pricing

import (
	"testing"

	"laundryhub-backend/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutSession_InitialState(t *testing.T) {
	s := NewCheckoutSession(NewCalculator(DefaultPickupFee), cart.New())
	assert.Equal(t, Closed, s.State())
	assert.Equal(t, DropOff, s.Method())
}

func TestCheckoutSession_Transitions(t *testing.T) {
	s := NewCheckoutSession(NewCalculator(DefaultPickupFee), cart.New())

	s.Open()
	assert.Equal(t, Open, s.State())
	s.Close()
	assert.Equal(t, Closed, s.State())

	s.Open()
	s.Cancel()
	assert.Equal(t, Closed, s.State())
}

func TestCheckoutSession_MethodDoesNotTouchCart(t *testing.T) {
	c := priced("2.50", "4.50")
	s := NewCheckoutSession(NewCalculator(dec("25.00")), c)
	s.Open()

	assertTotals(t, s.Totals(), "7.00", "0.00", "7.00")
	s.SelectMethod(PickupService)
	assertTotals(t, s.Totals(), "7.00", "25.00", "32.00")
	assert.Equal(t, 2, c.TotalItemCount())
}

func TestCheckoutSession_EmptyCartStaysOpen(t *testing.T) {
	c := cart.New()
	s := NewCheckoutSession(NewCalculator(DefaultPickupFee), c)
	s.Open()

	_, err := s.Checkout()
	require.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Equal(t, Open, s.State())
	assert.True(t, c.IsEmpty())
}

func TestCheckoutSession_SuccessClearsAndCloses(t *testing.T) {
	c := priced("2.50", "4.50")
	s := NewCheckoutSession(NewCalculator(dec("25.00")), c)
	s.Open()
	s.SelectMethod(PickupService)

	totals, err := s.Checkout()
	require.NoError(t, err)
	assertTotals(t, totals, "7.00", "25.00", "32.00")
	assert.Equal(t, Closed, s.State())
	assert.Equal(t, 0, c.TotalItemCount())
}
