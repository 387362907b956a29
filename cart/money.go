package cart

import "github.com/shopspring/decimal"

// DefaultCurrencySymbol is prefixed to every displayed amount unless
// configured otherwise.
const DefaultCurrencySymbol = "₱"

// FormatMoney renders amount with the currency symbol and exactly two decimal
// places, rounding half away from zero.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
