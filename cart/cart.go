// Package cart holds the items a customer has picked from the catalog during
// one browsing session.
package cart

import (
	"errors"
	"time"

	"laundryhub-backend/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when a checkout is attempted with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// Line is one addition of a catalog item. Adding the same item twice yields
// two lines; there is no quantity.
type Line struct {
	LineID       string          `json:"id"`
	ItemID       string          `json:"itemId"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"price"`
	ImageRef     string          `json:"image"`
	CategoryName string          `json:"service"`
	AddedAt      time.Time       `json:"addedAt"`
}

type Cart struct {
	Lines []Line `json:"items"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddItem appends a new line copied from item. It never fails.
func (c *Cart) AddItem(item catalog.CatalogItem, categoryName string) Line {
	if categoryName == "" {
		categoryName = item.CategoryName
	}
	line := Line{
		LineID:       newLineID(item.ItemID),
		ItemID:       item.ItemID,
		Name:         item.Name,
		UnitPrice:    item.UnitPrice,
		ImageRef:     item.ImageRef,
		CategoryName: categoryName,
		AddedAt:      time.Now().UTC(),
	}
	c.Lines = append(c.Lines, line)
	return line
}

// RemoveItem drops the line with lineID. It reports whether a line was removed.
func (c *Cart) RemoveItem(lineID string) bool {
	for i, l := range c.Lines {
		if l.LineID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// TotalItemCount is the number of lines.
func (c *Cart) TotalItemCount() int {
	return len(c.Lines)
}

// Subtotal sums the unit prices of all lines without rounding.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.Lines {
		sum = sum.Add(l.UnitPrice)
	}
	return sum
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func newLineID(itemID string) string {
	if itemID == "" {
		return uuid.NewString()
	}
	return itemID + "-" + uuid.NewString()
}
