// Package catalog holds the fixed table of laundry services and the priced
// items offered under each of them.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogItem is one priced entry under a service category. ItemID is only
// unique within its category.
type CatalogItem struct {
	ItemID       string          `json:"itemId"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ImageRef     string          `json:"image"`
	CategoryName string          `json:"category"`
}

// Service is a category of the catalog.
type Service struct {
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	PriceFromLabel string        `json:"price"`
	Items          []CatalogItem `json:"items"`
}

const (
	WashAndFold = "WASH & FOLD"
	Comforters  = "COMFORTERS"
	DryCleaning = "DRY CLEANING"
	Express     = "EXPRESS"
)

type entry struct {
	name  string
	price string
	image string
}

var services = []Service{
	build(WashAndFold,
		"Professional washing, drying, and folding service for your everyday clothes",
		"From ₱1.50/lb",
		[]entry{
			{"Denim Jacket", "6.50", "wash-fold/jacket.jpg"},
			{"T-Shirt", "2.50", "wash-fold/tshirt.jpg"},
			{"Jeans", "5.00", "wash-fold/jeans.jpg"},
			{"Dress Shirt", "4.50", "wash-fold/dress-shirt.jpg"},
			{"Polo Shirt", "3.50", "wash-fold/polo.jpg"},
			{"Hoodie", "7.00", "wash-fold/hoodie.jpg"},
			{"Sweater", "5.50", "wash-fold/sweater.jpg"},
			{"Pants", "4.50", "wash-fold/pants.jpg"},
			{"Shorts", "3.00", "wash-fold/shorts.jpg"},
			{"Skirt", "4.00", "wash-fold/skirt.jpg"},
		}),
	build(Comforters,
		"Special care for your bulky items including comforters, blankets, and duvets",
		"From ₱25/item",
		[]entry{
			{"Twin Comforter", "25.00", "comforters/twin-comforter.jpg"},
			{"Queen Comforter", "35.00", "comforters/queen-comforter.jpg"},
			{"King Comforter", "45.00", "comforters/king-comforter.jpg"},
			{"Duvet Cover", "30.00", "comforters/duvet.jpg"},
			{"Blanket", "20.00", "comforters/blanket.jpg"},
			{"Quilt", "28.00", "comforters/quilt.jpg"},
			{"Bedspread", "32.00", "comforters/bedspread.jpg"},
			{"Throw Blanket", "15.00", "comforters/throw.jpg"},
			{"Sleeping Bag", "25.00", "comforters/sleeping-bag.jpg"},
			{"Pillow", "12.00", "comforters/pillow.jpg"},
		}),
	build(DryCleaning,
		"Expert dry cleaning for delicate fabrics, suits, dresses, and formal wear",
		"From ₱8/item",
		[]entry{
			{"Suit Jacket", "12.00", "dry-cleaning/suit-jacket.jpg"},
			{"Dress Pants", "8.00", "dry-cleaning/dress-pants.jpg"},
			{"Dress", "15.00", "dry-cleaning/dress.jpg"},
			{"Formal Gown", "25.00", "dry-cleaning/gown.jpg"},
			{"Blazer", "11.00", "dry-cleaning/blazer.jpg"},
			{"Winter Coat", "18.00", "dry-cleaning/coat.jpg"},
			{"Trench Coat", "16.00", "dry-cleaning/trench-coat.jpg"},
			{"Silk Blouse", "10.00", "dry-cleaning/silk-blouse.jpg"},
			{"Wool Sweater", "9.00", "dry-cleaning/wool-sweater.jpg"},
			{"Necktie", "6.00", "dry-cleaning/tie.jpg"},
		}),
	build(Express,
		"Same-day service for when you need your laundry done fast",
		"24-hour turnaround",
		[]entry{
			{"Denim Jacket", "10.00", "wash-fold/jacket.jpg"},
			{"T-Shirt", "4.50", "wash-fold/tshirt.jpg"},
			{"Jeans", "8.00", "wash-fold/jeans.jpg"},
			{"Dress Shirt", "7.00", "wash-fold/dress-shirt.jpg"},
			{"Polo Shirt", "5.50", "wash-fold/polo.jpg"},
			{"Hoodie", "11.00", "wash-fold/hoodie.jpg"},
			{"Sweater", "8.50", "wash-fold/sweater.jpg"},
			{"Pants", "7.00", "wash-fold/pants.jpg"},
			{"Shorts", "5.00", "wash-fold/shorts.jpg"},
			{"Skirt", "6.50", "wash-fold/skirt.jpg"},
		}),
}

// Booking form service types. These are labels, not catalog categories.
var serviceTypes = []string{"Wash & Fold", "Dry Cleaning", "Comforters", "All Services"}

func build(name, description, from string, entries []entry) Service {
	items := make([]CatalogItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, CatalogItem{
			ItemID:       Slug(e.name),
			Name:         e.name,
			UnitPrice:    decimal.RequireFromString(e.price),
			ImageRef:     e.image,
			CategoryName: name,
		})
	}
	return Service{Name: name, Description: description, PriceFromLabel: from, Items: items}
}

// ListServices returns the catalog in display order. The result is a copy.
func ListServices() []Service {
	out := make([]Service, len(services))
	for i, s := range services {
		s.Items = append([]CatalogItem(nil), s.Items...)
		out[i] = s
	}
	return out
}

// FindItem looks an item up by its category and item id. Both are matched
// case-insensitively.
func FindItem(categoryName, itemID string) (CatalogItem, bool) {
	for _, s := range services {
		if !strings.EqualFold(s.Name, strings.TrimSpace(categoryName)) {
			continue
		}
		for _, it := range s.Items {
			if strings.EqualFold(it.ItemID, strings.TrimSpace(itemID)) {
				return it, true
			}
		}
		return CatalogItem{}, false
	}
	return CatalogItem{}, false
}

// ServiceTypes lists the labels accepted by the booking form.
func ServiceTypes() []string {
	return append([]string(nil), serviceTypes...)
}

// IsServiceType reports whether label is one of ServiceTypes.
func IsServiceType(label string) bool {
	for _, t := range serviceTypes {
		if t == label {
			return true
		}
	}
	return false
}

// Slug turns a display name into an item id: "Denim Jacket" -> "denim-jacket".
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
