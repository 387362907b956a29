package controllers

import (
	"net/http"
	"strings"
	"time"

	"laundryhub-backend/cart"
	"laundryhub-backend/catalog"
	"laundryhub-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	slotDays   = 3
	slotWindow = "9 AM - 11 AM"
)

type CatalogController struct {
	Symbol string
	Now    func() time.Time
}

type itemView struct {
	catalog.CatalogItem
	PriceLabel string `json:"priceLabel"`
}

type serviceView struct {
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Description    string     `json:"description"`
	PriceFromLabel string     `json:"price"`
	Items          []itemView `json:"items"`
}

type PickupSlot struct {
	ID       int    `json:"id"`
	Day      string `json:"day"`
	Date     string `json:"date"`
	FullDate string `json:"fullDate"`
	Time     string `json:"time"`
}

// GetServices lists every category with its items priced for display.
func (cc *CatalogController) GetServices(c *gin.Context) {
	symbol := cc.Symbol
	if symbol == "" {
		symbol = cart.DefaultCurrencySymbol
	}

	services := catalog.ListServices()
	out := make([]serviceView, 0, len(services))
	for _, s := range services {
		items := make([]itemView, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, itemView{CatalogItem: it, PriceLabel: cart.FormatMoney(symbol, it.UnitPrice)})
		}
		out = append(out, serviceView{
			Name:           s.Name,
			Slug:           catalog.Slug(s.Name),
			Description:    s.Description,
			PriceFromLabel: s.PriceFromLabel,
			Items:          items,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetPickupSlots offers one slot on each of the next three days, today first.
func (cc *CatalogController) GetPickupSlots(c *gin.Context) {
	now := time.Now()
	if cc.Now != nil {
		now = cc.Now()
	}

	slots := make([]PickupSlot, 0, slotDays)
	for i, day := range utils.NextDays(now, slotDays) {
		slots = append(slots, PickupSlot{
			ID:       i + 1,
			Day:      strings.ToUpper(day.Format("Mon")),
			Date:     strings.ToUpper(day.Format("Jan 02")),
			FullDate: day.Format("2006-01-02"),
			Time:     slotWindow,
		})
	}
	c.JSON(http.StatusOK, slots)
}
