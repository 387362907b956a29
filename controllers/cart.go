package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"laundryhub-backend/cart"
	"laundryhub-backend/catalog"
	"laundryhub-backend/logger"
	"laundryhub-backend/pricing"
	"laundryhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type AddToCartInput struct {
	Category string `json:"category"`
	ItemID   string `json:"itemId" binding:"required"`
}

type CheckoutInput struct {
	DeliveryMethod string `json:"deliveryMethod"`
}

// CartController serves the signed-in user's cart. The cart is keyed by user
// id, so each session sees exactly one cart.
type CartController struct {
	Carts   cart.Store
	Pricing pricing.Calculator
	Symbol  string
}

func (cc *CartController) symbol() string {
	if cc.Symbol == "" {
		return cart.DefaultCurrencySymbol
	}
	return cc.Symbol
}

func (cc *CartController) load(c *gin.Context) (string, *cart.Cart, bool) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		respondWithFailure(c, err)
		return "", nil, false
	}
	owner := userID.String()
	crt, err := cc.Carts.Load(c.Request.Context(), owner)
	if err != nil {
		respondWithFailure(c, err)
		return "", nil, false
	}
	return owner, crt, true
}

// GetCart returns the lines and the totals for ?delivery (drop-off when absent).
func (cc *CartController) GetCart(c *gin.Context) {
	_, crt, ok := cc.load(c)
	if !ok {
		return
	}
	method := pricing.DropOff
	if raw := c.Query("delivery"); raw != "" {
		method = pricing.ParseDeliveryMethod(raw)
	}
	c.JSON(http.StatusOK, cc.view(crt, method))
}

func (cc *CartController) AddItem(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	item, found := catalog.FindItem(input.Category, input.ItemID)
	if !found {
		utils.RespondWithNotice(c, http.StatusNotFound, "Item not found", "That item is no longer available.")
		return
	}

	owner, crt, ok := cc.load(c)
	if !ok {
		return
	}
	line := crt.AddItem(item, strings.TrimSpace(input.Category))
	if err := cc.Carts.Save(c.Request.Context(), owner, crt); err != nil {
		respondWithFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"title":   "Added to cart",
		"message": item.Name + " has been added to your cart.",
		"line":    line,
		"count":   crt.TotalItemCount(),
	})
}

// RemoveItem is a no-op for an unknown line id.
func (cc *CartController) RemoveItem(c *gin.Context) {
	owner, crt, ok := cc.load(c)
	if !ok {
		return
	}
	if crt.RemoveItem(c.Param("lineId")) {
		if err := cc.Carts.Save(c.Request.Context(), owner, crt); err != nil {
			respondWithFailure(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, cc.view(crt, pricing.DropOff))
}

func (cc *CartController) ClearCart(c *gin.Context) {
	owner, crt, ok := cc.load(c)
	if !ok {
		return
	}
	crt.Clear()
	if err := cc.Carts.Delete(c.Request.Context(), owner); err != nil {
		respondWithFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, cc.view(crt, pricing.DropOff))
}

// Checkout places the order for the chosen delivery method. An empty cart is
// rejected and left untouched. The body is optional.
func (cc *CartController) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	owner, crt, ok := cc.load(c)
	if !ok {
		return
	}
	session := pricing.NewCheckoutSession(cc.Pricing, crt)
	session.Open()
	if input.DeliveryMethod != "" {
		session.SelectMethod(pricing.ParseDeliveryMethod(input.DeliveryMethod))
	}

	lines := crt.TotalItemCount()
	totals, err := session.Checkout()
	if err != nil {
		respondWithFailure(c, err)
		return
	}
	if err := cc.Carts.Delete(c.Request.Context(), owner); err != nil {
		respondWithFailure(c, err)
		return
	}

	total := cart.FormatMoney(cc.symbol(), totals.Total)
	logger.Get().Info("order placed",
		"user_id", owner,
		"items", lines,
		"delivery", session.Method().String(),
		"total", totals.Total.StringFixed(2),
	)
	c.JSON(http.StatusOK, gin.H{
		"title":          "Order placed!",
		"message":        "Your order total is " + total + ". We'll contact you shortly.",
		"deliveryMethod": session.Method().String(),
		"totals":         cc.totalsView(totals),
	})
}

func (cc *CartController) view(crt *cart.Cart, method pricing.DeliveryMethod) gin.H {
	return gin.H{
		"items":          crt.Lines,
		"count":          crt.TotalItemCount(),
		"deliveryMethod": method.String(),
		"totals":         cc.totalsView(cc.Pricing.ComputeTotals(crt, method)),
	}
}

func (cc *CartController) totalsView(t pricing.Totals) gin.H {
	sym := cc.symbol()
	return gin.H{
		"subtotal":    t.Subtotal.StringFixed(2),
		"deliveryFee": t.DeliveryFee.StringFixed(2),
		"total":       t.Total.StringFixed(2),
		"display": gin.H{
			"subtotal":    cart.FormatMoney(sym, t.Subtotal),
			"deliveryFee": cart.FormatMoney(sym, t.DeliveryFee),
			"total":       cart.FormatMoney(sym, t.Total),
		},
	}
}
