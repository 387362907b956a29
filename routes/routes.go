package routes

import (
	"net/http"
	"time"

	"laundryhub-backend/config"
	"laundryhub-backend/controllers"
	"laundryhub-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *controllers.AuthController
	Catalog     *controllers.CatalogController
	Cart        *controllers.CartController
	Booking     *controllers.BookingController
	Tokens      *utils.TokenIssuer
	AuthLimiter *utils.RateLimiter
	CORSOrigins []string
}

func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(h.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     h.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := utils.AuthMiddleware(h.Tokens)

	auth := r.Group("/auth")
	{
		limited := auth.Group("")
		if h.AuthLimiter != nil {
			limited.Use(h.AuthLimiter.Middleware())
		}
		limited.POST("/signup", h.Auth.Signup)
		limited.POST("/login", h.Auth.Login)
		limited.POST("/password-reset", h.Auth.RequestPasswordReset)
		limited.POST("/password-reset/confirm", h.Auth.ConfirmPasswordReset)

		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", requireAuth, h.Auth.Me)
	}

	api := r.Group("/api")
	{
		// Public storefront
		api.GET("/services", h.Catalog.GetServices)
		api.GET("/pickup-slots", h.Catalog.GetPickupSlots)
		api.GET("/booking/options", h.Booking.GetBookingOptions)

		carts := api.Group("/cart", requireAuth)
		{
			carts.GET("", h.Cart.GetCart)
			carts.DELETE("", h.Cart.ClearCart)
			carts.POST("/items", h.Cart.AddItem)
			carts.DELETE("/items/:lineId", h.Cart.RemoveItem)
			carts.POST("/checkout", h.Cart.Checkout)
		}

		bookings := api.Group("/bookings", requireAuth)
		{
			bookings.POST("", h.Booking.CreateBooking)
			bookings.GET("", h.Booking.GetBookings)
			bookings.GET("/:id", h.Booking.GetBooking)
			bookings.DELETE("/:id", h.Booking.DeleteBooking)
		}
	}

	return r
}
