package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"laundryhub-backend/cart"
	"laundryhub-backend/config"
	"laundryhub-backend/controllers"
	"laundryhub-backend/logger"
	"laundryhub-backend/pricing"
	"laundryhub-backend/repository"
	"laundryhub-backend/routes"
	"laundryhub-backend/services"
	"laundryhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Config{
		Level:    settings.LogLevel,
		Format:   settings.LogFormat,
		FilePath: settings.LogFile,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	log := logger.Get()

	db, err := config.ConnectDB(settings.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := config.Migrate(db); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	secret := settings.JWTSecret
	if secret == "" && settings.LogLevel == "debug" {
		if secret, err = utils.GenerateJWTSecret(); err != nil {
			log.Error("jwt secret", "error", err)
			os.Exit(1)
		}
		log.Warn("JWT_SECRET not set, signing with a random key; sessions end on restart")
	}
	tokens, err := utils.NewTokenIssuer(secret, settings.JWTExpiryHours)
	if err != nil {
		log.Error("token issuer", "error", err)
		os.Exit(1)
	}

	carts, err := newCartStore(settings)
	if err != nil {
		log.Error("cart store", "error", err)
		os.Exit(1)
	}

	var notifier services.Notifier = services.LogNotifier{}
	if settings.TwilioEnabled() {
		notifier = services.NewTwilioNotifier(
			settings.TwilioAccountSID,
			settings.TwilioAuthToken,
			settings.TwilioPhoneNumber,
			settings.TwilioWhatsAppNumber,
		)
	} else {
		log.Warn("twilio credentials missing, messages will only be logged")
	}

	users := repository.NewUserRepository(db)
	bookings := repository.NewBookingRepository(db)
	bookingNotifier := services.NewBookingNotifier(notifier, bookings, repository.NewNotificationLogRepository(db))
	if err := bookingNotifier.StartScheduler(settings.ReminderCron); err != nil {
		log.Error("reminder scheduler", "error", err)
		os.Exit(1)
	}
	defer bookingNotifier.Stop()

	if settings.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.SetupRouter(routes.Handlers{
		Auth:    &controllers.AuthController{Users: users, Tokens: tokens, Notifier: notifier},
		Catalog: &controllers.CatalogController{Symbol: settings.CurrencySymbol},
		Cart: &controllers.CartController{
			Carts:   carts,
			Pricing: pricing.NewCalculator(settings.PickupFee),
			Symbol:  settings.CurrencySymbol,
		},
		Booking:     &controllers.BookingController{Bookings: bookings, Confirmer: bookingNotifier},
		Tokens:      tokens,
		AuthLimiter: utils.NewRateLimiter(20, 5),
		CORSOrigins: settings.CORSOrigins,
	})
	printRoutes(r)

	log.Info("server starting", "port", settings.Port)
	if err := r.Run(":" + settings.Port); err != nil {
		log.Error("server stopped", "error", err)
	}
}

// newCartStore uses Redis when REDIS_URL is set and an in-process map otherwise.
func newCartStore(s *config.Settings) (cart.Store, error) {
	if s.RedisURL == "" {
		logger.Get().Warn("REDIS_URL not set, carts are kept in memory")
		return cart.NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(s.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return cart.NewRedisStore(client, s.CartTTL), nil
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		logger.Get().Debug("route", "method", route.Method, "path", route.Path)
	}
}
