package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"laundryhub-backend/cart"
	"laundryhub-backend/config"
	"laundryhub-backend/controllers"
	"laundryhub-backend/pricing"
	"laundryhub-backend/repository"
	"laundryhub-backend/services"
	"laundryhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRouter(t *testing.T, limiter *utils.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, config.Migrate(db))

	tokens, err := utils.NewTokenIssuer("routes-secret", 1)
	require.NoError(t, err)

	notifier := services.LogNotifier{}
	bookings := repository.NewBookingRepository(db)
	return SetupRouter(Handlers{
		Auth:    &controllers.AuthController{Users: repository.NewUserRepository(db), Tokens: tokens, Notifier: notifier},
		Catalog: &controllers.CatalogController{},
		Cart: &controllers.CartController{
			Carts:   cart.NewMemoryStore(),
			Pricing: pricing.NewCalculator(pricing.DefaultPickupFee),
		},
		Booking: &controllers.BookingController{
			Bookings:  bookings,
			Confirmer: services.NewBookingNotifier(notifier, bookings, repository.NewNotificationLogRepository(db)),
		},
		Tokens:      tokens,
		AuthLimiter: limiter,
		CORSOrigins: []string{"http://localhost:5173"},
	})
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, nil)
	w := call(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPublicRoutes(t *testing.T) {
	r := setupRouter(t, nil)
	for _, path := range []string{"/api/services", "/api/pickup-slots", "/api/booking/options"} {
		w := call(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupRouter(t, nil)
	for _, rt := range []struct{ method, path string }{
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/api/cart"},
		{http.MethodPost, "/api/cart/checkout"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodGet, "/api/bookings"},
	} {
		w := call(t, r, rt.method, rt.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, rt.path)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouter(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthRateLimited(t *testing.T) {
	r := setupRouter(t, utils.NewRateLimiter(1, 2))
	body := map[string]string{"email": "x@example.com", "password": "secret1"}

	call(t, r, http.MethodPost, "/auth/login", "", body)
	call(t, r, http.MethodPost, "/auth/login", "", body)
	w := call(t, r, http.MethodPost, "/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestShoppingJourney(t *testing.T) {
	r := setupRouter(t, nil)

	w := call(t, r, http.MethodPost, "/auth/signup", "", map[string]string{"email": "shop@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))

	w = call(t, r, http.MethodPost, "/api/cart/checkout", signup.Token, map[string]string{"deliveryMethod": "pickup"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = call(t, r, http.MethodPost, "/api/cart/items", signup.Token, map[string]string{"category": "WASH & FOLD", "itemId": "t-shirt"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = call(t, r, http.MethodPost, "/api/cart/items", signup.Token, map[string]string{"category": "WASH & FOLD", "itemId": "dress-shirt"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(t, r, http.MethodPost, "/api/cart/checkout", signup.Token, map[string]string{"deliveryMethod": "pickup"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "₱32.00")

	w = call(t, r, http.MethodGet, "/api/cart", signup.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}
