package config

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Settings is everything the service reads from the environment.
type Settings struct {
	Port        string
	DatabaseURL string

	JWTSecret      string
	JWTExpiryHours int

	PickupFee      decimal.Decimal
	CurrencySymbol string

	RedisURL string
	CartTTL  time.Duration

	CORSOrigins []string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioPhoneNumber    string
	TwilioWhatsAppNumber string
	ReminderCron         string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load reads settings from environment variables, applying defaults. Call
// godotenv.Load before this if a .env file should be honoured.
func Load() (*Settings, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("PICKUP_FEE", "25.00")
	v.SetDefault("CURRENCY_SYMBOL", "₱")
	v.SetDefault("CART_TTL_MINUTES", 120)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:8080")
	v.SetDefault("REMINDER_CRON", "0 9 * * *")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	fee, err := decimal.NewFromString(v.GetString("PICKUP_FEE"))
	if err != nil {
		return nil, errors.New("PICKUP_FEE is not a valid amount")
	}
	if fee.IsNegative() {
		return nil, errors.New("PICKUP_FEE must not be negative")
	}

	s := &Settings{
		Port:                 v.GetString("PORT"),
		DatabaseURL:          v.GetString("DB_URL"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTExpiryHours:       v.GetInt("JWT_EXPIRY_HOURS"),
		PickupFee:            fee,
		CurrencySymbol:       v.GetString("CURRENCY_SYMBOL"),
		RedisURL:             v.GetString("REDIS_URL"),
		CartTTL:              time.Duration(v.GetInt("CART_TTL_MINUTES")) * time.Minute,
		CORSOrigins:          splitList(v.GetString("CORS_ORIGINS")),
		TwilioAccountSID:     v.GetString("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      v.GetString("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:    v.GetString("TWILIO_PHONE_NUMBER"),
		TwilioWhatsAppNumber: v.GetString("TWILIO_WHATSAPP_NUMBER"),
		ReminderCron:         v.GetString("REMINDER_CRON"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
		LogFile:              v.GetString("LOG_FILE"),
	}
	if s.JWTExpiryHours <= 0 {
		s.JWTExpiryHours = 24
	}
	return s, nil
}

// TwilioEnabled reports whether SMS credentials are present.
func (s *Settings) TwilioEnabled() bool {
	return s.TwilioAccountSID != "" && s.TwilioAuthToken != ""
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
