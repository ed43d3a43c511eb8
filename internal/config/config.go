package config

import "os"

// Config is read from the environment once at startup and passed by
// reference; read-only afterwards.
type Config struct {
	HTTPAddr        string
	StripeSecretKey string
	AdminPassword   string
	Currency        string
	SuccessURL      string
	CancelURL       string
	ServiceName     string
}

func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":3000"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		Currency:        getenv("CURRENCY", "aud"),
		SuccessURL:      getenv("SUCCESS_URL", "https://example.com/success"),
		CancelURL:       getenv("CANCEL_URL", "https://example.com/cancel"),
		ServiceName:     getenv("SERVICE_NAME", "hold-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
