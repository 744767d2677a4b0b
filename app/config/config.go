package config

import (
	"os"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Uploads UploadConfig
	Stripe  StripeConfig
}

type ServerConfig struct {
	Addr string
	// PublicURL is the externally reachable base URL, used for Stripe
	// success/cancel redirects.
	PublicURL string
}

type DBConfig struct {
	Path string
}

type UploadConfig struct {
	Dir string
}

type StripeConfig struct {
	SecretKey     string
	PriceID       string
	WebhookSecret string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:      getenvDefault("LISTEN_ADDR", "0.0.0.0:8000"),
			PublicURL: getenvDefault("PUBLIC_URL", "http://localhost:8000"),
		},
		DB: DBConfig{
			Path: getenvDefault("DB_PATH", "golf_swing.db"),
		},
		Uploads: UploadConfig{
			Dir: getenvDefault("UPLOAD_DIR", "uploads"),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			PriceID:       os.Getenv("STRIPE_PRICE_ID"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
