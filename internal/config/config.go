package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	AppEnv         string
	DBURL          string
	SecretKey      string
	PaymentMode    string
	PaymentURL     string
	PaymentAPIKey  string
	SimulatedDelay time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "development"),
		DBURL:          os.Getenv("DB_URL"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		PaymentMode:    getEnv("PAYMENT_MODE", "simulated"),
		PaymentURL:     os.Getenv("PAYMENT_URL"),
		PaymentAPIKey:  os.Getenv("PAYMENT_APIKEY"),
		SimulatedDelay: getEnvDuration("SIMULATED_DELAY_MS", 2000) * time.Millisecond,
	}

	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY not set in environment")
	}

	if cfg.PaymentMode == "http" && cfg.PaymentURL == "" {
		log.Fatal("PAYMENT_URL required when PAYMENT_MODE=http")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback int64) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return time.Duration(fallback)
	}
	return time.Duration(n)
}
