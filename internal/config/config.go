package config

import (
	"fmt"
	"os"
)

// Config is the whole app configuration.
type Config struct {
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string

	JWTSecret string

	// Paystack: secret key signs webhook bodies and authorizes API calls,
	// public key goes to the client checkout.
	PaystackSecretKey string
	PaystackPublicKey string
	PaystackBaseURL   string

	SupportPhone string

	RedisAddr string

	// OTLP metrics. Empty endpoint disables export.
	OTELEndpoint    string
	OTELServiceName string
	OTELInsecure    bool

	GoEnv    string
	LogLevel string
}

// Load reads environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		PaystackPublicKey: os.Getenv("PAYSTACK_PUBLIC_KEY"),
		PaystackBaseURL:   getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),

		SupportPhone: os.Getenv("SUPPORT_PHONE"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		OTELEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTELServiceName: getEnv("OTEL_SERVICE_NAME", "marketplace-api"),
		OTELInsecure:    getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),

		GoEnv:    getEnv("GO_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// required
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.PaystackSecretKey == "" {
		return Config{}, fmt.Errorf("PAYSTACK_SECRET_KEY is required")
	}

	return cfg, nil
}

func getEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return def
	}
}
