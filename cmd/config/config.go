package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Checkout    CheckoutConfig
	OrderSink   OrderSinkConfig
	Email       EmailConfig
	RabbitMQ    RabbitMQConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type CheckoutConfig struct {
	// UnitPrice is in centavos-free whole pesos, matching the storefront.
	UnitPrice     int64
	MaxQuantity   int
	PaymentWindow time.Duration
}

type OrderSinkConfig struct {
	// AppsScriptURL is the Google Apps Script order-processing endpoint.
	AppsScriptURL string
	Timeout       time.Duration
}

type EmailConfig struct {
	APIURL      string
	APIKey      string
	SenderEmail string
	OwnerEmail  string
	Timeout     time.Duration
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

// Load reads configuration from environment variables, loading .env first
// when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Checkout: CheckoutConfig{
			UnitPrice:     int64(getEnvInt("CHECKOUT_UNIT_PRICE", 299)),
			MaxQuantity:   getEnvInt("CHECKOUT_MAX_QUANTITY", 5),
			PaymentWindow: getEnvDuration("CHECKOUT_PAYMENT_WINDOW", 30*time.Minute),
		},
		OrderSink: OrderSinkConfig{
			AppsScriptURL: getEnv("APPS_SCRIPT_URL", ""),
			Timeout:       getEnvDuration("ORDER_SINK_TIMEOUT", 15*time.Second),
		},
		Email: EmailConfig{
			APIURL:      getEnv("RESEND_API_URL", "https://api.resend.com/emails"),
			APIKey:      getEnv("RESEND_API_KEY", ""),
			SenderEmail: getEnv("SENDER_EMAIL", "onboarding@resend.dev"),
			OwnerEmail:  getEnv("OWNER_EMAIL", "cwagoventures@gmail.com"),
			Timeout:     getEnvDuration("EMAIL_TIMEOUT", 10*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getEnvBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
