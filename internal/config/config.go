package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration for the admin gateway
type Config struct {
	// Port the gateway listens on
	Port string
	// APIBaseURL is the remote InvoiceNG API root, e.g. https://api.invoiceng.app/api/v1
	APIBaseURL string
	// PayBaseURL is the public payment-page origin used in WhatsApp share links
	PayBaseURL string
	// SessionDBPath is the SQLite file holding the persisted session.
	// Empty means in-memory only (session lost on restart).
	SessionDBPath string
	// StaleTime is how long cached reads are served without revalidation
	StaleTime time.Duration
	// PollInterval is how often the conversations poller refreshes
	PollInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Call godotenv before this in local development.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		APIBaseURL:    getEnv("INVOICENG_API_URL", "http://localhost:8080/api/v1"),
		PayBaseURL:    getEnv("INVOICENG_PAY_URL", "https://pay.invoiceng.app"),
		SessionDBPath: getEnv("SESSION_DB_PATH", "invoiceng.db"),
		StaleTime:     getDuration("CACHE_STALE_TIME", 30*time.Second),
		PollInterval:  getDuration("CONVERSATION_POLL_INTERVAL", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// Plain numbers are treated as seconds
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
