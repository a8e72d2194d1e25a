// ABOUTME: Configuration loader for the storefront client
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// API
	BaseURL     string // storefront REST API base URL
	HTTPTimeout time.Duration

	// Durable client state (tokens, cart/custom-order identity codes)
	StatePath string

	// Query retry policy (transient failures only; mutations never retry)
	MaxRetries     int
	RetryBaseDelay time.Duration

	// Cache windows per resource. Stale: how long a cached result is
	// served without revalidation. GC: how long an unreferenced entry
	// is retained after its last consumer lets go.
	CategoriesStale time.Duration
	CategoriesGC    time.Duration
	ProductsStale   time.Duration
	ProductsGC      time.Duration
	CartStale       time.Duration
	CartGC          time.Duration
}

func Load() (*Config, error) {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:     ensureScheme(os.Getenv("STOREFRONT_API_URL")),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 30*time.Second),

		StatePath: getEnv("STOREFRONT_STATE_PATH", defaultStatePath()),

		MaxRetries:     getEnvInt("QUERY_MAX_RETRIES", 3),
		RetryBaseDelay: getEnvDuration("QUERY_RETRY_BASE_DELAY", 200*time.Millisecond),

		CategoriesStale: getEnvDuration("CATEGORIES_STALE", 30*time.Minute),
		CategoriesGC:    getEnvDuration("CATEGORIES_GC", 60*time.Minute),
		ProductsStale:   getEnvDuration("PRODUCTS_STALE", 5*time.Minute),
		ProductsGC:      getEnvDuration("PRODUCTS_GC", 10*time.Minute),
		CartStale:       getEnvDuration("CART_STALE", 5*time.Minute),
		CartGC:          getEnvDuration("CART_GC", 10*time.Minute),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("STOREFRONT_API_URL is required")
	}
	if cfg.MaxRetries < 0 || cfg.MaxRetries > 10 {
		return nil, fmt.Errorf("QUERY_MAX_RETRIES must be between 0 and 10, got %d", cfg.MaxRetries)
	}

	// GC shorter than stale would evict entries that are still fresh.
	for _, w := range []struct {
		name      string
		stale, gc time.Duration
	}{
		{"CATEGORIES", cfg.CategoriesStale, cfg.CategoriesGC},
		{"PRODUCTS", cfg.ProductsStale, cfg.ProductsGC},
		{"CART", cfg.CartStale, cfg.CartGC},
	} {
		if w.gc < w.stale {
			return nil, fmt.Errorf("%s_GC (%s) must not be shorter than %s_STALE (%s)", w.name, w.gc, w.name, w.stale)
		}
	}

	return cfg, nil
}

// defaultStatePath places durable state under the user config dir,
// falling back to the working directory when it cannot be resolved.
func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".storefront-state.json"
	}
	return filepath.Join(dir, "ronkz-couture", "state.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// ensureScheme adds https:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "https://" + url
	}
	return url
}
