package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Tokens are issued by the external identity service; we only verify them.
	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	APIRateLimit       string
	PosthogAPIKey      string

	// Exchange rate provider
	RateProviderBaseURL string
	RateProviderTimeout time.Duration
	RateProviderRPS     float64
	RateProviderBurst   int
	RateCacheTTL        time.Duration // 0 disables caching
	RateCacheRedisURL   string

	// What a call site substitutes when no rate is known.
	TradeRateFallback  domain.RateFallback
	RebaseRateFallback domain.RateFallback
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("AUTH_JWT_SECRET", "")
	v.SetDefault("AUTH_JWT_ISSUER", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("API_RATE_LIMIT", "100-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("RATE_PROVIDER_BASE_URL", "https://open.er-api.com/v6")
	v.SetDefault("RATE_PROVIDER_TIMEOUT", "10s")
	v.SetDefault("RATE_PROVIDER_RPS", 5.0)
	v.SetDefault("RATE_PROVIDER_BURST", 5)
	v.SetDefault("RATE_CACHE_TTL", "1h")
	v.SetDefault("RATE_CACHE_REDIS_URL", "")
	v.SetDefault("TRADE_RATE_FALLBACK", string(domain.FallbackZero))
	v.SetDefault("REBASE_RATE_FALLBACK", string(domain.FallbackIdentity))
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
		JWTSecret:           v.GetString("AUTH_JWT_SECRET"),
		JWTIssuer:           v.GetString("AUTH_JWT_ISSUER"),
		APIRateLimit:        v.GetString("API_RATE_LIMIT"),
		PosthogAPIKey:       v.GetString("POSTHOG_API_KEY"),
		RateProviderBaseURL: strings.TrimRight(v.GetString("RATE_PROVIDER_BASE_URL"), "/"),
		RateProviderRPS:     v.GetFloat64("RATE_PROVIDER_RPS"),
		RateProviderBurst:   v.GetInt("RATE_PROVIDER_BURST"),
		RateCacheRedisURL:   v.GetString("RATE_CACHE_REDIS_URL"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("AUTH_JWT_SECRET must be set in production")
		}
		log.Println("Warning: AUTH_JWT_SECRET not set. Every authenticated request will be rejected.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	var err error
	if cfg.RateProviderTimeout, err = parseDuration(v, "RATE_PROVIDER_TIMEOUT", 10*time.Second, false); err != nil {
		return nil, err
	}
	if cfg.RateCacheTTL, err = parseDuration(v, "RATE_CACHE_TTL", time.Hour, true); err != nil {
		return nil, err
	}
	if cfg.RateProviderRPS <= 0 {
		return nil, fmt.Errorf("RATE_PROVIDER_RPS must be positive, got %v", cfg.RateProviderRPS)
	}
	if cfg.RateProviderBurst < 1 {
		cfg.RateProviderBurst = 1
	}

	if cfg.TradeRateFallback, err = domain.ParseRateFallback(v.GetString("TRADE_RATE_FALLBACK")); err != nil {
		return nil, fmt.Errorf("TRADE_RATE_FALLBACK: %w", err)
	}
	if cfg.RebaseRateFallback, err = domain.ParseRateFallback(v.GetString("REBASE_RATE_FALLBACK")); err != nil {
		return nil, fmt.Errorf("REBASE_RATE_FALLBACK: %w", err)
	}

	return cfg, nil
}

// parseDuration reads key as a Go duration. Zero is only accepted when allowZero is set.
func parseDuration(v *viper.Viper, key string, fallback time.Duration, allowZero bool) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if d < 0 || (d == 0 && !allowZero) {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}
