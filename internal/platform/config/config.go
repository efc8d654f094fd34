package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Upstream rate provider
	ProviderBaseURL string
	ProviderTimeout time.Duration

	// Cache behaviour: zero TTL keeps entries until explicit invalidation.
	CacheTTL time.Duration

	// Requests per minute per client IP, applied to the public API group.
	RateLimitPerMinute int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PROVIDER_BASE_URL", "https://api.nbrb.by/exrates")
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("CACHE_TTL", "0s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.ProviderBaseURL = viper.GetString("PROVIDER_BASE_URL")

	providerTimeoutStr := viper.GetString("PROVIDER_TIMEOUT")
	providerTimeout, err := time.ParseDuration(providerTimeoutStr)
	if err != nil {
		log.Printf("Warning: Invalid PROVIDER_TIMEOUT format '%s'. Defaulting to 10s. Error: %v\n", providerTimeoutStr, err)
		providerTimeout = 10 * time.Second
	}
	cfg.ProviderTimeout = providerTimeout

	cacheTTLStr := viper.GetString("CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		log.Printf("Warning: Invalid CACHE_TTL format '%s'. Defaulting to no expiry. Error: %v\n", cacheTTLStr, err)
		cacheTTL = 0
	}
	cfg.CacheTTL = cacheTTL

	cfg.RateLimitPerMinute = viper.GetInt("RATE_LIMIT_PER_MINUTE")

	return cfg, nil
}
