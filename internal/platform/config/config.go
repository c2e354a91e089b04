package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// RateLimit uses the "<count>-<period>" format, e.g. "100-M" for 100
	// requests per minute.
	RateLimit string

	// DefaultDailyWithdrawalLimit is applied to new accounts created without
	// an explicit limit.
	DefaultDailyWithdrawalLimit decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("DEFAULT_DAILY_WITHDRAWAL_LIMIT", "1000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	limitStr := viper.GetString("DEFAULT_DAILY_WITHDRAWAL_LIMIT")
	limit, err := decimal.NewFromString(limitStr)
	if err != nil || limit.IsNegative() {
		limit = decimal.NewFromInt(1000)
		log.Printf("Warning: Invalid value for DEFAULT_DAILY_WITHDRAWAL_LIMIT ('%s'). Defaulting to %s.\n", limitStr, limit.String())
	}
	cfg.DefaultDailyWithdrawalLimit = limit

	return cfg, nil
}
