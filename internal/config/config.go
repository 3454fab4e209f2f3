package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/noah-isme/toko-kasir/internal/common"
)

// Config holds application configuration loaded from the environment. The
// defaults reproduce the merchant policy exactly, so an empty environment is
// a valid one.
type Config struct {
	AppEnv                  string
	LogFormat               string
	LogLevel                string
	DiscountCardsPath       string
	ResultPath              string
	DiscountFallbackPercent int
	WholesaleMinQty         int
	WholesalePercent        int
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:                  valueOrDefault(k.String("APP_ENV"), "development"),
		LogFormat:               valueOrDefault(k.String("LOG_FORMAT"), "json"),
		LogLevel:                valueOrDefault(k.String("LOG_LEVEL"), "info"),
		DiscountCardsPath:       valueOrDefault(k.String("DISCOUNT_CARDS_PATH"), "discountCards.csv"),
		ResultPath:              valueOrDefault(k.String("RESULT_PATH"), "result.csv"),
		DiscountFallbackPercent: common.AtoiDefault(k.String("DISCOUNT_FALLBACK_PERCENT"), 2),
		WholesaleMinQty:         common.AtoiDefault(k.String("WHOLESALE_MIN_QTY"), 5),
		WholesalePercent:        common.AtoiDefault(k.String("WHOLESALE_PERCENT"), 10),
	}

	if cfg.DiscountFallbackPercent < 0 || cfg.DiscountFallbackPercent > 100 {
		return nil, fmt.Errorf("DISCOUNT_FALLBACK_PERCENT must be between 0 and 100, got %d", cfg.DiscountFallbackPercent)
	}
	if cfg.WholesaleMinQty < 1 {
		return nil, fmt.Errorf("WHOLESALE_MIN_QTY must be at least 1, got %d", cfg.WholesaleMinQty)
	}
	if cfg.WholesalePercent < 0 || cfg.WholesalePercent > 100 {
		return nil, fmt.Errorf("WHOLESALE_PERCENT must be between 0 and 100, got %d", cfg.WholesalePercent)
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
