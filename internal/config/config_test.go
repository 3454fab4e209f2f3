package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-kasir/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":                   "",
		"LOG_FORMAT":                "",
		"LOG_LEVEL":                 "",
		"DISCOUNT_CARDS_PATH":       "",
		"RESULT_PATH":               "",
		"DISCOUNT_FALLBACK_PERCENT": "",
		"WHOLESALE_MIN_QTY":         "",
		"WHOLESALE_PERCENT":         "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "discountCards.csv", cfg.DiscountCardsPath)
	require.Equal(t, "result.csv", cfg.ResultPath)
	require.Equal(t, 2, cfg.DiscountFallbackPercent)
	require.Equal(t, 5, cfg.WholesaleMinQty)
	require.Equal(t, 10, cfg.WholesalePercent)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"DISCOUNT_CARDS_PATH":       "/data/cards.csv",
		"RESULT_PATH":               "/out/receipt.csv",
		"DISCOUNT_FALLBACK_PERCENT": "3",
	})
	require.NoError(t, err)
	require.Equal(t, "/data/cards.csv", cfg.DiscountCardsPath)
	require.Equal(t, "/out/receipt.csv", cfg.ResultPath)
	require.Equal(t, 3, cfg.DiscountFallbackPercent)
}

func TestLoadRejectsOutOfRangePercent(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"DISCOUNT_FALLBACK_PERCENT": "101",
	})
	require.Error(t, err)
}
