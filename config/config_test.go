package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, filepath.Join("data", "products.json"), cfg.ProductsPath())
	assert.Equal(t, filepath.Join("data", "categories.json"), cfg.CategoriesPath())
	assert.Equal(t, filepath.Join("data", "orders.json"), cfg.OrdersPath())
	assert.Equal(t, filepath.Join("data", "users.json"), cfg.UsersPath())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "shop", cfg.Metrics.Prefix)
	assert.Equal(t, MaxOrderIDLength, cfg.Checkout.OrderIDLength)
	assert.NotEmpty(t, cfg.LogFields())
}

func TestLoad_OrderIDLength(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "Shorter id", value: "20", expected: 20},
		{name: "Too long falls back", value: "64", expected: 40},
		{name: "Zero falls back", value: "0", expected: 40},
		{name: "Not a number falls back", value: "abc", expected: 40},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("ORDER_ID_LENGTH", tc.value)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.Checkout.OrderIDLength)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	t.Setenv("SHOP_DATA_DIR", dir)
	t.Setenv("SHOP_ORDERS_FILE", "history.json")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "history.json"), cfg.OrdersPath())
	assert.Equal(t, "production", cfg.Env)
}

func TestLoad_EmptyDataDir(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHOP_DATA_DIR", "")

	_, err := Load()
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
