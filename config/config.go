package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// MaxOrderIDLength is the width of a hex SHA-1 digest.
const MaxOrderIDLength = 40

// StorageConfig names the data files, one per store.
type StorageConfig struct {
	DataDir        string
	ProductsFile   string
	CategoriesFile string
	OrdersFile     string
	UsersFile      string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// CheckoutConfig holds checkout configuration
type CheckoutConfig struct {
	OrderIDLength int
}

// Config holds all configuration
type Config struct {
	Env      string
	Storage  StorageConfig
	Log      LogConfig
	Metrics  MetricsConfig
	Checkout CheckoutConfig
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Env: getEnv("APP_ENV", "development"),
		Storage: StorageConfig{
			DataDir:        getEnv("SHOP_DATA_DIR", "data"),
			ProductsFile:   getEnv("SHOP_PRODUCTS_FILE", "products.json"),
			CategoriesFile: getEnv("SHOP_CATEGORIES_FILE", "categories.json"),
			OrdersFile:     getEnv("SHOP_ORDERS_FILE", "orders.json"),
			UsersFile:      getEnv("SHOP_USERS_FILE", "users.json"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "shop"),
		},
		Checkout: CheckoutConfig{
			OrderIDLength: getEnvAsInt("ORDER_ID_LENGTH", MaxOrderIDLength),
		},
	}

	if n := cfg.Checkout.OrderIDLength; n < 1 || n > MaxOrderIDLength {
		cfg.Checkout.OrderIDLength = MaxOrderIDLength
	}
	if cfg.Storage.DataDir == "" {
		return nil, fmt.Errorf("SHOP_DATA_DIR must not be empty")
	}

	return cfg, nil
}

// Path joins the data directory and a file name.
func (c *Config) Path(name string) string {
	return filepath.Join(c.Storage.DataDir, name)
}

// ProductsPath returns the products file location.
func (c *Config) ProductsPath() string { return c.Path(c.Storage.ProductsFile) }

// CategoriesPath returns the categories file location.
func (c *Config) CategoriesPath() string { return c.Path(c.Storage.CategoriesFile) }

// OrdersPath returns the orders file location.
func (c *Config) OrdersPath() string { return c.Path(c.Storage.OrdersFile) }

// UsersPath returns the users file location.
func (c *Config) UsersPath() string { return c.Path(c.Storage.UsersFile) }

// LogFields returns the configuration as zap fields.
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("environment", c.Env),
		zap.String("data_dir", c.Storage.DataDir),
		zap.String("log_level", c.Log.Level),
		zap.Int("order_id_length", c.Checkout.OrderIDLength),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
