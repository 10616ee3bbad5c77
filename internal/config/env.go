package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIVersion = "2024-10"
	defaultTimeout    = 30 * time.Second
)

// Load reads the full configuration from the environment. A .env file in
// the working directory is merged in first when present. Credential
// presence is checked by the per-command loaders, not here.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Shopify: ShopifyConfig{
			ShopDomain: os.Getenv("SHOPIFY_SHOP_DOMAIN"),
			Token:      os.Getenv("SHOPIFY_API_KEY"),
			APIVer:     stringWithDefault("SHOPIFY_API_VERSION", defaultAPIVersion),
			Timeout:    durationWithDefault("SHOPIFY_TIMEOUT", defaultTimeout),
		},
		Shipmondo: ShipmondoConfig{
			BaseUrl: stringWithDefault("SHIPMONDO_BASE_URL", "https://app.shipmondo.com/api/public/v3"),
			APIUser: os.Getenv("SHIPMONDO_API_USER"),
			APIKey:  os.Getenv("SHIPMONDO_API_KEY"),
			Timeout: durationWithDefault("SHIPMONDO_TIMEOUT", 10*time.Second),
		},
		Feed: FeedConfig{
			Url:                os.Getenv("VENDOR_FEED_URL"),
			Timeout:            durationWithDefault("VENDOR_FEED_TIMEOUT", defaultTimeout),
			Vendors:            splitAndTrim(os.Getenv("VENDOR_NAMES")),
			IDColumn:           stringWithDefault("AVAILABILITY_ID_COLUMN", "id"),
			AvailabilityColumn: stringWithDefault("AVAILABILITY_COLUMN", "lieferbar"),
			ProductCategory:    os.Getenv("NEW_PRODUCT_CATEGORY"),
			ProductTags:        splitAndTrim(os.Getenv("NEW_PRODUCT_TAGS")),
		},
		TelegramBot: TelegramBotConfig{
			ChatId: os.Getenv("TELEGRAM_CHAT_ID"),
			Token:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		},
		LogLevel: stringWithDefault("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

// LoadForShopify validates the Shopify credentials on top of the base
// configuration.
func LoadForShopify() (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}
	if cfg.Shopify.ShopDomain == "" || cfg.Shopify.Token == "" {
		return Config{}, fmt.Errorf("missing required env var: SHOPIFY_SHOP_DOMAIN or SHOPIFY_API_KEY")
	}
	return cfg, nil
}

// LoadForShipmondo validates the Shipmondo credentials only; commands
// that never touch Shopify run without its credentials.
func LoadForShipmondo() (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}
	if cfg.Shipmondo.APIUser == "" || cfg.Shipmondo.APIKey == "" {
		return Config{}, fmt.Errorf("missing required env var: SHIPMONDO_API_USER or SHIPMONDO_API_KEY")
	}
	return cfg, nil
}

// LoadForOrderSync is the loader for commands that talk to both Shopify
// and Shipmondo.
func LoadForOrderSync() (Config, error) {
	cfg, err := LoadForShopify()
	if err != nil {
		return Config{}, err
	}
	if cfg.Shipmondo.APIUser == "" || cfg.Shipmondo.APIKey == "" {
		return Config{}, fmt.Errorf("missing required env var: SHIPMONDO_API_USER or SHIPMONDO_API_KEY")
	}
	return cfg, nil
}

func splitAndTrim(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func stringWithDefault(key, def string) string {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def
	}
	return variable
}

func durationWithDefault(key string, def time.Duration) time.Duration {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def
	}
	parsed, err := time.ParseDuration(variable)
	if err != nil {
		return def
	}
	return parsed
}
