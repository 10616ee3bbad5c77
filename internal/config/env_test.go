package config

import "testing"

func clearCredentials(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SHOPIFY_SHOP_DOMAIN", "SHOPIFY_API_KEY",
		"SHIPMONDO_API_USER", "SHIPMONDO_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadForShipmondoWithoutShopifyCredentials(t *testing.T) {
	clearCredentials(t)
	t.Setenv("SHIPMONDO_API_USER", "user")
	t.Setenv("SHIPMONDO_API_KEY", "key")

	cfg, err := LoadForShipmondo()
	if err != nil {
		t.Fatalf("shipmondo-only commands must not need shopify credentials: %v", err)
	}
	if cfg.Shipmondo.APIUser != "user" || cfg.Shipmondo.APIKey != "key" {
		t.Errorf("shipmondo config = %+v", cfg.Shipmondo)
	}
}

func TestLoadForShipmondoMissingCredentials(t *testing.T) {
	clearCredentials(t)
	if _, err := LoadForShipmondo(); err == nil {
		t.Error("expected error without shipmondo credentials")
	}
}

func TestLoadForShopifyMissingCredentials(t *testing.T) {
	clearCredentials(t)
	t.Setenv("SHIPMONDO_API_USER", "user")
	t.Setenv("SHIPMONDO_API_KEY", "key")
	if _, err := LoadForShopify(); err == nil {
		t.Error("expected error without shopify credentials")
	}
}

func TestLoadForOrderSyncNeedsBoth(t *testing.T) {
	clearCredentials(t)
	t.Setenv("SHOPIFY_SHOP_DOMAIN", "shop.example.com")
	t.Setenv("SHOPIFY_API_KEY", "token")
	if _, err := LoadForOrderSync(); err == nil {
		t.Error("expected error without shipmondo credentials")
	}

	t.Setenv("SHIPMONDO_API_USER", "user")
	t.Setenv("SHIPMONDO_API_KEY", "key")
	if _, err := LoadForOrderSync(); err != nil {
		t.Errorf("both credential sets present: %v", err)
	}
}
