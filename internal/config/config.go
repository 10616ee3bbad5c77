package config

import "time"

type Config struct {
	Shopify     ShopifyConfig
	Shipmondo   ShipmondoConfig
	Feed        FeedConfig
	TelegramBot TelegramBotConfig
	LogLevel    string
}

type ShopifyConfig struct {
	ShopDomain string
	Token      string
	APIVer     string
	Timeout    time.Duration
}

type ShipmondoConfig struct {
	BaseUrl string
	APIUser string
	APIKey  string
	Timeout time.Duration
}

type FeedConfig struct {
	Url     string
	Timeout time.Duration

	// Vendors are the storefront vendor names the feed covers; the first
	// one is used for new products.
	Vendors []string

	// Column names of the availability feed.
	IDColumn           string
	AvailabilityColumn string

	// Defaults applied to newly created products.
	ProductCategory string
	ProductTags     []string
}

type TelegramBotConfig struct {
	ChatId string
	Token  string
}
