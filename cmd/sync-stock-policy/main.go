// Hourly job: vendor availability feed -> inventory policy bulk updates.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/frenzeldk/shopify-tools/internal/adapters/feed"
	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify"
	"github.com/frenzeldk/shopify-tools/internal/app/usecases"
	"github.com/frenzeldk/shopify-tools/internal/config"
	infrahttp "github.com/frenzeldk/shopify-tools/internal/infra/http"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

func main() {
	cfg, err := config.LoadForShopify()
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel, cfg.TelegramBot)
	logger.Log(fmt.Sprintf("sync-stock-policy run=%s", uuid.NewString()))

	httpClient := infrahttp.NewClient(infrahttp.MaxDuration(cfg.Shopify.Timeout, cfg.Feed.Timeout))
	feedClient := feed.NewClient(cfg.Feed, httpClient, logger)
	shopifyClient := shopify.NewClient(cfg.Shopify, httpClient, logger)

	sync := usecases.NewSyncStockPolicy(feedClient, shopifyClient, cfg.Feed, logger)
	if err := sync.Run(context.Background()); err != nil {
		logger.LogError("sync-stock-policy failed", err)
		os.Exit(1)
	}
}
