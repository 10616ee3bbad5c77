// Manual tool: purchase list of variants still missing stock.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify"
	"github.com/frenzeldk/shopify-tools/internal/app/usecases"
	"github.com/frenzeldk/shopify-tools/internal/config"
	infrahttp "github.com/frenzeldk/shopify-tools/internal/infra/http"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

func main() {
	vendor := flag.String("vendor", "", "limit the report to one vendor")
	flag.Parse()

	cfg, err := config.LoadForShopify()
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel, cfg.TelegramBot)
	logger.Log(fmt.Sprintf("missing-inventory run=%s", uuid.NewString()))

	httpClient := infrahttp.NewClient(cfg.Shopify.Timeout)
	shopifyClient := shopify.NewClient(cfg.Shopify, httpClient, logger)

	report := usecases.NewMissingInventory(shopifyClient, *vendor, logger)
	if err := report.Run(context.Background()); err != nil {
		logger.LogError("missing-inventory failed", err)
		os.Exit(1)
	}
}
