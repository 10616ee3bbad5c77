// Periodic job: resume paused orders whose stock has come back.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shipmondo"
	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify"
	"github.com/frenzeldk/shopify-tools/internal/app/usecases"
	"github.com/frenzeldk/shopify-tools/internal/config"
	infrahttp "github.com/frenzeldk/shopify-tools/internal/infra/http"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

func main() {
	cfg, err := config.LoadForOrderSync()
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel, cfg.TelegramBot)
	logger.Log(fmt.Sprintf("resume-orders run=%s", uuid.NewString()))

	httpClient := infrahttp.NewClient(infrahttp.MaxDuration(cfg.Shopify.Timeout, cfg.Shipmondo.Timeout))
	shopifyClient := shopify.NewClient(cfg.Shopify, httpClient, logger)
	shipmondoClient := shipmondo.NewClient(cfg.Shipmondo, httpClient, logger)

	resume := usecases.NewResumeOrders(shopifyClient, shipmondoClient, logger)
	if err := resume.Run(context.Background()); err != nil {
		logger.LogError("resume-orders failed", err)
		os.Exit(1)
	}
}
