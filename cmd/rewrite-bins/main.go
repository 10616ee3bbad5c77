// Manual tool: regex rewrite of Shipmondo bin locations.
//
//	rewrite-bins -pattern '^A1' -replacement 'C3'
//	rewrite-bins -pattern '^A1' -replacement 'C3' -apply
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shipmondo"
	"github.com/frenzeldk/shopify-tools/internal/app/usecases"
	"github.com/frenzeldk/shopify-tools/internal/cache"
	"github.com/frenzeldk/shopify-tools/internal/config"
	infrahttp "github.com/frenzeldk/shopify-tools/internal/infra/http"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

func main() {
	pattern := flag.String("pattern", "", "regex matched against bin locations")
	replacement := flag.String("replacement", "", "replacement, capture groups as $1, $2")
	apply := flag.Bool("apply", false, "push the changes; default is a dry run")
	flag.Parse()

	if *pattern == "" {
		fmt.Println("error: -pattern is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadForShipmondo()
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel, cfg.TelegramBot)
	logger.Log(fmt.Sprintf("rewrite-bins run=%s", uuid.NewString()))

	httpClient := infrahttp.NewClient(cfg.Shipmondo.Timeout)
	shipmondoClient := shipmondo.NewClient(cfg.Shipmondo, httpClient, logger)
	itemCache := cache.NewItemCache(shipmondoClient, logger)

	rewrite := usecases.NewRewriteBins(shipmondoClient, itemCache, *pattern, *replacement, !*apply, logger)
	if err := rewrite.Run(context.Background()); err != nil {
		logger.LogError("rewrite-bins failed", err)
		os.Exit(1)
	}
}
