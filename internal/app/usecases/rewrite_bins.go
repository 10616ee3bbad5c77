package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shipmondo"
	"github.com/frenzeldk/shopify-tools/internal/cache"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

type RewriteBinsService interface {
	Run(ctx context.Context) error
}

type ClientRewriteBins struct {
	shipmondoClient shipmondo.ClientService
	itemCache       *cache.ItemCache
	logger          logging.LoggerService

	pattern     string
	replacement string
	dryRun      bool
}

func NewRewriteBins(shipmondoClient shipmondo.ClientService, itemCache *cache.ItemCache, pattern, replacement string, dryRun bool, logger logging.LoggerService) RewriteBinsService {
	return &ClientRewriteBins{
		shipmondoClient: shipmondoClient,
		itemCache:       itemCache,
		logger:          logger,
		pattern:         pattern,
		replacement:     replacement,
		dryRun:          dryRun,
	}
}

// Run rewrites every bin location matching the pattern. In dry-run mode
// the matches are only printed; otherwise each one is pushed to
// Shipmondo and mirrored into the item cache.
func (c *ClientRewriteBins) Run(ctx context.Context) error {
	c.logger.Log(fmt.Sprintf("Bin rewrite started pattern=%q replacement=%q dry_run=%t",
		c.pattern, c.replacement, c.dryRun))

	if _, err := c.itemCache.Refresh(ctx); err != nil {
		c.logger.LogError("Error refreshing item cache", err)
		return err
	}

	rewrites, err := shipmondo.MatchBinRewrites(c.itemCache.Items(), c.pattern, c.replacement)
	if err != nil {
		return err
	}
	if len(rewrites) == 0 {
		c.logger.Log("No bins match the pattern")
		return nil
	}

	for _, rewrite := range rewrites {
		c.logger.Log(fmt.Sprintf("%s: %q -> %q", rewrite.SKU, rewrite.CurrentBin, rewrite.NewBin))
	}
	if c.dryRun {
		c.logger.Log(fmt.Sprintf("Dry run, %d bin(s) would change", len(rewrites)))
		return nil
	}

	applied, errs := shipmondo.ApplyBinRewrites(ctx, c.shipmondoClient, rewrites)
	for _, rewrite := range applied {
		c.itemCache.SetBin(rewrite.SKU, rewrite.NewBin)
	}
	if len(errs) > 0 {
		c.logger.LogWarning(fmt.Sprintf("Bin rewrite errors: %s", strings.Join(errs, "; ")))
	}
	c.logger.LogSuccess(fmt.Sprintf("Bin rewrite completed matched=%d updated=%d errors=%d",
		len(rewrites), len(applied), len(errs)))
	return nil
}
