package shipmondo

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

// MatchBinRewrites finds the items whose bin location matches pattern
// and computes each one's rewritten bin. Items without a bin are never
// matched. Results are sorted by SKU for stable output.
func MatchBinRewrites(items map[string]model.ShipmondoItem, pattern, replacement string) ([]model.BinRewrite, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid bin pattern: %w", err)
	}

	var rewrites []model.BinRewrite
	for _, item := range items {
		if item.Bin == "" || !re.MatchString(item.Bin) {
			continue
		}
		rewrites = append(rewrites, model.BinRewrite{
			ItemID:     item.ID,
			SKU:        item.SKU,
			Name:       item.Name,
			CurrentBin: item.Bin,
			NewBin:     re.ReplaceAllString(item.Bin, replacement),
		})
	}
	sort.Slice(rewrites, func(i, j int) bool { return rewrites[i].SKU < rewrites[j].SKU })
	return rewrites, nil
}

// ApplyBinRewrites pushes the rewrites to Shipmondo one by one. An
// empty new bin clears the item's location. Returns the rewrites that
// landed plus per-item errors for the rest.
func ApplyBinRewrites(ctx context.Context, client ClientService, rewrites []model.BinRewrite) ([]model.BinRewrite, []string) {
	var applied []model.BinRewrite
	var errs []string
	for _, rewrite := range rewrites {
		var err error
		if rewrite.NewBin == "" {
			err = client.ClearBinLocation(ctx, rewrite.ItemID)
		} else {
			err = client.UpdateBinLocation(ctx, rewrite.ItemID, rewrite.NewBin)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", rewrite.SKU, err))
			continue
		}
		applied = append(applied, rewrite)
	}
	return applied, errs
}
