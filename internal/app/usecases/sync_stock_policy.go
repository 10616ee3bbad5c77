package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/adapters/feed"
	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify"
	"github.com/frenzeldk/shopify-tools/internal/config"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

const (
	policyContinue = "CONTINUE"
	policyDeny     = "DENY"
)

// StockPolicyService is the Shopify surface the policy sync needs.
type StockPolicyService interface {
	FetchProductsByVendors(ctx context.Context, vendors []string) (map[string]model.ShopifyProduct, error)
	SetInventoryPolicies(ctx context.Context, productID string, updates []shopify.VariantPolicyUpdate) ([]string, error)
}

type SyncStockPolicyService interface {
	Run(ctx context.Context) error
}

type ClientStockPolicy struct {
	feedClient    feed.ClientService
	shopifyClient StockPolicyService
	logger        logging.LoggerService
	feedConfig    config.FeedConfig
}

func NewSyncStockPolicy(feedClient feed.ClientService, shopifyClient StockPolicyService, feedConfig config.FeedConfig, logger logging.LoggerService) SyncStockPolicyService {
	return &ClientStockPolicy{
		feedClient:    feedClient,
		shopifyClient: shopifyClient,
		logger:        logger,
		feedConfig:    feedConfig,
	}
}

// Run aligns every variant's inventory policy with the vendor's
// availability feed: CONTINUE while the vendor can deliver, DENY
// otherwise. Only variants whose policy differs are written, one bulk
// update per product; a product's userErrors are logged and the sync
// keeps going.
func (c *ClientStockPolicy) Run(ctx context.Context) error {
	if len(c.feedConfig.Vendors) == 0 {
		return fmt.Errorf("no vendors configured")
	}
	c.logger.Log("Stock policy sync started")

	availability, err := c.feedClient.FetchAvailability(ctx, c.feedConfig.IDColumn, c.feedConfig.AvailabilityColumn)
	if err != nil {
		c.logger.LogError("Error fetching availability feed", err)
		return err
	}

	catalog, err := c.shopifyClient.FetchProductsByVendors(ctx, c.feedConfig.Vendors)
	if err != nil {
		c.logger.LogError("Error fetching catalog", err)
		return err
	}

	changed := 0
	productErrors := 0
	for productID, product := range catalog {
		var updates []shopify.VariantPolicyUpdate
		for sku, variant := range product.Variants {
			expected := policyDeny
			if availability[sku] == "ja" {
				expected = policyContinue
			}
			if variant.InventoryPolicy == expected {
				continue
			}
			updates = append(updates, shopify.VariantPolicyUpdate{
				VariantID: variant.ID,
				SKU:       sku,
				Policy:    expected,
			})
		}
		if len(updates) == 0 {
			continue
		}

		userErrors, err := c.shopifyClient.SetInventoryPolicies(ctx, productID, updates)
		if err != nil {
			productErrors++
			c.logger.LogError(fmt.Sprintf("Error updating policies for %s", product.Title), err)
			continue
		}
		if len(userErrors) > 0 {
			productErrors++
			c.logger.LogWarning(fmt.Sprintf("Policy update for %s: %s", product.Title, strings.Join(userErrors, "; ")))
			continue
		}
		changed += len(updates)
	}

	c.logger.LogSuccess(fmt.Sprintf("Stock policy sync completed products=%d changed_variants=%d product_errors=%d",
		len(catalog), changed, productErrors))
	return nil
}
