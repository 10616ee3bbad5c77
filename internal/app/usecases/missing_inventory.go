package usecases

import (
	"context"
	"fmt"

	"github.com/frenzeldk/shopify-tools/internal/domain/model"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

// InventoryReportService is the Shopify surface the purchase report
// needs.
type InventoryReportService interface {
	FetchMissingInventory(ctx context.Context, vendor string) ([]model.MissingInventoryRow, error)
	BrandInventoryValue(ctx context.Context, vendor string) (float64, error)
}

type MissingInventoryService interface {
	Run(ctx context.Context) error
}

type ClientMissingInventory struct {
	shopifyClient InventoryReportService
	logger        logging.LoggerService
	vendor        string
}

func NewMissingInventory(shopifyClient InventoryReportService, vendor string, logger logging.LoggerService) MissingInventoryService {
	return &ClientMissingInventory{
		shopifyClient: shopifyClient,
		logger:        logger,
		vendor:        vendor,
	}
}

// Run prints the purchase list: every variant whose stock, incoming
// included, is still below zero. With a vendor set the report is
// narrowed to that vendor and its total inventory value is appended.
func (c *ClientMissingInventory) Run(ctx context.Context) error {
	c.logger.Log("Missing inventory report started")

	rows, err := c.shopifyClient.FetchMissingInventory(ctx, c.vendor)
	if err != nil {
		c.logger.LogError("Error fetching missing inventory", err)
		return err
	}

	total := 0
	for _, row := range rows {
		total += row.MissingQty
		c.logger.Log(fmt.Sprintf("%s | %s | %s (%s) | missing %d",
			row.SKU, row.Barcode, row.ProductTitle, row.Title, row.MissingQty))
	}

	if c.vendor != "" {
		value, err := c.shopifyClient.BrandInventoryValue(ctx, c.vendor)
		if err != nil {
			c.logger.LogError("Error computing inventory value", err)
			return err
		}
		c.logger.Log(fmt.Sprintf("Inventory value for %s: %.2f DKK", c.vendor, value))
	}

	c.logger.LogSuccess(fmt.Sprintf("Missing inventory report completed variants=%d total_missing=%d",
		len(rows), total))
	return nil
}
