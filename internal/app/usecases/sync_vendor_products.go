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

// ProductWriterService is the Shopify surface the vendor product sync
// needs.
type ProductWriterService interface {
	FetchProductsByVendors(ctx context.Context, vendors []string) (map[string]model.ShopifyProduct, error)
	CreateProduct(ctx context.Context, input shopify.ProductCreateInput) (model.ProductRef, error)
	DetectProductOptions(ctx context.Context, vendor string, rows []model.VendorRow) ([]shopify.DetectedOption, error)
	CreateProductOptions(ctx context.Context, productID string, options []shopify.DetectedOption) error
	AddVariants(ctx context.Context, productID string, rows []model.VendorRow, colorImageURLs map[string]string) (model.WriteResult, error)
}

type SyncVendorProductsService interface {
	Run(ctx context.Context) error
}

type ClientVendorProducts struct {
	feedClient    feed.ClientService
	shopifyClient ProductWriterService
	logger        logging.LoggerService
	feedConfig    config.FeedConfig
}

func NewSyncVendorProducts(feedClient feed.ClientService, shopifyClient ProductWriterService, feedConfig config.FeedConfig, logger logging.LoggerService) SyncVendorProductsService {
	return &ClientVendorProducts{
		feedClient:    feedClient,
		shopifyClient: shopifyClient,
		logger:        logger,
		feedConfig:    feedConfig,
	}
}

func (c *ClientVendorProducts) Run(ctx context.Context) error {
	if len(c.feedConfig.Vendors) == 0 {
		return fmt.Errorf("no vendors configured")
	}
	c.logger.Log("Vendor product sync started")

	rows, err := c.feedClient.FetchVendorRows(ctx)
	if err != nil {
		c.logger.LogError("Error fetching vendor feed", err)
		return err
	}

	catalog, err := c.shopifyClient.FetchProductsByVendors(ctx, c.feedConfig.Vendors)
	if err != nil {
		c.logger.LogError("Error fetching catalog", err)
		return err
	}

	result := CompareVendorProducts(rows, catalog)
	c.logger.Log(fmt.Sprintf("Reconciled feed rows=%d new_product_rows=%d new_variants=%d",
		len(rows), len(result.NewProducts), len(result.NewVariants)))

	createdProducts := 0
	createdVariants := 0
	var failures []string

	for _, group := range groupByProductCode(result.NewProducts) {
		written, err := c.createProductWithVariants(ctx, group)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", group[0].ProductCode, err))
			c.logger.LogError(fmt.Sprintf("Error creating product %s", group[0].ProductCode), err)
			continue
		}
		createdProducts++
		createdVariants += written
	}

	for productID, variants := range groupNewVariantsByProduct(result.NewVariants) {
		groupRows := make([]model.VendorRow, 0, len(variants))
		for _, variant := range variants {
			groupRows = append(groupRows, variant.VendorRow)
		}
		writeResult, err := c.shopifyClient.AddVariants(ctx, productID, groupRows, nil)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", productID, err))
			c.logger.LogError(fmt.Sprintf("Error adding variants to %s", productID), err)
			continue
		}
		createdVariants += len(writeResult.Created)
		failures = append(failures, writeResult.Errors...)
	}

	if len(failures) > 0 {
		c.logger.LogWarning(fmt.Sprintf("Vendor product sync finished with %d failure(s): %s",
			len(failures), strings.Join(failures, "; ")))
	}
	c.logger.LogSuccess(fmt.Sprintf("Vendor product sync completed products=%d variants=%d failures=%d",
		createdProducts, createdVariants, len(failures)))
	return nil
}

// createProductWithVariants builds one product from a whole-new vendor
// group: create the draft, derive and create its options, then write
// the group's variants. Returns the number of variants written.
func (c *ClientVendorProducts) createProductWithVariants(ctx context.Context, group []model.VendorRow) (int, error) {
	title := strings.TrimSpace(group[0].BaseName)
	if title == "" {
		title = strings.TrimSpace(group[0].Name)
	}
	if title == "" {
		return 0, fmt.Errorf("group %s has no product name", group[0].ProductCode)
	}
	vendor := c.feedConfig.Vendors[0]

	ref, err := c.shopifyClient.CreateProduct(ctx, shopify.ProductCreateInput{
		Title:        title,
		Vendor:       vendor,
		CategoryName: c.feedConfig.ProductCategory,
		Tags:         c.feedConfig.ProductTags,
	})
	if err != nil {
		return 0, err
	}

	options, err := c.shopifyClient.DetectProductOptions(ctx, vendor, group)
	if err != nil {
		return 0, fmt.Errorf("detect options: %w", err)
	}
	for _, option := range options {
		if len(option.MissingValues) > 0 {
			c.logger.LogWarning(fmt.Sprintf("%s: option %s has unresolved values: %s",
				title, option.Name, strings.Join(option.MissingValues, ", ")))
		}
	}
	if err := c.shopifyClient.CreateProductOptions(ctx, ref.ID, options); err != nil {
		return 0, fmt.Errorf("create options: %w", err)
	}

	writeResult, err := c.shopifyClient.AddVariants(ctx, ref.ID, group, nil)
	if err != nil {
		return 0, fmt.Errorf("add variants: %w", err)
	}
	for _, writeErr := range writeResult.Errors {
		c.logger.LogWarning(fmt.Sprintf("%s: %s", title, writeErr))
	}
	return len(writeResult.Created) + len(writeResult.Updated), nil
}

// groupByProductCode splits rows into per-product groups, keeping the
// feed's first-seen order.
func groupByProductCode(rows []model.VendorRow) [][]model.VendorRow {
	var codes []string
	groups := make(map[string][]model.VendorRow)
	for _, row := range rows {
		code := row.ProductCode
		if _, seen := groups[code]; !seen {
			codes = append(codes, code)
		}
		groups[code] = append(groups[code], row)
	}
	out := make([][]model.VendorRow, 0, len(codes))
	for _, code := range codes {
		out = append(out, groups[code])
	}
	return out
}

func groupNewVariantsByProduct(variants []model.NewVariant) map[string][]model.NewVariant {
	groups := make(map[string][]model.NewVariant)
	for _, variant := range variants {
		groups[variant.ShopifyProductID] = append(groups[variant.ShopifyProductID], variant)
	}
	return groups
}
