package usecases

import (
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

// CompareVendorProducts classifies vendor rows against the catalog
// snapshot. Rows are grouped by product code and each group is decided
// as a whole: the first row whose SKU or barcode is already in the
// catalog picks the matched product for the entire group, and the
// group's remaining unknown rows become new variants of it. A group
// with no hit at all is emitted as new products.
//
// First match wins; a group whose rows span several catalog products is
// not disambiguated. The function is pure, so two runs over identical
// snapshots yield identical results.
func CompareVendorProducts(rows []model.VendorRow, catalog map[string]model.ShopifyProduct) model.ReconciliationResult {
	skuToProduct := make(map[string]model.ProductRef)
	barcodeToProduct := make(map[string]model.ProductRef)
	for _, product := range catalog {
		ref := model.ProductRef{ID: product.ID, Title: product.Title}
		for _, variant := range product.Variants {
			if variant.SKU != "" {
				if _, exists := skuToProduct[variant.SKU]; !exists {
					skuToProduct[variant.SKU] = ref
				}
			}
			if variant.Barcode != "" {
				if _, exists := barcodeToProduct[variant.Barcode]; !exists {
					barcodeToProduct[variant.Barcode] = ref
				}
			}
		}
	}

	// Group rows by product code in first-seen order.
	var codes []string
	groups := make(map[string][]model.VendorRow)
	for _, row := range rows {
		code := row.ProductCode
		if code == "" {
			code = model.ProductCodeFromSKU(row.SKU)
		}
		if _, seen := groups[code]; !seen {
			codes = append(codes, code)
		}
		groups[code] = append(groups[code], row)
	}

	var result model.ReconciliationResult
	for _, code := range codes {
		group := groups[code]

		var matched model.ProductRef
		found := false
		for _, row := range group {
			if ref, ok := skuToProduct[row.SKU]; ok {
				matched = ref
				found = true
				break
			}
			if row.EAN != "" {
				if ref, ok := barcodeToProduct[row.EAN]; ok {
					matched = ref
					found = true
					break
				}
			}
		}

		if !found {
			result.NewProducts = append(result.NewProducts, group...)
			continue
		}
		for _, row := range group {
			_, skuKnown := skuToProduct[row.SKU]
			_, eanKnown := barcodeToProduct[row.EAN]
			if skuKnown || (row.EAN != "" && eanKnown) {
				continue
			}
			result.NewVariants = append(result.NewVariants, model.NewVariant{
				VendorRow:           row,
				ShopifyProductID:    matched.ID,
				ShopifyProductTitle: matched.Title,
			})
		}
	}
	return result
}
