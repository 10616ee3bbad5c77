package model

// NewVariant is a vendor row that belongs to an existing Shopify product
// but is itself absent from it by both SKU and EAN.
type NewVariant struct {
	VendorRow
	ShopifyProductID    string
	ShopifyProductTitle string
}

// ReconciliationResult classifies vendor rows against the catalog.
// Rows sharing a product code are classified as one group: either the
// whole group is new, or individual unknown rows become new variants of
// the matched product.
type ReconciliationResult struct {
	NewProducts []VendorRow
	NewVariants []NewVariant
}
