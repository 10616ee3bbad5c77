package model

// MissingInventoryRow is one variant whose stock, counting incoming
// deliveries, is still below zero.
type MissingInventoryRow struct {
	SKU           string
	Title         string
	Barcode       string
	ProductTitle  string
	ProductVendor string
	MissingQty    int
}
