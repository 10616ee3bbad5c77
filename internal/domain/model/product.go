package model

// ShopifyProduct is one storefront product with its variants keyed by SKU.
// Variant SKUs are unique within a product but not guaranteed unique across
// the catalog.
type ShopifyProduct struct {
	ID       string
	Title    string
	Vendor   string
	Handle   string
	Variants map[string]ShopifyVariant
}

type ShopifyVariant struct {
	ID                string
	SKU               string
	Barcode           string
	Title             string
	Price             string
	InventoryQuantity int
	InventoryPolicy   string
	SelectedOptions   []SelectedOption

	// Inventory-item attributes.
	UnitCost        float64
	HasUnitCost     bool
	CountryOfOrigin string
	HSCode          string
	Weight          float64
	WeightUnit      string
}

// SelectedOption is one (option name, option value) pair on a variant,
// in the product's option order.
type SelectedOption struct {
	Name  string
	Value string
}

// ProductRef is the minimal product identity carried through reconciliation.
type ProductRef struct {
	ID    string
	Title string
}
