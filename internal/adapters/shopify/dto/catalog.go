package dto

type MoneyAmount struct {
	Amount string `json:"amount,omitempty"`
}

type WeightMeasurement struct {
	Weight struct {
		Unit  string  `json:"unit,omitempty"`
		Value float64 `json:"value,omitempty"`
	} `json:"weight,omitempty"`
}

type CatalogInventoryItem struct {
	UnitCost             *MoneyAmount       `json:"unitCost,omitempty"`
	CountryCodeOfOrigin  string             `json:"countryCodeOfOrigin,omitempty"`
	HarmonizedSystemCode string             `json:"harmonizedSystemCode,omitempty"`
	Measurement          *WeightMeasurement `json:"measurement,omitempty"`
}

type SelectedOptionNode struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

type CatalogVariantNode struct {
	ID                string                `json:"id,omitempty"`
	SKU               string                `json:"sku,omitempty"`
	Barcode           string                `json:"barcode,omitempty"`
	Title             string                `json:"title,omitempty"`
	Price             string                `json:"price,omitempty"`
	InventoryQuantity int                   `json:"inventoryQuantity,omitempty"`
	InventoryPolicy   string                `json:"inventoryPolicy,omitempty"`
	InventoryItem     *CatalogInventoryItem `json:"inventoryItem,omitempty"`
	SelectedOptions   []SelectedOptionNode  `json:"selectedOptions,omitempty"`
}

type CatalogVariantEdge struct {
	Node CatalogVariantNode `json:"node"`
}

type CatalogVariantConnection struct {
	Edges    []CatalogVariantEdge `json:"edges,omitempty"`
	PageInfo ShopifyPageInfo      `json:"pageInfo,omitempty"`
}

type CatalogProductNode struct {
	ID       string                   `json:"id,omitempty"`
	Title    string                   `json:"title,omitempty"`
	Vendor   string                   `json:"vendor,omitempty"`
	Handle   string                   `json:"handle,omitempty"`
	Variants CatalogVariantConnection `json:"variants,omitempty"`
}

type CatalogProductEdge struct {
	Node CatalogProductNode `json:"node"`
}

type ProductsByVendorData struct {
	Products struct {
		Edges    []CatalogProductEdge `json:"edges,omitempty"`
		PageInfo ShopifyPageInfo      `json:"pageInfo,omitempty"`
	} `json:"products"`
}

type VariantPageData struct {
	Product *struct {
		Variants CatalogVariantConnection `json:"variants,omitempty"`
	} `json:"product,omitempty"`
}
