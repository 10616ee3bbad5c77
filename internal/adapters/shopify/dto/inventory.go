package dto

type InventoryLevelQuantities struct {
	Quantities []QuantityEntry `json:"quantities,omitempty"`
}

type MissingInventoryVariantNode struct {
	ID                string `json:"id,omitempty"`
	SKU               string `json:"sku,omitempty"`
	Barcode           string `json:"barcode,omitempty"`
	Title             string `json:"title,omitempty"`
	InventoryQuantity int    `json:"inventoryQuantity,omitempty"`
	InventoryItem     struct {
		ID              string       `json:"id,omitempty"`
		Tracked         bool         `json:"tracked,omitempty"`
		UnitCost        *MoneyAmount `json:"unitCost,omitempty"`
		InventoryLevels struct {
			Edges []struct {
				Node InventoryLevelQuantities `json:"node"`
			} `json:"edges,omitempty"`
		} `json:"inventoryLevels,omitempty"`
	} `json:"inventoryItem,omitempty"`
	Product struct {
		ID     string `json:"id,omitempty"`
		Title  string `json:"title,omitempty"`
		Vendor string `json:"vendor,omitempty"`
	} `json:"product,omitempty"`
}

type InventoryVariantsData struct {
	ProductVariants struct {
		Edges []struct {
			Node MissingInventoryVariantNode `json:"node"`
		} `json:"edges,omitempty"`
		PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
	} `json:"productVariants"`
}

type VariantLookupData struct {
	ProductVariants struct {
		Edges []struct {
			Node struct {
				ID      string `json:"id,omitempty"`
				SKU     string `json:"sku,omitempty"`
				Barcode string `json:"barcode,omitempty"`
				Product struct {
					ID string `json:"id,omitempty"`
				} `json:"product,omitempty"`
			} `json:"node"`
		} `json:"edges,omitempty"`
	} `json:"productVariants"`
}
