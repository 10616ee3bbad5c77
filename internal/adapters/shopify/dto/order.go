package dto

type OrderLineItemNode struct {
	CurrentQuantity int `json:"currentQuantity,omitempty"`
	Variant         *struct {
		InventoryItem struct {
			ID string `json:"id,omitempty"`
		} `json:"inventoryItem,omitempty"`
	} `json:"variant,omitempty"`
}

type OrderNode struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	LineItems struct {
		Edges []struct {
			Node OrderLineItemNode `json:"node"`
		} `json:"edges,omitempty"`
	} `json:"lineItems,omitempty"`
}

type OpenOrdersData struct {
	Orders struct {
		Edges []struct {
			Node OrderNode `json:"node"`
		} `json:"edges,omitempty"`
		PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
	} `json:"orders"`
}

type TagsRemoveData struct {
	TagsRemove struct {
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
		Node       *struct {
			ID string `json:"id,omitempty"`
		} `json:"node,omitempty"`
	} `json:"tagsRemove"`
}

type QuantityEntry struct {
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

type InventoryLevelData struct {
	InventoryItem *struct {
		ID             string `json:"id,omitempty"`
		InventoryLevel *struct {
			Quantities []QuantityEntry `json:"quantities,omitempty"`
		} `json:"inventoryLevel,omitempty"`
	} `json:"inventoryItem,omitempty"`
}
