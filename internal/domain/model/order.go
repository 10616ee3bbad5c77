package model

// Order is an open storefront order as needed by the resume job.
type Order struct {
	ID        string
	Name      string
	Tags      []string
	LineItems []OrderLineItem
}

// OrderLineItem carries the quantity still owed and the inventory item
// backing the ordered variant. InventoryItemID is empty when the variant
// has been deleted.
type OrderLineItem struct {
	CurrentQuantity int
	InventoryItemID string
}
