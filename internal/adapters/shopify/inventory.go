package shopify

import (
	"context"
	"fmt"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

const negativeInventoryVariantsQuery = `
query negativeInventoryVariants($query: String!, $cursor: String) {
  productVariants(first: 100, after: $cursor, query: $query) {
    edges {
      node {
        id
        sku
        barcode
        title
        inventoryQuantity
        inventoryItem {
          id
          tracked
          unitCost { amount }
          inventoryLevels(first: 10) {
            edges {
              node {
                quantities(names: ["available", "incoming"]) { name quantity }
              }
            }
          }
        }
        product { id title vendor }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

// FetchMissingInventory lists variants whose available stock plus
// incoming deliveries is still negative, with the quantity needed to
// reach zero. vendor narrows the query when non-empty.
func (c *Client) FetchMissingInventory(ctx context.Context, vendor string) ([]model.MissingInventoryRow, error) {
	query := "inventory_quantity:<0"
	if vendor != "" {
		query += " AND " + buildSearchQuery("vendor", vendor)
	}

	var rows []model.MissingInventoryRow
	var cursor string
	for {
		variables := map[string]any{"query": query}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.InventoryVariantsData
		if err := c.graphqlRequest(ctx, negativeInventoryVariantsQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("fetch negative inventory: %w", err)
		}
		for _, edge := range data.ProductVariants.Edges {
			node := edge.Node
			total := 0
			for _, level := range node.InventoryItem.InventoryLevels.Edges {
				for _, q := range level.Node.Quantities {
					total += q.Quantity
				}
			}
			if total >= 0 {
				continue
			}
			rows = append(rows, model.MissingInventoryRow{
				SKU:           node.SKU,
				Title:         node.Title,
				Barcode:       node.Barcode,
				ProductTitle:  node.Product.Title,
				ProductVendor: node.Product.Vendor,
				MissingQty:    -total,
			})
		}
		if !data.ProductVariants.PageInfo.HasNextPage {
			break
		}
		cursor = data.ProductVariants.PageInfo.EndCursor
	}
	return rows, nil
}

const vendorInventoryValueQuery = `
query vendorInventoryValue($query: String!, $cursor: String) {
  productVariants(first: 100, after: $cursor, query: $query) {
    edges {
      node {
        id
        sku
        inventoryQuantity
        inventoryItem {
          id
          tracked
          unitCost { amount }
        }
        product { id title vendor }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

// BrandInventoryValue sums unit cost times on-hand quantity across a
// vendor's variants. Variants without a unit cost contribute zero;
// negative quantities are ignored.
func (c *Client) BrandInventoryValue(ctx context.Context, vendor string) (float64, error) {
	query := buildSearchQuery("vendor", vendor)
	var total float64
	var cursor string
	for {
		variables := map[string]any{"query": query}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.InventoryVariantsData
		if err := c.graphqlRequest(ctx, vendorInventoryValueQuery, variables, &data); err != nil {
			return 0, fmt.Errorf("fetch vendor inventory: %w", err)
		}
		for _, edge := range data.ProductVariants.Edges {
			node := edge.Node
			if node.InventoryQuantity <= 0 || node.InventoryItem.UnitCost == nil {
				continue
			}
			cost, err := parseAmount(node.InventoryItem.UnitCost.Amount)
			if err != nil {
				continue
			}
			total += cost * float64(node.InventoryQuantity)
		}
		if !data.ProductVariants.PageInfo.HasNextPage {
			break
		}
		cursor = data.ProductVariants.PageInfo.EndCursor
	}
	return total, nil
}

// VariantPolicyUpdate is one inventory-policy change for a variant.
type VariantPolicyUpdate struct {
	VariantID string
	SKU       string
	Policy    string
}

// SetInventoryPolicies pushes inventory-policy changes for one product
// in a single bulk update. userErrors come back as strings so the
// caller can keep processing other products.
func (c *Client) SetInventoryPolicies(ctx context.Context, productID string, updates []VariantPolicyUpdate) ([]string, error) {
	if len(updates) == 0 {
		return nil, nil
	}
	variants := make([]map[string]any, 0, len(updates))
	for _, update := range updates {
		variants = append(variants, map[string]any{
			"id":              update.VariantID,
			"inventoryPolicy": update.Policy,
		})
	}
	variables := map[string]any{"productId": productID, "variants": variants}
	var data dto.ProductVariantsBulkUpdateData
	if err := c.graphqlRequest(ctx, productVariantsBulkUpdateMutation, variables, &data); err != nil {
		return nil, err
	}
	return userErrorsToStrings(data.ProductVariantsBulkUpdate.UserErrors), nil
}
