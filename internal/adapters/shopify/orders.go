package shopify

import (
	"context"
	"fmt"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

const openOrdersQuery = `
query openOrders($cursor: String) {
  orders(first: 100, after: $cursor, query: "test:false -financial_status:voided (fulfillment_status:unfulfilled OR fulfillment_status:partial) status:open") {
    edges {
      node {
        id
        name
        tags
        lineItems(first: 100) {
          edges {
            node {
              currentQuantity
              variant { inventoryItem { id } }
            }
          }
        }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

// FetchOpenOrders returns every open, not yet fully fulfilled order in
// creation order.
func (c *Client) FetchOpenOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	var cursor string
	for {
		variables := map[string]any{}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.OpenOrdersData
		if err := c.graphqlRequest(ctx, openOrdersQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("fetch open orders: %w", err)
		}
		for _, edge := range data.Orders.Edges {
			node := edge.Node
			order := model.Order{
				ID:   node.ID,
				Name: node.Name,
				Tags: node.Tags,
			}
			for _, itemEdge := range node.LineItems.Edges {
				item := model.OrderLineItem{
					CurrentQuantity: itemEdge.Node.CurrentQuantity,
				}
				if itemEdge.Node.Variant != nil {
					item.InventoryItemID = itemEdge.Node.Variant.InventoryItem.ID
				}
				order.LineItems = append(order.LineItems, item)
			}
			orders = append(orders, order)
		}
		if !data.Orders.PageInfo.HasNextPage {
			break
		}
		cursor = data.Orders.PageInfo.EndCursor
	}
	c.log(fmt.Sprintf("fetched %d open orders", len(orders)))
	return orders, nil
}

const tagsRemoveMutation = `
mutation tagsRemove($id: ID!, $tags: [String!]!) {
  tagsRemove(id: $id, tags: $tags) {
    node { id }
    userErrors { field message }
  }
}`

// RemoveOrderTags strips the given tags from an order.
func (c *Client) RemoveOrderTags(ctx context.Context, orderID string, tags []string) error {
	variables := map[string]any{"id": orderID, "tags": tags}
	var data dto.TagsRemoveData
	if err := c.graphqlRequest(ctx, tagsRemoveMutation, variables, &data); err != nil {
		return err
	}
	return userErrorsToError("tagsRemove", data.TagsRemove.UserErrors)
}

const locationsQuery = `
query locations {
  locations(first: 5) {
    edges { node { id } }
  }
}`

func (c *Client) primaryLocationID(ctx context.Context) (string, error) {
	c.locationMu.Lock()
	defer c.locationMu.Unlock()
	if c.locationID != "" {
		return c.locationID, nil
	}
	var data dto.LocationsData
	if err := c.graphqlRequest(ctx, locationsQuery, nil, &data); err != nil {
		return "", err
	}
	if len(data.Locations.Edges) == 0 {
		return "", fmt.Errorf("shop has no locations")
	}
	c.locationID = data.Locations.Edges[0].Node.ID
	return c.locationID, nil
}

const inventoryLevelQuery = `
query inventoryLevel($id: ID!, $locationId: ID!) {
  inventoryItem(id: $id) {
    id
    inventoryLevel(locationId: $locationId) {
      quantities(names: ["on_hand", "reserved", "damaged", "safety_stock", "quality_control"]) {
        name
        quantity
      }
    }
  }
}`

// FetchInventoryAvailable returns the sellable quantity of an inventory
// item at the primary location: on hand minus reserved, damaged,
// safety stock, and quality control.
func (c *Client) FetchInventoryAvailable(ctx context.Context, inventoryItemID string) (int, error) {
	locationID, err := c.primaryLocationID(ctx)
	if err != nil {
		return 0, err
	}
	variables := map[string]any{"id": inventoryItemID, "locationId": locationID}
	var data dto.InventoryLevelData
	if err := c.graphqlRequest(ctx, inventoryLevelQuery, variables, &data); err != nil {
		return 0, err
	}
	if data.InventoryItem == nil || data.InventoryItem.InventoryLevel == nil {
		return 0, fmt.Errorf("no inventory level for %s", inventoryItemID)
	}
	available := 0
	for _, q := range data.InventoryItem.InventoryLevel.Quantities {
		if q.Name == "on_hand" {
			available += q.Quantity
		} else {
			available -= q.Quantity
		}
	}
	return available, nil
}
