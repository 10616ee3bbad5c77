package shopify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

const productsByVendorQuery = `
query productsByVendor($query: String!, $cursor: String) {
  products(first: 50, after: $cursor, query: $query) {
    edges {
      node {
        id
        title
        vendor
        handle
        variants(first: 100) {
          edges {
            node {
              id
              sku
              barcode
              title
              price
              inventoryQuantity
              inventoryPolicy
              inventoryItem {
                unitCost { amount }
                countryCodeOfOrigin
                harmonizedSystemCode
                measurement { weight { unit value } }
              }
              selectedOptions { name value }
            }
          }
          pageInfo { hasNextPage endCursor }
        }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

const productVariantsPageQuery = `
query productVariantsPage($id: ID!, $cursor: String) {
  product(id: $id) {
    variants(first: 100, after: $cursor) {
      edges {
        node {
          id
          sku
          barcode
          title
          price
          inventoryQuantity
          inventoryPolicy
          inventoryItem {
            unitCost { amount }
            countryCodeOfOrigin
            harmonizedSystemCode
            measurement { weight { unit value } }
          }
          selectedOptions { name value }
        }
      }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

// FetchProductsByVendors pulls the full catalog for the given vendors,
// keyed by product id. Variant maps are keyed by SKU; variants without
// a SKU are skipped.
func (c *Client) FetchProductsByVendors(ctx context.Context, vendors []string) (map[string]model.ShopifyProduct, error) {
	search := make([]string, 0, len(vendors))
	for _, v := range vendors {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		search = append(search, buildSearchQuery("vendor", v))
	}
	if len(search) == 0 {
		return nil, fmt.Errorf("no vendors given for catalog fetch")
	}
	query := strings.Join(search, " OR ")

	products := make(map[string]model.ShopifyProduct)
	var cursor string
	for page := 1; ; page++ {
		variables := map[string]any{"query": query}
		if cursor != "" {
			variables["cursor"] = cursor
		}

		var data dto.ProductsByVendorData
		if err := c.graphqlRequest(ctx, productsByVendorQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("fetch products page %d: %w", page, err)
		}

		for _, edge := range data.Products.Edges {
			node := edge.Node
			if node.ID == "" {
				return nil, fmt.Errorf("product without id on page %d", page)
			}
			product := model.ShopifyProduct{
				ID:       node.ID,
				Title:    node.Title,
				Vendor:   node.Vendor,
				Handle:   node.Handle,
				Variants: make(map[string]model.ShopifyVariant),
			}
			addCatalogVariants(&product, node.Variants.Edges)

			pageInfo := node.Variants.PageInfo
			for pageInfo.HasNextPage {
				var variantData dto.VariantPageData
				variables := map[string]any{"id": node.ID, "cursor": pageInfo.EndCursor}
				if err := c.graphqlRequest(ctx, productVariantsPageQuery, variables, &variantData); err != nil {
					return nil, fmt.Errorf("fetch variants for %s: %w", node.ID, err)
				}
				if variantData.Product == nil {
					return nil, fmt.Errorf("product %s disappeared during variant pagination", node.ID)
				}
				addCatalogVariants(&product, variantData.Product.Variants.Edges)
				pageInfo = variantData.Product.Variants.PageInfo
			}

			products[node.ID] = product
		}

		if !data.Products.PageInfo.HasNextPage {
			break
		}
		cursor = data.Products.PageInfo.EndCursor
	}

	c.log(fmt.Sprintf("fetched %d products for vendors %s", len(products), strings.Join(vendors, ", ")))
	return products, nil
}

func addCatalogVariants(product *model.ShopifyProduct, edges []dto.CatalogVariantEdge) {
	for _, edge := range edges {
		variant := catalogVariantToModel(edge.Node)
		if variant.SKU == "" {
			continue
		}
		product.Variants[variant.SKU] = variant
	}
}

func catalogVariantToModel(node dto.CatalogVariantNode) model.ShopifyVariant {
	variant := model.ShopifyVariant{
		ID:                node.ID,
		SKU:               strings.TrimSpace(node.SKU),
		Barcode:           strings.TrimSpace(node.Barcode),
		Title:             node.Title,
		Price:             node.Price,
		InventoryQuantity: node.InventoryQuantity,
		InventoryPolicy:   node.InventoryPolicy,
	}
	for _, opt := range node.SelectedOptions {
		variant.SelectedOptions = append(variant.SelectedOptions, model.SelectedOption{
			Name:  opt.Name,
			Value: opt.Value,
		})
	}
	if item := node.InventoryItem; item != nil {
		if item.UnitCost != nil {
			if cost, err := strconv.ParseFloat(item.UnitCost.Amount, 64); err == nil {
				variant.UnitCost = cost
				variant.HasUnitCost = true
			}
		}
		variant.CountryOfOrigin = item.CountryCodeOfOrigin
		variant.HSCode = item.HarmonizedSystemCode
		if item.Measurement != nil {
			variant.Weight = item.Measurement.Weight.Value
			variant.WeightUnit = item.Measurement.Weight.Unit
		}
	}
	return variant
}
