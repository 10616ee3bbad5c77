package shopify

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
)

const taxonomyCategoriesQuery = `
query taxonomyCategories($search: String!, $cursor: String) {
  taxonomy {
    categories(first: 50, search: $search, after: $cursor) {
      edges { node { id name fullName isLeaf } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

// TaxonomyCategory is one node of Shopify's standard product taxonomy.
type TaxonomyCategory struct {
	ID       string
	Name     string
	FullName string
	IsLeaf   bool
}

// SearchTaxonomyCategories searches the standard product taxonomy.
// Results are cached per search term.
func (c *Client) SearchTaxonomyCategories(ctx context.Context, search string) ([]TaxonomyCategory, error) {
	cacheKey := "taxonomy:" + search
	if cached, found := c.lookupCache.Get(cacheKey); found {
		return cached.([]TaxonomyCategory), nil
	}

	var categories []TaxonomyCategory
	var cursor string
	for {
		variables := map[string]any{"search": search}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.TaxonomyData
		if err := c.graphqlRequest(ctx, taxonomyCategoriesQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("search taxonomy %q: %w", search, err)
		}
		if data.Taxonomy == nil {
			break
		}
		for _, edge := range data.Taxonomy.Categories.Edges {
			categories = append(categories, TaxonomyCategory{
				ID:       edge.Node.ID,
				Name:     edge.Node.Name,
				FullName: edge.Node.FullName,
				IsLeaf:   edge.Node.IsLeaf,
			})
		}
		if !data.Taxonomy.Categories.PageInfo.HasNextPage {
			break
		}
		cursor = data.Taxonomy.Categories.PageInfo.EndCursor
	}

	c.lookupCache.Set(cacheKey, categories, gocache.DefaultExpiration)
	return categories, nil
}

const productTagsQuery = `
query productTags($cursor: String) {
  shop {
    productTags(first: 250, after: $cursor) {
      edges { node }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

// FetchProductTags lists every tag in use across the shop, cached for
// the run so repeated product creations reuse one scan.
func (c *Client) FetchProductTags(ctx context.Context) ([]string, error) {
	const cacheKey = "product-tags"
	if cached, found := c.lookupCache.Get(cacheKey); found {
		return cached.([]string), nil
	}

	var tags []string
	var cursor string
	for {
		variables := map[string]any{}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.ProductTagsData
		if err := c.graphqlRequest(ctx, productTagsQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("fetch product tags: %w", err)
		}
		for _, edge := range data.Shop.ProductTags.Edges {
			tags = append(tags, edge.Node)
		}
		if !data.Shop.ProductTags.PageInfo.HasNextPage {
			break
		}
		cursor = data.Shop.ProductTags.PageInfo.EndCursor
	}

	c.lookupCache.Set(cacheKey, tags, gocache.DefaultExpiration)
	return tags, nil
}
