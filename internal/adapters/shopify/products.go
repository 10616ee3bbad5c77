package shopify

import (
	"context"
	"fmt"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

// ProductCreateInput carries the fields of a new draft product.
// CategoryName is resolved against the standard taxonomy when
// CategoryID is not given directly.
type ProductCreateInput struct {
	Title           string
	Vendor          string
	DescriptionHTML string
	CategoryID      string
	CategoryName    string
	Tags            []string
}

const productCreateMutation = `
mutation productCreate($product: ProductCreateInput!) {
  productCreate(product: $product) {
    product { id title handle vendor status }
    userErrors { field message }
  }
}`

// CreateProduct creates a DRAFT product and publishes it to every
// publication. Publish failures do not roll the product back; the error
// is returned so the caller can report it.
func (c *Client) CreateProduct(ctx context.Context, input ProductCreateInput) (model.ProductRef, error) {
	product := map[string]any{
		"title":  input.Title,
		"vendor": input.Vendor,
		"status": "DRAFT",
	}
	if input.DescriptionHTML != "" {
		product["descriptionHtml"] = input.DescriptionHTML
	}

	categoryID := input.CategoryID
	if categoryID == "" && input.CategoryName != "" {
		resolved, err := c.resolveCategory(ctx, input.CategoryName)
		if err != nil {
			c.logWarning(fmt.Sprintf("category %q not resolved, product created without one: %v", input.CategoryName, err))
		} else {
			categoryID = resolved
		}
	}
	if categoryID != "" {
		product["category"] = categoryID
	}

	if len(input.Tags) > 0 {
		c.warnOnNewTags(ctx, input.Tags)
		product["tags"] = input.Tags
	}

	var data dto.ProductCreateData
	if err := c.graphqlRequest(ctx, productCreateMutation, map[string]any{"product": product}, &data); err != nil {
		return model.ProductRef{}, err
	}
	if err := userErrorsToError("productCreate", data.ProductCreate.UserErrors); err != nil {
		return model.ProductRef{}, err
	}
	if data.ProductCreate.Product == nil {
		return model.ProductRef{}, fmt.Errorf("productCreate returned no product")
	}
	ref := model.ProductRef{
		ID:    data.ProductCreate.Product.ID,
		Title: data.ProductCreate.Product.Title,
	}
	c.logSuccess(fmt.Sprintf("created product %q (%s)", ref.Title, ref.ID))

	if err := c.PublishProduct(ctx, ref.ID); err != nil {
		return ref, fmt.Errorf("publish %s: %w", ref.ID, err)
	}
	return ref, nil
}

// resolveCategory maps a taxonomy category name to its GID, preferring
// an exact leaf match.
func (c *Client) resolveCategory(ctx context.Context, name string) (string, error) {
	categories, err := c.SearchTaxonomyCategories(ctx, name)
	if err != nil {
		return "", err
	}
	var fallback string
	for _, category := range categories {
		if !category.IsLeaf {
			continue
		}
		if strings.EqualFold(category.Name, name) || strings.EqualFold(category.FullName, name) {
			return category.ID, nil
		}
		if fallback == "" {
			fallback = category.ID
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("no leaf category matching %q", name)
}

// warnOnNewTags flags tags that do not exist in the shop yet, since a
// typo here would silently split collections.
func (c *Client) warnOnNewTags(ctx context.Context, tags []string) {
	existing, err := c.FetchProductTags(ctx)
	if err != nil {
		c.logWarning(fmt.Sprintf("could not list product tags: %v", err))
		return
	}
	known := make(map[string]bool, len(existing))
	for _, tag := range existing {
		known[tag] = true
	}
	for _, tag := range tags {
		if !known[tag] {
			c.logWarning(fmt.Sprintf("tag %q is new to the shop", tag))
		}
	}
}

const publicationsQuery = `
query publications {
  publications(first: 20) {
    edges { node { id name } }
  }
}`

const publishablePublishMutation = `
mutation publishablePublish($id: ID!, $input: [PublicationInput!]!) {
  publishablePublish(id: $id, input: $input) {
    userErrors { field message }
  }
}`

// PublishProduct publishes a product to all of the shop's publications.
func (c *Client) PublishProduct(ctx context.Context, productID string) error {
	var pubs dto.PublicationsData
	if err := c.graphqlRequest(ctx, publicationsQuery, nil, &pubs); err != nil {
		return err
	}
	input := make([]map[string]any, 0, len(pubs.Publications.Edges))
	for _, edge := range pubs.Publications.Edges {
		input = append(input, map[string]any{"publicationId": edge.Node.ID})
	}
	if len(input) == 0 {
		return fmt.Errorf("shop has no publications")
	}

	var data dto.PublishablePublishData
	variables := map[string]any{"id": productID, "input": input}
	if err := c.graphqlRequest(ctx, publishablePublishMutation, variables, &data); err != nil {
		return err
	}
	return userErrorsToError("publishablePublish", data.PublishablePublish.UserErrors)
}

const variantBySKUQuery = `
query variantBySKU($query: String!) {
  productVariants(first: 5, query: $query) {
    edges {
      node {
        id
        sku
        barcode
        product { id }
      }
    }
  }
}`

// UpdateVariantBarcode finds a variant by SKU and patches its barcode.
// The search is a substring match upstream, so the SKU is re-checked
// exactly before writing.
func (c *Client) UpdateVariantBarcode(ctx context.Context, sku, barcode string) error {
	var data dto.VariantLookupData
	variables := map[string]any{"query": buildSearchQuery("sku", sku)}
	if err := c.graphqlRequest(ctx, variantBySKUQuery, variables, &data); err != nil {
		return err
	}

	var variantID, productID string
	for _, edge := range data.ProductVariants.Edges {
		if edge.Node.SKU == sku {
			variantID = edge.Node.ID
			productID = edge.Node.Product.ID
			break
		}
	}
	if variantID == "" {
		return fmt.Errorf("no variant with sku %s", sku)
	}

	update := map[string]any{
		"productId": productID,
		"variants":  []map[string]any{{"id": variantID, "barcode": barcode}},
	}
	var result dto.ProductVariantsBulkUpdateData
	if err := c.graphqlRequest(ctx, productVariantsBulkUpdateMutation, update, &result); err != nil {
		return err
	}
	if err := userErrorsToError("productVariantsBulkUpdate", result.ProductVariantsBulkUpdate.UserErrors); err != nil {
		return err
	}
	c.logSuccess(fmt.Sprintf("barcode for %s set to %s", sku, barcode))
	return nil
}
