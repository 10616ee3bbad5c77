package shopify

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
	"github.com/frenzeldk/shopify-tools/internal/pricing"
)

type optionValueInfo struct {
	ID            string
	MetaobjectGID string
}

type productOptionInfo struct {
	ID        string
	Name      string
	Linked    bool
	Namespace string
	Key       string
	Values    map[string]optionValueInfo
}

type existingVariant struct {
	ID    string
	SKU   string
	Price string
}

const writerProductInfoQuery = `
query writerProductInfo($id: ID!) {
  product(id: $id) {
    options {
      id
      name
      linkedMetafield { namespace key }
      optionValues { id name linkedMetafieldValue }
    }
    variants(first: 100) {
      edges {
        node {
          id
          sku
          price
          selectedOptions { name value }
        }
      }
    }
  }
}`

// fetchWriterProductInfo loads a product's options and first variant
// page, returning the option info table plus existing variants keyed by
// their option-combo key.
func (c *Client) fetchWriterProductInfo(ctx context.Context, productID string) ([]productOptionInfo, map[string]existingVariant, error) {
	var data dto.WriterProductInfoData
	if err := c.graphqlRequest(ctx, writerProductInfoQuery, map[string]any{"id": productID}, &data); err != nil {
		return nil, nil, err
	}
	if data.Product == nil {
		return nil, nil, fmt.Errorf("product %s not found", productID)
	}

	options := make([]productOptionInfo, 0, len(data.Product.Options))
	for _, node := range data.Product.Options {
		info := productOptionInfo{
			ID:     node.ID,
			Name:   node.Name,
			Values: make(map[string]optionValueInfo, len(node.OptionValues)),
		}
		if node.LinkedMetafield != nil {
			info.Linked = true
			info.Namespace = node.LinkedMetafield.Namespace
			info.Key = node.LinkedMetafield.Key
		}
		for _, value := range node.OptionValues {
			info.Values[value.Name] = optionValueInfo{
				ID:            value.ID,
				MetaobjectGID: value.LinkedMetafieldValue,
			}
		}
		options = append(options, info)
	}

	existing := make(map[string]existingVariant)
	for _, edge := range data.Product.Variants.Edges {
		node := edge.Node
		key := comboKey(node.SelectedOptions)
		if key == "" {
			continue
		}
		existing[key] = existingVariant{ID: node.ID, SKU: node.SKU, Price: node.Price}
	}
	return options, existing, nil
}

// comboKey builds the seed-detection key for a variant: its option
// values sorted by option name, with the default Title option ignored.
func comboKey(selected []dto.SelectedOptionNode) string {
	pairs := make([]string, 0, len(selected))
	for _, opt := range selected {
		if opt.Name == optionNameTitle {
			continue
		}
		pairs = append(pairs, opt.Name+"="+opt.Value)
	}
	if len(pairs) == 0 {
		return ""
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}

// rowOptionValues derives the ordered option values a vendor row takes
// for the given product options. Options the row has no value for are
// omitted.
func rowOptionValues(row model.VendorRow, options []productOptionInfo) []dto.SelectedOptionNode {
	var pairs []dto.SelectedOptionNode
	for _, option := range options {
		var value string
		switch option.Name {
		case optionNameColor:
			value = strings.TrimSpace(row.Color)
		case optionNameSize:
			value = model.NormalizeSize(model.StripLengthSuffix(row.Size))
			if model.IsOneSize(value) {
				value = ""
			}
		case optionNameLength:
			if letter := model.LengthLetterFromSKU(row.SKU); letter != "" {
				value = model.LengthNames[letter]
			}
		}
		if value == "" {
			continue
		}
		pairs = append(pairs, dto.SelectedOptionNode{Name: option.Name, Value: value})
	}
	return pairs
}

const productOptionUpdateMutation = `
mutation productOptionUpdate($productId: ID!, $option: OptionUpdateInput!, $optionValuesToAdd: [OptionValueCreateInput!]) {
  productOptionUpdate(productId: $productId, option: $option, optionValuesToAdd: $optionValuesToAdd) {
    product {
      options {
        id
        name
        linkedMetafield { namespace key }
        optionValues { id name linkedMetafieldValue }
      }
    }
    userErrors { field message }
  }
}`

// ensureOptionValues adds the option values the batch needs but the
// product lacks. Linked options resolve value names to metaobject GIDs
// first; names without a metaobject are reported as errors and their
// rows will fail variant creation with a clear message later.
func (c *Client) ensureOptionValues(ctx context.Context, productID string, options []productOptionInfo, rows []model.VendorRow) ([]string, error) {
	var valueErrors []string
	for i := range options {
		option := &options[i]

		var missing []string
		seen := map[string]bool{}
		for _, row := range rows {
			for _, pair := range rowOptionValues(row, []productOptionInfo{*option}) {
				if _, exists := option.Values[pair.Value]; exists || seen[pair.Value] {
					continue
				}
				seen[pair.Value] = true
				missing = append(missing, pair.Value)
			}
		}
		if len(missing) == 0 {
			continue
		}

		var toAdd []map[string]any
		if option.Linked {
			metaobjectType, err := c.linkedOptionMetaobjectType(ctx, *option)
			if err != nil {
				return nil, err
			}
			resolved, unresolved, err := c.ResolveMetaobjectValues(ctx, metaobjectType, missing)
			if err != nil {
				return nil, err
			}
			for _, name := range unresolved {
				valueErrors = append(valueErrors, fmt.Sprintf("no %s metaobject named %q", metaobjectType, name))
			}
			for _, name := range missing {
				gid, ok := resolved[name]
				if !ok {
					continue
				}
				toAdd = append(toAdd, map[string]any{"linkedMetafieldValue": gid})
				option.Values[name] = optionValueInfo{MetaobjectGID: gid}
			}
		} else {
			for _, name := range missing {
				toAdd = append(toAdd, map[string]any{"name": name})
				option.Values[name] = optionValueInfo{}
			}
		}
		if len(toAdd) == 0 {
			continue
		}

		variables := map[string]any{
			"productId":         productID,
			"option":            map[string]any{"id": option.ID},
			"optionValuesToAdd": toAdd,
		}
		var data dto.ProductOptionUpdateData
		if err := c.graphqlRequest(ctx, productOptionUpdateMutation, variables, &data); err != nil {
			return nil, fmt.Errorf("add values to option %s: %w", option.Name, err)
		}
		if err := userErrorsToError("productOptionUpdate", data.ProductOptionUpdate.UserErrors); err != nil {
			return nil, err
		}
		c.log(fmt.Sprintf("added %d value(s) to option %s", len(toAdd), option.Name))
	}
	return valueErrors, nil
}

// linkedOptionMetaobjectType finds the metaobject type behind a linked
// option by sampling one of its existing values.
func (c *Client) linkedOptionMetaobjectType(ctx context.Context, option productOptionInfo) (string, error) {
	sampleGID := ""
	for _, value := range option.Values {
		if value.MetaobjectGID != "" {
			sampleGID = value.MetaobjectGID
			break
		}
	}
	return c.DiscoverColorMetaobjectType(ctx, sampleGID)
}

const productVariantsBulkCreateMutation = `
mutation productVariantsBulkCreate($productId: ID!, $variants: [ProductVariantsBulkInput!]!, $strategy: ProductVariantsBulkCreateStrategy) {
  productVariantsBulkCreate(productId: $productId, variants: $variants, strategy: $strategy) {
    productVariants { id sku barcode title }
    userErrors { field message }
  }
}`

const productVariantsBulkUpdateMutation = `
mutation productVariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    productVariants { id sku barcode title }
    userErrors { field message }
  }
}`

// AddVariants writes a batch of vendor rows onto an existing product.
// Rows whose option combo matches an existing variant update that
// variant in place (seed variants created together with the product);
// the rest are created. colorImageURLs maps a color name to the image
// uploaded and assigned to that color's new variants.
func (c *Client) AddVariants(ctx context.Context, productID string, rows []model.VendorRow, colorImageURLs map[string]string) (model.WriteResult, error) {
	var result model.WriteResult
	if len(rows) == 0 {
		return result, nil
	}

	options, existing, err := c.fetchWriterProductInfo(ctx, productID)
	if err != nil {
		return result, err
	}

	valueErrors, err := c.ensureOptionValues(ctx, productID, options, rows)
	if err != nil {
		return result, err
	}
	result.Errors = append(result.Errors, valueErrors...)

	price := c.productPrice(existing, rows)

	titleOnly := len(options) == 1 && options[0].Name == optionNameTitle

	var creates []map[string]any
	var updates []map[string]any
	createColors := make(map[string]string, len(rows))
	for _, row := range rows {
		pairs := rowOptionValues(row, options)
		input := variantInput(row, pairs, price)

		if seed, ok := existing[comboKey(pairs)]; ok {
			input["id"] = seed.ID
			delete(input, "optionValues")
			updates = append(updates, input)
			result.Updated = append(result.Updated, row.SKU)
			continue
		}
		if !titleOnly && len(pairs) == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: no option values for product options", row.SKU))
			continue
		}
		creates = append(creates, input)
		createColors[row.SKU] = strings.TrimSpace(row.Color)
	}

	if len(updates) > 0 {
		variables := map[string]any{"productId": productID, "variants": updates}
		var data dto.ProductVariantsBulkUpdateData
		if err := c.graphqlRequest(ctx, productVariantsBulkUpdateMutation, variables, &data); err != nil {
			return result, err
		}
		result.Errors = append(result.Errors, userErrorsToStrings(data.ProductVariantsBulkUpdate.UserErrors)...)
	}

	var created []dto.CreatedVariantNode
	if len(creates) > 0 {
		variables := map[string]any{"productId": productID, "variants": creates}
		if titleOnly {
			// The default Title variant would collide with real option
			// combos, so it is removed together with the first create.
			variables["strategy"] = "REMOVE_STANDALONE_VARIANT"
		}
		var data dto.ProductVariantsBulkCreateData
		if err := c.graphqlRequest(ctx, productVariantsBulkCreateMutation, variables, &data); err != nil {
			return result, err
		}
		result.Errors = append(result.Errors, userErrorsToStrings(data.ProductVariantsBulkCreate.UserErrors)...)
		created = data.ProductVariantsBulkCreate.ProductVariants
		for _, variant := range created {
			result.Created = append(result.Created, variant.SKU)
		}
	}

	if len(created) > 0 && len(colorImageURLs) > 0 {
		if err := c.assignColorImages(ctx, productID, created, createColors, colorImageURLs); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("assign images: %v", err))
		}
	}

	c.log(fmt.Sprintf("product %s: %d created, %d updated, %d errors",
		productID, len(result.Created), len(result.Updated), len(result.Errors)))
	return result, nil
}

// productPrice picks the price new variants get: the first non-zero
// price already on the product, otherwise retail derived from the first
// row carrying a vendor price.
func (c *Client) productPrice(existing map[string]existingVariant, rows []model.VendorRow) string {
	for _, variant := range existing {
		if price, err := strconv.ParseFloat(variant.Price, 64); err == nil && price > 0 {
			return variant.Price
		}
	}
	for _, row := range rows {
		if eur, err := strconv.ParseFloat(strings.TrimSpace(row.Price), 64); err == nil && eur > 0 {
			return pricing.EURToDKKRetail(eur)
		}
	}
	return ""
}

func variantInput(row model.VendorRow, pairs []dto.SelectedOptionNode, price string) map[string]any {
	inventoryItem := map[string]any{
		"sku":     row.SKU,
		"tracked": true,
	}
	if eur, err := strconv.ParseFloat(strings.TrimSpace(row.Price), 64); err == nil && eur > 0 {
		inventoryItem["cost"] = pricing.EURToDKKCost(eur)
	}
	if row.CountryOfOrigin != "" {
		inventoryItem["countryCodeOfOrigin"] = row.CountryOfOrigin
	}
	if row.HSCode != "" {
		inventoryItem["harmonizedSystemCode"] = row.HSCode
	}
	if weight, err := strconv.ParseFloat(strings.TrimSpace(row.Weight), 64); err == nil && weight > 0 {
		unit := weightUnitEnum(row.WeightUnit)
		inventoryItem["measurement"] = map[string]any{
			"weight": map[string]any{"value": weight, "unit": unit},
		}
	}

	input := map[string]any{
		"barcode":         row.EAN,
		"inventoryPolicy": "DENY",
		"inventoryItem":   inventoryItem,
	}
	if price != "" {
		input["price"] = price
	}
	if len(pairs) > 0 {
		values := make([]map[string]any, 0, len(pairs))
		for _, pair := range pairs {
			values = append(values, map[string]any{"optionName": pair.Name, "name": pair.Value})
		}
		input["optionValues"] = values
	}
	return input
}

func weightUnitEnum(unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "grams":
		return "GRAMS"
	case "lb", "pounds":
		return "POUNDS"
	case "oz", "ounces":
		return "OUNCES"
	default:
		return "KILOGRAMS"
	}
}

const variantMediaPageQuery = `
query variantMediaPage($id: ID!, $cursor: String) {
  product(id: $id) {
    variants(first: 100, after: $cursor) {
      edges {
        node {
          id
          selectedOptions { name value }
          media(first: 1) { edges { node { id } } }
        }
      }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const productCreateMediaMutation = `
mutation productCreateMedia($productId: ID!, $media: [CreateMediaInput!]!) {
  productCreateMedia(productId: $productId, media: $media) {
    media {
      ... on MediaImage { id alt status image { url } }
    }
    mediaUserErrors { field message }
  }
}`

// assignColorImages attaches one image per color to that color's new
// variants. An image already on another variant of the same color is
// reused instead of uploaded again. rowColors maps SKU to color; the
// created list omits rows the API rejected, so colors are looked up by
// SKU, never by input position.
func (c *Client) assignColorImages(ctx context.Context, productID string, created []dto.CreatedVariantNode, rowColors map[string]string, colorImageURLs map[string]string) error {
	colorMedia, err := c.existingColorMedia(ctx, productID)
	if err != nil {
		return err
	}

	// Colors still without media get one upload each, in created order.
	var uploadColors []string
	seen := map[string]bool{}
	for _, variant := range created {
		color := rowColors[variant.SKU]
		if color == "" || seen[color] {
			continue
		}
		seen[color] = true
		if _, have := colorMedia[color]; have {
			continue
		}
		if _, have := colorImageURLs[color]; !have {
			continue
		}
		uploadColors = append(uploadColors, color)
	}

	if len(uploadColors) > 0 {
		media := make([]map[string]any, 0, len(uploadColors))
		for _, color := range uploadColors {
			media = append(media, map[string]any{
				"originalSource":   colorImageURLs[color],
				"mediaContentType": "IMAGE",
				"alt":              color,
			})
		}
		variables := map[string]any{"productId": productID, "media": media}
		var data dto.ProductCreateMediaData
		if err := c.graphqlRequest(ctx, productCreateMediaMutation, variables, &data); err != nil {
			return err
		}
		if err := userErrorsToError("productCreateMedia", data.ProductCreateMedia.MediaUserErrors); err != nil {
			return err
		}
		for i, node := range data.ProductCreateMedia.Media {
			if i < len(uploadColors) && node.ID != "" {
				colorMedia[uploadColors[i]] = node.ID
			}
		}
	}

	var updates []map[string]any
	for _, variant := range created {
		mediaID, ok := colorMedia[rowColors[variant.SKU]]
		if !ok {
			continue
		}
		updates = append(updates, map[string]any{"id": variant.ID, "mediaId": mediaID})
	}
	if len(updates) == 0 {
		return nil
	}

	variables := map[string]any{"productId": productID, "variants": updates}
	var data dto.ProductVariantsBulkUpdateData
	if err := c.graphqlRequest(ctx, productVariantsBulkUpdateMutation, variables, &data); err != nil {
		return err
	}
	return userErrorsToError("productVariantsBulkUpdate media", data.ProductVariantsBulkUpdate.UserErrors)
}

// existingColorMedia maps color option values to the media id already
// attached to a variant of that color.
func (c *Client) existingColorMedia(ctx context.Context, productID string) (map[string]string, error) {
	colorMedia := make(map[string]string)
	var cursor string
	for {
		variables := map[string]any{"id": productID}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.VariantMediaPageData
		if err := c.graphqlRequest(ctx, variantMediaPageQuery, variables, &data); err != nil {
			return nil, err
		}
		if data.Product == nil {
			return nil, fmt.Errorf("product %s not found", productID)
		}
		for _, edge := range data.Product.Variants.Edges {
			node := edge.Node
			if len(node.Media.Edges) == 0 {
				continue
			}
			for _, opt := range node.SelectedOptions {
				if opt.Name != optionNameColor || opt.Value == "" {
					continue
				}
				if _, have := colorMedia[opt.Value]; !have {
					colorMedia[opt.Value] = node.Media.Edges[0].Node.ID
				}
			}
		}
		if !data.Product.Variants.PageInfo.HasNextPage {
			break
		}
		cursor = data.Product.Variants.PageInfo.EndCursor
	}
	return colorMedia, nil
}
