package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

const (
	optionNameColor  = "Farve"
	optionNameSize   = "Størrelse"
	optionNameLength = "Længde"
	optionNameTitle  = "Title"
)

// DetectedOption is one product option derived from a vendor batch,
// ready to be created on a new product. Linked options carry the
// metafield they link to and the metaobject GID per resolved value.
type DetectedOption struct {
	Name           string
	Linked         bool
	Namespace      string
	Key            string
	MetaobjectType string
	Values         []string
	ResolvedGIDs   map[string]string
	MissingValues  []string
}

const vendorProductOptionsQuery = `
query vendorProductOptions($query: String!, $cursor: String) {
  products(first: 50, after: $cursor, query: $query) {
    edges {
      node {
        id
        title
        options {
          id
          name
          linkedMetafield { namespace key }
          optionValues { id name linkedMetafieldValue }
        }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

// findReferenceOptionTemplate scans the vendor's existing products for
// one with real options and returns them as the template for new
// products. Products carrying only the default Title option are skipped.
func (c *Client) findReferenceOptionTemplate(ctx context.Context, vendor string) ([]dto.ProductOptionNode, error) {
	query := buildSearchQuery("vendor", vendor)
	var cursor string
	for {
		variables := map[string]any{"query": query}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.VendorProductOptionsData
		if err := c.graphqlRequest(ctx, vendorProductOptionsQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("scan vendor products for options: %w", err)
		}
		for _, edge := range data.Products.Edges {
			options := edge.Node.Options
			if len(options) == 0 {
				continue
			}
			if len(options) == 1 && options[0].Name == optionNameTitle {
				continue
			}
			c.log(fmt.Sprintf("option template taken from %q", edge.Node.Title))
			return options, nil
		}
		if !data.Products.PageInfo.HasNextPage {
			return nil, nil
		}
		cursor = data.Products.PageInfo.EndCursor
	}
}

// DetectProductOptions derives the options a new product needs from its
// vendor rows: distinct colors, sizes, and lengths (lengths only when
// the batch spans more than one length letter). A reference product of
// the same vendor supplies metafield linking; color names are resolved
// against the color metaobject pool, with unresolvable names reported
// in MissingValues rather than failing the detection.
func (c *Client) DetectProductOptions(ctx context.Context, vendor string, rows []model.VendorRow) ([]DetectedOption, error) {
	colors := distinctInOrder(rows, func(r model.VendorRow) string { return r.Color })
	sizes := sizeOptionValues(rows)

	lengths := lengthOptionValues(rows)

	template, err := c.findReferenceOptionTemplate(ctx, vendor)
	if err != nil {
		return nil, err
	}

	var options []DetectedOption
	if len(colors) > 0 {
		option := DetectedOption{Name: optionNameColor, Values: colors}

		if ref := templateOption(template, optionNameColor); ref != nil && ref.LinkedMetafield != nil {
			sampleGID := ""
			for _, value := range ref.OptionValues {
				if value.LinkedMetafieldValue != "" {
					sampleGID = value.LinkedMetafieldValue
					break
				}
			}
			metaobjectType, err := c.DiscoverColorMetaobjectType(ctx, sampleGID)
			if err != nil {
				return nil, err
			}
			option.Linked = true
			option.Namespace = ref.LinkedMetafield.Namespace
			option.Key = ref.LinkedMetafield.Key
			option.MetaobjectType = metaobjectType
		} else if def, metaobjectType, err := c.findColorMetafieldDefinition(ctx); err != nil {
			c.logWarning(fmt.Sprintf("no color metafield definition, option stays unlinked: %v", err))
		} else {
			option.Linked = true
			option.Namespace = def.Namespace
			option.Key = def.Key
			option.MetaobjectType = metaobjectType
		}

		if option.Linked {
			resolved, missing, err := c.ResolveMetaobjectValues(ctx, option.MetaobjectType, colors)
			if err != nil {
				return nil, err
			}
			option.ResolvedGIDs = resolved
			option.MissingValues = missing
		}
		options = append(options, option)
	}
	if len(sizes) > 0 {
		options = append(options, DetectedOption{Name: optionNameSize, Values: sizes})
	}
	if len(lengths) > 0 {
		options = append(options, DetectedOption{Name: optionNameLength, Values: lengths})
	}
	return options, nil
}

// findColorMetafieldDefinition falls back to the shop's linkable
// PRODUCT metafield definitions when no reference product exists yet,
// picking the first one that looks like a color and resolving its
// metaobject type.
func (c *Client) findColorMetafieldDefinition(ctx context.Context) (*MetafieldDefinitionInfo, string, error) {
	defs, err := c.FetchLinkableMetafieldDefinitions(ctx)
	if err != nil {
		return nil, "", err
	}
	for i := range defs {
		def := &defs[i]
		haystack := strings.ToLower(def.Key + " " + def.Name)
		if !strings.Contains(haystack, "color") && !strings.Contains(haystack, "colour") && !strings.Contains(haystack, "farve") {
			continue
		}
		if def.MetaobjectDefinitionID == "" {
			continue
		}
		metaobjectType, err := c.MetaobjectDefinitionType(ctx, def.MetaobjectDefinitionID)
		if err != nil {
			return nil, "", err
		}
		return def, metaobjectType, nil
	}
	return nil, "", fmt.Errorf("no linkable color metafield definition")
}

func templateOption(template []dto.ProductOptionNode, name string) *dto.ProductOptionNode {
	for i := range template {
		if strings.EqualFold(template[i].Name, name) {
			return &template[i]
		}
	}
	return nil
}

// sizeOptionValues returns the batch's distinct normalized sizes. The
// one-size marker never becomes a size value, so a one-size batch gets
// no Størrelse option.
func sizeOptionValues(rows []model.VendorRow) []string {
	return distinctInOrder(rows, func(r model.VendorRow) string {
		size := model.NormalizeSize(model.StripLengthSuffix(r.Size))
		if model.IsOneSize(size) {
			return ""
		}
		return size
	})
}

// lengthOptionValues derives the length option from the batch's SKU
// length letters. A single letter across the whole batch means the
// product has no meaningful length axis, so the option is omitted.
func lengthOptionValues(rows []model.VendorRow) []string {
	letters := map[string]bool{}
	for _, row := range rows {
		if letter := model.LengthLetterFromSKU(row.SKU); letter != "" {
			letters[letter] = true
		}
	}
	if len(letters) <= 1 {
		return nil
	}
	sorted := make([]string, 0, len(letters))
	for letter := range letters {
		sorted = append(sorted, letter)
	}
	sort.Strings(sorted)
	var lengths []string
	for _, letter := range sorted {
		if name, ok := model.LengthNames[letter]; ok {
			lengths = append(lengths, name)
		}
	}
	return lengths
}

func distinctInOrder(rows []model.VendorRow, pick func(model.VendorRow) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, row := range rows {
		value := strings.TrimSpace(pick(row))
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}

const metafieldsSetMutation = `
mutation metafieldsSet($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    metafields { namespace key value }
    userErrors { field message }
  }
}`

const productOptionsCreateMutation = `
mutation productOptionsCreate($productId: ID!, $options: [OptionCreateInput!]!) {
  productOptionsCreate(productId: $productId, options: $options) {
    product {
      id
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

// CreateProductOptions creates the detected options on a product. For
// each linked option the backing product metafield is populated with
// the metaobject GID list first; a metafieldsSet failure demotes just
// that option to an unlinked one instead of aborting the whole create.
func (c *Client) CreateProductOptions(ctx context.Context, productID string, options []DetectedOption) error {
	if len(options) == 0 {
		return nil
	}

	inputs := make([]map[string]any, 0, len(options))
	for _, option := range options {
		linked := option.Linked
		if linked {
			if err := c.setOptionMetafield(ctx, productID, option); err != nil {
				c.logWarning(fmt.Sprintf("option %q demoted to unlinked: %v", option.Name, err))
				linked = false
			}
		}

		if linked {
			values := make([]map[string]any, 0, len(option.Values))
			for _, name := range option.Values {
				gid, ok := option.ResolvedGIDs[name]
				if !ok {
					continue
				}
				values = append(values, map[string]any{"linkedMetafieldValue": gid})
			}
			inputs = append(inputs, map[string]any{
				"name": option.Name,
				"linkedMetafield": map[string]any{
					"namespace": option.Namespace,
					"key":       option.Key,
				},
				"values": values,
			})
			continue
		}

		values := make([]map[string]any, 0, len(option.Values))
		for _, name := range option.Values {
			values = append(values, map[string]any{"name": name})
		}
		inputs = append(inputs, map[string]any{
			"name":   option.Name,
			"values": values,
		})
	}

	variables := map[string]any{
		"productId": productID,
		"options":   inputs,
	}
	var data dto.ProductOptionsCreateData
	if err := c.graphqlRequest(ctx, productOptionsCreateMutation, variables, &data); err != nil {
		return err
	}
	if err := userErrorsToError("productOptionsCreate", data.ProductOptionsCreate.UserErrors); err != nil {
		return err
	}
	if data.ProductOptionsCreate.Product == nil {
		return fmt.Errorf("productOptionsCreate returned no product")
	}
	return nil
}

// setOptionMetafield writes the resolved metaobject GID list into the
// product metafield a linked option references.
func (c *Client) setOptionMetafield(ctx context.Context, productID string, option DetectedOption) error {
	gids := make([]string, 0, len(option.Values))
	for _, name := range option.Values {
		if gid, ok := option.ResolvedGIDs[name]; ok {
			gids = append(gids, gid)
		}
	}
	if len(gids) == 0 {
		return fmt.Errorf("no resolved metaobject values for %s", option.Name)
	}
	value, err := json.Marshal(gids)
	if err != nil {
		return err
	}

	variables := map[string]any{
		"metafields": []map[string]any{{
			"ownerId":   productID,
			"namespace": option.Namespace,
			"key":       option.Key,
			"type":      FieldTypeListMetaobjectReference.String(),
			"value":     string(value),
		}},
	}
	var data dto.MetafieldsSetData
	if err := c.graphqlRequest(ctx, metafieldsSetMutation, variables, &data); err != nil {
		return err
	}
	return userErrorsToError("metafieldsSet", data.MetafieldsSet.UserErrors)
}
