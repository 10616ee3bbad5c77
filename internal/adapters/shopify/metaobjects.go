package shopify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
)

// FieldTypeCategory classifies a metafield/metaobject field type name.
// Every dispatch on a field type goes through this enumeration so an
// unrecognized API type surfaces as FieldTypeUnknown instead of being
// silently treated as text.
type FieldTypeCategory int

const (
	FieldTypeUnknown FieldTypeCategory = iota
	FieldTypeMetaobjectReference
	FieldTypeListMetaobjectReference
	FieldTypeSingleLineText
)

func ParseFieldTypeCategory(typeName string) FieldTypeCategory {
	switch typeName {
	case "metaobject_reference":
		return FieldTypeMetaobjectReference
	case "list.metaobject_reference":
		return FieldTypeListMetaobjectReference
	case "single_line_text_field":
		return FieldTypeSingleLineText
	default:
		return FieldTypeUnknown
	}
}

func (c FieldTypeCategory) IsMetaobjectReference() bool {
	return c == FieldTypeMetaobjectReference || c == FieldTypeListMetaobjectReference
}

func (c FieldTypeCategory) String() string {
	switch c {
	case FieldTypeMetaobjectReference:
		return "metaobject_reference"
	case FieldTypeListMetaobjectReference:
		return "list.metaobject_reference"
	case FieldTypeSingleLineText:
		return "single_line_text_field"
	default:
		return "unknown"
	}
}

type MetaobjectEntry struct {
	ID          string
	DisplayName string
}

type MetaobjectFieldDef struct {
	Key         string
	Name        string
	Required    bool
	Category    FieldTypeCategory
	TypeName    string
	Validations map[string]string
}

type MetafieldDefinitionInfo struct {
	Namespace              string
	Key                    string
	Name                   string
	Category               FieldTypeCategory
	MetaobjectDefinitionID string
}

const metaobjectsByTypeQuery = `
query metaobjectsByType($type: String!, $cursor: String) {
  metaobjects(type: $type, first: 250, after: $cursor) {
    edges { node { id displayName type } }
    pageInfo { hasNextPage endCursor }
  }
}`

// FetchMetaobjectsByType lists every metaobject of the given type in
// definition order.
func (c *Client) FetchMetaobjectsByType(ctx context.Context, metaobjectType string) ([]MetaobjectEntry, error) {
	var entries []MetaobjectEntry
	var cursor string
	for {
		variables := map[string]any{"type": metaobjectType}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.MetaobjectsByTypeData
		if err := c.graphqlRequest(ctx, metaobjectsByTypeQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("fetch metaobjects of type %s: %w", metaobjectType, err)
		}
		for _, edge := range data.Metaobjects.Edges {
			entries = append(entries, MetaobjectEntry{
				ID:          edge.Node.ID,
				DisplayName: edge.Node.DisplayName,
			})
		}
		if !data.Metaobjects.PageInfo.HasNextPage {
			break
		}
		cursor = data.Metaobjects.PageInfo.EndCursor
	}
	return entries, nil
}

// ResolveMetaobjectValues maps display names to metaobject GIDs. The
// match is exact and case sensitive; names without a metaobject come
// back in missing so callers can report them instead of guessing.
func (c *Client) ResolveMetaobjectValues(ctx context.Context, metaobjectType string, names []string) (map[string]string, []string, error) {
	entries, err := c.FetchMetaobjectsByType(ctx, metaobjectType)
	if err != nil {
		return nil, nil, err
	}
	byName := make(map[string]string, len(entries))
	for _, entry := range entries {
		if _, exists := byName[entry.DisplayName]; !exists {
			byName[entry.DisplayName] = entry.ID
		}
	}

	resolved := make(map[string]string)
	var missing []string
	for _, name := range names {
		if id, ok := byName[name]; ok {
			resolved[name] = id
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		c.logWarning(fmt.Sprintf("no %s metaobject for: %s", metaobjectType, strings.Join(missing, ", ")))
	}
	return resolved, missing, nil
}

const metaobjectTypeQuery = `
query metaobjectType($id: ID!) {
  metaobject(id: $id) { id displayName type }
}`

const metaobjectDefinitionsQuery = `
query metaobjectDefinitions {
  metaobjectDefinitions(first: 50) {
    edges {
      node {
        type
        displayNameKey
        fieldDefinitions {
          key
          name
          required
          type { name }
          validations { name value }
        }
      }
    }
  }
}`

type typeDiscoveryStrategy struct {
	name string
	run  func(ctx context.Context) (string, error)
}

// DiscoverColorMetaobjectType finds the metaobject type backing a linked
// color option. Strategies run in order until one yields a type; a
// strategy error is logged and the next one tried. sampleGID may be
// empty, in which case only the definition scan runs.
func (c *Client) DiscoverColorMetaobjectType(ctx context.Context, sampleGID string) (string, error) {
	strategies := []typeDiscoveryStrategy{
		{
			name: "sample metaobject lookup",
			run: func(ctx context.Context) (string, error) {
				if sampleGID == "" {
					return "", fmt.Errorf("no sample metaobject gid")
				}
				var data dto.MetaobjectTypeData
				if err := c.graphqlRequest(ctx, metaobjectTypeQuery, map[string]any{"id": sampleGID}, &data); err != nil {
					return "", err
				}
				if data.Metaobject == nil || data.Metaobject.Type == "" {
					return "", fmt.Errorf("metaobject %s has no type", sampleGID)
				}
				return data.Metaobject.Type, nil
			},
		},
		{
			name: "definition scan",
			run: func(ctx context.Context) (string, error) {
				var data dto.MetaobjectDefinitionsData
				if err := c.graphqlRequest(ctx, metaobjectDefinitionsQuery, nil, &data); err != nil {
					return "", err
				}
				for _, edge := range data.MetaobjectDefinitions.Edges {
					lower := strings.ToLower(edge.Node.Type)
					if strings.Contains(lower, "color") || strings.Contains(lower, "colour") {
						return edge.Node.Type, nil
					}
				}
				return "", fmt.Errorf("no definition type containing color/colour")
			},
		},
	}

	for _, strategy := range strategies {
		metaobjectType, err := strategy.run(ctx)
		if err != nil {
			c.logWarning(fmt.Sprintf("color type discovery via %s failed: %v", strategy.name, err))
			continue
		}
		c.log(fmt.Sprintf("color metaobject type %q found via %s", metaobjectType, strategy.name))
		return metaobjectType, nil
	}
	return "", fmt.Errorf("could not discover color metaobject type")
}

const metaobjectWithDefinitionQuery = `
query metaobjectWithDefinition($id: ID!) {
  metaobject(id: $id) {
    definition {
      type
      displayNameKey
      fieldDefinitions {
        key
        name
        required
        type { name }
        validations { name value }
      }
    }
  }
}`

const metaobjectFieldsQuery = `
query metaobjectFields($id: ID!) {
  metaobject(id: $id) {
    fields { key type value }
  }
}`

type fieldDefDiscoveryStrategy struct {
	name string
	run  func(ctx context.Context) ([]MetaobjectFieldDef, string, error)
}

// FetchMetaobjectFieldDefinitions resolves the field schema of a
// metaobject type, returning the definitions plus the displayNameKey
// when the API exposes one. The fallback strategy introspects a sample
// metaobject's fields and carries no validations or required flags.
func (c *Client) FetchMetaobjectFieldDefinitions(ctx context.Context, metaobjectType, sampleGID string) ([]MetaobjectFieldDef, string, error) {
	strategies := []fieldDefDiscoveryStrategy{
		{
			name: "definition via sample metaobject",
			run: func(ctx context.Context) ([]MetaobjectFieldDef, string, error) {
				if sampleGID == "" {
					return nil, "", fmt.Errorf("no sample metaobject gid")
				}
				var data dto.MetaobjectWithDefinitionData
				if err := c.graphqlRequest(ctx, metaobjectWithDefinitionQuery, map[string]any{"id": sampleGID}, &data); err != nil {
					return nil, "", err
				}
				if data.Metaobject == nil || data.Metaobject.Definition == nil {
					return nil, "", fmt.Errorf("metaobject %s has no definition", sampleGID)
				}
				def := data.Metaobject.Definition
				return fieldDefsFromDTO(def.FieldDefinitions), def.DisplayNameKey, nil
			},
		},
		{
			name: "definition list filter",
			run: func(ctx context.Context) ([]MetaobjectFieldDef, string, error) {
				var data dto.MetaobjectDefinitionsData
				if err := c.graphqlRequest(ctx, metaobjectDefinitionsQuery, nil, &data); err != nil {
					return nil, "", err
				}
				for _, edge := range data.MetaobjectDefinitions.Edges {
					if edge.Node.Type == metaobjectType {
						return fieldDefsFromDTO(edge.Node.FieldDefinitions), edge.Node.DisplayNameKey, nil
					}
				}
				return nil, "", fmt.Errorf("no definition with type %s", metaobjectType)
			},
		},
		{
			name: "field introspection",
			run: func(ctx context.Context) ([]MetaobjectFieldDef, string, error) {
				if sampleGID == "" {
					return nil, "", fmt.Errorf("no sample metaobject gid")
				}
				var data dto.MetaobjectFieldsData
				if err := c.graphqlRequest(ctx, metaobjectFieldsQuery, map[string]any{"id": sampleGID}, &data); err != nil {
					return nil, "", err
				}
				if data.Metaobject == nil {
					return nil, "", fmt.Errorf("metaobject %s not found", sampleGID)
				}
				defs := make([]MetaobjectFieldDef, 0, len(data.Metaobject.Fields))
				for _, field := range data.Metaobject.Fields {
					defs = append(defs, MetaobjectFieldDef{
						Key:      field.Key,
						Name:     field.Key,
						Category: ParseFieldTypeCategory(field.Type),
						TypeName: field.Type,
					})
				}
				if len(defs) == 0 {
					return nil, "", fmt.Errorf("metaobject %s exposes no fields", sampleGID)
				}
				return defs, "", nil
			},
		},
	}

	for _, strategy := range strategies {
		defs, displayNameKey, err := strategy.run(ctx)
		if err != nil {
			c.logWarning(fmt.Sprintf("field definition discovery via %s failed: %v", strategy.name, err))
			continue
		}
		c.log(fmt.Sprintf("field definitions for %q found via %s", metaobjectType, strategy.name))
		return defs, displayNameKey, nil
	}
	return nil, "", fmt.Errorf("could not discover field definitions for %s", metaobjectType)
}

func fieldDefsFromDTO(defs []dto.MetaobjectFieldDefinition) []MetaobjectFieldDef {
	out := make([]MetaobjectFieldDef, 0, len(defs))
	for _, def := range defs {
		fieldDef := MetaobjectFieldDef{
			Key:      def.Key,
			Name:     def.Name,
			Required: def.Required,
			Category: ParseFieldTypeCategory(def.Type.Name),
			TypeName: def.Type.Name,
		}
		if len(def.Validations) > 0 {
			fieldDef.Validations = make(map[string]string, len(def.Validations))
			for _, v := range def.Validations {
				fieldDef.Validations[v.Name] = v.Value
			}
		}
		out = append(out, fieldDef)
	}
	return out
}

const metaobjectCreateMutation = `
mutation metaobjectCreate($metaobject: MetaobjectCreateInput!) {
  metaobjectCreate(metaobject: $metaobject) {
    metaobject { id displayName type }
    userErrors { field message }
  }
}`

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// MetaobjectHandle derives a handle the way the admin UI does: lower
// case, non-alphanumeric runs collapsed to a single dash.
func MetaobjectHandle(displayName string) string {
	handle := nonAlnumRun.ReplaceAllString(strings.ToLower(displayName), "-")
	return strings.Trim(handle, "-")
}

// CreateMetaobject creates one metaobject of the given type. The
// display name is written into the definition's displayNameKey field;
// when that cannot be discovered the first single-line text field is
// used, then "name". Extra fields are passed through as-is.
func (c *Client) CreateMetaobject(ctx context.Context, metaobjectType, displayName string, extraFields map[string]string) (MetaobjectEntry, error) {
	displayNameField := "name"
	defs, displayNameKey, err := c.FetchMetaobjectFieldDefinitions(ctx, metaobjectType, "")
	if err == nil {
		if displayNameKey != "" {
			displayNameField = displayNameKey
		} else {
			for _, def := range defs {
				if def.Category == FieldTypeSingleLineText {
					displayNameField = def.Key
					break
				}
			}
		}
	} else {
		c.logWarning(fmt.Sprintf("create metaobject %s: falling back to field %q: %v", metaobjectType, displayNameField, err))
	}

	fields := []map[string]any{{"key": displayNameField, "value": displayName}}
	for key, value := range extraFields {
		if key == displayNameField {
			continue
		}
		fields = append(fields, map[string]any{"key": key, "value": value})
	}

	variables := map[string]any{
		"metaobject": map[string]any{
			"type":   metaobjectType,
			"handle": MetaobjectHandle(displayName),
			"fields": fields,
		},
	}

	var data dto.MetaobjectCreateData
	if err := c.graphqlRequest(ctx, metaobjectCreateMutation, variables, &data); err != nil {
		return MetaobjectEntry{}, err
	}
	if err := userErrorsToError("metaobjectCreate", data.MetaobjectCreate.UserErrors); err != nil {
		return MetaobjectEntry{}, err
	}
	if data.MetaobjectCreate.Metaobject == nil {
		return MetaobjectEntry{}, fmt.Errorf("metaobjectCreate returned no metaobject")
	}
	created := MetaobjectEntry{
		ID:          data.MetaobjectCreate.Metaobject.ID,
		DisplayName: data.MetaobjectCreate.Metaobject.DisplayName,
	}
	c.logSuccess(fmt.Sprintf("created %s metaobject %q (%s)", metaobjectType, created.DisplayName, created.ID))
	return created, nil
}

const metaobjectDefinitionTypeQuery = `
query metaobjectDefinitionType($id: ID!) {
  node(id: $id) {
    ... on MetaobjectDefinition { type }
  }
}`

// MetaobjectDefinitionType resolves a MetaobjectDefinition GID (as found
// in metafield definition validations) to its type string.
func (c *Client) MetaobjectDefinitionType(ctx context.Context, definitionGID string) (string, error) {
	var data dto.MetaobjectDefinitionTypeNodeData
	if err := c.graphqlRequest(ctx, metaobjectDefinitionTypeQuery, map[string]any{"id": definitionGID}, &data); err != nil {
		return "", err
	}
	if data.Node == nil || data.Node.Type == "" {
		return "", fmt.Errorf("metaobject definition %s not found", definitionGID)
	}
	return data.Node.Type, nil
}

const productMetafieldDefinitionsQuery = `
query productMetafieldDefinitions($cursor: String) {
  metafieldDefinitions(first: 100, after: $cursor, ownerType: PRODUCT) {
    edges {
      node {
        namespace
        key
        name
        type { name }
        validations { name value }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}`

// FetchLinkableMetafieldDefinitions lists the PRODUCT metafield
// definitions whose type can back a linked product option, i.e. the
// metaobject reference categories.
func (c *Client) FetchLinkableMetafieldDefinitions(ctx context.Context) ([]MetafieldDefinitionInfo, error) {
	var defs []MetafieldDefinitionInfo
	var cursor string
	for {
		variables := map[string]any{}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var data dto.MetafieldDefinitionsData
		if err := c.graphqlRequest(ctx, productMetafieldDefinitionsQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("fetch metafield definitions: %w", err)
		}
		for _, edge := range data.MetafieldDefinitions.Edges {
			category := ParseFieldTypeCategory(edge.Node.Type.Name)
			if !category.IsMetaobjectReference() {
				continue
			}
			info := MetafieldDefinitionInfo{
				Namespace: edge.Node.Namespace,
				Key:       edge.Node.Key,
				Name:      edge.Node.Name,
				Category:  category,
			}
			for _, v := range edge.Node.Validations {
				if v.Name == "metaobject_definition_id" {
					info.MetaobjectDefinitionID = v.Value
				}
			}
			defs = append(defs, info)
		}
		if !data.MetafieldDefinitions.PageInfo.HasNextPage {
			break
		}
		cursor = data.MetafieldDefinitions.PageInfo.EndCursor
	}
	return defs, nil
}
