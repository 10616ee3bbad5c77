package dto

type MetaobjectNode struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Type        string `json:"type,omitempty"`
}

type MetaobjectsByTypeData struct {
	Metaobjects struct {
		Edges []struct {
			Node MetaobjectNode `json:"node"`
		} `json:"edges,omitempty"`
		PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
	} `json:"metaobjects"`
}

type MetaobjectTypeData struct {
	Metaobject *MetaobjectNode `json:"metaobject,omitempty"`
}

type MetaobjectFieldDefinition struct {
	Key      string `json:"key,omitempty"`
	Name     string `json:"name,omitempty"`
	Required bool   `json:"required,omitempty"`
	Type     struct {
		Name string `json:"name,omitempty"`
	} `json:"type,omitempty"`
	Validations []FieldValidation `json:"validations,omitempty"`
}

type FieldValidation struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

type MetaobjectDefinitionNode struct {
	Type             string                      `json:"type,omitempty"`
	DisplayNameKey   string                      `json:"displayNameKey,omitempty"`
	FieldDefinitions []MetaobjectFieldDefinition `json:"fieldDefinitions,omitempty"`
}

type MetaobjectDefinitionsData struct {
	MetaobjectDefinitions struct {
		Edges []struct {
			Node MetaobjectDefinitionNode `json:"node"`
		} `json:"edges,omitempty"`
	} `json:"metaobjectDefinitions"`
}

type MetaobjectWithDefinitionData struct {
	Metaobject *struct {
		Definition *MetaobjectDefinitionNode `json:"definition,omitempty"`
	} `json:"metaobject,omitempty"`
}

type MetaobjectFieldsData struct {
	Metaobject *struct {
		Fields []struct {
			Key   string `json:"key,omitempty"`
			Type  string `json:"type,omitempty"`
			Value string `json:"value,omitempty"`
		} `json:"fields,omitempty"`
	} `json:"metaobject,omitempty"`
}

type MetaobjectCreateData struct {
	MetaobjectCreate struct {
		Metaobject *MetaobjectNode    `json:"metaobject,omitempty"`
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"metaobjectCreate"`
}

type MetaobjectDefinitionTypeNodeData struct {
	Node *struct {
		Type string `json:"type,omitempty"`
	} `json:"node,omitempty"`
}

type MetafieldDefinitionNode struct {
	Namespace string `json:"namespace,omitempty"`
	Key       string `json:"key,omitempty"`
	Name      string `json:"name,omitempty"`
	Type      struct {
		Name string `json:"name,omitempty"`
	} `json:"type,omitempty"`
	Validations []FieldValidation `json:"validations,omitempty"`
}

type MetafieldDefinitionsData struct {
	MetafieldDefinitions struct {
		Edges []struct {
			Node MetafieldDefinitionNode `json:"node"`
		} `json:"edges,omitempty"`
		PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
	} `json:"metafieldDefinitions"`
}

type MetafieldsSetData struct {
	MetafieldsSet struct {
		Metafields []struct {
			Namespace string `json:"namespace,omitempty"`
			Key       string `json:"key,omitempty"`
			Value     string `json:"value,omitempty"`
		} `json:"metafields,omitempty"`
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"metafieldsSet"`
}
