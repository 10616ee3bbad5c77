package dto

type LinkedMetafield struct {
	Namespace string `json:"namespace,omitempty"`
	Key       string `json:"key,omitempty"`
}

type OptionValueNode struct {
	ID                   string `json:"id,omitempty"`
	Name                 string `json:"name,omitempty"`
	LinkedMetafieldValue string `json:"linkedMetafieldValue,omitempty"`
}

type ProductOptionNode struct {
	ID              string            `json:"id,omitempty"`
	Name            string            `json:"name,omitempty"`
	LinkedMetafield *LinkedMetafield  `json:"linkedMetafield,omitempty"`
	OptionValues    []OptionValueNode `json:"optionValues,omitempty"`
}

type ProductOptionsData struct {
	Product *struct {
		Options []ProductOptionNode `json:"options,omitempty"`
	} `json:"product,omitempty"`
}

type VendorProductOptionsData struct {
	Products struct {
		Edges []struct {
			Node struct {
				ID      string              `json:"id,omitempty"`
				Title   string              `json:"title,omitempty"`
				Options []ProductOptionNode `json:"options,omitempty"`
			} `json:"node"`
		} `json:"edges,omitempty"`
		PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
	} `json:"products"`
}

type ProductOptionsCreateData struct {
	ProductOptionsCreate struct {
		Product *struct {
			ID      string              `json:"id,omitempty"`
			Options []ProductOptionNode `json:"options,omitempty"`
		} `json:"product,omitempty"`
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"productOptionsCreate"`
}

type ProductOptionUpdateData struct {
	ProductOptionUpdate struct {
		Product *struct {
			Options []ProductOptionNode `json:"options,omitempty"`
		} `json:"product,omitempty"`
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"productOptionUpdate"`
}
