package dto

type ProductCreateData struct {
	ProductCreate struct {
		Product *struct {
			ID     string `json:"id,omitempty"`
			Title  string `json:"title,omitempty"`
			Handle string `json:"handle,omitempty"`
			Vendor string `json:"vendor,omitempty"`
			Status string `json:"status,omitempty"`
		} `json:"product,omitempty"`
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"productCreate"`
}

type PublicationNode struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type PublicationsData struct {
	Publications struct {
		Edges []struct {
			Node PublicationNode `json:"node"`
		} `json:"edges,omitempty"`
	} `json:"publications"`
}

type PublishablePublishData struct {
	PublishablePublish struct {
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"publishablePublish"`
}

type TaxonomyCategoryNode struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	FullName string `json:"fullName,omitempty"`
	IsLeaf   bool   `json:"isLeaf,omitempty"`
}

type TaxonomyData struct {
	Taxonomy *struct {
		Categories struct {
			Edges []struct {
				Node TaxonomyCategoryNode `json:"node"`
			} `json:"edges,omitempty"`
			PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
		} `json:"categories,omitempty"`
	} `json:"taxonomy,omitempty"`
}

type ProductTagsData struct {
	Shop struct {
		ProductTags struct {
			Edges []struct {
				Node string `json:"node"`
			} `json:"edges,omitempty"`
			PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
		} `json:"productTags,omitempty"`
	} `json:"shop"`
}
