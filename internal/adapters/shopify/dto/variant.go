package dto

type CreatedVariantNode struct {
	ID      string `json:"id,omitempty"`
	SKU     string `json:"sku,omitempty"`
	Barcode string `json:"barcode,omitempty"`
	Title   string `json:"title,omitempty"`
}

type ProductVariantsBulkCreateData struct {
	ProductVariantsBulkCreate struct {
		ProductVariants []CreatedVariantNode `json:"productVariants,omitempty"`
		UserErrors      []ShopifyUserError   `json:"userErrors,omitempty"`
	} `json:"productVariantsBulkCreate"`
}

type ProductVariantsBulkUpdateData struct {
	ProductVariantsBulkUpdate struct {
		ProductVariants []CreatedVariantNode `json:"productVariants,omitempty"`
		UserErrors      []ShopifyUserError   `json:"userErrors,omitempty"`
	} `json:"productVariantsBulkUpdate"`
}

type WriterProductInfoData struct {
	Product *struct {
		Variants struct {
			Edges []struct {
				Node struct {
					ID              string               `json:"id,omitempty"`
					SKU             string               `json:"sku,omitempty"`
					Price           string               `json:"price,omitempty"`
					SelectedOptions []SelectedOptionNode `json:"selectedOptions,omitempty"`
				} `json:"node"`
			} `json:"edges,omitempty"`
		} `json:"variants,omitempty"`
		Options []ProductOptionNode `json:"options,omitempty"`
	} `json:"product,omitempty"`
}

type VariantMediaNode struct {
	ID              string               `json:"id,omitempty"`
	SelectedOptions []SelectedOptionNode `json:"selectedOptions,omitempty"`
	Media           struct {
		Edges []struct {
			Node struct {
				ID string `json:"id,omitempty"`
			} `json:"node"`
		} `json:"edges,omitempty"`
	} `json:"media,omitempty"`
}

type VariantMediaPageData struct {
	Product *struct {
		Variants struct {
			Edges []struct {
				Node VariantMediaNode `json:"node"`
			} `json:"edges,omitempty"`
			PageInfo ShopifyPageInfo `json:"pageInfo,omitempty"`
		} `json:"variants,omitempty"`
	} `json:"product,omitempty"`
}

type MediaImageNode struct {
	ID     string `json:"id,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Status string `json:"status,omitempty"`
	Image  *struct {
		URL string `json:"url,omitempty"`
	} `json:"image,omitempty"`
}

type ProductCreateMediaData struct {
	ProductCreateMedia struct {
		Media           []MediaImageNode   `json:"media,omitempty"`
		MediaUserErrors []ShopifyUserError `json:"mediaUserErrors,omitempty"`
	} `json:"productCreateMedia"`
}

type LocationsData struct {
	Locations struct {
		Edges []struct {
			Node struct {
				ID string `json:"id,omitempty"`
			} `json:"node"`
		} `json:"edges,omitempty"`
	} `json:"locations"`
}
