package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify"
	"github.com/frenzeldk/shopify-tools/internal/config"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

type fakeVendorFeed struct {
	rows []model.VendorRow
}

func (f *fakeVendorFeed) FetchVendorRows(context.Context) ([]model.VendorRow, error) {
	return f.rows, nil
}

func (f *fakeVendorFeed) FetchAvailability(context.Context, string, string) (map[string]string, error) {
	return nil, nil
}

type fakeProductWriter struct {
	catalog map[string]model.ShopifyProduct

	created        []shopify.ProductCreateInput
	optionsCreated map[string][]shopify.DetectedOption
	variantsAdded  map[string][]model.VendorRow
	failCreate     bool
}

func (f *fakeProductWriter) FetchProductsByVendors(context.Context, []string) (map[string]model.ShopifyProduct, error) {
	return f.catalog, nil
}

func (f *fakeProductWriter) CreateProduct(_ context.Context, input shopify.ProductCreateInput) (model.ProductRef, error) {
	if f.failCreate {
		return model.ProductRef{}, fmt.Errorf("boom")
	}
	f.created = append(f.created, input)
	id := fmt.Sprintf("gid://shopify/Product/%d", len(f.created))
	return model.ProductRef{ID: id, Title: input.Title}, nil
}

func (f *fakeProductWriter) DetectProductOptions(_ context.Context, _ string, rows []model.VendorRow) ([]shopify.DetectedOption, error) {
	colors := map[string]bool{}
	var values []string
	for _, row := range rows {
		if row.Color != "" && !colors[row.Color] {
			colors[row.Color] = true
			values = append(values, row.Color)
		}
	}
	if len(values) == 0 {
		return nil, nil
	}
	return []shopify.DetectedOption{{Name: "Farve", Values: values}}, nil
}

func (f *fakeProductWriter) CreateProductOptions(_ context.Context, productID string, options []shopify.DetectedOption) error {
	if f.optionsCreated == nil {
		f.optionsCreated = make(map[string][]shopify.DetectedOption)
	}
	f.optionsCreated[productID] = options
	return nil
}

func (f *fakeProductWriter) AddVariants(_ context.Context, productID string, rows []model.VendorRow, _ map[string]string) (model.WriteResult, error) {
	if f.variantsAdded == nil {
		f.variantsAdded = make(map[string][]model.VendorRow)
	}
	f.variantsAdded[productID] = append(f.variantsAdded[productID], rows...)
	result := model.WriteResult{}
	for _, row := range rows {
		result.Created = append(result.Created, row.SKU)
	}
	return result, nil
}

func vendorFeedConfig() config.FeedConfig {
	return config.FeedConfig{
		Vendors:         []string{"Helikon-Tex"},
		ProductCategory: "Coats & Jackets",
		ProductTags:     []string{"Helikon-Tex"},
	}
}

func TestSyncVendorProductsCreatesNewGroup(t *testing.T) {
	feedClient := &fakeVendorFeed{rows: []model.VendorRow{
		{SKU: "TS-CTT-CO-01", EAN: "111", ProductCode: "TS-CTT-CO", BaseName: "Classic Tee", Color: "Olive"},
		{SKU: "TS-CTT-CO-02", EAN: "222", ProductCode: "TS-CTT-CO", BaseName: "Classic Tee", Color: "Black"},
	}}
	writer := &fakeProductWriter{catalog: map[string]model.ShopifyProduct{}}

	sync := NewSyncVendorProducts(feedClient, writer, vendorFeedConfig(), nopLogger{})
	if err := sync.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(writer.created) != 1 {
		t.Fatalf("created products = %+v", writer.created)
	}
	input := writer.created[0]
	if input.Title != "Classic Tee" || input.Vendor != "Helikon-Tex" {
		t.Errorf("product input = %+v", input)
	}
	if input.CategoryName != "Coats & Jackets" || len(input.Tags) != 1 {
		t.Errorf("category/tags not carried: %+v", input)
	}

	productID := "gid://shopify/Product/1"
	options := writer.optionsCreated[productID]
	if len(options) != 1 || options[0].Name != "Farve" || len(options[0].Values) != 2 {
		t.Errorf("options = %+v", options)
	}
	if len(writer.variantsAdded[productID]) != 2 {
		t.Errorf("variants = %+v", writer.variantsAdded[productID])
	}
}

func TestSyncVendorProductsAddsVariantsToExisting(t *testing.T) {
	feedClient := &fakeVendorFeed{rows: []model.VendorRow{
		{SKU: "TS-CTT-CO-01", EAN: "111", ProductCode: "TS-CTT-CO", BaseName: "Classic Tee", Color: "Olive"},
		{SKU: "TS-CTT-CO-02", EAN: "222", ProductCode: "TS-CTT-CO", BaseName: "Classic Tee", Color: "Black"},
	}}
	writer := &fakeProductWriter{catalog: map[string]model.ShopifyProduct{
		"p1": {ID: "p1", Title: "Classic Tee", Variants: map[string]model.ShopifyVariant{
			"TS-CTT-CO-01": {ID: "v1", SKU: "TS-CTT-CO-01", Barcode: "111"},
		}},
	}}

	sync := NewSyncVendorProducts(feedClient, writer, vendorFeedConfig(), nopLogger{})
	if err := sync.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(writer.created) != 0 {
		t.Errorf("no product should be created, got %+v", writer.created)
	}
	added := writer.variantsAdded["p1"]
	if len(added) != 1 || added[0].SKU != "TS-CTT-CO-02" {
		t.Errorf("variants added = %+v", added)
	}
}

func TestSyncVendorProductsContinuesPastCreateFailure(t *testing.T) {
	feedClient := &fakeVendorFeed{rows: []model.VendorRow{
		{SKU: "TS-CTT-CO-01", EAN: "111", ProductCode: "TS-CTT-CO", BaseName: "Classic Tee", Color: "Olive"},
		{SKU: "PL-OHN-DC-02", EAN: "222", ProductCode: "PL-OHN-DC", BaseName: "Patrol Line", Color: "Black"},
	}}
	writer := &fakeProductWriter{catalog: map[string]model.ShopifyProduct{}, failCreate: true}

	sync := NewSyncVendorProducts(feedClient, writer, vendorFeedConfig(), nopLogger{})
	// Per-group failures are reported, not fatal.
	if err := sync.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(writer.variantsAdded) != 0 {
		t.Errorf("no variants should land when creates fail: %+v", writer.variantsAdded)
	}
}

func TestSyncVendorProductsNoVendors(t *testing.T) {
	sync := NewSyncVendorProducts(&fakeVendorFeed{}, &fakeProductWriter{}, config.FeedConfig{}, nopLogger{})
	if err := sync.Run(context.Background()); err == nil {
		t.Error("expected error when no vendors configured")
	}
}
