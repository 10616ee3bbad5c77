package usecases

import (
	"context"
	"testing"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify"
	"github.com/frenzeldk/shopify-tools/internal/config"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

type fakeAvailabilityFeed struct {
	availability map[string]string
}

func (f *fakeAvailabilityFeed) FetchVendorRows(context.Context) ([]model.VendorRow, error) {
	return nil, nil
}

func (f *fakeAvailabilityFeed) FetchAvailability(context.Context, string, string) (map[string]string, error) {
	return f.availability, nil
}

type fakePolicyService struct {
	catalog map[string]model.ShopifyProduct
	updates map[string][]shopify.VariantPolicyUpdate
}

func (f *fakePolicyService) FetchProductsByVendors(context.Context, []string) (map[string]model.ShopifyProduct, error) {
	return f.catalog, nil
}

func (f *fakePolicyService) SetInventoryPolicies(_ context.Context, productID string, updates []shopify.VariantPolicyUpdate) ([]string, error) {
	if f.updates == nil {
		f.updates = make(map[string][]shopify.VariantPolicyUpdate)
	}
	f.updates[productID] = updates
	return nil, nil
}

func TestSyncStockPolicyOnlyWritesDiffs(t *testing.T) {
	feedClient := &fakeAvailabilityFeed{availability: map[string]string{
		"SKU-A": "ja",
		"SKU-B": "nein",
	}}
	policyService := &fakePolicyService{catalog: map[string]model.ShopifyProduct{
		"p1": {ID: "p1", Title: "One", Variants: map[string]model.ShopifyVariant{
			// Already correct, must not be written.
			"SKU-A": {ID: "v1", SKU: "SKU-A", InventoryPolicy: "CONTINUE"},
			// Vendor out of stock, must flip to DENY.
			"SKU-B": {ID: "v2", SKU: "SKU-B", InventoryPolicy: "CONTINUE"},
			// Not in the feed at all, defaults to DENY; already is.
			"SKU-C": {ID: "v3", SKU: "SKU-C", InventoryPolicy: "DENY"},
		}},
	}}
	feedConfig := config.FeedConfig{Vendors: []string{"Helikon-Tex"}, IDColumn: "id", AvailabilityColumn: "lieferbar"}

	sync := NewSyncStockPolicy(feedClient, policyService, feedConfig, nopLogger{})
	if err := sync.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	updates := policyService.updates["p1"]
	if len(updates) != 1 {
		t.Fatalf("expected exactly 1 update, got %+v", updates)
	}
	if updates[0].VariantID != "v2" || updates[0].Policy != "DENY" {
		t.Errorf("unexpected update %+v", updates[0])
	}
}

func TestSyncStockPolicyNoVendors(t *testing.T) {
	sync := NewSyncStockPolicy(&fakeAvailabilityFeed{}, &fakePolicyService{}, config.FeedConfig{}, nopLogger{})
	if err := sync.Run(context.Background()); err == nil {
		t.Error("expected error when no vendors configured")
	}
}
