package usecases

import (
	"reflect"
	"testing"

	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

func vendorRow(sku, ean string) model.VendorRow {
	return model.VendorRow{
		SKU:         sku,
		EAN:         ean,
		ProductCode: model.ProductCodeFromSKU(sku),
	}
}

func catalogWith(products ...model.ShopifyProduct) map[string]model.ShopifyProduct {
	out := make(map[string]model.ShopifyProduct, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out
}

func productWithVariants(id, title string, variants ...model.ShopifyVariant) model.ShopifyProduct {
	p := model.ShopifyProduct{ID: id, Title: title, Variants: map[string]model.ShopifyVariant{}}
	for _, v := range variants {
		p.Variants[v.SKU] = v
	}
	return p
}

func TestCompareVendorProductsWholeGroupNew(t *testing.T) {
	rows := []model.VendorRow{
		vendorRow("TS-CTT-CO-01-B05", "111"),
		vendorRow("TS-CTT-CO-01-B06", "222"),
	}
	catalog := catalogWith(productWithVariants("gid://shopify/Product/1", "Other",
		model.ShopifyVariant{SKU: "OTHER-SKU", Barcode: "999"}))

	result := CompareVendorProducts(rows, catalog)
	if len(result.NewProducts) != 2 || len(result.NewVariants) != 0 {
		t.Fatalf("whole unknown group should be new products, got %+v", result)
	}
}

func TestCompareVendorProductsGroupAtomicity(t *testing.T) {
	// One known SKU anchors the whole group; the unknown row becomes a
	// variant of the anchored product, never a new product.
	rows := []model.VendorRow{
		vendorRow("TS-CTT-CO-01-B05", "111"),
		vendorRow("TS-CTT-CO-01-B06", "222"),
	}
	catalog := catalogWith(productWithVariants("gid://shopify/Product/7", "Classic T-Shirt",
		model.ShopifyVariant{SKU: "TS-CTT-CO-01-B05", Barcode: "111"}))

	result := CompareVendorProducts(rows, catalog)
	if len(result.NewProducts) != 0 {
		t.Fatalf("anchored group must not create products, got %+v", result.NewProducts)
	}
	if len(result.NewVariants) != 1 {
		t.Fatalf("expected 1 new variant, got %d", len(result.NewVariants))
	}
	nv := result.NewVariants[0]
	if nv.SKU != "TS-CTT-CO-01-B06" || nv.ShopifyProductID != "gid://shopify/Product/7" {
		t.Errorf("unexpected new variant %+v", nv)
	}
	if nv.ShopifyProductTitle != "Classic T-Shirt" {
		t.Errorf("title not carried: %q", nv.ShopifyProductTitle)
	}
}

func TestCompareVendorProductsMatchesByBarcode(t *testing.T) {
	// SKUs differ between systems but the barcode matches.
	rows := []model.VendorRow{
		vendorRow("TS-CTT-CO-01-B05", "5901234567890"),
		vendorRow("TS-CTT-CO-01-B06", "5901234567891"),
	}
	catalog := catalogWith(productWithVariants("gid://shopify/Product/3", "Tee",
		model.ShopifyVariant{SKU: "LEGACY-1", Barcode: "5901234567890"}))

	result := CompareVendorProducts(rows, catalog)
	if len(result.NewProducts) != 0 {
		t.Fatalf("barcode hit must anchor the group, got new products %+v", result.NewProducts)
	}
	if len(result.NewVariants) != 1 || result.NewVariants[0].SKU != "TS-CTT-CO-01-B06" {
		t.Fatalf("expected only the unmatched row as new variant, got %+v", result.NewVariants)
	}
}

func TestCompareVendorProductsIdempotent(t *testing.T) {
	rows := []model.VendorRow{
		vendorRow("TS-CTT-CO-01-B05", "111"),
		vendorRow("BL-NOC-SP-22", "333"),
		vendorRow("TS-CTT-CO-01-B06", "222"),
	}
	catalog := catalogWith(productWithVariants("gid://shopify/Product/7", "Tee",
		model.ShopifyVariant{SKU: "TS-CTT-CO-01-B05", Barcode: "111"}))

	first := CompareVendorProducts(rows, catalog)
	second := CompareVendorProducts(rows, catalog)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over identical snapshots differ:\n%+v\n%+v", first, second)
	}
}

func TestCompareVendorProductsExistingRowsIgnored(t *testing.T) {
	rows := []model.VendorRow{vendorRow("TS-CTT-CO-01-B05", "111")}
	catalog := catalogWith(productWithVariants("gid://shopify/Product/7", "Tee",
		model.ShopifyVariant{SKU: "TS-CTT-CO-01-B05", Barcode: "111"}))

	result := CompareVendorProducts(rows, catalog)
	if len(result.NewProducts) != 0 || len(result.NewVariants) != 0 {
		t.Errorf("fully known rows should produce nothing, got %+v", result)
	}
}

func TestGroupByProductCodeKeepsOrder(t *testing.T) {
	rows := []model.VendorRow{
		vendorRow("B-B-B-1", ""),
		vendorRow("A-A-A-1", ""),
		vendorRow("B-B-B-2", ""),
	}
	groups := groupByProductCode(rows)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0][0].ProductCode != "B-B-B" || len(groups[0]) != 2 {
		t.Errorf("first-seen group should come first with both rows, got %+v", groups[0])
	}
	if groups[1][0].ProductCode != "A-A-A" {
		t.Errorf("second group wrong: %+v", groups[1])
	}
}
