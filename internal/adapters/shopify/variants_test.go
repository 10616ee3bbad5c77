package shopify

import (
	"testing"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

func TestComboKey(t *testing.T) {
	cases := []struct {
		name     string
		selected []dto.SelectedOptionNode
		want     string
	}{
		{
			name: "sorted by option name",
			selected: []dto.SelectedOptionNode{
				{Name: "Størrelse", Value: "XL"},
				{Name: "Farve", Value: "Olive Green"},
			},
			want: "Farve=Olive Green|Størrelse=XL",
		},
		{
			name: "order independent",
			selected: []dto.SelectedOptionNode{
				{Name: "Farve", Value: "Olive Green"},
				{Name: "Størrelse", Value: "XL"},
			},
			want: "Farve=Olive Green|Størrelse=XL",
		},
		{
			name:     "title only yields empty key",
			selected: []dto.SelectedOptionNode{{Name: "Title", Value: "Default Title"}},
			want:     "",
		},
		{
			name: "title excluded among real options",
			selected: []dto.SelectedOptionNode{
				{Name: "Title", Value: "Default Title"},
				{Name: "Farve", Value: "Black"},
			},
			want: "Farve=Black",
		},
	}
	for _, tc := range cases {
		if got := comboKey(tc.selected); got != tc.want {
			t.Errorf("%s: comboKey = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRowOptionValues(t *testing.T) {
	options := []productOptionInfo{
		{Name: "Farve"},
		{Name: "Størrelse"},
		{Name: "Længde"},
	}
	row := model.VendorRow{
		SKU:   "TS-CTT-CO-01-B05",
		Color: "Olive Green",
		Size:  "XXL/Regular",
	}

	pairs := rowOptionValues(row, options)
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %+v", pairs)
	}
	if pairs[0].Value != "Olive Green" {
		t.Errorf("color = %q", pairs[0].Value)
	}
	if pairs[1].Value != "2XL" {
		t.Errorf("size = %q, want normalized 2XL", pairs[1].Value)
	}
	if pairs[2].Value != "Regular" {
		t.Errorf("length = %q, want Regular from SKU letter B", pairs[2].Value)
	}
}

func TestRowOptionValuesExcludesOneSize(t *testing.T) {
	options := []productOptionInfo{{Name: "Farve"}, {Name: "Størrelse"}}
	row := model.VendorRow{SKU: "TS-CTT-CO-01-B05", Color: "Olive Green", Size: "One size"}

	pairs := rowOptionValues(row, options)
	for _, pair := range pairs {
		if pair.Name == "Størrelse" {
			t.Errorf("one-size rows must carry no size value, got %+v", pairs)
		}
	}
	if len(pairs) != 1 || pairs[0].Name != "Farve" {
		t.Errorf("expected only the color pair, got %+v", pairs)
	}
}

func TestRowOptionValuesOmitsMissing(t *testing.T) {
	options := []productOptionInfo{{Name: "Farve"}, {Name: "Længde"}}
	row := model.VendorRow{SKU: "BL-NOC-SP-22", Color: "Black"}

	pairs := rowOptionValues(row, options)
	if len(pairs) != 1 || pairs[0].Name != "Farve" {
		t.Errorf("expected only color pair, got %+v", pairs)
	}
}

func TestSeedVariantDetection(t *testing.T) {
	existing := map[string]existingVariant{
		comboKey([]dto.SelectedOptionNode{
			{Name: "Farve", Value: "Olive Green"},
			{Name: "Størrelse", Value: "2XL"},
		}): {ID: "gid://shopify/ProductVariant/1", SKU: "SEED"},
	}
	options := []productOptionInfo{{Name: "Farve"}, {Name: "Størrelse"}}

	seedRow := model.VendorRow{SKU: "TS-CTT-CO-01-B05", Color: "Olive Green", Size: "XXL"}
	if _, ok := existing[comboKey(rowOptionValues(seedRow, options))]; !ok {
		t.Error("row with the seed's combo must match the existing variant")
	}

	newRow := model.VendorRow{SKU: "TS-CTT-CO-01-B06", Color: "Olive Green", Size: "XXXL"}
	if _, ok := existing[comboKey(rowOptionValues(newRow, options))]; ok {
		t.Error("row with a new combo must not match")
	}
}

func TestVariantInput(t *testing.T) {
	row := model.VendorRow{
		SKU:             "TS-CTT-CO-01-B05",
		EAN:             "5901234567890",
		Price:           "10.40",
		HSCode:          "61091000",
		CountryOfOrigin: "PL",
		Weight:          "0.25",
		WeightUnit:      "kg",
	}
	input := variantInput(row, nil, "79.00")

	if input["barcode"] != "5901234567890" {
		t.Errorf("barcode = %v", input["barcode"])
	}
	if input["price"] != "79.00" {
		t.Errorf("price = %v", input["price"])
	}
	if input["inventoryPolicy"] != "DENY" {
		t.Errorf("inventoryPolicy = %v", input["inventoryPolicy"])
	}
	item := input["inventoryItem"].(map[string]any)
	if item["sku"] != "TS-CTT-CO-01-B05" || item["cost"] != 78.0 {
		t.Errorf("inventoryItem = %v", item)
	}
	if item["countryCodeOfOrigin"] != "PL" || item["harmonizedSystemCode"] != "61091000" {
		t.Errorf("customs fields = %v", item)
	}
}

func TestWeightUnitEnum(t *testing.T) {
	cases := map[string]string{
		"kg": "KILOGRAMS", "g": "GRAMS", "lb": "POUNDS", "oz": "OUNCES", "": "KILOGRAMS",
	}
	for in, want := range cases {
		if got := weightUnitEnum(in); got != want {
			t.Errorf("weightUnitEnum(%q) = %q, want %q", in, got, want)
		}
	}
}
