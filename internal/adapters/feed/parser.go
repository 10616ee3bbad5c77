package feed

import (
	"encoding/csv"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

// Column names of the vendor product export (Helikon-Tex / Entire M).
const (
	colSKU             = "SKU"
	colEAN             = "EAN13"
	colHSCode          = "CN"
	colSize            = "Size"
	colName            = "Name"
	colSizeEU          = "ProductSizeEU"
	colSizeUSA         = "ProductSizeUSA"
	colRegularPrice    = "ProductRegularPrice"
	colRegularCurrency = "ProductRegularCurrency"
	colDiscountPrice   = "DiscountPrice"
	colDiscountCurr    = "DiscountCurrency"
	colMSRP            = "ProductMSRPPrice"
	colWeight          = "ProductWeight"
	colWeightUnit      = "ProductWeightUnit"
	colCountry         = "Country"
)

// ParseVendorCSV parses a semicolon-delimited vendor product export into
// vendor rows. Rows without a SKU are skipped, as are rows that do not
// match the header width. Every field is trimmed; a UTF-8 BOM on the
// first header cell is dropped.
func ParseVendorCSV(content string) []model.VendorRow {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		return nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		index[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]model.VendorRow, 0, len(records)-1)
	for _, record := range records[1:] {
		sku := field(record, colSKU)
		if sku == "" {
			continue
		}

		fullName := field(record, colName)
		baseName, color := splitNameColor(fullName)

		size := model.NormalizeSize(model.StripLengthSuffix(field(record, colSize)))

		price := field(record, colDiscountPrice)
		currency := field(record, colDiscountCurr)
		if price == "" {
			price = field(record, colRegularPrice)
		}
		if currency == "" {
			currency = field(record, colRegularCurrency)
		}

		rows = append(rows, model.VendorRow{
			SKU:             sku,
			EAN:             field(record, colEAN),
			HSCode:          field(record, colHSCode),
			Size:            size,
			Name:            fullName,
			ProductCode:     model.ProductCodeFromSKU(sku),
			BaseName:        baseName,
			Color:           color,
			SizeEU:          field(record, colSizeEU),
			SizeUSA:         field(record, colSizeUSA),
			Price:           price,
			MSRP:            field(record, colMSRP),
			Currency:        currency,
			Weight:          field(record, colWeight),
			WeightUnit:      field(record, colWeightUnit),
			CountryOfOrigin: field(record, colCountry),
		})
	}
	return rows
}

// splitNameColor splits "Base Product Name - Color" on the last " - ".
// Names without the separator have no color.
func splitNameColor(fullName string) (string, string) {
	if i := strings.LastIndex(fullName, " - "); i >= 0 {
		return strings.TrimSpace(fullName[:i]), strings.TrimSpace(fullName[i+3:])
	}
	return fullName, ""
}

// ParseAvailabilityCSV parses a semicolon-delimited availability feed into
// a map from the id column to the lower-cased availability value. Rows
// with an empty id are skipped.
func ParseAvailabilityCSV(content, idColumn, availabilityColumn string) map[string]string {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		return nil
	}

	header := records[0]
	idIdx, availIdx := -1, -1
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		switch strings.TrimSpace(name) {
		case idColumn:
			idIdx = i
		case availabilityColumn:
			availIdx = i
		}
	}
	if idIdx < 0 || availIdx < 0 {
		return nil
	}

	out := make(map[string]string, len(records)-1)
	for _, record := range records[1:] {
		if idIdx >= len(record) || availIdx >= len(record) {
			continue
		}
		id := strings.TrimSpace(record[idIdx])
		if id == "" {
			continue
		}
		out[id] = strings.ToLower(strings.TrimSpace(record[availIdx]))
	}
	return out
}
