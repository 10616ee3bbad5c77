package model

import (
	"regexp"
	"strconv"
	"strings"
)

var repeatedXSize = regexp.MustCompile(`^(?i)(X{2,})(S|L)$`)

// NormalizeSize shortens repeated-X sizes: XXS→2XS, XXL→2XL, XXXL→3XL.
// Anything else is returned unchanged.
func NormalizeSize(size string) string {
	m := repeatedXSize.FindStringSubmatch(size)
	if m == nil {
		return size
	}
	return strconv.Itoa(len(m[1])) + "X" + strings.ToUpper(m[2])
}

// StripLengthSuffix drops a slash-suffixed length from a size string,
// e.g. "XL/Regular" → "XL".
func StripLengthSuffix(size string) string {
	if i := strings.Index(size, "/"); i >= 0 {
		return strings.TrimSpace(size[:i])
	}
	return strings.TrimSpace(size)
}

// IsOneSize reports whether a size value is the vendor's one-size
// marker. One-size products carry no size option at all.
func IsOneSize(size string) bool {
	return strings.EqualFold(strings.TrimSpace(size), "one size")
}

// ProductCodeFromSKU returns the first three dash-separated segments of a
// vendor SKU. SKUs with fewer segments are their own product code.
func ProductCodeFromSKU(sku string) string {
	parts := strings.Split(sku, "-")
	if len(parts) < 3 {
		return sku
	}
	return strings.Join(parts[:3], "-")
}

// LengthNames maps the leading letter of a SKU's size code to the human
// length value used for the "Længde" option.
var LengthNames = map[string]string{
	"A": "Short",
	"B": "Regular",
	"C": "Long",
	"D": "XLong",
	"U": "Unisex",
}

// LengthLetterFromSKU returns the length letter from the 5th dash-part of
// the SKU, if any.
func LengthLetterFromSKU(sku string) string {
	parts := strings.Split(sku, "-")
	if len(parts) < 5 {
		return ""
	}
	sizeCode := parts[4]
	if sizeCode == "" {
		return ""
	}
	first := sizeCode[0]
	if (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') {
		return strings.ToUpper(string(first))
	}
	return ""
}
