package model

// VendorRow is one parsed line of a vendor product feed.
//
// SKU structure: {ProductCode}-{ColorCode}[-{SizeCode}]
//
//	ProductCode = first 3 dash-separated parts (e.g. TS-CTT-CO)
//	ColorCode   = 4th part                     (e.g. 01)
//	SizeCode    = optional 5th part            (e.g. B05)
//	  Letter = length (A=Short, B=Regular, C=Long, D=XLong, U=Unisex)
//	  Digits = size
type VendorRow struct {
	SKU         string
	EAN         string
	HSCode      string
	Size        string
	Name        string
	ProductCode string
	BaseName    string
	Color       string
	SizeEU      string
	SizeUSA     string

	// Numeric fields stay strings; parsing is deferred to point of use.
	Price           string
	MSRP            string
	Currency        string
	Weight          string
	WeightUnit      string
	CountryOfOrigin string
}
