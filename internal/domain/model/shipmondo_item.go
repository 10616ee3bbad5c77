package model

// ShipmondoItem is one warehouse item as cached from the Shipmondo API.
type ShipmondoItem struct {
	ID   int64
	SKU  string
	Name string
	Bin  string
}

// BinRewrite is one pending bin-location change produced by the regex
// batch rewriter.
type BinRewrite struct {
	ItemID     int64
	SKU        string
	Name       string
	CurrentBin string
	NewBin     string
}
