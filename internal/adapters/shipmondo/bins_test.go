package shipmondo

import (
	"context"
	"fmt"
	"testing"

	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

func testItems() map[string]model.ShipmondoItem {
	return map[string]model.ShipmondoItem{
		"SKU-1": {ID: 1, SKU: "SKU-1", Name: "One", Bin: "A1-01"},
		"SKU-2": {ID: 2, SKU: "SKU-2", Name: "Two", Bin: "A1-02"},
		"SKU-3": {ID: 3, SKU: "SKU-3", Name: "Three", Bin: "B2-01"},
		"SKU-4": {ID: 4, SKU: "SKU-4", Name: "Four", Bin: ""},
	}
}

func TestMatchBinRewrites(t *testing.T) {
	rewrites, err := MatchBinRewrites(testItems(), "^A1", "C3")
	if err != nil {
		t.Fatal(err)
	}
	if len(rewrites) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(rewrites))
	}
	// Sorted by SKU.
	if rewrites[0].SKU != "SKU-1" || rewrites[0].NewBin != "C3-01" {
		t.Errorf("rewrites[0] = %+v", rewrites[0])
	}
	if rewrites[1].SKU != "SKU-2" || rewrites[1].NewBin != "C3-02" {
		t.Errorf("rewrites[1] = %+v", rewrites[1])
	}
}

func TestMatchBinRewritesSkipsEmptyBins(t *testing.T) {
	rewrites, err := MatchBinRewrites(testItems(), ".*", "X")
	if err != nil {
		t.Fatal(err)
	}
	for _, rewrite := range rewrites {
		if rewrite.SKU == "SKU-4" {
			t.Error("items without a bin must never match")
		}
	}
}

func TestMatchBinRewritesBadPattern(t *testing.T) {
	if _, err := MatchBinRewrites(testItems(), "(", "X"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

type fakeBinClient struct {
	updated map[int64]string
	cleared []int64
	failID  int64
}

func (f *fakeBinClient) FetchAllItems(context.Context) (map[string]model.ShipmondoItem, error) {
	return nil, nil
}
func (f *fakeBinClient) UpdateBinLocation(_ context.Context, itemID int64, bin string) error {
	if itemID == f.failID {
		return fmt.Errorf("boom")
	}
	if f.updated == nil {
		f.updated = make(map[int64]string)
	}
	f.updated[itemID] = bin
	return nil
}
func (f *fakeBinClient) ClearBinLocation(_ context.Context, itemID int64) error {
	f.cleared = append(f.cleared, itemID)
	return nil
}
func (f *fakeBinClient) ResumeSalesOrder(context.Context, string) error { return nil }
func (f *fakeBinClient) PauseSalesOrder(context.Context, string) error  { return nil }

func TestApplyBinRewrites(t *testing.T) {
	client := &fakeBinClient{failID: 2}
	rewrites := []model.BinRewrite{
		{ItemID: 1, SKU: "SKU-1", CurrentBin: "A1-01", NewBin: "C3-01"},
		{ItemID: 2, SKU: "SKU-2", CurrentBin: "A1-02", NewBin: "C3-02"},
	}

	applied, errs := ApplyBinRewrites(context.Background(), client, rewrites)
	if len(applied) != 1 || applied[0].ItemID != 1 {
		t.Errorf("applied = %+v", applied)
	}
	if len(errs) != 1 {
		t.Errorf("expected 1 error, got %v", errs)
	}
	if client.updated[1] != "C3-01" {
		t.Errorf("item 1 not updated: %v", client.updated)
	}
}

func TestApplyBinRewritesClearsEmptyBin(t *testing.T) {
	client := &fakeBinClient{}
	rewrites := []model.BinRewrite{
		{ItemID: 3, SKU: "SKU-3", CurrentBin: "B2-01", NewBin: ""},
	}

	applied, errs := ApplyBinRewrites(context.Background(), client, rewrites)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(applied) != 1 {
		t.Fatalf("applied = %+v", applied)
	}
	if len(client.cleared) != 1 || client.cleared[0] != 3 {
		t.Errorf("cleared = %v", client.cleared)
	}
	if len(client.updated) != 0 {
		t.Errorf("empty bin must clear, not update: %v", client.updated)
	}
}
