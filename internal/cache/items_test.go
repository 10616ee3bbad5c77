package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/frenzeldk/shopify-tools/internal/domain/model"
)

type blockingSource struct {
	started chan struct{}
	release chan struct{}
	items   map[string]model.ShipmondoItem
	err     error
	calls   int
}

func (s *blockingSource) FetchAllItems(context.Context) (map[string]model.ShipmondoItem, error) {
	s.calls++
	if s.started != nil {
		close(s.started)
		s.started = nil
	}
	if s.release != nil {
		<-s.release
	}
	return s.items, s.err
}

func TestItemCacheRefresh(t *testing.T) {
	source := &blockingSource{items: map[string]model.ShipmondoItem{
		"SKU-1": {ID: 1, SKU: "SKU-1", Bin: "A1-01"},
	}}
	c := NewItemCache(source, nil)

	performed, err := c.Refresh(context.Background())
	if err != nil || !performed {
		t.Fatalf("Refresh = (%t, %v)", performed, err)
	}
	if item, ok := c.Get("SKU-1"); !ok || item.Bin != "A1-01" {
		t.Errorf("Get(SKU-1) = (%+v, %t)", item, ok)
	}
	if c.LastUpdate().IsZero() {
		t.Error("LastUpdate should be set after a successful refresh")
	}
}

func TestItemCacheRefreshErrorKeepsSnapshot(t *testing.T) {
	source := &blockingSource{items: map[string]model.ShipmondoItem{
		"SKU-1": {ID: 1, SKU: "SKU-1", Bin: "A1-01"},
	}}
	c := NewItemCache(source, nil)
	if _, err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	source.items = nil
	source.err = fmt.Errorf("boom")
	if _, err := c.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if _, ok := c.Get("SKU-1"); !ok {
		t.Error("failed refresh must not drop the last-known-good snapshot")
	}
	if c.Refreshing() {
		t.Error("refreshing flag must clear after a failed refresh")
	}
}

func TestItemCacheSkipsConcurrentRefresh(t *testing.T) {
	source := &blockingSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
		items:   map[string]model.ShipmondoItem{"SKU-1": {ID: 1, SKU: "SKU-1"}},
	}
	c := NewItemCache(source, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if performed, err := c.Refresh(context.Background()); err != nil || !performed {
			t.Errorf("first Refresh = (%t, %v)", performed, err)
		}
	}()
	<-source.started

	// Second refresh while the first is in flight is a no-op.
	performed, err := c.Refresh(context.Background())
	if err != nil || performed {
		t.Errorf("concurrent Refresh = (%t, %v), want skip", performed, err)
	}
	if !c.Refreshing() {
		t.Error("Refreshing should report true mid-flight")
	}

	// Readers see the previous (empty) snapshot while refreshing.
	if len(c.Items()) != 0 {
		t.Error("reader must get last-known-good snapshot during refresh")
	}

	close(source.release)
	<-done
	if source.calls != 1 {
		t.Errorf("source fetched %d times, want 1", source.calls)
	}
	if _, ok := c.Get("SKU-1"); !ok {
		t.Error("snapshot should be visible after the refresh lands")
	}
}

func TestItemCacheSetBin(t *testing.T) {
	source := &blockingSource{items: map[string]model.ShipmondoItem{
		"SKU-1": {ID: 1, SKU: "SKU-1", Bin: "A1-01"},
	}}
	c := NewItemCache(source, nil)
	if _, err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.SetBin("SKU-1", "C3-01")
	if item, _ := c.Get("SKU-1"); item.Bin != "C3-01" {
		t.Errorf("SetBin not applied: %+v", item)
	}
	c.SetBin("SKU-404", "X")
	if _, ok := c.Get("SKU-404"); ok {
		t.Error("SetBin must not invent items")
	}
}
