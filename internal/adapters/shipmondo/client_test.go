package shipmondo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frenzeldk/shopify-tools/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := config.ShipmondoConfig{
		BaseUrl: server.URL,
		APIUser: "user",
		APIKey:  "key",
	}
	return NewClient(cfg, server.Client(), nil)
}

func TestFetchAllItemsPaginates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Basic dXNlcjprZXk=" {
			t.Errorf("authorization header = %q", auth)
		}
		switch r.URL.Query().Get("page") {
		case "1":
			w.Write([]byte(`[{"id":1,"sku":"SKU-1","name":"One","bin":"A1-01"},{"id":2,"sku":"  ","name":"Blank","bin":""}]`))
		case "2":
			w.Write([]byte(`[{"id":3,"sku":"SKU-3","name":"Three","bin":"B2-01"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	})

	items, err := client.FetchAllItems(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// Blank SKUs are dropped.
	if len(items) != 2 {
		t.Fatalf("items = %+v", items)
	}
	if items["SKU-3"].Bin != "B2-01" {
		t.Errorf("SKU-3 = %+v", items["SKU-3"])
	}
}

func TestFetchAllItemsKeepsPartialResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			w.Write([]byte(`[{"id":1,"sku":"SKU-1","name":"One","bin":"A1-01"}]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	items, err := client.FetchAllItems(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Errorf("expected the first page to survive, got %+v", items)
	}
}

func TestFetchAllItemsFirstPageError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := client.FetchAllItems(context.Background()); err == nil {
		t.Error("expected error when page 1 fails")
	}
}

func salesOrderHandler(t *testing.T, statuses map[int64]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/sales_orders":
			if r.URL.Query().Get("order_id") != "1234" {
				w.Write([]byte(`[]`))
				return
			}
			w.Write([]byte(`[{"id":77}]`))
		case r.Method == http.MethodPut && r.URL.Path == "/sales_orders/77":
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			statuses[77] = body["order_status"]
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}
}

func TestResumeSalesOrder(t *testing.T) {
	statuses := map[int64]string{}
	client := newTestClient(t, salesOrderHandler(t, statuses))

	if err := client.ResumeSalesOrder(context.Background(), "1234"); err != nil {
		t.Fatal(err)
	}
	if statuses[77] != "open" {
		t.Errorf("order status = %q", statuses[77])
	}
}

func TestPauseSalesOrder(t *testing.T) {
	statuses := map[int64]string{}
	client := newTestClient(t, salesOrderHandler(t, statuses))

	if err := client.PauseSalesOrder(context.Background(), "1234"); err != nil {
		t.Fatal(err)
	}
	if statuses[77] != "on_hold" {
		t.Errorf("order status = %q", statuses[77])
	}
}

func TestSalesOrderNotFound(t *testing.T) {
	client := newTestClient(t, salesOrderHandler(t, map[int64]string{}))

	if err := client.ResumeSalesOrder(context.Background(), "9999"); err == nil {
		t.Error("expected error for unknown order number")
	}
}
