package shipmondo

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/frenzeldk/shopify-tools/internal/config"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

const itemsPerPage = 50

// ClientService is the Shipmondo surface the usecases depend on.
type ClientService interface {
	FetchAllItems(ctx context.Context) (map[string]model.ShipmondoItem, error)
	UpdateBinLocation(ctx context.Context, itemID int64, bin string) error
	ClearBinLocation(ctx context.Context, itemID int64) error
	ResumeSalesOrder(ctx context.Context, orderNumber string) error
	PauseSalesOrder(ctx context.Context, orderNumber string) error
}

type Client struct {
	config     config.ShipmondoConfig
	httpClient *http.Client
	logger     logging.LoggerService
	authHeader string
}

func NewClient(cfg config.ShipmondoConfig, httpClient *http.Client, logger logging.LoggerService) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	auth := base64.StdEncoding.EncodeToString([]byte(cfg.APIUser + ":" + cfg.APIKey))
	return &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     logger,
		authHeader: "Basic " + auth,
	}
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.config.BaseUrl, "/") + path
}

func (c *Client) request(ctx context.Context, method, rawURL string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("shipmondo %s %s failed: %s: %s", method, rawURL, resp.Status, strings.TrimSpace(string(respBody)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(respBody, out)
}

type itemDTO struct {
	ID   int64  `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Bin  string `json:"bin"`
}

// FetchAllItems pages through every warehouse item, keyed by SKU. An
// error on the first page propagates; a later page error returns what
// was collected so far.
func (c *Client) FetchAllItems(ctx context.Context) (map[string]model.ShipmondoItem, error) {
	items := make(map[string]model.ShipmondoItem)
	for page := 1; ; page++ {
		pageURL := c.url("/items") + "?" + url.Values{
			"per_page": {fmt.Sprint(itemsPerPage)},
			"page":     {fmt.Sprint(page)},
		}.Encode()

		var dtos []itemDTO
		if err := c.request(ctx, http.MethodGet, pageURL, nil, &dtos); err != nil {
			if page == 1 {
				return nil, fmt.Errorf("fetch items page 1: %w", err)
			}
			c.logError(fmt.Sprintf("fetch items page %d, keeping %d items", page, len(items)), err)
			break
		}
		if len(dtos) == 0 {
			break
		}
		for _, dto := range dtos {
			sku := strings.TrimSpace(dto.SKU)
			if sku == "" {
				continue
			}
			items[sku] = model.ShipmondoItem{
				ID:   dto.ID,
				SKU:  sku,
				Name: dto.Name,
				Bin:  dto.Bin,
			}
		}
	}
	c.log(fmt.Sprintf("fetched %d shipmondo items", len(items)))
	return items, nil
}

// UpdateBinLocation sets an item's bin location.
func (c *Client) UpdateBinLocation(ctx context.Context, itemID int64, bin string) error {
	itemURL := c.url(fmt.Sprintf("/items/%d", itemID))
	return c.request(ctx, http.MethodPut, itemURL, map[string]string{"bin": bin}, nil)
}

// ClearBinLocation empties an item's bin location.
func (c *Client) ClearBinLocation(ctx context.Context, itemID int64) error {
	return c.UpdateBinLocation(ctx, itemID, "")
}

type salesOrderDTO struct {
	ID int64 `json:"id"`
}

// salesOrderID resolves a storefront order number (without the leading
// "#") to the Shipmondo sales order id.
func (c *Client) salesOrderID(ctx context.Context, orderNumber string) (int64, error) {
	lookupURL := c.url("/sales_orders") + "?" + url.Values{"order_id": {orderNumber}}.Encode()
	var orders []salesOrderDTO
	if err := c.request(ctx, http.MethodGet, lookupURL, nil, &orders); err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, fmt.Errorf("no shipmondo sales order for %s", orderNumber)
	}
	return orders[0].ID, nil
}

func (c *Client) setSalesOrderStatus(ctx context.Context, orderNumber, status string) error {
	id, err := c.salesOrderID(ctx, orderNumber)
	if err != nil {
		return err
	}
	orderURL := c.url(fmt.Sprintf("/sales_orders/%d", id))
	return c.request(ctx, http.MethodPut, orderURL, map[string]string{"order_status": status}, nil)
}

// ResumeSalesOrder reopens a paused sales order.
func (c *Client) ResumeSalesOrder(ctx context.Context, orderNumber string) error {
	return c.setSalesOrderStatus(ctx, orderNumber, "open")
}

// PauseSalesOrder puts a sales order on hold.
func (c *Client) PauseSalesOrder(ctx context.Context, orderNumber string) error {
	return c.setSalesOrderStatus(ctx, orderNumber, "on_hold")
}

func (c *Client) log(msg string) {
	if c.logger != nil {
		c.logger.Log(msg)
	}
}

func (c *Client) logError(msg string, err error) {
	if c.logger != nil {
		c.logger.LogError(msg, err)
	}
}
