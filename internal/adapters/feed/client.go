package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/frenzeldk/shopify-tools/internal/config"
	"github.com/frenzeldk/shopify-tools/internal/domain/model"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

type ClientService interface {
	FetchVendorRows(ctx context.Context) ([]model.VendorRow, error)
	FetchAvailability(ctx context.Context, idColumn, availabilityColumn string) (map[string]string, error)
}

type Client struct {
	config     config.FeedConfig
	httpClient *http.Client
	logger     logging.LoggerService
}

func NewClient(cfg config.FeedConfig, httpClient *http.Client, logger logging.LoggerService) ClientService {
	return &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) FetchVendorRows(ctx context.Context) ([]model.VendorRow, error) {
	content, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	rows := ParseVendorCSV(content)
	c.logger.Log(fmt.Sprintf("vendor feed parsed rows=%d", len(rows)))
	return rows, nil
}

func (c *Client) FetchAvailability(ctx context.Context, idColumn, availabilityColumn string) (map[string]string, error) {
	content, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	availability := ParseAvailabilityCSV(content, idColumn, availabilityColumn)
	c.logger.Log(fmt.Sprintf("availability feed parsed entries=%d", len(availability)))
	return availability, nil
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	if c.config.Url == "" {
		return "", fmt.Errorf("vendor feed url is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("vendor feed request failed: %s", resp.Status)
	}
	return string(body), nil
}
