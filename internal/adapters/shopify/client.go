package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/frenzeldk/shopify-tools/internal/adapters/shopify/dto"
	"github.com/frenzeldk/shopify-tools/internal/config"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Client talks to the Shopify Admin GraphQL API. One client per command
// run; safe for concurrent use.
type Client struct {
	config     config.ShopifyConfig
	httpClient *http.Client
	logger     logging.LoggerService

	locationMu sync.Mutex
	locationID string

	// Taxonomy and tag lookups are slow full-catalog scans; cached with
	// a TTL so repeated calls inside one run hit the network once.
	lookupCache *gocache.Cache
}

func NewClient(cfg config.ShopifyConfig, httpClient *http.Client, logger logging.LoggerService) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		config:      cfg,
		httpClient:  httpClient,
		logger:      logger,
		lookupCache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

func (c *Client) endpoint() (string, error) {
	domain := strings.TrimSpace(c.config.ShopDomain)
	if domain == "" {
		return "", errors.New("shopify shop domain is empty")
	}
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	domain = strings.TrimRight(domain, "/")
	if c.config.APIVer == "" {
		return "", errors.New("shopify api version is empty")
	}
	return domain + "/admin/api/" + c.config.APIVer + "/graphql.json", nil
}

// graphqlRequest posts one query, retrying throttled and 5xx responses
// with bounded backoff, and unmarshals the data payload into out.
func (c *Client) graphqlRequest(ctx context.Context, query string, variables map[string]any, out any) error {
	endpoint, err := c.endpoint()
	if err != nil {
		return err
	}

	payload := graphQLRequest{
		Query:     strings.TrimSpace(query),
		Variables: variables,
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var raw []byte
	for attempt := 0; ; attempt++ {
		raw, err = c.shopifyAPIRequest(ctx, endpoint, bodyBytes)
		if err == nil {
			break
		}
		if attempt >= graphqlRetryMax || !isRetryableHTTPError(err) {
			return err
		}
		c.logWarning(fmt.Sprintf("shopify request retry attempt=%d: %v", attempt+1, err))
		if sleepErr := sleepWithContext(ctx, retryDelayFor(err, attempt)); sleepErr != nil {
			return sleepErr
		}
	}

	var resp dto.GraphQLResponse[json.RawMessage]
	if err := json.Unmarshal(raw, &resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		if isThrottleGraphQLError(resp.Errors) {
			if sleepErr := sleepWithContext(ctx, graphqlRetryBaseDelay); sleepErr != nil {
				return sleepErr
			}
			return c.graphqlRequestOnce(ctx, endpoint, bodyBytes, out)
		}
		return fmt.Errorf("shopify graphql errors: %s", formatGraphQLErrors(resp.Errors))
	}
	if out == nil {
		return nil
	}
	if len(resp.Data) == 0 {
		return errors.New("shopify graphql response missing data")
	}
	return json.Unmarshal(resp.Data, out)
}

// graphqlRequestOnce is the no-retry tail used after a throttle backoff.
func (c *Client) graphqlRequestOnce(ctx context.Context, endpoint string, bodyBytes []byte, out any) error {
	raw, err := c.shopifyAPIRequest(ctx, endpoint, bodyBytes)
	if err != nil {
		return err
	}
	var resp dto.GraphQLResponse[json.RawMessage]
	if err := json.Unmarshal(raw, &resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return fmt.Errorf("shopify graphql errors: %s", formatGraphQLErrors(resp.Errors))
	}
	if out == nil {
		return nil
	}
	if len(resp.Data) == 0 {
		return errors.New("shopify graphql response missing data")
	}
	return json.Unmarshal(resp.Data, out)
}

func (c *Client) shopifyAPIRequest(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newHTTPStatusError(resp.StatusCode, resp.Status, respBody, resp.Header.Get("Retry-After"))
	}
	return respBody, nil
}

func (c *Client) logWarning(msg string) {
	if c.logger != nil {
		c.logger.LogWarning(msg)
	}
}

func (c *Client) log(msg string) {
	if c.logger != nil {
		c.logger.Log(msg)
	}
}

func (c *Client) logSuccess(msg string) {
	if c.logger != nil {
		c.logger.LogSuccess(msg)
	}
}

func (c *Client) logError(msg string, err error) {
	if c.logger != nil {
		c.logger.LogError(msg, err)
	}
}

func userErrorsToError(action string, errs []dto.ShopifyUserError) error {
	if len(errs) == 0 {
		return nil
	}
	parts := userErrorsToStrings(errs)
	if len(parts) == 0 {
		return fmt.Errorf("shopify %s failed with user errors", action)
	}
	return fmt.Errorf("shopify %s failed: %s", action, strings.Join(parts, "; "))
}

func userErrorsToStrings(errs []dto.ShopifyUserError) []string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		if len(e.Field) > 0 {
			msg = fmt.Sprintf("%s: %s", strings.Join(e.Field, "."), msg)
		}
		parts = append(parts, msg)
	}
	return parts
}

func formatGraphQLErrors(errs []dto.GraphQLError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		if len(e.Path) > 0 {
			msg = fmt.Sprintf("%s (path: %v)", msg, e.Path)
		}
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return "unknown graphql error"
	}
	return strings.Join(parts, "; ")
}

func parseAmount(amount string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(amount), 64)
}

// buildSearchQuery quotes a search value when it contains spaces or
// quotes, e.g. sku:"AB 01".
func buildSearchQuery(field, value string) string {
	if strings.ContainsAny(value, " \"") {
		value = strings.ReplaceAll(value, `"`, `\"`)
		value = fmt.Sprintf(`"%s"`, value)
	}
	return field + ":" + value
}
