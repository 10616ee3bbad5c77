package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/frenzeldk/shopify-tools/internal/domain/model"
	"github.com/frenzeldk/shopify-tools/internal/logging"
)

var pausedTags = []string{"paused", "Mangler Varer"}

// OrderService is the Shopify surface the resume job needs.
type OrderService interface {
	FetchOpenOrders(ctx context.Context) ([]model.Order, error)
	RemoveOrderTags(ctx context.Context, orderID string, tags []string) error
	FetchInventoryAvailable(ctx context.Context, inventoryItemID string) (int, error)
}

// SalesOrderService is the Shipmondo surface the resume job needs.
type SalesOrderService interface {
	ResumeSalesOrder(ctx context.Context, orderNumber string) error
}

type ResumeOrdersService interface {
	Run(ctx context.Context) error
}

type ClientResumeOrders struct {
	shopifyClient   OrderService
	shipmondoClient SalesOrderService
	logger          logging.LoggerService
}

func NewResumeOrders(shopifyClient OrderService, shipmondoClient SalesOrderService, logger logging.LoggerService) ResumeOrdersService {
	return &ClientResumeOrders{
		shopifyClient:   shopifyClient,
		shipmondoClient: shipmondoClient,
		logger:          logger,
	}
}

// Run walks open orders in sequence, reserving stock order by order.
// Each order's line quantities are subtracted from a per-run
// availability cache; a paused order whose items all stayed
// non-negative is resumed in Shipmondo and untagged. The subtraction
// happens for every order, resumed or not, so earlier orders keep their
// claim on the stock.
func (c *ClientResumeOrders) Run(ctx context.Context) error {
	c.logger.Log("Order resume started")

	orders, err := c.shopifyClient.FetchOpenOrders(ctx)
	if err != nil {
		c.logger.LogError("Error fetching open orders", err)
		return err
	}

	available := make(map[string]int)
	resumed := 0
	for _, order := range orders {
		if err := c.reserveLineItems(ctx, available, order.LineItems); err != nil {
			c.logger.LogError(fmt.Sprintf("Error checking inventory for %s", order.Name), err)
			return err
		}
		if !canFulfill(available, order.LineItems) || !hasPausedTag(order.Tags) {
			continue
		}

		orderNumber := strings.TrimPrefix(order.Name, "#")
		if err := c.shipmondoClient.ResumeSalesOrder(ctx, orderNumber); err != nil {
			// Untagging without the Shipmondo resume would hide the order
			// from the next run, so it keeps its tags.
			c.logger.LogError(fmt.Sprintf("Error resuming %s in Shipmondo", order.Name), err)
			continue
		}
		if err := c.shopifyClient.RemoveOrderTags(ctx, order.ID, pausedTags); err != nil {
			c.logger.LogError(fmt.Sprintf("Error untagging %s", order.Name), err)
			continue
		}
		resumed++
		c.logger.Log(fmt.Sprintf("Resumed order %s", order.Name))
	}

	c.logger.LogSuccess(fmt.Sprintf("Order resume completed orders=%d resumed=%d", len(orders), resumed))
	return nil
}

// reserveLineItems subtracts the order's quantities from the cache,
// fetching each inventory item's sellable quantity on first sight.
func (c *ClientResumeOrders) reserveLineItems(ctx context.Context, available map[string]int, items []model.OrderLineItem) error {
	for _, item := range items {
		if item.InventoryItemID == "" {
			// Variant has been deleted.
			continue
		}
		if _, cached := available[item.InventoryItemID]; !cached {
			quantity, err := c.shopifyClient.FetchInventoryAvailable(ctx, item.InventoryItemID)
			if err != nil {
				return err
			}
			available[item.InventoryItemID] = quantity
		}
		available[item.InventoryItemID] -= item.CurrentQuantity
	}
	return nil
}

func canFulfill(available map[string]int, items []model.OrderLineItem) bool {
	for _, item := range items {
		if item.InventoryItemID == "" {
			continue
		}
		if available[item.InventoryItemID] < 0 {
			return false
		}
	}
	return true
}

func hasPausedTag(tags []string) bool {
	for _, tag := range tags {
		for _, paused := range pausedTags {
			if tag == paused {
				return true
			}
		}
	}
	return false
}
