package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// OrderHandler serves the WhatsApp order list, detail and lifecycle actions
type OrderHandler struct {
	api   *api.Client
	cache *cache.Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(apiClient *api.Client, cacheStore *cache.Store) *OrderHandler {
	return &OrderHandler{api: apiClient, cache: cacheStore}
}

// List returns a page of orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	params := api.OrderListParams{
		PaymentStatus:     c.Query("paymentStatus"),
		FulfillmentStatus: c.Query("fulfillmentStatus"),
		Page:              c.QueryInt("page", 1),
		Limit:             c.QueryInt("limit", 20),
		SortBy:            c.Query("sortBy"),
		SortOrder:         c.Query("sortOrder"),
	}

	key := cache.Key("orders.list", params)
	page, err := cache.Fetch(c.Context(), h.cache, key, func(ctx context.Context) (*models.Paginated[models.WhatsAppOrder], error) {
		return h.api.Orders.List(ctx, params)
	})
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// Get returns a single order by ID
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	order, err := cache.Fetch(c.Context(), h.cache, cache.Key("orders.detail", id), func(ctx context.Context) (*models.WhatsAppOrder, error) {
		return h.api.Orders.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	return c.JSON(order)
}

// GetByNumber looks an order up by its human-facing order number
func (h *OrderHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Params("number")

	order, err := cache.Fetch(c.Context(), h.cache, cache.Key("orders.byNumber", number), func(ctx context.Context) (*models.WhatsAppOrder, error) {
		return h.api.Orders.GetByNumber(ctx, number)
	})
	if err != nil {
		return err
	}

	return c.JSON(order)
}

type markPaidForm struct {
	PaymentReference string `json:"paymentReference"`
	PaymentMethod    string `json:"paymentMethod"`
}

// MarkPaid records payment against an order
func (h *OrderHandler) MarkPaid(c *fiber.Ctx) error {
	var form markPaidForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}

	order, err := h.api.Orders.MarkPaid(c.Context(), c.Params("id"), form.PaymentReference, form.PaymentMethod)
	if err != nil {
		return err
	}

	h.cache.Invalidate("orders", "dashboard", "analytics")

	return c.JSON(order)
}

type shipForm struct {
	TrackingNumber string `json:"trackingNumber"`
}

// Ship marks an order as shipped
func (h *OrderHandler) Ship(c *fiber.Ctx) error {
	var form shipForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}

	order, err := h.api.Orders.Ship(c.Context(), c.Params("id"), form.TrackingNumber)
	if err != nil {
		return err
	}

	h.cache.Invalidate("orders", "dashboard")

	return c.JSON(order)
}

// Deliver marks an order as delivered
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	order, err := h.api.Orders.Deliver(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	h.cache.Invalidate("orders", "dashboard")

	return c.JSON(order)
}

// Cancel cancels an order
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.api.Orders.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	h.cache.Invalidate("orders", "dashboard", "analytics")

	return c.JSON(order)
}
