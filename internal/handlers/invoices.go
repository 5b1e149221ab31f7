package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
	"github.com/aydeggy-dot/InvoiceNG/internal/services"
)

// InvoiceHandler serves the invoice list, detail, actions and WhatsApp share
type InvoiceHandler struct {
	api   *api.Client
	cache *cache.Store
	share *services.ShareService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(apiClient *api.Client, cacheStore *cache.Store, shareService *services.ShareService) *InvoiceHandler {
	return &InvoiceHandler{api: apiClient, cache: cacheStore, share: shareService}
}

// List returns a page of invoices plus the aggregate summary block
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	params := api.InvoiceListParams{
		Status: c.Query("status"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
	}

	key := cache.Key("invoices.list", params)
	list, err := cache.Fetch(c.Context(), h.cache, key, func(ctx context.Context) (*models.InvoiceList, error) {
		return h.api.Invoices.List(ctx, params)
	})
	if err != nil {
		return err
	}

	return c.JSON(list)
}

// Get returns a single invoice
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	invoice, err := cache.Fetch(c.Context(), h.cache, cache.Key("invoices.detail", id), func(ctx context.Context) (*models.Invoice, error) {
		return h.api.Invoices.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	return c.JSON(invoice)
}

// Create creates a draft invoice. A new invoice changes the dashboard
// aggregates and the customer's invoice history, so those views drop too.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var form api.CreateInvoiceRequest
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	invoice, err := h.api.Invoices.Create(c.Context(), form)
	if err != nil {
		return err
	}

	h.cache.Invalidate("invoices", "dashboard", "customers", "analytics")

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Send marks an invoice as sent
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	invoice, err := h.api.Invoices.Send(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	h.cache.Invalidate("invoices", "dashboard")

	return c.JSON(invoice)
}

// Cancel cancels an invoice
func (h *InvoiceHandler) Cancel(c *fiber.Ctx) error {
	invoice, err := h.api.Invoices.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	h.cache.Invalidate("invoices", "dashboard", "analytics")

	return c.JSON(invoice)
}

// MarkPaid records full payment on an invoice
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	invoice, err := h.api.Invoices.MarkPaid(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	h.cache.Invalidate("invoices", "dashboard", "analytics")

	return c.JSON(invoice)
}

// Share builds the WhatsApp share payload for an invoice. With ?reminder=true
// the message is the payment reminder variant.
func (h *InvoiceHandler) Share(c *fiber.Ctx) error {
	id := c.Params("id")

	invoice, err := cache.Fetch(c.Context(), h.cache, cache.Key("invoices.detail", id), func(ctx context.Context) (*models.Invoice, error) {
		return h.api.Invoices.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	message := h.share.InvoiceMessage(invoice)
	if c.QueryBool("reminder") {
		message = h.share.ReminderMessage(invoice)
	}

	phone := ""
	if invoice.Customer != nil {
		phone = invoice.Customer.Phone
	}

	link, err := h.share.ShareLink(phone, message)
	if err != nil {
		return badRequest(c, "Customer has no valid WhatsApp number")
	}

	return c.JSON(fiber.Map{
		"message":     message,
		"shareLink":   link,
		"paymentLink": h.share.PaymentLink(invoice.ID),
	})
}
