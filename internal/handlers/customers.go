package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
	"github.com/aydeggy-dot/InvoiceNG/internal/utils"
)

// CustomerHandler serves the customer list, detail and forms
type CustomerHandler struct {
	api   *api.Client
	cache *cache.Store
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(apiClient *api.Client, cacheStore *cache.Store) *CustomerHandler {
	return &CustomerHandler{api: apiClient, cache: cacheStore}
}

// List returns a page of customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	params := api.CustomerListParams{
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
	}

	key := cache.Key("customers.list", params)
	page, err := cache.Fetch(c.Context(), h.cache, key, func(ctx context.Context) (*models.Paginated[models.Customer], error) {
		return h.api.Customers.List(ctx, params)
	})
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// Get returns a single customer
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	customer, err := cache.Fetch(c.Context(), h.cache, cache.Key("customers.detail", id), func(ctx context.Context) (*models.Customer, error) {
		return h.api.Customers.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	return c.JSON(customer)
}

// Create creates a customer. The phone number is canonicalized before it
// leaves the client.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var form api.CreateCustomerRequest
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	phone, err := utils.NormalizePhone(form.Phone)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  fiber.Map{"phone": "Enter a valid Nigerian phone number"},
		})
	}
	form.Phone = phone

	customer, err := h.api.Customers.Create(c.Context(), form)
	if err != nil {
		return err
	}

	h.cache.Invalidate("customers")

	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update edits a customer
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var form api.UpdateCustomerRequest
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	if form.Phone != "" {
		phone, err := utils.NormalizePhone(form.Phone)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Validation failed",
				"errors":  fiber.Map{"phone": "Enter a valid Nigerian phone number"},
			})
		}
		form.Phone = phone
	}

	customer, err := h.api.Customers.Update(c.Context(), id, form)
	if err != nil {
		return err
	}

	h.cache.Invalidate("customers")

	return c.JSON(customer)
}

// Delete removes a customer
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.api.Customers.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	h.cache.Invalidate("customers")

	return c.JSON(fiber.Map{"message": "Customer deleted"})
}
