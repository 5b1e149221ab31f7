package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// ProductHandler serves the catalog list, detail, images and inventory
type ProductHandler struct {
	api   *api.Client
	cache *cache.Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(apiClient *api.Client, cacheStore *cache.Store) *ProductHandler {
	return &ProductHandler{api: apiClient, cache: cacheStore}
}

// List returns a page of products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	params := api.ProductListParams{
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 20),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	key := cache.Key("products.list", params)
	page, err := cache.Fetch(c.Context(), h.cache, key, func(ctx context.Context) (*models.Paginated[models.Product], error) {
		return h.api.Products.List(ctx, params)
	})
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// Get returns a single product
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	product, err := cache.Fetch(c.Context(), h.cache, cache.Key("products.detail", id), func(ctx context.Context) (*models.Product, error) {
		return h.api.Products.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	return c.JSON(product)
}

// Search runs a free-text catalog search. Results are not cached; the query
// space is too wide to be worth keying.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return badRequest(c, "Search query is required")
	}

	products, err := h.api.Products.Search(c.Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": products})
}

// Categories returns the distinct catalog categories
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	categories, err := cache.Fetch(c.Context(), h.cache, "products.categories", func(ctx context.Context) ([]string, error) {
		return h.api.Products.Categories(ctx)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": categories})
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var form api.CreateProductRequest
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	product, err := h.api.Products.Create(c.Context(), form)
	if err != nil {
		return err
	}

	h.cache.Invalidate("products")

	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update edits a product
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var form api.UpdateProductRequest
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	product, err := h.api.Products.Update(c.Context(), c.Params("id"), form)
	if err != nil {
		return err
	}

	h.cache.Invalidate("products")

	return c.JSON(product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.api.Products.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	h.cache.Invalidate("products")

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// AddImage attaches an image to a product
func (h *ProductHandler) AddImage(c *fiber.Ctx) error {
	var form api.ProductImageRequest
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	product, err := h.api.Products.AddImage(c.Context(), c.Params("id"), form)
	if err != nil {
		return err
	}

	h.cache.Invalidate("products")

	return c.JSON(product)
}

// DeleteImage detaches an image from a product
func (h *ProductHandler) DeleteImage(c *fiber.Ctx) error {
	if err := h.api.Products.DeleteImage(c.Context(), c.Params("id"), c.Params("imageId")); err != nil {
		return err
	}

	h.cache.Invalidate("products")

	return c.JSON(fiber.Map{"message": "Image removed"})
}

type inventoryForm struct {
	Adjustment int `json:"adjustment" validate:"required"`
}

// AdjustInventory applies a signed stock adjustment
func (h *ProductHandler) AdjustInventory(c *fiber.Ctx) error {
	var form inventoryForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if form.Adjustment == 0 {
		return badRequest(c, "Adjustment cannot be zero")
	}

	product, err := h.api.Products.AdjustInventory(c.Context(), c.Params("id"), form.Adjustment)
	if err != nil {
		return err
	}

	h.cache.Invalidate("products")

	return c.JSON(product)
}
