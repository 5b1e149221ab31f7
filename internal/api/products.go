package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// ProductsAPI maps the /products resource family
type ProductsAPI struct {
	client *Client
}

// ProductListParams filters and pages the catalog
type ProductListParams struct {
	Category  string `json:"category,omitempty"`
	Status    string `json:"status,omitempty"`
	Page      int    `json:"page,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

// CreateProductRequest is the create-product form payload
type CreateProductRequest struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description,omitempty"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Category         string   `json:"category,omitempty"`
	Subcategory      string   `json:"subcategory,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Price            float64  `json:"price" validate:"gte=0"`
	CompareAtPrice   *float64 `json:"compareAtPrice,omitempty"`
	CostPrice        *float64 `json:"costPrice,omitempty"`
	TrackInventory   bool     `json:"trackInventory"`
	Quantity         int      `json:"quantity" validate:"gte=0"`
	AllowBackorder   bool     `json:"allowBackorder"`
}

// UpdateProductRequest is the edit-product form payload
type UpdateProductRequest struct {
	Name             string   `json:"name,omitempty"`
	Description      string   `json:"description,omitempty"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Category         string   `json:"category,omitempty"`
	Subcategory      string   `json:"subcategory,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CompareAtPrice   *float64 `json:"compareAtPrice,omitempty"`
	CostPrice        *float64 `json:"costPrice,omitempty"`
	TrackInventory   *bool    `json:"trackInventory,omitempty"`
	Quantity         *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	AllowBackorder   *bool    `json:"allowBackorder,omitempty"`
	Status           string   `json:"status,omitempty"`
}

// ProductImageRequest attaches an image to a product
type ProductImageRequest struct {
	URL     string `json:"url" validate:"required,url"`
	AltText string `json:"altText,omitempty"`
	IsMain  bool   `json:"isMain,omitempty"`
}

// List fetches a page of products
func (a *ProductsAPI) List(ctx context.Context, p ProductListParams) (*models.Paginated[models.Product], error) {
	q := url.Values{}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}

	var out models.Paginated[models.Product]
	if err := a.client.get(ctx, "/products", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single product by ID
func (a *ProductsAPI) Get(ctx context.Context, id string) (*models.Product, error) {
	var out models.Product
	if err := a.client.get(ctx, "/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a free-text catalog search
func (a *ProductsAPI) Search(ctx context.Context, query string) ([]models.Product, error) {
	q := url.Values{}
	q.Set("q", query)

	var out []models.Product
	if err := a.client.get(ctx, "/products/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories lists the distinct catalog categories
func (a *ProductsAPI) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.client.get(ctx, "/products/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a product
func (a *ProductsAPI) Create(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	var out models.Product
	if err := a.client.post(ctx, "/products", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update updates a product
func (a *ProductsAPI) Update(ctx context.Context, id string, req UpdateProductRequest) (*models.Product, error) {
	var out models.Product
	if err := a.client.put(ctx, "/products/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a product
func (a *ProductsAPI) Delete(ctx context.Context, id string) error {
	return a.client.delete(ctx, "/products/"+id)
}

// AddImage attaches an image to a product
func (a *ProductsAPI) AddImage(ctx context.Context, id string, req ProductImageRequest) (*models.Product, error) {
	var out models.Product
	if err := a.client.post(ctx, "/products/"+id+"/images", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteImage removes a product image
func (a *ProductsAPI) DeleteImage(ctx context.Context, productID, imageID string) error {
	return a.client.delete(ctx, "/products/"+productID+"/images/"+imageID)
}

// AdjustInventory applies a signed quantity adjustment
func (a *ProductsAPI) AdjustInventory(ctx context.Context, id string, adjustment int) (*models.Product, error) {
	q := url.Values{}
	q.Set("adjustment", strconv.Itoa(adjustment))

	var out models.Product
	if err := a.client.patch(ctx, "/products/"+id+"/inventory", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
