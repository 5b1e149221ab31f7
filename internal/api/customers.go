package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// CustomersAPI maps the /customers resource family
type CustomersAPI struct {
	client *Client
}

// CustomerListParams filters and pages the customer list
type CustomerListParams struct {
	Search string `json:"search,omitempty"`
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// CreateCustomerRequest is the create-customer form payload
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateCustomerRequest is the edit-customer form payload; zero fields are omitted
type UpdateCustomerRequest struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// List fetches a page of customers
func (a *CustomersAPI) List(ctx context.Context, p CustomerListParams) (*models.Paginated[models.Customer], error) {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	var out models.Paginated[models.Customer]
	if err := a.client.get(ctx, "/customers", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single customer by ID
func (a *CustomersAPI) Get(ctx context.Context, id string) (*models.Customer, error) {
	var out models.Customer
	if err := a.client.get(ctx, "/customers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a customer
func (a *CustomersAPI) Create(ctx context.Context, req CreateCustomerRequest) (*models.Customer, error) {
	var out models.Customer
	if err := a.client.post(ctx, "/customers", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update updates a customer
func (a *CustomersAPI) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*models.Customer, error) {
	var out models.Customer
	if err := a.client.put(ctx, "/customers/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a customer
func (a *CustomersAPI) Delete(ctx context.Context, id string) error {
	return a.client.delete(ctx, "/customers/"+id)
}
