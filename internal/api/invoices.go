package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// InvoicesAPI maps the /invoices resource family
type InvoicesAPI struct {
	client *Client
}

// InvoiceListParams filters and pages the invoice list
type InvoiceListParams struct {
	Status string `json:"status,omitempty"`
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// InvoiceItemRequest is one line item on a new invoice
type InvoiceItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// CreateInvoiceRequest is the create-invoice form payload
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customerId" validate:"required"`
	DueDate    string               `json:"dueDate" validate:"required"`
	Items      []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Tax        float64              `json:"tax,omitempty" validate:"gte=0"`
	Discount   float64              `json:"discount,omitempty" validate:"gte=0"`
	Notes      string               `json:"notes,omitempty"`
}

// List fetches a page of invoices plus the aggregate summary block
func (a *InvoicesAPI) List(ctx context.Context, p InvoiceListParams) (*models.InvoiceList, error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	var out models.InvoiceList
	if err := a.client.get(ctx, "/invoices", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single invoice by ID
func (a *InvoicesAPI) Get(ctx context.Context, id string) (*models.Invoice, error) {
	var out models.Invoice
	if err := a.client.get(ctx, "/invoices/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a draft invoice
func (a *InvoicesAPI) Create(ctx context.Context, req CreateInvoiceRequest) (*models.Invoice, error) {
	var out models.Invoice
	if err := a.client.post(ctx, "/invoices", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Send delivers the invoice to the customer
func (a *InvoicesAPI) Send(ctx context.Context, id string) (*models.Invoice, error) {
	var out models.Invoice
	if err := a.client.post(ctx, "/invoices/"+id+"/send", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel voids the invoice
func (a *InvoicesAPI) Cancel(ctx context.Context, id string) (*models.Invoice, error) {
	var out models.Invoice
	if err := a.client.post(ctx, "/invoices/"+id+"/cancel", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkPaid records full payment against the invoice
func (a *InvoicesAPI) MarkPaid(ctx context.Context, id string) (*models.Invoice, error) {
	var out models.Invoice
	if err := a.client.post(ctx, "/invoices/"+id+"/mark-paid", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
