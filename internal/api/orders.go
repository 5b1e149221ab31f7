package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// OrdersAPI maps the /whatsapp-orders resource family
type OrdersAPI struct {
	client *Client
}

// OrderListParams filters and pages the order list
type OrderListParams struct {
	PaymentStatus     string `json:"paymentStatus,omitempty"`
	FulfillmentStatus string `json:"fulfillmentStatus,omitempty"`
	Page              int    `json:"page,omitempty"`
	Limit             int    `json:"limit,omitempty"`
	SortBy            string `json:"sortBy,omitempty"`
	SortOrder         string `json:"sortOrder,omitempty"`
}

// List fetches a page of WhatsApp orders
func (a *OrdersAPI) List(ctx context.Context, p OrderListParams) (*models.Paginated[models.WhatsAppOrder], error) {
	q := url.Values{}
	if p.PaymentStatus != "" {
		q.Set("paymentStatus", p.PaymentStatus)
	}
	if p.FulfillmentStatus != "" {
		q.Set("fulfillmentStatus", p.FulfillmentStatus)
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

	var out models.Paginated[models.WhatsAppOrder]
	if err := a.client.get(ctx, "/whatsapp-orders", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single order by ID
func (a *OrdersAPI) Get(ctx context.Context, id string) (*models.WhatsAppOrder, error) {
	var out models.WhatsAppOrder
	if err := a.client.get(ctx, "/whatsapp-orders/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByNumber fetches an order by its human-facing order number
func (a *OrdersAPI) GetByNumber(ctx context.Context, orderNumber string) (*models.WhatsAppOrder, error) {
	var out models.WhatsAppOrder
	if err := a.client.get(ctx, "/whatsapp-orders/by-number/"+orderNumber, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkPaid records payment against the order
func (a *OrdersAPI) MarkPaid(ctx context.Context, id, paymentReference, paymentMethod string) (*models.WhatsAppOrder, error) {
	q := url.Values{}
	if paymentReference != "" {
		q.Set("paymentReference", paymentReference)
	}
	if paymentMethod != "" {
		q.Set("paymentMethod", paymentMethod)
	}

	var out models.WhatsAppOrder
	if err := a.client.post(ctx, "/whatsapp-orders/"+id+"/mark-paid", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ship marks the order shipped, optionally with a tracking number
func (a *OrdersAPI) Ship(ctx context.Context, id, trackingNumber string) (*models.WhatsAppOrder, error) {
	q := url.Values{}
	if trackingNumber != "" {
		q.Set("trackingNumber", trackingNumber)
	}

	var out models.WhatsAppOrder
	if err := a.client.post(ctx, "/whatsapp-orders/"+id+"/ship", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Deliver marks the order delivered
func (a *OrdersAPI) Deliver(ctx context.Context, id string) (*models.WhatsAppOrder, error) {
	var out models.WhatsAppOrder
	if err := a.client.post(ctx, "/whatsapp-orders/"+id+"/deliver", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel cancels the order
func (a *OrdersAPI) Cancel(ctx context.Context, id string) (*models.WhatsAppOrder, error) {
	var out models.WhatsAppOrder
	if err := a.client.post(ctx, "/whatsapp-orders/"+id+"/cancel", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
