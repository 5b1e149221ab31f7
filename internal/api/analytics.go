package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// AnalyticsAPI maps the /analytics and /dashboard endpoints
type AnalyticsAPI struct {
	client *Client
}

// Get fetches the full analytics payload for a trailing window of days
func (a *AnalyticsAPI) Get(ctx context.Context, days int) (*models.Analytics, error) {
	q := url.Values{}
	if days <= 0 {
		days = 30
	}
	q.Set("days", strconv.Itoa(days))

	var out models.Analytics
	if err := a.client.get(ctx, "/analytics", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary fetches the headline-metrics payload
func (a *AnalyticsAPI) Summary(ctx context.Context) (*models.QuickSummary, error) {
	var out models.QuickSummary
	if err := a.client.get(ctx, "/analytics/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardStats fetches the dashboard overview payload
func (a *AnalyticsAPI) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := a.client.get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecentInvoices fetches the dashboard's most recent invoices
func (a *AnalyticsAPI) RecentInvoices(ctx context.Context, limit int) ([]models.Invoice, error) {
	q := url.Values{}
	if limit <= 0 {
		limit = 5
	}
	q.Set("limit", strconv.Itoa(limit))

	var out []models.Invoice
	if err := a.client.get(ctx, "/dashboard/recent-invoices", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
