package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// AnalyticsHandler serves the reporting views
type AnalyticsHandler struct {
	api   *api.Client
	cache *cache.Store
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(apiClient *api.Client, cacheStore *cache.Store) *AnalyticsHandler {
	return &AnalyticsHandler{api: apiClient, cache: cacheStore}
}

// Get returns the full analytics report for a trailing window of days
func (h *AnalyticsHandler) Get(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)

	key := cache.Key("analytics.report", map[string]any{"days": days})
	report, err := cache.Fetch(c.Context(), h.cache, key, func(ctx context.Context) (*models.Analytics, error) {
		return h.api.Analytics.Get(ctx, days)
	})
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// Summary returns the compact revenue summary
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := cache.Fetch(c.Context(), h.cache, "analytics.summary", func(ctx context.Context) (*models.QuickSummary, error) {
		return h.api.Analytics.Summary(ctx)
	})
	if err != nil {
		return err
	}

	return c.JSON(summary)
}
