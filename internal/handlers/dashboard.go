package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
	"github.com/aydeggy-dot/InvoiceNG/internal/session"
	"github.com/aydeggy-dot/InvoiceNG/internal/utils"
)

// DashboardHandler assembles the home screen view model
type DashboardHandler struct {
	api     *api.Client
	cache   *cache.Store
	session *session.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(apiClient *api.Client, cacheStore *cache.Store, sessionStore *session.Store) *DashboardHandler {
	return &DashboardHandler{
		api:     apiClient,
		cache:   cacheStore,
		session: sessionStore,
	}
}

// Home returns the dashboard view model: stats, quick summary and the
// most recent invoices, each served through the cache.
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	ctx := c.Context()

	stats, err := cache.Fetch(ctx, h.cache, "dashboard.stats", func(ctx context.Context) (*models.DashboardStats, error) {
		return h.api.Analytics.DashboardStats(ctx)
	})
	if err != nil {
		return err
	}

	summary, err := cache.Fetch(ctx, h.cache, "dashboard.summary", func(ctx context.Context) (*models.QuickSummary, error) {
		return h.api.Analytics.Summary(ctx)
	})
	if err != nil {
		return err
	}

	recent, err := cache.Fetch(ctx, h.cache, "dashboard.recent", func(ctx context.Context) ([]models.Invoice, error) {
		return h.api.Analytics.RecentInvoices(ctx, 5)
	})
	if err != nil {
		return err
	}

	business := ""
	if user := h.session.User(); user != nil && user.BusinessName != nil {
		business = *user.BusinessName
	}

	return c.JSON(fiber.Map{
		"business":       business,
		"stats":          stats,
		"summary":        summary,
		"recentInvoices": recentViews(recent),
	})
}

type recentInvoiceView struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	CustomerName  string `json:"customerName"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	IssuedAgo     string `json:"issuedAgo"`
}

func recentViews(invoices []models.Invoice) []recentInvoiceView {
	views := make([]recentInvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		customer := ""
		if inv.Customer != nil {
			customer = inv.Customer.Name
		}
		views = append(views, recentInvoiceView{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  customer,
			Status:        inv.Status,
			Amount:        utils.FormatNaira(inv.Total),
			IssuedAgo:     utils.FormatRelativeTime(inv.CreatedAt),
		})
	}
	return views
}
