package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
	"github.com/aydeggy-dot/InvoiceNG/internal/session"
)

// SettingsHandler serves the business profile view and edit form
type SettingsHandler struct {
	api     *api.Client
	cache   *cache.Store
	session *session.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(apiClient *api.Client, cacheStore *cache.Store, sessionStore *session.Store) *SettingsHandler {
	return &SettingsHandler{
		api:     apiClient,
		cache:   cacheStore,
		session: sessionStore,
	}
}

// Profile returns the signed-in user's business profile
func (h *SettingsHandler) Profile(c *fiber.Ctx) error {
	user, err := cache.Fetch(c.Context(), h.cache, "user.me", func(ctx context.Context) (*models.User, error) {
		return h.api.Users.Me(ctx)
	})
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// Update edits the business profile. The session's user snapshot is refreshed
// so guards and views see the new details immediately.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var form api.UpdateUserRequest
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	user, err := h.api.Users.UpdateMe(c.Context(), form)
	if err != nil {
		return err
	}

	h.session.SetUser(user)
	h.cache.Invalidate("user")

	return c.JSON(user)
}
