package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/session"
	"github.com/aydeggy-dot/InvoiceNG/internal/utils"
)

// RequireAuth gates authenticated-only routes. Unauthenticated requests are
// redirected to the login entry point with the originally requested location
// preserved so it can be returned to after login.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !store.IsAuthenticated() {
			target := "/login"
			if original := c.OriginalURL(); original != "" && original != "/login" {
				target += "?next=" + url.QueryEscape(original)
			}
			return c.Redirect(target, fiber.StatusFound)
		}
		return c.Next()
	}
}

// GuestOnly gates the login and verification screens. Authenticated requests
// are sent back to the location they originally asked for, or the landing page.
func GuestOnly(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store.IsAuthenticated() {
			return c.Redirect(utils.SafeNextPath(c.Query("next")), fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequirePendingOTP gates the verification step. Verification without a
// preceding OTP request has no phone number to verify against, so the
// request goes back to the login step.
func RequirePendingOTP(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store.PendingPhone() == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}
