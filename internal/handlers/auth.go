package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/session"
	"github.com/aydeggy-dot/InvoiceNG/internal/utils"
)

// AuthHandler drives the OTP login flow and logout
type AuthHandler struct {
	api     *api.Client
	cache   *cache.Store
	session *session.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(apiClient *api.Client, cacheStore *cache.Store, sessionStore *session.Store) *AuthHandler {
	return &AuthHandler{
		api:     apiClient,
		cache:   cacheStore,
		session: sessionStore,
	}
}

type requestOTPForm struct {
	Phone string `json:"phone" validate:"required"`
}

type verifyOTPForm struct {
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// LoginPage returns the login view state
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"authenticated": false,
		"pendingPhone":  h.session.PendingPhone(),
		"next":          c.Query("next"),
	})
}

// VerifyPage returns the verification view state. The pending phone is shown
// masked; the full number never round-trips through the view.
func (h *AuthHandler) VerifyPage(c *fiber.Ctx) error {
	phone := h.session.PendingPhone()
	masked := utils.FormatPhone(phone)
	if len(masked) > 8 {
		masked = masked[:5] + "*** " + masked[len(masked)-4:]
	}
	return c.JSON(fiber.Map{
		"pendingPhone": masked,
	})
}

// RequestOTP canonicalizes the phone number and asks the platform for a code
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var form requestOTPForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	canonical, err := utils.NormalizePhone(form.Phone)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  fiber.Map{"phone": "Enter a valid Nigerian phone number"},
		})
	}

	otp, err := h.api.Auth.RequestOTP(c.Context(), canonical)
	if err != nil {
		return err
	}

	h.session.SetPendingPhone(canonical)

	return c.JSON(fiber.Map{
		"message":   otp.Message,
		"expiresIn": otp.ExpiresIn,
		"phone":     canonical,
	})
}

// VerifyOTP exchanges the code for credentials and populates the session.
// The phone comes from the pending OTP step, never from the client.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var form verifyOTPForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	phone := h.session.PendingPhone()
	auth, err := h.api.Auth.VerifyOTP(c.Context(), phone, form.OTP)
	if err != nil {
		return err
	}

	h.session.SetAuth(auth.Token, auth.RefreshToken, auth.User)
	// Nothing cached before login belongs to this session
	h.cache.Clear()

	next := utils.SafeNextPath(c.Query("next"))

	return c.JSON(fiber.Map{
		"user":      auth.User,
		"isNewUser": auth.IsNewUser,
		"next":      next,
	})
}

// Logout clears the session and every cached view
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.session.Logout()
	h.cache.Clear()
	return c.Redirect("/login", fiber.StatusFound)
}
