package api

import (
	"context"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// OtpResponse is the payload of a successful OTP request
type OtpResponse struct {
	Message   string `json:"message"`
	ExpiresIn int64  `json:"expiresIn"`
}

// AuthResponse is the payload of verify-otp and refresh
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"`
	User         *models.User `json:"user"`
	IsNewUser    bool         `json:"isNewUser"`
}

// AuthAPI maps the authentication endpoints
type AuthAPI struct {
	client *Client
}

// RequestOTP asks the platform to send a one-time code to phone.
// phone must already be in canonical international form.
func (a *AuthAPI) RequestOTP(ctx context.Context, phone string) (*OtpResponse, error) {
	var out OtpResponse
	err := a.client.post(ctx, "/auth/request-otp", nil, map[string]string{"phone": phone}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP exchanges the code for credentials and the user profile
func (a *AuthAPI) VerifyOTP(ctx context.Context, phone, otp string) (*AuthResponse, error) {
	var out AuthResponse
	err := a.client.post(ctx, "/auth/verify-otp", nil, map[string]string{"phone": phone, "otp": otp}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
