package api

import (
	"context"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// UsersAPI maps the /users/me endpoints
type UsersAPI struct {
	client *Client
}

// UpdateUserRequest is the settings form payload
type UpdateUserRequest struct {
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	BusinessName    string `json:"businessName,omitempty"`
	BusinessAddress string `json:"businessAddress,omitempty"`
	BankName        string `json:"bankName,omitempty"`
	BankCode        string `json:"bankCode,omitempty"`
	AccountNumber   string `json:"accountNumber,omitempty" validate:"omitempty,len=10,numeric"`
	AccountName     string `json:"accountName,omitempty"`
}

// Me fetches the signed-in user's profile
func (a *UsersAPI) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.client.get(ctx, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe updates the signed-in user's profile
func (a *UsersAPI) UpdateMe(ctx context.Context, req UpdateUserRequest) (*models.User, error) {
	var out models.User
	if err := a.client.put(ctx, "/users/me", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
