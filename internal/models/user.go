package models

import "time"

// User is the authenticated business owner's profile as returned by the API.
// The client never edits it in place; changes go through the users/me endpoint.
type User struct {
	ID                    string    `json:"id"`
	Phone                 string    `json:"phone"`
	Email                 *string   `json:"email"`
	BusinessName          *string   `json:"businessName"`
	BusinessAddress       *string   `json:"businessAddress"`
	BankName              *string   `json:"bankName"`
	BankCode              *string   `json:"bankCode"`
	AccountNumber         *string   `json:"accountNumber"`
	AccountName           *string   `json:"accountName"`
	LogoURL               *string   `json:"logoUrl"`
	SubscriptionTier      string    `json:"subscriptionTier"`
	InvoiceCountThisMonth int       `json:"invoiceCountThisMonth"`
	CreatedAt             time.Time `json:"createdAt"`
}
