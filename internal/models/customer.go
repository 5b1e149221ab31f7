package models

import "time"

// Customer represents a business customer record
type Customer struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	Address          *string   `json:"address"`
	Notes            *string   `json:"notes"`
	PaymentScore     float64   `json:"paymentScore"`
	TotalInvoices    int       `json:"totalInvoices"`
	TotalPaid        float64   `json:"totalPaid"`
	TotalOutstanding float64   `json:"totalOutstanding"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
