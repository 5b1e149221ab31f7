package models

import "time"

// Invoice status values as sent by the API. The client only displays these;
// transitions happen through the send/cancel/mark-paid action endpoints.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusViewed    = "viewed"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceItem is a single line item on an invoice
type InvoiceItem struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// InvoiceCustomer is the embedded customer snapshot on an invoice
type InvoiceCustomer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email"`
}

// Invoice represents an invoice record
type Invoice struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	CustomerID    string           `json:"customerId,omitempty"`
	Customer      *InvoiceCustomer `json:"customer,omitempty"`
	Items         []InvoiceItem    `json:"items"`
	Subtotal      float64          `json:"subtotal"`
	Tax           float64          `json:"tax"`
	Discount      float64          `json:"discount"`
	Total         float64          `json:"total"`
	PaidAmount    float64          `json:"paidAmount"`
	Status        string           `json:"status"`
	IssueDate     string           `json:"issueDate"`
	DueDate       string           `json:"dueDate"`
	Notes         *string          `json:"notes"`
	SentAt        *time.Time       `json:"sentAt,omitempty"`
	PaidAt        *time.Time       `json:"paidAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	BusinessName  string           `json:"businessName,omitempty"`
}

// InvoiceSummary is the aggregate block returned alongside the invoice list
type InvoiceSummary struct {
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	PendingAmount float64 `json:"pendingAmount"`
	OverdueAmount float64 `json:"overdueAmount"`
	TotalCount    int     `json:"totalCount"`
	PaidCount     int     `json:"paidCount"`
	PendingCount  int     `json:"pendingCount"`
	OverdueCount  int     `json:"overdueCount"`
}

// InvoiceList is the invoice list payload: paginated data plus summary
type InvoiceList struct {
	Data       []Invoice      `json:"data"`
	Pagination Pagination     `json:"pagination"`
	Summary    InvoiceSummary `json:"summary"`
}
