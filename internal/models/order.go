package models

import "time"

// WhatsAppOrder payment status values
const (
	OrderPaymentPending  = "pending"
	OrderPaymentPaid     = "paid"
	OrderPaymentRefunded = "refunded"
)

// WhatsAppOrder fulfillment status values
const (
	OrderFulfillmentPending   = "pending"
	OrderFulfillmentShipped   = "shipped"
	OrderFulfillmentDelivered = "delivered"
	OrderFulfillmentCancelled = "cancelled"
)

// WhatsAppOrder is an order captured through the WhatsApp sales channel
type WhatsAppOrder struct {
	ID                string           `json:"id"`
	OrderNumber       string           `json:"orderNumber"`
	CustomerName      string           `json:"customerName"`
	CustomerPhone     string           `json:"customerPhone"`
	CustomerEmail     string           `json:"customerEmail,omitempty"`
	DeliveryAddress   string           `json:"deliveryAddress,omitempty"`
	DeliveryArea      string           `json:"deliveryArea,omitempty"`
	DeliveryFee       float64          `json:"deliveryFee"`
	DeliveryNotes     string           `json:"deliveryNotes,omitempty"`
	Items             []map[string]any `json:"items"`
	Subtotal          float64          `json:"subtotal"`
	DiscountAmount    float64          `json:"discountAmount"`
	DiscountReason    string           `json:"discountReason,omitempty"`
	Total             float64          `json:"total"`
	PaymentStatus     string           `json:"paymentStatus"`
	PaymentMethod     string           `json:"paymentMethod,omitempty"`
	PaymentReference  string           `json:"paymentReference,omitempty"`
	PaymentLink       string           `json:"paymentLink,omitempty"`
	PaidAt            *time.Time       `json:"paidAt,omitempty"`
	FulfillmentStatus string           `json:"fulfillmentStatus"`
	ShippedAt         *time.Time       `json:"shippedAt,omitempty"`
	DeliveredAt       *time.Time       `json:"deliveredAt,omitempty"`
	TrackingNumber    string           `json:"trackingNumber,omitempty"`
	InternalNotes     string           `json:"internalNotes,omitempty"`
	Source            string           `json:"source,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}
