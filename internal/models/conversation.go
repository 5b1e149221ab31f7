package models

import "time"

// Conversation is a WhatsApp conversation between the sales agent and a customer.
// The agent runs server-side; the client only observes and takes over via handoff.
type Conversation struct {
	ID                 string         `json:"id"`
	CustomerPhone      string         `json:"customerPhone"`
	CustomerName       string         `json:"customerName,omitempty"`
	CustomerWhatsappID string         `json:"customerWhatsappId,omitempty"`
	State              string         `json:"state"`
	Context            map[string]any `json:"context,omitempty"`
	Cart               any            `json:"cart,omitempty"`
	IsActive           bool           `json:"isActive"`
	LastMessageAt      *time.Time     `json:"lastMessageAt,omitempty"`
	MessageCount       int            `json:"messageCount"`
	IsHandedOff        bool           `json:"isHandedOff"`
	HandedOffAt        *time.Time     `json:"handedOffAt,omitempty"`
	HandedOffReason    string         `json:"handedOffReason,omitempty"`
	Outcome            string         `json:"outcome,omitempty"`
	OrderID            string         `json:"orderId,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// ConversationMessage is a single message inside a conversation
type ConversationMessage struct {
	ID                string         `json:"id"`
	ConversationID    string         `json:"conversationId"`
	Direction         string         `json:"direction"` // "inbound" or "outbound"
	MessageType       string         `json:"messageType"`
	Content           string         `json:"content"`
	MediaURL          string         `json:"mediaUrl,omitempty"`
	WhatsappMessageID string         `json:"whatsappMessageId,omitempty"`
	IntentDetected    string         `json:"intentDetected,omitempty"`
	EntitiesExtracted map[string]any `json:"entitiesExtracted,omitempty"`
	AIConfidence      *float64       `json:"aiConfidence,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
}
