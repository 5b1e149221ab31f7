package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// ConversationsAPI maps the /conversations resource family
type ConversationsAPI struct {
	client *Client
}

// ConversationListParams filters and pages the conversation list
type ConversationListParams struct {
	Status    string `json:"status,omitempty"`
	HandedOff *bool  `json:"handedOff,omitempty"`
	Page      int    `json:"page,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

// List fetches a page of conversations
func (a *ConversationsAPI) List(ctx context.Context, p ConversationListParams) (*models.Paginated[models.Conversation], error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.HandedOff != nil {
		q.Set("handedOff", strconv.FormatBool(*p.HandedOff))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}

	var out models.Paginated[models.Conversation]
	if err := a.client.get(ctx, "/conversations", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single conversation by ID
func (a *ConversationsAPI) Get(ctx context.Context, id string) (*models.Conversation, error) {
	var out models.Conversation
	if err := a.client.get(ctx, "/conversations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Messages fetches the most recent messages in a conversation
func (a *ConversationsAPI) Messages(ctx context.Context, id string, limit int) ([]models.ConversationMessage, error) {
	q := url.Values{}
	if limit <= 0 {
		limit = 100
	}
	q.Set("limit", strconv.Itoa(limit))

	var out []models.ConversationMessage
	if err := a.client.get(ctx, "/conversations/"+id+"/messages", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage posts an operator message into the conversation
func (a *ConversationsAPI) SendMessage(ctx context.Context, id, content string) (*models.ConversationMessage, error) {
	var out models.ConversationMessage
	err := a.client.post(ctx, "/conversations/"+id+"/messages", nil, map[string]string{"content": content}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Active lists the currently active conversations
func (a *ConversationsAPI) Active(ctx context.Context) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := a.client.get(ctx, "/conversations/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Handoff lists conversations waiting for a human takeover
func (a *ConversationsAPI) Handoff(ctx context.Context, page, limit int) ([]models.Conversation, error) {
	q := url.Values{}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out []models.Conversation
	if err := a.client.get(ctx, "/conversations/handoff", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestHandoff moves the conversation from the agent to the operator
func (a *ConversationsAPI) RequestHandoff(ctx context.Context, id, reason string) (*models.Conversation, error) {
	var out models.Conversation
	err := a.client.post(ctx, "/conversations/"+id+"/handoff", nil, map[string]string{"reason": reason}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveHandoff returns the conversation to the agent
func (a *ConversationsAPI) ResolveHandoff(ctx context.Context, id string) (*models.Conversation, error) {
	var out models.Conversation
	if err := a.client.post(ctx, "/conversations/"+id+"/resolve", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Close ends the conversation
func (a *ConversationsAPI) Close(ctx context.Context, id string) (*models.Conversation, error) {
	var out models.Conversation
	if err := a.client.post(ctx, "/conversations/"+id+"/close", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
