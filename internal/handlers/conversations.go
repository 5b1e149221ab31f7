package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// Message threads move fast; their cached copies go stale much sooner
// than the document views.
const messageStaleTime = 5 * time.Second

// ConversationHandler serves the WhatsApp conversation inbox
type ConversationHandler struct {
	api   *api.Client
	cache *cache.Store
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(apiClient *api.Client, cacheStore *cache.Store) *ConversationHandler {
	return &ConversationHandler{api: apiClient, cache: cacheStore}
}

// List returns a page of conversations
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	params := api.ConversationListParams{
		Status:    c.Query("status"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 20),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if c.Query("handedOff") != "" {
		handedOff := c.QueryBool("handedOff")
		params.HandedOff = &handedOff
	}

	key := cache.Key("conversations.list", params)
	page, err := cache.Fetch(c.Context(), h.cache, key, func(ctx context.Context) (*models.Paginated[models.Conversation], error) {
		return h.api.Conversations.List(ctx, params)
	})
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// Get returns a single conversation
func (h *ConversationHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	conv, err := cache.Fetch(c.Context(), h.cache, cache.Key("conversations.detail", id), func(ctx context.Context) (*models.Conversation, error) {
		return h.api.Conversations.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	return c.JSON(conv)
}

// Messages returns the message thread of a conversation
func (h *ConversationHandler) Messages(c *fiber.Ctx) error {
	id := c.Params("id")
	limit := c.QueryInt("limit", 100)

	key := cache.Key("conversations.messages", map[string]any{"id": id, "limit": limit})
	messages, err := cache.FetchWithOptions(c.Context(), h.cache, key, func(ctx context.Context) ([]models.ConversationMessage, error) {
		return h.api.Conversations.Messages(ctx, id, limit)
	}, cache.Options{StaleTime: messageStaleTime})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": messages})
}

type sendMessageForm struct {
	Content string `json:"content" validate:"required"`
}

// SendMessage sends an operator reply into a conversation
func (h *ConversationHandler) SendMessage(c *fiber.Ctx) error {
	var form sendMessageForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !checkForm(c, &form) {
		return nil
	}

	message, err := h.api.Conversations.SendMessage(c.Context(), c.Params("id"), form.Content)
	if err != nil {
		return err
	}

	h.cache.Invalidate("conversations")

	return c.Status(fiber.StatusCreated).JSON(message)
}

// Active returns the conversations currently awaiting attention
func (h *ConversationHandler) Active(c *fiber.Ctx) error {
	active, err := cache.FetchWithOptions(c.Context(), h.cache, "conversations.active", func(ctx context.Context) ([]models.Conversation, error) {
		return h.api.Conversations.Active(ctx)
	}, cache.Options{StaleTime: messageStaleTime})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": active})
}

// Handoff returns conversations flagged for human takeover
func (h *ConversationHandler) Handoff(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	key := cache.Key("conversations.handoff", map[string]any{"page": page, "limit": limit})
	convs, err := cache.FetchWithOptions(c.Context(), h.cache, key, func(ctx context.Context) ([]models.Conversation, error) {
		return h.api.Conversations.Handoff(ctx, page, limit)
	}, cache.Options{StaleTime: messageStaleTime})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": convs})
}

type handoffForm struct {
	Reason string `json:"reason"`
}

// RequestHandoff flags a conversation for human takeover
func (h *ConversationHandler) RequestHandoff(c *fiber.Ctx) error {
	var form handoffForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "Invalid request body")
	}

	conv, err := h.api.Conversations.RequestHandoff(c.Context(), c.Params("id"), form.Reason)
	if err != nil {
		return err
	}

	h.cache.Invalidate("conversations")

	return c.JSON(conv)
}

// ResolveHandoff hands a conversation back to the bot
func (h *ConversationHandler) ResolveHandoff(c *fiber.Ctx) error {
	conv, err := h.api.Conversations.ResolveHandoff(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	h.cache.Invalidate("conversations")

	return c.JSON(conv)
}

// Close closes a conversation
func (h *ConversationHandler) Close(c *fiber.Ctx) error {
	conv, err := h.api.Conversations.Close(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	h.cache.Invalidate("conversations")

	return c.JSON(conv)
}
