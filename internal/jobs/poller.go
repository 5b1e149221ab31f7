package jobs

import (
	"context"
	"log"
	"time"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/session"
)

// ConversationPoller keeps the inbox views warm while the operator is
// signed in. It refreshes the active-conversation and handoff lists in the
// background so the UI sees updates without waiting on a fetch.
type ConversationPoller struct {
	api      *api.Client
	cache    *cache.Store
	session  *session.Store
	interval time.Duration
	stops    []func()
	running  bool
}

// NewConversationPoller creates a new conversation poller
func NewConversationPoller(apiClient *api.Client, cacheStore *cache.Store, sessionStore *session.Store, interval time.Duration) *ConversationPoller {
	return &ConversationPoller{
		api:      apiClient,
		cache:    cacheStore,
		session:  sessionStore,
		interval: interval,
	}
}

// Start begins the background polling loops
func (p *ConversationPoller) Start() {
	if p.running {
		log.Println("Conversation poller already running")
		return
	}
	p.running = true
	log.Println("Starting conversation poller...")

	stopActive := p.cache.Subscribe("conversations.active", func(ctx context.Context) (any, error) {
		if !p.session.IsAuthenticated() {
			return nil, api.ErrUnauthenticated
		}
		return p.api.Conversations.Active(ctx)
	}, p.interval)

	stopHandoff := p.cache.Subscribe(cache.Key("conversations.handoff", map[string]any{"page": 1, "limit": 20}), func(ctx context.Context) (any, error) {
		if !p.session.IsAuthenticated() {
			return nil, api.ErrUnauthenticated
		}
		return p.api.Conversations.Handoff(ctx, 1, 20)
	}, p.interval)

	p.stops = []func(){stopActive, stopHandoff}
	log.Println("✅ Conversation poller started successfully!")
}

// Stop halts the polling loops
func (p *ConversationPoller) Stop() {
	if !p.running {
		return
	}
	p.running = false
	log.Println("Stopping conversation poller...")
	for _, stop := range p.stops {
		stop()
	}
	p.stops = nil
}
