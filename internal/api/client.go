package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/aydeggy-dot/InvoiceNG/internal/session"
)

// Envelope is the uniform wrapper around every API response
type Envelope struct {
	Success   bool              `json:"success"`
	Data      json.RawMessage   `json:"data"`
	Message   string            `json:"message,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Timestamp string            `json:"timestamp,omitempty"`
}

// Client talks to the remote InvoiceNG API. It attaches the session's bearer
// credential to every request outside /auth/, unwraps the response envelope,
// and on a 401 runs the refresh-and-replay protocol: exactly one transparent
// credential refresh, then exactly one replay of the original request. A 401
// on the replay is terminal; the session is cleared and the auth-lost
// callback fires.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	onAuthLost func()

	// refreshGroup collapses concurrent 401s into a single refresh call
	refreshGroup singleflight.Group

	Auth          *AuthAPI
	Customers     *CustomersAPI
	Invoices      *InvoicesAPI
	Products      *ProductsAPI
	Orders        *OrdersAPI
	Conversations *ConversationsAPI
	Analytics     *AnalyticsAPI
	Users         *UsersAPI
}

// NewClient creates an API client rooted at baseURL, reading and updating
// credentials through the given session store.
func NewClient(baseURL string, sess *session.Store) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    sess,
	}

	c.Auth = &AuthAPI{client: c}
	c.Customers = &CustomersAPI{client: c}
	c.Invoices = &InvoicesAPI{client: c}
	c.Products = &ProductsAPI{client: c}
	c.Orders = &OrdersAPI{client: c}
	c.Conversations = &ConversationsAPI{client: c}
	c.Analytics = &AnalyticsAPI{client: c}
	c.Users = &UsersAPI{client: c}

	return c
}

// OnAuthLost registers the callback fired on terminal auth failure. The
// transport deliberately does not know about routing; the navigation layer
// subscribes here instead.
func (c *Client) OnAuthLost(fn func()) {
	c.onAuthLost = fn
}

func (c *Client) emitAuthLost() {
	if c.onAuthLost != nil {
		c.onAuthLost()
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do builds and sends one logical request. Mutations get an idempotency key
// that is reused verbatim if the request is replayed after a refresh, so the
// server never applies the same mutation twice.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var idemKey string
	if method != http.MethodGet {
		idemKey = uuid.NewString()
	}

	return c.send(ctx, method, path, query, payload, out, idemKey, false)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, out any, idemKey string, retried bool) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if idemKey != "" {
		req.Header.Set("Idempotency-Key", idemKey)
	}

	// Auth endpoints manage their own credentials; attaching the (possibly
	// expired) access token there would loop the refresh protocol.
	if !isAuthPath(path) {
		if token := c.session.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(ctx, method, path, query, payload, out, idemKey, retried)
	}

	var env Envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (len(raw) > 0 && !env.Success) {
		status := resp.StatusCode
		if status >= 200 && status < 300 {
			status = http.StatusBadRequest
		}
		return &Error{Status: status, Message: env.Message, Fields: env.Errors}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response payload: %w", err)
		}
	}

	return nil
}

// handleUnauthorized runs the 401 protocol. Terminal cases clear the session
// and emit auth-lost; the success path replays the original request once.
func (c *Client) handleUnauthorized(ctx context.Context, method, path string, query url.Values, payload []byte, out any, idemKey string, retried bool) error {
	if isAuthPath(path) || retried || c.session.RefreshToken() == "" {
		c.session.Logout()
		c.emitAuthLost()
		return ErrUnauthenticated
	}

	if err := c.refresh(ctx); err != nil {
		c.session.Logout()
		c.emitAuthLost()
		return ErrUnauthenticated
	}

	// The session store is fully updated before this replay dispatches
	return c.send(ctx, method, path, query, payload, out, idemKey, true)
}

// refresh exchanges the refresh credential for fresh tokens and atomically
// updates the session store. Concurrent callers share one refresh call.
func (c *Client) refresh(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refreshToken := c.session.RefreshToken()
		if refreshToken == "" {
			return nil, ErrUnauthenticated
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build refresh request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+refreshToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("refresh request failed: %w", err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read refresh response: %w", err)
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil || resp.StatusCode != http.StatusOK || !env.Success {
			return nil, &Error{Status: resp.StatusCode, Message: env.Message}
		}

		var auth AuthResponse
		if err := json.Unmarshal(env.Data, &auth); err != nil {
			return nil, fmt.Errorf("failed to decode refresh payload: %w", err)
		}

		c.session.SetAuth(auth.Token, auth.RefreshToken, auth.User)
		return nil, nil
	})
	return err
}

func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}
