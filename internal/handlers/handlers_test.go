package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/api"
	"github.com/aydeggy-dot/InvoiceNG/internal/cache"
	"github.com/aydeggy-dot/InvoiceNG/internal/models"
	"github.com/aydeggy-dot/InvoiceNG/internal/routes"
	"github.com/aydeggy-dot/InvoiceNG/internal/services"
	"github.com/aydeggy-dot/InvoiceNG/internal/session"
)

// fakePlatform stands in for the remote InvoiceNG API
type fakePlatform struct {
	srv *httptest.Server

	otpPhone     atomic.Value // last phone an OTP was requested for
	invoiceLists atomic.Int32 // calls to GET /invoices
	created      atomic.Int32 // calls to POST /invoices
}

func envelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	raw, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    json.RawMessage(raw),
	})
}

func newFakePlatform(t *testing.T) *fakePlatform {
	f := &fakePlatform{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/request-otp":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.otpPhone.Store(body["phone"])
			envelope(w, 200, map[string]any{"message": "OTP sent", "expiresIn": 300})

		case r.URL.Path == "/auth/verify-otp":
			envelope(w, 200, api.AuthResponse{
				Token:        "access-1",
				RefreshToken: "refresh-1",
				User:         &models.User{ID: "usr_1", Phone: "2348012345678"},
			})

		case r.URL.Path == "/invoices" && r.Method == http.MethodGet:
			f.invoiceLists.Add(1)
			envelope(w, 200, models.InvoiceList{
				Data: []models.Invoice{{ID: "inv_1", InvoiceNumber: "INV-0001", Total: 5000, Status: models.InvoiceStatusSent}},
				Pagination: models.Pagination{
					Page: 1, Limit: 20, Total: int(f.created.Load()) + 1, TotalPages: 1,
				},
				Summary: models.InvoiceSummary{TotalAmount: 5000, TotalCount: 1},
			})

		case r.URL.Path == "/invoices" && r.Method == http.MethodPost:
			f.created.Add(1)
			envelope(w, 201, models.Invoice{ID: "inv_2", InvoiceNumber: "INV-0002", Status: models.InvoiceStatusDraft})

		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Not found"})
		}
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func newTestApp(t *testing.T, platform *fakePlatform) (*fiber.App, *session.Store) {
	sessionStore := session.NewMemoryStore()
	cacheStore := cache.New(time.Minute)
	apiClient := api.NewClient(platform.srv.URL, sessionStore)
	shareService := services.NewShareService("https://pay.invoiceng.app")

	app := fiber.New()
	routes.SetupRoutes(app, apiClient, cacheStore, sessionStore, shareService)
	return app, sessionStore
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestLoginFlow(t *testing.T) {
	platform := newFakePlatform(t)
	app, sessionStore := newTestApp(t, platform)

	t.Run("request OTP canonicalizes the phone", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/request-otp", map[string]string{"phone": "0801 234 5678"})
		if resp.StatusCode != fiber.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
		}
		if got := platform.otpPhone.Load(); got != "2348012345678" {
			t.Errorf("platform should receive the canonical number, got %v", got)
		}
		if sessionStore.PendingPhone() != "2348012345678" {
			t.Error("pending phone not recorded")
		}
	})

	t.Run("invalid phone never reaches the platform", func(t *testing.T) {
		platform.otpPhone.Store("")
		resp := postJSON(t, app, "/auth/request-otp", map[string]string{"phone": "12345"})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
		if got := platform.otpPhone.Load(); got != "" {
			t.Errorf("invalid phone leaked to the platform: %v", got)
		}
	})

	t.Run("verify OTP signs the operator in", func(t *testing.T) {
		// Re-request so a pending phone is set
		postJSON(t, app, "/auth/request-otp", map[string]string{"phone": "08012345678"})

		resp := postJSON(t, app, "/auth/verify-otp", map[string]string{"otp": "123456"})
		if resp.StatusCode != fiber.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
		}
		if !sessionStore.IsAuthenticated() {
			t.Error("expected authenticated session after verification")
		}
		if sessionStore.AccessToken() != "access-1" {
			t.Error("credentials not stored")
		}
	})
}

func TestInvoiceCaching(t *testing.T) {
	platform := newFakePlatform(t)
	app, sessionStore := newTestApp(t, platform)
	sessionStore.SetAuth("access-1", "refresh-1", &models.User{ID: "usr_1"})

	t.Run("repeated list reads hit the cache", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			resp := getPath(t, app, "/invoices")
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
		}
		if n := platform.invoiceLists.Load(); n != 1 {
			t.Errorf("expected a single upstream fetch, got %d", n)
		}
	})

	t.Run("creating an invoice invalidates the list", func(t *testing.T) {
		resp := postJSON(t, app, "/invoices", map[string]any{
			"customerId": "cus_1",
			"dueDate":    "2099-01-01",
			"items": []map[string]any{
				{"name": "Ankara fabric", "quantity": 2, "price": 7500},
			},
		})
		if resp.StatusCode != fiber.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
		}

		// The stale list is served immediately; the refetch lands shortly after
		getPath(t, app, "/invoices")
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) && platform.invoiceLists.Load() < 2 {
			time.Sleep(10 * time.Millisecond)
		}
		if n := platform.invoiceLists.Load(); n < 2 {
			t.Errorf("list never revalidated after mutation, %d upstream fetches", n)
		}
	})

	t.Run("invalid create never reaches the platform", func(t *testing.T) {
		before := platform.created.Load()
		resp := postJSON(t, app, "/invoices", map[string]any{
			"customerId": "cus_1",
			// missing dueDate and items
		})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
		var body struct {
			Message string            `json:"message"`
			Errors  map[string]string `json:"errors"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Message != "Validation failed" {
			t.Errorf("unexpected message: %s", body.Message)
		}
		if _, ok := body.Errors["dueDate"]; !ok {
			t.Errorf("expected a dueDate field error, got %v", body.Errors)
		}
		if platform.created.Load() != before {
			t.Error("invalid payload leaked to the platform")
		}
	})
}

func TestLogout(t *testing.T) {
	platform := newFakePlatform(t)
	app, sessionStore := newTestApp(t, platform)
	sessionStore.SetAuth("access-1", "refresh-1", &models.User{ID: "usr_1"})

	// Warm the cache, then log out
	getPath(t, app, "/invoices")

	resp := postJSON(t, app, "/auth/logout", nil)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if sessionStore.IsAuthenticated() {
		t.Error("logout did not clear the session")
	}

	// A signed-out read redirects instead of serving cached data
	resp = getPath(t, app, "/invoices")
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("cached data must not be reachable after logout, got %d", resp.StatusCode)
	}
}
