package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
	"github.com/aydeggy-dot/InvoiceNG/internal/session"
)

func testApp(store *session.Store) *fiber.App {
	app := fiber.New()
	app.Get("/login", GuestOnly(store), func(c *fiber.Ctx) error {
		return c.SendString("login")
	})
	app.Get("/verify-otp", GuestOnly(store), RequirePendingOTP(store), func(c *fiber.Ctx) error {
		return c.SendString("verify")
	})
	app.Get("/invoices", RequireAuth(store), func(c *fiber.Ctx) error {
		return c.SendString("invoices")
	})
	return app
}

func signIn(store *session.Store) {
	store.SetAuth("access", "refresh", &models.User{ID: "usr_1"})
}

func TestRequireAuth(t *testing.T) {
	t.Run("signed out is redirected with return location", func(t *testing.T) {
		store := session.NewMemoryStore()
		app := testApp(store)

		resp, err := app.Test(httptest.NewRequest("GET", "/invoices?status=overdue", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/login?next=%2Finvoices%3Fstatus%3Doverdue" {
			t.Errorf("unexpected redirect target: %s", loc)
		}
	})

	t.Run("signed in passes through", func(t *testing.T) {
		store := session.NewMemoryStore()
		signIn(store)
		app := testApp(store)

		resp, err := app.Test(httptest.NewRequest("GET", "/invoices", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})
}

func TestGuestOnly(t *testing.T) {
	t.Run("signed in is sent to the requested location", func(t *testing.T) {
		store := session.NewMemoryStore()
		signIn(store)
		app := testApp(store)

		resp, err := app.Test(httptest.NewRequest("GET", "/login?next=%2Finvoices", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/invoices" {
			t.Errorf("unexpected redirect target: %s", loc)
		}
	})

	t.Run("external next target falls back to landing page", func(t *testing.T) {
		store := session.NewMemoryStore()
		signIn(store)
		app := testApp(store)

		// Protocol-relative forms start with "/" but browsers resolve them
		// against the request scheme to another host.
		targets := []string{
			"/login?next=https%3A%2F%2Fevil.example",
			"/login?next=%2F%2Fevil.example",
			"/login?next=%2F%5Cevil.example",
		}
		for _, target := range targets {
			resp, err := app.Test(httptest.NewRequest("GET", target, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if loc := resp.Header.Get("Location"); loc != "/" {
				t.Errorf("open redirect not blocked for %s: %s", target, loc)
			}
		}
	})

	t.Run("signed out passes through", func(t *testing.T) {
		store := session.NewMemoryStore()
		app := testApp(store)

		resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})
}

func TestRequirePendingOTP(t *testing.T) {
	t.Run("no pending phone goes back to login", func(t *testing.T) {
		store := session.NewMemoryStore()
		app := testApp(store)

		resp, err := app.Test(httptest.NewRequest("GET", "/verify-otp", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusFound {
			t.Fatalf("expected 302, got %d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/login" {
			t.Errorf("unexpected redirect target: %s", loc)
		}
	})

	t.Run("pending phone passes through", func(t *testing.T) {
		store := session.NewMemoryStore()
		store.SetPendingPhone("2348012345678")
		app := testApp(store)

		resp, err := app.Test(httptest.NewRequest("GET", "/verify-otp", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})
}
