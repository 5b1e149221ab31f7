package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestGet(t *testing.T) {
	t.Run("cold key blocks and caches", func(t *testing.T) {
		s := New(time.Minute)
		var calls atomic.Int32

		fetch := func(ctx context.Context) (any, error) {
			calls.Add(1)
			return "v1", nil
		}

		got, err := s.Get(context.Background(), "k", fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "v1" {
			t.Errorf("expected v1, got %v", got)
		}

		// Fresh read comes from cache
		got, err = s.Get(context.Background(), "k", fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "v1" {
			t.Errorf("expected v1, got %v", got)
		}
		if n := calls.Load(); n != 1 {
			t.Errorf("expected 1 fetch, got %d", n)
		}
	})

	t.Run("concurrent cold reads share one fetch", func(t *testing.T) {
		s := New(time.Minute)
		var calls atomic.Int32
		release := make(chan struct{})

		fetch := func(ctx context.Context) (any, error) {
			calls.Add(1)
			<-release
			return "v1", nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := s.Get(context.Background(), "k", fetch)
				if err != nil || got != "v1" {
					t.Errorf("got %v, %v", got, err)
				}
			}()
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		if n := calls.Load(); n != 1 {
			t.Errorf("expected fetches to collapse to 1, got %d", n)
		}
	})

	t.Run("stale data served immediately then revalidated", func(t *testing.T) {
		s := New(10 * time.Millisecond)
		var calls atomic.Int32

		fetch := func(ctx context.Context) (any, error) {
			n := calls.Add(1)
			if n == 1 {
				return "v1", nil
			}
			return "v2", nil
		}

		if got, _ := s.Get(context.Background(), "k", fetch); got != "v1" {
			t.Fatalf("expected v1, got %v", got)
		}

		time.Sleep(20 * time.Millisecond)

		// Stale read returns the cached value without waiting
		got, err := s.Get(context.Background(), "k", fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "v1" {
			t.Errorf("stale read should return cached copy, got %v", got)
		}

		// The background refresh lands shortly after
		waitFor(t, func() bool {
			got, _ := s.Get(context.Background(), "k", fetch)
			return got == "v2"
		}, "revalidation never landed")
	})

	t.Run("one automatic retry on fetch error", func(t *testing.T) {
		s := New(time.Minute)
		var calls atomic.Int32

		fetch := func(ctx context.Context) (any, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("transient")
			}
			return "v1", nil
		}

		got, err := s.Get(context.Background(), "k", fetch)
		if err != nil {
			t.Fatalf("expected retry to recover: %v", err)
		}
		if got != "v1" {
			t.Errorf("expected v1, got %v", got)
		}
		if n := calls.Load(); n != 2 {
			t.Errorf("expected exactly 2 attempts, got %d", n)
		}
	})

	t.Run("both attempts failing surfaces the error", func(t *testing.T) {
		s := New(time.Minute)
		fetch := func(ctx context.Context) (any, error) {
			return nil, errors.New("down")
		}

		if _, err := s.Get(context.Background(), "k", fetch); err == nil {
			t.Fatal("expected error on cold key with no fallback")
		}
	})

	t.Run("failed revalidation keeps serving stale data", func(t *testing.T) {
		s := New(time.Minute)
		var fail atomic.Bool

		fetch := func(ctx context.Context) (any, error) {
			if fail.Load() {
				return nil, errors.New("down")
			}
			return "v1", nil
		}

		if _, err := s.Get(context.Background(), "k", fetch); err != nil {
			t.Fatalf("seed fetch failed: %v", err)
		}

		fail.Store(true)
		s.Invalidate("k")

		got, err := s.Get(context.Background(), "k", fetch)
		if err != nil {
			t.Fatalf("stale fallback should not error: %v", err)
		}
		if got != "v1" {
			t.Errorf("expected stale v1, got %v", got)
		}
	})
}

func TestInvalidate(t *testing.T) {
	t.Run("prefix match marks entries stale", func(t *testing.T) {
		s := New(time.Minute)
		var invoiceCalls, customerCalls atomic.Int32

		fetchInvoices := func(ctx context.Context) (any, error) {
			invoiceCalls.Add(1)
			return "invoices", nil
		}
		fetchCustomers := func(ctx context.Context) (any, error) {
			customerCalls.Add(1)
			return "customers", nil
		}

		_, _ = s.Get(context.Background(), "invoices.list", fetchInvoices)
		_, _ = s.Get(context.Background(), "customers.list", fetchCustomers)

		s.Invalidate("invoices")

		// Invalidated key refetches (in the background, stale copy served now)
		_, _ = s.Get(context.Background(), "invoices.list", fetchInvoices)
		waitFor(t, func() bool { return invoiceCalls.Load() == 2 }, "invalidated key never refetched")

		// Untouched prefix stays fresh
		_, _ = s.Get(context.Background(), "customers.list", fetchCustomers)
		if n := customerCalls.Load(); n != 1 {
			t.Errorf("customers should not have refetched, got %d calls", n)
		}
	})

	t.Run("invalidation during an in-flight fetch keeps the result stale", func(t *testing.T) {
		s := New(time.Minute)
		var calls atomic.Int32
		started := make(chan struct{})
		release := make(chan struct{})

		fetch := func(ctx context.Context) (any, error) {
			if calls.Add(1) == 1 {
				close(started)
				<-release
			}
			return "v", nil
		}

		go func() {
			_, _ = s.Get(context.Background(), "k", fetch)
		}()

		<-started
		s.Invalidate("k")
		close(release)

		// The fetch that raced the invalidation completed, but its result must
		// not count as fresh: the next read revalidates.
		waitFor(t, func() bool {
			_, ok := s.cached("k")
			return ok
		}, "in-flight fetch never recorded")

		_, _ = s.Get(context.Background(), "k", fetch)
		waitFor(t, func() bool { return calls.Load() >= 2 }, "read after racing invalidation did not revalidate")
	})
}

func TestClear(t *testing.T) {
	t.Run("no data survives clear", func(t *testing.T) {
		s := New(time.Minute)
		var calls atomic.Int32

		fetch := func(ctx context.Context) (any, error) {
			calls.Add(1)
			return "v", nil
		}

		_, _ = s.Get(context.Background(), "k", fetch)
		s.Clear()

		// The next read blocks on a fresh fetch
		if _, err := s.Get(context.Background(), "k", fetch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := calls.Load(); n != 2 {
			t.Errorf("expected refetch after clear, got %d calls", n)
		}
	})

	t.Run("fetch in flight during clear is discarded", func(t *testing.T) {
		s := New(time.Minute)
		var calls atomic.Int32
		release := make(chan struct{})

		slow := func(ctx context.Context) (any, error) {
			calls.Add(1)
			<-release
			return "old-session", nil
		}

		done := make(chan struct{})
		go func() {
			_, _ = s.Get(context.Background(), "k", slow)
			close(done)
		}()

		waitFor(t, func() bool { return calls.Load() == 1 }, "fetch never started")
		s.Clear()
		close(release)
		<-done

		// The result resolved after Clear; storing it would leak data fetched
		// under the old session into the new one.
		if v, ok := s.cached("k"); ok {
			t.Fatalf("data from a pre-clear fetch was stored: %v", v)
		}
	})
}

func TestSubscribe(t *testing.T) {
	s := New(time.Minute)
	var calls atomic.Int32

	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "v", nil
	}

	stop := s.Subscribe("k", fetch, 10*time.Millisecond)
	waitFor(t, func() bool { return calls.Load() >= 2 }, "subscription never ticked")

	stop()
	n := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != n {
		t.Error("subscription kept fetching after stop")
	}

	// Stopping twice is safe
	stop()
}

func TestFetchTyped(t *testing.T) {
	s := New(time.Minute)

	type page struct{ Total int }

	got, err := Fetch(context.Background(), s, "k", func(ctx context.Context) (*page, error) {
		return &page{Total: 3}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 3 {
		t.Errorf("expected 3, got %d", got.Total)
	}
}

func TestKey(t *testing.T) {
	t.Run("bare resource for empty params", func(t *testing.T) {
		if got := Key("customers", nil); got != "customers" {
			t.Errorf("expected customers, got %s", got)
		}
		if got := Key("customers", struct{}{}); got != "customers" {
			t.Errorf("expected customers for empty struct, got %s", got)
		}
	})

	t.Run("map key order does not matter", func(t *testing.T) {
		a := Key("customers", map[string]any{"page": 1, "search": "ada"})
		b := Key("customers", map[string]any{"search": "ada", "page": 1})
		if a != b {
			t.Errorf("keys differ: %s vs %s", a, b)
		}
	})

	t.Run("different params different keys", func(t *testing.T) {
		a := Key("customers", map[string]any{"page": 1})
		b := Key("customers", map[string]any{"page": 2})
		if a == b {
			t.Error("expected distinct keys for distinct params")
		}
	})
}
