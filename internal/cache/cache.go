// Package cache is the gateway's query cache: it keys server responses by
// resource and parameter fingerprint, deduplicates concurrent identical
// fetches, serves stale data while revalidating in the background, and is
// invalidated by key prefix after mutations commit.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultStaleTime is how long an entry is served without revalidation
const DefaultStaleTime = 30 * time.Second

// Fetcher loads fresh data for a cache key
type Fetcher func(ctx context.Context) (any, error)

// Options tune a single read
type Options struct {
	// StaleTime overrides the store-wide stale time; zero means no override
	StaleTime time.Duration
}

type entry struct {
	data      any
	hasData   bool
	fetchedAt time.Time
	// gen is bumped by Invalidate; a fetch that started before the bump may
	// still be stored but is immediately stale again
	gen uint64
}

// Store is the in-memory query cache
type Store struct {
	mu        sync.RWMutex
	entries   map[string]*entry
	group     singleflight.Group
	staleTime time.Duration
	// clearGen is bumped by Clear; a fetch that straddles a Clear is discarded
	// so nothing fetched under the old session lands in the new one
	clearGen uint64
}

// New creates a cache store. staleTime <= 0 uses DefaultStaleTime.
func New(staleTime time.Duration) *Store {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &Store{
		entries:   make(map[string]*entry),
		staleTime: staleTime,
	}
}

// Get reads a key with the store-wide stale time
func (s *Store) Get(ctx context.Context, key string, fetch Fetcher) (any, error) {
	return s.GetWithOptions(ctx, key, fetch, Options{})
}

// GetWithOptions reads a key. Fresh data is returned without a network call;
// stale data is returned immediately while a background revalidation runs;
// a cold key blocks until the first fetch resolves. Concurrent callers for
// the same key share one in-flight fetch.
func (s *Store) GetWithOptions(ctx context.Context, key string, fetch Fetcher, opts Options) (any, error) {
	staleTime := opts.StaleTime
	if staleTime <= 0 {
		staleTime = s.staleTime
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	var (
		data      any
		hasData   bool
		fetchedAt time.Time
	)
	if ok {
		data, hasData, fetchedAt = e.data, e.hasData, e.fetchedAt
	}
	s.mu.RUnlock()

	if hasData && time.Since(fetchedAt) < staleTime {
		return data, nil
	}

	if hasData {
		// Stale-while-revalidate: the caller gets the cached copy now and the
		// refresh runs detached from the caller's lifetime.
		go func() {
			_, _ = s.fetchInto(context.WithoutCancel(ctx), key, fetch)
		}()
		return data, nil
	}

	return s.fetchInto(ctx, key, fetch)
}

// fetchInto performs the deduplicated fetch for key, with one automatic
// retry, and stores the outcome.
func (s *Store) fetchInto(ctx context.Context, key string, fetch Fetcher) (any, error) {
	v, err, _ := s.group.Do(key, func() (any, error) {
		startGen, startClear := s.generation(key)

		data, fetchErr := fetch(ctx)
		if fetchErr != nil {
			data, fetchErr = fetch(ctx)
		}

		if fetchErr == nil {
			s.record(key, data, startGen, startClear)
		}
		return data, fetchErr
	})
	if err != nil {
		// A failed revalidation never discards data we already have
		if stale, ok := s.cached(key); ok {
			return stale, nil
		}
		return nil, err
	}
	return v, nil
}

// record writes a successful fetch result. A key invalidated while the fetch
// was in flight is stored but left stale so the next read revalidates; a fetch
// that straddled a Clear is dropped entirely.
func (s *Store) record(key string, data any, startGen, startClear uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clearGen != startClear {
		return
	}

	e := s.entries[key]
	if e == nil {
		e = &entry{}
		s.entries[key] = e
	}

	e.data = data
	e.hasData = true
	if e.gen != startGen {
		e.fetchedAt = time.Time{}
	} else {
		e.fetchedAt = time.Now()
	}
}

func (s *Store) cached(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[key]; ok && e.hasData {
		return e.data, true
	}
	return nil, false
}

func (s *Store) generation(key string) (keyGen, clearGen uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[key]; ok {
		keyGen = e.gen
	}
	return keyGen, s.clearGen
}

// Invalidate marks every entry whose key starts with one of the prefixes as
// stale. The data stays visible; the next read (or poll tick) revalidates.
func (s *Store) Invalidate(prefixes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				e.fetchedAt = time.Time{}
				e.gen++
				break
			}
		}
	}
}

// Clear drops every entry. Used on logout so no cached data outlives the
// session, including results of fetches still in flight at the time.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
	s.clearGen++
}

// Subscribe refetches key every interval until the returned stop function is
// called. This is the polling stand-in for a push channel on conversation
// message lists.
func (s *Store) Subscribe(key string, fetch Fetcher, interval time.Duration) (stop func()) {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_, _ = s.fetchInto(context.Background(), key, fetch)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// Fetch is the typed read path over Store.Get
func Fetch[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	return FetchWithOptions(ctx, s, key, fetch, Options{})
}

// FetchWithOptions is the typed read path over Store.GetWithOptions
func FetchWithOptions[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error), opts Options) (T, error) {
	var zero T
	v, err := s.GetWithOptions(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}, opts)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: unexpected cached type for key %s", key)
	}
	return t, nil
}
