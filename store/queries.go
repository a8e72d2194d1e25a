// ABOUTME: Generic cached query over the API client
// ABOUTME: Singleflight dedup plus bounded retry with exponential backoff

package store

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/stephenolajire/Ronkz-Couture/api"
	"github.com/stephenolajire/Ronkz-Couture/cache"
)

// ErrQueryDisabled is returned when a parameterized query is missing its
// required parameter (no product id, no cart code yet). Disabled queries
// never hit the network.
var ErrQueryDisabled = errors.New("query disabled: required parameter is empty")

// Query is one cached read operation. The key function is evaluated per
// call so queries whose identity depends on mutable state (the product
// filter, a lazily created cart code) always address the right entry.
type Query[T any] struct {
	store *Store

	key     func() string
	enabled func() bool
	fetch   func(ctx context.Context) (T, error)

	staleAfter time.Duration
	gcAfter    time.Duration
}

// Get returns the query's data, serving a fresh cache hit without a
// network call and fetching otherwise. When a fetch fails but a stale
// entry survives, that stale value is returned alongside the error so
// callers can still render something.
func (q *Query[T]) Get(ctx context.Context) (T, error) {
	var zero T
	if q.enabled != nil && !q.enabled() {
		return zero, ErrQueryDisabled
	}

	key := q.key()
	if val, state := q.store.cache.Lookup(key); state == cache.Fresh {
		return val.(T), nil
	}
	return q.resolve(ctx, key)
}

// Refetch bypasses freshness and always goes to the network. This is the
// explicit "Retry" path; the cache entry is replaced on success.
func (q *Query[T]) Refetch(ctx context.Context) (T, error) {
	var zero T
	if q.enabled != nil && !q.enabled() {
		return zero, ErrQueryDisabled
	}
	return q.resolve(ctx, q.key())
}

// Subscribe pins the query's current cache entry so the sweep will not
// evict it while a consumer is attached. The returned release starts the
// entry's gc window.
func (q *Query[T]) Subscribe() (release func()) {
	key := q.key()
	q.store.cache.Acquire(key)
	return func() { q.store.cache.Release(key) }
}

// resolve fetches through singleflight so concurrent readers of one key
// share a single network call, then stores the result.
func (q *Query[T]) resolve(ctx context.Context, key string) (T, error) {
	var zero T
	val, err, _ := q.store.flights.Do(key, func() (any, error) {
		data, err := q.fetchWithRetry(ctx)
		if err != nil {
			return nil, err
		}
		q.store.cache.Store(key, data, q.staleAfter, q.gcAfter)
		return data, nil
	})
	if err != nil {
		if api.IsUnauthorized(err) {
			q.store.session.clear()
		}
		// Serve stale data with the error when we still hold some.
		if stale, state := q.store.cache.Lookup(key); state != cache.Miss {
			return stale.(T), err
		}
		return zero, err
	}
	return val.(T), nil
}

// fetchWithRetry retries transient failures up to the configured limit
// with exponential backoff and jitter. Non-retryable failures (4xx)
// surface immediately.
func (q *Query[T]) fetchWithRetry(ctx context.Context) (T, error) {
	var zero T
	delay := q.store.cfg.RetryBaseDelay

	for attempt := 0; ; attempt++ {
		data, err := q.fetch(ctx)
		if err == nil {
			return data, nil
		}
		if !api.IsRetryable(err) || attempt >= q.store.cfg.MaxRetries {
			return zero, err
		}

		// Full jitter on top of exponential growth.
		sleep := delay + time.Duration(rand.Int63n(int64(delay)+1))
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(sleep):
		}
		delay *= 2
	}
}

// flightGroup is a tiny alias so Store's field reads naturally.
type flightGroup = singleflight.Group
