// ABOUTME: Generic write operation with declared cache invalidations
// ABOUTME: One in-flight invocation per instance; mutations never retry

package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/stephenolajire/Ronkz-Couture/api"
)

// Mutation is one write operation against the API. Each instance
// declares which cache key prefixes its success invalidates, so the
// coupling between writes and cached reads is explicit rather than
// scattered through call sites.
type Mutation[Req any, Resp any] struct {
	store *Store
	name  string

	run func(ctx context.Context, req Req) (Resp, error)

	// onSuccess applies local side effects (persist tokens, store a new
	// identity code) before invalidation runs.
	onSuccess func(req Req, resp Resp) error

	// invalidates lists the cache key prefixes made stale by this write.
	invalidates func(req Req) []string

	mu      sync.Mutex
	pending atomic.Bool
}

// IsPending reports whether an invocation is in flight. Callers use it
// to disable the triggering control; Do itself serializes regardless.
func (m *Mutation[Req, Resp]) IsPending() bool {
	return m.pending.Load()
}

// Do executes the mutation. Concurrent calls on the same instance are
// serialized. The request payload is trusted to have passed schema
// validation already. Failures are returned with the server's wording
// intact and are never retried; writes are not assumed idempotent.
func (m *Mutation[Req, Resp]) Do(ctx context.Context, req Req) (Resp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending.Store(true)
	defer m.pending.Store(false)

	resp, err := m.run(ctx, req)
	if err != nil {
		if api.IsUnauthorized(err) {
			// A dead token cannot recover on its own; drop the session
			// so the UI falls back to the anonymous state.
			m.store.session.clear()
		}
		slog.Debug("Mutation failed", "mutation", m.name, "error", err)
		var zero Resp
		return zero, err
	}

	if m.onSuccess != nil {
		if err := m.onSuccess(req, resp); err != nil {
			// The server-side write went through; a failed local side
			// effect (storage write) must not masquerade as a failed
			// mutation.
			slog.Warn("Mutation side effect failed", "mutation", m.name, "error", err)
		}
	}

	if m.invalidates != nil {
		for _, prefix := range m.invalidates(req) {
			m.store.cache.InvalidatePrefix(prefix)
		}
	}

	slog.Debug("Mutation succeeded", "mutation", m.name)
	return resp, nil
}
