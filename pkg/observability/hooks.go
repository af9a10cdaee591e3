// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through a process-wide registry; nothing is recorded
// unless main registers an implementation. The defaults are no-ops, so the
// core packages carry no dependency on a metrics or tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetViewHooks(&myViewHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.View().OnViewStart(ctx, runID, nodeCount)
//	// ... lay out, render, launch ...
//	observability.View().OnViewComplete(ctx, runID, index, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// View Hooks
// =============================================================================

// ViewHooks receives events from the steps of a single View call.
type ViewHooks interface {
	OnViewStart(ctx context.Context, runID string, nodeCount int)
	OnViewComplete(ctx context.Context, runID string, index int, duration time.Duration, err error)

	// OnLayoutComplete reports the computed layout. overlaps counts grid
	// cells claimed by more than one node.
	OnLayoutComplete(ctx context.Context, strategy string, nodeCount, overlaps int, duration time.Duration)

	OnRenderComplete(ctx context.Context, format, path string, size int64, duration time.Duration, err error)
	OnLaunch(ctx context.Context, path string, err error)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events about output index allocation.
type SessionHooks interface {
	// OnIndexAssigned records the index handed to a View call.
	OnIndexAssigned(ctx context.Context, index int)

	// OnIndexRecorded records that index is now taken.
	OnIndexRecorded(ctx context.Context, index int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopViewHooks is a no-op implementation of ViewHooks.
type NoopViewHooks struct{}

func (NoopViewHooks) OnViewStart(context.Context, string, int)                          {}
func (NoopViewHooks) OnViewComplete(context.Context, string, int, time.Duration, error) {}
func (NoopViewHooks) OnLayoutComplete(context.Context, string, int, int, time.Duration) {}
func (NoopViewHooks) OnRenderComplete(context.Context, string, string, int64, time.Duration, error) {
}
func (NoopViewHooks) OnLaunch(context.Context, string, error) {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnIndexAssigned(context.Context, int) {}
func (NoopSessionHooks) OnIndexRecorded(context.Context, int) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	viewHooks    ViewHooks    = NoopViewHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetViewHooks registers custom view hooks. Nil is ignored.
func SetViewHooks(h ViewHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		viewHooks = h
	}
}

// SetSessionHooks registers custom session hooks. Nil is ignored.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// View returns the registered view hooks.
func View() ViewHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return viewHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	viewHooks = NoopViewHooks{}
	sessionHooks = NoopSessionHooks{}
	cacheHooks = NoopCacheHooks{}
}
