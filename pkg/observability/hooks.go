// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about relationship resolution, anchor resizing, and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the core packages never
// import a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResizeHooks(&myResizeHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Resize().OnResizeStart(ctx, scale)
//	// ... fit anchor ...
//	observability.Resize().OnResizeComplete(ctx, cols, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives events from relationship resolution.
type ResolveHooks interface {
	// OnResolve records a relationship lookup on a source part. found is false
	// when the part has no relationship of the requested type.
	OnResolve(ctx context.Context, source, relType string, found bool, err error)
}

// =============================================================================
// Resize Hooks
// =============================================================================

// ResizeHooks receives events from anchor resizing.
type ResizeHooks interface {
	OnResizeStart(ctx context.Context, scale float64)
	// OnResizeComplete reports the number of columns and rows spanned by the
	// resulting anchor.
	OnResizeComplete(ctx context.Context, cols, rows int, duration time.Duration, err error)

	// OnDecodeFailure records an image whose dimensions could not be read.
	OnDecodeFailure(ctx context.Context, err error)
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

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolve(context.Context, string, string, bool, error) {}

// NoopResizeHooks is a no-op implementation of ResizeHooks.
type NoopResizeHooks struct{}

func (NoopResizeHooks) OnResizeStart(context.Context, float64)                         {}
func (NoopResizeHooks) OnResizeComplete(context.Context, int, int, time.Duration, error) {}
func (NoopResizeHooks) OnDecodeFailure(context.Context, error)                         {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resolveHooks ResolveHooks = NoopResolveHooks{}
	resizeHooks  ResizeHooks  = NoopResizeHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetResolveHooks registers custom resolve hooks.
// This should be called once at application startup before any resolution.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// SetResizeHooks registers custom resize hooks.
// This should be called once at application startup before any resize operations.
func SetResizeHooks(h ResizeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resizeHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// Resize returns the registered resize hooks.
func Resize() ResizeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resizeHooks
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
	resolveHooks = NoopResolveHooks{}
	resizeHooks = NoopResizeHooks{}
	cacheHooks = NoopCacheHooks{}
}
