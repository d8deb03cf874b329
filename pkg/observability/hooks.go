// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about widget renders, selections, export runs, cache
// operations, and preview server requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so no import cycles arise.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetWidgetHooks(&myWidgetHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// [LogHooks] implements every hook interface on top of a logger; [Install]
// registers it for all categories at once.
//
// Libraries call hooks to emit events:
//
//	observability.Widget().OnSelect(id, index)
//	observability.Pipeline().OnRenderComplete(ctx, formats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Widget Hooks
// =============================================================================

// WidgetHooks receives events from widget controllers. Widgets are
// synchronous and carry no context, so neither do these events.
type WidgetHooks interface {
	// OnRender records one full rebuild of a widget's scene.
	OnRender(widgetID string, segments, layers int, duration time.Duration)

	// OnSelect records a committed selection.
	OnSelect(widgetID string, index int)

	// OnReject records a rejected configuration or option update.
	OnReject(widgetID, field string, err error)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the export pipeline.
type PipelineHooks interface {
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
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
// Server Hooks
// =============================================================================

// ServerHooks receives events from the preview server.
type ServerHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response status and handling time.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWidgetHooks is a no-op implementation of WidgetHooks.
type NoopWidgetHooks struct{}

func (NoopWidgetHooks) OnRender(string, int, int, time.Duration) {}
func (NoopWidgetHooks) OnSelect(string, int)                     {}
func (NoopWidgetHooks) OnReject(string, string, error)           {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                     {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

type registry struct {
	widget   WidgetHooks
	pipeline PipelineHooks
	cache    CacheHooks
	server   ServerHooks
}

func defaults() registry {
	return registry{NoopWidgetHooks{}, NoopPipelineHooks{}, NoopCacheHooks{}, NoopServerHooks{}}
}

var (
	hooksMu sync.RWMutex
	hooks   = defaults()
)

func set(fn func(*registry)) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	fn(&hooks)
}

func current() registry {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return hooks
}

// SetWidgetHooks registers custom widget hooks. A nil value is ignored.
func SetWidgetHooks(h WidgetHooks) {
	if h != nil {
		set(func(r *registry) { r.widget = h })
	}
}

// SetPipelineHooks registers custom pipeline hooks. Call it at startup,
// before the first export.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		set(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		set(func(r *registry) { r.cache = h })
	}
}

// SetServerHooks registers custom server hooks.
func SetServerHooks(h ServerHooks) {
	if h != nil {
		set(func(r *registry) { r.server = h })
	}
}

// Widget returns the registered widget hooks.
func Widget() WidgetHooks { return current().widget }

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current().pipeline }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current().cache }

// Server returns the registered server hooks.
func Server() ServerHooks { return current().server }

// Reset restores all hooks to their no-op defaults.
func Reset() {
	set(func(r *registry) { *r = defaults() })
}
