// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about topology mutations and diagram storage operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTopologyHooks(&myTopologyHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Topology().OnSplit(face, twinFace)
//	observability.Store().OnGet(ctx, backend, id, found)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Topology Hooks
// =============================================================================

// TopologyHooks receives events from half-edge diagram mutations and
// traversal. Faces are passed as plain ints to keep this package free of
// diagram types.
type TopologyHooks interface {
	// OnSplit records an edge split affecting the two given faces.
	OnSplit(face, twinFace int)

	// OnDeleteVertex records a vertex deletion.
	OnDeleteVertex(vertex int)

	// OnWalkLimitExceeded records a boundary walk aborted by the safety
	// bound, indicating a corrupt next chain.
	OnWalkLimitExceeded(face, steps int)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from diagram document storage operations.
type StoreHooks interface {
	// OnGet records a document lookup and whether it was found.
	OnGet(ctx context.Context, backend, id string, found bool)

	// OnSet records a document write.
	OnSet(ctx context.Context, backend, id string, size int)

	// OnDelete records a document removal.
	OnDelete(ctx context.Context, backend, id string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the diagram HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTopologyHooks is a no-op implementation of TopologyHooks.
type NoopTopologyHooks struct{}

func (NoopTopologyHooks) OnSplit(int, int)             {}
func (NoopTopologyHooks) OnDeleteVertex(int)           {}
func (NoopTopologyHooks) OnWalkLimitExceeded(int, int) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnGet(context.Context, string, string, bool) {}
func (NoopStoreHooks) OnSet(context.Context, string, string, int)  {}
func (NoopStoreHooks) OnDelete(context.Context, string, string)    {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	topologyHooks TopologyHooks = NoopTopologyHooks{}
	storeHooks    StoreHooks    = NoopStoreHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetTopologyHooks registers custom topology hooks.
// This should be called once at application startup before any mutations.
func SetTopologyHooks(h TopologyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		topologyHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Topology returns the registered topology hooks.
func Topology() TopologyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return topologyHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	topologyHooks = NoopTopologyHooks{}
	storeHooks = NoopStoreHooks{}
	httpHooks = NoopHTTPHooks{}
}
