// Package observability provides hooks for metrics, tracing, and logging.
//
// The renderer and the document loader emit events through hook interfaces
// registered here, so instrumentation can be attached without the library
// depending on any particular backend.
//
// # Architecture
//
//   - Hook interfaces per event category
//   - No-op default implementations
//   - Registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the library
// packages free of import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, renderID, nodeCount)
//	// ... lay out and stream rows ...
//	observability.Render().OnRenderComplete(ctx, renderID, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the tree printer. renderID identifies one
// Print call.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, renderID string, nodeCount int)

	// OnLayerComplete fires after each generation has been drawn and the
	// buffer flushed up to the generation's horizon. flushed is the total
	// number of rows emitted so far.
	OnLayerComplete(ctx context.Context, renderID string, layer, nodes, flushed int)

	OnRenderComplete(ctx context.Context, renderID string, rows int, duration time.Duration, err error)
}

// =============================================================================
// Document Hooks
// =============================================================================

// DocumentHooks receives events from tree document loading.
type DocumentHooks interface {
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, nodeCount int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopRenderHooks) OnLayerComplete(context.Context, string, int, int, int)              {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopDocumentHooks is a no-op implementation of DocumentHooks.
type NoopDocumentHooks struct{}

func (NoopDocumentHooks) OnLoadStart(context.Context, string)                               {}
func (NoopDocumentHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks   RenderHooks   = NoopRenderHooks{}
	documentHooks DocumentHooks = NoopDocumentHooks{}
	hooksMu       sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetDocumentHooks registers custom document hooks.
func SetDocumentHooks(h DocumentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		documentHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Document returns the registered document hooks.
func Document() DocumentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return documentHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	documentHooks = NoopDocumentHooks{}
}
