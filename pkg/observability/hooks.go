// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about scene mutations and grid layout
// operations.
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
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSceneHooks(&mySceneHooks{})
//	    observability.SetGridHooks(&myGridHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Grid().OnAdd(slot, row, col, span)
package observability

import "sync"

// =============================================================================
// Scene Hooks
// =============================================================================

// SceneHooks receives events from scene backends.
type SceneHooks interface {
	// OnNodeCreate records a node creation request.
	OnNodeCreate(name string)

	// OnNodeConfirm records a creation request completing.
	OnNodeConfirm(name string)

	// OnNodeDestroy records a node being released.
	OnNodeDestroy(name string)

	// OnBehaviorBind records an interaction handler being registered.
	OnBehaviorBind(name, trigger string)
}

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from grid layout operations.
type GridHooks interface {
	// OnAdd records an element placement with its computed cell.
	OnAdd(slot, row, col, span int)

	// OnRemove records an element removal from a slot.
	OnRemove(slot int)

	// OnClear records a grid reset with the number of occupants destroyed.
	OnClear(destroyed int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSceneHooks is a no-op implementation of SceneHooks.
type NoopSceneHooks struct{}

func (NoopSceneHooks) OnNodeCreate(string)           {}
func (NoopSceneHooks) OnNodeConfirm(string)          {}
func (NoopSceneHooks) OnNodeDestroy(string)          {}
func (NoopSceneHooks) OnBehaviorBind(string, string) {}

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnAdd(int, int, int, int) {}
func (NoopGridHooks) OnRemove(int)             {}
func (NoopGridHooks) OnClear(int)              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sceneHooks SceneHooks = NoopSceneHooks{}
	gridHooks  GridHooks  = NoopGridHooks{}
	hooksMu    sync.RWMutex
)

// SetSceneHooks registers custom scene hooks.
// This should be called once at application startup before any scene operations.
func SetSceneHooks(h SceneHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sceneHooks = h
	}
}

// SetGridHooks registers custom grid hooks.
// This should be called once at application startup before any grid operations.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// Scene returns the registered scene hooks.
func Scene() SceneHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sceneHooks
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sceneHooks = NoopSceneHooks{}
	gridHooks = NoopGridHooks{}
}
