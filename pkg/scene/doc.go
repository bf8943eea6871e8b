// Package scene defines the contract between panelgrid and a rendering
// backend: node handles, transforms, and the creation/mutation/event surface
// that backends implement.
//
// # Architecture
//
// Node handles hold the authoritative local state (parent, transform, text
// contents). Every mutation made through a handle is pushed to the backend
// that created it, so a backend only mirrors state, it never owns it. This
// keeps the layout core synchronous and single-threaded while the backend is
// free to apply mutations however it likes (immediately, batched, or over a
// wire).
//
// # Two-phase creation
//
// Node creation is a request: the handle is returned immediately so callers
// can position and reparent it, and the backend confirms completion later by
// calling [Node.Confirm]. Work that must wait for confirmation (material
// assignment, behavior binding) is queued with [Node.OnReady]. Queued
// continuations run only if the node is still alive; destroying a node before
// its creation confirms silently discards them.
//
// # Behaviors
//
// Interactive nodes carry at most one [Behavior]. Binding is additive: every
// handler registered through [Node.Behavior] accumulates on the same object,
// and backends dispatch interaction events through it.
package scene
