// Package element defines the placeable-element contract and the composite
// elements (labels, buttons) the grid arranges.
//
// A [Placeable] is anything that can be positioned, reparented, and
// destroyed. The grid engine interacts with elements through this interface
// only; it never inspects which concrete variant it received. Three variants
// ship with the package:
//
//   - [FromNode] adapts a bare scene node.
//   - [Label] composes an anchor node with a text child and shrink-to-fit
//     sizing.
//   - [Button] composes an interactive box with an optional owned Label.
//
// Composite destruction cascades to every owned node and nils internal
// references; a second Destroy is always a no-op.
package element
