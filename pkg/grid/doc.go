// Package grid implements the slot-indexed layout engine that arranges
// placeable elements into a rectangular grid anchored in 3D space.
//
// # Placement model
//
// The grid holds an ordered slot list and a fixed column count. Each addition
// computes its row and column from the current slot count, then reserves one
// slot per spanned column. Removal empties slots without compacting the list,
// which keeps the placement arithmetic stable: a grid behaves like a board
// with holes, where removing an earlier element never shifts anything added
// after it. Only Clear resets the counting to the origin.
//
// The engine depends on the placeable-element contract alone; it never
// branches on which concrete element type occupies a slot.
package grid
