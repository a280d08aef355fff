// Package physics implements a 2D arcade rigid-body core: axis-aligned
// box and circle colliders, incremental pair maintenance over a live
// scene graph, shape-specific narrow-phase tests, and a sequential
// impulse solver with positional correction.
//
//   - [Body]: simulation state (position, velocity, force, inverse mass)
//   - [Collider]: box or circle shape owned by a body
//   - [Pair]: collision test + resolution unit for one shape combination
//   - [World]: pair registry, bounds walls, and the per-step algorithm
//
// Pairs are pooled per kind and recycled; a settled simulation allocates
// nothing per step.
//
// # Thread Safety
//
// A World is NOT thread-safe. The step algorithm runs to completion on a
// single goroutine; body and shape add/remove must happen between steps.
package physics
