// Package vector implements a generic dynamic array with explicit element
// lifetime management. A Vector owns a single raw slot block (see package
// rawstore) plus a logical length, and is the only layer that runs element
// lifetime hooks: each live element sees exactly one construction and one
// destruction, no matter how the container grows or shuffles it.
//
// For plain value types the zero Traits give the familiar slice-like
// behavior with geometric growth. Types that own external resources supply
// Traits hooks; the container then relocates elements by move when a move
// hook is declared, or by fallible copy with full rollback when it is not,
// so a failing copy never leaks, double-destroys, or leaves the container
// half-migrated.
package vector
