// Package session provides the deferred-commit transaction engine over
// parameter descriptors.
//
// # Lifecycle
//
// A session starts Open, the only state in which descriptors may be
// registered or edited, and ends in exactly one of two terminal states:
//
//  1. Commit(): apply every descriptor's shadow value to its bound slot, in
//     section-major registration order, then fire binder-installed commit
//     hooks in registration order.
//  2. Cancel(): discard all shadow state; nothing external is written.
//
// There is no partial commit: Apply is a total function on every kind, so
// once commit begins every descriptor is applied unconditionally and in
// order.
//
// # Sections
//
// Descriptors group into named sections (presentation tabs). A section's
// position is fixed when its name is first seen; descriptors keep
// registration order within it. Walk exposes the canonical section-major
// order used by both commit and serialization.
package session
