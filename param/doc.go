// Package param implements the parameter model: descriptors that unify
// heterogeneous value kinds behind one apply/reset/serialize contract.
//
// # Value Model
//
// Value is a closed tagged union over types.Kind. Every kind maps to one
// payload field; the switchyards in this package are exhaustive, so adding a
// kind is a compile-time-checked change rather than a registry entry.
//
// # Descriptors
//
// A Param owns a shadow value (the working copy the editing surface mutates)
// and the default captured at construction. The contract per kind:
//
//   - Apply copies the shadow into the bound slot; standalone descriptors are
//     a no-op. Apply never fails: edits are constrained at the surface, so
//     out-of-range shadows cannot occur here.
//   - Reset restores the shadow from the default. Total and idempotent.
//   - Snapshot emits a Record (name + kind-specific attributes),
//     deterministic for a given shadow value.
//   - Restore overwrites the shadow only when the expected attributes are
//     present and parseable; otherwise it leaves the shadow untouched.
//     Persistence is best-effort: worst case is "value unchanged".
//
// Constructors mirror the editing surface's needs: pointer-binding NewBool,
// NewInt, NewDouble, ... capture the current pointee and write back on Apply,
// while FromValue builds standalone descriptors for binder-produced values.
package param
