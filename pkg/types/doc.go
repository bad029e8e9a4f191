// Package types defines the public contracts of paramkit: the closed Kind
// enum, typed errors with stable categories, value structs for composite
// kinds (Color, FontSpec, Date, TimeOfDay, Point, Size, Rect, Range), numeric
// edit constraints, the binder's Host capability set, and the diagnostic
// report produced by binding.
//
// The package has no dependencies on the rest of the module so that both the
// core packages and external callers can share these types without cycles.
package types
