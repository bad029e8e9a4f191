// Package bind turns an object's reflective properties into parameter
// descriptors registered in an editing session.
//
// The binder works against the types.Host capability set; NewStructHost
// adapts an ordinary pointer-to-struct, treating exported fields as the
// properties and zero-argument methods as the read-only metadata
// side-channel. For each writable property the binder probes conventional
// metadata siblings (Display, Tooltip, Category, Min, Max, Step, EnumNames),
// maps the Go type to an editor kind through a closed dispatch table, and
// installs a commit-time write-back into the host.
//
// Degradation is graceful by contract: a property whose type has no kind is
// skipped with a warning diagnostic and the rest of the object still binds.
package bind
