// Package manager aggregates resource sources behind a single lookup
// surface. A Manager probes its sources in registration order, hands the
// raw bytes of the first source claiming containment to the requested
// decoder, and caches the decoded value keyed by resource id.
//
// The cache holds one entry per id for the life of the Manager: a second
// load of the same id returns the cached value without touching any source,
// regardless of decoder arguments. Requesting a different decoded type for
// an id that is already cached is a caller bug and fails with a
// bad_data_type error rather than silently returning the original type.
//
// A Manager is not safe for concurrent use; decoded values are immutable
// and safe to share once returned.
package manager
