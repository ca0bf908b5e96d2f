// Package binio provides endianness-explicit binary reading primitives for
// the rsrc-engine decoders.
//
// Reader wraps an io.ReadSeeker with position tracking and the fixed-width
// read methods the legacy layouts need. Endianness is always explicit in the
// method name; nothing is inherited from context.
//
// RestoreOnError is the speculative-parse combinator: it records the stream
// position, runs a fallible parse function, and on failure seeks the stream
// back to where the parse began so a different decoder can retry from the
// same offset.
package binio
