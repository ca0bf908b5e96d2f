// Package kinds implements the structured decoders for individual resource
// layouts: version records, string lists, shape descriptors, film loop
// metadata, script type descriptors and the cast member registry.
//
// Every decoder is a pure function from a bounded byte window plus the
// container's declared size to a typed value or a decode failure. The rules
// are uniform across layouts:
//
//   - Endianness is explicit per layout. The legacy containers are
//     big-endian except for single bytes and flag fields.
//   - Declared size is a precondition where the layout states one; a size
//     outside the accepted set fails before any field is read.
//   - Unknown enumerated discriminants fail unless the layout defines a
//     default variant.
//   - Reserved and unknown flag bits are preserved verbatim, never rejected.
//
// Decoded values are immutable once returned.
package kinds
