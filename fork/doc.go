// Package fork parses classic resource-fork containers.
//
// A resource fork carries a data area and a resource map. The map (type
// list, reference lists, name list) is parsed once when the file is opened
// and turned into an index from ResourceId to byte ranges; containment and
// load queries afterwards are index lookups, never re-parses.
//
// The map layout is reproduced bit-for-bit for compatibility with real
// legacy documents:
//
//	header      data offset, map offset, data length, map length (all u32 BE)
//	map         header copy, reserved handle, file ref, attributes,
//	            type list offset, name list offset
//	type list   count-1, then per type: tag, count-1, reference list offset
//	ref entry   id, name offset, attribute byte, 24-bit data offset, handle
//	data area   per resource: u32 BE declared length, then the raw bytes
//	name list   length-prefixed strings addressed by reference entries
//
// The fork is read-only: loading never mutates the container.
package fork
