// Package rsrcengine provides a Go implementation of a legacy multimedia
// resource loading and binary decoding engine.
//
// The engine locates typed, numbered resources inside classic resource-fork
// documents and their cross-platform encodings, decodes their raw bytes into
// strongly typed structures using endianness-aware, size-validated binary
// layouts, and caches the decoded results behind shared ownership.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	rsrc-engine/     Root package with OsType, ResourceId and the Source contract
//	├── manager/     High-level API: source chain, decoder dispatch, shared cache
//	├── fork/        Classic resource-fork container parsing
//	├── vfs/         Host filesystem, AppleDouble/MacBinary unwrapping, zip archives
//	├── kinds/       Structured decoders for individual resource layouts
//	├── mactext/     Script codes and text encoding selection
//	├── binio/       Endianness-explicit binary reading and seek-restore parsing
//	└── errors/      Structured error types for attributable failures
//
// # Quick Start
//
// Open a document and load a string list:
//
//	f, err := os.Open("movie.dir.rsrc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src, err := fork.New(f, "movie.dir.rsrc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m := manager.New(mactext.Active(), src)
//	list, err := manager.Load(m, rsrcengine.NewResourceId("STR#", 128), kinds.DecodeStringList)
//	fmt.Println(list.Strings)
//
// # Data Model
//
// A resource is identified by a ResourceId: a four-byte OsType tag plus a
// signed 16-bit number. Sources answer containment and raw-byte queries for
// ids; the manager probes an ordered chain of sources and decodes the bytes
// supplied by the first source that claims containment.
//
// Decoded resources are immutable after construction and shared between the
// cache and every caller. The cache has no eviction policy: entries live for
// the process lifetime unless explicitly cleared.
//
// # Thread Safety
//
// The manager and its cache are single-threaded by contract. Decoded values
// are safe to hand to multiple readers once returned, since they are never
// mutated after decode. A multi-threaded host must wrap the manager in its
// own mutual-exclusion boundary.
package rsrcengine
