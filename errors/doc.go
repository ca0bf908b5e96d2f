// Package errors provides structured error types for the rsrc-engine library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, resource and
// container identity, and cause chain, so a failed load is always
// attributable to the ResourceId and Source that produced it.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindSizeMismatch).
//		Path("film_loop").
//		Resource(id).
//		Container(src.Name()).
//		Detail("declared size %d, layout expects 14", size).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseManager, id)
//	err := errors.SizeMismatch([]string{"script"}, size, "0 or 2")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
