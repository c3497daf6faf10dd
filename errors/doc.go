// Package errors provides structured error types for the indexed library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, shape name,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindUnsupported).
//		Path("level", "tags").
//		Shape("[]string").
//		Detail("sequences have no flat representation").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unsupported(errors.PhaseEncode, "map[string]int")
//	err := errors.InvalidUTF8(errors.PhaseEncode, data)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
