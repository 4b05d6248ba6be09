// Package errors provides structured error types for the lua-object library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the wrapper type, the runtime value kind
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindTypeMismatch).
//		Wrapper("Str").
//		LuaType("table").
//		Detail("Error converting to String").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch("Str", "table", "Error converting to String")
//	err := errors.NotFound(errors.PhaseDefine, "class", "Hello")
//
// All errors implement the standard error interface and support errors.Is/As.
// Only failures owned by this layer are represented here; errors raised inside
// the host runtime propagate through the runtime's own control flow.
package errors
