// Package errors provides structured error types for the conwrite module.
//
// Errors are categorized by Phase (where in the write pipeline the error
// occurred) and Kind (error category). The Error type carries the raw OS
// error number and, where the failing tier has access to one, the
// OS-rendered description string.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWrite, errors.KindWriteFailed).
//		Stream("stdout").
//		Code(int(errno)).
//		OSMessage(errno.Error()).
//		Build()
//
// Or use convenience constructors for the taxonomy:
//
//	err := errors.InvalidHandle("stdout", code)
//	err := errors.ShortWrite("stdout", requested, written)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
