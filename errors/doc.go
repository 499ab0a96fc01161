// Package errors provides structured error types for the punycode library.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (error category). The Error type includes the input offset the
// error refers to, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverflow).
//		Offset(12).
//		Detail("delta accumulator would wrap").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidDigit(errors.PhaseDecode, 5, input[5])
//	err := errors.OutputSize(errors.PhaseEncode, 64, 63)
//
// The package sentinels (ErrInvalidInput, ErrNotBasic, ErrOverflow,
// ErrOutputSizeExceeded) match any error of the same Kind via errors.Is,
// so callers can branch on category without caring about the phase:
//
//	if errors.Is(err, puny_errors.ErrOverflow) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
