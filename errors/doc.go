// Package errors provides lightweight error handling and classification primitives.
//
// Errors are classified by wrapping named sentinels into chains, i.e.:
//
//	ErrQuery = errors.New("query")
//	ErrInput = errors.Wrap(ErrQuery, "input")
//
// A chain is matched with errors.Is, which walks the wrapped parents.
// Call sites decorate a classification with WrapDet and WrapDetf, which
// create detailed errors with unique instance identifiers and the operation
// where they occurred.
package errors
