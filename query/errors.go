package query

import (
	"github.com/neuronlabs/sideload/errors"
)

var (
	// ErrQuery is the major error classification for the query package.
	ErrQuery = errors.New("query")

	// ErrInternal is the internal error classification.
	ErrInternal = errors.Wrap(errors.ErrInternal, "query")

	// ErrInput is the minor error classification related to the query input.
	ErrInput = errors.Wrap(ErrQuery, "input")
	// ErrInvalidParameter is the error classification for invalid query parameter.
	ErrInvalidParameter = errors.Wrap(ErrInput, "invalid parameter")
	// ErrTooDeep is the error classification for inclusion paths that exceed
	// the maximum nested limit.
	ErrTooDeep = errors.Wrap(ErrInput, "too deep")
)
