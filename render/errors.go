package render

import (
	"github.com/neuronlabs/sideload/errors"
)

var (
	// ErrRender is the major error classification for the render package.
	ErrRender = errors.New("render")
	// ErrOptions is the error classification for invalid renderer options.
	ErrOptions = errors.Wrap(ErrRender, "options")
	// ErrIncludedLimit is the error classification used when the number of
	// the sideloaded records exceeds the renderer limit.
	ErrIncludedLimit = errors.Wrap(ErrRender, "included limit")
	// ErrInternal is the error classification for internal renderer errors.
	ErrInternal = errors.Wrap(errors.ErrInternal, "render")
)
