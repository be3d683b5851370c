package sideload

import (
	"github.com/neuronlabs/sideload/core"
)

// New creates new sideload service with provided options.
func New(options ...core.Option) (*core.Service, error) {
	return core.New(options...)
}
