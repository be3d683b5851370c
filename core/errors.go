package core

import (
	"github.com/neuronlabs/sideload/errors"
)

var (
	// ErrService is the major error classification for the service.
	ErrService = errors.New("service")
)
