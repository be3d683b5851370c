package controller

import (
	"github.com/neuronlabs/sideload/errors"
)

var (
	// ErrController defines major classification for the controller.
	ErrController = errors.New("controller")
	// ErrConfig is the error classification for invalid controller configurations.
	ErrConfig = errors.Wrap(ErrController, "config")
	// ErrRepository is an error related with the controller repository.
	ErrRepository = errors.Wrap(ErrController, "repository")
)
