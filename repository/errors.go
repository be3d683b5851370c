package repository

import (
	"github.com/neuronlabs/sideload/errors"
)

var (
	// ErrRepository is the major error repository classification.
	ErrRepository = errors.New("repository")
	// ErrNotImplements is the error classification for the repositories or
	// resources that don't implement some interface.
	ErrNotImplements = errors.Wrap(ErrRepository, "not implements")
	// ErrConnection is the error classification related with repository connection.
	ErrConnection = errors.Wrap(ErrRepository, "connection")
)
