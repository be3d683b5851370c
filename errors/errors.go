package errors

import (
	"fmt"
)

// Common error classifications used among all packages.
var (
	// ErrInternal is the classification for the internal errors.
	ErrInternal = New("internal")
	// ErrUnclassified is the classification for the errors with undefined classification.
	ErrUnclassified = New("unclassified")
)

// classError is a classified error. It could be a root classification or
// a subclassification of its parent.
type classError struct {
	message string
	parent  error
}

// New creates a new error classification with provided 'message'.
func New(message string) error {
	return &classError{message: message}
}

// Newf creates a new error classification with formatted message.
func Newf(format string, args ...interface{}) error {
	return &classError{message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new error classification with provided 'message' based on the 'parent' error.
func Wrap(parent error, message string) error {
	return &classError{message: message, parent: parent}
}

// Wrapf creates a new error classification with formatted message based on the 'parent' error.
func Wrapf(parent error, format string, args ...interface{}) error {
	return &classError{message: fmt.Sprintf(format, args...), parent: parent}
}

// Error implements error interface.
func (c *classError) Error() string {
	if c.parent == nil {
		return c.message
	}
	return c.message + ": " + c.parent.Error()
}

// Unwrap gets the parent classification error.
func (c *classError) Unwrap() error {
	return c.parent
}

// Is checks if given 'err' is based on the 'target' classification. The
// function walks the chain of wrapped errors using the Unwrap method.
func Is(err, target error) bool {
	if target == nil {
		return err == nil
	}
	for err != nil {
		if err == target {
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
