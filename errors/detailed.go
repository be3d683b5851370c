package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

// DetailedError is the error that stores the classification it is based on,
// a human readable detail and the operation where it occurred.
// Each instance has it's own trackable ID.
type DetailedError struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID
	// Classification is the error classification this error is based on.
	Classification error
	// Details contains human readable detailed information.
	Details string
	// Message is a message used as a string for the
	// golang error interface implementation.
	Message string
	// Operation is the operation name when the error occurred.
	Operation string
}

// WrapDet creates a DetailedError based on the 'parent' classification with given 'message'.
func WrapDet(parent error, message string) *DetailedError {
	err := newDetailed(parent)
	err.Message = message
	return err
}

// WrapDetf creates a DetailedError based on the 'parent' classification with formatted message.
func WrapDetf(parent error, format string, args ...interface{}) *DetailedError {
	err := newDetailed(parent)
	err.Message = fmt.Sprintf(format, args...)
	return err
}

// Error implements error interface.
func (e *DetailedError) Error() string {
	return e.Message
}

// Unwrap gets the classification this error is based on.
func (e *DetailedError) Unwrap() error {
	return e.Classification
}

// SetDetails sets the error 'details' and returns itself.
func (e *DetailedError) SetDetails(details string) *DetailedError {
	e.Details = details
	return e
}

// SetDetailsf sets the error formatted details and returns itself.
func (e *DetailedError) SetDetailsf(format string, args ...interface{}) *DetailedError {
	e.Details = fmt.Sprintf(format, args...)
	return e
}

// WrapDetails wraps the 'details' for given error. Wrapping appends the new
// details to the front of error details message.
func (e *DetailedError) WrapDetails(details string) *DetailedError {
	return e.wrapDetails(details)
}

// WrapDetailsf wraps the details with provided formatting for given error.
func (e *DetailedError) WrapDetailsf(format string, args ...interface{}) *DetailedError {
	return e.wrapDetails(fmt.Sprintf(format, args...))
}

func (e *DetailedError) wrapDetails(details string) *DetailedError {
	if e.Details == "" {
		e.Details = details
	} else {
		e.Details = details + " " + e.Details
	}
	return e
}

func newDetailed(parent error) *DetailedError {
	err := &DetailedError{
		ID:             uuid.New(),
		Classification: parent,
	}
	pc, _, _, ok := runtime.Caller(2)
	details := runtime.FuncForPC(pc)
	if ok && details != nil {
		file, line := details.FileLine(pc)
		_, singleFile := filepath.Split(file)
		err.Operation = details.Name() + "#" + singleFile + ":" + strconv.Itoa(line)
	}
	return err
}
