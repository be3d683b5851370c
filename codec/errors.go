package codec

import (
	"encoding/json"
	"strings"

	"github.com/neuronlabs/sideload/errors"
)

var (
	// ErrCodec is the major error classification for the codec package.
	ErrCodec = errors.New("codec")
	// ErrMarshal is the error classification for marshaling processes.
	ErrMarshal = errors.Wrap(ErrCodec, "marshal")
)

// Error is the error structure used for the wire error payloads.
type Error struct {
	// ID is a unique identifier for this particular occurrence of a problem.
	ID string `json:"id,omitempty"`
	// Title is a short, human-readable summary of the problem.
	Title string `json:"title,omitempty"`
	// Detail is a human-readable explanation specific to this occurrence of the problem.
	Detail string `json:"detail,omitempty"`
	// Status is the status code applicable to this problem, expressed as a string value.
	Status string `json:"status,omitempty"`
	// Code is an application-specific error code, expressed as a string value.
	Code string `json:"code,omitempty"`
	// Meta is an object containing non-standard meta-information about the error.
	Meta map[string]interface{} `json:"meta,omitempty"`
}

// Error implements error interface.
func (e *Error) Error() string {
	sb := strings.Builder{}
	e.error(&sb)
	return sb.String()
}

func (e *Error) error(sb *strings.Builder) {
	if e.ID != "" {
		sb.WriteString(e.ID)
		sb.WriteString(" - ")
	}
	if e.Status != "" {
		sb.WriteRune('[')
		sb.WriteString(e.Status)
		sb.WriteRune(']')
		sb.WriteRune(' ')
	}
	if e.Title != "" {
		sb.WriteString(e.Title)
		sb.WriteRune(' ')
	}
	if e.Detail != "" {
		sb.WriteString(e.Detail)
		sb.WriteRune(' ')
	}
	if e.Code != "" {
		sb.WriteString("CODE: ")
		sb.WriteString(e.Code)
	}
}

// MultiError is a set of wire errors marshalable into a single payload.
type MultiError []*Error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}
	for i, err := range m {
		err.error(sb)
		if i != len(m)-1 {
			sb.WriteString(" | ")
		}
	}
	return sb.String()
}

// MarshalErrors marshals provided errors into a single '{"errors": [...]}' payload.
func MarshalErrors(errs ...*Error) ([]byte, error) {
	payload := struct {
		Errors []*Error `json:"errors"`
	}{Errors: errs}
	if payload.Errors == nil {
		payload.Errors = []*Error{}
	}
	marshaled, err := json.Marshal(&payload)
	if err != nil {
		return nil, errors.WrapDetf(ErrMarshal, "marshaling errors payload failed: %v", err)
	}
	return marshaled, nil
}
