package errors

import (
	"strings"
)

// MultiError is the slice of errors parsable into a single error.
type MultiError []error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}
	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

// Is checks if any of the errors stored in given multi error is based on the 'target' classification.
func (m MultiError) Is(target error) bool {
	for _, err := range m {
		if Is(err, target) {
			return true
		}
	}
	return false
}
