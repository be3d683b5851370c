package server

import (
	"net/http"
	"strconv"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/query"
	"github.com/neuronlabs/sideload/render"
)

var (
	// ErrInternal is an internal server error.
	ErrInternal = errors.Wrap(errors.ErrInternal, "server")

	// ErrServer is an error related with the server.
	ErrServer = errors.New("server")
	// ErrServerOptions is an error related with the server options.
	ErrServerOptions = errors.Wrap(ErrServer, "options")
	// ErrEndpoint is an error related with the server endpoints.
	ErrEndpoint = errors.Wrap(ErrServer, "endpoint")
	// ErrEndpointDuplicated is an error for endpoints registered more than once.
	ErrEndpointDuplicated = errors.Wrap(ErrEndpoint, "duplicated")
	// ErrNotFound is an error used when the requested resource doesn't exists.
	ErrNotFound = errors.Wrap(ErrServer, "not found")
	// ErrMethodNotAllowed is an error used when the request method doesn't
	// match the endpoint.
	ErrMethodNotAllowed = errors.Wrap(ErrServer, "method not allowed")
)

// statusOf maps the error classification to its response status code. The
// client input errors of the inclusion machinery map to the bad request
// status, everything unclassified is an internal error.
func statusOf(err error) int {
	switch {
	case errors.Is(err, query.ErrInput),
		errors.Is(err, mapping.ErrFieldNotFound),
		errors.Is(err, mapping.ErrFieldNotIncludable),
		errors.Is(err, render.ErrIncludedLimit):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes given error as the response error payload. Internal
// errors are logged and never leak their messages to the wire.
func (s *HTTPServer) writeError(rw http.ResponseWriter, req *http.Request, err error) {
	status := statusOf(err)
	wireError := &codec.Error{
		Status: strconv.Itoa(status),
		Title:  http.StatusText(status),
	}
	if detailed, ok := err.(*errors.DetailedError); ok {
		wireError.ID = detailed.ID.String()
		wireError.Detail = detailed.Details
	}
	if status == http.StatusInternalServerError {
		log.Errorf("Request: '%s %s' failed: %v", req.Method, req.URL.Path, err)
		wireError.Detail = "An internal server error occurred."
	} else if log.IsAllowed(log.LevelDebug) {
		log.Debugf("Request: '%s %s' failed with status: '%d': %v", req.Method, req.URL.Path, status, err)
	}

	payload, err := codec.MarshalErrors(wireError)
	if err != nil {
		log.Errorf("Marshaling the error payload failed: %v", err)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.writeHeaders(rw, req)
	rw.WriteHeader(status)
	if _, err = rw.Write(payload); err != nil {
		log.Errorf("Writing the error payload failed: %v", err)
	}
}
