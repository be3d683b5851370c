package server

import (
	"encoding/json"
	"net/http"

	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/repository"
)

// handleHealth serves the repository health status. A failed health check
// results in the service unavailable status.
func (s *HTTPServer) handleHealth(rw http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		s.writeError(rw, req, errors.WrapDetf(ErrMethodNotAllowed, "method: '%s' is not allowed", req.Method).
			SetDetailsf("Method: '%s' is not allowed for this endpoint.", req.Method))
		return
	}
	health, err := s.c.HealthCheck(req.Context())
	if err != nil {
		s.writeError(rw, req, err)
		return
	}
	status := http.StatusOK
	if health.Status == repository.StatusFail {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(rw, req, status, health)
}

// handleVersion serves the service name and version.
func (s *HTTPServer) handleVersion(rw http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		s.writeError(rw, req, errors.WrapDetf(ErrMethodNotAllowed, "method: '%s' is not allowed", req.Method).
			SetDetailsf("Method: '%s' is not allowed for this endpoint.", req.Method))
		return
	}
	version := struct {
		Name    string `json:"name,omitempty"`
		Version string `json:"version,omitempty"`
	}{Name: s.Options.Name, Version: s.Options.Version}
	s.writeJSON(rw, req, http.StatusOK, version)
}

func (s *HTTPServer) writeJSON(rw http.ResponseWriter, req *http.Request, status int, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.writeError(rw, req, errors.WrapDetf(ErrInternal, "marshaling the response value failed: %v", err))
		return
	}
	s.writeHeaders(rw, req)
	rw.WriteHeader(status)
	if _, err = rw.Write(payload); err != nil {
		log.Errorf("Writing the response failed: %v", err)
	}
}
