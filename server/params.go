package server

import (
	"net/http"
)

// DefaultIncludeParameter is the default name of the query parameter that
// carries the requested inclusion paths.
const DefaultIncludeParameter = "include"

// includeParam extracts the raw inclusion parameter from given request
// query. The parameter name comes from the renderer configuration.
func (s *HTTPServer) includeParam(req *http.Request) string {
	return req.URL.Query().Get(s.includeParameter)
}

// writeHeaders writes the common response headers. With the language
// support configured the Accept-Language header gets matched against the
// supported languages and the result is written as Content-Language.
func (s *HTTPServer) writeHeaders(rw http.ResponseWriter, req *http.Request) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	if s.languages == nil {
		return
	}
	tag := s.languages.Match(req.Header.Get("Accept-Language"))
	rw.Header().Set("Content-Language", tag.String())
}
