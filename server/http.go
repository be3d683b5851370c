package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/controller"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/i18n"
	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/mapping"
)

// DefaultAddress is the default listen address of the HTTP server.
const DefaultAddress = ":8080"

// Compile time check for the Server interface implementation.
var _ Server = &HTTPServer{}

// CollectionHandler resolves the primary resources for a single collection.
// The handler owns the data access for its collection - the prefetching of
// the relation values included within the requests is its concern too.
type CollectionHandler interface {
	// List gets the primary resource collection for provided request.
	List(ctx context.Context, req *http.Request) ([]mapping.Resource, error)
	// Get gets a single primary resource with given 'id'. Unknown ids
	// return (nil, nil) and result in the not found response.
	Get(ctx context.Context, id string) (mapping.Resource, error)
}

// HTTPServer is the http implementation of the Server interface. It binds a
// list and a single resource endpoint per handled collection and renders
// the responses with the controller renderer, resolving the inclusion query
// parameter per request.
type HTTPServer struct {
	// Options are the server initialization options.
	Options Options

	addr        string
	middlewares MiddlewareChain

	c                *controller.Controller
	languages        *i18n.Support
	includeParameter string

	mux       *http.ServeMux
	server    *http.Server
	endpoints map[string]string
}

// HTTPOption is a function that changes the http server settings.
type HTTPOption func(s *HTTPServer)

// WithAddress sets the server listen address.
func WithAddress(addr string) HTTPOption {
	return func(s *HTTPServer) {
		s.addr = addr
	}
}

// WithMiddlewares appends the middlewares used for all server endpoints.
func WithMiddlewares(middlewares ...Middleware) HTTPOption {
	return func(s *HTTPServer) {
		s.middlewares = append(s.middlewares, middlewares...)
	}
}

// NewHTTP creates a new http server with provided options. The server
// requires initialization before handling the collections.
func NewHTTP(options ...HTTPOption) *HTTPServer {
	s := &HTTPServer{
		addr:      DefaultAddress,
		endpoints: make(map[string]string),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Initialize implements Server interface. It stores the controller, builds
// the language support and binds the service endpoints.
func (s *HTTPServer) Initialize(options Options) error {
	if options.Controller == nil {
		return errors.WrapDet(ErrServerOptions, "no controller provided within the server options")
	}
	s.Options = options
	s.c = options.Controller

	s.includeParameter = s.c.Config.Renderer.IncludeParameter
	if s.includeParameter == "" {
		s.includeParameter = DefaultIncludeParameter
	}
	if cfg := s.c.Config.I18n; cfg != nil && len(cfg.SupportedLanguages) > 0 {
		languages, err := i18n.New(cfg.SupportedLanguages...)
		if err != nil {
			return err
		}
		s.languages = languages
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/_health", s.handleHealth)
	s.mux.HandleFunc("/_version", s.handleVersion)
	s.server = &http.Server{Addr: s.addr, Handler: s.middlewares.Handle(s.mux)}
	log.Debugf("HTTP server initialized on the address: '%s'", s.addr)
	return nil
}

// Handle binds the list and the single resource endpoints for provided
// resource 'type' under its collection path. The requests are resolved with
// provided collection 'handler'.
func (s *HTTPServer) Handle(resourceType string, handler CollectionHandler) error {
	if s.c == nil {
		return errors.WrapDet(ErrServerOptions, "handling a collection on an uninitialized server")
	}
	if handler == nil {
		return errors.WrapDetf(ErrEndpoint, "provided nil handler for the resource: '%s'", resourceType)
	}
	sStruct, ok := s.c.Serializers.Get(resourceType)
	if !ok {
		return errors.WrapDetf(ErrEndpoint, "serializer: '%s' is not registered within the controller", resourceType)
	}
	collection := sStruct.Collection()
	if _, ok = s.endpoints[collection]; ok {
		return errors.WrapDetf(ErrEndpointDuplicated, "collection: '%s' is already handled", collection)
	}
	s.endpoints[collection] = resourceType

	s.mux.HandleFunc("/"+collection, s.handleList(handler))
	s.mux.HandleFunc("/"+collection+"/", s.handleGet(collection, handler))
	log.Debugf("Handling the collection: '%s' of the resource: '%s'", collection, resourceType)
	return nil
}

// Serve implements Server interface.
func (s *HTTPServer) Serve() error {
	if s.server == nil {
		return errors.WrapDet(ErrServerOptions, "serving an uninitialized server")
	}
	log.Infof("Listening and serving on the address: '%s'", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown implements Server interface.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// ServeHTTP implements http.Handler interface. It allows mounting the
// server endpoints within an external router.
func (s *HTTPServer) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	s.middlewares.Handle(s.mux).ServeHTTP(rw, req)
}

func (s *HTTPServer) handleList(handler CollectionHandler) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			s.writeError(rw, req, errors.WrapDetf(ErrMethodNotAllowed, "method: '%s' is not allowed", req.Method).
				SetDetailsf("Method: '%s' is not allowed for this endpoint.", req.Method))
			return
		}
		resources, err := handler.List(req.Context(), req)
		if err != nil {
			s.writeError(rw, req, err)
			return
		}
		doc, err := s.c.Renderer.RenderParam(req.Context(), resources, s.includeParam(req))
		if err != nil {
			s.writeError(rw, req, err)
			return
		}
		s.writeDocument(rw, req, doc)
	}
}

func (s *HTTPServer) handleGet(collection string, handler CollectionHandler) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			s.writeError(rw, req, errors.WrapDetf(ErrMethodNotAllowed, "method: '%s' is not allowed", req.Method).
				SetDetailsf("Method: '%s' is not allowed for this endpoint.", req.Method))
			return
		}
		id := strings.TrimPrefix(req.URL.Path, "/"+collection+"/")
		if id == "" || strings.Contains(id, "/") {
			s.writeError(rw, req, errors.WrapDetf(ErrNotFound, "invalid resource path: '%s'", req.URL.Path).
				SetDetails("The requested resource is not found."))
			return
		}
		res, err := handler.Get(req.Context(), id)
		if err != nil {
			s.writeError(rw, req, err)
			return
		}
		if res == nil {
			s.writeError(rw, req, errors.WrapDetf(ErrNotFound, "resource: '%s/%s' is not found", collection, id).
				SetDetailsf("The resource: '%s/%s' is not found.", collection, id))
			return
		}
		doc, err := s.c.Renderer.RenderOneParam(req.Context(), res, s.includeParam(req))
		if err != nil {
			s.writeError(rw, req, err)
			return
		}
		s.writeDocument(rw, req, doc)
	}
}

func (s *HTTPServer) writeDocument(rw http.ResponseWriter, req *http.Request, doc *codec.Document) {
	payload, err := codec.MarshalDocument(doc, s.c.Renderer.MarshalOptions())
	if err != nil {
		s.writeError(rw, req, err)
		return
	}
	s.writeHeaders(rw, req)
	rw.WriteHeader(http.StatusOK)
	if _, err = rw.Write(payload); err != nil {
		log.Errorf("Writing the response document failed: %v", err)
	}
}
