// Package server contains the transport layer that serves the rendered
// resource documents. The server binds one endpoint per registered resource
// collection and resolves the inclusion query parameter for each request.
package server

import (
	"context"

	"github.com/neuronlabs/sideload/controller"
)

// Server is the interface used to serve the rendered resource documents.
type Server interface {
	// Initialize applies given options and initializes the server endpoints.
	Initialize(options Options) error
	// Serve starts listen and serve the requests.
	Serve() error
	// Shutdown defines gentle shutdown of the server and all it's connections.
	// The server shouldn't handle any more requests but let the remaining finish within given context.
	Shutdown(ctx context.Context) error
}

// Options are the server initialization options.
type Options struct {
	// Name is the service name reported by the version endpoint.
	Name string
	// Version is the service version reported by the version endpoint.
	Version string
	// Controller is the controller the server renders the resources with.
	Controller *controller.Controller
}
