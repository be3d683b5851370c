package core

import (
	"context"

	"github.com/neuronlabs/sideload/config"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/repository"
	"github.com/neuronlabs/sideload/server"
)

// Options is the structure that contains the service options.
type Options struct {
	// Name is the service name.
	Name string
	// Version is the service version.
	Version string
	// Config is the controller configuration. A nil config results in the
	// default configuration.
	Config *config.Controller
	// ConfigFile is the name of the configuration file read on the service
	// creation. Used only when the Config is not set directly.
	ConfigFile string
	// ConfigPaths are the paths searched for the configuration file.
	ConfigPaths []string
	// NamingConvention overwrites the collection naming convention from the
	// config.
	NamingConvention string
	// Serializers are the resource serializers registered on the service start.
	Serializers []mapping.Serializer
	// Repository resolves the relation values during the rendering.
	Repository repository.Repository
	// Server serves the rendered resource documents.
	Server server.Server
	// HandleSignals defines if the service should handle the os signals.
	HandleSignals bool
	// Context is the base context of the service.
	Context context.Context
}

// Option is the function that sets the options for the service.
type Option func(o *Options)

func defaultOptions() *Options {
	return &Options{
		HandleSignals: true,
		Context:       context.Background(),
	}
}
