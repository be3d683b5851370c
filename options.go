package sideload

import (
	"context"

	"github.com/neuronlabs/sideload/config"
	"github.com/neuronlabs/sideload/core"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/repository"
	"github.com/neuronlabs/sideload/server"
)

// Name is the name option for the service.
func Name(name string) core.Option {
	return func(o *core.Options) {
		o.Name = name
	}
}

// Version is the version option for the service.
func Version(version string) core.Option {
	return func(o *core.Options) {
		o.Version = version
	}
}

// Context sets the base context for the service.
func Context(ctx context.Context) core.Option {
	return func(o *core.Options) {
		o.Context = ctx
	}
}

// Config sets the controller configuration for the service.
func Config(cfg *config.Controller) core.Option {
	return func(o *core.Options) {
		o.Config = cfg
	}
}

// ConfigFile sets the controller configuration file with provided 'name'
// searched within given 'paths'. The file is read on the service creation,
// reading failures fail the creation.
func ConfigFile(name string, paths ...string) core.Option {
	return func(o *core.Options) {
		o.ConfigFile = name
		o.ConfigPaths = paths
	}
}

// NamingConvention sets the collection naming convention option.
func NamingConvention(naming string) core.Option {
	return func(o *core.Options) {
		o.NamingConvention = naming
	}
}

// Serializers is the option that sets the resource serializers for the service.
func Serializers(serializers ...mapping.Serializer) core.Option {
	return func(o *core.Options) {
		o.Serializers = append(o.Serializers, serializers...)
	}
}

// Repository sets the repository that resolves the relation values during
// the rendering.
func Repository(repo repository.Repository) core.Option {
	return func(o *core.Options) {
		o.Repository = repo
	}
}

// Server sets the server that serves the rendered resource documents.
func Server(s server.Server) core.Option {
	return func(o *core.Options) {
		o.Server = s
	}
}

// HandleSignals is the option that determines if the os signals should be
// handled by the service.
func HandleSignals(handle bool) core.Option {
	return func(o *core.Options) {
		o.HandleSignals = handle
	}
}
