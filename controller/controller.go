// Package controller contains the composition root of the sideload
// renderer. The controller validates the configuration, keeps the serializer
// container with the repository and builds the renderer used by the
// transport layer.
package controller

import (
	"strings"

	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/sideload/config"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/render"
	"github.com/neuronlabs/sideload/repository"
)

var validate = validator.New()

// Controller is the structure that contains and controls the flow of the
// application. It stores the configuration, the serializer container, the
// repository and the renderer built from them.
type Controller struct {
	// Config is the configuration struct for the controller.
	Config *config.Controller
	// NamerFunc defines the function strategy how the resource collection
	// names are formatted.
	NamerFunc mapping.Namer
	// Serializers is the container with the registered resource serializers
	// and their relation field bindings.
	Serializers *mapping.SerializerMap
	// Repository resolves the relation values during the rendering.
	Repository repository.Repository
	// Renderer renders the resources into the response documents.
	Renderer *render.Renderer
}

// New creates new controller for given config 'cfg'. A nil config results
// in the default configuration.
func New(cfg *config.Controller) (*Controller, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	c, err := newController(cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RegisterSerializers registers provided 'serializers' within the controller
// serializer container. Binding target serializers register transitively.
func (c *Controller) RegisterSerializers(serializers ...mapping.Serializer) error {
	return c.Serializers.RegisterSerializers(serializers...)
}

// SetRepository sets the repository used to resolve the relation values and
// rebuilds the controller renderer.
func (c *Controller) SetRepository(r repository.Repository) error {
	if r == nil {
		return errors.WrapDet(ErrRepository, "provided nil repository")
	}
	c.Repository = r
	log.Debugf("Controller repository set to: '%T'", r)
	return c.buildRenderer()
}

// MustGetSerializer gets the serializer struct for provided resource 'type'.
// Panics if the serializer is not registered.
func (c *Controller) MustGetSerializer(resourceType string) *mapping.SerializerStruct {
	return c.Serializers.MustGet(resourceType)
}

func newController(cfg *config.Controller) (*Controller, error) {
	c := &Controller{Repository: repository.ModelRelations{}}
	if err := c.setConfig(cfg); err != nil {
		return nil, err
	}

	var convention mapping.NamingConvention
	if cfg.NamingConvention == "" {
		convention = mapping.SnakeCase
	} else if err := convention.Parse(cfg.NamingConvention); err != nil {
		return nil, errors.WrapDetf(ErrConfig, "unknown naming convention name: %s", cfg.NamingConvention)
	}
	c.NamerFunc = convention.Namer
	c.Serializers = mapping.New(mapping.WithNamingConvention(convention))
	log.Debugf("Naming convention used for the collections: %s", convention)

	if err := c.buildRenderer(); err != nil {
		return nil, err
	}
	return c, nil
}

// setConfig sets and validates provided config.
func (c *Controller) setConfig(cfg *config.Controller) error {
	// set the log level from the provided config.
	if cfg.LogLevel != "" {
		level := log.ParseLevel(cfg.LogLevel)
		if level == log.LevelUnknown {
			return errors.WrapDetf(ErrConfig, "invalid 'log_level' value: '%s'", cfg.LogLevel)
		}
		if log.Logger() == nil {
			log.Default()
		}
		if err := log.SetLevel(level); err != nil {
			return err
		}
	}
	log.Debug2f("Creating new controller with config: '%#v'", cfg)

	cfg.NamingConvention = strings.ToLower(cfg.NamingConvention)
	if err := validate.Struct(cfg); err != nil {
		return errors.WrapDetf(ErrConfig, "validating config failed: %v", err).
			SetDetails("Provided invalid controller configuration.")
	}
	c.Config = cfg
	return nil
}

// buildRenderer builds the controller renderer from the current config,
// serializer container and repository.
func (c *Controller) buildRenderer() error {
	rendererConfig := c.Config.Renderer
	options := []render.Option{
		render.WithSerializers(c.Serializers),
		render.WithRepository(c.Repository),
		render.WithIncludeNestedLimit(rendererConfig.IncludeNestedLimit),
		render.WithIncludedCountLimit(rendererConfig.IncludedCountLimit),
	}
	if rendererConfig.DataKey != "" {
		options = append(options, render.WithDataKey(rendererConfig.DataKey))
	}
	if rendererConfig.IncludedKey != "" {
		options = append(options, render.WithIncludedKey(rendererConfig.IncludedKey))
	}
	renderer, err := render.New(options...)
	if err != nil {
		return err
	}
	c.Renderer = renderer
	return nil
}
