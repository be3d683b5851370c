package controller

import (
	"github.com/neuronlabs/sideload/config"
)

// defaultController is the default controller used if no 'controller' is provided for operations.
var defaultController *Controller

// Default returns the current default controller. On the first use the
// controller is created with the default configuration.
func Default() *Controller {
	if defaultController == nil {
		defaultController = newDefault()
	}
	return defaultController
}

// SetDefault sets the 'c' controller as the default.
func SetDefault(c *Controller) {
	defaultController = c
}

// NewDefault creates new default controller based on the default config.
func NewDefault() *Controller {
	return newDefault()
}

func newDefault() *Controller {
	c, err := newController(config.Default())
	if err != nil {
		panic(err)
	}
	return c
}
