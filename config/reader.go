package config

import (
	"github.com/spf13/viper"

	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
)

var defaultConfig *Controller

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadNamedConfig reads the config with the provided name. The config file
// is searched within given 'paths'. When no paths are provided the current
// directory and the 'configs' directory are searched.
func ReadNamedConfig(name string, paths ...string) (*Controller, error) {
	return readNamedConfig(name, paths)
}

// ReadConfig reads the config with the default 'config' name.
func ReadConfig(paths ...string) (*Controller, error) {
	return readNamedConfig("config", paths)
}

// ReadDefaultConfig returns the configuration composed of the default values only.
func ReadDefaultConfig() *Controller {
	return readDefaultConfig()
}

// Default returns a fresh copy of the default controller configuration.
func Default() *Controller {
	c := *readDefaultConfig()
	renderer := *c.Renderer
	c.Renderer = &renderer
	if c.I18n != nil {
		i18n := *c.I18n
		c.I18n = &i18n
	}
	return &c
}

func readNamedConfig(name string, paths []string) (*Controller, error) {
	v := viper.New()
	v.SetConfigName(name)

	if len(paths) == 0 {
		paths = []string{".", "configs"}
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapDetf(ErrRead, "reading config: '%s' failed: %v", name, err)
	}

	c := &Controller{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling config: '%s' failed: %v", name, err)
		return nil, errors.WrapDetf(ErrRead, "unmarshaling config: '%s' failed: %v", name, err)
	}
	return c, nil
}

func readDefaultConfig() *Controller {
	if defaultConfig == nil {
		v := viper.New()
		setDefaults(v)

		c := &Controller{}
		if err := v.Unmarshal(c); err != nil {
			log.Debugf("Unmarshaling default config failed: %v", err)
			panic(err)
		}
		defaultConfig = c
	}
	return defaultConfig
}

// Default values.
func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"naming_convention":             "snake",
		"log_level":                     "info",
		"renderer.include_parameter":    "include",
		"renderer.data_key":             "data",
		"renderer.included_key":         "included",
		"renderer.include_nested_limit": 3,
		"renderer.included_count_limit": 1000,
		"i18n.supported_languages":      []string{"en"},
	}
	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
