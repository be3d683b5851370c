package config

import (
	"github.com/neuronlabs/sideload/errors"
)

// Config error classifications.
var (
	// ErrConfig is the major error classification for the config package.
	ErrConfig = errors.New("config")
	// ErrRead is the error classification for reading config failures.
	ErrRead = errors.Wrap(ErrConfig, "read")
)

// Controller defines the configuration for the controller.
type Controller struct {
	// NamingConvention is the naming convention used while mapping the
	// resource collection names. Allowed values:
	// - camel
	// - lower_camel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=camel lowercamel lower_camel snake kebab"`

	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`

	// Renderer is the config used for the response rendering.
	Renderer *Renderer `mapstructure:"renderer" validate:"required"`

	// I18n defines the internationalization support config.
	I18n *I18n `mapstructure:"i18n"`
}

// Renderer defines the configuration for the response rendering and the
// inclusion traversal.
type Renderer struct {
	// IncludeParameter is the name of the query parameter that carries the
	// requested inclusion paths.
	IncludeParameter string `mapstructure:"include_parameter"`

	// DataKey is the document key under which the primary data is written.
	DataKey string `mapstructure:"data_key"`

	// IncludedKey is the document key under which the sideloaded records
	// are written.
	IncludedKey string `mapstructure:"included_key"`

	// IncludeNestedLimit is a maximum value for nested inclusions
	// (i.e. IncludeNestedLimit = 1 allows ?include=posts.comments but does
	// not allow ?include=posts.comments.author). It also bounds the
	// recursive expansion of the include-all wildcard.
	IncludeNestedLimit int `validate:"min=1,max=20" mapstructure:"include_nested_limit"`

	// IncludedCountLimit is the upper limit of the number of sideloaded
	// records within a single document.
	IncludedCountLimit int `validate:"min=1,max=10000" mapstructure:"included_count_limit"`
}

// I18n defines i18n configuration support.
type I18n struct {
	// SupportedLanguages represent supported languages tags.
	SupportedLanguages []string `mapstructure:"supported_languages"`
}
