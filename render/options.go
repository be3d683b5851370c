package render

import (
	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/query"
	"github.com/neuronlabs/sideload/repository"
)

// DefaultIncludedCountLimit is the default maximum number of the records
// sideloaded within a single rendered document.
const DefaultIncludedCountLimit = 1000

// Options are the renderer options.
type Options struct {
	// Serializers is the container with the registered resource serializers
	// and their relation field bindings. Required.
	Serializers *mapping.SerializerMap
	// Repository resolves the relation values during the traversal. By
	// default the relations are read from the resources themselves with the
	// repository.ModelRelations resolver.
	Repository repository.Repository
	// DataKey is the document key under which the primary data is marshaled.
	DataKey string
	// IncludedKey is the document key under which the sideloaded records
	// are marshaled.
	IncludedKey string
	// IncludeNestedLimit is the maximum number of the nested separators
	// within a single inclusion path. It also bounds the wildcard
	// expansion, which descends to the depth of the deepest allowed
	// explicit path.
	IncludeNestedLimit int
	// IncludedCountLimit is the maximum number of the records sideloaded
	// within a single document. Zero disables the limit.
	IncludedCountLimit int
}

// Option is a function that changes the renderer options.
type Option func(o *Options)

// WithSerializers sets the serializer container for the renderer.
func WithSerializers(serializers *mapping.SerializerMap) Option {
	return func(o *Options) {
		o.Serializers = serializers
	}
}

// WithRepository sets the repository used to resolve the relation values.
func WithRepository(repo repository.Repository) Option {
	return func(o *Options) {
		o.Repository = repo
	}
}

// WithDataKey sets the document key for the primary data.
func WithDataKey(key string) Option {
	return func(o *Options) {
		o.DataKey = key
	}
}

// WithIncludedKey sets the document key for the sideloaded records.
func WithIncludedKey(key string) Option {
	return func(o *Options) {
		o.IncludedKey = key
	}
}

// WithIncludeNestedLimit sets the maximum number of the nested separators
// within a single inclusion path.
func WithIncludeNestedLimit(limit int) Option {
	return func(o *Options) {
		o.IncludeNestedLimit = limit
	}
}

// WithIncludedCountLimit sets the maximum number of the records sideloaded
// within a single document.
func WithIncludedCountLimit(limit int) Option {
	return func(o *Options) {
		o.IncludedCountLimit = limit
	}
}

func defaultOptions() *Options {
	return &Options{
		Repository:         repository.ModelRelations{},
		DataKey:            codec.DefaultDataKey,
		IncludedKey:        codec.DefaultIncludedKey,
		IncludeNestedLimit: query.DefaultNestedLimit,
		IncludedCountLimit: DefaultIncludedCountLimit,
	}
}
