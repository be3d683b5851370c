package render

import (
	"context"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/query"
	"github.com/neuronlabs/sideload/repository"
)

// Renderer renders the resources into response documents resolving their
// inclusion requests. The renderer is read-only after creation and safe for
// concurrent use - every render call keeps its own scope.
type Renderer struct {
	serializers *mapping.SerializerMap
	repository  repository.Repository
	dataKey     string
	includedKey string
	nestedLimit int
	countLimit  int
}

// New creates a new renderer with given options. The serializer container
// option is required.
func New(options ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, option := range options {
		option(o)
	}
	if o.Serializers == nil {
		return nil, errors.WrapDet(ErrOptions, "no serializer container provided")
	}
	if o.Repository == nil {
		return nil, errors.WrapDet(ErrOptions, "no repository provided")
	}
	if o.IncludeNestedLimit < 0 {
		return nil, errors.WrapDetf(ErrOptions, "negative include nested limit: '%d'", o.IncludeNestedLimit)
	}
	if o.IncludedCountLimit < 0 {
		return nil, errors.WrapDetf(ErrOptions, "negative included count limit: '%d'", o.IncludedCountLimit)
	}
	return &Renderer{
		serializers: o.Serializers,
		repository:  o.Repository,
		dataKey:     o.DataKey,
		includedKey: o.IncludedKey,
		nestedLimit: o.IncludeNestedLimit,
		countLimit:  o.IncludedCountLimit,
	}, nil
}

// RenderOne renders a single resource document. The document data is
// marshaled as a single object.
func (r *Renderer) RenderOne(ctx context.Context, res mapping.Resource, includes *query.IncludeRequest) (*codec.Document, error) {
	doc, err := r.render(ctx, []mapping.Resource{res}, includes)
	if err != nil {
		return nil, err
	}
	doc.Single = true
	return doc, nil
}

// RenderMany renders a resource collection document in the input order of
// the resources.
func (r *Renderer) RenderMany(ctx context.Context, resources []mapping.Resource, includes *query.IncludeRequest) (*codec.Document, error) {
	return r.render(ctx, resources, includes)
}

// RenderParam parses the raw include parameter and renders provided
// resource collection with the parsed inclusion request.
func (r *Renderer) RenderParam(ctx context.Context, resources []mapping.Resource, includeParam string) (*codec.Document, error) {
	includes, err := query.ParseIncludesLimit(includeParam, r.nestedLimit)
	if err != nil {
		return nil, err
	}
	return r.render(ctx, resources, includes)
}

// RenderOneParam parses the raw include parameter and renders a single
// resource document with the parsed inclusion request.
func (r *Renderer) RenderOneParam(ctx context.Context, res mapping.Resource, includeParam string) (*codec.Document, error) {
	includes, err := query.ParseIncludesLimit(includeParam, r.nestedLimit)
	if err != nil {
		return nil, err
	}
	return r.RenderOne(ctx, res, includes)
}

// MarshalOptions returns the marshal options with the renderer document
// keys.
func (r *Renderer) MarshalOptions() codec.MarshalOptions {
	return codec.MarshalOptions{DataKey: r.dataKey, IncludedKey: r.includedKey}
}

// render serializes provided resources in their input order and walks
// their relation graphs along the inclusion request. The primary records
// are not registered within the scope store - a primary resource reached
// back through a relation path is sideloaded like any other resource.
func (r *Renderer) render(ctx context.Context, resources []mapping.Resource, includes *query.IncludeRequest) (*codec.Document, error) {
	if includes == nil {
		includes = &query.IncludeRequest{}
	}
	s := r.newScope()
	if log.IsAllowed(log.LevelDebug2) {
		log.Debug2f(s.logFormat("Rendering %d resources with includes: '%s'"), len(resources), includes)
	}

	doc := &codec.Document{}
	for _, res := range resources {
		sStruct, err := r.serializers.StructOf(res)
		if err != nil {
			return nil, err
		}
		record, err := sStruct.Serialize(res)
		if err != nil {
			return nil, err
		}
		doc.Data = append(doc.Data, record)
		if err = s.traverse(ctx, res, sStruct, record, includes.IncludedRelations, includes.All, 0); err != nil {
			return nil, err
		}
	}

	included, err := s.store.records()
	if err != nil {
		return nil, err
	}
	doc.Included = included
	if log.IsAllowed(log.LevelDebug2) {
		log.Debug2f(s.logFormat("Rendered %d primary and %d included records"), len(doc.Data), len(doc.Included))
	}
	return doc, nil
}
