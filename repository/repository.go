package repository

import (
	"context"

	"github.com/neuronlabs/sideload/mapping"
)

// Repository is the relation accessor interface. It resolves the relation
// values for the rendered resources.
//
// The implementations are required to:
//	# return (nil, nil) for an unset to-one relation and a nil or empty
//	  slice for an empty to-many relation - absent relations are not errors,
//	# serve a relation that was already materialized for given resource
//	  without a new underlying fetch, i.e. by reusing data loaded within a
//	  batched prefetch performed before the rendering began,
//	# return re-iterable slices - the renderer reads a resolved relation
//	  value multiple times while assembling the document.
// The renderer calls each method at most once per (resource, field) pair
// within a single rendered document. Under the debug3 logging level it calls
// once more to verify that the returned collections are re-iterable.
type Repository interface {
	// GetRelation gets the single related resource for given 'field' of the
	// resource 'res'.
	GetRelation(ctx context.Context, res mapping.Resource, field string) (mapping.Resource, error)
	// GetRelations gets the related resources for given to-many 'field' of
	// the resource 'res'.
	GetRelations(ctx context.Context, res mapping.Resource, field string) ([]mapping.Resource, error)
}

// Dialer is an optional interface for the repositories that establish
// connections before their first use.
type Dialer interface {
	// Dial establish the connection for given repository.
	Dial(ctx context.Context) error
}

// Closer is an optional interface for the repositories that close their
// connections gently.
type Closer interface {
	// Close closes the repository connections.
	Close(ctx context.Context) error
}
