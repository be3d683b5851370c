package mapping

import (
	"fmt"
)

// Resource is the minimal interface implemented by objects addressable in
// the rendered output.
type Resource interface {
	// ResourceID returns the resource unique identifier. The returned value
	// must be hashable - it is used as a deduplication map key.
	ResourceID() interface{}
}

// Typer is the interface used by resources that name their own resource
// type. The renderer requires it on the primary resources to resolve their
// serializers - the related resources are typed by the field bindings and
// don't need to implement it.
type Typer interface {
	// ResourceType returns the resource type name.
	ResourceType() string
}

// SingleRelationer is the interface used by resources with single relation
// fields - to-one relationships.
type SingleRelationer interface {
	// GetRelationResource gets the related resource for provided 'field'.
	// Unset relations return nil, nil.
	GetRelationResource(field string) (Resource, error)
}

// MultiRelationer is the interface used by resources with relation fields
// of 'many' type - to-many relationships.
type MultiRelationer interface {
	// GetRelationResources gets the related resources for provided 'field'.
	// The returned slice must allow repeated iteration.
	GetRelationResources(field string) ([]Resource, error)
}

// ResourceKey is the unique resource identity within a single rendered
// document. Two distinct instances with an equal key represent the same
// resource.
type ResourceKey struct {
	// Type is the resource type name.
	Type string
	// ID is the resource identifier.
	ID interface{}
}

// String implements fmt.Stringer interface.
func (r ResourceKey) String() string {
	return fmt.Sprintf("%s/%v", r.Type, r.ID)
}
