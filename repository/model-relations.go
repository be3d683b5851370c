package repository

import (
	"context"

	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/mapping"
)

// Compile time check for the Repository interface implementation.
var _ Repository = ModelRelations{}

// ModelRelations is the default repository. It resolves the relations by
// delegating to the resource own relation methods. The caching contract of
// the Repository interface is then carried by the resources themselves -
// the relation values they hold are already materialized.
type ModelRelations struct{}

// GetRelation implements Repository interface.
func (ModelRelations) GetRelation(_ context.Context, res mapping.Resource, field string) (mapping.Resource, error) {
	single, ok := res.(mapping.SingleRelationer)
	if !ok {
		return nil, errors.WrapDetf(ErrNotImplements, "resource: '%T' doesn't implement SingleRelationer interface", res)
	}
	return single.GetRelationResource(field)
}

// GetRelations implements Repository interface.
func (ModelRelations) GetRelations(_ context.Context, res mapping.Resource, field string) ([]mapping.Resource, error) {
	multi, ok := res.(mapping.MultiRelationer)
	if !ok {
		return nil, errors.WrapDetf(ErrNotImplements, "resource: '%T' doesn't implement MultiRelationer interface", res)
	}
	return multi.GetRelationResources(field)
}
