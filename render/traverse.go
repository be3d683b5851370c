package render

import (
	"context"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/query"
)

// traverse processes the inclusion subtree of a single resource. The
// 'children' are the inclusion nodes requested below the resource, 'all'
// marks its subtree as wildcard expanded and 'depth' is the resource
// distance from the primary data. Every related resource discovered below
// gets emitted into the scope store and the relation fields of the
// resource 'record' get their values replaced by reference stubs.
func (s *scope) traverse(ctx context.Context, res mapping.Resource, sStruct *mapping.SerializerStruct, record *codec.Record, children []*query.IncludedRelation, all bool, depth int) error {
	key := sStruct.Key(res)
	for _, field := range s.fieldsOf(sStruct, children, all, depth) {
		binding, err := sStruct.Binding(field)
		if err != nil {
			return err
		}
		related, err := s.fetchRelation(ctx, key, res, field, binding.ToMany)
		if err != nil {
			return err
		}
		if len(related) == 0 {
			// absent relations get no stub and no placeholder.
			continue
		}
		target, err := s.serializers.GetSerializer(binding.Serializer)
		if err != nil {
			return errors.WrapDetf(ErrInternal, "binding target serializer: '%s' of the field: '%s' is not registered", binding.Serializer.ResourceType(), field)
		}

		childNode := childOf(children, field)
		var childChildren []*query.IncludedRelation
		childAll := all
		if childNode != nil {
			childChildren = childNode.IncludedRelations
			childAll = childAll || childNode.All
		}
		for _, rel := range related {
			if err = s.include(ctx, rel, target, childChildren, childAll, depth+1); err != nil {
				return err
			}
		}
		setStubs(record, field, target.ResourceType(), related, binding.ToMany)
	}
	return nil
}

// include emits a single related resource into the scope store and descends
// into its inclusion subtree. A resource already known to the store keeps
// its emitted body - the descent then only extends the relation coverage,
// as another path may request sub-inclusions not covered on the first
// encounter.
func (s *scope) include(ctx context.Context, res mapping.Resource, sStruct *mapping.SerializerStruct, children []*query.IncludedRelation, all bool, depth int) error {
	key := sStruct.Key(res)
	state := s.store.getOrMarkPending(key)
	if state != stateNew {
		if log.IsAllowed(log.LevelDebug3) {
			log.Debug3f(s.logFormat("Resource: '%s' is already %s"), key, state)
		}
		return s.traverse(ctx, res, sStruct, s.store.record(key), children, all, depth)
	}

	if s.countLimit > 0 && s.store.len() > s.countLimit {
		return errors.WrapDetf(ErrIncludedLimit, "the number of the sideloaded resources exceeds the limit: '%d'", s.countLimit).
			SetDetailsf("The request resolves too many included resources. The maximum allowed number is: '%d'.", s.countLimit)
	}
	record, err := sStruct.Serialize(res)
	if err != nil {
		return err
	}
	s.store.finalize(key, record)
	return s.traverse(ctx, res, sStruct, record, children, all, depth)
}

// fieldsOf lists the relation fields to process for a resource at given
// 'depth'. The explicitly requested fields come first in their request
// order. When the subtree is wildcard expanded and the depth budget allows
// another level, the remaining bound fields follow in their declaration
// order.
func (s *scope) fieldsOf(sStruct *mapping.SerializerStruct, children []*query.IncludedRelation, all bool, depth int) []string {
	fields := make([]string, 0, len(children))
	for _, child := range children {
		fields = append(fields, child.Field)
	}
	if !all || depth > s.nestedLimit {
		return fields
	}
	for _, field := range sStruct.RelationFields() {
		if childOf(children, field) == nil {
			fields = append(fields, field)
		}
	}
	return fields
}

// setStubs replaces the relation 'field' value within the 'record'
// relationships with the reference stubs of the sideloaded resources.
func setStubs(record *codec.Record, field, resourceType string, related []mapping.Resource, toMany bool) {
	if record.Relationships == nil {
		record.Relationships = make(map[string]interface{})
	}
	if !toMany {
		record.Relationships[field] = codec.Reference{Type: resourceType, ID: related[0].ResourceID()}
		return
	}
	references := make([]codec.Reference, len(related))
	for i, rel := range related {
		references[i] = codec.Reference{Type: resourceType, ID: rel.ResourceID()}
	}
	record.Relationships[field] = references
}

// childOf gets the inclusion node of given 'field' within the 'children'.
func childOf(children []*query.IncludedRelation, field string) *query.IncludedRelation {
	for _, child := range children {
		if child.Field == field {
			return child
		}
	}
	return nil
}
