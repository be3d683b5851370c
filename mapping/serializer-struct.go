package mapping

import (
	"strings"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/errors"
)

// SerializerStruct is the registered representation of a single serializer.
// It holds the resolved resource type, the collection name and the relation
// field bindings, computed once at registration.
type SerializerStruct struct {
	serializer   Serializer
	resourceType string
	collection   string
	bindings     map[string]*FieldBinding
	ordered      []*FieldBinding
	relations    map[string]struct{}
}

// ResourceType returns the resource type name of given serializer.
func (s *SerializerStruct) ResourceType() string {
	return s.resourceType
}

// Collection returns the serializer collection name.
func (s *SerializerStruct) Collection() string {
	return s.collection
}

// Serializer returns the serializer this struct was built from.
func (s *SerializerStruct) Serializer() Serializer {
	return s.serializer
}

// Bindings returns the relation field bindings in their declaration order.
func (s *SerializerStruct) Bindings() []*FieldBinding {
	return s.ordered
}

// RelationFields returns the names of the includable relation fields in
// their declaration order.
func (s *SerializerStruct) RelationFields() []string {
	fields := make([]string, len(s.ordered))
	for i, binding := range s.ordered {
		fields[i] = binding.Field
	}
	return fields
}

// HasRelation checks if given 'field' is a relation field known to the
// serializer, bound or not.
func (s *SerializerStruct) HasRelation(field string) bool {
	if _, ok := s.bindings[field]; ok {
		return true
	}
	_, ok := s.relations[field]
	return ok
}

// Binding gets the field binding for provided relation 'field'. The error
// distinguishes fields that exist but are not includable from the fields
// unknown to the serializer, naming the resource type, the field and the
// includable field names.
func (s *SerializerStruct) Binding(field string) (*FieldBinding, error) {
	binding, ok := s.bindings[field]
	if ok {
		return binding, nil
	}
	if _, ok = s.relations[field]; ok {
		return nil, errors.WrapDetf(ErrFieldNotIncludable,
			"field: '%s' of the resource: '%s' is not includable. Includable fields: [%s]",
			field, s.resourceType, strings.Join(s.RelationFields(), ",")).
			SetDetailsf("Field: '%s' of the resource: '%s' is not includable. Includable fields: [%s].",
				field, s.resourceType, strings.Join(s.RelationFields(), ","))
	}
	return nil, errors.WrapDetf(ErrFieldNotFound,
		"field: '%s' is not found for the resource: '%s'. Includable fields: [%s]",
		field, s.resourceType, strings.Join(s.RelationFields(), ",")).
		SetDetailsf("Field: '%s' is not found for the resource: '%s'. Includable fields: [%s].",
			field, s.resourceType, strings.Join(s.RelationFields(), ","))
}

// Key computes the resource key for provided 'res' resource.
func (s *SerializerStruct) Key(res Resource) ResourceKey {
	return ResourceKey{Type: s.resourceType, ID: res.ResourceID()}
}

// Serialize maps provided resource into its output record. The record type
// and id are filled from the registration and the resource when the
// serializer leaves them empty.
func (s *SerializerStruct) Serialize(res Resource) (*codec.Record, error) {
	if res == nil {
		return nil, errors.WrapDetf(ErrNilResource, "serializing nil resource of type: '%s'", s.resourceType)
	}
	record, err := s.serializer.Serialize(res)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.WrapDetf(ErrInternal, "serializer: '%s' returned nil record", s.resourceType)
	}
	if record.Type == "" {
		record.Type = s.resourceType
	}
	if record.ID == nil {
		record.ID = res.ResourceID()
	}
	return record, nil
}
