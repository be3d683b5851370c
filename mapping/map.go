package mapping

import (
	"github.com/jinzhu/inflection"

	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/log"
)

// SerializerMap contains registered serializers mapped by their resource
// types and collections. The container is built once at startup and is
// read-only during rendering.
type SerializerMap struct {
	serializers map[string]*SerializerStruct
	collections map[string]*SerializerStruct
	ordered     []*SerializerStruct

	// NamerFunc defines the function strategy how the collection names are formatted.
	NamerFunc Namer
}

// MapOption is the function that sets the options for the serializer map.
type MapOption func(m *SerializerMap)

// WithNamingConvention sets the naming convention used to format the
// collection names.
func WithNamingConvention(convention NamingConvention) MapOption {
	return func(m *SerializerMap) {
		m.NamerFunc = convention.Namer
	}
}

// New creates new serializer map with provided options. By default the
// collection names use the snake case naming convention.
func New(options ...MapOption) *SerializerMap {
	m := &SerializerMap{
		serializers: make(map[string]*SerializerStruct),
		collections: make(map[string]*SerializerStruct),
		NamerFunc:   SnakeCase.Namer,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// RegisterSerializers registers provided serializers within given container.
// Binding target serializers are registered transitively. Returns an error
// on resource type or collection conflicts and on invalid binding
// declarations.
func (m *SerializerMap) RegisterSerializers(serializers ...Serializer) error {
	for _, serializer := range serializers {
		if err := m.registerSerializer(serializer); err != nil {
			return err
		}
	}
	return nil
}

// Get gets the *SerializerStruct for provided resource 'type'.
func (m *SerializerMap) Get(resourceType string) (*SerializerStruct, bool) {
	s, ok := m.serializers[resourceType]
	return s, ok
}

// GetByCollection gets the *SerializerStruct for provided 'collection'.
func (m *SerializerMap) GetByCollection(collection string) (*SerializerStruct, bool) {
	s, ok := m.collections[collection]
	return s, ok
}

// MustGet gets the *SerializerStruct for provided resource 'type' or panics
// if the serializer is not registered.
func (m *SerializerMap) MustGet(resourceType string) *SerializerStruct {
	s, ok := m.serializers[resourceType]
	if !ok {
		log.Panicf("serializer: '%s' is not registered", resourceType)
	}
	return s
}

// StructOf gets the *SerializerStruct for provided resource 'res'. The
// resource is required to implement the Typer interface.
func (m *SerializerMap) StructOf(res Resource) (*SerializerStruct, error) {
	if res == nil {
		return nil, errors.WrapDet(ErrNilResource, "provided nil resource")
	}
	typer, ok := res.(Typer)
	if !ok {
		return nil, errors.WrapDetf(ErrNotImplements, "resource: '%T' doesn't implement Typer interface", res)
	}
	s, ok := m.serializers[typer.ResourceType()]
	if !ok {
		return nil, errors.WrapDetf(ErrSerializerNotFound, "serializer: '%s' is not registered", typer.ResourceType())
	}
	return s, nil
}

// GetSerializer gets the *SerializerStruct for provided serializer instance.
func (m *SerializerMap) GetSerializer(serializer Serializer) (*SerializerStruct, error) {
	if serializer == nil {
		return nil, errors.WrapDet(ErrSerializerNotFound, "provided nil serializer")
	}
	s, ok := m.serializers[serializer.ResourceType()]
	if !ok {
		return nil, errors.WrapDetf(ErrSerializerNotFound, "serializer: '%s' is not registered", serializer.ResourceType())
	}
	return s, nil
}

// Serializers returns all registered serializer structs in their
// registration order.
func (m *SerializerMap) Serializers() []*SerializerStruct {
	return m.ordered
}

func (m *SerializerMap) registerSerializer(serializer Serializer) error {
	if serializer == nil {
		return errors.WrapDet(ErrSerializer, "provided nil serializer to register")
	}
	resourceType := serializer.ResourceType()
	if resourceType == "" {
		return errors.WrapDetf(ErrSerializer, "provided serializer: '%T' with an empty resource type", serializer)
	}
	if registered, ok := m.serializers[resourceType]; ok {
		if registered.serializer == serializer {
			return nil
		}
		return errors.WrapDetf(ErrSerializerAlreadyRegistered, "serializer for the resource type: '%s' is already registered", resourceType)
	}

	s := &SerializerStruct{
		serializer:   serializer,
		resourceType: resourceType,
		collection:   m.collectionName(serializer),
		bindings:     make(map[string]*FieldBinding),
		relations:    make(map[string]struct{}),
	}
	if conflict, ok := m.collections[s.collection]; ok {
		return errors.WrapDetf(ErrSerializerAlreadyRegistered,
			"collection: '%s' of the resource type: '%s' is already taken by the resource type: '%s'",
			s.collection, resourceType, conflict.resourceType)
	}
	m.serializers[resourceType] = s
	m.collections[s.collection] = s
	m.ordered = append(m.ordered, s)
	log.Debug2f("Registered serializer: '%s' with collection: '%s'", resourceType, s.collection)

	if err := m.setBindings(s, serializer); err != nil {
		return err
	}
	return nil
}

func (m *SerializerMap) setBindings(s *SerializerStruct, serializer Serializer) error {
	if relationer, ok := serializer.(Relationer); ok {
		for _, field := range relationer.Relations() {
			s.relations[field] = struct{}{}
		}
	}

	binder, ok := serializer.(Binder)
	if !ok {
		return nil
	}
	for _, binding := range binder.Bindings() {
		if binding.Field == "" {
			return errors.WrapDetf(ErrInvalidBinding, "serializer: '%s' binding with an empty field name", s.resourceType)
		}
		if binding.Serializer == nil {
			return errors.WrapDetf(ErrInvalidBinding, "serializer: '%s' field: '%s' binding with nil target serializer", s.resourceType, binding.Field)
		}
		if _, ok = s.bindings[binding.Field]; ok {
			return errors.WrapDetf(ErrInvalidBinding, "serializer: '%s' field: '%s' binding declared more than once", s.resourceType, binding.Field)
		}
		if len(s.relations) != 0 {
			if _, ok = s.relations[binding.Field]; !ok {
				return errors.WrapDetf(ErrInvalidBinding,
					"serializer: '%s' binds the field: '%s' which is not listed within its relations",
					s.resourceType, binding.Field)
			}
		}

		stored := binding
		s.bindings[binding.Field] = &stored
		s.ordered = append(s.ordered, &stored)

		// register the binding target transitively.
		if err := m.registerSerializer(binding.Serializer); err != nil {
			return err
		}
	}
	return nil
}

func (m *SerializerMap) collectionName(serializer Serializer) string {
	if collectioner, ok := serializer.(Collectioner); ok {
		return collectioner.Collection()
	}
	return m.NamerFunc(inflection.Plural(serializer.ResourceType()))
}
