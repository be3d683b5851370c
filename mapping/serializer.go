package mapping

import (
	"github.com/neuronlabs/sideload/codec"
)

// Serializer is the base attribute renderer for a single resource type. It
// maps one resource instance into its output record. The engine decides
// which resources get serialized, each exactly once per rendered document;
// the field level encoding is fully owned by the serializer.
type Serializer interface {
	// ResourceType returns the type name under which the serialized
	// resources are addressed in the rendered output.
	ResourceType() string
	// Serialize maps provided resource into an output record.
	Serialize(res Resource) (*codec.Record, error)
}

// Binder is implemented by serializers that declare relation fields
// available for sideloading. A relation field without a binding cannot be
// included, even when the serializer renders it.
type Binder interface {
	// Bindings returns the relation field bindings in their declaration order.
	Bindings() []FieldBinding
}

// Relationer is implemented by serializers that want to distinguish between
// unknown fields and relation fields that exist but are not includable. The
// returned names must cover all rendered relation fields, bound or not.
type Relationer interface {
	// Relations returns the names of all relation fields the serializer renders.
	Relations() []string
}

// Collectioner is implemented by serializers with a custom collection name.
// Without it the collection is the pluralized resource type formatted with
// the container naming convention.
type Collectioner interface {
	// Collection returns the resource collection name.
	Collection() string
}

// FieldBinding binds a relation field to the serializer used for the
// related resources when the field gets sideloaded. Bindings are registered
// once per serializer and are read-only afterwards.
type FieldBinding struct {
	// Field is the relation field name as rendered in the record relationships.
	Field string
	// Serializer is the serializer used for the related resources.
	Serializer Serializer
	// ToMany defines if the relation field is a collection.
	ToMany bool
}
