package mapping

import (
	"github.com/neuronlabs/sideload/errors"
)

var (
	// ErrMapping is the major error classification for the mapping package.
	ErrMapping = errors.New("mapping")

	// ErrSerializer is the minor error classification related to the serializers.
	ErrSerializer = errors.Wrap(ErrMapping, "serializer")
	// ErrSerializerNotFound is the error classification for serializers that are not registered.
	ErrSerializerNotFound = errors.Wrap(ErrSerializer, "not found")
	// ErrSerializerAlreadyRegistered is the error classification for serializer registration conflicts.
	ErrSerializerAlreadyRegistered = errors.Wrap(ErrSerializer, "already registered")

	// ErrField is the minor error classification related to the relation fields.
	ErrField = errors.Wrap(ErrMapping, "field")
	// ErrFieldNotFound is the error classification for fields unknown to the serializer.
	ErrFieldNotFound = errors.Wrap(ErrField, "not found")
	// ErrFieldNotIncludable is the error classification for relation fields
	// that exist but have no binding declared.
	ErrFieldNotIncludable = errors.Wrap(ErrField, "not includable")

	// ErrBinding is the minor error classification related to the field bindings.
	ErrBinding = errors.Wrap(ErrMapping, "binding")
	// ErrInvalidBinding is the error classification for invalid binding declarations.
	ErrInvalidBinding = errors.Wrap(ErrBinding, "invalid")

	// ErrResource is the minor error classification related to the resource values.
	ErrResource = errors.Wrap(ErrMapping, "resource")
	// ErrNilResource is the error classification when the input resource is nil.
	ErrNilResource = errors.Wrap(ErrResource, "nil")
	// ErrNotImplements is the error classification when a resource doesn't implement some interface.
	ErrNotImplements = errors.Wrap(ErrResource, "not implements")

	// ErrNamingConvention is an error classification with errors related to the naming convention.
	ErrNamingConvention = errors.Wrap(ErrMapping, "naming convention")

	// ErrInternal is the error classification for internal mapping errors.
	ErrInternal = errors.Wrap(errors.ErrInternal, "mapping")
)
