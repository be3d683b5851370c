package errors

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestIs tests the classification matching over wrapped chains.
func TestIs(t *testing.T) {
	root := New("root")
	minor := Wrap(root, "minor")
	detailed := WrapDet(minor, "something failed")

	t.Run("Direct", func(t *testing.T) {
		assert.True(t, Is(root, root))
		assert.True(t, Is(minor, minor))
	})

	t.Run("Chain", func(t *testing.T) {
		assert.True(t, Is(minor, root))
		assert.True(t, Is(detailed, minor))
		assert.True(t, Is(detailed, root))
	})

	t.Run("NoMatch", func(t *testing.T) {
		other := New("other")
		assert.False(t, Is(minor, other))
		assert.False(t, Is(detailed, other))
		assert.False(t, Is(root, minor))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.False(t, Is(nil, root))
		assert.True(t, Is(nil, nil))
	})
}

// TestWrap tests the classification messages.
func TestWrap(t *testing.T) {
	root := New("query")
	input := Wrap(root, "input")
	assert.Equal(t, "query", root.Error())
	assert.Equal(t, "input: query", input.Error())

	formatted := Wrapf(root, "input: '%s'", "include")
	assert.Equal(t, "input: 'include': query", formatted.Error())
}

// TestDetailedError tests the detailed error creation.
func TestDetailedError(t *testing.T) {
	root := New("mapping")

	err := WrapDetf(root, "serializer: '%s' not found", "posts")
	assert.Equal(t, "serializer: 'posts' not found", err.Error())
	assert.NotEqual(t, uuid.Nil, err.ID)
	assert.True(t, Is(err, root))

	t.Run("Operation", func(t *testing.T) {
		assert.True(t, strings.Contains(err.Operation, "errors_test.go"), err.Operation)
	})

	t.Run("Details", func(t *testing.T) {
		err := WrapDet(root, "message").SetDetails("first")
		assert.Equal(t, "first", err.Details)

		err.WrapDetails("second")
		assert.Equal(t, "second first", err.Details)
	})
}

// TestMultiError tests the multi error container.
func TestMultiError(t *testing.T) {
	root := New("root")
	multi := MultiError{Wrap(root, "one"), New("two")}

	assert.Equal(t, "one: root,two", multi.Error())
	assert.True(t, multi.Is(root))
	assert.False(t, multi.Is(New("three")))
}
