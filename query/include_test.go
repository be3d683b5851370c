package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/sideload/errors"
)

// TestParseIncludes tests the include parameter parsing.
func TestParseIncludes(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		for _, param := range []string{"", "   "} {
			req, err := ParseIncludes(param)
			require.NoError(t, err)
			assert.True(t, req.Empty())
		}
	})

	t.Run("SinglePath", func(t *testing.T) {
		req, err := ParseIncludes("author")
		require.NoError(t, err)

		require.Len(t, req.IncludedRelations, 1)
		author := req.IncludedRelations[0]
		assert.Equal(t, "author", author.Field)
		assert.False(t, author.All)
		assert.Empty(t, author.IncludedRelations)
	})

	t.Run("NestedPaths", func(t *testing.T) {
		req, err := ParseIncludes("post.author,author")
		require.NoError(t, err)
		require.Len(t, req.IncludedRelations, 2)

		post := req.Relation("post")
		require.NotNil(t, post)
		require.NotNil(t, post.Relation("author"))

		author := req.Relation("author")
		require.NotNil(t, author)
		assert.Empty(t, author.IncludedRelations)

		// the top level field order follows the first mention.
		assert.Equal(t, "post", req.IncludedRelations[0].Field)
		assert.Equal(t, "author", req.IncludedRelations[1].Field)
	})

	t.Run("MergeDuplicates", func(t *testing.T) {
		req, err := ParseIncludes("comments,comments.author,comments")
		require.NoError(t, err)

		require.Len(t, req.IncludedRelations, 1)
		comments := req.IncludedRelations[0]
		assert.Equal(t, "comments", comments.Field)
		require.Len(t, comments.IncludedRelations, 1)
		assert.Equal(t, "author", comments.IncludedRelations[0].Field)
	})

	t.Run("FirstMentionOrder", func(t *testing.T) {
		req, err := ParseIncludes("b.x,a,b.y,c")
		require.NoError(t, err)

		require.Len(t, req.IncludedRelations, 3)
		assert.Equal(t, "b", req.IncludedRelations[0].Field)
		assert.Equal(t, "a", req.IncludedRelations[1].Field)
		assert.Equal(t, "c", req.IncludedRelations[2].Field)

		b := req.Relation("b")
		require.Len(t, b.IncludedRelations, 2)
		assert.Equal(t, "x", b.IncludedRelations[0].Field)
		assert.Equal(t, "y", b.IncludedRelations[1].Field)
	})

	t.Run("Wildcard", func(t *testing.T) {
		req, err := ParseIncludes("*")
		require.NoError(t, err)
		assert.True(t, req.All)
		assert.False(t, req.Empty())
		assert.Empty(t, req.IncludedRelations)
	})

	t.Run("WildcardSubtree", func(t *testing.T) {
		req, err := ParseIncludes("comments.*,author")
		require.NoError(t, err)
		assert.False(t, req.All)
		require.Len(t, req.IncludedRelations, 2)

		comments := req.Relation("comments")
		require.NotNil(t, comments)
		assert.True(t, comments.All)
		assert.NotNil(t, req.Relation("author"))
	})

	t.Run("WildcardNonTerminal", func(t *testing.T) {
		_, err := ParseIncludes("*.author")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("EmptySegments", func(t *testing.T) {
		for _, param := range []string{"a..b", ".a", "a.", "a,,b"} {
			_, err := ParseIncludes(param)
			require.Error(t, err, param)
			assert.True(t, errors.Is(err, ErrInvalidParameter), param)
		}
	})

	t.Run("IllegalCharacters", func(t *testing.T) {
		for _, param := range []string{"au thor", "post/author", "a$b"} {
			_, err := ParseIncludes(param)
			require.Error(t, err, param)
			assert.True(t, errors.Is(err, ErrInvalidParameter), param)
		}
	})

	t.Run("AllowedCharacters", func(t *testing.T) {
		req, err := ParseIncludes("blog_posts.co-authors,v2")
		require.NoError(t, err)
		assert.Len(t, req.IncludedRelations, 2)
	})
}

// TestParseIncludesLimit tests the nested limit of the include parameter parsing.
func TestParseIncludesLimit(t *testing.T) {
	t.Run("WithinLimit", func(t *testing.T) {
		req, err := ParseIncludesLimit("posts.comments", 1)
		require.NoError(t, err)
		assert.Len(t, req.IncludedRelations, 1)
	})

	t.Run("Exceeded", func(t *testing.T) {
		_, err := ParseIncludesLimit("posts.comments.author", 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooDeep))
		assert.True(t, errors.Is(err, ErrInput))
	})

	t.Run("Default", func(t *testing.T) {
		_, err := ParseIncludes("a.b.c.d")
		require.NoError(t, err)

		_, err = ParseIncludes("a.b.c.d.e")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooDeep))
	})
}

// TestIncludeRequestString tests writing the request back in the parameter form.
func TestIncludeRequestString(t *testing.T) {
	tests := []struct {
		param      string
		normalized string
	}{
		{"*", "*"},
		{"author", "author"},
		{"post.author,author", "post.author,author"},
		{"a,a.b", "a.b"},
		{"comments.*", "comments.*"},
		{"b.x,a,b.y", "b.x,b.y,a"},
	}
	for _, tt := range tests {
		req, err := ParseIncludes(tt.param)
		require.NoError(t, err, tt.param)
		assert.Equal(t, tt.normalized, req.String(), tt.param)
	}
}
