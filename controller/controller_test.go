package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/config"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/mapping"
	"github.com/neuronlabs/sideload/repository"
	"github.com/neuronlabs/sideload/repository/mockrepo"
)

// TestNew tests creating the controller with its config validation.
func TestNew(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)

		assert.Equal(t, config.Default(), c.Config)
		assert.NotNil(t, c.Serializers)
		assert.NotNil(t, c.Renderer)
		assert.Equal(t, repository.ModelRelations{}, c.Repository)
	})

	t.Run("RendererKeys", func(t *testing.T) {
		cfg := config.Default()
		cfg.Renderer.DataKey = "results"
		cfg.Renderer.IncludedKey = "linked"

		c, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, codec.MarshalOptions{DataKey: "results", IncludedKey: "linked"}, c.Renderer.MarshalOptions())
	})

	t.Run("NamingConvention", func(t *testing.T) {
		cfg := config.Default()
		cfg.NamingConvention = "kebab"

		c, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, "naming-convention", c.NamerFunc("NamingConvention"))
	})

	t.Run("UnknownNamingConvention", func(t *testing.T) {
		cfg := config.Default()
		cfg.NamingConvention = "screaming"

		_, err := New(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfig))
	})

	t.Run("UnknownLogLevel", func(t *testing.T) {
		cfg := config.Default()
		cfg.LogLevel = "whisper"

		_, err := New(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfig))
	})

	t.Run("NoRenderer", func(t *testing.T) {
		cfg := config.Default()
		cfg.Renderer = nil

		_, err := New(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfig))
	})

	t.Run("NestedLimitOutOfRange", func(t *testing.T) {
		cfg := config.Default()
		cfg.Renderer.IncludeNestedLimit = 100

		_, err := New(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfig))
	})
}

// TestRegisterSerializers tests the controller serializer registration.
func TestRegisterSerializers(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, c.RegisterSerializers(testPostSerializer))

	// the author serializer registers transitively as a binding target.
	assert.Len(t, c.Serializers.Serializers(), 2)
	assert.Equal(t, "post", c.MustGetSerializer("post").ResourceType())
	assert.Equal(t, "authors", c.MustGetSerializer("author").Collection())
}

// TestSetRepository tests changing the controller repository.
func TestSetRepository(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)

		err = c.SetRepository(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRepository))
	})

	t.Run("RebuildsRenderer", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)
		require.NoError(t, c.RegisterSerializers(testPostSerializer))

		repo := mockrepo.New(mockrepo.WithGraph())
		require.NoError(t, c.SetRepository(repo))

		// the rebuilt renderer resolves the relations through the new repository.
		post := &testPost{id: 1, title: "First", author: &testAuthor{id: 2, name: "Vera"}}
		doc, err := c.Renderer.RenderParam(context.Background(), []mapping.Resource{post}, "author")
		require.NoError(t, err)
		require.Len(t, doc.Included, 1)
		assert.Equal(t, 1, repo.GetRelationCalls)
	})
}

// TestLifecycle tests the controller repository lifecycle operations.
func TestLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Capable", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)

		repo := mockrepo.New()
		require.NoError(t, c.SetRepository(repo))

		require.NoError(t, c.DialAll(ctx))
		assert.Equal(t, 1, repo.DialCalls)

		health, err := c.HealthCheck(ctx)
		require.NoError(t, err)
		assert.Equal(t, repository.StatusPass, health.Status)
		assert.Equal(t, 1, repo.HealthCheckCalls)

		require.NoError(t, c.CloseAll(ctx))
		assert.Equal(t, 1, repo.CloseCalls)
	})

	t.Run("DialFailure", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)

		dialErr := errors.New("connection refused")
		repo := mockrepo.New()
		repo.OnDial(func(_ context.Context) error { return dialErr })
		require.NoError(t, c.SetRepository(repo))

		err = c.DialAll(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, dialErr))
	})

	t.Run("NotImplementing", func(t *testing.T) {
		// the default model relations repository keeps no connections.
		c, err := New(nil)
		require.NoError(t, err)

		assert.NoError(t, c.DialAll(ctx))
		assert.NoError(t, c.CloseAll(ctx))

		health, err := c.HealthCheck(ctx)
		require.NoError(t, err)
		assert.Equal(t, repository.StatusPass, health.Status)
		assert.NotEmpty(t, health.Notes)
	})
}

// TestDefault tests the default controller accessors.
func TestDefault(t *testing.T) {
	first := Default()
	require.NotNil(t, first)
	assert.Equal(t, first, Default())

	custom := NewDefault()
	SetDefault(custom)
	assert.Equal(t, custom, Default())

	SetDefault(first)
}
