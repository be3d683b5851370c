package server

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/controller"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/mapping"
)

// Blog domain fixtures served by the test collection handler.

type author struct {
	id   int
	name string
}

func (a *author) ResourceID() interface{} { return a.id }
func (a *author) ResourceType() string    { return "author" }

type comment struct {
	id     int
	body   string
	author *author
	post   *post
}

func (c *comment) ResourceID() interface{} { return c.id }
func (c *comment) ResourceType() string    { return "comment" }

func (c *comment) GetRelationResource(field string) (mapping.Resource, error) {
	switch field {
	case "author":
		if c.author == nil {
			return nil, nil
		}
		return c.author, nil
	case "post":
		if c.post == nil {
			return nil, nil
		}
		return c.post, nil
	}
	return nil, errors.Newf("comment: unknown to-one field: '%s'", field)
}

type post struct {
	id     int
	title  string
	author *author
}

func (p *post) ResourceID() interface{} { return p.id }
func (p *post) ResourceType() string    { return "post" }

func (p *post) GetRelationResource(field string) (mapping.Resource, error) {
	if field != "author" {
		return nil, errors.Newf("post: unknown to-one field: '%s'", field)
	}
	if p.author == nil {
		return nil, nil
	}
	return p.author, nil
}

type authorSerializer struct{}

func (s *authorSerializer) ResourceType() string { return "author" }

func (s *authorSerializer) Serialize(res mapping.Resource) (*codec.Record, error) {
	a := res.(*author)
	return &codec.Record{Attributes: map[string]interface{}{"name": a.name}}, nil
}

type postSerializer struct{}

func (s *postSerializer) ResourceType() string { return "post" }

func (s *postSerializer) Serialize(res mapping.Resource) (*codec.Record, error) {
	p := res.(*post)
	return &codec.Record{Attributes: map[string]interface{}{"title": p.title}}, nil
}

func (s *postSerializer) Bindings() []mapping.FieldBinding {
	return []mapping.FieldBinding{
		{Field: "author", Serializer: testAuthorSerializer},
	}
}

type commentSerializer struct{}

func (s *commentSerializer) ResourceType() string { return "comment" }

func (s *commentSerializer) Serialize(res mapping.Resource) (*codec.Record, error) {
	c := res.(*comment)
	return &codec.Record{Attributes: map[string]interface{}{"body": c.body}}, nil
}

func (s *commentSerializer) Bindings() []mapping.FieldBinding {
	return []mapping.FieldBinding{
		{Field: "post", Serializer: testPostSerializer},
		{Field: "author", Serializer: testAuthorSerializer},
	}
}

var (
	testAuthorSerializer  = &authorSerializer{}
	testPostSerializer    = &postSerializer{}
	testCommentSerializer = &commentSerializer{}
)

// commentsHandler serves a fixed comment collection.
type commentsHandler struct {
	comments []*comment
	listErr  error
}

func (h *commentsHandler) List(_ context.Context, _ *http.Request) ([]mapping.Resource, error) {
	if h.listErr != nil {
		return nil, h.listErr
	}
	resources := make([]mapping.Resource, len(h.comments))
	for i, c := range h.comments {
		resources[i] = c
	}
	return resources, nil
}

func (h *commentsHandler) Get(_ context.Context, id string) (mapping.Resource, error) {
	parsed, err := strconv.Atoi(id)
	if err != nil {
		return nil, nil
	}
	for _, c := range h.comments {
		if c.id == parsed {
			return c, nil
		}
	}
	return nil, nil
}

// blogGraph builds the base blog entity graph.
func blogGraph() (*author, *post, *comment) {
	author1 := &author{id: 1, name: "Jules"}
	post5 := &post{id: 5, title: "Included", author: author1}
	comment9 := &comment{id: 9, body: "First", author: author1, post: post5}
	return author1, post5, comment9
}

// blogController creates a controller with the blog serializers registered.
func blogController(t *testing.T) *controller.Controller {
	t.Helper()
	c, err := controller.New(nil)
	require.NoError(t, err)
	require.NoError(t, c.RegisterSerializers(testCommentSerializer))
	return c
}
