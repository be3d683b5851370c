package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/errors"
	"github.com/neuronlabs/sideload/mapping"
)

// Blog domain fixtures. The relation graph is cyclic - authors point to
// their posts and posts point back to their authors.

type author struct {
	id    int
	name  string
	posts []*post
}

func (a *author) ResourceID() interface{} { return a.id }
func (a *author) ResourceType() string    { return "author" }

func (a *author) GetRelationResources(field string) ([]mapping.Resource, error) {
	if field != "posts" {
		return nil, errors.Newf("author: unknown to-many field: '%s'", field)
	}
	resources := make([]mapping.Resource, len(a.posts))
	for i, p := range a.posts {
		resources[i] = p
	}
	return resources, nil
}

type post struct {
	id       int
	title    string
	author   *author
	editor   *author
	comments []*comment
}

func (p *post) ResourceID() interface{} { return p.id }
func (p *post) ResourceType() string    { return "post" }

func (p *post) GetRelationResource(field string) (mapping.Resource, error) {
	switch field {
	case "author":
		if p.author == nil {
			return nil, nil
		}
		return p.author, nil
	case "editor":
		if p.editor == nil {
			return nil, nil
		}
		return p.editor, nil
	}
	return nil, errors.Newf("post: unknown to-one field: '%s'", field)
}

func (p *post) GetRelationResources(field string) ([]mapping.Resource, error) {
	if field != "comments" {
		return nil, errors.Newf("post: unknown to-many field: '%s'", field)
	}
	resources := make([]mapping.Resource, len(p.comments))
	for i, c := range p.comments {
		resources[i] = c
	}
	return resources, nil
}

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
	case "post":
		if c.post == nil {
			return nil, nil
		}
		return c.post, nil
	case "author":
		if c.author == nil {
			return nil, nil
		}
		return c.author, nil
	}
	return nil, errors.Newf("comment: unknown to-one field: '%s'", field)
}

type authorSerializer struct{}

func (s *authorSerializer) ResourceType() string { return "author" }

func (s *authorSerializer) Serialize(res mapping.Resource) (*codec.Record, error) {
	a := res.(*author)
	return &codec.Record{Attributes: map[string]interface{}{"name": a.name}}, nil
}

func (s *authorSerializer) Bindings() []mapping.FieldBinding {
	return []mapping.FieldBinding{
		{Field: "posts", Serializer: blogPostSerializer, ToMany: true},
	}
}

type postSerializer struct{}

func (s *postSerializer) ResourceType() string { return "post" }

func (s *postSerializer) Serialize(res mapping.Resource) (*codec.Record, error) {
	p := res.(*post)
	return &codec.Record{Attributes: map[string]interface{}{"title": p.title}}, nil
}

func (s *postSerializer) Bindings() []mapping.FieldBinding {
	return []mapping.FieldBinding{
		{Field: "author", Serializer: blogAuthorSerializer},
		{Field: "comments", Serializer: blogCommentSerializer, ToMany: true},
	}
}

// the editor relation is rendered without a binding and cannot be included.
func (s *postSerializer) Relations() []string {
	return []string{"author", "editor", "comments"}
}

type commentSerializer struct{}

func (s *commentSerializer) ResourceType() string { return "comment" }

func (s *commentSerializer) Serialize(res mapping.Resource) (*codec.Record, error) {
	c := res.(*comment)
	return &codec.Record{Attributes: map[string]interface{}{"body": c.body}}, nil
}

func (s *commentSerializer) Bindings() []mapping.FieldBinding {
	return []mapping.FieldBinding{
		{Field: "post", Serializer: blogPostSerializer},
		{Field: "author", Serializer: blogAuthorSerializer},
	}
}

var (
	blogAuthorSerializer  = &authorSerializer{}
	blogPostSerializer    = &postSerializer{}
	blogCommentSerializer = &commentSerializer{}
)

// node is a linear chain fixture with a self referencing serializer, used
// for the depth budget tests.
type node struct {
	id   int
	next *node
}

func (n *node) ResourceID() interface{} { return n.id }
func (n *node) ResourceType() string    { return "node" }

func (n *node) GetRelationResource(field string) (mapping.Resource, error) {
	if field != "next" {
		return nil, errors.Newf("node: unknown to-one field: '%s'", field)
	}
	if n.next == nil {
		return nil, nil
	}
	return n.next, nil
}

type nodeSerializer struct{}

func (s *nodeSerializer) ResourceType() string { return "node" }

func (s *nodeSerializer) Serialize(_ mapping.Resource) (*codec.Record, error) {
	return &codec.Record{}, nil
}

func (s *nodeSerializer) Bindings() []mapping.FieldBinding {
	return []mapping.FieldBinding{
		{Field: "next", Serializer: chainNodeSerializer},
	}
}

var chainNodeSerializer = &nodeSerializer{}

// blogSerializers creates a serializer container with the blog domain
// serializers registered.
func blogSerializers(t *testing.T) *mapping.SerializerMap {
	t.Helper()
	m := mapping.New()
	require.NoError(t, m.RegisterSerializers(blogCommentSerializer))
	return m
}

// blogGraph builds the base blog entity graph.
func blogGraph() (*author, *post, *comment) {
	author1 := &author{id: 1, name: "Jules"}
	post5 := &post{id: 5, title: "Included", author: author1}
	comment9 := &comment{id: 9, body: "First", author: author1, post: post5}
	author1.posts = []*post{post5}
	post5.comments = []*comment{comment9}
	return author1, post5, comment9
}

// chain builds a linear node chain of given length and returns its head.
func chain(length int) *node {
	head := &node{id: 1}
	current := head
	for i := 2; i <= length; i++ {
		current.next = &node{id: i}
		current = current.next
	}
	return head
}
