package controller

import (
	"github.com/neuronlabs/sideload/codec"
	"github.com/neuronlabs/sideload/mapping"
)

// Test resources.

type testAuthor struct {
	id   int
	name string
}

func (a *testAuthor) ResourceID() interface{} { return a.id }
func (a *testAuthor) ResourceType() string    { return "author" }

type testPost struct {
	id     int
	title  string
	author *testAuthor
}

func (p *testPost) ResourceID() interface{} { return p.id }
func (p *testPost) ResourceType() string    { return "post" }

func (p *testPost) GetRelationResource(field string) (mapping.Resource, error) {
	if field == "author" && p.author != nil {
		return p.author, nil
	}
	return nil, nil
}

// Test serializers.

type authorSerializer struct{}

func (s *authorSerializer) ResourceType() string { return "author" }

func (s *authorSerializer) Serialize(res mapping.Resource) (*codec.Record, error) {
	author := res.(*testAuthor)
	return &codec.Record{Attributes: map[string]interface{}{"name": author.name}}, nil
}

type postSerializer struct{}

func (s *postSerializer) ResourceType() string { return "post" }

func (s *postSerializer) Serialize(res mapping.Resource) (*codec.Record, error) {
	post := res.(*testPost)
	return &codec.Record{Attributes: map[string]interface{}{"title": post.title}}, nil
}

func (s *postSerializer) Bindings() []mapping.FieldBinding {
	return []mapping.FieldBinding{
		{Field: "author", Serializer: testAuthorSerializer},
	}
}

var (
	testAuthorSerializer = &authorSerializer{}
	testPostSerializer   = &postSerializer{}
)
