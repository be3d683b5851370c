package mapping

import (
	"github.com/neuronlabs/sideload/codec"
)

// Test resources.

type testAuthor struct {
	id   int
	name string
}

func (a *testAuthor) ResourceID() interface{} { return a.id }
func (a *testAuthor) ResourceType() string    { return "author" }

type testPost struct {
	id    int
	title string
}

func (p *testPost) ResourceID() interface{} { return p.id }
func (p *testPost) ResourceType() string    { return "post" }

type testComment struct {
	id   int
	body string
}

func (c *testComment) ResourceID() interface{} { return c.id }

// Test serializers. The post serializer binds the author and the comments
// fields and renders the editor relation without a binding.

type authorSerializer struct{}

func (s *authorSerializer) ResourceType() string { return "author" }

func (s *authorSerializer) Serialize(res Resource) (*codec.Record, error) {
	author := res.(*testAuthor)
	return &codec.Record{Attributes: map[string]interface{}{"name": author.name}}, nil
}

type postSerializer struct{}

func (s *postSerializer) ResourceType() string { return "post" }

func (s *postSerializer) Serialize(res Resource) (*codec.Record, error) {
	post := res.(*testPost)
	return &codec.Record{Attributes: map[string]interface{}{"title": post.title}}, nil
}

func (s *postSerializer) Bindings() []FieldBinding {
	return []FieldBinding{
		{Field: "author", Serializer: sharedAuthorSerializer},
		{Field: "comments", Serializer: sharedCommentSerializer, ToMany: true},
	}
}

func (s *postSerializer) Relations() []string {
	return []string{"author", "editor", "comments"}
}

type commentSerializer struct{}

func (s *commentSerializer) ResourceType() string { return "comment" }

func (s *commentSerializer) Serialize(res Resource) (*codec.Record, error) {
	comment := res.(*testComment)
	return &codec.Record{Attributes: map[string]interface{}{"body": comment.body}}, nil
}

func (s *commentSerializer) Bindings() []FieldBinding {
	return []FieldBinding{
		{Field: "author", Serializer: sharedAuthorSerializer},
	}
}

var (
	sharedAuthorSerializer  = &authorSerializer{}
	sharedPostSerializer    = &postSerializer{}
	sharedCommentSerializer = &commentSerializer{}
)
