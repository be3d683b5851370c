package codec

// Record is a single resource representation within the response document.
// The attributes and the relationships are filled by the resource serializer.
// Relation fields selected for sideloading get their relationship values
// replaced by Reference or []Reference stubs.
type Record struct {
	// Type is the resource type name.
	Type string `json:"type"`
	// ID is the resource unique identifier.
	ID interface{} `json:"id"`
	// Attributes is a mapping of the resource attribute values.
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	// Relationships is a mapping of the resource relation fields.
	Relationships map[string]interface{} `json:"relationships,omitempty"`
}

// Key creates the resource reference for given record.
func (r *Record) Key() Reference {
	return Reference{Type: r.Type, ID: r.ID}
}

// Reference is a minimal resource identifier substituted for a relation
// value once the full resource is sideloaded. It is resolvable against the
// document included collection.
type Reference struct {
	Type string      `json:"type"`
	ID   interface{} `json:"id"`
}

// Document is the root response structure. Data contains the primary
// records, Included contains all sideloaded records in the order they were
// first discovered. No resource appears twice within Included.
type Document struct {
	// Data is the primary data of the document.
	Data []*Record
	// Included is the ordered collection of sideloaded records.
	Included []*Record
	// Single marks the primary data as a single resource. The data is
	// then marshaled as an object instead of an array.
	Single bool
}
