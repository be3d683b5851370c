// Package codec defines the output payload structures for the rendered
// responses. A response document is composed of the primary data records and
// the ordered collection of sideloaded records. Sideloaded relation fields
// are represented in their parent records as lightweight references.
package codec
