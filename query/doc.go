// Package query defines the inclusion request structures with their parser.
// The package is used to turn the raw include parameter - a comma separated
// list of dot delimited relation field paths - into an ordered tree consumed
// by the renderer. The parser validates the paths lexically only, the field
// names are resolved lazily against the serializer bindings while rendering.
package query
