// Package render implements the resource sideloading renderer. The renderer
// walks the relation graph of the primary resources along the parsed
// inclusion request, resolves the relation values through a repository,
// serializes every discovered resource exactly once and assembles the
// response document with the primary data and the sideloaded records.
package render
