// Package sideload side-loads related resources into a single response
// document. The resource serializers declare which relation fields are
// includable and which serializer renders each of them; the clients select
// the relations to expand with a comma-separated inclusion parameter of
// dot-delimited field paths, or request everything with the wildcard token.
//
// The rendered document carries the primary data together with the ordered
// collection of the sideloaded records. A resource reachable through many
// paths is serialized and emitted exactly once, with its relations replaced
// by the {type, id} reference stubs.
package sideload
