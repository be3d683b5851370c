// Package mapping contains the resource and serializer contracts with their
// registration container. Serializers declare, per resource type, which
// relation fields may be sideloaded and which serializer renders the related
// resources. The container resolves these declarations by value during
// rendering, without any runtime reflection.
package mapping
