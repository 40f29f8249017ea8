// Package opc models the part graph of a document package: named parts,
// their content, and the typed relationships between them.
//
// The package is deliberately small. It does not read or write zip
// containers; callers that load a real document populate a [Package] (or
// provide their own [Graph]) and hand it to the relation resolver.
//
// # Part names
//
// Part names are absolute, slash-separated paths such as
// "/xl/worksheets/sheet1.xml". [NewPartName] validates them and
// [ResolvePartName] turns a relationship target, which may be relative to
// the source part ("../media/image1.png"), into the part name it points to.
//
// # Relationships
//
// Each part, and the package itself ([Root]), owns an ordered list of
// outgoing relationships. Order is insertion order and is the order in which
// [Graph.RelationshipsByType] reports matches.
package opc
