// Package relation classifies package relationships and follows them.
//
// # Descriptors and the registry
//
// A [Descriptor] records what a relationship type produces: its content type,
// the canonical name template of the target part, and the [PartKind] the
// library models it as. A [Registry] maps relationship type URIs to
// descriptors with first-registration-wins semantics; descriptors without a
// part kind (hyperlinks, embeddings, images of no specific format) are never
// inserted.
//
// [Standard] returns the process-wide registry of SpreadsheetML relations. It
// is built exactly once, sealed, and may then be read from any goroutine.
// Applications that need extra relations build their own with [NewRegistry]
// and pass it explicitly.
//
//	d, ok := relation.Standard().Lookup(relation.Worksheet.RelationshipType)
//	if ok {
//	    fmt.Println(d.FileName(3)) // /xl/worksheets/sheet3.xml
//	}
//
// # Resolution
//
// A [Resolver] follows the first relationship of a given type from a source
// part through a live [opc.Graph]. A missing relationship is not an error: it
// is logged and reported through the found flag. A relationship whose target
// cannot be resolved means the container is corrupt and is returned as
// errors.ErrCodeMalformedPackage.
//
// [Resolver.Load] additionally builds a typed [Part] with [NewPart], the
// factory keyed on [PartKind].
package relation
