package opc

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/matzehuels/sheetanchor/pkg/errors"
)

// Relationship is a typed edge from a source part to a target.
type Relationship struct {
	ID       string // per-source identifier, e.g. "rId3"
	Type     string // relationship type URI
	Target   string // target reference as stored, possibly relative
	External bool   // target lives outside the package (hyperlinks)
}

// Part is a named unit of content inside a package.
type Part interface {
	Name() PartName
	ContentType() string
	// Open returns a fresh reader over the part's content.
	Open() (io.ReadCloser, error)
}

// Graph is the read-only view of a package used by relationship resolution.
type Graph interface {
	// RelationshipsByType returns the outgoing relationships of source with
	// the given type, in package order.
	RelationshipsByType(source PartName, relType string) []Relationship

	// Part returns the part with the given name.
	Part(name PartName) (Part, bool)
}

// Package is an in-memory part graph. It is safe for concurrent use.
type Package struct {
	mu    sync.RWMutex
	parts map[PartName]*memPart
	rels  map[PartName][]Relationship
}

// New creates an empty package.
func New() *Package {
	return &Package{
		parts: make(map[PartName]*memPart),
		rels:  make(map[PartName][]Relationship),
	}
}

// AddPart stores content under name, replacing any existing part.
func (p *Package) AddPart(name, contentType string, data []byte) (PartName, error) {
	pn, err := NewPartName(name)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.parts[pn] = &memPart{name: pn, contentType: contentType, data: data}
	return pn, nil
}

// RemovePart deletes a part. Relationships pointing at it are left dangling.
func (p *Package) RemovePart(name PartName) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.parts, name)
	delete(p.rels, name)
}

// AddRelationship appends an internal relationship from source to target
// and assigns it the next free "rIdN" identifier of that source. The target
// is stored verbatim; it is only resolved when followed.
func (p *Package) AddRelationship(source PartName, relType, target string) (Relationship, error) {
	return p.addRelationship(source, relType, target, false)
}

// AddExternalRelationship appends a relationship whose target is outside the package.
func (p *Package) AddExternalRelationship(source PartName, relType, target string) (Relationship, error) {
	return p.addRelationship(source, relType, target, true)
}

func (p *Package) addRelationship(source PartName, relType, target string, external bool) (Relationship, error) {
	if relType == "" {
		return Relationship{}, errors.New(errors.ErrCodeInvalidInput, "relationship type cannot be empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if source != Root {
		if _, ok := p.parts[source]; !ok {
			return Relationship{}, errors.New(errors.ErrCodeNotFound, "source part %s does not exist", source)
		}
	}

	rel := Relationship{
		ID:       fmt.Sprintf("rId%d", len(p.rels[source])+1),
		Type:     relType,
		Target:   target,
		External: external,
	}
	p.rels[source] = append(p.rels[source], rel)
	return rel, nil
}

// Relationships returns all outgoing relationships of source.
func (p *Package) Relationships(source PartName) []Relationship {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Relationship(nil), p.rels[source]...)
}

// RelationshipsByType implements Graph.
func (p *Package) RelationshipsByType(source PartName, relType string) []Relationship {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []Relationship
	for _, r := range p.rels[source] {
		if r.Type == relType {
			out = append(out, r)
		}
	}
	return out
}

// Part implements Graph.
func (p *Package) Part(name PartName) (Part, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	part, ok := p.parts[name]
	if !ok {
		return nil, false
	}
	return part, true
}

// PartNames returns the names of all parts in lexical order.
func (p *Package) PartNames() []PartName {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]PartName, 0, len(p.parts))
	for n := range p.parts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

type memPart struct {
	name        PartName
	contentType string
	data        []byte
}

func (m *memPart) Name() PartName      { return m.name }
func (m *memPart) ContentType() string { return m.contentType }

func (m *memPart) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

var _ Graph = (*Package)(nil)
