package relation

import "sync"

// Registry maps relationship type URIs to descriptors.
//
// Registration happens during initialization only; Register is not safe to
// call concurrently with anything else. Once a registry is sealed it is
// read-only and Lookup may be called from any number of goroutines.
//
// The zero value is an empty registry ready to use.
type Registry struct {
	byType map[string]Descriptor
	order  []Descriptor
	sealed bool
}

// NewRegistry creates a registry and registers descs in order.
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{byType: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		r.Register(d)
	}
	return r
}

// Register inserts d if it has a part kind and no descriptor is registered
// for its relationship type yet. It reports whether d was inserted; a
// duplicate or kind-less descriptor is dropped without error.
//
// Register panics if the registry has been sealed.
func (r *Registry) Register(d Descriptor) bool {
	if r.sealed {
		panic("relation: Register called on sealed registry")
	}
	if d.Kind == KindNone || d.RelationshipType == "" {
		return false
	}
	if _, exists := r.byType[d.RelationshipType]; exists {
		return false
	}
	if r.byType == nil {
		r.byType = make(map[string]Descriptor)
	}
	r.byType[d.RelationshipType] = d
	r.order = append(r.order, d)
	return true
}

// Seal marks the registry read-only.
func (r *Registry) Seal() { r.sealed = true }

// Lookup returns the descriptor registered for relType. A miss means the
// relationship gets no specialized handling.
func (r *Registry) Lookup(relType string) (Descriptor, bool) {
	d, ok := r.byType[relType]
	return d, ok
}

// Descriptors returns the registered descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	return append([]Descriptor(nil), r.order...)
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int { return len(r.order) }

var (
	standardOnce sync.Once
	standard     *Registry
)

// Standard returns the sealed registry of all SpreadsheetML relations in
// [All]. It is built on first use.
func Standard() *Registry {
	standardOnce.Do(func() {
		standard = NewRegistry(All...)
		standard.Seal()
	})
	return standard
}
