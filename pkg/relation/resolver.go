package relation

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/observability"
	"github.com/matzehuels/sheetanchor/pkg/opc"
)

// Resolver follows relationships through a package graph.
//
// The registry is consulted only to classify what was found; the target
// itself always comes from the live graph. A Resolver holds no mutable
// state and may be shared between goroutines.
type Resolver struct {
	Registry *Registry
	Logger   *log.Logger
}

// NewResolver creates a resolver. A nil registry means [Standard]; a nil
// logger means log.Default().
func NewResolver(reg *Registry, logger *log.Logger) *Resolver {
	if reg == nil {
		reg = Standard()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{Registry: reg, Logger: logger}
}

// FetchContent opens the content of the part that source points to through
// its first relationship of type relType.
//
// When source has no such relationship, FetchContent logs a warning and
// returns found == false with a nil error. When the relationship exists but
// its target is malformed or missing from the package, the error carries
// errors.ErrCodeMalformedPackage. If several relationships match, the first
// in package order is used. The caller must close the returned reader.
func (r *Resolver) FetchContent(ctx context.Context, g opc.Graph, source opc.PartName, relType string) (io.ReadCloser, bool, error) {
	part, found, err := r.target(ctx, g, source, relType)
	if err != nil || !found {
		return nil, found, err
	}

	rc, err := part.Open()
	if err != nil {
		err = errors.Wrap(errors.ErrCodeIO, err, "open %s", part.Name())
		observability.Resolve().OnResolve(ctx, source.String(), relType, true, err)
		return nil, true, err
	}
	observability.Resolve().OnResolve(ctx, source.String(), relType, true, nil)
	return rc, true, nil
}

// Load fetches the target like FetchContent and builds the typed part for
// it. The part kind comes from the registry; an unregistered relationship
// type produces a BinaryPart.
func (r *Resolver) Load(ctx context.Context, g opc.Graph, source opc.PartName, relType string) (Part, bool, error) {
	part, found, err := r.target(ctx, g, source, relType)
	if err != nil || !found {
		return nil, found, err
	}

	rc, err := part.Open()
	if err != nil {
		err = errors.Wrap(errors.ErrCodeIO, err, "open %s", part.Name())
		observability.Resolve().OnResolve(ctx, source.String(), relType, true, err)
		return nil, true, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeIO, err, "read %s", part.Name())
		observability.Resolve().OnResolve(ctx, source.String(), relType, true, err)
		return nil, true, err
	}

	desc, _ := r.Registry.Lookup(relType)
	p, err := NewPart(desc.Kind, part.Name(), part.ContentType(), data)
	observability.Resolve().OnResolve(ctx, source.String(), relType, true, err)
	if err != nil {
		return nil, true, err
	}
	return p, true, nil
}

// target finds and resolves the first relationship of relType on source.
func (r *Resolver) target(ctx context.Context, g opc.Graph, source opc.PartName, relType string) (opc.Part, bool, error) {
	rels := g.RelationshipsByType(source, relType)
	if len(rels) == 0 {
		r.warnMissing(source, relType)
		observability.Resolve().OnResolve(ctx, source.String(), relType, false, nil)
		return nil, false, nil
	}
	if len(rels) > 1 {
		r.Logger.Debug("multiple relationships match, using first",
			"source", source, "relationship", relType, "count", len(rels), "id", rels[0].ID)
	}

	rel := rels[0]
	if rel.External {
		err := errors.New(errors.ErrCodeUnsupported, "relationship %s of %s targets external resource %q", rel.ID, source, rel.Target)
		observability.Resolve().OnResolve(ctx, source.String(), relType, true, err)
		return nil, true, err
	}

	name, err := opc.ResolvePartName(source, rel.Target)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeMalformedPackage, err, "relationship %s of %s", rel.ID, source)
		observability.Resolve().OnResolve(ctx, source.String(), relType, true, err)
		return nil, true, err
	}

	part, ok := g.Part(name)
	if !ok {
		err := errors.New(errors.ErrCodeMalformedPackage, "relationship %s of %s points to missing part %s", rel.ID, source, name)
		observability.Resolve().OnResolve(ctx, source.String(), relType, true, err)
		return nil, true, err
	}
	return part, true, nil
}

func (r *Resolver) warnMissing(source opc.PartName, relType string) {
	if d, ok := r.Registry.Lookup(relType); ok && d.DefaultName != "" {
		r.Logger.Warn("no part found", "source", source, "expected", d.DefaultName, "kind", d.Kind)
		return
	}
	r.Logger.Warn("no part found", "source", source, "relationship", relType)
}
