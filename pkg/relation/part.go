package relation

import (
	"context"

	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/imagesize"
	"github.com/matzehuels/sheetanchor/pkg/opc"
)

// Part is a loaded package part of a known kind.
type Part interface {
	Name() opc.PartName
	Kind() PartKind
	Bytes() []byte
}

// XMLPart holds the raw markup of an XML part. Parsing the markup is left
// to the caller.
type XMLPart struct {
	name        opc.PartName
	kind        PartKind
	ContentType string
	Data        []byte
}

func (p *XMLPart) Name() opc.PartName { return p.name }
func (p *XMLPart) Kind() PartKind     { return p.kind }
func (p *XMLPart) Bytes() []byte      { return p.Data }

// SheetPart is a worksheet or chartsheet. Number is the sheet's position in
// the canonical naming scheme ("sheet3.xml" is 3), or 0 when the part uses a
// non-canonical name.
type SheetPart struct {
	XMLPart
	Number int
}

// PictureData is an embedded raster or vector image.
type PictureData struct {
	name        opc.PartName
	ContentType string
	Data        []byte
}

func (p *PictureData) Name() opc.PartName { return p.name }
func (p *PictureData) Kind() PartKind     { return KindPictureData }
func (p *PictureData) Bytes() []byte      { return p.Data }

// Extension returns the lowercased file extension of the part name.
func (p *PictureData) Extension() string { return p.name.Ext() }

// Info decodes the image header with dec.
func (p *PictureData) Info(ctx context.Context, dec *imagesize.Decoder) (imagesize.Info, error) {
	return dec.DecodeBytes(ctx, p.Data)
}

// BinaryPart holds opaque binary content: macro projects, control
// binaries, printer settings, and parts whose relationship is unclassified.
type BinaryPart struct {
	name        opc.PartName
	kind        PartKind
	ContentType string
	Data        []byte
}

func (p *BinaryPart) Name() opc.PartName { return p.name }
func (p *BinaryPart) Kind() PartKind     { return p.kind }
func (p *BinaryPart) Bytes() []byte      { return p.Data }

// NewPart builds the concrete part type for kind. KindNone yields a
// BinaryPart; an undeclared kind is rejected.
func NewPart(kind PartKind, name opc.PartName, contentType string, data []byte) (Part, error) {
	switch kind {
	case KindNone, KindVBAProject, KindActiveXBinary, KindPrinterSettings, KindCustomProperties:
		return &BinaryPart{name: name, kind: kind, ContentType: contentType, Data: data}, nil
	case KindPictureData:
		return &PictureData{name: name, ContentType: contentType, Data: data}, nil
	case KindWorksheet:
		return newSheetPart(Worksheet, kind, name, contentType, data), nil
	case KindChartsheet:
		return newSheetPart(Chartsheet, kind, name, contentType, data), nil
	}
	if !kind.Valid() {
		return nil, errors.New(errors.ErrCodeUnsupported, "no part type for kind %d", int(kind))
	}
	return &XMLPart{name: name, kind: kind, ContentType: contentType, Data: data}, nil
}

func newSheetPart(d Descriptor, kind PartKind, name opc.PartName, contentType string, data []byte) *SheetPart {
	n, _ := d.PartIndex(name.String())
	return &SheetPart{
		XMLPart: XMLPart{name: name, kind: kind, ContentType: contentType, Data: data},
		Number:  n,
	}
}
