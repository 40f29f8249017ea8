// Package pkg provides the core libraries of sheetanchor.
//
// # Overview
//
// Sheetanchor places pictures on spreadsheet grids. Given a picture's native
// pixel size, a scale factor, and the cell its top-left corner sits in, it
// computes the end cell, the offset inside that cell, and the absolute
// extent in English Metric Units. It also knows the relationship types that
// link the parts of a SpreadsheetML package and follows them through a
// package graph.
//
// # Architecture
//
//	opc.Package (parts + relationships)
//	         ↓
//	    [relation] Resolver (find the image part of a drawing)
//	         ↓
//	    [imagesize] Decoder (native pixel size, cached)
//	         ↓
//	    [anchor] Resizer → [grid] Engine (fit width and height onto the grid)
//	         ↓
//	    GridAnchor + ShapeTransform
//
// # Main Packages
//
// [relation] - The relationship type registry (first registration wins),
// indexed part name templates, the part factory, and the resolver.
//
// [opc] - Part names, relationship target resolution, and an in-memory
// package graph.
//
// [grid] - Column widths and row heights in pixels, and the fitting walk
// with its cell size and index guards.
//
// [anchor] - Grid anchors, shape transforms, and the resizer.
//
// [imagesize] - Image header decoding with resolution normalization.
//
// [units] - EMU, point, pixel, and character width conversions.
//
// [config] - TOML sheet geometry files.
//
// # Quick Start
//
//	engine, _ := grid.NewEngine(nil, grid.DefaultOptions())
//	r := anchor.NewResizer(engine, nil, nil)
//	a, t, _ := r.ResizePicture(ctx, anchor.At(1, 1), 0.5, f)
//	fmt.Println(a, t.CX, t.CY)
//
// [relation]: https://pkg.go.dev/github.com/matzehuels/sheetanchor/pkg/relation
// [opc]: https://pkg.go.dev/github.com/matzehuels/sheetanchor/pkg/opc
// [grid]: https://pkg.go.dev/github.com/matzehuels/sheetanchor/pkg/grid
// [anchor]: https://pkg.go.dev/github.com/matzehuels/sheetanchor/pkg/anchor
// [imagesize]: https://pkg.go.dev/github.com/matzehuels/sheetanchor/pkg/imagesize
// [units]: https://pkg.go.dev/github.com/matzehuels/sheetanchor/pkg/units
// [config]: https://pkg.go.dev/github.com/matzehuels/sheetanchor/pkg/config
package pkg
