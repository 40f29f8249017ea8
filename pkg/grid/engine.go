package grid

import "github.com/matzehuels/sheetanchor/pkg/units"

// Engine converts a sheet's column widths and row heights to pixels and
// fits pixel lengths onto them.
type Engine struct {
	sizes SizeSource
	opts  Options
}

// NewEngine creates an engine over sizes. A nil sizes means every column
// and row has the default size. Zero option fields take default values.
func NewEngine(sizes SizeSource, opts Options) (*Engine, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if sizes == nil {
		sizes = emptySheet{}
	}
	return &Engine{sizes: sizes, opts: opts}, nil
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// EMUPerPixel returns the EMU length of one pixel at the engine's resolution.
func (e *Engine) EMUPerPixel() float64 {
	return units.EMUPerPixelAt(e.opts.PixelsPerInch)
}

// ColumnPixels returns the width of column index in pixels.
func (e *Engine) ColumnPixels(index int) float64 {
	chars, ok := e.sizes.ColumnWidth(index)
	if !ok {
		chars = e.opts.DefaultColumnWidth
	}
	return units.CharsToPixels(chars, e.opts.CharacterWidth)
}

// RowPixels returns the height of row index in pixels.
func (e *Engine) RowPixels(index int) float64 {
	pt, ok := e.sizes.RowHeight(index)
	if !ok {
		pt = e.opts.DefaultRowHeight
	}
	return units.PointsToPixels(pt, e.opts.PixelsPerInch)
}

// Columns returns the column axis.
func (e *Engine) Columns() Axis {
	return Axis{Name: "column", Length: e.ColumnPixels, Limit: e.opts.MaxColumns, PixelsPerInch: e.opts.PixelsPerInch}
}

// Rows returns the row axis.
func (e *Engine) Rows() Axis {
	return Axis{Name: "row", Length: e.RowPixels, Limit: e.opts.MaxRows, PixelsPerInch: e.opts.PixelsPerInch}
}

// FitColumns finds where a width of px pixels starting at the left edge of
// column start ends.
func (e *Engine) FitColumns(start int, px float64) (Landing, error) {
	return e.Columns().Fit(start, px)
}

// FitRows finds where a height of px pixels starting at the top edge of
// row start ends.
func (e *Engine) FitRows(start int, px float64) (Landing, error) {
	return e.Rows().Fit(start, px)
}

// ColumnOffset returns the distance in pixels from the sheet's left edge to
// the left edge of column index.
func (e *Engine) ColumnOffset(index int) (float64, error) {
	return e.Columns().Span(0, index)
}

// RowOffset returns the distance in pixels from the sheet's top edge to the
// top edge of row index.
func (e *Engine) RowOffset(index int) (float64, error) {
	return e.Rows().Span(0, index)
}
