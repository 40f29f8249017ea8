package anchor

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/grid"
	"github.com/matzehuels/sheetanchor/pkg/imagesize"
	"github.com/matzehuels/sheetanchor/pkg/observability"
	"github.com/matzehuels/sheetanchor/pkg/units"
)

// Resizer fits pictures onto a sheet's grid. It holds no mutable state;
// concurrent resizes of different pictures are safe. Resizes of the same
// picture must be serialized by the caller.
type Resizer struct {
	Grid    *grid.Engine
	Decoder *imagesize.Decoder
	Logger  *log.Logger
}

// NewResizer creates a resizer over engine. A nil decoder decodes without a
// cache; a nil logger means log.Default().
func NewResizer(engine *grid.Engine, dec *imagesize.Decoder, logger *log.Logger) *Resizer {
	if logger == nil {
		logger = log.Default()
	}
	if dec == nil {
		dec = imagesize.NewDecoder(nil, logger)
	}
	return &Resizer{Grid: engine, Decoder: dec, Logger: logger}
}

// Resize computes the anchor and transform of a picture of native pixel
// size drawn at scale, keeping the start corner of current.
//
// Fitting starts at the left and top edges of the start cell; the start
// offsets are carried over unchanged and only contribute to the absolute
// position. scale must be positive and finite. A zero native size yields an
// anchor whose end cell is the start cell and a zero extent.
func (r *Resizer) Resize(ctx context.Context, current GridAnchor, scale float64, native imagesize.Size) (GridAnchor, ShapeTransform, error) {
	start := time.Now()
	observability.Resize().OnResizeStart(ctx, scale)

	a, t, err := r.resize(current, scale, native)
	if err != nil {
		observability.Resize().OnResizeComplete(ctx, 0, 0, time.Since(start), err)
		return GridAnchor{}, ShapeTransform{}, err
	}

	observability.Resize().OnResizeComplete(ctx, a.Columns(), a.Rows(), time.Since(start), nil)
	r.Logger.Debug("resized picture", "anchor", a.String(), "cx", t.CX, "cy", t.CY, "scale", scale)
	return a, t, nil
}

// ResizePicture decodes the image in payload and resizes to its native size.
// An unreadable payload is logged and treated as a zero-size image.
func (r *Resizer) ResizePicture(ctx context.Context, current GridAnchor, scale float64, payload io.Reader) (GridAnchor, ShapeTransform, error) {
	info := r.Decoder.DecodeOrZero(ctx, payload)
	return r.Resize(ctx, current, scale, info.Size(r.Grid.Options().PixelsPerInch))
}

// Apply resizes p in place. On error p is left untouched.
func (r *Resizer) Apply(ctx context.Context, p *Picture, scale float64, native imagesize.Size) error {
	a, t, err := r.Resize(ctx, p.Anchor, scale, native)
	if err != nil {
		return err
	}
	p.Anchor, p.Transform = a, t
	return nil
}

func (r *Resizer) resize(current GridAnchor, scale float64, native imagesize.Size) (GridAnchor, ShapeTransform, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return GridAnchor{}, ShapeTransform{}, errors.New(errors.ErrCodeInvalidInput, "scale must be a positive finite number, got %v", scale)
	}
	if !validLength(native.Width) || !validLength(native.Height) {
		return GridAnchor{}, ShapeTransform{}, errors.New(errors.ErrCodeInvalidInput, "invalid native size %vx%v px", native.Width, native.Height)
	}
	if current.StartCol < 0 || current.StartRow < 0 {
		return GridAnchor{}, ShapeTransform{}, errors.New(errors.ErrCodeInvalidInput, "anchor start %s is negative", current.startRef())
	}

	size := native.Scale(scale)
	col, err := r.Grid.FitColumns(current.StartCol, size.Width)
	if err != nil {
		return GridAnchor{}, ShapeTransform{}, err
	}
	row, err := r.Grid.FitRows(current.StartRow, size.Height)
	if err != nil {
		return GridAnchor{}, ShapeTransform{}, err
	}

	x, err := r.Grid.ColumnOffset(current.StartCol)
	if err != nil {
		return GridAnchor{}, ShapeTransform{}, err
	}
	y, err := r.Grid.RowOffset(current.StartRow)
	if err != nil {
		return GridAnchor{}, ShapeTransform{}, err
	}

	ppi := r.Grid.Options().PixelsPerInch
	a := current
	a.EndCol, a.EndDx = col.Index, col.Offset
	a.EndRow, a.EndDy = row.Index, row.Offset

	t := ShapeTransform{
		X:  units.PixelsToEMU(x, ppi) + current.StartDx,
		Y:  units.PixelsToEMU(y, ppi) + current.StartDy,
		CX: units.PixelsToEMU(size.Width, ppi),
		CY: units.PixelsToEMU(size.Height, ppi),
	}
	return a, t, nil
}

func validLength(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
