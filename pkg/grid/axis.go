package grid

import (
	"math"

	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/units"
)

// DefaultLimit bounds an Axis whose Limit is unset.
const DefaultLimit = MaxRows

// LengthFunc returns the pixel length of the cell at index.
type LengthFunc func(index int) float64

// Axis is one dimension of the grid.
type Axis struct {
	Name          string // "column" or "row", used in errors
	Length        LengthFunc
	Limit         int     // exclusive upper bound on indices; 0 means DefaultLimit
	PixelsPerInch float64 // resolution for EMU conversion; 0 means 96
}

// Landing is where a fitted length ends.
type Landing struct {
	Index  int     // cell containing the end point
	Pixels float64 // offset of the end point inside the cell, in pixels
	Offset int64   // Pixels converted to EMUs
}

// Fit walks forward from start, accumulating cell lengths, and stops at the
// first cell where the accumulated length reaches target pixels. If it
// overshoots, the landing offset is the part of that cell that is covered;
// if it lands exactly on the cell's far edge, the offset is zero.
//
// A zero target lands on start without reading any cell. Otherwise the walk
// fails with ErrCodeInvalidCellSize on a cell whose length is not positive
// and finite, and with ErrCodeGridOverflow when target does not fit before
// the axis limit.
func (a Axis) Fit(start int, target float64) (Landing, error) {
	if start < 0 {
		return Landing{}, errors.New(errors.ErrCodeInvalidInput, "%s index must not be negative, got %d", a.name(), start)
	}
	if target < 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return Landing{}, errors.New(errors.ErrCodeInvalidInput, "target length must be a finite non-negative number, got %v", target)
	}

	limit := a.limit()
	if start >= limit {
		return Landing{}, errors.New(errors.ErrCodeGridOverflow, "%s %d is beyond the limit %d", a.name(), start, limit)
	}
	if target == 0 {
		return Landing{Index: start}, nil
	}

	acc := 0.0
	for i := start; i < limit; i++ {
		cell := a.Length(i)
		if !positive(cell) {
			return Landing{}, errors.New(errors.ErrCodeInvalidCellSize, "%s %d has length %v px", a.name(), i, cell)
		}

		acc += cell
		if acc < target {
			continue
		}

		var px float64
		if acc > target {
			px = cell - (acc - target)
		}
		return Landing{Index: i, Pixels: px, Offset: units.PixelsToEMU(px, a.PixelsPerInch)}, nil
	}

	return Landing{}, errors.New(errors.ErrCodeGridOverflow,
		"%v px from %s %d does not fit before %s %d", target, a.name(), start, a.name(), limit)
}

// Span returns the summed pixel length of cells [from, to). Zero-length
// (hidden) cells contribute nothing; negative or non-finite lengths fail with
// ErrCodeInvalidCellSize.
func (a Axis) Span(from, to int) (float64, error) {
	if from < 0 || to < from {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s span [%d, %d)", a.name(), from, to)
	}
	if to > a.limit() {
		return 0, errors.New(errors.ErrCodeGridOverflow, "%s %d is beyond the limit %d", a.name(), to, a.limit())
	}

	total := 0.0
	for i := from; i < to; i++ {
		cell := a.Length(i)
		if cell < 0 || math.IsNaN(cell) || math.IsInf(cell, 0) {
			return 0, errors.New(errors.ErrCodeInvalidCellSize, "%s %d has length %v px", a.name(), i, cell)
		}
		total += cell
	}
	return total, nil
}

func (a Axis) limit() int {
	if a.Limit <= 0 {
		return DefaultLimit
	}
	return a.Limit
}

func (a Axis) name() string {
	if a.Name == "" {
		return "cell"
	}
	return a.Name
}
