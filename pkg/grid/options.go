package grid

import (
	"math"

	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/units"
)

// Sheet size limits of the file format.
const (
	MaxColumns = 16384
	MaxRows    = 1048576
)

// Options configures unit conversion and the fitting bounds.
type Options struct {
	// PixelsPerInch is the device resolution. Default: 96.
	PixelsPerInch float64

	// DefaultColumnWidth is the width of unset columns, in characters.
	DefaultColumnWidth float64

	// CharacterWidth is the pixel width of one character. Default: 7.0017.
	CharacterWidth float64

	// DefaultRowHeight is the height of unset rows, in points. Default: 15.
	DefaultRowHeight float64

	// MaxColumns and MaxRows bound how far a fit may walk. Indices at or
	// beyond the bound are never examined.
	MaxColumns int
	MaxRows    int
}

// DefaultOptions returns the options of a default spreadsheet.
func DefaultOptions() Options {
	var o Options
	o.SetDefaults()
	return o
}

// SetDefaults fills zero fields with default values.
func (o *Options) SetDefaults() {
	if o.PixelsPerInch == 0 {
		o.PixelsPerInch = units.DefaultPixelsPerInch
	}
	if o.DefaultColumnWidth == 0 {
		o.DefaultColumnWidth = units.DefaultColumnWidth
	}
	if o.CharacterWidth == 0 {
		o.CharacterWidth = units.DefaultCharacterWidth
	}
	if o.DefaultRowHeight == 0 {
		o.DefaultRowHeight = units.DefaultRowHeight
	}
	if o.MaxColumns == 0 {
		o.MaxColumns = MaxColumns
	}
	if o.MaxRows == 0 {
		o.MaxRows = MaxRows
	}
}

// Validate checks that every measurement is positive and finite.
func (o Options) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"pixels per inch", o.PixelsPerInch},
		{"default column width", o.DefaultColumnWidth},
		{"character width", o.CharacterWidth},
		{"default row height", o.DefaultRowHeight},
	} {
		if !positive(f.v) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %v", f.name, f.v)
		}
	}
	if o.MaxColumns <= 0 || o.MaxRows <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid limits must be positive, got %d columns and %d rows", o.MaxColumns, o.MaxRows)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
