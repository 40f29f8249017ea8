// Package units converts between the length units used by spreadsheet drawings.
//
// Drawing positions and extents are stored in English Metric Units (EMU):
// 914400 per inch, 12700 per point. Screen measurements are pixels at a
// device resolution (96 pixels per inch unless configured otherwise), row
// heights are points, and column widths are counted in characters of the
// default font.
package units

import "math"

const (
	// EMUPerInch is the number of EMUs in one inch.
	EMUPerInch = 914400

	// EMUPerPoint is the number of EMUs in one typographic point.
	EMUPerPoint = 12700

	// PointsPerInch is the typographic point resolution.
	PointsPerInch = 72

	// DefaultPixelsPerInch is the device resolution assumed by spreadsheet applications.
	DefaultPixelsPerInch = 96

	// EMUPerPixel is the EMU length of one pixel at DefaultPixelsPerInch.
	EMUPerPixel = EMUPerInch / DefaultPixelsPerInch

	// DefaultCharacterWidth is the pixel width of one character of the default
	// font (Calibri 11) used for column widths.
	DefaultCharacterWidth = 7.0017

	// DefaultColumnWidth is the width of an unset column, in characters.
	DefaultColumnWidth = 9.140625

	// DefaultRowHeight is the height of an unset row, in points.
	DefaultRowHeight = 15.0
)

// EMUPerPixelAt returns the EMU length of one pixel at the given resolution.
// A non-positive resolution falls back to DefaultPixelsPerInch.
func EMUPerPixelAt(ppi float64) float64 {
	if ppi <= 0 {
		ppi = DefaultPixelsPerInch
	}
	return EMUPerInch / ppi
}

// PixelsToEMU converts a pixel length to EMUs, truncating toward zero.
func PixelsToEMU(px, ppi float64) int64 {
	return int64(px * EMUPerPixelAt(ppi))
}

// EMUToPixels converts an EMU length to pixels.
func EMUToPixels(emu int64, ppi float64) float64 {
	return float64(emu) / EMUPerPixelAt(ppi)
}

// PointsToPixels converts a length in points to pixels.
func PointsToPixels(pt, ppi float64) float64 {
	if ppi <= 0 {
		ppi = DefaultPixelsPerInch
	}
	return pt * ppi / PointsPerInch
}

// CharsToPixels converts a column width in characters to pixels.
func CharsToPixels(chars, charWidth float64) float64 {
	if charWidth <= 0 {
		charWidth = DefaultCharacterWidth
	}
	return chars * charWidth
}

// ScaleToResolution rescales a pixel length recorded at dpi to the target
// resolution ppi. Unknown or invalid resolutions leave the length unchanged.
func ScaleToResolution(px, dpi, ppi float64) float64 {
	if dpi <= 0 || ppi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		return px
	}
	return px * ppi / dpi
}
