// Package grid maps pixel lengths onto a sheet's column and row grid.
//
// A sheet's columns have widths measured in characters of the default font
// and its rows have heights measured in points; both fall back to defaults
// when unset. [Engine] converts them to pixels and finds where a length
// measured from a starting cell ends: the landing cell and the remaining
// offset inside it, expressed in EMUs.
//
// Fitting walks forward one cell at a time. Every walk is bounded by the
// axis limit (the sheet's maximum column or row count by default), and a
// non-positive cell length crossed by the walk is reported as
// errors.ErrCodeInvalidCellSize rather than looping forever. Hidden
// (zero-length) cells before the starting cell are fine, and a zero length
// lands on the starting cell without looking at it.
//
//	e, _ := grid.NewEngine(sheet, grid.DefaultOptions())
//	land, err := e.FitColumns(2, 150) // 150px to the right of column C
package grid
