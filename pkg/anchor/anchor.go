// Package anchor resizes pictures anchored to a sheet's cell grid.
//
// A picture's placement is stored twice: as a [GridAnchor] (start and end
// cells with sub-cell offsets) and as a [ShapeTransform] (absolute position
// and extent in EMUs). A [Resizer] recomputes both from the picture's native
// pixel size and a scale factor. The start corner never moves; only the end
// corner and the extent change.
//
// Images whose size cannot be read degrade to a zero-size picture: the end
// cell collapses onto the start cell and the extent becomes zero. Resizing
// never fails because of an unreadable payload.
package anchor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/sheetanchor/pkg/errors"
)

// GridAnchor positions a shape relative to the cell grid. Offsets are EMUs
// from the top-left corner of the respective cell.
type GridAnchor struct {
	StartCol int   `json:"start_col"`
	StartRow int   `json:"start_row"`
	StartDx  int64 `json:"start_dx"`
	StartDy  int64 `json:"start_dy"`
	EndCol   int   `json:"end_col"`
	EndRow   int   `json:"end_row"`
	EndDx    int64 `json:"end_dx"`
	EndDy    int64 `json:"end_dy"`
}

// At returns a single-cell anchor at the given zero-based column and row.
func At(col, row int) GridAnchor {
	return GridAnchor{StartCol: col, StartRow: row, EndCol: col, EndRow: row}
}

// Validate checks that the indices are non-negative and that the end
// corner does not precede the start corner.
func (a GridAnchor) Validate() error {
	if a.StartCol < 0 || a.StartRow < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "anchor start %s is negative", a.startRef())
	}
	if a.EndCol < a.StartCol || a.EndRow < a.StartRow {
		return errors.New(errors.ErrCodeInvalidInput, "anchor end (%d, %d) precedes start %s", a.EndCol, a.EndRow, a.startRef())
	}
	return nil
}

// Columns returns the number of columns the anchor touches.
func (a GridAnchor) Columns() int { return a.EndCol - a.StartCol + 1 }

// Rows returns the number of rows the anchor touches.
func (a GridAnchor) Rows() int { return a.EndRow - a.StartRow + 1 }

// String formats the anchor as a cell range such as "B2:D7".
func (a GridAnchor) String() string {
	return CellRef(a.StartCol, a.StartRow) + ":" + CellRef(a.EndCol, a.EndRow)
}

func (a GridAnchor) startRef() string {
	return fmt.Sprintf("(%d, %d)", a.StartCol, a.StartRow)
}

// ShapeTransform is a shape's absolute position and extent in EMUs.
type ShapeTransform struct {
	X  int64 `json:"x"`
	Y  int64 `json:"y"`
	CX int64 `json:"cx"`
	CY int64 `json:"cy"`
}

// Picture is an anchored picture. Its anchor and transform are only ever
// updated together.
type Picture struct {
	Anchor    GridAnchor     `json:"anchor"`
	Transform ShapeTransform `json:"transform"`
}

// CellRef returns the A1-style reference of a zero-based column and row.
func CellRef(col, row int) string {
	if col < 0 || row < 0 {
		return "?"
	}
	return ColumnName(col) + fmt.Sprint(row+1)
}

// ColumnName returns the letter name of a zero-based column index
// (0 is "A", 26 is "AA").
func ColumnName(col int) string {
	var buf [8]byte
	i := len(buf)
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// ParseCellRef parses an A1-style reference such as "C12" into a zero-based
// column and row. Lowercase letters and "$" markers are accepted.
func ParseCellRef(ref string) (col, row int, err error) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(ref), "$", ""))
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A') + 1
		if col > 1<<20 {
			return 0, 0, errors.New(errors.ErrCodeInvalidInput, "column of %q is out of range", ref)
		}
		i++
	}
	if i == 0 || i == len(s) {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid cell reference %q", ref)
	}
	n, convErr := strconv.Atoi(s[i:])
	if convErr != nil || n < 1 || s[i] == '+' || s[i] == '-' {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid row in cell reference %q", ref)
	}
	return col - 1, n - 1, nil
}
