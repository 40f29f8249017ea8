package grid

import "sync"

// SizeSource reports the explicitly set sizes of a sheet. ok is false for
// columns and rows that use the sheet default.
type SizeSource interface {
	ColumnWidth(index int) (chars float64, ok bool)
	RowHeight(index int) (points float64, ok bool)
}

// Sheet is an in-memory SizeSource. The zero value has no explicit sizes
// and is safe for concurrent use.
type Sheet struct {
	mu      sync.RWMutex
	widths  map[int]float64
	heights map[int]float64
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{}
}

// SetColumnWidth sets the width of a column, in characters.
func (s *Sheet) SetColumnWidth(index int, chars float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.widths == nil {
		s.widths = make(map[int]float64)
	}
	s.widths[index] = chars
}

// SetRowHeight sets the height of a row, in points.
func (s *Sheet) SetRowHeight(index int, points float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.heights == nil {
		s.heights = make(map[int]float64)
	}
	s.heights[index] = points
}

// ColumnWidth implements SizeSource.
func (s *Sheet) ColumnWidth(index int) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.widths[index]
	return w, ok
}

// RowHeight implements SizeSource.
func (s *Sheet) RowHeight(index int) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.heights[index]
	return h, ok
}

type emptySheet struct{}

func (emptySheet) ColumnWidth(int) (float64, bool) { return 0, false }
func (emptySheet) RowHeight(int) (float64, bool)   { return 0, false }
