package anchor

import (
	"strings"
	"testing"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
	}
	for _, tt := range tests {
		if got := ColumnName(tt.col); got != tt.want {
			t.Errorf("ColumnName(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestGridAnchorString(t *testing.T) {
	a := GridAnchor{StartCol: 1, StartRow: 1, EndCol: 3, EndRow: 6}
	if got := a.String(); got != "B2:D7" {
		t.Errorf("String() = %q, want B2:D7", got)
	}
	if a.Columns() != 3 || a.Rows() != 6 {
		t.Errorf("span = %dx%d, want 3x6", a.Columns(), a.Rows())
	}
	if got := CellRef(-1, 0); got != "?" {
		t.Errorf("CellRef(-1, 0) = %q", got)
	}
}

func TestGridAnchorValidate(t *testing.T) {
	tests := []struct {
		name    string
		anchor  GridAnchor
		wantErr bool
	}{
		{"single cell", At(2, 3), false},
		{"range", GridAnchor{StartCol: 1, StartRow: 1, EndCol: 4, EndRow: 2}, false},
		{"negative start", GridAnchor{StartCol: -1}, true},
		{"end before start", GridAnchor{StartCol: 3, StartRow: 0, EndCol: 2, EndRow: 0}, true},
		{"end row before start row", GridAnchor{StartRow: 2, EndRow: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.anchor.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		ref     string
		col     int
		row     int
		wantErr bool
	}{
		{"A1", 0, 0, false},
		{"b2", 1, 1, false},
		{"$D$7", 3, 6, false},
		{"XFD1048576", 16383, 1048575, false},
		{"", 0, 0, true},
		{"A", 0, 0, true},
		{"12", 0, 0, true},
		{"A0", 0, 0, true},
		{"A-1", 0, 0, true},
		{"A1B", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			col, row, err := ParseCellRef(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCellRef(%q) err = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if err == nil && (col != tt.col || row != tt.row) {
				t.Errorf("ParseCellRef(%q) = (%d, %d), want (%d, %d)", tt.ref, col, row, tt.col, tt.row)
			}
			if err == nil && CellRef(col, row) != strings.ToUpper(strings.ReplaceAll(tt.ref, "$", "")) {
				t.Errorf("CellRef round trip of %q = %q", tt.ref, CellRef(col, row))
			}
		})
	}
}
