package relation

import "testing"

func TestFileName(t *testing.T) {
	tests := []struct {
		desc Descriptor
		n    int
		want string
	}{
		{Worksheet, 3, "/xl/worksheets/sheet3.xml"},
		{Worksheet, 12, "/xl/worksheets/sheet12.xml"},
		{ImagePNG, 1, "/xl/media/image1.png"},
		{Workbook, 7, "/xl/workbook.xml"},
		{SheetHyperlinks, 2, ""},
		{Descriptor{DefaultName: "/a#/b#.xml"}, 4, "/a4/b#.xml"},
	}
	for _, tt := range tests {
		if got := tt.desc.FileName(tt.n); got != tt.want {
			t.Errorf("FileName(%q, %d) = %q, want %q", tt.desc.DefaultName, tt.n, got, tt.want)
		}
	}
}

func TestFileNameWithoutPlaceholder(t *testing.T) {
	for _, d := range All {
		if d.Indexed() {
			continue
		}
		for _, n := range []int{0, 1, 99} {
			if got := d.FileName(n); got != d.DefaultName {
				t.Errorf("%s: FileName(%d) = %q, want %q", d.RelationshipType, n, got, d.DefaultName)
			}
		}
	}
}

func TestPartIndex(t *testing.T) {
	tests := []struct {
		desc   Descriptor
		name   string
		want   int
		wantOK bool
	}{
		{Worksheet, "/xl/worksheets/sheet3.xml", 3, true},
		{Worksheet, "/xl/worksheets/sheet10.xml", 10, true},
		{Worksheet, "/xl/worksheets/sheet.xml", 0, false},
		{Worksheet, "/xl/worksheets/sheet0.xml", 0, false},
		{Worksheet, "/xl/worksheets/sheetX.xml", 0, false},
		{Worksheet, "/xl/worksheets/data.xml", 0, false},
		{Workbook, "/xl/workbook.xml", 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.desc.PartIndex(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("PartIndex(%q) = %d, %v; want %d, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPartIndexRoundTrip(t *testing.T) {
	for _, d := range All {
		if !d.Indexed() {
			continue
		}
		for _, n := range []int{1, 2, 42} {
			got, ok := d.PartIndex(d.FileName(n))
			if !ok || got != n {
				t.Errorf("%s: PartIndex(FileName(%d)) = %d, %v", d.DefaultName, n, got, ok)
			}
		}
	}
}
