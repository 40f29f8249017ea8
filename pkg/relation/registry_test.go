package relation

import "testing"

func TestRegistryFirstWins(t *testing.T) {
	a := Descriptor{RelationshipType: "urn:t", ContentType: "a", Kind: KindStyles}
	b := Descriptor{RelationshipType: "urn:t", ContentType: "b", Kind: KindTheme}

	tests := []struct {
		name  string
		order []Descriptor
		want  string
	}{
		{"a then b", []Descriptor{a, b}, "a"},
		{"b then a", []Descriptor{b, a}, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(tt.order...)
			got, ok := r.Lookup("urn:t")
			if !ok {
				t.Fatal("Lookup missed")
			}
			if got.ContentType != tt.want {
				t.Errorf("ContentType = %q, want %q", got.ContentType, tt.want)
			}
			if r.Len() != 1 {
				t.Errorf("Len = %d, want 1", r.Len())
			}
		})
	}
}

func TestRegistryZeroValue(t *testing.T) {
	var r Registry

	if _, ok := r.Lookup(Styles.RelationshipType); ok {
		t.Error("empty registry found a descriptor")
	}
	if !r.Register(Styles) {
		t.Fatal("Register on zero value rejected")
	}
	if got, ok := r.Lookup(Styles.RelationshipType); !ok || got != Styles {
		t.Errorf("Lookup = %+v, %v", got, ok)
	}
	if r.Len() != 1 || len(r.Descriptors()) != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	if r.Register(Descriptor{RelationshipType: "urn:none"}) {
		t.Error("kind-less descriptor was inserted")
	}
	if _, ok := r.Lookup("urn:none"); ok {
		t.Error("kind-less descriptor is visible")
	}
	if r.Register(Descriptor{Kind: KindTable}) {
		t.Error("descriptor without relationship type was inserted")
	}
	if !r.Register(Descriptor{RelationshipType: "urn:table", Kind: KindTable}) {
		t.Error("first registration rejected")
	}
	if r.Register(Descriptor{RelationshipType: "urn:table", Kind: KindChart}) {
		t.Error("duplicate registration accepted")
	}
}

func TestRegistrySealed(t *testing.T) {
	r := NewRegistry(Styles)
	r.Seal()

	defer func() {
		if recover() == nil {
			t.Error("Register on sealed registry did not panic")
		}
	}()
	r.Register(Theme)
}

func TestRegistryDescriptorsOrder(t *testing.T) {
	r := NewRegistry(Styles, Theme, SharedStrings)
	got := r.Descriptors()
	want := []Descriptor{Styles, Theme, SharedStrings}
	if len(got) != len(want) {
		t.Fatalf("Descriptors() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Descriptors()[%d] = %v, want %v", i, got[i].RelationshipType, want[i].RelationshipType)
		}
	}

	got[0] = Descriptor{}
	if r.Descriptors()[0] != Styles {
		t.Error("Descriptors() exposes internal state")
	}
}

func TestStandard(t *testing.T) {
	std := Standard()
	if std != Standard() {
		t.Error("Standard() is not a singleton")
	}
	if got := std.Len(); got != 23 {
		t.Errorf("Len = %d, want 23", got)
	}

	tests := []struct {
		relType string
		want    Descriptor
	}{
		{RelOfficeDocument, Workbook},
		{RelImage, ImageEMF},
		{Worksheet.RelationshipType, Worksheet},
		{Drawings.RelationshipType, Drawings},
		{VBAMacros.RelationshipType, VBAMacros},
		{CustomProperties.RelationshipType, CustomProperties},
	}
	for _, tt := range tests {
		got, ok := std.Lookup(tt.relType)
		if !ok {
			t.Errorf("Lookup(%q) missed", tt.relType)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %+v, want %+v", tt.relType, got, tt.want)
		}
	}

	for _, d := range []Descriptor{SheetHyperlinks, OLEEmbeddings, PackEmbeddings} {
		if _, ok := std.Lookup(d.RelationshipType); ok {
			t.Errorf("Lookup(%q) hit a kind-less relation", d.RelationshipType)
		}
	}
	if _, ok := std.Lookup("urn:unknown"); ok {
		t.Error("unknown relationship type resolved")
	}
}

func TestStandardSealed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Standard() registry accepts registrations")
		}
	}()
	Standard().Register(Descriptor{RelationshipType: "urn:late", Kind: KindTable})
}

func TestAllDescriptorsConsistent(t *testing.T) {
	for _, d := range All {
		if d.RelationshipType == "" {
			t.Errorf("descriptor %+v has no relationship type", d)
		}
		if d.Kind == KindNone {
			continue
		}
		if !d.Kind.Valid() {
			t.Errorf("%s: invalid kind %d", d.RelationshipType, d.Kind)
		}
		if d.ContentType == "" || d.DefaultName == "" {
			t.Errorf("%s: modeled part without content type or name", d.RelationshipType)
		}
	}
}

func TestPartKindString(t *testing.T) {
	if got := KindPictureData.String(); got != "picture-data" {
		t.Errorf("String() = %q", got)
	}
	if got := PartKind(-1).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
	if KindNone.Valid() || kindCount.Valid() {
		t.Error("Valid() accepts sentinel kinds")
	}
}
