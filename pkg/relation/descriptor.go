package relation

import (
	"strconv"
	"strings"
)

// indexPlaceholder marks where the 1-based part number goes in a name template.
const indexPlaceholder = "#"

// Descriptor describes one relationship type. Empty strings stand for
// absent values: a hyperlink has neither a content type nor a default name.
type Descriptor struct {
	ContentType      string
	RelationshipType string
	DefaultName      string
	Kind             PartKind
}

// Indexed reports whether the default name contains the index placeholder,
// meaning a package may hold several numbered parts of this type.
func (d Descriptor) Indexed() bool {
	return strings.Contains(d.DefaultName, indexPlaceholder)
}

// FileName expands the name template for the 1-based part number n.
// A template without a placeholder names a single fixed part and is
// returned unchanged; an empty template yields "".
func (d Descriptor) FileName(n int) string {
	if !d.Indexed() {
		return d.DefaultName
	}
	return strings.Replace(d.DefaultName, indexPlaceholder, strconv.Itoa(n), 1)
}

// PartIndex is the inverse of FileName: it reports the part number encoded
// in name when name matches the indexed template.
func (d Descriptor) PartIndex(name string) (int, bool) {
	prefix, suffix, ok := strings.Cut(d.DefaultName, indexPlaceholder)
	if !ok || len(name) <= len(prefix)+len(suffix) {
		return 0, false
	}
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
		return 0, false
	}

	digits := name[len(prefix) : len(name)-len(suffix)]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
