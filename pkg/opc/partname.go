package opc

import (
	"net/url"
	"path"
	"strings"

	"github.com/matzehuels/sheetanchor/pkg/errors"
)

// PartName is the absolute name of a part inside a package.
type PartName string

// Root is the pseudo part name that owns package-level relationships.
const Root PartName = "/"

// NewPartName validates s and returns it as a PartName.
func NewPartName(s string) (PartName, error) {
	if err := errors.ValidatePartName(s); err != nil {
		return "", err
	}
	return PartName(s), nil
}

// String returns the part name as a plain string.
func (n PartName) String() string { return string(n) }

// Dir returns the directory portion of the name ("/xl/worksheets" for
// "/xl/worksheets/sheet1.xml"). The directory of Root is Root.
func (n PartName) Dir() string {
	if n == Root {
		return "/"
	}
	return path.Dir(string(n))
}

// Base returns the last path segment of the name.
func (n PartName) Base() string {
	return path.Base(string(n))
}

// Ext returns the lowercased file extension without the dot.
func (n PartName) Ext() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(string(n)), "."))
}

// ResolvePartName resolves a relationship target against the part that owns
// the relationship. Absolute targets ("/xl/workbook.xml") are taken as-is;
// relative targets are joined to the source's directory. Percent-escapes are
// decoded per segment. A target that encodes a "/", climbs above the package
// root, carries a scheme or query, or does not form a valid part name is
// rejected with ErrCodeInvalidPartName.
func ResolvePartName(source PartName, target string) (PartName, error) {
	if target == "" {
		return "", errors.New(errors.ErrCodeInvalidPartName, "empty relationship target")
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPartName, err, "parse target %q", target)
	}
	if u.Scheme != "" || u.Host != "" || u.RawQuery != "" {
		return "", errors.New(errors.ErrCodeInvalidPartName, "target %q is not a package-internal reference", target)
	}

	// Split before decoding so an escaped "/" cannot add a segment.
	raw := u.EscapedPath()
	var segs []string
	if !strings.HasPrefix(raw, "/") {
		for _, seg := range strings.Split(source.Dir(), "/") {
			if seg != "" {
				segs = append(segs, seg)
			}
		}
	}
	for _, escaped := range strings.Split(raw, "/") {
		seg, err := url.PathUnescape(escaped)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPartName, err, "parse target %q", target)
		}
		if strings.Contains(seg, "/") {
			return "", errors.New(errors.ErrCodeInvalidPartName, "target %q encodes a path separator", target)
		}
		switch seg {
		case "", ".":
		case "..":
			if len(segs) == 0 {
				return "", errors.New(errors.ErrCodeInvalidPartName, "target %q escapes the package root from %s", target, source)
			}
			segs = segs[:len(segs)-1]
		default:
			segs = append(segs, seg)
		}
	}
	if strings.HasSuffix(raw, "/") {
		return "", errors.New(errors.ErrCodeInvalidPartName, "target %q names a directory", target)
	}

	return NewPartName("/" + strings.Join(segs, "/"))
}
