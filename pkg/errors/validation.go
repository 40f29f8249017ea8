package errors

import (
	"strings"
	"unicode"
)

// maxPartNameLength bounds part names; real packages stay far below it.
const maxPartNameLength = 1024

// ValidatePartName validates a package part name such as "/xl/worksheets/sheet1.xml".
//
// Validation rules follow the part-name grammar of the container format:
//   - Name cannot be empty and must start with "/"
//   - Name cannot end with "/"
//   - No empty segments ("//")
//   - No "." or ".." segments, and no segment ending in "."
//   - No control characters or backslashes
func ValidatePartName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPartName, "part name cannot be empty")
	}
	if len(name) > maxPartNameLength {
		return New(ErrCodeInvalidPartName, "part name too long (max %d characters)", maxPartNameLength)
	}
	if !strings.HasPrefix(name, "/") {
		return New(ErrCodeInvalidPartName, "part name must start with /: %q", name)
	}
	if strings.HasSuffix(name, "/") {
		return New(ErrCodeInvalidPartName, "part name cannot end with /: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPartName, "part name contains invalid control characters")
		}
	}
	if strings.Contains(name, "\\") {
		return New(ErrCodeInvalidPartName, "part name cannot contain backslashes: %q", name)
	}

	for _, seg := range strings.Split(name[1:], "/") {
		switch {
		case seg == "":
			return New(ErrCodeInvalidPartName, "part name contains an empty segment: %q", name)
		case seg == "." || seg == "..":
			return New(ErrCodeInvalidPartName, "part name contains a relative segment: %q", name)
		case strings.HasSuffix(seg, "."):
			return New(ErrCodeInvalidPartName, "part name segment cannot end with a dot: %q", name)
		}
	}

	return nil
}
