package errors

import (
	"strings"
	"unicode"
)

// maxTypeNameLength bounds type names accepted from the command line.
const maxTypeNameLength = 256

// ValidateTypeName validates a schema type name supplied by a caller,
// typically the pivot resource of a decomposition.
//
// The rules are conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "type name cannot be empty")
	}
	if len(name) > maxTypeNameLength {
		return New(ErrCodeInvalidInput, "type name too long (max %d characters)", maxTypeNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "type name contains invalid control characters")
		}
	}
	return nil
}

// SafeFileName converts a type name into a file name component.
// Subgraph names may contain dots and slashes (anonymous schemas are named
// after their owner), which must not be interpreted as path separators.
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':' || unicode.IsControl(r) || unicode.IsSpace(r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	s := strings.Trim(b.String(), ".")
	if s == "" {
		return "_"
	}
	return s
}
