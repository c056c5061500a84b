package errors

import (
	"strings"
	"unicode"
)

// MaxNameLength bounds node names in layout documents.
const MaxNameLength = 128

// ValidateName validates a layout node name.
//
// Names appear in SVG ids, DOT node ids and cache keys, so the rules are
// conservative:
//   - No empty names
//   - No control characters or whitespace
//   - No quotes, angle brackets or slashes
//   - Maximum length of MaxNameLength characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "node name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "node name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "node name %q contains whitespace or control characters", name)
		}
	}

	if i := strings.IndexAny(name, `"'<>&/\`); i >= 0 {
		return New(ErrCodeInvalidName, "node name %q contains invalid character %q", name, name[i])
	}

	return nil
}

// ValidatePath validates a document path received over the API.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
