package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxContentLength bounds a single node's content in bytes.
const MaxContentLength = 1 << 20

// ValidateContent validates a node's content block.
//
// Content may span several lines, so '\n' and '\r' are accepted. Every other
// control character is rejected because it has no fixed column width:
//   - No tabs, escape sequences or null bytes
//   - Valid UTF-8 only
//   - Maximum length of MaxContentLength bytes
func ValidateContent(content string) error {
	if len(content) > MaxContentLength {
		return New(ErrCodeInvalidTree, "content too long (max %d bytes)", MaxContentLength)
	}

	if !utf8.ValidString(content) {
		return New(ErrCodeInvalidTree, "content is not valid UTF-8")
	}

	for _, r := range content {
		if r == '\n' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTree, "content contains control character %U", r)
		}
	}

	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
