package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// documentIDRegex matches valid diagram document IDs: UUIDs and other
// URL-safe slugs.
var documentIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateDocumentID validates a diagram document ID for safety and
// correctness. Document IDs become file names in the file-backed store and
// path segments in the HTTP API, so the rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateDocumentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDocument, "document ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidDocument, "document ID too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDocument, "document ID contains control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(ErrCodeInvalidDocument, "document ID contains path characters: %q", id)
	}

	if !documentIDRegex.MatchString(id) {
		return New(ErrCodeInvalidDocument, "invalid document ID: %q", id)
	}

	return nil
}

// ValidatePath validates a file path supplied on the command line or in a
// document. It prevents path traversal and ensures reasonable length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
