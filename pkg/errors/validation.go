package errors

import (
	"strings"
	"unicode"
)

// ValidateFilePrefix checks an artifact name prefix such as "BINTREE".
// The prefix becomes part of every output file name, so it must be a plain
// name without separators or control characters.
func ValidateFilePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidName, "file prefix cannot be empty")
	}
	if len(prefix) > 64 {
		return New(ErrCodeInvalidName, "file prefix too long (max 64 characters)")
	}
	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "file prefix contains control characters")
		}
		if unicode.IsDigit(r) {
			// Digits would blur the boundary with the session index.
			return New(ErrCodeInvalidName, "file prefix cannot contain digits: %q", prefix)
		}
	}
	if strings.ContainsAny(prefix, `/\:`) || strings.Contains(prefix, "..") {
		return New(ErrCodeInvalidName, "file prefix cannot contain path separators: %q", prefix)
	}
	return nil
}

// ValidateExtension checks an artifact extension such as ".html".
func ValidateExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return New(ErrCodeInvalidName, "extension must start with a dot: %q", ext)
	}
	for _, r := range ext[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidName, "extension contains invalid character %q", r)
		}
	}
	return nil
}
