package errors

import (
	"strings"
	"unicode"
)

// ValidateFontName validates a font name before it is used to touch the
// file system. The path resolver itself accepts any string; this check is
// for callers (the CLI, a bundling step) that go on to stat or open the
// resolved path and want to reject names that could escape the fonts
// directory.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No path separators
//   - Maximum length of 256 characters
func ValidateFontName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFont, "font name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidFont, "font name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFont, "font name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidFont, "font name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateBaseDir validates a configured base directory.
// It rejects empty values and embedded null bytes; everything else is left
// to the file system to judge.
func ValidateBaseDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidConfig, "base directory cannot be empty")
	}
	if strings.ContainsRune(dir, 0) {
		return New(ErrCodeInvalidConfig, "base directory contains a null byte")
	}
	return nil
}
