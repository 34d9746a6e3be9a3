package security

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// MaxFilenameLength defines the maximum allowed length for uploaded filenames
	MaxFilenameLength = 255
)

// ValidateFilename validates an uploaded filename before it is used to build
// an on-disk path. It rejects empty names, path separators, traversal
// sequences and control characters.
func ValidateFilename(name string) error {
	if name == "" {
		return errors.New("filename is required")
	}

	if len(name) > MaxFilenameLength {
		return errors.New("filename too long")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.New("filename must not contain path separators")
	}

	if name == "." || name == ".." || strings.Contains(name, "..") {
		return errors.New("filename must not contain traversal sequences")
	}

	for _, char := range name {
		if unicode.IsControl(char) {
			return errors.New("filename contains invalid characters")
		}
	}

	return nil
}

// SanitizeFilename strips surrounding whitespace and drops control characters
// from an uploaded filename. It runs before ValidateFilename so cosmetic
// noise does not fail validation; structural problems still do.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
}
