package errors

import (
	"strings"
	"unicode"
)

// ValidateElementID validates an element identifier from a panel manifest.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - Maximum length of 128 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidElement, "element id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidElement, "element id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidElement, "element id contains invalid characters: %q", id)
		}
	}

	return nil
}

// ValidateMaterialName validates a material name referenced by a manifest.
// Names must be simple identifiers without path separators, so they can be
// passed to backends verbatim.
func ValidateMaterialName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "material name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "material name cannot contain path separators: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "material name contains control characters")
		}
	}

	return nil
}
