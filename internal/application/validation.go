package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidatePosition checks that a record position is within the catalog.
func ValidatePosition(fieldName string, position, count int) error {
	if position < 0 || position >= count {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("position %d out of range (catalog has %d records)", position, count),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "findText" -> "find text")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"tag":         "tag",
		"oldTag":      "old tag",
		"newTag":      "new tag",
		"findText":    "find text",
		"replaceText": "replace text",
		"tags":        "tags",
		"positions":   "positions",
		"position":    "position",
		"directory":   "directory",
		"query":       "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
