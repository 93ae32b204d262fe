package services

import (
	"regexp"
	"strings"
)

var colorHex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// FieldIssue names a single invalid payload field.
type FieldIssue struct {
	Field   string
	Message string
}

// ValidationError aggregates payload issues so handlers can report
// field-level detail in one response.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid payload"
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Field + ": " + issue.Message
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

func validateName(field, name string, maxLen int, issues *[]FieldIssue) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) == 0 {
		*issues = append(*issues, FieldIssue{Field: field, Message: "must not be empty"})
	} else if len(trimmed) > maxLen {
		*issues = append(*issues, FieldIssue{Field: field, Message: "too long"})
	}
	return trimmed
}

func validateColor(color *string, issues *[]FieldIssue) {
	if color == nil {
		return
	}
	if !colorHex.MatchString(*color) {
		*issues = append(*issues, FieldIssue{Field: "color", Message: "must match #RRGGBB"})
	}
}
