package application

import (
	"fmt"
	"strings"
	"time"

	"taskquest/internal/domain"
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

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "taskID" -> "task ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"taskID":      "task ID",
		"description": "description",
		"deadline":    "deadline",
		"urgency":     "urgency",
		"importance":  "importance",
		"points":      "points",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateDate checks that a non-empty value is a YYYY-MM-DD calendar date
func ValidateDate(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(value)); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a date like 2025-01-10, got: %s", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidateRating checks that a rating is Low, Medium or High
func ValidateRating(fieldName string, r domain.Rating) error {
	if !r.Valid() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be Low, Medium or High, got: %q", formatFieldName(fieldName), string(r)),
		}
	}
	return nil
}

// ParseRatingField parses a rating, reporting failures as a ValidationError
func ParseRatingField(fieldName, value string) (domain.Rating, error) {
	r, err := domain.ParseRating(value)
	if err != nil {
		return "", &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be Low, Medium or High, got: %q", formatFieldName(fieldName), value),
		}
	}
	return r, nil
}

// ValidateTask checks a task record against the rules applied on add and edit
func ValidateTask(t domain.Task) error {
	if err := ValidateRequired("description", t.Description); err != nil {
		return err
	}
	if err := ValidateDate("deadline", t.Deadline); err != nil {
		return err
	}
	if err := ValidateRating("urgency", t.Urgency); err != nil {
		return err
	}
	return ValidateRating("importance", t.Importance)
}

// ValidateNewTask checks the fields of a task about to be added
func ValidateNewTask(n domain.NewTask) error {
	return ValidateTask(domain.Task{
		Description: n.Description,
		Deadline:    n.Deadline,
		Urgency:     n.Urgency,
		Importance:  n.Importance,
	})
}
