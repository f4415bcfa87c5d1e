package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long (max 100 characters)")
	ErrInvalidFrequency = errors.New("desired weekly frequency must be at least 1")
)

// ValidateGoalTitle validates a goal title and returns it trimmed
func ValidateGoalTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return "", ErrTitleRequired
	}

	if utf8.RuneCountInString(trimmed) > 100 {
		return "", ErrTitleTooLong
	}

	return trimmed, nil
}

func ValidateWeeklyFrequency(freq int) error {
	if freq < 1 {
		return ErrInvalidFrequency
	}
	return nil
}

// IsValidationError reports whether err came from this package.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrInvalidFrequency)
}
