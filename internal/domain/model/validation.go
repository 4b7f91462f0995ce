package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrValidation is wrapped by every field constraint violation returned from
// Validate methods. Callers classify with errors.Is.
var ErrValidation = errors.New("validation failed")

// validateBoundedText checks that a short text field is non-blank and at most
// maxLen characters long. Length is counted in runes, not bytes.
func validateBoundedText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s must not be blank", ErrValidation, field)
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		return fmt.Errorf("%w: %s has %d characters, at most %d allowed", ErrValidation, field, n, maxLen)
	}
	return nil
}
