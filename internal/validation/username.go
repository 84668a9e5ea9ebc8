package validation

import (
	"errors"
	"strings"
)

// ValidateUsername checks account name constraints.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)

	if len(trimmed) < 3 {
		return errors.New("username must be at least 3 characters long")
	}

	if len(trimmed) > 80 {
		return errors.New("username is too long (max 80 characters)")
	}

	return nil
}
