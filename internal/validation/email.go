package validation

import (
	"errors"
	"strings"
)

// ValidateEmail validates an optional account email. An empty string is
// allowed (accounts work without email); anything else must at least look
// like an address.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}

	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	if !strings.Contains(email, "@") {
		return errors.New("invalid email address")
	}

	return nil
}
