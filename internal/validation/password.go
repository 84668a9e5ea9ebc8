package validation

import (
	"errors"
)

// ValidatePassword validates password constraints.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}

	// bcrypt silently truncates input past 72 bytes, reject instead
	if len(password) > 72 {
		return errors.New("password must not exceed 72 characters")
	}

	return nil
}
