// Package repository contains the SQL data access layer. Every query on an
// owned record filters by both the record id and the owner's user id; a
// record id alone never authorizes access.
package repository

import (
	"strings"
)

// isUniqueViolation detects unique constraint failures for both SQLite and
// PostgreSQL drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
