// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrAlreadyVoted = errors.New("already voted from this address")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage fault")
)

// storageError keeps both ErrStorage and the driver error reachable via errors.Is/As
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// ValidationError names the offending field. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure from
// either supported driver.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
		// Primary result code only, when extended codes are not reported
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
	}

	var pe *pq.Error
	if errors.As(err, &pe) {
		return pe.Code == "23505"
	}

	return false
}
