package reconcile

import (
	"errors"
	"fmt"
)

// RowErrorCode categorizes row errors.
type RowErrorCode string

const (
	// ErrCodeRowOverflow indicates a row was handed more items than it has columns.
	ErrCodeRowOverflow RowErrorCode = "ROW_OVERFLOW"

	// ErrCodeInvalidColumns indicates a row was configured with fewer than one column.
	ErrCodeInvalidColumns RowErrorCode = "INVALID_COLUMNS"
)

// RowError is returned when a row rejects its input. The row's snapshot and last
// plan are left untouched.
type RowError struct {
	// Code identifies the error category.
	Code RowErrorCode

	// Columns is the width of the row.
	Columns int

	// Got is the offending value (item count or column count).
	Got int
}

// Error implements the error interface.
func (e *RowError) Error() string {
	switch e.Code {
	case ErrCodeRowOverflow:
		return fmt.Sprintf("%s: %d items do not fit in %d columns", e.Code, e.Got, e.Columns)
	case ErrCodeInvalidColumns:
		return fmt.Sprintf("%s: row needs at least one column, got %d", e.Code, e.Got)
	default:
		return string(e.Code)
	}
}

// IsOverflow returns true if err is a row overflow error.
// Uses errors.As to handle wrapped errors.
func IsOverflow(err error) bool {
	var re *RowError
	if errors.As(err, &re) {
		return re.Code == ErrCodeRowOverflow
	}
	return false
}

// IsInvalidColumns returns true if err reports a bad column count.
func IsInvalidColumns(err error) bool {
	var re *RowError
	if errors.As(err, &re) {
		return re.Code == ErrCodeInvalidColumns
	}
	return false
}
