// Package errhandling provides error types and classification for the
// extraction pipeline. Every fault raised by the pipeline is a
// *ClassifiedError carrying a category, an error code, and the wrapped
// cause, so callers can branch on category with errors.As while the
// original error chain stays intact.
package errhandling

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the type/category of an error.
type ErrorCategory string

// Error categories. None of them are retried; the category determines
// the message shape and the exit path, not a recovery strategy.
const (
	// CategoryConfiguration represents an invalid configuration
	// (required key missing). Raised at construction time.
	CategoryConfiguration ErrorCategory = "configuration"

	// CategoryFileAccess represents an unreadable source or unwritable
	// destination path.
	CategoryFileAccess ErrorCategory = "file_access"

	// CategoryParse represents malformed configuration or table content.
	CategoryParse ErrorCategory = "parse"

	// CategoryMissingColumn represents a configured or feature-dependency
	// column absent from the loaded table.
	CategoryMissingColumn ErrorCategory = "missing_column"

	// CategoryTypeCoercion represents a cell that cannot be converted to
	// its declared scalar type.
	CategoryTypeCoercion ErrorCategory = "type_coercion"

	// CategoryEmptyInput represents a source table file with no readable
	// data at all.
	CategoryEmptyInput ErrorCategory = "empty_input"
)

// Error codes carried in structured logs alongside the category.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeFileAccess    = "FILE_ACCESS"
	CodeParseFailed   = "PARSE_FAILED"
	CodeMissingColumn = "MISSING_COLUMN"
	CodeTypeCoercion  = "TYPE_COERCION"
	CodeEmptyInput    = "EMPTY_INPUT"
)

// ClassifiedError wraps an error with classification metadata.
type ClassifiedError struct {
	// Category is the error classification category.
	Category ErrorCategory

	// Code is the error code (e.g., MISSING_COLUMN).
	Code string

	// Message is a human-readable error message.
	Message string

	// OriginalErr is the underlying error, nil if the fault originated here.
	OriginalErr error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Category, e.Message, e.OriginalErr)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

// Unwrap returns the original error for use with errors.Is and errors.As.
func (e *ClassifiedError) Unwrap() error {
	return e.OriginalErr
}

// NewConfigurationError creates a configuration fault with a fixed message.
func NewConfigurationError(message string) *ClassifiedError {
	return &ClassifiedError{
		Category: CategoryConfiguration,
		Code:     CodeConfigInvalid,
		Message:  message,
	}
}

// NewFileAccessError creates a file access fault for the given path.
func NewFileAccessError(path string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:    CategoryFileAccess,
		Code:        CodeFileAccess,
		Message:     fmt.Sprintf("cannot access %q", path),
		OriginalErr: err,
	}
}

// NewParseError creates a parse fault.
func NewParseError(message string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:    CategoryParse,
		Code:        CodeParseFailed,
		Message:     message,
		OriginalErr: err,
	}
}

// NewMissingColumnError creates a missing column fault.
func NewMissingColumnError(column string) *ClassifiedError {
	return &ClassifiedError{
		Category: CategoryMissingColumn,
		Code:     CodeMissingColumn,
		Message:  fmt.Sprintf("column %q not found in table", column),
	}
}

// NewTypeCoercionError creates a type coercion fault naming the column,
// the row (0-based data row), and the offending cell text.
func NewTypeCoercionError(column string, row int, text string, targetType string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:    CategoryTypeCoercion,
		Code:        CodeTypeCoercion,
		Message:     fmt.Sprintf("cannot convert %q to %s (column %q, row %d)", text, targetType, column, row),
		OriginalErr: err,
	}
}

// NewEmptyInputError wraps an empty-input condition with a friendlier
// message. This is the only fault that performs local recovery: the
// underlying condition is re-wrapped, everything else propagates verbatim.
func NewEmptyInputError(path string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:    CategoryEmptyInput,
		Code:        CodeEmptyInput,
		Message:     fmt.Sprintf("error reading CSV file %q: no columns to parse", path),
		OriginalErr: err,
	}
}

// CategoryOf returns the category of err if it is (or wraps) a
// ClassifiedError. Unclassified errors return an empty category.
func CategoryOf(err error) ErrorCategory {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category
	}
	return ""
}

// IsCategory reports whether err is a ClassifiedError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	return CategoryOf(err) == category
}

// CodeOf returns the error code of err, empty if unclassified.
func CodeOf(err error) string {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Code
	}
	return ""
}
