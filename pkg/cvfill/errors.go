package cvfill

import (
	"errors"
	"fmt"
	"strings"
)

// DocumentError represents an error reading or writing a docx package part.
type DocumentError struct {
	Part string
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("document error in %s: %v", e.Part, e.Err)
	}
	return fmt.Sprintf("document error: %v", e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a DocumentError for the given package part.
func NewDocumentError(part string, err error) *DocumentError {
	return &DocumentError{Part: part, Err: err}
}

// RowDeletionError records a table row that could not be removed. Renders
// carry on past these; the row stays in place.
type RowDeletionError struct {
	TableIndex int
	RowIndex   int
	Err        error
}

func (e *RowDeletionError) Error() string {
	return fmt.Sprintf("could not delete row %d of table %d: %v", e.RowIndex, e.TableIndex, e.Err)
}

func (e *RowDeletionError) Unwrap() error {
	return e.Err
}

// MultiError aggregates several errors into one.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Add appends an error, ignoring nil.
func (e *MultiError) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// ErrorOrNil returns the aggregate, or nil when nothing was added.
func (e *MultiError) ErrorOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// IsDocumentError reports whether err is a DocumentError.
func IsDocumentError(err error) bool {
	var de *DocumentError
	return errors.As(err, &de)
}
