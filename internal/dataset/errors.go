package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDataset indicates the file has a header but no data rows.
var ErrEmptyDataset = errors.New("dataset has no rows")

// ErrNegativeSize indicates a negative 90s-played count.
var ErrNegativeSize = errors.New("90s played must be non-negative")

// MissingColumnsError lists required columns absent after header normalization.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: [%s]", strings.Join(e.Missing, " "))
}

// ParseError describes a cell that could not be read as a number.
// Row is 1-based and does not count the header.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, errInvalidNumber) {
		return fmt.Sprintf("row %d, column %s: %q: %v", e.Row, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("row %d, column %s: invalid number %q", e.Row, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FieldCountError reports a data row carrying more values than the header has
// columns. Row is 1-based and does not count the header.
type FieldCountError struct {
	Row  int
	Got  int
	Want int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("row %d: expected %d fields, saw %d", e.Row, e.Want, e.Got)
}

var errInvalidNumber = errors.New("invalid number")
