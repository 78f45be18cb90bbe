package dted

import "fmt"

// FormatError reports a malformed DTED file. It is always fatal to the
// load that produced it; a corrupt file does not become valid on retry.
type FormatError struct {
	Message  string
	Record   int // zero-based data record index, -1 outside the record loop
	Expected int64
	Actual   int64
}

func (e *FormatError) Error() string {
	if e.Record >= 0 {
		return fmt.Sprintf("dted: %s (record %d, expected %d, got %d)", e.Message, e.Record, e.Expected, e.Actual)
	}
	return fmt.Sprintf("dted: %s", e.Message)
}

// NewFormatError creates a format error outside the data record loop.
func NewFormatError(message string) *FormatError {
	return &FormatError{Message: message, Record: -1}
}

// NewRecordError creates a format error scoped to a data record, carrying
// the expected and observed values for diagnosis.
func NewRecordError(message string, record int, expected, actual int64) *FormatError {
	return &FormatError{Message: message, Record: record, Expected: expected, Actual: actual}
}

// IndexError reports a grid access outside the decoded dimensions.
type IndexError struct {
	Axis  string // "longitude" or "latitude"
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dted: %s index %d outside grid [0,%d)", e.Axis, e.Index, e.Size)
}
