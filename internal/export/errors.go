package export

import "fmt"

// UnsupportedTypeError is returned when no extraction strategy matches the
// runtime type of the analysis result. It is fatal; there is no fallback
// extraction.
type UnsupportedTypeError struct {
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported analysis type: %s", e.TypeName)
}

// MalformedResultError is returned when an analysis result lacks an expected
// field or its fields disagree in shape.
type MalformedResultError struct {
	Field  string
	Reason string
}

func (e *MalformedResultError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("malformed analysis result: field %q %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed analysis result: missing field %q", e.Field)
}

// MissingColumnError is returned when metadata lacks a required column.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("metadata is missing required column %q", e.Column)
}

// IOError is returned when writing the export file fails.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to write export file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
