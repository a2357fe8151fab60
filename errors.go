package geo2wall

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is matched by every *EmptyInputError.
var ErrEmptyInput = errors.New("Empty geometry collection")

// ParseError is returned when an input file cannot be read or its format is
// not recognized.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyInputError is returned when a stage needs a centroid or bounding box
// of a collection without records.
type EmptyInputError struct {
	Stage string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, ErrEmptyInput)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// UnsupportedGeometryError is returned for geometries that are neither lines
// nor areas, such as points.
type UnsupportedGeometryError struct {
	Index  int
	Type   string
	Reason string
}

func (e *UnsupportedGeometryError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Unsupported geometry %s at feature %d: %s", e.Type, e.Index, e.Reason)
	}
	return fmt.Sprintf("Unsupported geometry %s at feature %d", e.Type, e.Index)
}

// UnresolvedCRSError is returned when geometries cannot be reprojected from
// the source reference system into the target one.
type UnresolvedCRSError struct {
	From string
	To   string
	Err  error
}

func (e *UnresolvedCRSError) Error() string {
	msg := fmt.Sprintf("Cannot reproject from %q to %q", e.From, e.To)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnresolvedCRSError) Unwrap() error {
	return e.Err
}
