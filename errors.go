package aoc

import (
	"errors"
	"fmt"
)

// ErrInvalidLine is the cause of a ParseError for a line that doesn't have
// the fields a day expects.
var ErrInvalidLine = errors.New("invalid line format")

// ParseError reports input that doesn't match the shape a day expects.
type ParseError struct {
	Line int    // 1-based
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LookupError is returned when no solution is registered for a day.
type LookupError struct {
	Day int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("day %d not implemented", e.Day)
}

// ResourceError is returned when a day's input can't be opened or read.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reading input: %v", e.Err)
	}
	return fmt.Sprintf("reading input %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
