// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"fmt"

	"github.com/creachadair/toon/ast"
)

// ErrDepthExceeded is reported when parsing or serialization exceeds the
// maximum permitted depth of container nesting. Use errors.Is to test for it.
var ErrDepthExceeded = ast.ErrDepthExceeded

// A FormatError is reported for text that violates the TOON grammar.
type FormatError struct {
	Line    int    // 1-based line number where the error was detected
	Message string // a human-readable description
	Err     error  // underlying cause, if any
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("toon: line %d: %s", e.Line, e.Message)
}

// Unwrap returns the underlying cause of the error, if any.
func (e *FormatError) Unwrap() error { return e.Err }

// A Direction identifies which way a conversion was attempted.
type Direction int

// Constants defining the valid Direction values.
const (
	JSONToTOON Direction = iota + 1 // convert JSON text to TOON text
	TOONToJSON                      // convert TOON text to JSON text
)

func (d Direction) String() string {
	switch d {
	case JSONToTOON:
		return "json to toon"
	case TOONToJSON:
		return "toon to json"
	default:
		return "unknown direction"
	}
}

// A ConversionError wraps an error from a conversion with the direction that
// was attempted.
type ConversionError struct {
	Direction Direction
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: %v", e.Direction, e.Err)
}

// Unwrap returns the underlying cause of the conversion failure.
func (e *ConversionError) Unwrap() error { return e.Err }
