// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"strings"

	"github.com/creachadair/toon/ast"
	"github.com/creachadair/toon/repair"
)

// FromJSON converts JSON text into TOON text. Input that does not parse as
// JSON is first run through the repair package, so lightly malformed input
// such as trailing commas, comments, or unquoted keys still converts. In
// case of failure the error has concrete type *ConversionError.
func FromJSON(input string) (string, error) {
	v, err := ast.ParseString(input)
	if err != nil {
		fixed, rerr := repair.JSON(input)
		if rerr != nil {
			return "", &ConversionError{Direction: JSONToTOON, Err: rerr}
		}
		v, err = ast.ParseString(fixed)
		if err != nil {
			return "", &ConversionError{Direction: JSONToTOON, Err: err}
		}
	}
	out, err := Serialize(v)
	if err != nil {
		return "", &ConversionError{Direction: JSONToTOON, Err: err}
	}
	return out, nil
}

// ToJSON converts TOON text into pretty-printed JSON text. The input is
// structurally validated before parsing, except for the bare empty-container
// documents "{}" and "[]", which have no line shape but parse directly. In
// case of failure the error has concrete type *ConversionError.
func ToJSON(input string) (string, error) {
	if t := strings.TrimSpace(input); t == "{}" || t == "[]" {
		return t, nil
	}
	if line, ok := checkShape(input); !ok {
		return "", &ConversionError{
			Direction: TOONToJSON,
			Err:       &FormatError{Line: line, Message: "malformed line"},
		}
	}
	v, err := Parse(input)
	if err != nil {
		return "", &ConversionError{Direction: TOONToJSON, Err: err}
	}
	return ast.FormatToString(v), nil
}

// FormatJSON validates s as JSON and re-renders it with a two-space
// pretty-print. Member order is preserved.
func FormatJSON(s string) (string, error) {
	v, err := ast.ParseString(s)
	if err != nil {
		return "", err
	}
	return ast.FormatToString(v), nil
}

// ValidJSON reports whether s is valid JSON text.
func ValidJSON(s string) bool {
	_, err := ast.ParseString(s)
	return err == nil
}
