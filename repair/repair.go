// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package repair upgrades malformed JSON text into valid JSON text.
//
// Two repair strategies are applied in order: standardization of the HuJSON
// ("JSON with commas and comments") superset, which strips comments and
// trailing commas, and the jsonrepair heuristics, which additionally handle
// unquoted keys, single and smart quotes, and stray markdown fencing. If
// neither accepts the input as given, unclosed objects and arrays are closed
// at the end of the text and both strategies are retried on the balanced
// text.
package repair

import (
	"encoding/json"

	"github.com/creachadair/toon/ast"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tailscale/hujson"
)

// An Error is reported when no repair strategy produced valid JSON.
type Error struct {
	Message string // a human-readable description
}

func (e *Error) Error() string { return "repair: " + e.Message }

// JSON repairs the malformed JSON text in input and returns the repaired
// text, re-rendered with a two-space pretty-print. Already-valid input is
// returned pretty-printed. If no repair strategy yields valid JSON, it
// reports an error of concrete type *Error; a guessed or partial result is
// never returned silently.
func JSON(input string) (string, error) {
	if fixed, ok := fix(input); ok {
		return render(fixed)
	}
	if balanced := balance(input); balanced != input {
		if fixed, ok := fix(balanced); ok {
			return render(fixed)
		}
	}
	return "", &Error{Message: "no repair strategy produced valid JSON"}
}

// fix applies the repair strategies in order and returns the first output
// that is valid JSON.
func fix(input string) (string, bool) {
	if out, err := hujson.Standardize([]byte(input)); err == nil && json.Valid(out) {
		return string(out), true
	}
	if out, err := jsonrepair.JSONRepair(input); err == nil && json.Valid([]byte(out)) {
		return out, true
	}
	return "", false
}

// render pretty-prints repaired text, preserving member order.
func render(s string) (string, error) {
	v, err := ast.ParseString(s)
	if err != nil {
		return "", &Error{Message: err.Error()}
	}
	return ast.FormatToString(v), nil
}

// balance appends the closers for any objects and arrays left unclosed at
// the end of input. Brackets inside string literals do not count. Stray
// closers with no matching opener are left alone; the fixers get another
// chance at those.
func balance(input string) string {
	var open []byte // closers for unmatched opens, innermost last
	var inString, esc bool

	for i := 0; i < len(input); i++ {
		c := input[i]
		if inString {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			open = append(open, '}')
		case '[':
			open = append(open, ']')
		case '}', ']':
			if n := len(open); n > 0 && open[n-1] == c {
				open = open[:n-1]
			}
		}
	}
	if len(open) == 0 {
		return input
	}
	out := []byte(input)
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, open[i])
	}
	return string(out)
}
