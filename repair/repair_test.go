// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package repair

import (
	"errors"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Valid", `{"a": 1}`, "{\n  \"a\": 1\n}"},
		{"TrailingComma", `{"a":1,}`, "{\n  \"a\": 1\n}"},
		{"ArrayComma", `[1, 2, 3,]`, "[\n  1,\n  2,\n  3\n]"},
		{"LineComment", "{\n// a comment\n\"a\": 1\n}", "{\n  \"a\": 1\n}"},
		{"BlockComment", `{"a": /* inline */ 1}`, "{\n  \"a\": 1\n}"},
		{"UnquotedKey", `{a: 1}`, "{\n  \"a\": 1\n}"},
		{"SingleQuotes", `{'a': 'b'}`, "{\n  \"a\": \"b\"\n}"},
		{"UnclosedObject", `{"a": 1`, "{\n  \"a\": 1\n}"},
		{"UnclosedNested", `{"a": [1, {"b": 2`, "{\n  \"a\": [\n    1,\n    {\n      \"b\": 2\n    }\n  ]\n}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := JSON(tc.input)
			if err != nil {
				t.Fatalf("JSON(%q): unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("JSON(%q):\ngot:  %#q\nwant: %#q", tc.input, got, tc.want)
			}
		})
	}
}

func TestJSONError(t *testing.T) {
	got, err := JSON("")
	if err == nil {
		t.Fatalf("JSON: got %q, wanted error", got)
	}
	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Errorf("Error %v is not a repair Error", err)
	}
	t.Logf("- [expected]: %v", err)
}

func TestBalance(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{`{"a": 1}`, `{"a": 1}`},
		{`{"a": 1`, `{"a": 1}`},
		{`[1, 2`, `[1, 2]`},
		{`{"a": [1, {"b": 2`, `{"a": [1, {"b": 2}]}`},
		{`[{}, [`, `[{}, []]`},

		// Brackets inside string literals do not count.
		{`{"a": "}"`, `{"a": "}"}`},
		{`{"a": "[["`, `{"a": "[["}`},
		{`{"a": "\"{"`, `{"a": "\"{"}`},

		// Stray closers are left for the fixers to reject.
		{`}`, `}`},
		{`{"a": 1}]`, `{"a": 1}]`},
		{`[}`, `[}]`},
	}
	for _, tc := range tests {
		if got := balance(tc.input); got != tc.want {
			t.Errorf("balance(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}
