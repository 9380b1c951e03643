// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon

import "strings"

// Valid reports whether input is structurally plausible TOON text: every
// non-blank line is indented by an even number of spaces, and is either an
// array-item line or contains a key-value separator.
//
// Valid is purely syntactic. It does not verify length annotations or that
// indentation nests correctly; it is intended as a fast pre-check before
// invoking the full parser.
func Valid(input string) bool {
	_, ok := checkShape(input)
	return ok
}

// checkShape scans input for the first structurally invalid line, returning
// its line number. It reports true if all lines are plausible.
func checkShape(input string) (int, bool) {
	for sc := NewLineScanner(input); sc.Next(); {
		if sc.Indent()%2 != 0 {
			return sc.LineNum(), false
		}
		if t := sc.Text(); !strings.HasPrefix(t, "- ") && !strings.Contains(t, ":") {
			return sc.LineNum(), false
		}
	}
	return 0, true
}
