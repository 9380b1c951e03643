// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"strconv"
	"strings"
)

// A Line is a single non-blank line of TOON input.
type Line struct {
	Num    int    // 1-based line number in the input
	Indent int    // count of leading spaces
	Text   string // content with surrounding whitespace removed
}

// A LineScanner iterates over the non-blank lines of TOON input, reporting
// the indentation and trimmed content of each. Blank lines are skipped.
type LineScanner struct {
	lines []Line
	cur   int
}

// NewLineScanner constructs a scanner over the lines of input.
func NewLineScanner(input string) *LineScanner {
	var lines []Line
	num := 0
	for len(input) > 0 {
		raw, rest, _ := strings.Cut(input, "\n")
		input = rest
		num++

		text := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if text == "" {
			continue
		}
		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}
		lines = append(lines, Line{Num: num, Indent: indent, Text: text})
	}
	return &LineScanner{lines: lines, cur: -1}
}

// Next advances s to the next non-blank line and reports whether one exists.
func (s *LineScanner) Next() bool {
	if s.cur+1 >= len(s.lines) {
		return false
	}
	s.cur++
	return true
}

// Text returns the trimmed content of the current line.
func (s *LineScanner) Text() string { return s.lines[s.cur].Text }

// Indent returns the indentation of the current line.
func (s *LineScanner) Indent() int { return s.lines[s.cur].Indent }

// LineNum returns the 1-based input line number of the current line.
func (s *LineScanner) LineNum() int { return s.lines[s.cur].Num }

// Peek returns the next non-blank line without advancing, if one exists.
func (s *LineScanner) Peek() (Line, bool) {
	if s.cur+1 >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[s.cur+1], true
}

// isItem reports whether trimmed line content is an array-item line.
func isItem(text string) bool {
	return text == "-" || strings.HasPrefix(text, "- ")
}

// itemRest returns the content of an array-item line after its marker.
func itemRest(text string) string {
	if text == "-" {
		return ""
	}
	return strings.TrimSpace(text[2:])
}

// cutField splits trimmed line content at its first colon. The key and value
// are returned with surrounding whitespace removed.
func cutField(text string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(text, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// cutAnnotation removes a trailing [N] length annotation from a key, if
// present, returning the remaining key text and the annotated length.
// It returns n < 0 when there is no annotation. The annotated length is not
// validated against anything here; most callers ignore it.
func cutAnnotation(key string) (string, int) {
	if !strings.HasSuffix(key, "]") {
		return key, -1
	}
	i := strings.LastIndexByte(key, '[')
	if i < 0 {
		return key, -1
	}
	n, err := strconv.Atoi(key[i+1 : len(key)-1])
	if err != nil || n < 0 {
		return key, -1
	}
	return key[:i], n
}

// isKeyToken reports whether s, less any length annotation, is a bare or
// quoted object key. The parser uses this to decide whether an array-item
// line opens an object ("- key: value") or carries a scalar.
func isKeyToken(s string) bool {
	key, _ := cutAnnotation(s)
	return isBareKey(key) || isQuotedKey(key)
}

// isBareKey reports whether s is a key that can be written unquoted.
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) {
			return false
		}
	}
	return true
}

// isQuotedKey reports whether s has the surface shape of a quoted key.
func isQuotedKey(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// parseKey strips the quotation from a quoted key. Keys that are not quoted,
// or whose quoting does not decode, are returned as written.
func parseKey(s string) string {
	if isQuotedKey(s) {
		if dec, err := Unquote(s); err == nil {
			return dec
		}
	}
	return s
}

func isWordByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
