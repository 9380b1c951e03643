// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/toon/ast"
)

// isNumeric reports whether s is a decimal number: an optional sign, digits
// with at most one decimal point, and an optional exponent. This one
// predicate decides both when the parser reads a token as a Number and when
// the serializer must quote a string to keep it from reading back as one.
func isNumeric(s string) bool {
	i, digits := 0, 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseScalar converts one scalar token into a value. The literals true,
// false, and null map to their constants; numeric tokens map to numbers; a
// double-quoted token is unescaped; a single-quoted token has its delimiters
// stripped with no escape processing; anything else is a bare string.
func parseScalar(s string) ast.Value {
	switch s {
	case "true":
		return ast.Bool(true)
	case "false":
		return ast.Bool(false)
	case "null":
		return ast.Null{}
	}
	if isNumeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
			return ast.Number(f)
		}
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if dec, err := Unquote(s); err == nil {
			return ast.String(dec)
		}
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return ast.String(s[1 : len(s)-1])
	}
	return ast.String(s)
}

// encodeScalar renders a scalar value as one TOON token.
func encodeScalar(v ast.Value) string {
	switch t := v.(type) {
	case ast.Bool:
		return t.JSON()
	case ast.Number:
		return t.JSON()
	case ast.String:
		if needsQuote(string(t)) {
			return Quote(string(t))
		}
		return string(t)
	default:
		return "null"
	}
}

// isScalar reports whether v has no children.
func isScalar(v ast.Value) bool {
	switch v.(type) {
	case ast.Null, ast.Bool, ast.Number, ast.String:
		return true
	}
	return false
}

// needsQuote reports whether a string value must be quoted to survive a round
// trip: strings that read back as a different kind of scalar, and strings
// containing any byte outside the bare-safe class.
func needsQuote(s string) bool {
	switch s {
	case "", "true", "false", "null":
		return true
	}
	if isNumeric(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; !isWordByte(c) && c != '.' {
			return true
		}
	}
	return false
}

// parseInline converts inline field-value or item text into a value: the
// empty containers, a comma-separated inline array, or a single scalar.
func parseInline(s string) ast.Value {
	switch s {
	case "[]":
		return ast.Array{}
	case "{}":
		return ast.Object{}
	}
	if hasUnquotedComma(s) && !isQuotedWhole(s) {
		parts := splitInline(s)
		arr := make(ast.Array, len(parts))
		for i, p := range parts {
			arr[i] = parseScalar(p)
		}
		return arr
	}
	return parseScalar(s)
}

// splitInline splits s on commas that fall outside quoted spans. A quoted
// span opens at a single or double quotation mark and closes at the next
// matching mark not preceded by a backslash.
func splitInline(s string) []string {
	var parts []string
	start := 0
	var q byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if q != 0 {
			if c == q && s[i-1] != '\\' {
				q = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			q = c
		case ',':
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// hasUnquotedComma reports whether s contains a comma outside quoted spans.
func hasUnquotedComma(s string) bool {
	var q byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if q != 0 {
			if c == q && s[i-1] != '\\' {
				q = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			q = c
		case ',':
			return true
		}
	}
	return false
}

// isQuotedWhole reports whether s is a single quoted string in its entirety,
// so that a comma inside it is literal text rather than a separator.
func isQuotedWhole(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	if q != '"' && q != '\'' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] == q && s[i-1] != '\\' {
			return i == len(s)-1
		}
	}
	return false
}
