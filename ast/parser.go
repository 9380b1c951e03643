// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/toon/internal/escape"

	"go4.org/mem"
)

// ErrDepthExceeded is reported when parsing or serialization exceeds the
// maximum permitted depth of container nesting. Use errors.Is to test for it.
var ErrDepthExceeded = errors.New("nesting depth exceeded")

// MaxNestingDepth is the maximum depth of container nesting the parsers and
// serializers in this module will process before failing.
const MaxNestingDepth = 500

// A SyntaxError is reported for input that violates the JSON grammar.
type SyntaxError struct {
	Offset  int    // byte offset where the error was detected
	Message string // a human-readable description
	Err     error  // underlying cause, if any
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json: offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying cause of the error, if any.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse parses a single JSON value from r. It is an error if r contains
// anything other than whitespace after the first value.
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}

// ParseString parses a single JSON value from s. It is an error if s contains
// anything other than whitespace after the first value.
func ParseString(s string) (Value, error) {
	p := &parser{in: s}
	p.skipSpace()
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.in) {
		return nil, p.failf("extra input after value")
	}
	return v, nil
}

// A parser is a cursor over JSON source text.
type parser struct {
	in  string
	pos int
}

func (p *parser) failf(msg string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Message: fmt.Sprintf(msg, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) {
		switch p.in[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue(depth int) (Value, error) {
	if depth > MaxNestingDepth {
		return nil, &SyntaxError{Offset: p.pos, Message: ErrDepthExceeded.Error(), Err: ErrDepthExceeded}
	}
	if p.pos >= len(p.in) {
		return nil, p.failf("unexpected end of input")
	}
	switch c := p.in[p.pos]; {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case c == 't':
		return Bool(true), p.parseLiteral("true")
	case c == 'f':
		return Bool(false), p.parseLiteral("false")
	case c == 'n':
		return Null{}, p.parseLiteral("null")
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.failf("unexpected character %q", c)
	}
}

func (p *parser) parseObject(depth int) (Value, error) {
	p.pos++ // consume "{"
	obj := Object{}
	p.skipSpace()
	if p.pos < len(p.in) && p.in[p.pos] == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipSpace()
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.in) || p.in[p.pos] != ':' {
			return nil, p.failf("missing %q in object member", ":")
		}
		p.pos++
		p.skipSpace()
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		obj = append(obj, &Member{Key: key, Value: val})

		p.skipSpace()
		if p.pos >= len(p.in) {
			return nil, p.failf("unclosed object")
		}
		switch p.in[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.failf("unexpected character %q in object", p.in[p.pos])
		}
	}
}

func (p *parser) parseArray(depth int) (Value, error) {
	p.pos++ // consume "["
	arr := Array{}
	p.skipSpace()
	if p.pos < len(p.in) && p.in[p.pos] == ']' {
		p.pos++
		return arr, nil
	}
	for {
		p.skipSpace()
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		p.skipSpace()
		if p.pos >= len(p.in) {
			return nil, p.failf("unclosed array")
		}
		switch p.in[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.failf("unexpected character %q in array", p.in[p.pos])
		}
	}
}

// parseString consumes a quoted string and returns its decoded content.
func (p *parser) parseString() (string, error) {
	if p.pos >= len(p.in) || p.in[p.pos] != '"' {
		return "", p.failf("expected string")
	}
	start := p.pos + 1
	i := start
	for i < len(p.in) {
		switch p.in[i] {
		case '\\':
			i += 2 // skip the escaped character
		case '"':
			dec, err := escape.Unquote(mem.S(p.in[start:i]))
			if err != nil {
				return "", p.failf("invalid string: %v", err)
			}
			p.pos = i + 1
			return string(dec), nil
		default:
			i++
		}
	}
	return "", p.failf("unterminated string")
}

func (p *parser) parseLiteral(lit string) error {
	if len(p.in)-p.pos < len(lit) || p.in[p.pos:p.pos+len(lit)] != lit {
		return p.failf("invalid literal")
	}
	p.pos += len(lit)
	return nil
}

func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	for p.pos < len(p.in) {
		switch c := p.in[p.pos]; {
		case c >= '0' && c <= '9', c == '-', c == '+', c == '.', c == 'e', c == 'E':
			p.pos++
		default:
			goto done
		}
	}
done:
	f, err := strconv.ParseFloat(p.in[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return nil, p.failf("invalid number %q", p.in[start:min(start+20, len(p.in))])
	}
	return Number(f), nil
}
