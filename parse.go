// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"fmt"
	"strings"

	"github.com/creachadair/toon/ast"
)

// Parse parses TOON text into a value with default settings.
func Parse(input string) (ast.Value, error) {
	var p Parser
	return p.Parse(input)
}

// A Parser carries the settings for parsing TOON text.
// A zero value is ready for use with default settings.
type Parser struct {
	// Strict, if true, verifies the [N] length annotation on array fields
	// against the number of items actually parsed, and rejects duplicate keys
	// within an object. By default annotations are ignored on input, and a
	// duplicate key appends another member with lookups resolving to the
	// first.
	Strict bool

	// MaxDepth is the maximum container nesting depth permitted before
	// parsing fails with ErrDepthExceeded. If zero, ast.MaxNestingDepth is
	// used.
	MaxDepth int
}

// A frame binds an in-progress container to the indentation at which it was
// opened. Exactly one of obj or arr is live, selected by isArray. When the
// frame is closed its finished value is delivered through attach, which
// writes it into the slot reserved for it in the parent container.
type frame struct {
	indent  int
	line    int  // line number of the header or marker line, for errors
	isArray bool
	want    int // annotated array length, or -1
	obj     ast.Object
	arr     ast.Array
	attach  func(ast.Value)
}

func (f *frame) value() ast.Value {
	if f.isArray {
		return f.arr
	}
	return f.obj
}

// newItem reserves the next element slot of the open array f and returns an
// object frame whose finished value will fill that slot.
func (f *frame) newItem(indent, line int) *frame {
	idx := len(f.arr)
	f.arr = append(f.arr, nil)
	return &frame{
		indent: indent,
		line:   line,
		want:   -1,
		attach: func(v ast.Value) { f.arr[idx] = v },
	}
}

// Parse parses TOON text into a value.
//
// Parsing maintains a stack of open containers. Each non-blank line first
// closes every frame opened at or inside its own indentation, with one
// exception: an open array at the same indentation keeps accepting item
// lines. The line then either adds an item to the enclosing array, adds a
// field to the enclosing object, or is skipped if it has neither shape.
//
// A document whose first item line arrives while the root is still an empty
// object turns the root into an array, so a bare list is a valid document.
func (p Parser) Parse(input string) (ast.Value, error) {
	// A document that is nothing but an empty container marker denotes that
	// container; neither marker has a line shape the loop below accepts.
	switch strings.TrimSpace(input) {
	case "[]":
		return ast.Array{}, nil
	case "{}":
		return ast.Object{}, nil
	}

	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = ast.MaxNestingDepth
	}

	var result ast.Value
	root := &frame{indent: -2, want: -1, attach: func(v ast.Value) { result = v }}
	stk := []*frame{root}

	push := func(f *frame) error {
		if len(stk) >= maxDepth {
			return &FormatError{Line: f.line, Message: ErrDepthExceeded.Error(), Err: ErrDepthExceeded}
		}
		stk = append(stk, f)
		return nil
	}
	pop := func() error {
		top := stk[len(stk)-1]
		stk = stk[:len(stk)-1]
		if p.Strict && top.isArray && top.want >= 0 && top.want != len(top.arr) {
			return &FormatError{Line: top.line,
				Message: fmt.Sprintf("array length mismatch: annotated %d, parsed %d", top.want, len(top.arr))}
		}
		top.attach(top.value())
		return nil
	}

	sc := NewLineScanner(input)
	for sc.Next() {
		ind, text := sc.Indent(), sc.Text()

		// Close frames this line is not inside of. An array whose marker
		// lines sit at this very indentation stays open for more items.
		for len(stk) > 1 {
			top := stk[len(stk)-1]
			if top.indent < ind || top.isArray && top.indent == ind && isItem(text) {
				break
			}
			if err := pop(); err != nil {
				return nil, err
			}
		}
		top := stk[len(stk)-1]

		switch {
		case isItem(text):
			if !top.isArray {
				if len(stk) == 1 && len(top.obj) == 0 {
					// A document may open directly with item lines; the root
					// becomes an array in place of the implicit empty object.
					top.isArray = true
				} else {
					continue // item line with no array to receive it
				}
			}
			rest := itemRest(text)
			if rest == "" {
				// A bare marker opens an empty object filled in by the
				// more-indented lines that follow.
				if err := push(top.newItem(ind, sc.LineNum())); err != nil {
					return nil, err
				}
				continue
			}
			if key, value, ok := cutField(rest); ok && isKeyToken(key) {
				// The item and its object's first field share the line.
				child := top.newItem(ind, sc.LineNum())
				if err := push(child); err != nil {
					return nil, err
				}
				grand, err := p.parseField(child, key, value, ind, sc)
				if err != nil {
					return nil, err
				}
				if grand != nil {
					if err := push(grand); err != nil {
						return nil, err
					}
				}
				continue
			}
			top.arr = append(top.arr, parseInline(rest))

		case strings.Contains(text, ":"):
			if top.isArray {
				continue // field line with no object to receive it
			}
			key, value, _ := cutField(text)
			child, err := p.parseField(top, key, value, ind, sc)
			if err != nil {
				return nil, err
			}
			if child != nil {
				if err := push(child); err != nil {
					return nil, err
				}
			}

		default:
			// Neither shape matches; the line is dropped.
		}
	}

	for len(stk) > 0 {
		if err := pop(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// parseField adds the field for one "key: value" line to the object frame fr.
// An inline value is resolved immediately and parseField returns nil. An
// empty value means a nested container follows: parseField looks ahead one
// line to choose between an array and an object, and returns the container's
// new frame, registered at the field line's indentation, for the caller to
// push.
func (p Parser) parseField(fr *frame, rawKey, value string, indent int, sc *LineScanner) (*frame, error) {
	key, want := cutAnnotation(rawKey)
	name := parseKey(key)
	if p.Strict && fr.obj.Find(name) != nil {
		return nil, &FormatError{Line: sc.LineNum(),
			Message: fmt.Sprintf("duplicate key %q", name)}
	}
	mem := &ast.Member{Key: name}
	fr.obj = append(fr.obj, mem)

	switch {
	case value == "":
		child := &frame{
			indent: indent,
			line:   sc.LineNum(),
			want:   want,
			attach: func(v ast.Value) { mem.Value = v },
		}
		if next, ok := sc.Peek(); ok && next.Indent >= indent && isItem(next.Text) {
			child.isArray = true
		}
		return child, nil

	case value == "[]":
		if p.Strict && want > 0 {
			return nil, &FormatError{Line: sc.LineNum(),
				Message: fmt.Sprintf("array length mismatch: annotated %d, parsed 0", want)}
		}
		mem.Value = ast.Array{}

	case value == "{}":
		mem.Value = ast.Object{}

	default:
		v := parseInline(value)
		if arr, ok := v.(ast.Array); ok && p.Strict && want >= 0 && want != len(arr) {
			return nil, &FormatError{Line: sc.LineNum(),
				Message: fmt.Sprintf("array length mismatch: annotated %d, parsed %d", want, len(arr))}
		}
		mem.Value = v
	}
	return nil, nil
}
