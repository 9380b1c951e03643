// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/toon/ast"
)

// Serialize renders v as TOON text. The output is deterministic: object
// members render one per line in insertion order, arrays of scalars render
// inline with a [N] length annotation on their field key, and other arrays
// render in block form with "- " item markers. Serialize fails only when the
// nesting depth of v exceeds ast.MaxNestingDepth.
func Serialize(v ast.Value) (string, error) {
	return serializeValue(v, 0, 0)
}

// pad returns the indentation prefix for the given nesting level.
func pad(depth int) string { return strings.Repeat("  ", depth) }

// serializeValue renders any value at the given indentation level. The nest
// counter tracks logical depth separately, because array elements restart
// rendering at indentation zero.
func serializeValue(v ast.Value, depth, nest int) (string, error) {
	if nest > ast.MaxNestingDepth {
		return "", fmt.Errorf("depth %d: %w", nest, ErrDepthExceeded)
	}
	switch t := v.(type) {
	case ast.Object:
		if len(t) == 0 {
			return "{}", nil
		}
		return serializeObject(t, depth, nest)
	case ast.Array:
		if len(t) == 0 {
			return "[]", nil
		}
		if isSimpleArray(t) {
			return joinScalars(t), nil
		}
		return serializeItems(t, depth, nest)
	default:
		return encodeScalar(t), nil
	}
}

// serializeObject renders a non-empty object, one member per line at the
// given indentation.
func serializeObject(o ast.Object, depth, nest int) (string, error) {
	if nest > ast.MaxNestingDepth {
		return "", fmt.Errorf("depth %d: %w", nest, ErrDepthExceeded)
	}
	ind := pad(depth)
	lines := make([]string, 0, len(o))
	for _, m := range o {
		key := encodeKey(m.Key)
		switch t := m.Value.(type) {
		case ast.Array:
			ann := "[" + strconv.Itoa(len(t)) + "]"
			switch {
			case len(t) == 0:
				lines = append(lines, ind+key+ann+": []")
			case isSimpleArray(t):
				lines = append(lines, ind+key+ann+": "+joinScalars(t))
			default:
				block, err := serializeItems(t, depth+1, nest+1)
				if err != nil {
					return "", err
				}
				lines = append(lines, ind+key+ann+":", block)
			}
		case ast.Object:
			if len(t) == 0 {
				lines = append(lines, ind+key+": {}")
				continue
			}
			block, err := serializeObject(t, depth+1, nest+1)
			if err != nil {
				return "", err
			}
			lines = append(lines, ind+key+":", block)
		default:
			lines = append(lines, ind+key+": "+encodeScalar(t))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// serializeItems renders the block form of an array with non-scalar
// elements, one "- " marker per element at the given indentation. An object
// element is rendered one level deeper and the marker is spliced over the
// leading indentation of its first line, so the object's remaining fields
// align two columns past the marker. Other elements are rendered at
// indentation zero and appended after the marker.
func serializeItems(a ast.Array, depth, nest int) (string, error) {
	if nest > ast.MaxNestingDepth {
		return "", fmt.Errorf("depth %d: %w", nest, ErrDepthExceeded)
	}
	marker := pad(depth) + "- "
	lines := make([]string, 0, len(a))
	for _, elt := range a {
		if obj, ok := elt.(ast.Object); ok && len(obj) > 0 {
			block, err := serializeObject(obj, depth+1, nest+1)
			if err != nil {
				return "", err
			}
			// The marker is exactly as wide as one extra indent level.
			lines = append(lines, marker+block[len(marker):])
			continue
		}
		text, err := serializeValue(elt, 0, nest+1)
		if err != nil {
			return "", err
		}
		lines = append(lines, marker+text)
	}
	return strings.Join(lines, "\n"), nil
}

// isSimpleArray reports whether every element of a is a scalar, making the
// array eligible for inline rendering.
func isSimpleArray(a ast.Array) bool {
	for _, v := range a {
		if !isScalar(v) {
			return false
		}
	}
	return true
}

// joinScalars renders a simple array inline.
func joinScalars(a ast.Array) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = encodeScalar(v)
	}
	return strings.Join(parts, ",")
}

// encodeKey renders an object key, bare when possible and quoted otherwise.
func encodeKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return Quote(key)
}
