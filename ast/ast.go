// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values that preserves the order
// of object members, and a parser that constructs trees from JSON source.
//
// Order preservation matters for this module: values are re-serialized, and
// the output must render members in the order the input gave them.
package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/toon/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string
}

// An Object is an ordered collection of key-value members.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len returns the number of members of o.
func (o Object) Len() int { return len(o) }

// JSON renders o as compact JSON text.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be a type accepted by ToValue, which see.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// JSON renders m as a compact JSON object member.
func (m Member) JSON() string {
	return String(m.Key).JSON() + ":" + m.Value.JSON()
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Array is an ordered sequence of values.
type Array []Value

// Len returns the number of elements of a.
func (a Array) Len() int { return len(a) }

// JSON renders a as compact JSON text.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value.
type String string

// JSON renders s as a quoted JSON string.
func (s String) JSON() string {
	return `"` + string(escape.Quote(mem.S(string(s)))) + `"`
}

// A Number is a numeric value. All numbers are carried as float64, matching
// the JSON data model.
type Number float64

// Int constructs a Number from an integer.
func Int(z int64) Number { return Number(z) }

// Float constructs a Number from a float.
func Float(f float64) Number { return Number(f) }

// IsInt reports whether n has no fractional part.
func (n Number) IsInt() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// JSON renders n as canonical decimal text. Exponent notation is never used,
// and non-finite values render as null.
func (n Number) JSON() string {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON renders b as a JSON constant.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the null constant.
type Null struct{}

// JSON renders the null constant.
func (Null) JSON() string { return "null" }

// ToValue converts a plain Go value into an ast.Value. It panics if the value
// cannot be converted: the value must be a string, int, float, bool, nil, a
// []any of such values, or already an ast.Value.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
