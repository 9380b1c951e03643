// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct{}

func (f Formatter) indent() string { return "  " }

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the settings
// from f. Each object member and array element is placed on its own line,
// nested containers are indented one step per level, and empty containers
// render as "{}" and "[]".
func (f Formatter) Format(w io.Writer, v Value) error {
	var sb strings.Builder
	f.formatValue(&sb, v, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (f Formatter) formatValue(sb *strings.Builder, v Value, indent string) {
	switch t := v.(type) {
	case Object:
		f.formatObject(sb, t, indent)
	case Array:
		f.formatArray(sb, t, indent)
	case nil:
		sb.WriteString("null")
	default:
		sb.WriteString(t.JSON())
	}
}

func (f Formatter) formatObject(sb *strings.Builder, o Object, indent string) {
	if len(o) == 0 {
		sb.WriteString("{}")
		return
	}
	mdent := indent + f.indent()
	sb.WriteString("{\n")
	for i, m := range o {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprint(sb, mdent, String(m.Key).JSON(), ": ")
		f.formatValue(sb, m.Value, mdent)
	}
	fmt.Fprint(sb, "\n", indent, "}")
}

func (f Formatter) formatArray(sb *strings.Builder, a Array, indent string) {
	if len(a) == 0 {
		sb.WriteString("[]")
		return
	}
	adent := indent + f.indent()
	sb.WriteString("[\n")
	for i, v := range a {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(adent)
		f.formatValue(sb, v, adent)
	}
	fmt.Fprint(sb, "\n", indent, "]")
}
