// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package toon implements a bidirectional codec between JSON values and TOON,
// a compact indentation-based textual notation for the JSON data model.
//
// # Notation
//
// TOON text is a sequence of non-blank lines. Indentation is measured in
// spaces and increases by two spaces per nesting level. Each line has one of
// these shapes:
//
//	- <rest>          an array item; rest may be empty, a scalar, or a
//	                  "key: value" pair starting a nested object
//	<key>: <value>    an object field; an empty value means a nested
//	                  container follows on more-indented lines
//	<key>[N]: ...     an object field whose value is an array; N is the
//	                  element count written by the serializer
//
// Scalars are the literals null, true and false, decimal numbers, and
// strings. A string is written bare when doing so is unambiguous, and as a
// JSON-quoted string otherwise. An array whose elements are all scalars is
// written inline with its elements joined by commas:
//
//	user:
//	  name: Alice
//	  active: true
//	scores[3]: 85,92,78
//
// The empty containers are written "{}" and "[]".
//
// # Parsing and serialization
//
// Parse converts TOON text into an ast.Value, and Serialize renders an
// ast.Value as TOON text deterministically. Valid is a cheap structural check
// over raw text that can be used to gate a full parse. The parser is lenient:
// lines that match no shape are skipped, the [N] annotations on array fields
// are not checked against the items actually present, and duplicate object
// keys are kept in order. Use a Parser with Strict set to enforce the
// annotations and reject duplicate keys.
//
// # Conversion
//
// FromJSON and ToJSON convert whole documents between the two notations.
// FromJSON applies the repair package to its input if it is not already valid
// JSON; ToJSON renders the parsed value with a two-space pretty-printer.
// Failures from either direction are reported as a *ConversionError.
package toon
