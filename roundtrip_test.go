// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon_test

import (
	"testing"

	"github.com/creachadair/toon"
	"github.com/creachadair/toon/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input ast.Value
	}{
		{"Flat", ast.Object{
			ast.Field("name", "Alice"),
			ast.Field("age", 34),
			ast.Field("admin", false),
			ast.Field("nick", ast.Null{}),
		}},
		{"QuotedValues", ast.Object{
			ast.Field("a", ""),
			ast.Field("b", "true"),
			ast.Field("c", "85"),
			ast.Field("d", "two words"),
			ast.Field("e", "line\nbreak"),
			ast.Field("f", `say "hi"`),
		}},
		{"QuotedKeys", ast.Object{
			ast.Field("plain", 1),
			ast.Field("has space", 2),
			ast.Field("dash-ed", 3),
		}},
		{"Numbers", ast.Object{
			ast.Field("zero", 0),
			ast.Field("neg", -17),
			ast.Field("frac", 0.125),
			ast.Field("big", 1e21),
		}},
		{"Nested", ast.Object{
			ast.Field("user", ast.Object{
				ast.Field("name", "Alice"),
				ast.Field("active", true),
			}),
			ast.Field("scores", ast.Array{
				ast.Number(85), ast.Number(92), ast.Number(78),
			}),
		}},
		{"EmptyInside", ast.Object{
			ast.Field("xs", ast.Array{}),
			ast.Field("m", ast.Object{}),
			ast.Field("deep", ast.Object{
				ast.Field("inner", ast.Array{}),
			}),
		}},
		{"ObjectItems", ast.Object{
			ast.Field("items", ast.Array{
				ast.Object{
					ast.Field("name", "a"),
					ast.Field("tags", ast.Array{ast.String("x"), ast.String("y")}),
				},
				ast.Object{ast.Field("name", "b")},
				ast.Object{},
			}),
		}},
		{"RootArray", ast.Array{
			ast.Object{ast.Field("x", 1)},
			ast.Object{ast.Field("y", ast.Object{ast.Field("z", 2)})},
		}},
	}
	opts := cmpopts.EquateEmpty()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, err := toon.Serialize(tc.input)
			if err != nil {
				t.Fatalf("Serialize: unexpected error: %v", err)
			}
			t.Logf("Serialized:\n%s", text)

			if !toon.Valid(text) {
				t.Errorf("Valid(%q): got false, want true", text)
			}

			got, err := toon.Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", text, err)
			}
			if diff := cmp.Diff(tc.input, got, opts); diff != "" {
				t.Errorf("Round trip changed the value (-want, +got):\n%s", diff)
			}
		})
	}
}

// An empty container at the root serializes as a lone marker token, which the
// parser accepts directly but the line-shape validator does not.
func TestRoundTripBare(t *testing.T) {
	opts := cmpopts.EquateEmpty()
	for _, v := range []ast.Value{ast.Object{}, ast.Array{}} {
		text, err := toon.Serialize(v)
		if err != nil {
			t.Fatalf("Serialize(%v): unexpected error: %v", v, err)
		}
		got, err := toon.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", text, err)
		}
		if diff := cmp.Diff(v, got, opts); diff != "" {
			t.Errorf("Round trip of %q changed the value (-want, +got):\n%s", text, diff)
		}
	}
}
