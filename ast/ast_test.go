// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/toon/ast"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "when"`), `"say \"when\""`},

		{ast.Float(-0.00239), `-0.00239`},
		{ast.Float(1e21), `1000000000000000000000`},

		{ast.Int(0), `0`},
		{ast.Int(15), `15`},
		{ast.Int(-25), `-25`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Int(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", nil),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", "Dennis"),
			ast.Field("age", 37),
			ast.Field("isOld", false),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Int(5),
				ast.Int(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", "xyz-pdq-zvm"),
				ast.Field("count", 100),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, tc := range tests {
		got := tc.input.JSON()
		if got != tc.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", tc.input, got, tc.want)
		}
	}
}

func TestFind(t *testing.T) {
	obj := ast.Object{
		ast.Field("a", 1),
		ast.Field("b", 2),
		ast.Field("a", 3), // shadowed by the first "a"
	}
	if m := obj.Find("a"); m == nil {
		t.Error(`Find("a"): not found`)
	} else if m.Value != ast.Number(1) {
		t.Errorf(`Find("a"): got %v, want 1`, m.Value)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf(`Find("nonesuch"): got %v, want nil`, m)
	}
	if n := obj.Len(); n != 3 {
		t.Errorf("Len: got %d, want 3", n)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input ast.Number
		text  string
		isInt bool
	}{
		{ast.Int(12), "12", true},
		{ast.Float(0.25), "0.25", false},
		{ast.Float(-4), "-4", true},
		{ast.Float(1e6), "1000000", true},
	}
	for _, tc := range tests {
		if got := tc.input.JSON(); got != tc.text {
			t.Errorf("JSON(%v): got %q, want %q", float64(tc.input), got, tc.text)
		}
		if got := tc.input.IsInt(); got != tc.isInt {
			t.Errorf("IsInt(%v): got %v, want %v", float64(tc.input), got, tc.isInt)
		}
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null{}},
		{true, ast.Bool(true)},
		{"pest", ast.String("pest")},
		{37, ast.Number(37)},
		{int64(-3), ast.Number(-3)},
		{uint(9), ast.Number(9)},
		{1.5, ast.Number(1.5)},
		{ast.String("keep"), ast.String("keep")},
		{[]any{1, "two", false}, ast.Array{
			ast.Number(1), ast.String("two"), ast.Bool(false),
		}},
	}
	for _, tc := range tests {
		got := ast.ToValue(tc.input)
		if got.JSON() != tc.want.JSON() {
			t.Errorf("ToValue(%v): got %v, want %v", tc.input, got, tc.want)
		}
	}

	t.Run("Panics", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}
