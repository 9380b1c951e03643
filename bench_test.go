// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package toon_test

import (
	"os"
	"testing"

	"github.com/creachadair/toon"
	"github.com/creachadair/toon/ast"
)

func BenchmarkConvert(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	text, err := toon.FromJSON(string(input))
	if err != nil {
		b.Fatalf("Converting test input: %v", err)
	}

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := toon.Parse(text); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Serialize", func(b *testing.B) {
		val, err := ast.ParseString(string(input))
		if err != nil {
			b.Fatalf("Parsing test input: %v", err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := toon.Serialize(val); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("FromJSON", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := toon.FromJSON(string(input)); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("ToJSON", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := toon.ToJSON(text); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
