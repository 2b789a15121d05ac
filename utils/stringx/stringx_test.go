// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for string utilities including blank checks, identifier
//              validation, interning, truncation, and padding.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-14
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation with core utility tests
// - 2025-11-14 v0.1.1: Added identifier validation tests

package stringx

import (
	"strings"
	"testing"

	slerror "github.com/candela-render/scenelang/core/error"
)

func TestIntern(t *testing.T) {
	s1 := Intern("Shape")
	s2 := Intern("Shape")

	if s1 != s2 {
		t.Error("Intern() should return equal strings")
	}

	if Intern("") != "" {
		t.Error("Intern() of empty string should be empty")
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"text", "Shape", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.want {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n\r ", true},
		{"text", "WorldBegin", false},
		{"text with surrounding spaces", "  x  ", false},
		{"unicode whitespace", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsNotEmptyAndIsNotBlank(t *testing.T) {
	if !IsNotEmpty("x") || IsNotEmpty("") {
		t.Error("IsNotEmpty() should be the inverse of IsEmpty()")
	}

	if !IsNotBlank("x") || IsNotBlank("  ") {
		t.Error("IsNotBlank() should be the inverse of IsBlank()")
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "myobject", true},
		{"mixed case", "RedWall", true},
		{"letter then digits", "light1", true},
		{"single letter", "a", true},
		{"empty", "", false},
		{"leading digit", "1light", false},
		{"leading underscore", "_obj", false},
		{"contains underscore", "sigma_s", true},
		{"trailing underscore", "obj_", true},
		{"contains hyphen", "my-object", false},
		{"contains space", "my object", false},
		{"contains slash", "geo/walls", false},
		{"contains dot", "walls.pbrt", false},
		{"non-ascii letter", "wänd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIdentifier(tt.input); got != tt.want {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"no truncation needed", "short", 10, "...", "short"},
		{"exact length", "exact", 5, "...", "exact"},
		{"basic truncation", "this is a long string", 10, "...", "this is..."},
		{"zero length", "text", 0, "...", ""},
		{"ellipsis too long", "text", 2, "...", "te"},
		{"unicode content", "héllo wörld", 8, "…", "héllo w…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	tests := []struct {
		s      string
		substr string
		want   bool
	}{
		{"WorldBegin", "world", true},
		{"WorldBegin", "WORLD", true},
		{"WorldBegin", "shape", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.s+"/"+tt.substr, func(t *testing.T) {
			if got := ContainsIgnoreCase(tt.s, tt.substr); got != tt.want {
				t.Errorf("ContainsIgnoreCase(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		pad   rune
		want  string
	}{
		{"basic padding", "42", 5, ' ', "   42"},
		{"zero padding", "7", 3, '0', "007"},
		{"already wide enough", "hello", 3, ' ', "hello"},
		{"unicode pad", "x", 3, '·', "··x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadLeft(tt.input, tt.width, tt.pad); got != tt.want {
				t.Errorf("PadLeft(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.pad, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		pad   rune
		want  string
	}{
		{"basic padding", "ab", 5, ' ', "ab   "},
		{"already wide enough", "hello", 3, ' ', "hello"},
		{"unicode content", "日本", 4, '-', "日本--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadRight(tt.input, tt.width, tt.pad); got != tt.want {
				t.Errorf("PadRight(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.pad, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix endings", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows endings", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mac endings", "a\rb\rc", []string{"a", "b", "c"}},
		{"mixed endings", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
		{"single line", "only", []string{"only"}},
		{"trailing newline", "a\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)

			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitLines(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "", "third"); got != "third" {
		t.Errorf("FirstNonEmpty() = %q, want %q", got, "third")
	}

	if got := FirstNonEmpty("first", "second"); got != "first" {
		t.Errorf("FirstNonEmpty() = %q, want %q", got, "first")
	}

	if got := FirstNonEmpty("", ""); got != "" {
		t.Errorf("FirstNonEmpty() = %q, want empty", got)
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("  ", "\t", "value"); got != "value" {
		t.Errorf("FirstNonBlank() = %q, want %q", got, "value")
	}

	if got := FirstNonBlank("   ", ""); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("path", "scenes/a.pbrt"); err != nil {
		t.Errorf("ValidateRequired() error = %v, want nil", err)
	}

	err := ValidateRequired("path", "")
	if err == nil {
		t.Fatal("ValidateRequired() should fail for empty string")
	}

	if !slerror.HasCode(err, slerror.CodeRequiredField) {
		t.Errorf("ValidateRequired() code = %v, want %v", slerror.GetCode(err), slerror.CodeRequiredField)
	}
}

func TestValidateNotBlank(t *testing.T) {
	if err := ValidateNotBlank("input", "Shape"); err != nil {
		t.Errorf("ValidateNotBlank() error = %v, want nil", err)
	}

	if err := ValidateNotBlank("input", "   "); err == nil {
		t.Error("ValidateNotBlank() should fail for blank string")
	}
}

func TestFromDefault(t *testing.T) {
	if got := FromDefault("", "fallback"); got != "fallback" {
		t.Errorf("FromDefault() = %q, want fallback", got)
	}

	if got := FromDefault("value", "fallback"); got != "value" {
		t.Errorf("FromDefault() = %q, want value", got)
	}
}

func BenchmarkIntern(b *testing.B) {
	keywords := []string{"Shape", "Material", "LightSource", "AttributeBegin", "Translate"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Intern(keywords[i%len(keywords)])
	}
}

func BenchmarkIsIdentifier(b *testing.B) {
	names := []string{"myobject", "light1", "1bad", "also-bad", strings.Repeat("a", 64)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsIdentifier(names[i%len(names)])
	}
}
