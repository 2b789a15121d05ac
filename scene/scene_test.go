// File: scene_test.go
// Title: Scene Engine Unit Tests
// Description: Unit tests for the scene engine facade. Tests cover engine
//              construction with defaults and options, both parse modes,
//              canonical formatting with its idempotence guarantee, float
//              value round-tripping, validation, and statistics.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial scene engine test suite

package scene

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	slerror "github.com/candela-render/scenelang/core/error"
	sllog "github.com/candela-render/scenelang/core/log"
	slast "github.com/candela-render/scenelang/scene/ast"
	slparser "github.com/candela-render/scenelang/scene/parser"
)

// newTestEngine creates an engine with default options for testing
func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	engine, err := NewEngine(Options{Logger: sllog.GetDefault()})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		engine, err := NewEngine()
		if err != nil {
			t.Fatalf("NewEngine failed: %v", err)
		}
		if engine.options.MaxIncludeDepth != DefaultMaxIncludeDepth {
			t.Errorf("Expected default include depth %d, got %d",
				DefaultMaxIncludeDepth, engine.options.MaxIncludeDepth)
		}
		if engine.options.MaxInputLength != slparser.DefaultMaxInputLength {
			t.Errorf("Expected default input length %d, got %d",
				slparser.DefaultMaxInputLength, engine.options.MaxInputLength)
		}
		if engine.Registry() == nil {
			t.Error("Expected a builtin registry")
		}
		if engine.Resolver() != nil {
			t.Error("Expected no resolver by default")
		}
	})

	t.Run("With options", func(t *testing.T) {
		resolver := NewMapResolver(nil)
		engine, err := NewEngine(Options{
			Resolver:        resolver,
			MaxIncludeDepth: 4,
			MaxInputLength:  1024,
			DiscardComments: true,
		})
		if err != nil {
			t.Fatalf("NewEngine failed: %v", err)
		}
		if engine.options.MaxIncludeDepth != 4 {
			t.Errorf("Expected include depth 4, got %d", engine.options.MaxIncludeDepth)
		}
		if engine.options.MaxInputLength != 1024 {
			t.Errorf("Expected input length 1024, got %d", engine.options.MaxInputLength)
		}
		if engine.Resolver() != resolver {
			t.Error("Expected the provided resolver")
		}
	})
}

func TestEngine_ParseScene(t *testing.T) {
	engine := newTestEngine(t)

	doc, err := engine.ParseScene("WorldBegin\nShape \"sphere\" \"float radius\" 2.5\nWorldEnd\n")
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}
	if !doc.IsMain() {
		t.Errorf("Expected a main document, got %s", doc.Kind)
	}
	if len(doc.Options) != 0 {
		t.Errorf("Expected empty option preamble, got %d statements", len(doc.Options))
	}
	if doc.World == nil || len(doc.World.Statements) != 1 {
		t.Fatalf("Expected a world block with 1 statement, got %+v", doc.World)
	}

	shape, ok := doc.World.Statements[0].(*slast.TypedDirective)
	if !ok {
		t.Fatalf("Expected *TypedDirective, got %T", doc.World.Statements[0])
	}
	if shape.Name != "sphere" {
		t.Errorf("Expected shape name sphere, got %s", shape.Name)
	}
	radius := shape.FindParam("radius")
	if radius == nil {
		t.Fatal("Expected a radius parameter")
	}
	if len(radius.Floats) != 1 || radius.Floats[0] != 2.5 {
		t.Errorf("Expected radius [2.5], got %v", radius.Floats)
	}
}

func TestEngine_ParseScene_Error(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.ParseScene("AttributeBegin\nWorldEnd\n")
	if err == nil {
		t.Fatal("Expected a parse error")
	}

	var pe *slparser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected *ParseError, got %T: %v", err, err)
	}
	if pe.Code != slerror.CodeUnbalancedScope {
		t.Errorf("Expected %s, got %s", slerror.CodeUnbalancedScope, pe.Code)
	}
}

func TestEngine_ParseFragment(t *testing.T) {
	engine := newTestEngine(t)

	doc, err := engine.ParseFragment("Translate 1 2 3\nShape \"trianglemesh\"\n")
	if err != nil {
		t.Fatalf("ParseFragment failed: %v", err)
	}
	if !doc.IsFragment() {
		t.Errorf("Expected a fragment document, got %s", doc.Kind)
	}
	if len(doc.Statements) != 2 {
		t.Errorf("Expected 2 statements, got %d", len(doc.Statements))
	}
	if doc.World != nil {
		t.Error("Fragment must not carry a world block")
	}
}

func TestEngine_Check(t *testing.T) {
	engine := newTestEngine(t)

	if err := engine.CheckScene("WorldBegin\nWorldEnd\n"); err != nil {
		t.Errorf("CheckScene rejected a valid scene: %v", err)
	}
	if err := engine.CheckScene("WorldBegin\n"); err == nil {
		t.Error("CheckScene accepted an unclosed world block")
	}
	if err := engine.CheckFragment("ReverseOrientation\n"); err != nil {
		t.Errorf("CheckFragment rejected a valid fragment: %v", err)
	}
	if err := engine.CheckFragment("WorldBegin\nWorldEnd\n"); err == nil {
		t.Error("CheckFragment accepted a world block")
	}
}

func TestEngine_Format(t *testing.T) {
	engine := newTestEngine(t)

	input := "WorldBegin\nAttributeBegin\nTranslate 0 0 5\n" +
		"Shape \"sphere\" \"float radius\" 2.5\nAttributeEnd\nWorldEnd\n"
	doc, err := engine.ParseScene(input)
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	expected := "WorldBegin\n" +
		"  AttributeBegin\n" +
		"    Translate 0 0 5\n" +
		"    Shape \"sphere\" \"float radius\" [ 2.5 ]\n" +
		"  AttributeEnd\n" +
		"WorldEnd\n"
	if got := engine.Format(doc); got != expected {
		t.Errorf("Unexpected formatting.\nExpected:\n%s\nGot:\n%s", expected, got)
	}
}

// TestEngine_FormatIdempotence verifies that parse -> format -> parse yields
// a structurally equal document and byte-equal second formatting
func TestEngine_FormatIdempotence(t *testing.T) {
	engine := newTestEngine(t)

	inputs := []string{
		"WorldBegin\nWorldEnd\n",
		"# header comment\nFilm \"rgb\" \"integer xresolution\" [ 1280 ]\n" +
			"Camera \"perspective\" \"float fov\" 45\nWorldBegin\n" +
			"Texture \"checks\" \"spectrum\" \"checkerboard\" \"rgb tex1\" [ 1 0 0 ]\n" +
			"ObjectBegin \"tree\"\nAttributeBegin\nRotate 45 0 0 1\n" +
			"Shape \"cone\" \"point3 P\" [ 0 0 0 1 1 1 ]\nAttributeEnd\nObjectEnd\n" +
			"ObjectInstance \"tree\"\nWorldEnd\n",
		"MediumInterface \"\" \"fog\"\nActiveTransform StartTime\n" +
			"ConcatTransform [ 1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1 ]\n" +
			"LookAt # from the doorway\n0 0 -10 0 0 0 0 1 0\n",
	}

	for i, input := range inputs {
		mode := slparser.ModeMain
		if !strings.Contains(input, "WorldBegin") {
			mode = slparser.ModeFragment
		}

		first, err := engine.parser.Parse(input, mode)
		if err != nil {
			t.Fatalf("Input %d: parse failed: %v", i, err)
		}
		formatted := engine.Format(first)

		second, err := engine.parser.Parse(formatted, mode)
		if err != nil {
			t.Fatalf("Input %d: reparse of formatted text failed: %v\n%s", i, err, formatted)
		}
		reformatted := engine.Format(second)
		if formatted != reformatted {
			t.Errorf("Input %d: formatting is not idempotent.\nFirst:\n%s\nSecond:\n%s",
				i, formatted, reformatted)
		}
	}
}

// TestEngine_FloatRoundTrip verifies that bare float values survive a
// format/reparse cycle with value equality
func TestEngine_FloatRoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	values := []float64{0, 1, -1, 2.5, -0.125, 1e-9, 3.75e20, 0.1, 123456.789, -9.999e-300}

	for _, value := range values {
		input := "WorldBegin\nShape \"sphere\" \"float radius\" " +
			strconv.FormatFloat(value, 'g', -1, 64) + "\nWorldEnd\n"
		doc, err := engine.ParseScene(input)
		if err != nil {
			t.Fatalf("Value %g: parse failed: %v", value, err)
		}

		reparsed, err := engine.ParseScene(engine.Format(doc))
		if err != nil {
			t.Fatalf("Value %g: reparse failed: %v", value, err)
		}
		shape := reparsed.World.Statements[0].(*slast.TypedDirective)
		radius := shape.FindParam("radius")
		if radius == nil || len(radius.Floats) != 1 {
			t.Fatalf("Value %g: radius parameter lost in round trip", value)
		}
		if radius.Floats[0] != value {
			t.Errorf("Value %g did not round-trip, got %g", value, radius.Floats[0])
		}
	}
}

func TestEngine_Validate(t *testing.T) {
	engine := newTestEngine(t)

	doc, err := engine.ParseScene("WorldBegin\nNamedMaterial \"gold\"\nWorldEnd\n")
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}
	if err := engine.Validate(doc); err != nil {
		t.Errorf("Validate rejected a parsed document: %v", err)
	}

	// Hand-built document violating the reference identifier restriction
	broken := &slast.Document{
		Kind: slast.DocumentFragment,
		Statements: []slast.Statement{
			&slast.NamedMaterial{Name: "2bad"},
		},
	}
	err = engine.Validate(broken)
	if err == nil {
		t.Fatal("Validate accepted a non-identifier material reference")
	}
	if !slerror.HasCode(err, slerror.CodeValidationFailed) {
		t.Errorf("Expected %s, got %s", slerror.CodeValidationFailed, slerror.GetCode(err))
	}
}

func TestEngine_Stats(t *testing.T) {
	engine := newTestEngine(t)

	doc, err := engine.ParseScene(`Camera "perspective" "float fov" 45
WorldBegin
# a light and a shape
LightSource "infinite" "color L" [ 1 1 1 ]
AttributeBegin
Translate 0 0 5
Shape "sphere" "float radius" 2.5
AttributeEnd
Include "geometry.pbrt"
WorldEnd
`)
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	stats := engine.Stats(doc)
	if stats.Directives["Camera"] != 1 || stats.Directives["Shape"] != 1 {
		t.Errorf("Unexpected directive tallies: %v", stats.Directives)
	}
	if stats.Includes != 1 {
		t.Errorf("Expected 1 include, got %d", stats.Includes)
	}
	if stats.Comments != 1 {
		t.Errorf("Expected 1 comment, got %d", stats.Comments)
	}
	if stats.Blocks != 1 {
		t.Errorf("Expected 1 block, got %d", stats.Blocks)
	}
	if stats.Transforms != 1 {
		t.Errorf("Expected 1 transform, got %d", stats.Transforms)
	}
	if stats.Parameters != 3 {
		t.Errorf("Expected 3 parameters, got %d", stats.Parameters)
	}
	if stats.MaxDepth != 2 {
		t.Errorf("Expected max depth 2, got %d", stats.MaxDepth)
	}
}
