// File: definitions.go
// Title: Directive Vocabulary Definitions
// Description: Defines the directive vocabulary of the scene language:
//              statement shapes, context capability sets, and the builtin
//              keyword table with arities and scope pairings.
// Version: v0.1.0
// Created: 2025-11-16
// Modified: 2025-11-16
//
// Change History:
// - 2025-11-16 v0.1.0: Initial directive vocabulary

package registry

import (
	"strings"

	slast "github.com/candela-render/scenelang/scene/ast"
)

// Shape identifies the statement shape a directive keyword takes
type Shape int

const (
	// ShapeTransform is a keyword followed by a fixed number of floats
	ShapeTransform Shape = iota

	// ShapeNamed is a keyword followed by one quoted string
	ShapeNamed

	// ShapeTyped is a keyword followed by a quoted type name and a greedy
	// optional parameter list
	ShapeTyped

	// ShapeTexture is a keyword followed by three quoted strings and a
	// greedy optional parameter list
	ShapeTexture

	// ShapeMedium is a keyword followed by two quoted strings
	ShapeMedium

	// ShapeMode is a keyword followed by one bare mode word
	ShapeMode

	// ShapeToggle is a bare keyword with no arguments
	ShapeToggle

	// ShapeScopeBegin opens a scope block closed by its Closer keyword
	ShapeScopeBegin

	// ShapeScopeEnd closes a scope block
	ShapeScopeEnd
)

// String returns string representation of Shape
func (s Shape) String() string {
	switch s {
	case ShapeTransform:
		return "transform"
	case ShapeNamed:
		return "named"
	case ShapeTyped:
		return "typed"
	case ShapeTexture:
		return "texture"
	case ShapeMedium:
		return "medium"
	case ShapeMode:
		return "mode"
	case ShapeToggle:
		return "toggle"
	case ShapeScopeBegin:
		return "scope-begin"
	case ShapeScopeEnd:
		return "scope-end"
	default:
		return "unknown"
	}
}

// Context is a capability set naming the parse contexts where a directive
// keyword is legal
type Context int

const (
	// CtxOption is the option preamble of a main document
	CtxOption Context = 1 << iota

	// CtxScene is the world block, attribute and transform scopes, and
	// include fragments
	CtxScene

	// CtxObject is the inside of an ObjectBegin block
	CtxObject
)

// CtxAll marks directives legal in every context
const CtxAll = CtxOption | CtxScene | CtxObject

// String returns the context set as "option|scene|object" style text
func (c Context) String() string {
	names := make([]string, 0, 3)
	if c&CtxOption != 0 {
		names = append(names, "option")
	}
	if c&CtxScene != 0 {
		names = append(names, "scene")
	}
	if c&CtxObject != 0 {
		names = append(names, "object")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Definition describes one directive keyword: its statement shape, the
// contexts where it is legal, and the shape-specific details the statement
// parser dispatches on
type Definition struct {
	Keyword          string            // Directive keyword (case-sensitive)
	Shape            Shape             // Statement shape
	Contexts         Context           // Contexts where the keyword is legal
	FloatArgs        int               // Fixed float arity (ShapeTransform)
	Op               slast.TransformOp // Transform op (ShapeTransform)
	NameIsIdentifier bool              // Quoted name restricted to identifier form (ShapeNamed)
	TakesName        bool              // Opener takes a quoted name (ShapeScopeBegin)
	Closer           string            // Matching end keyword (ShapeScopeBegin)
	Modes            []string          // Accepted mode words (ShapeMode)
}

// optionDirectives are the typed directives of the option preamble
var optionDirectives = []string{
	"Accelerator",
	"Camera",
	"Film",
	"Integrator",
	"MakeNamedMedium",
	"PixelFilter",
	"Sampler",
}

// sceneDirectives are the typed directives of scene and object scopes
var sceneDirectives = []string{
	"AreaLightSource",
	"LightSource",
	"MakeNamedMaterial",
	"Material",
	"Shape",
}

// builtinDefinitions returns the builtin directive vocabulary
func builtinDefinitions() []*Definition {
	defs := make([]*Definition, 0, 40)

	// Transform directives are legal in every context
	for _, keyword := range slast.TransformKeywords() {
		op, _ := slast.TransformOpForKeyword(keyword)
		defs = append(defs, &Definition{
			Keyword:   keyword,
			Shape:     ShapeTransform,
			Contexts:  CtxAll,
			FloatArgs: op.Arity(),
			Op:        op,
		})
	}

	defs = append(defs,
		// Named coordinate systems travel with the transform stack
		&Definition{Keyword: "CoordinateSystem", Shape: ShapeNamed, Contexts: CtxAll},
		&Definition{Keyword: "CoordSysTransform", Shape: ShapeNamed, Contexts: CtxAll},
		&Definition{
			Keyword:  "ActiveTransform",
			Shape:    ShapeMode,
			Contexts: CtxAll,
			Modes: []string{
				slast.ActiveTransformStartTime,
				slast.ActiveTransformEndTime,
				slast.ActiveTransformAll,
			},
		},

		&Definition{Keyword: "Include", Shape: ShapeNamed, Contexts: CtxAll},
		&Definition{Keyword: "MediumInterface", Shape: ShapeMedium, Contexts: CtxAll},

		&Definition{Keyword: "ReverseOrientation", Shape: ShapeToggle, Contexts: CtxScene | CtxObject},
		&Definition{Keyword: "NamedMaterial", Shape: ShapeNamed, Contexts: CtxScene | CtxObject, NameIsIdentifier: true},

		// An object definition may not instance another object
		&Definition{Keyword: "ObjectInstance", Shape: ShapeNamed, Contexts: CtxScene, NameIsIdentifier: true},
	)

	for _, keyword := range optionDirectives {
		defs = append(defs, &Definition{Keyword: keyword, Shape: ShapeTyped, Contexts: CtxOption})
	}

	for _, keyword := range sceneDirectives {
		defs = append(defs, &Definition{Keyword: keyword, Shape: ShapeTyped, Contexts: CtxScene | CtxObject})
	}

	defs = append(defs,
		&Definition{Keyword: "Texture", Shape: ShapeTexture, Contexts: CtxScene | CtxObject},

		&Definition{Keyword: "WorldBegin", Shape: ShapeScopeBegin, Contexts: CtxOption, Closer: "WorldEnd"},
		&Definition{Keyword: "WorldEnd", Shape: ShapeScopeEnd, Contexts: CtxScene},
		&Definition{Keyword: "AttributeBegin", Shape: ShapeScopeBegin, Contexts: CtxScene | CtxObject, Closer: "AttributeEnd"},
		&Definition{Keyword: "AttributeEnd", Shape: ShapeScopeEnd, Contexts: CtxScene | CtxObject},
		&Definition{Keyword: "TransformBegin", Shape: ShapeScopeBegin, Contexts: CtxScene | CtxObject, Closer: "TransformEnd"},
		&Definition{Keyword: "TransformEnd", Shape: ShapeScopeEnd, Contexts: CtxScene | CtxObject},
		&Definition{Keyword: "ObjectBegin", Shape: ShapeScopeBegin, Contexts: CtxScene, TakesName: true, Closer: "ObjectEnd"},
		&Definition{Keyword: "ObjectEnd", Shape: ShapeScopeEnd, Contexts: CtxScene},
	)

	return defs
}
