// File: params.go
// Title: Scene Parameter Definitions
// Description: Defines the typed parameter record attached to scene
//              directives, the canonical type-tag vocabulary with its surface
//              aliases, and the value-shape invariants each tag imposes.
// Version: v0.1.0
// Created: 2025-11-14
// Modified: 2025-11-14
//
// Change History:
// - 2025-11-14 v0.1.0: Initial parameter model with 12 canonical tags

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/candela-render/scenelang/utils/mapx"
	"github.com/candela-render/scenelang/utils/slicex"
	"github.com/candela-render/scenelang/utils/stringx"
)

// ParamType identifies the declared type tag of a parameter
type ParamType int

const (
	ParamFloat ParamType = iota
	ParamInteger
	ParamString
	ParamBool
	ParamPoint2
	ParamVector2
	ParamPoint3
	ParamVector3
	ParamNormal3
	ParamColor
	ParamBlackbody
	ParamSpectrum
)

// String returns the canonical tag text
func (pt ParamType) String() string {
	switch pt {
	case ParamFloat:
		return "float"
	case ParamInteger:
		return "integer"
	case ParamString:
		return "string"
	case ParamBool:
		return "bool"
	case ParamPoint2:
		return "point2"
	case ParamVector2:
		return "vector2"
	case ParamPoint3:
		return "point3"
	case ParamVector3:
		return "vector3"
	case ParamNormal3:
		return "normal3"
	case ParamColor:
		return "color"
	case ParamBlackbody:
		return "blackbody"
	case ParamSpectrum:
		return "spectrum"
	default:
		return "unknown"
	}
}

// GroupSize returns the arity the value list must be divisible by:
// 3 for the 3-float tuple tags, 2 for the 2-float tuple and pair tags,
// 1 for everything else.
func (pt ParamType) GroupSize() int {
	switch pt {
	case ParamPoint3, ParamVector3, ParamNormal3, ParamColor:
		return 3
	case ParamPoint2, ParamVector2, ParamBlackbody, ParamSpectrum:
		return 2
	default:
		return 1
	}
}

// paramTags maps every accepted surface tag, canonical and alias, onto its
// type. Tags are matched whole-field against this table, which satisfies the
// longest-match rule by construction: "point3" can never be truncated to
// "point" because the full header field is the lookup key.
var paramTags = map[string]ParamType{
	"float":     ParamFloat,
	"integer":   ParamInteger,
	"string":    ParamString,
	"bool":      ParamBool,
	"point2":    ParamPoint2,
	"vector2":   ParamVector2,
	"point3":    ParamPoint3,
	"vector3":   ParamVector3,
	"normal3":   ParamNormal3,
	"color":     ParamColor,
	"blackbody": ParamBlackbody,
	"spectrum":  ParamSpectrum,

	// Surface aliases normalized to canonical tags
	"point":  ParamPoint3,
	"vector": ParamVector3,
	"normal": ParamNormal3,
	"rgb":    ParamColor,
	"xyz":    ParamColor,
}

// ParamTypeFromTag resolves a surface tag (canonical or alias) to its type
func ParamTypeFromTag(tag string) (ParamType, bool) {
	pt, ok := paramTags[tag]
	return pt, ok
}

// ParamTags returns all accepted surface tags in sorted order
func ParamTags() []string {
	return slicex.Sort(mapx.Keys(paramTags))
}

// Parameter represents one typed parameter of a directive: a declared type
// tag, a name, and the decoded values. Exactly one value family is populated,
// determined by the tag (spectrum may hold either sampled float pairs or one
// spectrum name).
type Parameter struct {
	Type    ParamType // Declared type tag (canonical)
	Name    string    // Parameter name from the header
	Floats  []float64 // float, tuple, blackbody, and sampled spectrum values
	Ints    []int64   // integer values
	Strings []string  // string values or the named-spectrum name
	Bools   []bool    // bool value (exactly one)
	Pos     Position  // Source position of the header
}

func (p *Parameter) String() string {
	var b strings.Builder
	b.WriteString(quote(p.Type.String() + " " + p.Name))
	b.WriteString(" [")

	switch {
	case len(p.Floats) > 0:
		for _, f := range p.Floats {
			b.WriteString(" ")
			b.WriteString(formatFloat(f))
		}
	case len(p.Ints) > 0:
		for _, i := range p.Ints {
			b.WriteString(" ")
			b.WriteString(strconv.FormatInt(i, 10))
		}
	case len(p.Strings) > 0:
		for _, s := range p.Strings {
			b.WriteString(" ")
			b.WriteString(quote(s))
		}
	case len(p.Bools) > 0:
		for _, v := range p.Bools {
			b.WriteString(" ")
			b.WriteString(quote(strconv.FormatBool(v)))
		}
	}

	b.WriteString(" ]")
	return b.String()
}

func (p *Parameter) Accept(visitor Visitor) interface{} {
	return visitor.VisitParameter(p)
}

func (p *Parameter) Position() Position {
	return p.Pos
}

func (p *Parameter) Validate() error {
	if stringx.IsBlank(p.Name) {
		return fmt.Errorf("parameter name is required")
	}

	nf, ni, ns, nb := len(p.Floats), len(p.Ints), len(p.Strings), len(p.Bools)

	switch p.Type {
	case ParamFloat:
		if nf == 0 || ni+ns+nb > 0 {
			return fmt.Errorf("float parameter %q requires one or more float values", p.Name)
		}

	case ParamInteger:
		if ni == 0 || nf+ns+nb > 0 {
			return fmt.Errorf("integer parameter %q requires one or more integer values", p.Name)
		}

	case ParamString:
		if ns == 0 || nf+ni+nb > 0 {
			return fmt.Errorf("string parameter %q requires one or more string values", p.Name)
		}

	case ParamBool:
		if nb != 1 || nf+ni+ns > 0 {
			return fmt.Errorf("bool parameter %q requires exactly one boolean value", p.Name)
		}

	case ParamPoint2, ParamVector2, ParamBlackbody:
		if nf == 0 || nf%2 != 0 || ni+ns+nb > 0 {
			return fmt.Errorf("%s parameter %q requires a float list with length divisible by 2, got %d values", p.Type, p.Name, nf)
		}

	case ParamPoint3, ParamVector3, ParamNormal3, ParamColor:
		if nf == 0 || nf%3 != 0 || ni+ns+nb > 0 {
			return fmt.Errorf("%s parameter %q requires a float list with length divisible by 3, got %d values", p.Type, p.Name, nf)
		}

	case ParamSpectrum:
		switch {
		case ns == 1 && nf+ni+nb == 0:
			// Named spectrum
		case nf > 0 && nf%2 == 0 && ni+ns+nb == 0:
			// Sampled wavelength/value pairs
		default:
			return fmt.Errorf("spectrum parameter %q requires wavelength/value pairs or exactly one spectrum name", p.Name)
		}

	default:
		return fmt.Errorf("unknown parameter type: %d", int(p.Type))
	}

	return nil
}

// ValueCount returns the number of decoded values across all families
func (p *Parameter) ValueCount() int {
	return len(p.Floats) + len(p.Ints) + len(p.Strings) + len(p.Bools)
}

// IsNamedSpectrum reports whether this is a spectrum parameter referencing a
// named spectrum rather than sampled pairs
func (p *Parameter) IsNamedSpectrum() bool {
	return p.Type == ParamSpectrum && len(p.Strings) == 1
}

// formatFloat renders a float in the shortest form that round-trips the value
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quote wraps s in the surface grammar's quote envelope. The grammar has no
// escape mechanism, so the content is emitted raw.
func quote(s string) string {
	return `"` + s + `"`
}
