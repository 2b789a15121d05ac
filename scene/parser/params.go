// File: params.go
// Title: Parameter List Parsing
// Description: Implements parameter parsing for scene directives: the
//              quoted "type name" header, the greedy parameter list scan,
//              and the per-tag value-shape parsers (scalar-or-list
//              numerics, fixed-arity float tuples, strings, bools, and
//              spectra).
// Version: v0.1.0
// Created: 2025-11-17
// Modified: 2025-11-17
//
// Change History:
// - 2025-11-17 v0.1.0: Initial parameter parser implementation

package parser

import (
	"strconv"
	"strings"

	slerror "github.com/candela-render/scenelang/core/error"
	slast "github.com/candela-render/scenelang/scene/ast"
	"github.com/candela-render/scenelang/utils/stringx"
)

// headerSpace lists the characters that may form the separator run inside
// a parameter header
const headerSpace = " \t\r\n"

// splitParamHeader splits a quoted parameter header into its type tag and
// parameter name. A header is exactly a tag, one whitespace run, and an
// identifier-shaped name, nothing else; any other string is not a header
// and ends a greedy parameter list.
func splitParamHeader(field string) (tag, name string, ok bool) {
	cut := strings.IndexAny(field, headerSpace)
	if cut <= 0 {
		return "", "", false
	}

	tag = field[:cut]
	name = strings.TrimLeft(field[cut:], headerSpace)
	if !stringx.IsIdentifier(name) {
		return "", "", false
	}

	return tag, name, true
}

// isIntegerLiteral reports whether the token text is an integer literal:
// an optional sign followed by decimal digits only
func isIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}

	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	if i == len(s) {
		return false
	}

	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// parseParameters parses a greedy parameter list: parameters are consumed
// for as long as the next token is a header-shaped quoted string. A quoted
// string with an unknown type tag is an error; a quoted string that is not
// header-shaped ends the list. Comments consumed while scanning for the
// next header are re-emitted as pending statements when the list ends.
func (r *run) parseParameters() ([]*slast.Parameter, error) {
	var params []*slast.Parameter

	for {
		held := r.collectComments()

		if r.current.Type != TokenString {
			r.pending = append(r.pending, held...)
			return params, nil
		}

		tag, name, ok := splitParamHeader(r.current.Value)
		if !ok {
			r.pending = append(r.pending, held...)
			return params, nil
		}

		paramType, known := slast.ParamTypeFromTag(tag)
		if !known {
			return nil, r.errAt(slerror.CodeUnknownParamType, r.current,
				"unknown parameter type '%s'", tag)
		}

		header := r.current
		r.advance()

		param := &slast.Parameter{
			Type: paramType,
			Name: name,
			Pos:  r.pos(header),
		}
		if err := r.parseParamValue(param, header); err != nil {
			return nil, err
		}

		params = append(params, param)
	}
}

// parseParamValue parses the value of a parameter according to the shape
// its type tag requires
func (r *run) parseParamValue(p *slast.Parameter, header Token) error {
	r.skipComments()

	switch p.Type {
	case slast.ParamFloat:
		values, err := r.floatValues(header)
		if err != nil {
			return err
		}
		p.Floats = values
		return nil

	case slast.ParamInteger:
		values, err := r.intValues(header)
		if err != nil {
			return err
		}
		p.Ints = values
		return nil

	case slast.ParamString:
		values, err := r.stringValues(header)
		if err != nil {
			return err
		}
		p.Strings = values
		return nil

	case slast.ParamBool:
		value, err := r.boolValue(header)
		if err != nil {
			return err
		}
		p.Bools = []bool{value}
		return nil

	case slast.ParamSpectrum:
		return r.spectrumValue(p, header)

	default:
		// Fixed-arity tuple types: a bracketed flat float list whose
		// length must divide by the tuple's group size
		open, err := r.expectOpenBracket(header)
		if err != nil {
			return err
		}
		values, err := r.floatListBody(open, header)
		if err != nil {
			return err
		}
		group := p.Type.GroupSize()
		if len(values)%group != 0 {
			return r.errAtPos(slerror.CodeParamValueMismatch, r.pos(header), header.Value,
				"%s values come in groups of %d, got %d", p.Type, group, len(values))
		}
		p.Floats = values
		return nil
	}
}

// floatValues parses a float value: either a bare literal or a bracketed
// list with at least one element
func (r *run) floatValues(header Token) ([]float64, error) {
	switch r.current.Type {
	case TokenNumber:
		value, err := r.floatLiteral()
		if err != nil {
			return nil, err
		}
		return []float64{value}, nil
	case TokenLeftBracket:
		open := r.current
		r.advance()
		return r.floatListBody(open, header)
	case TokenEOF:
		return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"input ended inside parameter '%s'", header.Value)
	case TokenIllegal:
		return nil, r.illegal()
	default:
		return nil, r.errAt(slerror.CodeParamValueMismatch, r.current,
			"expected float value for '%s'", header.Value)
	}
}

// intValues parses an integer value: either a bare literal or a bracketed
// list with at least one element. Non-integer numeric literals are a value
// mismatch, not a silent truncation.
func (r *run) intValues(header Token) ([]int64, error) {
	switch r.current.Type {
	case TokenNumber:
		value, err := r.intLiteral(header)
		if err != nil {
			return nil, err
		}
		return []int64{value}, nil
	case TokenLeftBracket:
		open := r.current
		r.advance()
		return r.intListBody(open, header)
	case TokenEOF:
		return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"input ended inside parameter '%s'", header.Value)
	case TokenIllegal:
		return nil, r.illegal()
	default:
		return nil, r.errAt(slerror.CodeParamValueMismatch, r.current,
			"expected integer value for '%s'", header.Value)
	}
}

// stringValues parses a string value: either a bare quoted string or a
// bracketed list with at least one element
func (r *run) stringValues(header Token) ([]string, error) {
	switch r.current.Type {
	case TokenString:
		value := r.current.Value
		r.advance()
		return []string{value}, nil
	case TokenLeftBracket:
		open := r.current
		r.advance()
		return r.stringListBody(open, header)
	case TokenEOF:
		return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"input ended inside parameter '%s'", header.Value)
	case TokenIllegal:
		return nil, r.illegal()
	default:
		return nil, r.errAt(slerror.CodeParamValueMismatch, r.current,
			"expected string value for '%s'", header.Value)
	}
}

// boolValue parses a bool value: exactly one quoted 'true' or 'false'
// literal, bare or bracketed
func (r *run) boolValue(header Token) (bool, error) {
	switch r.current.Type {
	case TokenString:
		return r.boolLiteral(header)

	case TokenLeftBracket:
		open := r.current
		r.advance()
		r.skipComments()

		switch r.current.Type {
		case TokenRightBracket:
			return false, r.errAtPos(slerror.CodeMalformedLiteral, r.pos(open), open.Value,
				"empty value list for '%s'", header.Value)
		case TokenString:
			// handled below
		case TokenEOF:
			return false, r.errAt(slerror.CodeUnexpectedEOF, r.current,
				"value list for '%s' never closed", header.Value)
		case TokenIllegal:
			return false, r.illegal()
		default:
			return false, r.errAt(slerror.CodeParamValueMismatch, r.current,
				"expected bool value for '%s'", header.Value)
		}

		value, err := r.boolLiteral(header)
		if err != nil {
			return false, err
		}

		r.skipComments()
		switch r.current.Type {
		case TokenRightBracket:
			r.advance()
			return value, nil
		case TokenString:
			return false, r.errAt(slerror.CodeParamValueMismatch, r.current,
				"'%s' takes a single bool value", header.Value)
		case TokenEOF:
			return false, r.errAt(slerror.CodeUnexpectedEOF, r.current,
				"value list for '%s' never closed", header.Value)
		case TokenIllegal:
			return false, r.illegal()
		default:
			return false, r.errAt(slerror.CodeParamValueMismatch, r.current,
				"expected ']' after bool value for '%s'", header.Value)
		}

	case TokenEOF:
		return false, r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"input ended inside parameter '%s'", header.Value)
	case TokenIllegal:
		return false, r.illegal()
	default:
		return false, r.errAt(slerror.CodeParamValueMismatch, r.current,
			"expected bool value for '%s'", header.Value)
	}
}

// spectrumValue parses a spectrum value: either a bracketed float list of
// wavelength/value pairs, or a single quoted spectrum name (bare or
// bracketed)
func (r *run) spectrumValue(p *slast.Parameter, header Token) error {
	switch r.current.Type {
	case TokenString:
		p.Strings = []string{r.current.Value}
		r.advance()
		return nil

	case TokenLeftBracket:
		open := r.current
		r.advance()
		r.skipComments()

		switch r.current.Type {
		case TokenString:
			name := r.current.Value
			r.advance()
			r.skipComments()
			switch r.current.Type {
			case TokenRightBracket:
				r.advance()
				p.Strings = []string{name}
				return nil
			case TokenEOF:
				return r.errAt(slerror.CodeUnexpectedEOF, r.current,
					"value list for '%s' never closed", header.Value)
			case TokenIllegal:
				return r.illegal()
			default:
				return r.errAt(slerror.CodeParamValueMismatch, r.current,
					"'%s' takes a single spectrum name", header.Value)
			}

		case TokenNumber:
			values, err := r.floatListBody(open, header)
			if err != nil {
				return err
			}
			if len(values)%2 != 0 {
				return r.errAtPos(slerror.CodeParamValueMismatch, r.pos(header), header.Value,
					"spectrum values for '%s' come in wavelength/value pairs", header.Value)
			}
			p.Floats = values
			return nil

		case TokenRightBracket:
			return r.errAtPos(slerror.CodeMalformedLiteral, r.pos(open), open.Value,
				"empty value list for '%s'", header.Value)
		case TokenEOF:
			return r.errAt(slerror.CodeUnexpectedEOF, r.current,
				"value list for '%s' never closed", header.Value)
		case TokenIllegal:
			return r.illegal()
		default:
			return r.errAt(slerror.CodeParamValueMismatch, r.current,
				"expected spectrum value for '%s'", header.Value)
		}

	case TokenEOF:
		return r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"input ended inside parameter '%s'", header.Value)
	case TokenIllegal:
		return r.illegal()
	default:
		return r.errAt(slerror.CodeParamValueMismatch, r.current,
			"expected spectrum value for '%s'", header.Value)
	}
}

// expectOpenBracket consumes the '[' that must open a bracketed value list
func (r *run) expectOpenBracket(header Token) (Token, error) {
	switch r.current.Type {
	case TokenLeftBracket:
		open := r.current
		r.advance()
		return open, nil
	case TokenEOF:
		return Token{}, r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"input ended inside parameter '%s'", header.Value)
	case TokenIllegal:
		return Token{}, r.illegal()
	default:
		return Token{}, r.errAt(slerror.CodeParamValueMismatch, r.current,
			"values for '%s' must be bracketed", header.Value)
	}
}

// floatListBody parses the inside of a bracketed float list after the '['
// has been consumed. Lists must contain at least one element.
func (r *run) floatListBody(open Token, header Token) ([]float64, error) {
	var values []float64

	for {
		r.skipComments()

		switch r.current.Type {
		case TokenRightBracket:
			if len(values) == 0 {
				return nil, r.errAtPos(slerror.CodeMalformedLiteral, r.pos(open), open.Value,
					"empty value list for '%s'", header.Value)
			}
			r.advance()
			return values, nil
		case TokenNumber:
			value, err := r.floatLiteral()
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		case TokenEOF:
			return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
				"value list for '%s' never closed", header.Value)
		case TokenIllegal:
			return nil, r.illegal()
		default:
			return nil, r.errAt(slerror.CodeParamValueMismatch, r.current,
				"expected float value for '%s'", header.Value)
		}
	}
}

// intListBody parses the inside of a bracketed integer list after the '['
// has been consumed
func (r *run) intListBody(open Token, header Token) ([]int64, error) {
	var values []int64

	for {
		r.skipComments()

		switch r.current.Type {
		case TokenRightBracket:
			if len(values) == 0 {
				return nil, r.errAtPos(slerror.CodeMalformedLiteral, r.pos(open), open.Value,
					"empty value list for '%s'", header.Value)
			}
			r.advance()
			return values, nil
		case TokenNumber:
			value, err := r.intLiteral(header)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		case TokenEOF:
			return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
				"value list for '%s' never closed", header.Value)
		case TokenIllegal:
			return nil, r.illegal()
		default:
			return nil, r.errAt(slerror.CodeParamValueMismatch, r.current,
				"expected integer value for '%s'", header.Value)
		}
	}
}

// stringListBody parses the inside of a bracketed string list after the
// '[' has been consumed
func (r *run) stringListBody(open Token, header Token) ([]string, error) {
	var values []string

	for {
		r.skipComments()

		switch r.current.Type {
		case TokenRightBracket:
			if len(values) == 0 {
				return nil, r.errAtPos(slerror.CodeMalformedLiteral, r.pos(open), open.Value,
					"empty value list for '%s'", header.Value)
			}
			r.advance()
			return values, nil
		case TokenString:
			values = append(values, r.current.Value)
			r.advance()
		case TokenEOF:
			return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
				"value list for '%s' never closed", header.Value)
		case TokenIllegal:
			return nil, r.illegal()
		default:
			return nil, r.errAt(slerror.CodeParamValueMismatch, r.current,
				"expected string value for '%s'", header.Value)
		}
	}
}

// boolLiteral converts the current quoted string to a bool and advances.
// Only the literals 'true' and 'false' are accepted.
func (r *run) boolLiteral(header Token) (bool, error) {
	switch r.current.Value {
	case "true":
		r.advance()
		return true, nil
	case "false":
		r.advance()
		return false, nil
	default:
		return false, r.errAt(slerror.CodeParamValueMismatch, r.current,
			"expected 'true' or 'false' for '%s'", header.Value)
	}
}

// floatLiteral converts the current number token to a float and advances
func (r *run) floatLiteral() (float64, error) {
	value, err := strconv.ParseFloat(r.current.Value, 64)
	if err != nil {
		return 0, r.errAt(slerror.CodeMalformedLiteral, r.current, "malformed numeric literal")
	}
	r.advance()
	return value, nil
}

// intLiteral converts the current number token to an integer and advances.
// The literal must be integer-shaped: a float under an integer tag is a
// value mismatch.
func (r *run) intLiteral(header Token) (int64, error) {
	if !isIntegerLiteral(r.current.Value) {
		return 0, r.errAt(slerror.CodeParamValueMismatch, r.current,
			"expected integer value for '%s'", header.Value)
	}

	value, err := strconv.ParseInt(r.current.Value, 10, 64)
	if err != nil {
		return 0, r.errAt(slerror.CodeMalformedLiteral, r.current, "integer literal out of range")
	}

	r.advance()
	return value, nil
}
