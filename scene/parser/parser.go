// File: parser.go
// Title: Scene Description Recursive Descent Parser
// Description: Implements the parsing phase of scene description
//              processing. Converts token streams into document trees,
//              drives the scope stack for nested begin/end blocks,
//              enforces per-context directive legality, and reports
//              taxonomy-coded errors with exact positions.
// Version: v0.1.1
// Created: 2025-11-17
// Modified: 2025-11-18
//
// Change History:
// - 2025-11-17 v0.1.0: Initial parser implementation
// - 2025-11-18 v0.1.1: Retain statement-position comments held during
//   parameter scans

package parser

import (
	"fmt"
	"strings"

	slerror "github.com/candela-render/scenelang/core/error"
	sllog "github.com/candela-render/scenelang/core/log"
	slast "github.com/candela-render/scenelang/scene/ast"
	slregistry "github.com/candela-render/scenelang/scene/registry"
	"github.com/candela-render/scenelang/utils/slicex"
	"github.com/candela-render/scenelang/utils/stringx"
)

// Mode selects the document shape a parse expects
type Mode int

const (
	// ModeMain parses a full scene: an option preamble followed by
	// exactly one world block
	ModeMain Mode = iota
	// ModeFragment parses an includable fragment: a flat sequence of
	// scene statements with no world block
	ModeFragment
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeMain:
		return "main"
	case ModeFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// DefaultMaxInputLength bounds scene input size when Options does not
const DefaultMaxInputLength = 16 << 20

// Parser implements recursive descent parsing for scene descriptions.
// A Parser may be reused sequentially and shared between goroutines:
// every Parse call works on its own run state.
type Parser struct {
	registry *slregistry.Registry
	logger   *sllog.Logger
	options  Options
}

// Options configures parser behavior
type Options struct {
	Logger          *sllog.Logger
	Registry        *slregistry.Registry // Directive vocabulary; builtin when nil
	MaxInputLength  int                  // Maximum input size in bytes
	DiscardComments bool                 // Drop comment statements instead of retaining them
}

// ParseError represents a parsing error with its taxonomy code and the
// position of the offending token
type ParseError struct {
	Code    slerror.Code   // One of the PARSE_* codes
	Message string         // Human-readable description
	Token   string         // Offending token text ("" at end of input)
	Pos     slast.Position // Line, column, and byte offset
}

func (pe *ParseError) Error() string {
	if pe.Token == "" {
		return fmt.Sprintf("parse error at line %d, column %d: %s",
			pe.Pos.Line, pe.Pos.Column, pe.Message)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Pos.Line, pe.Pos.Column, pe.Message, pe.Token)
}

// New creates a new scene parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = sllog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.Registry == nil {
		registry, err := slregistry.New(slregistry.Options{Logger: opts.Logger})
		if err != nil {
			return nil, err
		}
		opts.Registry = registry
	}

	return &Parser{
		registry: opts.Registry,
		logger:   opts.Logger.WithField("component", "scene-parser"),
		options:  opts,
	}, nil
}

// Registry returns the directive vocabulary the parser dispatches on
func (p *Parser) Registry() *slregistry.Registry {
	return p.registry
}

// Parse parses scene description text in the given mode and returns the
// document tree. The document is returned only on full success; the
// first error aborts the invocation.
func (p *Parser) Parse(input string, mode Mode) (*slast.Document, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, slerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d bytes",
			len(input), p.options.MaxInputLength)).WithCode(slerror.CodeInvalidInput)
	}

	r := &run{
		parser: p,
		lexer:  NewLexer(input),
		mode:   mode,
	}
	r.advance() // Load first token

	p.logger.Debug("starting scene parse", sllog.Fields{
		"mode":   mode.String(),
		"length": len(input),
	})

	doc, err := r.parseDocument()
	if err != nil {
		p.logger.Warn("scene parse failed", sllog.Fields{
			"mode":  mode.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	statements := len(doc.Options) + len(doc.Statements)
	if doc.World != nil {
		statements += len(doc.World.Statements)
	}
	p.logger.Debug("scene parse completed", sllog.Fields{
		"mode":       mode.String(),
		"statements": statements,
	})

	return doc, nil
}

// run holds the mutable state of one parse invocation
type run struct {
	parser   *Parser
	lexer    *Lexer
	current  Token
	previous Token
	mode     Mode
	stack    []frame // Open scope frames, innermost last
	pending  []Token // Statement-position comments awaiting emission
}

// frame records an open scope block
type frame struct {
	keyword string
	closer  string
	pos     slast.Position
}

// parseDocument parses the document shape selected by the mode
func (r *run) parseDocument() (*slast.Document, error) {
	if r.mode == ModeFragment {
		return r.parseFragment()
	}
	return r.parseMain()
}

// parseMain parses a full scene: zero or more option statements, then
// exactly one world block, then nothing but comments
func (r *run) parseMain() (*slast.Document, error) {
	doc := &slast.Document{Kind: slast.DocumentMain, Pos: r.pos(r.current)}

preamble:
	for {
		r.drainPending(&doc.Options)

		switch r.current.Type {
		case TokenEOF:
			return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
				"input ended before the world block")
		case TokenComment:
			r.commentStatement(&doc.Options)
		case TokenWord:
			if r.current.Value == "WorldBegin" {
				break preamble
			}
			stmt, err := r.parseStatement(slregistry.CtxOption)
			if err != nil {
				return nil, err
			}
			doc.Options = append(doc.Options, stmt)
		case TokenIllegal:
			return nil, r.illegal()
		default:
			return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
				"expected a directive keyword")
		}
	}

	opener := r.current
	r.stack = append(r.stack, frame{keyword: opener.Value, closer: "WorldEnd", pos: r.pos(opener)})
	r.advance()

	statements, err := r.parseBlockBody(slregistry.CtxScene)
	if err != nil {
		return nil, err
	}
	doc.World = &slast.WorldBlock{Statements: statements, Pos: r.pos(opener)}

	// Nothing but comments may follow the world block
	for {
		switch r.current.Type {
		case TokenEOF:
			return doc, nil
		case TokenComment:
			r.advance()
		case TokenWord:
			if def, ok := r.parser.registry.Lookup(r.current.Value); ok && def.Shape == slregistry.ShapeScopeEnd {
				return nil, r.errAt(slerror.CodeUnbalancedScope, r.current,
					"unmatched %s", r.current.Value)
			}
			return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
				"statement after WorldEnd")
		case TokenIllegal:
			return nil, r.illegal()
		default:
			return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
				"statement after WorldEnd")
		}
	}
}

// parseFragment parses an includable fragment: a flat sequence of scene
// statements running to end of input
func (r *run) parseFragment() (*slast.Document, error) {
	doc := &slast.Document{Kind: slast.DocumentFragment, Pos: r.pos(r.current)}

	for {
		r.drainPending(&doc.Statements)

		switch r.current.Type {
		case TokenEOF:
			return doc, nil
		case TokenComment:
			r.commentStatement(&doc.Statements)
		case TokenWord:
			stmt, err := r.parseStatement(slregistry.CtxScene)
			if err != nil {
				return nil, err
			}
			doc.Statements = append(doc.Statements, stmt)
		case TokenIllegal:
			return nil, r.illegal()
		default:
			return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
				"expected a directive keyword")
		}
	}
}

// parseBlockBody parses statements inside the innermost open scope until
// its closing keyword is consumed. Closing keywords are always checked
// against the scope stack first, so a mismatched closer reports the open
// frame rather than a context violation.
func (r *run) parseBlockBody(ctx slregistry.Context) ([]slast.Statement, error) {
	var statements []slast.Statement

	for {
		r.drainPending(&statements)

		switch r.current.Type {
		case TokenEOF:
			top := r.stack[len(r.stack)-1]
			return nil, r.errAtPos(slerror.CodeUnbalancedScope, top.pos, top.keyword,
				"%s was never closed", top.keyword)
		case TokenComment:
			r.commentStatement(&statements)
		case TokenWord:
			if def, ok := r.parser.registry.Lookup(r.current.Value); ok && def.Shape == slregistry.ShapeScopeEnd {
				top := r.stack[len(r.stack)-1]
				if top.closer != r.current.Value {
					return nil, r.errAtPos(slerror.CodeUnbalancedScope, top.pos, r.current.Value,
						"%s closed by %s", top.keyword, r.current.Value)
				}
				r.stack = r.stack[:len(r.stack)-1]
				r.advance()
				return statements, nil
			}
			stmt, err := r.parseStatement(ctx)
			if err != nil {
				return nil, err
			}
			statements = append(statements, stmt)
		case TokenIllegal:
			return nil, r.illegal()
		default:
			return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
				"expected a directive keyword")
		}
	}
}

// parseStatement parses one statement whose keyword is the current token.
// Context legality for non-scope statements is checked at the keyword;
// scope blocks defer the check until their structure has balanced.
func (r *run) parseStatement(ctx slregistry.Context) (slast.Statement, error) {
	keyword := r.current

	def, ok := r.parser.registry.Lookup(keyword.Value)
	if !ok {
		return nil, r.errAt(slerror.CodeUnexpectedToken, keyword, "unknown directive")
	}

	switch def.Shape {
	case slregistry.ShapeScopeBegin:
		return r.parseScopeBlock(def, ctx)
	case slregistry.ShapeScopeEnd:
		// Closers inside open scopes are consumed by parseBlockBody, so
		// one arriving here has no open frame at all
		return nil, r.errAt(slerror.CodeUnbalancedScope, keyword, "unmatched %s", keyword.Value)
	}

	if !r.parser.registry.AllowedIn(keyword.Value, ctx) {
		return nil, r.errAt(slerror.CodeUnexpectedToken, keyword,
			"%s is not legal in %s context", keyword.Value, ctx)
	}

	r.advance()

	switch def.Shape {
	case slregistry.ShapeTransform:
		return r.parseTransform(def, keyword)
	case slregistry.ShapeNamed:
		return r.parseNamed(def, keyword)
	case slregistry.ShapeTyped:
		return r.parseTyped(keyword)
	case slregistry.ShapeTexture:
		return r.parseTexture(keyword)
	case slregistry.ShapeMedium:
		return r.parseMediumInterface(keyword)
	case slregistry.ShapeMode:
		return r.parseActiveTransform(def, keyword)
	case slregistry.ShapeToggle:
		return &slast.ReverseOrientation{Pos: r.pos(keyword)}, nil
	default:
		return nil, fmt.Errorf("no statement parser for directive shape %s", def.Shape)
	}
}

// parseScopeBlock parses a begin/end block. The structural pass runs
// first: the frame is pushed, the body parsed, and the closer matched;
// only then is the opener's context legality checked, so an unbalanced
// block reports UnbalancedScope even when the opener was also misplaced.
func (r *run) parseScopeBlock(def *slregistry.Definition, ctx slregistry.Context) (slast.Statement, error) {
	opener := r.current
	r.advance()

	name := ""
	if def.TakesName {
		r.skipComments()
		switch r.current.Type {
		case TokenString:
			name = r.current.Value
			r.advance()
		case TokenEOF:
			return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
				"expected a name after %s", opener.Value)
		case TokenIllegal:
			return nil, r.illegal()
		default:
			return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
				"expected a name after %s", opener.Value)
		}
	}

	// Attribute and transform blocks admit whatever their surroundings
	// admit; object definitions switch to object context
	inner := ctx
	switch opener.Value {
	case "ObjectBegin":
		inner = slregistry.CtxObject
	case "WorldBegin":
		inner = slregistry.CtxScene
	}

	r.stack = append(r.stack, frame{keyword: opener.Value, closer: def.Closer, pos: r.pos(opener)})

	statements, err := r.parseBlockBody(inner)
	if err != nil {
		return nil, err
	}

	if !r.parser.registry.AllowedIn(opener.Value, ctx) {
		return nil, r.errAtPos(slerror.CodeUnexpectedToken, r.pos(opener), opener.Value,
			"%s is not legal in %s context", opener.Value, ctx)
	}

	switch opener.Value {
	case "AttributeBegin":
		return &slast.AttributeBlock{Statements: statements, Pos: r.pos(opener)}, nil
	case "TransformBegin":
		return &slast.TransformBlock{Statements: statements, Pos: r.pos(opener)}, nil
	case "ObjectBegin":
		return &slast.ObjectBlock{Name: name, Statements: statements, Pos: r.pos(opener)}, nil
	default:
		return nil, fmt.Errorf("no block node for scope directive %s", opener.Value)
	}
}

// parseTransform parses a bare transform directive with fixed float
// arity. The argument run may be wrapped in an optional bracket pair
// (matrix directives are commonly written that way). LookAt may carry a
// comment between the keyword and its first argument; the comment is
// retained on the directive for round-tripping.
func (r *run) parseTransform(def *slregistry.Definition, keyword Token) (slast.Statement, error) {
	directive := &slast.TransformDirective{Op: def.Op, Pos: r.pos(keyword)}

	if def.Op == slast.OpLookAt && r.current.Type == TokenComment {
		directive.Comment = r.current.Value
		r.advance()
	}

	if def.FloatArgs > 0 {
		r.skipComments()
		bracketed := false
		if r.current.Type == TokenLeftBracket {
			bracketed = true
			r.advance()
		}

		directive.Args = make([]float64, 0, def.FloatArgs)
		for i := 0; i < def.FloatArgs; i++ {
			value, err := r.floatArg(keyword)
			if err != nil {
				return nil, err
			}
			directive.Args = append(directive.Args, value)
		}

		if bracketed {
			r.skipComments()
			switch r.current.Type {
			case TokenRightBracket:
				r.advance()
			case TokenEOF:
				return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
					"argument list for %s never closed", keyword.Value)
			case TokenIllegal:
				return nil, r.illegal()
			default:
				return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
					"expected ']' after %d arguments for %s", def.FloatArgs, keyword.Value)
			}
		}
	}

	return directive, nil
}

// floatArg reads one bare numeric argument of a fixed-arity directive
func (r *run) floatArg(keyword Token) (float64, error) {
	r.skipComments()

	switch r.current.Type {
	case TokenNumber:
		return r.floatLiteral()
	case TokenEOF:
		return 0, r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"input ended inside %s", keyword.Value)
	case TokenIllegal:
		return 0, r.illegal()
	default:
		return 0, r.errAt(slerror.CodeUnexpectedToken, r.current,
			"expected a numeric argument for %s", keyword.Value)
	}
}

// parseNamed parses a directive that takes exactly one quoted name
func (r *run) parseNamed(def *slregistry.Definition, keyword Token) (slast.Statement, error) {
	r.skipComments()

	var name string
	switch r.current.Type {
	case TokenString:
		name = r.current.Value
	case TokenEOF:
		return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"expected a name after %s", keyword.Value)
	case TokenIllegal:
		return nil, r.illegal()
	default:
		return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
			"expected a quoted name after %s", keyword.Value)
	}

	if def.NameIsIdentifier && !stringx.IsIdentifier(name) {
		return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
			"%s requires an identifier-shaped name", keyword.Value)
	}
	r.advance()

	pos := r.pos(keyword)
	switch keyword.Value {
	case "CoordinateSystem", "CoordSysTransform":
		return &slast.CoordSysDirective{Keyword: keyword.Value, Name: name, Pos: pos}, nil
	case "NamedMaterial":
		return &slast.NamedMaterial{Name: name, Pos: pos}, nil
	case "ObjectInstance":
		return &slast.ObjectInstance{Name: name, Pos: pos}, nil
	case "Include":
		return &slast.Include{Path: name, Pos: pos}, nil
	default:
		// Custom named directives registered by a renderer surface as
		// typed directives without parameters
		return &slast.TypedDirective{Keyword: keyword.Value, Name: name, Pos: pos}, nil
	}
}

// parseTyped parses a directive that takes a quoted type name and a
// greedy parameter list
func (r *run) parseTyped(keyword Token) (slast.Statement, error) {
	name, err := r.quotedArg(keyword, "a type name")
	if err != nil {
		return nil, err
	}

	params, err := r.parseParameters()
	if err != nil {
		return nil, err
	}

	return &slast.TypedDirective{Keyword: keyword.Value, Name: name, Params: params, Pos: r.pos(keyword)}, nil
}

// parseTexture parses the texture directive: a texture name, a value
// type word, a texture class, and a greedy parameter list
func (r *run) parseTexture(keyword Token) (slast.Statement, error) {
	name, err := r.quotedArg(keyword, "a texture name")
	if err != nil {
		return nil, err
	}
	valueType, err := r.quotedArg(keyword, "a value type")
	if err != nil {
		return nil, err
	}
	class, err := r.quotedArg(keyword, "a texture class")
	if err != nil {
		return nil, err
	}

	params, err := r.parseParameters()
	if err != nil {
		return nil, err
	}

	return &slast.Texture{Name: name, ValueType: valueType, Class: class, Params: params, Pos: r.pos(keyword)}, nil
}

// parseMediumInterface parses the two medium-name slots; each may be an
// empty string meaning "no medium"
func (r *run) parseMediumInterface(keyword Token) (slast.Statement, error) {
	inside, err := r.quotedArg(keyword, "an inside medium name")
	if err != nil {
		return nil, err
	}
	outside, err := r.quotedArg(keyword, "an outside medium name")
	if err != nil {
		return nil, err
	}

	return &slast.MediumInterface{Inside: inside, Outside: outside, Pos: r.pos(keyword)}, nil
}

// parseActiveTransform parses the one mode word; anything outside the
// mode vocabulary is an error, never a silent default
func (r *run) parseActiveTransform(def *slregistry.Definition, keyword Token) (slast.Statement, error) {
	r.skipComments()

	switch r.current.Type {
	case TokenWord:
		if !slicex.Contains(def.Modes, r.current.Value) {
			return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
				"expected one of %s after %s", strings.Join(def.Modes, ", "), keyword.Value)
		}
		mode := r.current.Value
		r.advance()
		return &slast.ActiveTransform{Mode: mode, Pos: r.pos(keyword)}, nil
	case TokenEOF:
		return nil, r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"expected a mode word after %s", keyword.Value)
	case TokenIllegal:
		return nil, r.illegal()
	default:
		return nil, r.errAt(slerror.CodeUnexpectedToken, r.current,
			"expected a mode word after %s", keyword.Value)
	}
}

// quotedArg reads one quoted string argument of a directive
func (r *run) quotedArg(keyword Token, what string) (string, error) {
	r.skipComments()

	switch r.current.Type {
	case TokenString:
		value := r.current.Value
		r.advance()
		return value, nil
	case TokenEOF:
		return "", r.errAt(slerror.CodeUnexpectedEOF, r.current,
			"expected %s after %s", what, keyword.Value)
	case TokenIllegal:
		return "", r.illegal()
	default:
		return "", r.errAt(slerror.CodeUnexpectedToken, r.current,
			"expected %s after %s", what, keyword.Value)
	}
}

// Utility methods

// advance moves to the next token
func (r *run) advance() {
	r.previous = r.current
	r.current = r.lexer.NextToken()
}

// skipComments discards comment tokens acting as whitespace
func (r *run) skipComments() {
	for r.current.Type == TokenComment {
		r.advance()
	}
}

// collectComments consumes comment tokens and returns them so the caller
// can either discard them or hand them back as pending statements
func (r *run) collectComments() []Token {
	var comments []Token
	for r.current.Type == TokenComment {
		comments = append(comments, r.current)
		r.advance()
	}
	return comments
}

// commentStatement retains the current comment token as a statement,
// unless comments are configured away
func (r *run) commentStatement(statements *[]slast.Statement) {
	if !r.parser.options.DiscardComments {
		*statements = append(*statements, &slast.Comment{Text: r.current.Value, Pos: r.pos(r.current)})
	}
	r.advance()
}

// drainPending emits comments held during a parameter scan as statements
func (r *run) drainPending(statements *[]slast.Statement) {
	if len(r.pending) == 0 {
		return
	}
	if !r.parser.options.DiscardComments {
		for _, tok := range r.pending {
			*statements = append(*statements, &slast.Comment{Text: tok.Value, Pos: r.pos(tok)})
		}
	}
	r.pending = r.pending[:0]
}

// pos converts a token to an AST position
func (r *run) pos(tok Token) slast.Position {
	return slast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}

// errAt creates a parse error at a token
func (r *run) errAt(code slerror.Code, tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Token:   tok.Value,
		Pos:     r.pos(tok),
	}
}

// errAtPos creates a parse error at an explicit position
func (r *run) errAtPos(code slerror.Code, pos slast.Position, near string, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Token:   near,
		Pos:     pos,
	}
}

// illegal maps an illegal lexer token to its parse error: blobs starting
// with a quote are unterminated strings, blobs starting numerically are
// malformed numbers, anything else is a stray character
func (r *run) illegal() error {
	tok := r.current
	switch {
	case strings.HasPrefix(tok.Value, `"`):
		return r.errAt(slerror.CodeMalformedLiteral, tok, "unterminated string literal")
	case tok.Value != "" && (isDigit(tok.Value[0]) || tok.Value[0] == '+' || tok.Value[0] == '-' || tok.Value[0] == '.'):
		return r.errAt(slerror.CodeMalformedLiteral, tok, "malformed numeric literal")
	default:
		return r.errAt(slerror.CodeUnexpectedToken, tok, "unexpected character")
	}
}
