// File: lexer.go
// Title: Scene Description Lexical Analyzer
// Description: Implements the lexical analysis phase of scene parsing.
//              Converts scene description text into streams of tokens for
//              the parser. Recognizes directive keywords, numeric literals,
//              quoted strings, brackets, and comments, and provides
//              detailed position information for error reporting.
// Version: v0.1.0
// Created: 2025-11-16
// Modified: 2025-11-16
//
// Change History:
// - 2025-11-16 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Words and literals
	TokenWord    // WorldBegin, Translate, StartTime
	TokenNumber  // 42, -1.5, .25, 6e-7
	TokenString  // "string literal"
	TokenComment // # comment text

	// Delimiters
	TokenLeftBracket  // [
	TokenRightBracket // ]
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text (without quotes for strings, without '#' for comments)
	Position int       // Byte offset in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenWord:
		return "WORD"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenComment:
		return "COMMENT"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of scene description input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '[':
		l.readChar()
		return Token{Type: TokenLeftBracket, Value: "[", Position: pos, Line: line, Column: column}
	case ']':
		l.readChar()
		return Token{Type: TokenRightBracket, Value: "]", Position: pos, Line: line, Column: column}
	case '#':
		value := l.readComment()
		return Token{Type: TokenComment, Value: value, Position: pos, Line: line, Column: column}
	case '"':
		value, terminated := l.readString()
		if !terminated {
			return Token{Type: TokenIllegal, Value: value, Position: pos, Line: line, Column: column}
		}
		l.readChar() // step past closing quote
		return Token{Type: TokenString, Value: value, Position: pos, Line: line, Column: column}
	case 0:
		return Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			value := l.readWord()
			return Token{Type: TokenWord, Value: value, Position: pos, Line: line, Column: column}
		}
		if isDigit(l.ch) || l.ch == '+' || l.ch == '-' || l.ch == '.' {
			value, ok := l.readNumber()
			if !ok {
				return Token{Type: TokenIllegal, Value: value, Position: pos, Line: line, Column: column}
			}
			return Token{Type: TokenNumber, Value: value, Position: pos, Line: line, Column: column}
		}
		ch := l.ch
		l.readChar()
		return Token{Type: TokenIllegal, Value: string(ch), Position: pos, Line: line, Column: column}
	}
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("malformed token '%s' at line %d, column %d (offset %d)",
				tok.Value, tok.Line, tok.Column, tok.Position)
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// readWord reads a bare word (letter followed by letters and digits)
func (l *Lexer) readWord() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal. Integers are an optional sign and
// digits; floats additionally allow a fractional part in both surface forms
// (leading digits or leading period) and a case-insensitive exponent. After
// the literal the next byte must be whitespace, ']', '#', or end of input;
// anything else makes the literal malformed.
func (l *Lexer) readNumber() (string, bool) {
	start := l.position
	ok := true

	if l.ch == '+' || l.ch == '-' {
		l.readChar()
	}

	digits := false
	for isDigit(l.ch) {
		digits = true
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			digits = true
			l.readChar()
		}
	}
	if !digits {
		ok = false
	}

	if ok && (l.ch == 'e' || l.ch == 'E') {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if !isDigit(l.ch) {
			ok = false
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if ok && !l.atLiteralBoundary() {
		ok = false
	}

	if !ok {
		// Consume the rest of the blob so the token carries the full
		// malformed text (e.g. '1.2.3')
		for !l.atLiteralBoundary() && l.ch != '"' {
			l.readChar()
		}
	}

	return l.input[start:l.position], ok
}

// readString reads a double-quoted string literal. The grammar has no
// escape mechanism: any byte except '"' is content, newlines included.
// Reports whether the closing quote was found.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1 // Skip opening quote

	for {
		l.readChar()
		if l.ch == '"' {
			return l.input[start:l.position], true
		}
		if l.ch == 0 {
			// Unterminated: include the opening quote so the caller can
			// tell this blob apart from a malformed number
			return l.input[start-1 : l.position], false
		}
	}
}

// readComment reads a comment from '#' through end of line, excluding both
func (l *Lexer) readComment() string {
	start := l.position + 1 // Skip '#'

	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}

	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// atLiteralBoundary reports whether the current character may legally
// follow a numeric literal
func (l *Lexer) atLiteralBoundary() bool {
	return l.ch == 0 || l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' ||
		l.ch == ']' || l.ch == '#'
}

// Utility functions

// isLetter checks if the character is an ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
