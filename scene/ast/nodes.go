// File: nodes.go
// Title: Scene AST Node Definitions
// Description: Defines all AST node types for representing scene-description
//              documents including transform directives, scope blocks, typed
//              directives, and references. Provides canonical string
//              representations and validation methods.
// Version: v0.1.0
// Created: 2025-11-14
// Modified: 2025-11-14
//
// Change History:
// - 2025-11-14 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	"github.com/candela-render/scenelang/utils/mapx"
	"github.com/candela-render/scenelang/utils/slicex"
	"github.com/candela-render/scenelang/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical surface text of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error
}

// Statement represents a node that may appear in a statement sequence
type Statement interface {
	Node
	stmtNode() // marker method
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns the position as "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// DocumentKind distinguishes the two document variants
type DocumentKind int

const (
	// DocumentMain is a full scene: option statements, then one world block
	DocumentMain DocumentKind = iota

	// DocumentFragment is a flat statement sequence pulled in via Include
	DocumentFragment
)

// String returns string representation of DocumentKind
func (dk DocumentKind) String() string {
	switch dk {
	case DocumentMain:
		return "main"
	case DocumentFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Document represents the root result of parsing one input unit. A main
// document populates Options and World; a fragment populates Statements.
type Document struct {
	Kind       DocumentKind // Document variant
	Options    []Statement  // Option statements before WorldBegin (main only)
	World      *WorldBlock  // The world block (main only)
	Statements []Statement  // Flat scene statements (fragment only)
	Pos        Position     // Source position
}

// WorldBlock represents the WorldBegin/WorldEnd block of a main document
type WorldBlock struct {
	Statements []Statement // Scene statements inside the block
	Pos        Position    // Position of the WorldBegin keyword
}

// AttributeBlock represents an AttributeBegin/AttributeEnd scope
type AttributeBlock struct {
	Statements []Statement // Nested statements
	Pos        Position    // Position of the AttributeBegin keyword
}

// TransformBlock represents a TransformBegin/TransformEnd scope
type TransformBlock struct {
	Statements []Statement // Nested statements
	Pos        Position    // Position of the TransformBegin keyword
}

// ObjectBlock represents an ObjectBegin "name"/ObjectEnd scope. The name is
// an arbitrary quoted string, unlike the identifier-shaped name that
// ObjectInstance requires to reference it.
type ObjectBlock struct {
	Name       string      // Object name (arbitrary string)
	Statements []Statement // Nested statements
	Pos        Position    // Position of the ObjectBegin keyword
}

// TransformOp identifies a fixed-arity transform directive
type TransformOp int

const (
	OpIdentity TransformOp = iota
	OpTranslate
	OpScale
	OpRotate
	OpLookAt
	OpTransform
	OpConcatTransform
	OpTransformTimes
)

// String returns the directive keyword
func (op TransformOp) String() string {
	switch op {
	case OpIdentity:
		return "Identity"
	case OpTranslate:
		return "Translate"
	case OpScale:
		return "Scale"
	case OpRotate:
		return "Rotate"
	case OpLookAt:
		return "LookAt"
	case OpTransform:
		return "Transform"
	case OpConcatTransform:
		return "ConcatTransform"
	case OpTransformTimes:
		return "TransformTimes"
	default:
		return "unknown"
	}
}

// Arity returns the exact number of float arguments the op requires
func (op TransformOp) Arity() int {
	switch op {
	case OpIdentity:
		return 0
	case OpTranslate, OpScale:
		return 3
	case OpRotate:
		return 4
	case OpLookAt:
		return 9
	case OpTransform, OpConcatTransform:
		return 16
	case OpTransformTimes:
		return 2
	default:
		return -1
	}
}

// transformOps maps directive keywords onto transform ops
var transformOps = map[string]TransformOp{
	"Identity":        OpIdentity,
	"Translate":       OpTranslate,
	"Scale":           OpScale,
	"Rotate":          OpRotate,
	"LookAt":          OpLookAt,
	"Transform":       OpTransform,
	"ConcatTransform": OpConcatTransform,
	"TransformTimes":  OpTransformTimes,
}

// TransformOpForKeyword resolves a directive keyword to its transform op
func TransformOpForKeyword(keyword string) (TransformOp, bool) {
	op, ok := transformOps[keyword]
	return op, ok
}

// TransformKeywords returns all transform directive keywords in sorted order
func TransformKeywords() []string {
	return slicex.Sort(mapx.Keys(transformOps))
}

// TransformDirective represents one fixed-arity transform directive with its
// flat float argument list. Comment holds the one comment the grammar admits
// between the LookAt keyword and its first argument; it is empty for every
// other op.
type TransformDirective struct {
	Op      TransformOp // Which directive
	Args    []float64   // Flat float arguments, length == Op.Arity()
	Comment string      // Embedded comment text (LookAt only)
	Pos     Position    // Source position
}

// CoordSysDirective represents CoordinateSystem or CoordSysTransform
type CoordSysDirective struct {
	Keyword string   // "CoordinateSystem" or "CoordSysTransform"
	Name    string   // Coordinate system name (arbitrary string)
	Pos     Position // Source position
}

// ActiveTransform modes
const (
	ActiveTransformStartTime = "StartTime"
	ActiveTransformEndTime   = "EndTime"
	ActiveTransformAll       = "All"
)

// ActiveTransform represents an ActiveTransform directive with its mode word
type ActiveTransform struct {
	Mode string   // "StartTime", "EndTime", or "All"
	Pos  Position // Source position
}

// ReverseOrientation represents the bare ReverseOrientation toggle
type ReverseOrientation struct {
	Pos Position // Source position
}

// MediumInterface represents a MediumInterface directive. Either name may be
// the empty string, meaning "no medium" on that side.
type MediumInterface struct {
	Inside  string   // Inside medium name
	Outside string   // Outside medium name
	Pos     Position // Source position
}

// NamedMaterial represents a NamedMaterial reference. The name must be
// identifier-shaped (a letter followed by letters, digits, or
// underscores).
type NamedMaterial struct {
	Name string   // Material name (identifier)
	Pos  Position // Source position
}

// ObjectInstance represents an ObjectInstance reference. The name must be
// identifier-shaped (a letter followed by letters, digits, or
// underscores).
type ObjectInstance struct {
	Name string   // Object name (identifier)
	Pos  Position // Source position
}

// Include represents an Include directive. The parser only records the path;
// resolving and parsing the referenced text is the caller's job.
type Include struct {
	Path string   // Included file name as written
	Pos  Position // Source position
}

// Comment represents a retained statement-position comment
type Comment struct {
	Text string   // Text after the '#', verbatim
	Pos  Position // Source position
}

// TypedDirective represents a directive carrying a quoted type name and an
// optional parameter list (Camera, Film, Material, Shape, ...)
type TypedDirective struct {
	Keyword string       // Directive keyword
	Name    string       // Quoted type name (may be empty)
	Params  []*Parameter // Parameter list (may be empty)
	Pos     Position     // Source position
}

// Texture represents a Texture declaration: a texture name, a value type,
// a texture class, and an optional parameter list
type Texture struct {
	Name      string       // Texture name
	ValueType string       // Value type ("float", "spectrum", ...)
	Class     string       // Texture class ("imagemap", "checkerboard", ...)
	Params    []*Parameter // Parameter list (may be empty)
	Pos       Position     // Source position
}

// Implementation of Node interface for Document

func (d *Document) String() string {
	return strings.TrimRight(FormatAST(d), "\n")
}

func (d *Document) Accept(visitor Visitor) interface{} {
	return visitor.VisitDocument(d)
}

func (d *Document) Position() Position {
	return d.Pos
}

func (d *Document) Validate() error {
	switch d.Kind {
	case DocumentMain:
		if d.World == nil {
			return fmt.Errorf("main document requires a world block")
		}
		if len(d.Statements) > 0 {
			return fmt.Errorf("main document must not carry fragment statements")
		}
	case DocumentFragment:
		if d.World != nil {
			return fmt.Errorf("fragment document must not contain a world block")
		}
		if len(d.Options) > 0 {
			return fmt.Errorf("fragment document must not carry option statements")
		}
	default:
		return fmt.Errorf("unknown document kind: %d", int(d.Kind))
	}
	return nil
}

// IsMain returns true if this is a main document
func (d *Document) IsMain() bool {
	return d.Kind == DocumentMain
}

// IsFragment returns true if this is a fragment document
func (d *Document) IsFragment() bool {
	return d.Kind == DocumentFragment
}

// Implementation of Node interface for WorldBlock

func (w *WorldBlock) String() string {
	return strings.TrimRight(FormatAST(w), "\n")
}

func (w *WorldBlock) Accept(visitor Visitor) interface{} {
	return visitor.VisitWorldBlock(w)
}

func (w *WorldBlock) Position() Position {
	return w.Pos
}

func (w *WorldBlock) Validate() error {
	return nil
}

// Implementation of Node interface for AttributeBlock

func (a *AttributeBlock) String() string {
	return strings.TrimRight(FormatAST(a), "\n")
}

func (a *AttributeBlock) Accept(visitor Visitor) interface{} {
	return visitor.VisitAttributeBlock(a)
}

func (a *AttributeBlock) Position() Position {
	return a.Pos
}

func (a *AttributeBlock) Validate() error {
	return nil
}

// Implementation of Node interface for TransformBlock

func (t *TransformBlock) String() string {
	return strings.TrimRight(FormatAST(t), "\n")
}

func (t *TransformBlock) Accept(visitor Visitor) interface{} {
	return visitor.VisitTransformBlock(t)
}

func (t *TransformBlock) Position() Position {
	return t.Pos
}

func (t *TransformBlock) Validate() error {
	return nil
}

// Implementation of Node interface for ObjectBlock

func (o *ObjectBlock) String() string {
	return strings.TrimRight(FormatAST(o), "\n")
}

func (o *ObjectBlock) Accept(visitor Visitor) interface{} {
	return visitor.VisitObjectBlock(o)
}

func (o *ObjectBlock) Position() Position {
	return o.Pos
}

func (o *ObjectBlock) Validate() error {
	if stringx.IsBlank(o.Name) {
		return fmt.Errorf("object name is required")
	}
	return nil
}

// Implementation of Node interface for TransformDirective

func (t *TransformDirective) String() string {
	parts := make([]string, 0, len(t.Args)+1)
	parts = append(parts, t.Op.String())
	for _, arg := range t.Args {
		parts = append(parts, formatFloat(arg))
	}
	return strings.Join(parts, " ")
}

func (t *TransformDirective) Accept(visitor Visitor) interface{} {
	return visitor.VisitTransform(t)
}

func (t *TransformDirective) Position() Position {
	return t.Pos
}

func (t *TransformDirective) Validate() error {
	arity := t.Op.Arity()
	if arity < 0 {
		return fmt.Errorf("unknown transform op: %d", int(t.Op))
	}
	if len(t.Args) != arity {
		return fmt.Errorf("%s requires exactly %d float arguments, got %d", t.Op, arity, len(t.Args))
	}
	if t.Comment != "" && t.Op != OpLookAt {
		return fmt.Errorf("%s cannot carry an embedded comment", t.Op)
	}
	return nil
}

// HasComment returns true if this directive carries an embedded comment
func (t *TransformDirective) HasComment() bool {
	return t.Comment != ""
}

// Implementation of Node interface for CoordSysDirective

func (c *CoordSysDirective) String() string {
	return c.Keyword + " " + quote(c.Name)
}

func (c *CoordSysDirective) Accept(visitor Visitor) interface{} {
	return visitor.VisitCoordSys(c)
}

func (c *CoordSysDirective) Position() Position {
	return c.Pos
}

func (c *CoordSysDirective) Validate() error {
	if c.Keyword != "CoordinateSystem" && c.Keyword != "CoordSysTransform" {
		return fmt.Errorf("coordinate system keyword must be CoordinateSystem or CoordSysTransform, got %q", c.Keyword)
	}
	if stringx.IsBlank(c.Name) {
		return fmt.Errorf("coordinate system name is required")
	}
	return nil
}

// Implementation of Node interface for ActiveTransform

func (a *ActiveTransform) String() string {
	return "ActiveTransform " + a.Mode
}

func (a *ActiveTransform) Accept(visitor Visitor) interface{} {
	return visitor.VisitActiveTransform(a)
}

func (a *ActiveTransform) Position() Position {
	return a.Pos
}

func (a *ActiveTransform) Validate() error {
	switch a.Mode {
	case ActiveTransformStartTime, ActiveTransformEndTime, ActiveTransformAll:
		return nil
	default:
		return fmt.Errorf("active transform mode must be StartTime, EndTime, or All, got %q", a.Mode)
	}
}

// Implementation of Node interface for ReverseOrientation

func (r *ReverseOrientation) String() string {
	return "ReverseOrientation"
}

func (r *ReverseOrientation) Accept(visitor Visitor) interface{} {
	return visitor.VisitReverseOrientation(r)
}

func (r *ReverseOrientation) Position() Position {
	return r.Pos
}

func (r *ReverseOrientation) Validate() error {
	return nil
}

// Implementation of Node interface for MediumInterface

func (m *MediumInterface) String() string {
	return "MediumInterface " + quote(m.Inside) + " " + quote(m.Outside)
}

func (m *MediumInterface) Accept(visitor Visitor) interface{} {
	return visitor.VisitMediumInterface(m)
}

func (m *MediumInterface) Position() Position {
	return m.Pos
}

func (m *MediumInterface) Validate() error {
	return nil
}

// Implementation of Node interface for NamedMaterial

func (n *NamedMaterial) String() string {
	return "NamedMaterial " + quote(n.Name)
}

func (n *NamedMaterial) Accept(visitor Visitor) interface{} {
	return visitor.VisitNamedMaterial(n)
}

func (n *NamedMaterial) Position() Position {
	return n.Pos
}

func (n *NamedMaterial) Validate() error {
	if !stringx.IsIdentifier(n.Name) {
		return fmt.Errorf("named material reference %q must be identifier-shaped", n.Name)
	}
	return nil
}

// Implementation of Node interface for ObjectInstance

func (o *ObjectInstance) String() string {
	return "ObjectInstance " + quote(o.Name)
}

func (o *ObjectInstance) Accept(visitor Visitor) interface{} {
	return visitor.VisitObjectInstance(o)
}

func (o *ObjectInstance) Position() Position {
	return o.Pos
}

func (o *ObjectInstance) Validate() error {
	if !stringx.IsIdentifier(o.Name) {
		return fmt.Errorf("object instance reference %q must be identifier-shaped", o.Name)
	}
	return nil
}

// Implementation of Node interface for Include

func (i *Include) String() string {
	return "Include " + quote(i.Path)
}

func (i *Include) Accept(visitor Visitor) interface{} {
	return visitor.VisitInclude(i)
}

func (i *Include) Position() Position {
	return i.Pos
}

func (i *Include) Validate() error {
	if stringx.IsBlank(i.Path) {
		return fmt.Errorf("include path is required")
	}
	return nil
}

// Implementation of Node interface for Comment

func (c *Comment) String() string {
	return "#" + c.Text
}

func (c *Comment) Accept(visitor Visitor) interface{} {
	return visitor.VisitComment(c)
}

func (c *Comment) Position() Position {
	return c.Pos
}

func (c *Comment) Validate() error {
	return nil
}

// Implementation of Node interface for TypedDirective

func (d *TypedDirective) String() string {
	var b strings.Builder
	b.WriteString(d.Keyword)
	b.WriteString(" ")
	b.WriteString(quote(d.Name))
	for _, p := range d.Params {
		b.WriteString(" ")
		b.WriteString(p.String())
	}
	return b.String()
}

func (d *TypedDirective) Accept(visitor Visitor) interface{} {
	return visitor.VisitTypedDirective(d)
}

func (d *TypedDirective) Position() Position {
	return d.Pos
}

func (d *TypedDirective) Validate() error {
	if stringx.IsBlank(d.Keyword) {
		return fmt.Errorf("directive keyword is required")
	}
	return nil
}

// FindParam returns the first parameter with the given name, or nil
func (d *TypedDirective) FindParam(name string) *Parameter {
	for _, p := range d.Params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Implementation of Node interface for Texture

func (t *Texture) String() string {
	var b strings.Builder
	b.WriteString("Texture ")
	b.WriteString(quote(t.Name))
	b.WriteString(" ")
	b.WriteString(quote(t.ValueType))
	b.WriteString(" ")
	b.WriteString(quote(t.Class))
	for _, p := range t.Params {
		b.WriteString(" ")
		b.WriteString(p.String())
	}
	return b.String()
}

func (t *Texture) Accept(visitor Visitor) interface{} {
	return visitor.VisitTexture(t)
}

func (t *Texture) Position() Position {
	return t.Pos
}

func (t *Texture) Validate() error {
	if stringx.IsBlank(t.Name) {
		return fmt.Errorf("texture name is required")
	}
	if stringx.IsBlank(t.ValueType) {
		return fmt.Errorf("texture value type is required")
	}
	if stringx.IsBlank(t.Class) {
		return fmt.Errorf("texture class is required")
	}
	return nil
}

// Statement marker implementations

func (a *AttributeBlock) stmtNode()     {}
func (t *TransformBlock) stmtNode()     {}
func (o *ObjectBlock) stmtNode()        {}
func (t *TransformDirective) stmtNode() {}
func (c *CoordSysDirective) stmtNode()  {}
func (a *ActiveTransform) stmtNode()    {}
func (r *ReverseOrientation) stmtNode() {}
func (m *MediumInterface) stmtNode()    {}
func (n *NamedMaterial) stmtNode()      {}
func (o *ObjectInstance) stmtNode()     {}
func (i *Include) stmtNode()            {}
func (c *Comment) stmtNode()            {}
func (d *TypedDirective) stmtNode()     {}
func (t *Texture) stmtNode()            {}
