// File: visitor.go
// Title: Scene AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              scene AST nodes. Provides the base visitor plus canonical
//              formatting, validation, collection, and statistics visitors.
// Version: v0.1.0
// Created: 2025-11-15
// Modified: 2025-11-15
//
// Change History:
// - 2025-11-15 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit structural nodes
	VisitDocument(doc *Document) interface{}
	VisitWorldBlock(world *WorldBlock) interface{}
	VisitAttributeBlock(block *AttributeBlock) interface{}
	VisitTransformBlock(block *TransformBlock) interface{}
	VisitObjectBlock(block *ObjectBlock) interface{}

	// Visit statement nodes
	VisitTransform(directive *TransformDirective) interface{}
	VisitCoordSys(directive *CoordSysDirective) interface{}
	VisitActiveTransform(directive *ActiveTransform) interface{}
	VisitReverseOrientation(directive *ReverseOrientation) interface{}
	VisitMediumInterface(directive *MediumInterface) interface{}
	VisitNamedMaterial(ref *NamedMaterial) interface{}
	VisitObjectInstance(ref *ObjectInstance) interface{}
	VisitInclude(include *Include) interface{}
	VisitComment(comment *Comment) interface{}
	VisitTypedDirective(directive *TypedDirective) interface{}
	VisitTexture(texture *Texture) interface{}

	// Visit parameter nodes
	VisitParameter(param *Parameter) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods. Child
// traversal in the defaults dispatches through the embedded base, so
// visitors that need their overrides called on nested nodes must override
// the container methods and traverse children themselves.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitDocument(doc *Document) interface{} {
	for _, stmt := range doc.Options {
		stmt.Accept(bv)
	}
	if doc.World != nil {
		doc.World.Accept(bv)
	}
	for _, stmt := range doc.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitWorldBlock(world *WorldBlock) interface{} {
	for _, stmt := range world.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitAttributeBlock(block *AttributeBlock) interface{} {
	for _, stmt := range block.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitTransformBlock(block *TransformBlock) interface{} {
	for _, stmt := range block.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitObjectBlock(block *ObjectBlock) interface{} {
	for _, stmt := range block.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitTransform(directive *TransformDirective) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitCoordSys(directive *CoordSysDirective) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitActiveTransform(directive *ActiveTransform) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitReverseOrientation(directive *ReverseOrientation) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitMediumInterface(directive *MediumInterface) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitNamedMaterial(ref *NamedMaterial) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitObjectInstance(ref *ObjectInstance) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitInclude(include *Include) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitComment(comment *Comment) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitTypedDirective(directive *TypedDirective) interface{} {
	for _, param := range directive.Params {
		param.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitTexture(texture *Texture) interface{} {
	for _, param := range texture.Params {
		param.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitParameter(param *Parameter) interface{} {
	return nil // Terminal node
}

// FormatVisitor serializes an AST back to canonical surface text: one
// statement per line, two-space indentation inside blocks, parameters
// bracketed, aliases normalized. Parsing the output yields a structurally
// equal document.
type FormatVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int

	// SkipComments drops retained comments from the output
	SkipComments bool
}

// NewFormatVisitor creates a new format visitor
func NewFormatVisitor() *FormatVisitor {
	return &FormatVisitor{}
}

// String returns the formatted text
func (fv *FormatVisitor) String() string {
	return fv.buffer.String()
}

// Reset clears the internal buffer
func (fv *FormatVisitor) Reset() {
	fv.buffer.Reset()
	fv.indent = 0
}

func (fv *FormatVisitor) writeIndent() {
	for i := 0; i < fv.indent; i++ {
		fv.buffer.WriteString("  ")
	}
}

func (fv *FormatVisitor) line(text string) {
	fv.writeIndent()
	fv.buffer.WriteString(text)
	fv.buffer.WriteString("\n")
}

func (fv *FormatVisitor) VisitDocument(doc *Document) interface{} {
	for _, stmt := range doc.Options {
		stmt.Accept(fv)
	}
	if doc.World != nil {
		doc.World.Accept(fv)
	}
	for _, stmt := range doc.Statements {
		stmt.Accept(fv)
	}
	return nil
}

func (fv *FormatVisitor) VisitWorldBlock(world *WorldBlock) interface{} {
	fv.line("WorldBegin")
	fv.indent++
	for _, stmt := range world.Statements {
		stmt.Accept(fv)
	}
	fv.indent--
	fv.line("WorldEnd")
	return nil
}

func (fv *FormatVisitor) VisitAttributeBlock(block *AttributeBlock) interface{} {
	fv.line("AttributeBegin")
	fv.indent++
	for _, stmt := range block.Statements {
		stmt.Accept(fv)
	}
	fv.indent--
	fv.line("AttributeEnd")
	return nil
}

func (fv *FormatVisitor) VisitTransformBlock(block *TransformBlock) interface{} {
	fv.line("TransformBegin")
	fv.indent++
	for _, stmt := range block.Statements {
		stmt.Accept(fv)
	}
	fv.indent--
	fv.line("TransformEnd")
	return nil
}

func (fv *FormatVisitor) VisitObjectBlock(block *ObjectBlock) interface{} {
	fv.line("ObjectBegin " + quote(block.Name))
	fv.indent++
	for _, stmt := range block.Statements {
		stmt.Accept(fv)
	}
	fv.indent--
	fv.line("ObjectEnd")
	return nil
}

func (fv *FormatVisitor) VisitTransform(directive *TransformDirective) interface{} {
	if directive.HasComment() && !fv.SkipComments {
		// The embedded comment runs to end of line, so the arguments move
		// to a continuation line to stay outside it.
		fv.line(directive.Op.String() + " #" + directive.Comment)
		args := make([]string, 0, len(directive.Args))
		for _, arg := range directive.Args {
			args = append(args, formatFloat(arg))
		}
		fv.indent++
		fv.line(strings.Join(args, " "))
		fv.indent--
		return nil
	}
	fv.line(directive.String())
	return nil
}

func (fv *FormatVisitor) VisitCoordSys(directive *CoordSysDirective) interface{} {
	fv.line(directive.String())
	return nil
}

func (fv *FormatVisitor) VisitActiveTransform(directive *ActiveTransform) interface{} {
	fv.line(directive.String())
	return nil
}

func (fv *FormatVisitor) VisitReverseOrientation(directive *ReverseOrientation) interface{} {
	fv.line(directive.String())
	return nil
}

func (fv *FormatVisitor) VisitMediumInterface(directive *MediumInterface) interface{} {
	fv.line(directive.String())
	return nil
}

func (fv *FormatVisitor) VisitNamedMaterial(ref *NamedMaterial) interface{} {
	fv.line(ref.String())
	return nil
}

func (fv *FormatVisitor) VisitObjectInstance(ref *ObjectInstance) interface{} {
	fv.line(ref.String())
	return nil
}

func (fv *FormatVisitor) VisitInclude(include *Include) interface{} {
	fv.line(include.String())
	return nil
}

func (fv *FormatVisitor) VisitComment(comment *Comment) interface{} {
	if fv.SkipComments {
		return nil
	}
	fv.line(comment.String())
	return nil
}

func (fv *FormatVisitor) VisitTypedDirective(directive *TypedDirective) interface{} {
	fv.line(directive.String())
	return nil
}

func (fv *FormatVisitor) VisitTexture(texture *Texture) interface{} {
	fv.line(texture.String())
	return nil
}

func (fv *FormatVisitor) VisitParameter(param *Parameter) interface{} {
	fv.line(param.String())
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) check(kind string, node Node) {
	if err := node.Validate(); err != nil {
		vv.errors = append(vv.errors, fmt.Errorf("%s validation failed at %s: %w", kind, node.Position(), err))
	}
}

func (vv *ValidationVisitor) VisitDocument(doc *Document) interface{} {
	vv.check("document", doc)
	for _, stmt := range doc.Options {
		stmt.Accept(vv)
	}
	if doc.World != nil {
		doc.World.Accept(vv)
	}
	for _, stmt := range doc.Statements {
		stmt.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitWorldBlock(world *WorldBlock) interface{} {
	vv.check("world block", world)
	for _, stmt := range world.Statements {
		stmt.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitAttributeBlock(block *AttributeBlock) interface{} {
	vv.check("attribute block", block)
	for _, stmt := range block.Statements {
		stmt.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitTransformBlock(block *TransformBlock) interface{} {
	vv.check("transform block", block)
	for _, stmt := range block.Statements {
		stmt.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitObjectBlock(block *ObjectBlock) interface{} {
	vv.check("object block", block)
	for _, stmt := range block.Statements {
		stmt.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitTransform(directive *TransformDirective) interface{} {
	vv.check("transform directive", directive)
	return nil
}

func (vv *ValidationVisitor) VisitCoordSys(directive *CoordSysDirective) interface{} {
	vv.check("coordinate system directive", directive)
	return nil
}

func (vv *ValidationVisitor) VisitActiveTransform(directive *ActiveTransform) interface{} {
	vv.check("active transform directive", directive)
	return nil
}

func (vv *ValidationVisitor) VisitReverseOrientation(directive *ReverseOrientation) interface{} {
	vv.check("reverse orientation directive", directive)
	return nil
}

func (vv *ValidationVisitor) VisitMediumInterface(directive *MediumInterface) interface{} {
	vv.check("medium interface directive", directive)
	return nil
}

func (vv *ValidationVisitor) VisitNamedMaterial(ref *NamedMaterial) interface{} {
	vv.check("named material reference", ref)
	return nil
}

func (vv *ValidationVisitor) VisitObjectInstance(ref *ObjectInstance) interface{} {
	vv.check("object instance reference", ref)
	return nil
}

func (vv *ValidationVisitor) VisitInclude(include *Include) interface{} {
	vv.check("include directive", include)
	return nil
}

func (vv *ValidationVisitor) VisitComment(comment *Comment) interface{} {
	vv.check("comment", comment)
	return nil
}

func (vv *ValidationVisitor) VisitTypedDirective(directive *TypedDirective) interface{} {
	vv.check("directive", directive)
	for _, param := range directive.Params {
		param.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitTexture(texture *Texture) interface{} {
	vv.check("texture declaration", texture)
	for _, param := range texture.Params {
		param.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitParameter(param *Parameter) interface{} {
	vv.check("parameter", param)
	return nil
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Includes   []*Include
	Directives []*TypedDirective
	Textures   []*Texture
	Parameters []*Parameter
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Includes:   make([]*Include, 0),
		Directives: make([]*TypedDirective, 0),
		Textures:   make([]*Texture, 0),
		Parameters: make([]*Parameter, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Includes = cv.Includes[:0]
	cv.Directives = cv.Directives[:0]
	cv.Textures = cv.Textures[:0]
	cv.Parameters = cv.Parameters[:0]
}

func (cv *CollectorVisitor) VisitInclude(include *Include) interface{} {
	cv.Includes = append(cv.Includes, include)
	return nil
}

func (cv *CollectorVisitor) VisitTypedDirective(directive *TypedDirective) interface{} {
	cv.Directives = append(cv.Directives, directive)
	for _, param := range directive.Params {
		param.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitTexture(texture *Texture) interface{} {
	cv.Textures = append(cv.Textures, texture)
	for _, param := range texture.Params {
		param.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitParameter(param *Parameter) interface{} {
	cv.Parameters = append(cv.Parameters, param)
	return nil
}

// Override all container visitor methods to ensure collection
func (cv *CollectorVisitor) VisitDocument(doc *Document) interface{} {
	for _, stmt := range doc.Options {
		stmt.Accept(cv)
	}
	if doc.World != nil {
		doc.World.Accept(cv)
	}
	for _, stmt := range doc.Statements {
		stmt.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitWorldBlock(world *WorldBlock) interface{} {
	for _, stmt := range world.Statements {
		stmt.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitAttributeBlock(block *AttributeBlock) interface{} {
	for _, stmt := range block.Statements {
		stmt.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitTransformBlock(block *TransformBlock) interface{} {
	for _, stmt := range block.Statements {
		stmt.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitObjectBlock(block *ObjectBlock) interface{} {
	for _, stmt := range block.Statements {
		stmt.Accept(cv)
	}
	return nil
}

// Stats holds statement and parameter tallies for one AST
type Stats struct {
	Statements int            // Statement nodes at every nesting level
	Transforms int            // Transform-state directives, coordinate systems included
	Directives map[string]int // Typed directive count by keyword
	Textures   int            // Texture declarations
	Includes   int            // Include directives
	Comments   int            // Retained comments
	References int            // NamedMaterial and ObjectInstance references
	Blocks     int            // Attribute, transform, and object blocks
	Parameters int            // Parameters across all directives
	Values     int            // Decoded values across all parameters
	MaxDepth   int            // Deepest scope nesting, world block included
}

// StatsVisitor tallies statements and parameters across the AST
type StatsVisitor struct {
	BaseVisitor
	stats Stats
	depth int
}

// NewStatsVisitor creates a new statistics visitor
func NewStatsVisitor() *StatsVisitor {
	return &StatsVisitor{
		stats: Stats{Directives: make(map[string]int)},
	}
}

// Stats returns the collected tallies
func (sv *StatsVisitor) Stats() *Stats {
	return &sv.stats
}

func (sv *StatsVisitor) enter() {
	sv.depth++
	if sv.depth > sv.stats.MaxDepth {
		sv.stats.MaxDepth = sv.depth
	}
}

func (sv *StatsVisitor) leave() {
	sv.depth--
}

func (sv *StatsVisitor) VisitDocument(doc *Document) interface{} {
	for _, stmt := range doc.Options {
		stmt.Accept(sv)
	}
	if doc.World != nil {
		doc.World.Accept(sv)
	}
	for _, stmt := range doc.Statements {
		stmt.Accept(sv)
	}
	return nil
}

func (sv *StatsVisitor) VisitWorldBlock(world *WorldBlock) interface{} {
	sv.enter()
	for _, stmt := range world.Statements {
		stmt.Accept(sv)
	}
	sv.leave()
	return nil
}

func (sv *StatsVisitor) VisitAttributeBlock(block *AttributeBlock) interface{} {
	sv.stats.Statements++
	sv.stats.Blocks++
	sv.enter()
	for _, stmt := range block.Statements {
		stmt.Accept(sv)
	}
	sv.leave()
	return nil
}

func (sv *StatsVisitor) VisitTransformBlock(block *TransformBlock) interface{} {
	sv.stats.Statements++
	sv.stats.Blocks++
	sv.enter()
	for _, stmt := range block.Statements {
		stmt.Accept(sv)
	}
	sv.leave()
	return nil
}

func (sv *StatsVisitor) VisitObjectBlock(block *ObjectBlock) interface{} {
	sv.stats.Statements++
	sv.stats.Blocks++
	sv.enter()
	for _, stmt := range block.Statements {
		stmt.Accept(sv)
	}
	sv.leave()
	return nil
}

func (sv *StatsVisitor) VisitTransform(directive *TransformDirective) interface{} {
	sv.stats.Statements++
	sv.stats.Transforms++
	return nil
}

func (sv *StatsVisitor) VisitCoordSys(directive *CoordSysDirective) interface{} {
	sv.stats.Statements++
	sv.stats.Transforms++
	return nil
}

func (sv *StatsVisitor) VisitActiveTransform(directive *ActiveTransform) interface{} {
	sv.stats.Statements++
	sv.stats.Transforms++
	return nil
}

func (sv *StatsVisitor) VisitReverseOrientation(directive *ReverseOrientation) interface{} {
	sv.stats.Statements++
	return nil
}

func (sv *StatsVisitor) VisitMediumInterface(directive *MediumInterface) interface{} {
	sv.stats.Statements++
	return nil
}

func (sv *StatsVisitor) VisitNamedMaterial(ref *NamedMaterial) interface{} {
	sv.stats.Statements++
	sv.stats.References++
	return nil
}

func (sv *StatsVisitor) VisitObjectInstance(ref *ObjectInstance) interface{} {
	sv.stats.Statements++
	sv.stats.References++
	return nil
}

func (sv *StatsVisitor) VisitInclude(include *Include) interface{} {
	sv.stats.Statements++
	sv.stats.Includes++
	return nil
}

func (sv *StatsVisitor) VisitComment(comment *Comment) interface{} {
	sv.stats.Statements++
	sv.stats.Comments++
	return nil
}

func (sv *StatsVisitor) VisitTypedDirective(directive *TypedDirective) interface{} {
	sv.stats.Statements++
	sv.stats.Directives[directive.Keyword]++
	for _, param := range directive.Params {
		param.Accept(sv)
	}
	return nil
}

func (sv *StatsVisitor) VisitTexture(texture *Texture) interface{} {
	sv.stats.Statements++
	sv.stats.Textures++
	for _, param := range texture.Params {
		param.Accept(sv)
	}
	return nil
}

func (sv *StatsVisitor) VisitParameter(param *Parameter) interface{} {
	sv.stats.Parameters++
	sv.stats.Values += param.ValueCount()
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// FormatAST serializes an AST node to canonical surface text
func FormatAST(node Node) string {
	visitor := NewFormatVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects include, directive, texture, and parameter nodes
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}

// CollectStats tallies statements and parameters across an AST
func CollectStats(node Node) *Stats {
	visitor := NewStatsVisitor()
	node.Accept(visitor)
	return visitor.Stats()
}
