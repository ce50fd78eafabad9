package ast

// Document is the root of one parsed template.
type Document struct {
	Body NodeList[Stmt]
}

// Stmt is the closed set of statement payloads. Every implementation is a
// value type so that a replacement never aliases the payload it replaces.
type Stmt interface {
	stmtNode()
}

// Text is raw template data between tags.
type Text struct {
	Raw string
}

// Output is a `{{ expr }}` tag.
type Output struct {
	Expr Node[Expr]
}

// Comment is a `{# ... #}` tag.
type Comment struct {
	Text string
}

// If is an if/elif/else chain. elif branches are nested If statements in Else.
type If struct {
	Cond Node[Expr]
	Then NodeList[Stmt]
	Else NodeList[Stmt] // zero when there is no else branch
}

// For is a `{% for target in iter %}` loop with an optional else body.
type For struct {
	Target Node[Expr]
	Iter   Node[Expr]
	Body   NodeList[Stmt]
	Else   NodeList[Stmt]
}

// Set is a `{% set target = value %}` assignment.
type Set struct {
	Target Node[Expr]
	Value  Node[Expr]
}

// Block is a named `{% block %}` section.
type Block struct {
	Name string
	Body NodeList[Stmt]
}

// Extends is a `{% extends template %}` tag.
type Extends struct {
	Template Node[Expr]
}

// Include is a `{% include template [ignore missing] %}` tag.
type Include struct {
	Template      Node[Expr]
	IgnoreMissing bool
}

// Macro is a `{% macro name(params) %}` definition.
type Macro struct {
	Name   string
	Params NodeList[Expr]
	Body   NodeList[Stmt]
}

func (Text) stmtNode()    {}
func (Output) stmtNode()  {}
func (Comment) stmtNode() {}
func (If) stmtNode()      {}
func (For) stmtNode()     {}
func (Set) stmtNode()     {}
func (Block) stmtNode()   {}
func (Extends) stmtNode() {}
func (Include) stmtNode() {}
func (Macro) stmtNode()   {}

// StmtKindName returns a short lowercase name for the kind of s.
func StmtKindName(s Stmt) string {
	switch s.(type) {
	case Text:
		return "text"
	case Output:
		return "output"
	case Comment:
		return "comment"
	case If:
		return "if"
	case For:
		return "for"
	case Set:
		return "set"
	case Block:
		return "block"
	case Extends:
		return "extends"
	case Include:
		return "include"
	case Macro:
		return "macro"
	default:
		return "unknown"
	}
}
