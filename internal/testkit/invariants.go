// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"bracketlint/internal/ast"
	"bracketlint/internal/source"
)

type openNode struct {
	id   ast.NodeID
	span source.Span
}

// CheckSpanInvariants runs the span invariants on a parsed document:
// 1) every node span belongs to sf and lies within its content
// 2) in preorder, a node is either nested in an open node or starts after it
// 3) a nested node has a lower identity than the node enclosing it
// 4) identities are unique
func CheckSpanInvariants(doc ast.Node[ast.Document], sf *source.File) error {
	if doc.IsZero() || sf == nil {
		return fmt.Errorf("nil document or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var (
		stack []openNode
		seen  = make(map[ast.NodeID]bool)
	)
	check := func(kind string, id ast.NodeID, sp source.Span) error {
		if seen[id] {
			return fmt.Errorf("%s: identity %d used twice", kind, id)
		}
		seen[id] = true
		if sp.Source != sf.ID {
			return fmt.Errorf("%s %d: span points to different file id: got=%d want=%d", kind, id, sp.Source, sf.ID)
		}
		if sp.Start() > sp.End() || sp.End() > lenContent {
			return fmt.Errorf("%s %d: span %v outside content of %d bytes", kind, id, sp, lenContent)
		}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if !top.span.Empty() && top.span.Start() <= sp.Start() && sp.End() <= top.span.End() {
				if id >= top.id {
					return fmt.Errorf("%s %d at %v is nested in node %d but has a higher identity", kind, id, sp, top.id)
				}
				break
			}
			if top.span.End() > sp.Start() {
				return fmt.Errorf("%s %d at %v overlaps node %d at %v", kind, id, sp, top.id, top.span)
			}
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, openNode{id: id, span: sp})
		return nil
	}

	v := ast.VisitorFuncs{
		Document: func(r ast.NodeRef[ast.Document]) error { return check("document", r.ID(), r.Span()) },
		Stmt: func(r ast.NodeRef[ast.Stmt]) error {
			return check(ast.StmtKindName(*r.Body()), r.ID(), r.Span())
		},
		Expr: func(r ast.NodeRef[ast.Expr]) error { return check("expr", r.ID(), r.Span()) },
	}
	return ast.Walk(v, doc)
}
