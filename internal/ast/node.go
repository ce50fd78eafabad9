package ast

import (
	"errors"
	"fmt"
	"sync/atomic"

	"bracketlint/internal/source"
)

// ErrReplaceFailed wraps the error of a replacement function. The payload is
// left untouched when it is returned.
var ErrReplaceFailed = errors.New("node replacement failed")

type cell[T any] struct {
	body T
	// mutable is set while a NodeRefMut is checked out
	mutable atomic.Bool
}

// Node owns a payload of kind T together with its identity. The span is not
// stored on the node; it is resolved through the span table on demand.
//
// Node is a handle: it is meant to live in exactly one place of the tree.
// Dropping a node never removes its span table entry.
type Node[T any] struct {
	cell *cell[T]
	id   NodeID
}

// NewNode records span in the process-wide table and wraps body.
func NewNode[T any](body T, span source.Span) Node[T] {
	return NewNodeWithID(body, Spans().Record(span))
}

// NewNodeWithID wraps body under an identity that was allocated earlier,
// typically reserved in a LocalSpanBuffer.
func NewNodeWithID[T any](body T, id NodeID) Node[T] {
	if !id.IsValid() {
		panic("ast: node constructed with the null identity")
	}
	return Node[T]{cell: &cell[T]{body: body}, id: id}
}

// IsZero reports whether n is an unset handle (an absent optional child).
func (n Node[T]) IsZero() bool { return n.cell == nil }

func (n Node[T]) ID() NodeID { return n.id }

func (n Node[T]) Span() source.Span { return Spans().Get(n.id) }

// Body gives the owner direct access to the payload.
func (n Node[T]) Body() *T { return &n.cell.body }

// Ref returns a read view. It panics while the node is mutably borrowed.
func (n Node[T]) Ref() NodeRef[T] {
	if n.cell.mutable.Load() {
		panic(fmt.Sprintf("ast: node %s is mutably borrowed", n.id))
	}
	return NodeRef[T]{body: &n.cell.body, id: n.id}
}

// RefMut checks out exclusive access to the payload. Only one NodeRefMut may
// be live per node; the checkout ends with Release or Immutable.
func (n Node[T]) RefMut() NodeRefMut[T] {
	if !n.cell.mutable.CompareAndSwap(false, true) {
		panic(fmt.Sprintf("ast: node %s is already mutably borrowed", n.id))
	}
	return NodeRefMut[T]{cell: n.cell, id: n.id, tok: &borrowToken{}}
}

// Mutate runs fn with an exclusive view and releases it afterwards.
func (n Node[T]) Mutate(fn func(NodeRefMut[T]) error) error {
	m := n.RefMut()
	defer m.Release()
	return fn(m)
}

// NodeRef is a copyable read-only view of a payload. The payload must not be
// modified through Body, and the view must not outlive the owning node.
type NodeRef[T any] struct {
	body *T
	id   NodeID
}

func (r NodeRef[T]) Body() *T { return r.body }

func (r NodeRef[T]) ID() NodeID { return r.id }

func (r NodeRef[T]) Span() source.Span { return Spans().Get(r.id) }

// WithBody presents another payload under the identity of r, so that a part
// of a node (a sub-expression, a field) can be reported at the node's span.
func WithBody[T, U any](r NodeRef[T], body *U) NodeRef[U] {
	return NodeRef[U]{body: body, id: r.id}
}

type borrowToken struct {
	released bool
	replaced bool
}

// NodeRefMut is the exclusive mutable view of a node's payload.
type NodeRefMut[T any] struct {
	cell *cell[T]
	id   NodeID
	tok  *borrowToken
}

func (m NodeRefMut[T]) ID() NodeID { return m.id }

func (m NodeRefMut[T]) Span() source.Span { return Spans().Get(m.id) }

func (m NodeRefMut[T]) Body() *T {
	m.check()
	return &m.cell.body
}

// Replace computes a new payload from the current one and stores it. When fn
// fails the payload is left as it was and the error is returned wrapped in
// ErrReplaceFailed. fn must not modify its argument in place.
func (m NodeRefMut[T]) Replace(fn func(T) (T, error)) error {
	m.check()
	next, err := fn(m.cell.body)
	if err != nil {
		return fmt.Errorf("%w: node %s: %w", ErrReplaceFailed, m.id, err)
	}
	m.cell.body = next
	m.tok.replaced = true
	return nil
}

// Set replaces the payload unconditionally.
func (m NodeRefMut[T]) Set(body T) {
	m.check()
	m.cell.body = body
	m.tok.replaced = true
}

// Replaced reports whether the payload was replaced through this view.
func (m NodeRefMut[T]) Replaced() bool { return m.tok.replaced }

// Immutable ends the exclusive checkout and returns a read view of the same
// node. m must not be used afterwards.
func (m NodeRefMut[T]) Immutable() NodeRef[T] {
	m.check()
	m.Release()
	return NodeRef[T]{body: &m.cell.body, id: m.id}
}

// Release ends the exclusive checkout. Releasing twice is a no-op.
func (m NodeRefMut[T]) Release() {
	if m.tok.released {
		return
	}
	m.tok.released = true
	m.cell.mutable.Store(false)
}

func (m NodeRefMut[T]) check() {
	if m.tok.released {
		panic(fmt.Sprintf("ast: use of released mutable view of node %s", m.id))
	}
}
