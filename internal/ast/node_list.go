package ast

import (
	"fmt"
	"iter"
	"slices"

	"bracketlint/internal/source"
)

// NodeList is an ordered run of sibling nodes that also carries a synthetic
// identity for its bracketing span, e.g. the whole body of a block.
//
// The zero NodeList has no identity and stands for an absent list.
type NodeList[T any] struct {
	nodes []Node[T]
	id    NodeID
}

// EmptyList creates an empty list spanning span.
func EmptyList[T any](span source.Span) NodeList[T] {
	return NewList[T](nil, span)
}

// NewList records span for a fresh identity and takes ownership of nodes.
func NewList[T any](nodes []Node[T], span source.Span) NodeList[T] {
	return ListWithID(nodes, Spans().Record(span))
}

// ListWithID reuses an identity whose span was interned earlier.
func ListWithID[T any](nodes []Node[T], id NodeID) NodeList[T] {
	if !id.IsValid() {
		panic("ast: node list constructed with the null identity")
	}
	return NodeList[T]{nodes: nodes, id: id}
}

// IsValid reports whether the list exists (has an identity).
func (l *NodeList[T]) IsValid() bool { return l.id.IsValid() }

func (l *NodeList[T]) ID() NodeID { return l.id }

func (l *NodeList[T]) Span() source.Span { return Spans().Get(l.id) }

func (l *NodeList[T]) Len() int { return len(l.nodes) }

func (l *NodeList[T]) At(i int) Node[T] { return l.nodes[i] }

// Nodes exposes the underlying sequence. It must be treated as read-only.
func (l *NodeList[T]) Nodes() []Node[T] { return l.nodes }

// Push appends node without touching the list's span.
func (l *NodeList[T]) Push(node Node[T]) {
	l.nodes = append(slices.Clip(l.nodes), node)
}

// Insert places node at index. The list's span is not changed; callers that
// change the real extent of the list call SetSpan.
func (l *NodeList[T]) Insert(node Node[T], index int) {
	if index < 0 || index > len(l.nodes) {
		panic(fmt.Sprintf("ast: insert index %d out of range [0, %d]", index, len(l.nodes)))
	}
	// Clip forces a copy, so lists sharing a backing array stay intact
	l.nodes = slices.Insert(slices.Clip(l.nodes), index, node)
}

// SetSpan overwrites the bracketing span of the list.
func (l *NodeList[T]) SetSpan(span source.Span) {
	Spans().Update(l.id, span)
}

// Merge moves the nodes of other to the end of l and widens the list's span
// to cover both lists. Both spans must belong to the same source. The list
// keeps its identity; other keeps its span but is left empty.
func (l *NodeList[T]) Merge(other *NodeList[T]) {
	mine, theirs := l.Span(), other.Span()
	if mine.Source != theirs.Source {
		panic(fmt.Sprintf("ast: merging node lists of different sources (%s, %s)", mine, theirs))
	}
	l.nodes = append(slices.Clip(l.nodes), other.nodes...)
	other.nodes = nil
	Spans().Update(l.id, mine.Join(theirs))
}

// RefIter yields a read view of every node in order. The sequence can be
// ranged over any number of times.
func (l *NodeList[T]) RefIter() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for _, n := range l.nodes {
			if !yield(n.Ref()) {
				return
			}
		}
	}
}

// RefIter2 is RefIter with positions.
func (l *NodeList[T]) RefIter2() iter.Seq2[int, NodeRef[T]] {
	return func(yield func(int, NodeRef[T]) bool) {
		for i, n := range l.nodes {
			if !yield(i, n.Ref()) {
				return
			}
		}
	}
}
