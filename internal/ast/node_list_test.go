package ast

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketlint/internal/source"
)

func idsOf[T any](l *NodeList[T]) []NodeID {
	var out []NodeID
	for r := range l.RefIter() {
		out = append(out, r.ID())
	}
	return out
}

func TestNodeListMergeScenario(t *testing.T) {
	a, b := nameExpr("a"), nameExpr("b")
	x := NewList([]Node[Expr]{a}, source.NewSpan(7, 0, 20))
	y := NewList([]Node[Expr]{b}, source.NewSpan(7, 20, 35))
	id := x.ID()

	x.Merge(&y)

	assert.Equal(t, source.NewSpan(7, 0, 35), x.Span())
	assert.Equal(t, id, x.ID(), "merge keeps the identity")
	assert.Equal(t, []NodeID{a.ID(), b.ID()}, idsOf(&x))
	assert.Equal(t, source.NewSpan(7, 20, 35), y.Span(), "other span is untouched")
}

func TestNodeListMergeMovesNodes(t *testing.T) {
	a, b := nameExpr("a"), nameExpr("b")
	x := NewList([]Node[Expr]{a}, source.NewSpan(7, 0, 2))
	y := NewList([]Node[Expr]{b}, source.NewSpan(7, 2, 4))

	x.Merge(&y)

	// b has exactly one owner now
	assert.Zero(t, y.Len())
	assert.Empty(t, idsOf(&y))
	require.Equal(t, 2, x.Len())
	assert.Equal(t, b.ID(), x.At(1).ID())

	y.Push(nameExpr("c"))
	assert.Equal(t, 2, x.Len(), "pushing to the drained list leaves the merged one alone")
}

func TestNodeListMergeSpanCommutes(t *testing.T) {
	cases := [][2]source.ByteRange{
		{source.NewByteRange(0, 20), source.NewByteRange(20, 35)},
		{source.NewByteRange(10, 12), source.NewByteRange(0, 3)},
		{source.NewByteRange(5, 50), source.NewByteRange(7, 9)},
		{source.NewByteRange(4, 4), source.NewByteRange(4, 4)},
	}
	for _, c := range cases {
		l1 := EmptyList[Expr](source.Span{Range: c[0], Source: 7})
		r1 := EmptyList[Expr](source.Span{Range: c[1], Source: 7})
		l2 := EmptyList[Expr](source.Span{Range: c[1], Source: 7})
		r2 := EmptyList[Expr](source.Span{Range: c[0], Source: 7})

		l1.Merge(&r1)
		l2.Merge(&r2)
		assert.Equal(t, l1.Span(), l2.Span(), "ranges %v and %v", c[0], c[1])
		assert.Equal(t, c[0].Union(c[1]), l1.Span().Range)
	}
}

func TestNodeListMergeSourceMismatchPanics(t *testing.T) {
	l := EmptyList[Stmt](source.NewSpan(1, 0, 2))
	other := EmptyList[Stmt](source.NewSpan(2, 0, 2))
	assert.Panics(t, func() { l.Merge(&other) })
}

func TestNodeListInsert(t *testing.T) {
	a, b, c := nameExpr("a"), nameExpr("b"), nameExpr("c")
	l := exprList(a, c)
	span := l.Span()

	l.Insert(b, 1)
	assert.Equal(t, []NodeID{a.ID(), b.ID(), c.ID()}, idsOf(&l))
	assert.Equal(t, span, l.Span(), "insert does not move the bracketing span")

	d := nameExpr("d")
	l.Insert(d, l.Len())
	assert.Equal(t, d.ID(), l.At(3).ID())

	assert.Panics(t, func() { l.Insert(nameExpr("e"), 10) })
	assert.Panics(t, func() { l.Insert(nameExpr("e"), -1) })
}

func TestNodeListMutationsDoNotShareStorage(t *testing.T) {
	a, b := nameExpr("a"), nameExpr("b")
	backing := make([]Node[Expr], 1, 8)
	backing[0] = a
	orig := NewList(backing, sp(0, 1))

	alias := orig
	alias.Push(b)
	alias.Insert(nameExpr("c"), 0)

	require.Equal(t, 1, orig.Len())
	assert.Equal(t, a.ID(), orig.At(0).ID())
	assert.Equal(t, 3, alias.Len())
}

func TestNodeListSetSpan(t *testing.T) {
	l := stmtList()
	l.SetSpan(sp(100, 200))
	assert.Equal(t, sp(100, 200), l.Span())
}

func TestRefIterOrderAndRestart(t *testing.T) {
	nodes := []Node[Expr]{nameExpr("a"), nameExpr("b"), nameExpr("c"), nameExpr("d")}
	l := exprList(nodes...)
	want := make([]NodeID, len(nodes))
	for i, n := range nodes {
		want[i] = n.ID()
	}

	assert.Equal(t, want, idsOf(&l))
	assert.Equal(t, want, idsOf(&l), "second pass yields the same sequence")

	var first []NodeID
	for r := range l.RefIter() {
		first = append(first, r.ID())
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, want[:2], first)

	for i, r := range l.RefIter2() {
		assert.Equal(t, want[i], r.ID())
	}

	empty := EmptyList[Expr](sp(0, 0))
	assert.Empty(t, slices.Collect(empty.RefIter()))
}

func TestZeroNodeList(t *testing.T) {
	var l NodeList[Stmt]
	assert.False(t, l.IsValid())
	assert.Equal(t, 0, l.Len())
	assert.Panics(t, func() { ListWithID[Stmt](nil, NoNodeID) })
}
