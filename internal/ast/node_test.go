package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeSpanComesFromTable(t *testing.T) {
	n := NewNode[Expr](Name{Ident: "x"}, sp(3, 4))
	assert.Equal(t, sp(3, 4), n.Span())
	assert.Equal(t, sp(3, 4), n.Ref().Span())
	assert.Equal(t, n.ID(), n.Ref().ID())
}

func TestNewNodeWithNullIDPanics(t *testing.T) {
	assert.Panics(t, func() { NewNodeWithID[Expr](Name{}, NoNodeID) })
}

func TestReplaceThenImmutable(t *testing.T) {
	n := NewNode[Expr](Literal{Kind: LitInt, Raw: "1"}, sp(0, 1))

	m := n.RefMut()
	err := m.Replace(func(Expr) (Expr, error) {
		return Literal{Kind: LitInt, Raw: "2"}, nil
	})
	require.NoError(t, err)
	assert.True(t, m.Replaced())

	r := m.Immutable()
	assert.Equal(t, Literal{Kind: LitInt, Raw: "2"}, *r.Body())
	assert.Equal(t, n.ID(), r.ID(), "identity survives replacement")
	assert.Equal(t, sp(0, 1), r.Span())

	// чекаут закрыт, обычное чтение снова разрешено
	assert.NotPanics(t, func() { n.Ref() })
}

func TestFailedReplaceKeepsPayload(t *testing.T) {
	n := NewNode[Expr](Name{Ident: "keep"}, sp(0, 4))
	boom := errors.New("boom")

	m := n.RefMut()
	err := m.Replace(func(Expr) (Expr, error) { return nil, boom })
	m.Release()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReplaceFailed)
	assert.ErrorIs(t, err, boom)
	assert.False(t, m.Replaced())
	assert.Equal(t, Name{Ident: "keep"}, *n.Body())
}

func TestBorrowRules(t *testing.T) {
	n := NewNode[Expr](Name{Ident: "x"}, sp(0, 1))

	m := n.RefMut()
	assert.Panics(t, func() { n.RefMut() }, "second exclusive view")
	assert.Panics(t, func() { n.Ref() }, "read view during exclusive checkout")

	m.Release()
	m.Release() // no-op
	assert.Panics(t, func() { m.Body() }, "released view")
	assert.Panics(t, func() { m.Set(Name{Ident: "y"}) }, "released view")

	again := n.RefMut()
	again.Set(Name{Ident: "y"})
	again.Release()
	assert.Equal(t, Name{Ident: "y"}, *n.Ref().Body())
}

func TestMutateReleasesOnError(t *testing.T) {
	n := NewNode[Stmt](Text{Raw: "a"}, sp(0, 1))
	want := errors.New("stop")

	err := n.Mutate(func(m NodeRefMut[Stmt]) error {
		m.Set(Text{Raw: "b"})
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.NotPanics(t, func() { n.RefMut().Release() })
	assert.Equal(t, Text{Raw: "b"}, *n.Body())
}

func TestWithBodyKeepsIdentity(t *testing.T) {
	n := NewNode[Stmt](Block{Name: "content"}, sp(10, 30))
	r := n.Ref()
	name := (*r.Body()).(Block).Name

	sub := WithBody(r, &name)
	assert.Equal(t, r.ID(), sub.ID())
	assert.Equal(t, sp(10, 30), sub.Span())
	assert.Equal(t, "content", *sub.Body())
}

func TestZeroNode(t *testing.T) {
	var n Node[Expr]
	assert.True(t, n.IsZero())
	assert.False(t, nameExpr("x").IsZero())
}
