package ast

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sampleDoc builds
//
//	text
//	{% if a == b %}{{ x.y }}{% else %}{{ c }}{% endif %}
//	{% for i in [1, 2] %}{{ i }}{% endfor %}
func sampleDoc() Node[Document] {
	return document(
		stmtNode(Text{Raw: "text"}),
		stmtNode(If{
			Cond: binExpr(BinEq, nameExpr("a"), nameExpr("b")),
			Then: stmtList(stmtNode(Output{Expr: exprNode(Attr{Object: nameExpr("x"), Name: "y"})})),
			Else: stmtList(stmtNode(Output{Expr: nameExpr("c")})),
		}),
		stmtNode(For{
			Target: nameExpr("i"),
			Iter:   exprNode(List{Items: exprList(litExpr(LitInt, "1"), litExpr(LitInt, "2"))}),
			Body:   stmtList(stmtNode(Output{Expr: nameExpr("i")})),
		}),
	)
}

func describeStmt(s Stmt) string { return StmtKindName(s) }

func describeExpr(e Expr) string {
	switch e := e.(type) {
	case Name:
		return e.Ident
	case Literal:
		return e.Raw
	case Binary:
		return e.Op.String()
	case Attr:
		return "." + e.Name
	case List:
		return "[]"
	}
	return fmt.Sprintf("%T", e)
}

type recorder struct {
	seen []string
}

func (r *recorder) funcs() VisitorFuncs {
	return VisitorFuncs{
		Document: func(NodeRef[Document]) error { r.seen = append(r.seen, "doc"); return nil },
		Stmt:     func(n NodeRef[Stmt]) error { r.seen = append(r.seen, describeStmt(*n.Body())); return nil },
		Expr:     func(n NodeRef[Expr]) error { r.seen = append(r.seen, describeExpr(*n.Body())); return nil },
	}
}

func TestWalkPreorder(t *testing.T) {
	var rec recorder
	if err := Walk(rec.funcs(), sampleDoc()); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []string{
		"doc",
		"text",
		"if", "==", "a", "b", "output", ".y", "x", "output", "c",
		"for", "i", "[]", "1", "2", "output", "i",
	}
	if diff := cmp.Diff(want, rec.seen); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipChildren(t *testing.T) {
	var rec recorder
	v := rec.funcs()
	inner := v.Stmt
	v.Stmt = func(n NodeRef[Stmt]) error {
		_ = inner(n)
		if _, ok := (*n.Body()).(If); ok {
			return SkipChildren
		}
		return nil
	}
	if err := Walk(v, sampleDoc()); err != nil {
		t.Fatalf("SkipChildren leaked out of Walk: %v", err)
	}
	want := []string{"doc", "text", "if", "for", "i", "[]", "1", "2", "output", "i"}
	if diff := cmp.Diff(want, rec.seen); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWalkAbortsOnError(t *testing.T) {
	stop := errors.New("stop")
	var visited []string
	err := Walk(VisitorFuncs{
		Expr: func(n NodeRef[Expr]) error {
			visited = append(visited, describeExpr(*n.Body()))
			if describeExpr(*n.Body()) == "a" {
				return stop
			}
			return nil
		},
	}, sampleDoc())

	if !errors.Is(err, stop) {
		t.Fatalf("err = %v, want stop", err)
	}
	if diff := cmp.Diff([]string{"==", "a"}, visited); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWalkSkipsAbsentChildren(t *testing.T) {
	cond := exprNode(Cond{Cond: nameExpr("c"), Then: nameExpr("t")})
	var seen []string
	err := WalkExpr(VisitorFuncs{
		Expr: func(n NodeRef[Expr]) error { seen = append(seen, describeExpr(*n.Body())); return nil },
	}, cond)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ast.Cond", "t", "c"}, seen); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWalkMutReplacesWithoutDescending(t *testing.T) {
	doc := sampleDoc()
	var visited []string

	err := WalkMut(MutVisitorFuncs{
		Expr: func(m NodeRefMut[Expr]) error {
			visited = append(visited, describeExpr(*m.Body()))
			b, ok := (*m.Body()).(Binary)
			if !ok || b.Op != BinEq {
				return nil
			}
			return m.Replace(func(old Expr) (Expr, error) {
				b := old.(Binary)
				b.Op = BinNe
				b.Lhs, b.Rhs = nameExpr("p"), nameExpr("q")
				return b, nil
			})
		},
	}, doc)
	if err != nil {
		t.Fatalf("WalkMut: %v", err)
	}

	// p и q не посещаются: замещённый узел не обходится повторно
	want := []string{"==", ".y", "x", "c", "i", "[]", "1", "2", "i"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	ifStmt := (*doc.Body().Body.At(1).Body()).(If)
	if got := FormatExpr(*ifStmt.Cond.Body()); got != "p != q" {
		t.Errorf("replaced condition = %q", got)
	}

	// явный повторный обход видит новое поддерево
	var again []string
	err = WalkExprMut(MutVisitorFuncs{
		Expr: func(m NodeRefMut[Expr]) error { again = append(again, describeExpr(*m.Body())); return nil },
	}, ifStmt.Cond)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"!=", "p", "q"}, again); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWalkMutReleasesBorrows(t *testing.T) {
	doc := sampleDoc()
	boom := errors.New("boom")
	err := WalkMut(MutVisitorFuncs{
		Stmt: func(m NodeRefMut[Stmt]) error {
			if _, ok := (*m.Body()).(For); ok {
				return boom
			}
			return nil
		},
	}, doc)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	// после ошибки ни один узел не должен остаться заимствованным
	if err := Walk(VisitorFuncs{}, doc); err != nil {
		t.Fatalf("read walk after aborted mut walk: %v", err)
	}
}

func TestWalkMutFailedReplaceAborts(t *testing.T) {
	doc := sampleDoc()
	boom := errors.New("cannot rewrite")
	err := WalkMut(MutVisitorFuncs{
		Expr: func(m NodeRefMut[Expr]) error {
			return m.Replace(func(Expr) (Expr, error) { return nil, boom })
		},
	}, doc)
	if !errors.Is(err, ErrReplaceFailed) || !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	ifStmt := (*doc.Body().Body.At(1).Body()).(If)
	if got := FormatExpr(*ifStmt.Cond.Body()); got != "a == b" {
		t.Errorf("condition changed after failed replace: %q", got)
	}
}
