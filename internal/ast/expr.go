package ast

// Expr is the closed set of expression payloads.
type Expr interface {
	exprNode()
}

type LitKind uint8

const (
	LitString LitKind = iota
	LitInt
	LitFloat
	LitBool
	LitNone
)

// Literal keeps the source spelling of a constant, quotes included.
type Literal struct {
	Kind LitKind
	Raw  string
}

type Name struct {
	Ident string
}

type Unary struct {
	Op      UnaryOp
	Operand Node[Expr]
}

type Binary struct {
	Op  BinaryOp
	Lhs Node[Expr]
	Rhs Node[Expr]
}

// Attr is `object.name`.
type Attr struct {
	Object Node[Expr]
	Name   string
}

// Index is `object[key]`.
type Index struct {
	Object Node[Expr]
	Key    Node[Expr]
}

type Call struct {
	Callee Node[Expr]
	Args   NodeList[Expr]
}

// Filter is `subject|name` or `subject|name(args)`. Args is zero when the
// filter is applied without parentheses.
type Filter struct {
	Subject Node[Expr]
	Name    string
	Args    NodeList[Expr]
}

// Test is `subject is [not] name`.
type Test struct {
	Subject Node[Expr]
	Name    string
	Negated bool
}

// List is a `[a, b, c]` literal.
type List struct {
	Items NodeList[Expr]
}

// Cond is `then if cond else otherwise`; Else is zero when omitted.
type Cond struct {
	Cond Node[Expr]
	Then Node[Expr]
	Else Node[Expr]
}

// Keyword is a `name=value` call argument or macro parameter default.
type Keyword struct {
	Name  string
	Value Node[Expr]
}

func (Literal) exprNode() {}
func (Name) exprNode()    {}
func (Unary) exprNode()   {}
func (Binary) exprNode()  {}
func (Attr) exprNode()    {}
func (Index) exprNode()   {}
func (Call) exprNode()    {}
func (Filter) exprNode()  {}
func (Test) exprNode()    {}
func (List) exprNode()    {}
func (Cond) exprNode()    {}
func (Keyword) exprNode() {}

// IsNone reports whether e is the `none` literal.
func IsNone(e Expr) bool {
	lit, ok := e.(Literal)
	return ok && lit.Kind == LitNone
}
