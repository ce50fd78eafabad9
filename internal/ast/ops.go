package ast

type UnaryOp uint8

const (
	UnNot UnaryOp = iota
	UnNeg
	UnPos
)

func (op UnaryOp) String() string {
	switch op {
	case UnNot:
		return "not"
	case UnNeg:
		return "-"
	case UnPos:
		return "+"
	}
	return "?"
}

type BinaryOp uint8

const (
	BinOr BinaryOp = iota
	BinAnd
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinIn
	BinNotIn
	BinAdd
	BinSub
	BinConcat
	BinMul
	BinDiv
	BinFloorDiv
	BinMod
	BinPow
)

var binaryOpText = [...]string{
	BinOr:       "or",
	BinAnd:      "and",
	BinEq:       "==",
	BinNe:       "!=",
	BinLt:       "<",
	BinLe:       "<=",
	BinGt:       ">",
	BinGe:       ">=",
	BinIn:       "in",
	BinNotIn:    "not in",
	BinAdd:      "+",
	BinSub:      "-",
	BinConcat:   "~",
	BinMul:      "*",
	BinDiv:      "/",
	BinFloorDiv: "//",
	BinMod:      "%",
	BinPow:      "**",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// Binding strength, weakest first.
const (
	PrecCond = iota
	PrecOr
	PrecAnd
	PrecNot
	PrecCompare
	PrecConcat // ~ binds looser than + and -
	PrecAdd
	PrecMul
	PrecPow
	PrecUnary
	PrecPostfix
)

// Precedence returns the binding strength of op.
func (op BinaryOp) Precedence() int {
	switch op {
	case BinOr:
		return PrecOr
	case BinAnd:
		return PrecAnd
	case BinEq, BinNe, BinLt, BinLe, BinGt, BinGe, BinIn, BinNotIn:
		return PrecCompare
	case BinAdd, BinSub:
		return PrecAdd
	case BinConcat:
		return PrecConcat
	case BinMul, BinDiv, BinFloorDiv, BinMod:
		return PrecMul
	case BinPow:
		return PrecPow
	}
	return PrecPostfix
}

// IsComparison reports whether op compares its operands.
func (op BinaryOp) IsComparison() bool {
	return op.Precedence() == PrecCompare
}
