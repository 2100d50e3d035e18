// Package symbolic is a small computer-algebra core. It represents
// mathematical expressions as immutable trees, differentiates them
// symbolically, rewrites them toward a simpler form with a bounded
// fixpoint loop, and performs elementary rule-based integration.
//
// Design notes:
//   - Terms are tagged variants (Variable, Literal, Compound) selected
//     by pattern match on the operator tag, not by dynamic dispatch.
//   - Terms are never mutated after construction; every operation is a
//     pure function returning a fresh tree. Structural sharing of
//     subtrees is safe and used freely.
//   - Equality throughout the engine is serialize-then-compare of
//     CanonicalText. Commutative permutations of the same expression
//     may therefore compare unequal; the rewrite rules rely on this.
//   - All numerics are IEEE-754 float64.
package symbolic

import (
	"strconv"
	"strings"
)

// Op tags a Compound node. Arithmetic operators are strictly binary,
// trigonometric operators strictly unary, and the integral marker
// carries either 2 (integrand, variable) or 4 (plus lower, upper)
// operands.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpPow Op = "^"

	OpSin Op = "sin"
	OpCos Op = "cos"
	OpTan Op = "tan"
	OpCot Op = "cot"
	OpSec Op = "sec"
	OpCsc Op = "csc"

	OpAsin Op = "asin"
	OpAcos Op = "acos"
	OpAtan Op = "atan"

	// OpIntegral marks an unevaluated (optionally bounded) integral.
	OpIntegral Op = "int"
)

// arity returns the fixed operand count for op, or ok=false when the
// operator is variadic (the integral marker) or unknown.
func arity(op Op) (n int, ok bool) {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return 2, true
	case OpSin, OpCos, OpTan, OpCot, OpSec, OpCsc, OpAsin, OpAcos, OpAtan:
		return 1, true
	}
	return 0, false
}

// IsArithmetic reports whether op is one of the five binary arithmetic
// operators.
func (op Op) IsArithmetic() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return true
	}
	return false
}

// IsTrig reports whether op is one of the six direct trigonometric
// operators. Inverse functions are excluded: the exact-value tables and
// ratio identities apply to the direct functions only.
func (op Op) IsTrig() bool {
	switch op {
	case OpSin, OpCos, OpTan, OpCot, OpSec, OpCsc:
		return true
	}
	return false
}

// IsInverseTrig reports whether op is asin, acos or atan.
func (op Op) IsInverseTrig() bool {
	switch op {
	case OpAsin, OpAcos, OpAtan:
		return true
	}
	return false
}

type kind uint8

const (
	kindVariable kind = iota
	kindLiteral
	kindCompound
)

// Term is a node in a symbolic expression tree: a free variable, a
// numeric literal, or a compound node with an operator tag and a
// fixed-arity ordered operand list. Operand order is significant
// everywhere (the multiplication canonicalization and the by-parts
// heuristic both key on position), so operands must never be treated
// as a set.
type Term struct {
	kind  kind
	name  string
	value float64
	op    Op
	args  []*Term
}

// Var returns a free variable term.
func Var(name string) *Term { return &Term{kind: kindVariable, name: name} }

// Lit returns a numeric literal term.
func Lit(value float64) *Term { return &Term{kind: kindLiteral, value: value} }

// NewCompound builds a compound node, validating the operand count
// against the operator's fixed arity. The integral marker accepts 2 or
// 4 operands; every other known operator has exactly one legal count.
func NewCompound(op Op, operands ...*Term) (*Term, error) {
	if op == OpIntegral {
		if len(operands) != 2 && len(operands) != 4 {
			return nil, &ArityError{Op: op, Got: len(operands)}
		}
		return newCompound(op, operands...), nil
	}
	want, ok := arity(op)
	if !ok || len(operands) != want {
		return nil, &ArityError{Op: op, Got: len(operands)}
	}
	return newCompound(op, operands...), nil
}

// newCompound skips validation; callers guarantee the arity.
func newCompound(op Op, operands ...*Term) *Term {
	return &Term{kind: kindCompound, op: op, args: operands}
}

// IsVariable reports whether t is a free variable.
func (t *Term) IsVariable() bool { return t.kind == kindVariable }

// IsLiteral reports whether t is a numeric literal.
func (t *Term) IsLiteral() bool { return t.kind == kindLiteral }

// IsCompound reports whether t is an operator node.
func (t *Term) IsCompound() bool { return t.kind == kindCompound }

// Name returns the variable name, or the display text for a literal.
// The literal's float64 value remains the source of truth; the text is
// derived, never re-parsed by the engine.
func (t *Term) Name() string {
	if t.kind == kindLiteral {
		return formatLiteral(t.value)
	}
	return t.name
}

// Value returns the numeric value of a literal; zero otherwise.
func (t *Term) Value() float64 { return t.value }

// Op returns the operator tag of a compound node; empty otherwise.
func (t *Term) Op() Op { return t.op }

// Operands returns the ordered operand list of a compound node. The
// returned slice is shared; terms are immutable, do not modify it.
func (t *Term) Operands() []*Term { return t.args }

// literalEq reports whether t is a literal exactly equal to v.
func (t *Term) literalEq(v float64) bool { return t.kind == kindLiteral && t.value == v }

// Add returns t + o.
func (t *Term) Add(o *Term) *Term { return newCompound(OpAdd, t, o) }

// Sub returns t - o.
func (t *Term) Sub(o *Term) *Term { return newCompound(OpSub, t, o) }

// Mul returns t * o.
func (t *Term) Mul(o *Term) *Term { return newCompound(OpMul, t, o) }

// Div returns t / o.
func (t *Term) Div(o *Term) *Term { return newCompound(OpDiv, t, o) }

// Pow returns t ^ o.
func (t *Term) Pow(o *Term) *Term { return newCompound(OpPow, t, o) }

// PowN returns t raised to a literal integer exponent.
func (t *Term) PowN(n float64) *Term { return newCompound(OpPow, t, Lit(n)) }

func unary(op Op, arg *Term) *Term { return newCompound(op, arg) }

// Sin returns sin(arg).
func Sin(arg *Term) *Term { return unary(OpSin, arg) }

// Cos returns cos(arg).
func Cos(arg *Term) *Term { return unary(OpCos, arg) }

// Tan returns tan(arg).
func Tan(arg *Term) *Term { return unary(OpTan, arg) }

// Cot returns cot(arg).
func Cot(arg *Term) *Term { return unary(OpCot, arg) }

// Sec returns sec(arg).
func Sec(arg *Term) *Term { return unary(OpSec, arg) }

// Csc returns csc(arg).
func Csc(arg *Term) *Term { return unary(OpCsc, arg) }

// Asin returns asin(arg).
func Asin(arg *Term) *Term { return unary(OpAsin, arg) }

// Acos returns acos(arg).
func Acos(arg *Term) *Term { return unary(OpAcos, arg) }

// Atan returns atan(arg).
func Atan(arg *Term) *Term { return unary(OpAtan, arg) }

// CanonicalText is the deterministic serialization used as the
// engine's equality and fixpoint oracle: parenthesized infix for
// binary arithmetic, op(arg) for unary operators, op(a, b, ...) as the
// n-ary fallback. Equal trees always serialize identically.
func (t *Term) CanonicalText() string {
	switch t.kind {
	case kindVariable:
		return t.name
	case kindLiteral:
		return formatLiteral(t.value)
	}
	if t.op.IsArithmetic() {
		sep := " " + string(t.op) + " "
		if t.op == OpPow {
			sep = string(t.op)
		}
		return "(" + t.args[0].CanonicalText() + sep + t.args[1].CanonicalText() + ")"
	}
	if len(t.args) == 1 {
		return string(t.op) + "(" + t.args[0].CanonicalText() + ")"
	}
	parts := make([]string, len(t.args))
	for i, a := range t.args {
		parts[i] = a.CanonicalText()
	}
	return string(t.op) + "(" + strings.Join(parts, ", ") + ")"
}

// String implements fmt.Stringer via the canonical text.
func (t *Term) String() string { return t.CanonicalText() }

// textEqual is the engine's notion of term equality.
func textEqual(a, b *Term) bool { return a.CanonicalText() == b.CanonicalText() }

func formatLiteral(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
