package symbolic

import "math"

// DefaultMaxPasses bounds the simplification fixpoint loop. The same
// bound is reused as the recursion guard in integration by parts.
const DefaultMaxPasses = 10

// Simplify rewrites t toward a simpler form, iterating full bottom-up
// passes until the canonical text stops changing or DefaultMaxPasses
// passes have run. Non-convergent inputs are not an error; the last
// result is returned as-is. The rule set is purely algebraic: no
// trigonometric identity is applied here (see SimplifyTrig).
func Simplify(t *Term) *Term { return SimplifyN(t, DefaultMaxPasses) }

// SimplifyN is Simplify with an explicit pass bound.
func SimplifyN(t *Term, maxPasses int) *Term {
	cur := t
	for i := 0; i < maxPasses; i++ {
		next := simplifyPass(cur)
		if next.CanonicalText() == cur.CanonicalText() {
			return next
		}
		cur = next
	}
	return cur
}

// simplifyPass performs one bottom-up pass: operands are simplified
// first, the compound is rebuilt, then the operator's local rule is
// applied to the rebuilt node.
func simplifyPass(t *Term) *Term {
	if t.kind != kindCompound {
		return t
	}
	args := make([]*Term, len(t.args))
	for i, a := range t.args {
		args[i] = simplifyPass(a)
	}
	return rewrite(newCompound(t.op, args...))
}

// rewrite applies the per-operator local rules, in order, to a node
// whose operands are already simplified. Literal folding uses IEEE-754
// double arithmetic with no NaN or zero-denominator guarding.
func rewrite(t *Term) *Term {
	if !t.op.IsArithmetic() {
		return t
	}
	a, b := t.args[0], t.args[1]

	switch t.op {
	case OpAdd:
		switch {
		case a.literalEq(0):
			return b
		case b.literalEq(0):
			return a
		case textEqual(a, b):
			return Lit(2).Mul(a)
		case a.IsLiteral() && b.IsLiteral():
			return Lit(a.value + b.value)
		}

	case OpSub:
		switch {
		case b.literalEq(0):
			return a
		case textEqual(a, b):
			return Lit(0)
		case a.IsLiteral() && b.IsLiteral():
			return Lit(a.value - b.value)
		}

	case OpMul:
		switch {
		case a.literalEq(0), b.literalEq(0):
			return Lit(0)
		case a.literalEq(1):
			return b
		case b.literalEq(1):
			return a
		case textEqual(a, b):
			return a.PowN(2)
		case a.IsLiteral() && b.IsLiteral():
			return Lit(a.value * b.value)
		case b.IsLiteral() && !a.IsLiteral():
			// Literal-to-front in exactly this one case; not a
			// general commutative sort.
			return b.Mul(a)
		}

	case OpDiv:
		switch {
		case b.literalEq(1):
			return a
		case textEqual(a, b):
			return Lit(1)
		case a.literalEq(0):
			return Lit(0)
		case a.IsLiteral() && b.IsLiteral():
			return Lit(a.value / b.value)
		}

	case OpPow:
		switch {
		case b.literalEq(0):
			return Lit(1)
		case b.literalEq(1):
			return a
		case a.literalEq(0):
			return Lit(0)
		case a.literalEq(1):
			return Lit(1)
		case a.IsLiteral() && b.IsLiteral():
			return Lit(math.Pow(a.value, b.value))
		}
	}

	return t
}
