package symbolic

import "math"

// zeroCoefficient is the cutoff below which a literal Taylor
// coefficient is treated as zero when synthesizing the polynomial.
const zeroCoefficient = 1e-10

// Substitute replaces every occurrence of the named variable with the
// replacement term. Matching is purely by name, never by reference
// identity. The input tree is untouched; shared subtrees that contain
// no occurrence are reused.
func Substitute(t *Term, varName string, replacement *Term) *Term {
	switch t.kind {
	case kindVariable:
		if t.name == varName {
			return replacement
		}
		return t
	case kindLiteral:
		return t
	}
	args := make([]*Term, len(t.args))
	for i, a := range t.args {
		args[i] = Substitute(a, varName, replacement)
	}
	return newCompound(t.op, args...)
}

// EvaluateAt substitutes the literal point for the named variable and
// folds every resulting all-literal subexpression with the Simplify
// rules. The result is a literal whenever the tree contained no other
// free variables or trig nodes.
func EvaluateAt(t *Term, varName string, point float64) *Term {
	return Simplify(Substitute(t, varName, Lit(point)))
}

// TaylorCoefficients computes the first order+1 Taylor coefficients of
// f around the expansion point: coefficient n is the n-th derivative
// evaluated at the point, divided by n!. The derivative chain is
// re-simplified after every single differentiation step; simplifying
// only at the end blows up exponentially on product- or quotient-heavy
// inputs. Differentiation failures propagate.
func TaylorCoefficients(f *Term, varName string, point float64, order int) ([]*Term, error) {
	coeffs := make([]*Term, order+1)
	cur := f
	for n := 0; n <= order; n++ {
		if n > 0 {
			d, err := Differentiate(cur, varName)
			if err != nil {
				return nil, err
			}
			cur = Simplify(d)
		}
		coeffs[n] = divideByFactorial(EvaluateAt(cur, varName, point), n)
	}
	return coeffs, nil
}

// divideByFactorial folds literal coefficients immediately and builds
// a quotient node otherwise. It simply divides; there is no near-zero
// guard on the denominator.
func divideByFactorial(t *Term, n int) *Term {
	fact := 1.0
	for k := 2; k <= n; k++ {
		fact *= float64(k)
	}
	if t.IsLiteral() {
		return Lit(t.value / fact)
	}
	return t.Div(Lit(fact))
}

// TaylorPolynomial resynthesizes c₀ + Σ cₙ·(x−point)ⁿ from the
// coefficient series. Coefficient 0 is always kept as the constant
// term; for n ≥ 1 a literal coefficient with |v| below 1e-10 is
// skipped as zero (non-literal coefficients are always kept). The
// assembled sum is re-simplified before returning.
func TaylorPolynomial(coeffs []*Term, varName string, point float64) *Term {
	if len(coeffs) == 0 {
		return Lit(0)
	}
	sum := coeffs[0]
	for n := 1; n < len(coeffs); n++ {
		c := coeffs[n]
		if c.IsLiteral() && math.Abs(c.value) < zeroCoefficient {
			continue
		}
		shifted := Var(varName).Sub(Lit(point))
		sum = sum.Add(c.Mul(shifted.PowN(float64(n))))
	}
	return Simplify(sum)
}
