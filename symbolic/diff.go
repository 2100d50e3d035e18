package symbolic

import "math"

// Differentiate returns the derivative of t with respect to the named
// variable. It is pure and total except for two cases: a power node
// where neither base nor exponent is a literal
// (UnsupportedDifferentiationError), and an operator with no rule
// (UnknownOperationError). The result is a fresh, unsimplified tree;
// callers pass it through Simplify when a compact form is wanted.
func Differentiate(t *Term, varName string) (*Term, error) {
	switch t.kind {
	case kindLiteral:
		return Lit(0), nil
	case kindVariable:
		if t.name == varName {
			return Lit(1), nil
		}
		return Lit(0), nil
	}

	if t.op.IsTrig() || t.op.IsInverseTrig() {
		return diffTrig(t, varName)
	}

	switch t.op {
	case OpAdd, OpSub:
		du, err := Differentiate(t.args[0], varName)
		if err != nil {
			return nil, err
		}
		dv, err := Differentiate(t.args[1], varName)
		if err != nil {
			return nil, err
		}
		return newCompound(t.op, du, dv), nil

	case OpMul:
		u, v := t.args[0], t.args[1]
		du, err := Differentiate(u, varName)
		if err != nil {
			return nil, err
		}
		dv, err := Differentiate(v, varName)
		if err != nil {
			return nil, err
		}
		return u.Mul(dv).Add(v.Mul(du)), nil

	case OpDiv:
		u, v := t.args[0], t.args[1]
		du, err := Differentiate(u, varName)
		if err != nil {
			return nil, err
		}
		dv, err := Differentiate(v, varName)
		if err != nil {
			return nil, err
		}
		return v.Mul(du).Sub(u.Mul(dv)).Div(v.PowN(2)), nil

	case OpPow:
		base, exp := t.args[0], t.args[1]
		if exp.IsLiteral() {
			// Power rule n*base^(n-1). The exponent is not
			// differentiated, so a variable exponent never reaches
			// this branch, and the base is not chained through.
			n := exp.value
			return Lit(n).Mul(base.PowN(n - 1)), nil
		}
		if base.IsLiteral() {
			// Exponential rule a^u * ln(a) * u'. The base is a
			// literal, so ln(a) folds to a literal immediately.
			du, err := Differentiate(exp, varName)
			if err != nil {
				return nil, err
			}
			return base.Pow(exp).Mul(Lit(math.Log(base.value))).Mul(du), nil
		}
		return nil, &UnsupportedDifferentiationError{Text: t.CanonicalText()}
	}

	return nil, &UnknownOperationError{Op: t.op}
}

// diffTrig applies the closed-form derivative table for the nine
// trigonometric operators, chain-composed with the derivative of the
// argument.
func diffTrig(t *Term, varName string) (*Term, error) {
	u := t.args[0]
	du, err := Differentiate(u, varName)
	if err != nil {
		return nil, err
	}
	switch t.op {
	case OpSin:
		return Cos(u).Mul(du), nil
	case OpCos:
		return Lit(-1).Mul(Sin(u)).Mul(du), nil
	case OpTan:
		return du.Div(Cos(u).PowN(2)), nil
	case OpCot:
		return Lit(-1).Mul(du.Div(Sin(u).PowN(2))), nil
	case OpSec:
		return Sec(u).Mul(Tan(u)).Mul(du), nil
	case OpCsc:
		return Lit(-1).Mul(Csc(u).Mul(Cot(u)).Mul(du)), nil
	case OpAsin:
		return du.Div(Lit(1).Sub(u.PowN(2)).PowN(0.5)), nil
	case OpAcos:
		return Lit(-1).Mul(du.Div(Lit(1).Sub(u.PowN(2)).PowN(0.5))), nil
	case OpAtan:
		return du.Div(Lit(1).Add(u.PowN(2))), nil
	}
	return nil, &UnknownOperationError{Op: t.op}
}
