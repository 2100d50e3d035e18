package symbolic

// maxIntegrationDepth bounds the by-parts heuristic, which would
// otherwise recurse without bound on inputs it is not suited to. The
// depth counts by-parts nesting only: linearity and constant-multiple
// recursions terminate structurally and run undepleted. Past the bound
// the integral is returned unresolved rather than raised as an error:
// integration never fails.
const maxIntegrationDepth = DefaultMaxPasses

// Integrate returns an antiderivative of t with respect to the named
// variable, or an unresolved integral wrapper when no rule matches.
// The result is deliberately left unsimplified: integrate(1, x) yields
// (1 * x), integrate(x^2, x) yields ((x^3) * 0.333...). Callers chain
// Simplify themselves.
func Integrate(t *Term, varName string) *Term {
	return integrate(t, varName, 0)
}

// DefiniteIntegral wraps integrand, variable and both bounds verbatim
// in an opaque bounded-integral node. No closed-form evaluation of
// definite integrals is attempted.
func DefiniteIntegral(integrand *Term, varName string, lower, upper *Term) *Term {
	return newCompound(OpIntegral, integrand, Var(varName), lower, upper)
}

// Unresolved returns the unevaluated integral wrapper for t.
func Unresolved(t *Term, varName string) *Term {
	return newCompound(OpIntegral, t, Var(varName))
}

func integrate(t *Term, varName string, depth int) *Term {
	if depth >= maxIntegrationDepth {
		return Unresolved(t, varName)
	}

	switch t.kind {
	case kindLiteral:
		return t.Mul(Var(varName))
	case kindVariable:
		if t.name == varName {
			return Lit(0.5).Mul(Var(varName).PowN(2))
		}
		return Unresolved(t, varName)
	}

	switch t.op {
	case OpAdd:
		return integrate(t.args[0], varName, depth).Add(integrate(t.args[1], varName, depth))

	case OpMul:
		a, b := t.args[0], t.args[1]
		switch {
		case a.IsLiteral() && !b.IsLiteral():
			return a.Mul(integrate(b, varName, depth))
		case b.IsLiteral() && !a.IsLiteral():
			return b.Mul(integrate(a, varName, depth))
		case !a.IsLiteral() && !b.IsLiteral():
			return integrateByParts(a, b, varName, depth)
		}
		// Two literal operands match neither the constant-multiple
		// rule nor by-parts; fall through unresolved.

	case OpPow:
		base, exp := t.args[0], t.args[1]
		if base.IsVariable() && base.name == varName && exp.IsLiteral() && exp.value != -1 {
			n := exp.value
			return Var(varName).PowN(n + 1).Mul(Lit(1 / (n + 1)))
		}
	}

	return Unresolved(t, varName)
}

// integrateByParts applies u*v - ∫(v*du) unconditionally, treating
// operand 0 as u and operand 1 as dv. The heuristic has no notion of a
// good u/dv split and can return deeply nested, unsimplified results;
// the depth bound in integrate is the only guard.
func integrateByParts(u, dv *Term, varName string, depth int) *Term {
	v := integrate(dv, varName, depth+1)
	du, err := Differentiate(u, varName)
	if err != nil {
		return Unresolved(u.Mul(dv), varName)
	}
	return u.Mul(v).Sub(integrate(v.Mul(du), varName, depth+1))
}
