// Package equations extracts polynomial coefficients from a
// restricted term subset and solves the linear and quadratic cases.
// Linear systems delegate to the matrix package.
package equations

import (
	"fmt"
	"math"

	"github.com/symcalc/symcalc/matrix"
	"github.com/symcalc/symcalc/symbolic"
)

// Coefficients extracts the polynomial coefficients of t in the named
// variable, lowest degree first. The walk accepts sums, differences,
// products, and powers of the variable with non-negative literal
// integer exponents; anything else (trig nodes, division, a second
// variable) is rejected.
func Coefficients(t *symbolic.Term, varName string, maxDegree int) ([]float64, error) {
	if maxDegree < 0 {
		return nil, fmt.Errorf("equations: negative max degree %d", maxDegree)
	}
	coeffs := make([]float64, maxDegree+1)
	if err := collect(t, varName, 1, coeffs); err != nil {
		return nil, err
	}
	return coeffs, nil
}

func collect(t *symbolic.Term, varName string, sign float64, coeffs []float64) error {
	if !t.IsCompound() {
		c, deg, err := monomial(t, varName)
		if err != nil {
			return err
		}
		return accumulate(coeffs, deg, sign*c)
	}
	switch t.Op() {
	case symbolic.OpAdd:
		ops := t.Operands()
		if err := collect(ops[0], varName, sign, coeffs); err != nil {
			return err
		}
		return collect(ops[1], varName, sign, coeffs)
	case symbolic.OpSub:
		ops := t.Operands()
		if err := collect(ops[0], varName, sign, coeffs); err != nil {
			return err
		}
		return collect(ops[1], varName, -sign, coeffs)
	default:
		c, deg, err := monomial(t, varName)
		if err != nil {
			return err
		}
		return accumulate(coeffs, deg, sign*c)
	}
}

func accumulate(coeffs []float64, deg int, c float64) error {
	if deg >= len(coeffs) {
		return fmt.Errorf("equations: degree %d exceeds max degree %d", deg, len(coeffs)-1)
	}
	coeffs[deg] += c
	return nil
}

// monomial reduces a product-of-factors subtree to its constant
// coefficient and total degree in the variable.
func monomial(t *symbolic.Term, varName string) (float64, int, error) {
	switch {
	case t.IsLiteral():
		return t.Value(), 0, nil
	case t.IsVariable():
		if t.Name() != varName {
			return 0, 0, fmt.Errorf("equations: unexpected variable %q", t.Name())
		}
		return 1, 1, nil
	}
	switch t.Op() {
	case symbolic.OpMul:
		ops := t.Operands()
		ca, da, err := monomial(ops[0], varName)
		if err != nil {
			return 0, 0, err
		}
		cb, db, err := monomial(ops[1], varName)
		if err != nil {
			return 0, 0, err
		}
		return ca * cb, da + db, nil
	case symbolic.OpPow:
		ops := t.Operands()
		base, exp := ops[0], ops[1]
		if !base.IsVariable() || base.Name() != varName {
			return 0, 0, fmt.Errorf("equations: unsupported power base %s", base.CanonicalText())
		}
		if !exp.IsLiteral() {
			return 0, 0, fmt.Errorf("equations: non-literal exponent %s", exp.CanonicalText())
		}
		n := exp.Value()
		if n < 0 || n != math.Trunc(n) {
			return 0, 0, fmt.Errorf("equations: exponent %g is not a non-negative integer", n)
		}
		return 1, int(n), nil
	default:
		return 0, 0, fmt.Errorf("equations: unsupported operator %q", t.Op())
	}
}

// SolveLinear solves a*x + b = 0.
func SolveLinear(a, b float64) (float64, error) {
	if a == 0 {
		return 0, fmt.Errorf("equations: linear coefficient is zero")
	}
	return -b / a, nil
}

// SolveQuadratic solves a*x^2 + b*x + c = 0 over the reals, returning
// both roots (equal at a double root).
func SolveQuadratic(a, b, c float64) ([]float64, error) {
	if a == 0 {
		x, err := SolveLinear(b, c)
		if err != nil {
			return nil, err
		}
		return []float64{x}, nil
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil, fmt.Errorf("equations: negative discriminant %g", d)
	}
	s := math.Sqrt(d)
	return []float64{(-b + s) / (2 * a), (-b - s) / (2 * a)}, nil
}

// Solve treats t = 0 as a polynomial equation of degree at most two in
// the named variable and dispatches on the extracted degree.
func Solve(t *symbolic.Term, varName string) ([]float64, error) {
	coeffs, err := Coefficients(t, varName, 2)
	if err != nil {
		return nil, err
	}
	if coeffs[2] != 0 {
		return SolveQuadratic(coeffs[2], coeffs[1], coeffs[0])
	}
	x, err := SolveLinear(coeffs[1], coeffs[0])
	if err != nil {
		return nil, err
	}
	return []float64{x}, nil
}

// SolveSystem solves the linear system A*x = b.
func SolveSystem(a *matrix.Matrix, b []float64) ([]float64, error) {
	return a.Solve(b)
}
