package equations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symcalc/symcalc/matrix"
	"github.com/symcalc/symcalc/symbolic"
)

func TestCoefficients_Quadratic(t *testing.T) {
	// 2x^2 - 3x + 5
	x := symbolic.Var("x")
	expr := symbolic.Lit(2).Mul(x.PowN(2)).Sub(symbolic.Lit(3).Mul(x)).Add(symbolic.Lit(5))
	coeffs, err := Coefficients(expr, "x", 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, -3, 2}, coeffs)
}

func TestCoefficients_CollectsRepeatedDegrees(t *testing.T) {
	// x + x + 1 has coefficient 2 at degree 1.
	x := symbolic.Var("x")
	coeffs, err := Coefficients(x.Add(x).Add(symbolic.Lit(1)), "x", 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, coeffs)
}

func TestCoefficients_NestedSubtractionFlipsSign(t *testing.T) {
	// 1 - (x - 2) = 3 - x
	x := symbolic.Var("x")
	expr := symbolic.Lit(1).Sub(x.Sub(symbolic.Lit(2)))
	coeffs, err := Coefficients(expr, "x", 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -1}, coeffs)
}

func TestCoefficients_MonomialProducts(t *testing.T) {
	// 3 * x * x^2 is degree 3 with coefficient 3.
	x := symbolic.Var("x")
	expr := symbolic.Lit(3).Mul(x).Mul(x.PowN(2))
	coeffs, err := Coefficients(expr, "x", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 3}, coeffs)
}

func TestCoefficients_DegreeOverflow(t *testing.T) {
	x := symbolic.Var("x")
	_, err := Coefficients(x.PowN(3), "x", 2)
	assert.Error(t, err)
}

func TestCoefficients_RejectsUnsupportedForms(t *testing.T) {
	x := symbolic.Var("x")
	cases := []*symbolic.Term{
		symbolic.Sin(x),
		x.Div(symbolic.Lit(2)),
		symbolic.Var("y"),
		x.Pow(symbolic.Var("n")),
		x.PowN(-1),
		x.PowN(1.5),
		symbolic.Lit(2).Pow(x),
	}
	for _, in := range cases {
		_, err := Coefficients(in, "x", 3)
		assert.Error(t, err, "input %s", in.CanonicalText())
	}
}

func TestSolveLinear(t *testing.T) {
	x, err := SolveLinear(2, -6)
	require.NoError(t, err)
	assert.InDelta(t, 3, x, 1e-12)

	_, err = SolveLinear(0, 1)
	assert.Error(t, err)
}

func TestSolveQuadratic(t *testing.T) {
	// x^2 - 5x + 6 = 0 → 3, 2
	roots, err := SolveQuadratic(1, -5, 6)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, 3, roots[0], 1e-12)
	assert.InDelta(t, 2, roots[1], 1e-12)
}

func TestSolveQuadratic_DoubleRoot(t *testing.T) {
	roots, err := SolveQuadratic(1, -2, 1)
	require.NoError(t, err)
	assert.Equal(t, roots[0], roots[1])
	assert.InDelta(t, 1, roots[0], 1e-12)
}

func TestSolveQuadratic_NegativeDiscriminant(t *testing.T) {
	_, err := SolveQuadratic(1, 0, 1)
	assert.Error(t, err)
}

func TestSolveQuadratic_DegeneratesToLinear(t *testing.T) {
	roots, err := SolveQuadratic(0, 2, -4)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.InDelta(t, 2, roots[0], 1e-12)
}

func TestSolve_DispatchesByDegree(t *testing.T) {
	x := symbolic.Var("x")

	// 2x - 6 = 0
	roots, err := Solve(symbolic.Lit(2).Mul(x).Sub(symbolic.Lit(6)), "x")
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, roots)

	// x^2 - 4 = 0
	roots, err = Solve(x.PowN(2).Sub(symbolic.Lit(4)), "x")
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, 2, roots[0], 1e-12)
	assert.InDelta(t, -2, roots[1], 1e-12)
}

func TestSolve_ConstantOnlyErrors(t *testing.T) {
	_, err := Solve(symbolic.Lit(5), "x")
	assert.Error(t, err)
}

func TestSolveSystem(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 1}, {1, -1}})
	require.NoError(t, err)
	x, err := SolveSystem(a, []float64{3, 1})
	require.NoError(t, err)
	assert.InDelta(t, 2, x[0], 1e-12)
	assert.InDelta(t, 1, x[1], 1e-12)
}
