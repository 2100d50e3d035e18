package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpson_ExactOnCubics(t *testing.T) {
	// Simpson's rule integrates polynomials up to degree 3 exactly.
	got := Simpson(func(x float64) float64 { return x * x * x }, 0, 1, 2)
	assert.InDelta(t, 0.25, got, 1e-14)

	got = Simpson(func(x float64) float64 { return 3*x*x - 2*x + 1 }, -1, 2, 4)
	assert.InDelta(t, 9, got, 1e-12)
}

func TestSimpson_Sine(t *testing.T) {
	got := Simpson(math.Sin, 0, math.Pi, 100)
	assert.InDelta(t, 2, got, 1e-8)
}

func TestSimpson_NormalizesSubintervalCount(t *testing.T) {
	// Odd and degenerate counts are adjusted, not rejected.
	exact := Simpson(func(x float64) float64 { return x * x }, 0, 1, 2)
	odd := Simpson(func(x float64) float64 { return x * x }, 0, 1, 3)
	tiny := Simpson(func(x float64) float64 { return x * x }, 0, 1, 0)
	assert.InDelta(t, 1.0/3.0, exact, 1e-14)
	assert.InDelta(t, 1.0/3.0, odd, 1e-14)
	assert.InDelta(t, 1.0/3.0, tiny, 1e-14)
}

func TestSimpson_ReversedBoundsNegate(t *testing.T) {
	fwd := Simpson(math.Cos, 0, 1, 50)
	rev := Simpson(math.Cos, 1, 0, 50)
	assert.InDelta(t, -fwd, rev, 1e-12)
}

func TestCoefficients_RecoverSinusoid(t *testing.T) {
	// f(x) = sin(x) + 0.5 sin(2x) over a 2π period: b₁=1, b₂=0.5,
	// everything else 0.
	f := func(x float64) float64 { return math.Sin(x) + 0.5*math.Sin(2*x) }
	s := Coefficients(f, 2*math.Pi, 3, 400)
	assert.InDelta(t, 0, s.A0, 1e-8)
	assert.InDelta(t, 0, s.A[0], 1e-8)
	assert.InDelta(t, 1, s.B[0], 1e-8)
	assert.InDelta(t, 0.5, s.B[1], 1e-8)
	assert.InDelta(t, 0, s.B[2], 1e-8)
}

func TestCoefficients_ConstantFunction(t *testing.T) {
	s := Coefficients(func(float64) float64 { return 3 }, 1, 2, 100)
	assert.InDelta(t, 6, s.A0, 1e-10) // constant term is A0/2
	assert.InDelta(t, 3, s.Eval(0.37), 1e-8)
}

func TestSeriesEval_ConvergesToSquareWave(t *testing.T) {
	// Odd square wave on [0, 2π): +1 then -1. bₖ = 4/(kπ) for odd k.
	square := func(x float64) float64 {
		if math.Mod(x, 2*math.Pi) < math.Pi {
			return 1
		}
		return -1
	}
	s := Coefficients(square, 2*math.Pi, 25, 2000)
	require.Len(t, s.B, 25)
	assert.InDelta(t, 4/math.Pi, s.B[0], 5e-3)
	assert.InDelta(t, 0, s.B[1], 5e-3)
	assert.InDelta(t, 4/(3*math.Pi), s.B[2], 5e-3)

	// Away from the jumps the truncated series tracks the wave.
	for _, x := range []float64{1.0, 2.0} {
		assert.InDelta(t, 1, s.Eval(x), 0.15, "at x=%g", x)
	}
	assert.InDelta(t, -1, s.Eval(math.Pi+1), 0.15)
}

func TestSeriesEval_PeriodicityOfReconstruction(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) }
	s := Coefficients(f, 2*math.Pi, 2, 200)
	assert.InDelta(t, s.Eval(0.7), s.Eval(0.7+2*math.Pi), 1e-9)
}
