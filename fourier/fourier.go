// Package fourier computes Fourier-series coefficients of periodic
// functions with composite Simpson's-rule quadrature. It operates on
// plain float64 closures.
package fourier

import "math"

// Func is a real-valued function of one real variable.
type Func func(float64) float64

// Simpson approximates the integral of f over [a, b] with the
// composite Simpson rule on n subintervals. n is clamped to at least 2
// and rounded up to the next even count, as the rule requires.
func Simpson(f Func, a, b float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 0 {
			sum += 2 * f(x)
		} else {
			sum += 4 * f(x)
		}
	}
	return sum * h / 3
}

// Series holds truncated Fourier coefficients of a function with the
// given period: A[k-1] and B[k-1] weight cos and sin of the k-th
// harmonic, and A0 is the raw constant-mode integral (the constant
// term of the series is A0/2).
type Series struct {
	Period float64
	A0     float64
	A      []float64
	B      []float64
}

// Coefficients computes the first `terms` harmonics of f over one
// period starting at 0, using `samples` Simpson subintervals per
// coefficient integral.
func Coefficients(f Func, period float64, terms, samples int) Series {
	w := 2 * math.Pi / period
	s := Series{
		Period: period,
		A0:     2 / period * Simpson(f, 0, period, samples),
		A:      make([]float64, terms),
		B:      make([]float64, terms),
	}
	for k := 1; k <= terms; k++ {
		kw := float64(k) * w
		s.A[k-1] = 2 / period * Simpson(func(x float64) float64 {
			return f(x) * math.Cos(kw*x)
		}, 0, period, samples)
		s.B[k-1] = 2 / period * Simpson(func(x float64) float64 {
			return f(x) * math.Sin(kw*x)
		}, 0, period, samples)
	}
	return s
}

// Eval evaluates the truncated series at x.
func (s Series) Eval(x float64) float64 {
	w := 2 * math.Pi / s.Period
	sum := s.A0 / 2
	for k := 1; k <= len(s.A); k++ {
		kw := float64(k) * w
		sum += s.A[k-1]*math.Cos(kw*x) + s.B[k-1]*math.Sin(kw*x)
	}
	return sum
}
