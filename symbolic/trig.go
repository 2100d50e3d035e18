package symbolic

import "math"

// angleTolerance is the tolerance used when matching tabulated angles
// and recognizing the π literal in symbolic angle shapes.
const angleTolerance = 1e-10

// Pi returns the π literal.
func Pi() *Term { return Lit(math.Pi) }

// tabulatedAngles are the radians the exact-value tables cover.
var tabulatedAngles = [8]float64{
	0,
	math.Pi / 6,
	math.Pi / 4,
	math.Pi / 3,
	math.Pi / 2,
	math.Pi,
	3 * math.Pi / 2,
	2 * math.Pi,
}

// inf marks table entries where the function has a pole; those fall
// through to the ratio-identity rewrite instead of substituting.
var inf = math.Inf(1)

var exactValues = map[Op][8]float64{
	OpSin: {0, 0.5, math.Sqrt2 / 2, math.Sqrt(3) / 2, 1, 0, -1, 0},
	OpCos: {1, math.Sqrt(3) / 2, math.Sqrt2 / 2, 0.5, 0, -1, 0, 1},
	OpTan: {0, 1 / math.Sqrt(3), 1, math.Sqrt(3), inf, 0, inf, 0},
	OpCot: {inf, math.Sqrt(3), 1, 1 / math.Sqrt(3), 0, inf, 0, inf},
	OpSec: {1, 2 / math.Sqrt(3), math.Sqrt2, 2, inf, -1, inf, 1},
	OpCsc: {inf, 2, math.Sqrt2, 2 / math.Sqrt(3), 1, inf, -1, inf},
}

// SimplifyTrig applies trigonometric exact values and identities. It
// is a separate entry point from Simplify: the generic engine never
// touches trig nodes, and this pass applies no algebraic rules beyond
// its own rewrites. Rules, for the six direct functions only:
//
//   - argument matching a tabulated angle (literal radians within
//     1e-10, or a symbolic π/d division with d in {2,3,4,6}): replaced
//     by the tabulated literal when finite;
//   - otherwise sin/cos arguments of the syntactic shapes (0 - x),
//     (π - x) and (π + x) rewrite via the reflection identities;
//   - otherwise tan/cot/sec/csc rewrite via the ratio identities
//     tan→sin/cos, cot→cos/sin, sec→1/cos, csc→1/sin.
//
// Inverse functions and composite identities (such as sin²+cos²) are
// left untouched.
func SimplifyTrig(t *Term) *Term {
	if t.kind != kindCompound {
		return t
	}
	args := make([]*Term, len(t.args))
	for i, a := range t.args {
		args[i] = SimplifyTrig(a)
	}
	node := newCompound(t.op, args...)
	if !node.op.IsTrig() {
		return node
	}
	return rewriteTrig(node)
}

func rewriteTrig(t *Term) *Term {
	arg := t.args[0]

	if rad, ok := angleValue(arg); ok {
		if idx, ok := matchAngle(rad); ok {
			v := exactValues[t.op][idx]
			if !math.IsInf(v, 0) {
				return Lit(v)
			}
		}
	}

	switch t.op {
	case OpSin, OpCos:
		if r, ok := reflectIdentity(t.op, arg); ok {
			return r
		}
		return t
	case OpTan:
		return Sin(arg).Div(Cos(arg))
	case OpCot:
		return Cos(arg).Div(Sin(arg))
	case OpSec:
		return Lit(1).Div(Cos(arg))
	case OpCsc:
		return Lit(1).Div(Sin(arg))
	}
	return t
}

// angleValue extracts the radian value of an argument that is either a
// plain literal or the symbolic shape (π / d) with d in {2, 3, 4, 6}.
func angleValue(arg *Term) (float64, bool) {
	if arg.IsLiteral() {
		return arg.value, true
	}
	if arg.IsCompound() && arg.op == OpDiv {
		num, den := arg.args[0], arg.args[1]
		if num.IsLiteral() && den.IsLiteral() && isPi(num.value) {
			switch den.value {
			case 2, 3, 4, 6:
				return num.value / den.value, true
			}
		}
	}
	return 0, false
}

func matchAngle(rad float64) (int, bool) {
	for i, a := range tabulatedAngles {
		if math.Abs(rad-a) < angleTolerance {
			return i, true
		}
	}
	return 0, false
}

func isPi(v float64) bool { return math.Abs(v-math.Pi) < angleTolerance }

// reflectIdentity handles the sin/cos reflection and shift identities
// for arguments of the syntactic shapes (0 - x), (π - x) and (π + x).
// Other operand orders and the remaining four functions are
// intentionally not handled.
func reflectIdentity(op Op, arg *Term) (*Term, bool) {
	if !arg.IsCompound() || (arg.op != OpAdd && arg.op != OpSub) {
		// Unary compounds (a trig node as the argument) have a single
		// operand; only binary +/- shapes participate.
		return nil, false
	}
	left, x := arg.args[0], arg.args[1]
	if !left.IsLiteral() {
		return nil, false
	}
	switch arg.op {
	case OpSub:
		if math.Abs(left.value) < angleTolerance {
			// sin(-x) = -sin(x); cos(-x) = cos(x).
			if op == OpSin {
				return Lit(-1).Mul(Sin(x)), true
			}
			return Cos(x), true
		}
		if isPi(left.value) {
			// sin(π-x) = sin(x); cos(π-x) = -cos(x).
			if op == OpSin {
				return Sin(x), true
			}
			return Lit(-1).Mul(Cos(x)), true
		}
	case OpAdd:
		if isPi(left.value) {
			// sin(π+x) = -sin(x); cos(π+x) = -cos(x).
			if op == OpSin {
				return Lit(-1).Mul(Sin(x)), true
			}
			return Lit(-1).Mul(Cos(x)), true
		}
	}
	return nil, false
}
