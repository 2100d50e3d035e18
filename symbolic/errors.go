package symbolic

import "fmt"

// ArityError reports a compound construction whose operand count does
// not match the operator's fixed arity.
type ArityError struct {
	Op  Op
	Got int
}

func (e *ArityError) Error() string {
	if e.Op == OpIntegral {
		return fmt.Sprintf("symbolic: operator %q expects 2 or 4 operands, got %d", e.Op, e.Got)
	}
	want, ok := arity(e.Op)
	if !ok {
		return fmt.Sprintf("symbolic: unknown operator %q given %d operands", e.Op, e.Got)
	}
	return fmt.Sprintf("symbolic: operator %q expects %d operands, got %d", e.Op, want, e.Got)
}

// UnknownOperationError reports differentiation of an operator tag the
// engine has no rule for, such as the integral marker.
type UnknownOperationError struct {
	Op Op
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("symbolic: no differentiation rule for operator %q", e.Op)
}

// UnsupportedDifferentiationError reports a power node where neither
// the base nor the exponent is a literal; the general f(x)^g(x) case
// is not implemented.
type UnsupportedDifferentiationError struct {
	Text string
}

func (e *UnsupportedDifferentiationError) Error() string {
	return fmt.Sprintf("symbolic: cannot differentiate %s: neither base nor exponent is a literal", e.Text)
}
