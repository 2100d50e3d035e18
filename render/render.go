// Package render turns terms into LaTeX and HTML presentation
// strings. It walks terms read-only and never rewrites them.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/symcalc/symcalc/symbolic"
)

var latexFunc = map[symbolic.Op]string{
	symbolic.OpSin:  `\sin`,
	symbolic.OpCos:  `\cos`,
	symbolic.OpTan:  `\tan`,
	symbolic.OpCot:  `\cot`,
	symbolic.OpSec:  `\sec`,
	symbolic.OpCsc:  `\csc`,
	symbolic.OpAsin: `\arcsin`,
	symbolic.OpAcos: `\arccos`,
	symbolic.OpAtan: `\arctan`,
}

// needsGrouping reports whether a power base must be parenthesized.
// Sums and differences render with their own parentheses already.
func needsGrouping(t *symbolic.Term) bool {
	if !t.IsCompound() {
		return false
	}
	op := t.Op()
	return op != symbolic.OpAdd && op != symbolic.OpSub
}

// LaTeX renders t as LaTeX math-mode markup. Quotients become
// \frac{}{} and products use \cdot.
func LaTeX(t *symbolic.Term) string {
	if !t.IsCompound() {
		return t.Name()
	}
	ops := t.Operands()
	switch op := t.Op(); op {
	case symbolic.OpAdd:
		return fmt.Sprintf(`\left(%s + %s\right)`, LaTeX(ops[0]), LaTeX(ops[1]))
	case symbolic.OpSub:
		return fmt.Sprintf(`\left(%s - %s\right)`, LaTeX(ops[0]), LaTeX(ops[1]))
	case symbolic.OpMul:
		return fmt.Sprintf(`%s \cdot %s`, LaTeX(ops[0]), LaTeX(ops[1]))
	case symbolic.OpDiv:
		return fmt.Sprintf(`\frac{%s}{%s}`, LaTeX(ops[0]), LaTeX(ops[1]))
	case symbolic.OpPow:
		base := LaTeX(ops[0])
		if needsGrouping(ops[0]) {
			base = `\left(` + base + `\right)`
		}
		return fmt.Sprintf(`{%s}^{%s}`, base, LaTeX(ops[1]))
	case symbolic.OpIntegral:
		if len(ops) == 4 {
			return fmt.Sprintf(`\int_{%s}^{%s} %s \, d%s`, LaTeX(ops[2]), LaTeX(ops[3]), LaTeX(ops[0]), LaTeX(ops[1]))
		}
		return fmt.Sprintf(`\int %s \, d%s`, LaTeX(ops[0]), LaTeX(ops[1]))
	default:
		if name, ok := latexFunc[op]; ok {
			return fmt.Sprintf(`%s\left(%s\right)`, name, LaTeX(ops[0]))
		}
		parts := make([]string, len(ops))
		for i, a := range ops {
			parts[i] = LaTeX(a)
		}
		return fmt.Sprintf(`%s\left(%s\right)`, op, strings.Join(parts, ", "))
	}
}

// HTML renders t as inline HTML: powers become <sup>, function names
// are italicized, and variable names are escaped.
func HTML(t *symbolic.Term) string {
	if t.IsVariable() {
		return html.EscapeString(t.Name())
	}
	if t.IsLiteral() {
		return t.Name()
	}
	ops := t.Operands()
	switch op := t.Op(); op {
	case symbolic.OpAdd:
		return fmt.Sprintf("(%s + %s)", HTML(ops[0]), HTML(ops[1]))
	case symbolic.OpSub:
		return fmt.Sprintf("(%s &minus; %s)", HTML(ops[0]), HTML(ops[1]))
	case symbolic.OpMul:
		return fmt.Sprintf("%s &middot; %s", HTML(ops[0]), HTML(ops[1]))
	case symbolic.OpDiv:
		return fmt.Sprintf("%s &frasl; %s", HTML(ops[0]), HTML(ops[1]))
	case symbolic.OpPow:
		base := HTML(ops[0])
		if needsGrouping(ops[0]) {
			base = "(" + base + ")"
		}
		return fmt.Sprintf("%s<sup>%s</sup>", base, HTML(ops[1]))
	case symbolic.OpIntegral:
		if len(ops) == 4 {
			return fmt.Sprintf("&int;<sub>%s</sub><sup>%s</sup> %s d%s", HTML(ops[2]), HTML(ops[3]), HTML(ops[0]), HTML(ops[1]))
		}
		return fmt.Sprintf("&int; %s d%s", HTML(ops[0]), HTML(ops[1]))
	default:
		parts := make([]string, len(ops))
		for i, a := range ops {
			parts[i] = HTML(a)
		}
		return fmt.Sprintf("<i>%s</i>(%s)", op, strings.Join(parts, ", "))
	}
}
