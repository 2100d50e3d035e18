package api

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/symcalc/symcalc/equations"
	"github.com/symcalc/symcalc/fourier"
	"github.com/symcalc/symcalc/matrix"
	"github.com/symcalc/symcalc/render"
	"github.com/symcalc/symcalc/symbolic"
)

// ToolRequest is a single tool invocation: the tool name plus its
// parameters as decoded JSON.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries the result of a tool call. Term-valued results
// fill Result (encoded term), Text (canonical text), and the two
// rendered forms. Error is set instead when the call failed.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	Text   string      `json:"text,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	HTML   string      `json:"html,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func respond(t *symbolic.Term) ToolResponse {
	return ToolResponse{
		Result: Encode(t),
		Text:   t.CanonicalText(),
		LaTeX:  render.LaTeX(t),
		HTML:   render.HTML(t),
	}
}

func fail(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

// HandleToolCall dispatches a tool request onto the engine. It never
// panics on malformed input; every parameter problem comes back in
// ToolResponse.Error.
func HandleToolCall(req ToolRequest) ToolResponse {
	getTerm := func(key string) (*symbolic.Term, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, errors.Errorf("missing param: %s", key)
		}
		obj, ok := v.(map[string]interface{})
		if !ok {
			return nil, errors.Errorf("param %s must be a term object", key)
		}
		return Decode(obj)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", errors.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", errors.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, errors.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, errors.Errorf("param %s must be a number", key)
		}
		return f, nil
	}
	getInt := func(key string) (int, error) {
		f, err := getNumber(key)
		if err != nil {
			return 0, err
		}
		return int(f), nil
	}
	getMatrix := func(key string) (*matrix.Matrix, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, errors.Errorf("missing param: %s", key)
		}
		rawRows, ok := v.([]interface{})
		if !ok {
			return nil, errors.Errorf("param %s must be an array of rows", key)
		}
		rows := make([][]float64, len(rawRows))
		for i, rr := range rawRows {
			rawRow, ok := rr.([]interface{})
			if !ok {
				return nil, errors.Errorf("param %s: row %d is not an array", key, i)
			}
			row := make([]float64, len(rawRow))
			for j, cell := range rawRow {
				f, ok := cell.(float64)
				if !ok {
					return nil, errors.Errorf("param %s: entry (%d,%d) is not a number", key, i, j)
				}
				row[j] = f
			}
			rows[i] = row
		}
		return matrix.FromRows(rows)
	}
	getFloats := func(key string) ([]float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, errors.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, errors.Errorf("param %s must be a number array", key)
		}
		out := make([]float64, len(raw))
		for i, r := range raw {
			f, ok := r.(float64)
			if !ok {
				return nil, errors.Errorf("param %s[%d] must be a number", key, i)
			}
			out[i] = f
		}
		return out, nil
	}

	switch req.Tool {
	case "simplify":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		return respond(symbolic.Simplify(t))

	case "simplify_trig":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		return respond(symbolic.SimplifyTrig(t))

	case "canonical_text":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Text: t.CanonicalText()}

	case "diff":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		d, err := symbolic.Differentiate(t, v)
		if err != nil {
			return fail(err)
		}
		return respond(d)

	case "diffn":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		n, err := getInt("n")
		if err != nil {
			return fail(err)
		}
		if n < 0 {
			return fail(errors.New("param n must be >= 0"))
		}
		// Re-simplify between steps: repeated product and quotient
		// rules grow the raw derivative tree geometrically.
		cur := t
		for i := 0; i < n; i++ {
			d, err := symbolic.Differentiate(cur, v)
			if err != nil {
				return fail(err)
			}
			cur = symbolic.Simplify(d)
		}
		return respond(cur)

	case "integrate":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		return respond(symbolic.Integrate(t, v))

	case "definite_integral":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		lower, err := getNumber("lower")
		if err != nil {
			return fail(err)
		}
		upper, err := getNumber("upper")
		if err != nil {
			return fail(err)
		}
		return respond(symbolic.DefiniteIntegral(t, v, symbolic.Lit(lower), symbolic.Lit(upper)))

	case "evaluate":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		point, err := getNumber("point")
		if err != nil {
			return fail(err)
		}
		return respond(symbolic.EvaluateAt(t, v, point))

	case "substitute":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		value, err := getTerm("value")
		if err != nil {
			return fail(err)
		}
		return respond(symbolic.Substitute(t, v, value))

	case "taylor":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		point, err := getNumber("point")
		if err != nil {
			return fail(err)
		}
		order, err := getInt("order")
		if err != nil {
			return fail(err)
		}
		if order < 0 {
			return fail(errors.New("param order must be >= 0"))
		}
		coeffs, err := symbolic.TaylorCoefficients(t, v, point, order)
		if err != nil {
			return fail(err)
		}
		encoded := make([]interface{}, len(coeffs))
		texts := make([]string, len(coeffs))
		for i, c := range coeffs {
			encoded[i] = Encode(c)
			texts[i] = c.CanonicalText()
		}
		return ToolResponse{Result: encoded, Text: strings.Join(texts, ", ")}

	case "taylor_polynomial":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		point, err := getNumber("point")
		if err != nil {
			return fail(err)
		}
		order, err := getInt("order")
		if err != nil {
			return fail(err)
		}
		if order < 0 {
			return fail(errors.New("param order must be >= 0"))
		}
		coeffs, err := symbolic.TaylorCoefficients(t, v, point, order)
		if err != nil {
			return fail(err)
		}
		return respond(symbolic.TaylorPolynomial(coeffs, v, point))

	case "render_latex":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{LaTeX: render.LaTeX(t), Text: t.CanonicalText()}

	case "render_html":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{HTML: render.HTML(t), Text: t.CanonicalText()}

	case "solve":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		roots, err := equations.Solve(t, v)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: roots}

	case "matrix_det":
		m, err := getMatrix("matrix")
		if err != nil {
			return fail(err)
		}
		det, err := m.Det()
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: det}

	case "matrix_inv":
		m, err := getMatrix("matrix")
		if err != nil {
			return fail(err)
		}
		inv, err := m.Inverse()
		if err != nil {
			return fail(err)
		}
		rows := make([][]float64, inv.Rows())
		for i := range rows {
			row := make([]float64, inv.Cols())
			for j := range row {
				row[j] = inv.At(i, j)
			}
			rows[i] = row
		}
		return ToolResponse{Result: rows, Text: inv.String()}

	case "matrix_solve":
		m, err := getMatrix("matrix")
		if err != nil {
			return fail(err)
		}
		rhs, err := getFloats("rhs")
		if err != nil {
			return fail(err)
		}
		x, err := equations.SolveSystem(m, rhs)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: x}

	case "fourier_series":
		t, err := getTerm("term")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		period, err := getNumber("period")
		if err != nil {
			return fail(err)
		}
		if period <= 0 {
			return fail(errors.New("param period must be positive"))
		}
		terms, err := getInt("terms")
		if err != nil {
			return fail(err)
		}
		if terms < 1 {
			return fail(errors.New("param terms must be >= 1"))
		}
		samples, err := getInt("samples")
		if err != nil {
			return fail(err)
		}
		// The closure cannot report failure, so probe once up front: the
		// term must evaluate to a number with only this variable bound.
		if probe := symbolic.EvaluateAt(t, v, period/2); !probe.IsLiteral() {
			return fail(errors.Errorf("term %s does not evaluate to a number", t.CanonicalText()))
		}
		series := fourier.Coefficients(func(x float64) float64 {
			return symbolic.EvaluateAt(t, v, x).Value()
		}, period, terms, samples)
		return ToolResponse{Result: map[string]interface{}{
			"period": series.Period,
			"a0":     series.A0,
			"a":      series.A,
			"b":      series.B,
		}}

	case "schema":
		return ToolResponse{Result: json.RawMessage(Schema())}
	}
	return ToolResponse{Error: "unknown tool: " + req.Tool}
}
