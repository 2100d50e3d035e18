package api

import "encoding/json"

// ToolSpec describes one tool for agent registration.
type ToolSpec struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Params      map[string]string `json:"params"`
}

var toolSpecs = []ToolSpec{
	{"simplify", "Rewrite a term toward a simpler form with the bounded fixpoint engine.", map[string]string{"term": "term"}},
	{"simplify_trig", "Apply exact-value, ratio, and reflection trigonometric identities.", map[string]string{"term": "term"}},
	{"canonical_text", "Serialize a term to its canonical text.", map[string]string{"term": "term"}},
	{"diff", "Differentiate a term with respect to a variable.", map[string]string{"term": "term", "var": "string"}},
	{"diffn", "n-th derivative, re-simplified between steps.", map[string]string{"term": "term", "var": "string", "n": "number"}},
	{"integrate", "Rule-based antiderivative; unmatched forms come back as unresolved integrals.", map[string]string{"term": "term", "var": "string"}},
	{"definite_integral", "Wrap a term as an opaque bounded integral.", map[string]string{"term": "term", "var": "string", "lower": "number", "upper": "number"}},
	{"evaluate", "Substitute a numeric point for a variable and fold.", map[string]string{"term": "term", "var": "string", "point": "number"}},
	{"substitute", "Replace a variable with another term.", map[string]string{"term": "term", "var": "string", "value": "term"}},
	{"taylor", "Taylor coefficients around a point.", map[string]string{"term": "term", "var": "string", "point": "number", "order": "number"}},
	{"taylor_polynomial", "Truncated Taylor polynomial around a point.", map[string]string{"term": "term", "var": "string", "point": "number", "order": "number"}},
	{"render_latex", "Render a term as LaTeX.", map[string]string{"term": "term"}},
	{"render_html", "Render a term as inline HTML.", map[string]string{"term": "term"}},
	{"solve", "Solve term = 0 for polynomials of degree at most two.", map[string]string{"term": "term", "var": "string"}},
	{"matrix_det", "Determinant of a numeric matrix.", map[string]string{"matrix": "number[][]"}},
	{"matrix_inv", "Inverse of a numeric matrix.", map[string]string{"matrix": "number[][]"}},
	{"matrix_solve", "Solve a linear system A*x = rhs.", map[string]string{"matrix": "number[][]", "rhs": "number[]"}},
	{"fourier_series", "Fourier coefficients of a term sampled numerically over one period.", map[string]string{"term": "term", "var": "string", "period": "number", "terms": "number", "samples": "number"}},
	{"schema", "This schema.", map[string]string{}},
}

// Schema returns the tool schema as a JSON document for agent
// registration.
func Schema() string {
	out, err := json.MarshalIndent(map[string]interface{}{"tools": toolSpecs}, "", "  ")
	if err != nil {
		// Static data; marshaling cannot fail.
		panic(err)
	}
	return string(out)
}
