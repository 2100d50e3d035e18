// Package api exposes the algebra engine as a JSON tool-call surface
// for agent frameworks: a term codec plus a dispatch function mapping
// named tools onto the engine's operations.
package api

import (
	"github.com/pkg/errors"

	"github.com/symcalc/symcalc/symbolic"
)

// Terms travel as JSON objects in one of three forms:
//
//	{"type": "lit", "value": 1.5}
//	{"type": "var", "name": "x"}
//	{"type": "op", "op": "+", "args": [ ... ]}

// Encode serializes a term into its JSON object form.
func Encode(t *symbolic.Term) map[string]interface{} {
	switch {
	case t.IsLiteral():
		return map[string]interface{}{"type": "lit", "value": t.Value()}
	case t.IsVariable():
		return map[string]interface{}{"type": "var", "name": t.Name()}
	}
	args := make([]interface{}, len(t.Operands()))
	for i, a := range t.Operands() {
		args[i] = Encode(a)
	}
	return map[string]interface{}{"type": "op", "op": string(t.Op()), "args": args}
}

// Decode parses the JSON object form back into a term. Operator arity
// is validated by the term constructor, so malformed trees are
// rejected at the boundary.
func Decode(obj map[string]interface{}) (*symbolic.Term, error) {
	typ, ok := obj["type"].(string)
	if !ok {
		return nil, errors.New("term object missing string field \"type\"")
	}
	switch typ {
	case "lit":
		v, ok := obj["value"].(float64)
		if !ok {
			return nil, errors.New("lit term missing numeric field \"value\"")
		}
		return symbolic.Lit(v), nil

	case "var":
		name, ok := obj["name"].(string)
		if !ok || name == "" {
			return nil, errors.New("var term missing non-empty field \"name\"")
		}
		return symbolic.Var(name), nil

	case "op":
		opName, ok := obj["op"].(string)
		if !ok {
			return nil, errors.New("op term missing string field \"op\"")
		}
		rawArgs, ok := obj["args"].([]interface{})
		if !ok {
			return nil, errors.Errorf("op term %q missing array field \"args\"", opName)
		}
		args := make([]*symbolic.Term, len(rawArgs))
		for i, raw := range rawArgs {
			m, ok := raw.(map[string]interface{})
			if !ok {
				return nil, errors.Errorf("op term %q: args[%d] is not an object", opName, i)
			}
			arg, err := Decode(m)
			if err != nil {
				return nil, errors.Wrapf(err, "op term %q: args[%d]", opName, i)
			}
			args[i] = arg
		}
		t, err := symbolic.NewCompound(symbolic.Op(opName), args...)
		if err != nil {
			return nil, errors.Wrap(err, "invalid compound term")
		}
		return t, nil
	}
	return nil, errors.Errorf("unknown term type %q", typ)
}
