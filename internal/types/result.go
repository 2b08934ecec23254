package types

import (
	"fmt"
	"strings"
)

// QueryResult contains the rendered SQL fragments and their parameters.
type QueryResult struct {
	// Values holds bound literals keyed by their generated placeholder name.
	Values map[string]any
	// SQL is the fragments joined with ", ".
	SQL string
	// Fragments holds one rendered fragment per expression, in input order.
	Fragments []string
	// RequiredParams lists placeholder names in first-use order, bound values included.
	RequiredParams []string
}

// NamedArgs merges the bound values with caller-supplied parameters.
// It returns an error if a required parameter has no value.
func (r *QueryResult) NamedArgs(params map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(r.RequiredParams))
	var missing []string
	for _, name := range r.RequiredParams {
		if v, ok := r.Values[name]; ok {
			out[name] = v
			continue
		}
		v, ok := params[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		out[name] = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing parameters: %s", strings.Join(missing, ", "))
	}
	return out, nil
}

// Args returns arguments ordered by RequiredParams, for positional placeholders.
func (r *QueryResult) Args(params map[string]any) ([]any, error) {
	named, err := r.NamedArgs(params)
	if err != nil {
		return nil, err
	}
	args := make([]any, len(r.RequiredParams))
	for i, name := range r.RequiredParams {
		args[i] = named[name]
	}
	return args, nil
}
