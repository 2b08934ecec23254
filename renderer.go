package pgtrgm

import (
	"fmt"

	"github.com/martsokha/pgtrgm/internal/types"
)

// Renderer defines the interface for dialect-specific rendering.
// Implementations convert expression trees to SQL fragments with named parameters.
type Renderer interface {
	// Render converts expression trees to a QueryResult with one fragment per node.
	Render(nodes []types.Node) (*types.QueryResult, error)
}

// Render renders expressions with one renderer call, so fragments destined for the
// same query share parameter placeholders.
func Render(r Renderer, exprs ...Expression) (*QueryResult, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer cannot be nil")
	}
	nodes := make([]types.Node, len(exprs))
	for i, e := range exprs {
		if e == nil {
			return nil, fmt.Errorf("expression %d is nil", i)
		}
		nodes[i] = e.node()
	}
	return r.Render(nodes)
}

// MustRender renders expressions and panics on error.
func MustRender(r Renderer, exprs ...Expression) *QueryResult {
	result, err := Render(r, exprs...)
	if err != nil {
		panic(err)
	}
	return result
}
