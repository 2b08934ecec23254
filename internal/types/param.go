package types

// Param represents a named parameter reference supplied by the caller at execution time.
type Param struct {
	Name string
}

// GetName returns the parameter name.
func (p Param) GetName() string {
	return p.Name
}

// Value represents a literal bound as a parameter.
// Renderers assign the placeholder name; literals never appear in SQL text.
type Value struct {
	Value any
}
