package types

// Node is any element of an expression tree.
type Node interface {
	IsNode()
}

// Binary represents <left> <operator> <right> for a pg_trgm operator.
type Binary struct {
	Left     Node
	Right    Node
	Operator Operator
}

// Call represents a SQL function call.
type Call struct {
	Function Function
	Args     []Node
}

// Compare represents a float comparison such as similarity(a, b) > :min.
type Compare struct {
	Left     Node
	Right    Node
	Operator CompareOperator
}

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Ordering represents an ORDER BY item.
type Ordering struct {
	Expr      Node
	Direction Direction
}

// Selection represents an aliased select-list item.
type Selection struct {
	Expr  Node
	Alias string
}

// Implement Node interface.
func (Column) IsNode()    {}
func (Param) IsNode()     {}
func (Value) IsNode()     {}
func (Binary) IsNode()    {}
func (Call) IsNode()      {}
func (Compare) IsNode()   {}
func (Ordering) IsNode()  {}
func (Selection) IsNode() {}
