package pgtrgm

import (
	"fmt"

	"github.com/martsokha/pgtrgm/internal/types"
)

// Text is the kind of a NOT NULL text or varchar column.
type Text struct{}

// NullableText is the kind of a text or varchar column that may be NULL.
type NullableText struct{}

// TextKind constrains text expressions to the column kinds pg_trgm operates on.
type TextKind interface {
	Text | NullableText
}

// Expression is anything that renders to a SQL fragment.
type Expression interface {
	node() types.Node
}

// TextOperand is a text-typed operand: a TextExpr, a Param or a String literal.
type TextOperand interface {
	textNode() (types.Node, bool)
}

// TextArrayOperand is a text[] operand: a TextArrayExpr, a Param or a Strings literal.
type TextArrayOperand interface {
	arrayNode() (types.Node, bool)
}

// FloatOperand is a real operand: a FloatExpr, a Param or a Float literal.
type FloatOperand interface {
	floatNode() (types.Node, bool)
}

// TextExpr is a text expression of kind K. Trigram operators are methods on TextExpr.
type TextExpr[K TextKind] struct {
	n        types.Node
	nullable bool
}

func newText[K TextKind](n types.Node, nullable bool) TextExpr[K] {
	var k K
	_, isNullable := any(k).(NullableText)
	return TextExpr[K]{n: n, nullable: nullable || isNullable}
}

func (e TextExpr[K]) node() types.Node             { return e.n }
func (e TextExpr[K]) textNode() (types.Node, bool) { return e.n, e.nullable }

// Nullable reports whether the expression may evaluate to NULL.
func (e TextExpr[K]) Nullable() bool { return e.nullable }

// Render renders the expression as a single fragment.
func (e TextExpr[K]) Render(r Renderer) (*QueryResult, error) { return Render(r, e) }

// TryWithTable qualifies a column with a table name or single-letter alias.
func (e TextExpr[K]) TryWithTable(tableOrAlias string) (TextExpr[K], error) {
	col, ok := e.n.(types.Column)
	if !ok {
		return TextExpr[K]{}, fmt.Errorf("WithTable requires a column expression, got %T", e.n)
	}
	if err := validateTableOrAlias(tableOrAlias); err != nil {
		return TextExpr[K]{}, err
	}
	return TextExpr[K]{n: col.WithTable(tableOrAlias), nullable: e.nullable}, nil
}

// WithTable qualifies a column with a table name or single-letter alias.
func (e TextExpr[K]) WithTable(tableOrAlias string) TextExpr[K] {
	out, err := e.TryWithTable(tableOrAlias)
	if err != nil {
		panic(err)
	}
	return out
}

// TextArrayExpr is a text[] expression.
type TextArrayExpr struct {
	n        types.Node
	nullable bool
}

func (e TextArrayExpr) node() types.Node              { return e.n }
func (e TextArrayExpr) arrayNode() (types.Node, bool) { return e.n, e.nullable }

// Nullable reports whether the expression may evaluate to NULL.
func (e TextArrayExpr) Nullable() bool { return e.nullable }

// Render renders the expression as a single fragment.
func (e TextArrayExpr) Render(r Renderer) (*QueryResult, error) { return Render(r, e) }

// As names the expression in a select list.
func (e TextArrayExpr) As(alias string) SelectExpr {
	return newSelect(e.n, alias)
}

// BoolExpr is a boolean predicate, suitable for WHERE, ON or HAVING.
type BoolExpr struct {
	n        types.Node
	nullable bool
}

func (e BoolExpr) node() types.Node { return e.n }

// Nullable reports whether the predicate may evaluate to NULL.
func (e BoolExpr) Nullable() bool { return e.nullable }

// Render renders the predicate as a single fragment.
func (e BoolExpr) Render(r Renderer) (*QueryResult, error) { return Render(r, e) }

// FloatExpr is a real-valued similarity score or distance.
type FloatExpr struct {
	n        types.Node
	nullable bool
}

func (e FloatExpr) node() types.Node              { return e.n }
func (e FloatExpr) floatNode() (types.Node, bool) { return e.n, e.nullable }

// Nullable reports whether the score may evaluate to NULL.
func (e FloatExpr) Nullable() bool { return e.nullable }

// Render renders the score as a single fragment.
func (e FloatExpr) Render(r Renderer) (*QueryResult, error) { return Render(r, e) }

// Asc orders by the score, lowest first. Use with distances for nearest-first results.
func (e FloatExpr) Asc() OrderExpr {
	return OrderExpr{n: types.Ordering{Expr: e.n, Direction: types.ASC}}
}

// Desc orders by the score, highest first. Use with similarity() for best-first results.
func (e FloatExpr) Desc() OrderExpr {
	return OrderExpr{n: types.Ordering{Expr: e.n, Direction: types.DESC}}
}

// As names the score in a select list.
func (e FloatExpr) As(alias string) SelectExpr {
	return newSelect(e.n, alias)
}

// LT compares the score: e < other.
func (e FloatExpr) LT(other FloatOperand) BoolExpr { return compare(e, types.LT, other) }

// LE compares the score: e <= other.
func (e FloatExpr) LE(other FloatOperand) BoolExpr { return compare(e, types.LE, other) }

// GT compares the score: e > other.
func (e FloatExpr) GT(other FloatOperand) BoolExpr { return compare(e, types.GT, other) }

// GE compares the score: e >= other.
func (e FloatExpr) GE(other FloatOperand) BoolExpr { return compare(e, types.GE, other) }

func compare(left FloatExpr, op types.CompareOperator, right FloatOperand) BoolExpr {
	r, rn := right.floatNode()
	return BoolExpr{
		n:        types.Compare{Left: left.n, Operator: op, Right: r},
		nullable: left.nullable || rn,
	}
}

// OrderExpr is an ORDER BY item.
type OrderExpr struct {
	n types.Node
}

func (e OrderExpr) node() types.Node { return e.n }

// Render renders the ORDER BY item as a single fragment.
func (e OrderExpr) Render(r Renderer) (*QueryResult, error) { return Render(r, e) }

// SelectExpr is an aliased select-list item.
type SelectExpr struct {
	n types.Node
}

func (e SelectExpr) node() types.Node { return e.n }

// Render renders the select-list item as a single fragment.
func (e SelectExpr) Render(r Renderer) (*QueryResult, error) { return Render(r, e) }

func newSelect(n types.Node, alias string) SelectExpr {
	if !isValidSQLIdentifier(alias) {
		panic(fmt.Errorf("invalid alias '%s'", alias))
	}
	return SelectExpr{n: types.Selection{Expr: n, Alias: alias}}
}
