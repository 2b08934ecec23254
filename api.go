// Package pgtrgm provides typed expressions for PostgreSQL's pg_trgm extension.
//
// Every pg_trgm operator and function is a method or function producing an
// expression tree. Trees render to SQL fragments with named parameters through a
// dialect Renderer, ready to embed in a hand-written or generated query.
// Similarity scoring, thresholds and indexes live entirely in the server.
//
// # Basic Usage
//
//	import "github.com/martsokha/pgtrgm/postgres"
//
//	name := pgtrgm.Col("name")
//	q := pgtrgm.P("q")
//
//	result, err := pgtrgm.Render(postgres.New(),
//		name.SimilarTo(q),
//		name.Distance(q).Asc(),
//	)
//	// result.Fragments[0]: "name" % :q
//	// result.Fragments[1]: "name" <-> :q ASC
//	// result.RequiredParams: []string{"q"}
//
// # Text Kinds
//
// Trigram methods exist only on TextExpr, which is parameterized by the column
// kind: Text or NullableText. Operands must be text expressions, parameters or
// String literals, so applying a trigram operator to a non-text value does not
// compile. Results built from a NullableText operand report Nullable() so callers
// know to scan into sql.NullBool or sql.NullFloat64.
//
// # Schema-Validated Usage
//
// For columns checked against a schema, create a Schema from a DBML project:
//
//	schema, err := pgtrgm.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	// Panics unless users.name exists and is a text-like column
//	name := schema.Text("users", "name")
//
// # Placeholders
//
// The PostgreSQL renderer emits :name placeholders (sqlx) by default, @name
// placeholders for pgx.NamedArgs, or $n positional placeholders. String, Strings
// and Float literals are always bound, never inlined; their generated names use the
// reserved trgm_ prefix.
//
// # Raw SQL
//
// The raw sub-package offers the same operators as plain string constants and
// formatting helpers for queries written by hand.
package pgtrgm

import "github.com/martsokha/pgtrgm/internal/types"

// QueryResult contains the rendered SQL fragments and required parameters.
type QueryResult = types.QueryResult

// Operator represents a pg_trgm operator token.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	// Similarity predicates (boolean).
	OpSimilar                = types.Similar
	OpWordSimilarLeft        = types.WordSimilarLeft
	OpWordSimilarRight       = types.WordSimilarRight
	OpStrictWordSimilarLeft  = types.StrictWordSimilarLeft
	OpStrictWordSimilarRight = types.StrictWordSimilarRight

	// Distance operators (real).
	OpDistance                = types.Distance
	OpWordDistanceLeft        = types.WordDistanceLeft
	OpWordDistanceRight       = types.WordDistanceRight
	OpStrictWordDistanceLeft  = types.StrictWordDistanceLeft
	OpStrictWordDistanceRight = types.StrictWordDistanceRight
)

// OperatorInfo describes an operator: its token, result type and semantics.
type OperatorInfo = types.OperatorInfo

// Function represents a SQL function name.
type Function = types.Function

// Re-export function constants for public API.
const (
	FnSimilarity           = types.FnSimilarity
	FnWordSimilarity       = types.FnWordSimilarity
	FnStrictWordSimilarity = types.FnStrictWordSimilarity
	FnShowTrgm             = types.FnShowTrgm
	FnShowLimit            = types.FnShowLimit
	FnSetLimit             = types.FnSetLimit
	FnArrayToString        = types.FnArrayToString
)

// FunctionInfo describes a function signature.
type FunctionInfo = types.FunctionInfo

// SQLType represents the PostgreSQL type of an expression.
type SQLType = types.SQLType

// Re-export SQL type constants for public API.
const (
	TypeBool      = types.Bool
	TypeFloat     = types.Float
	TypeText      = types.Text
	TypeTextArray = types.TextArray
)

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// Operators returns the pg_trgm operator catalog.
func Operators() []OperatorInfo {
	return types.Operators()
}

// Functions returns the function catalog.
func Functions() []FunctionInfo {
	return types.Functions()
}
