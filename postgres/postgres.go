// Package postgres provides the PostgreSQL renderer for pgtrgm expressions.
package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/martsokha/pgtrgm/internal/render"
	"github.com/martsokha/pgtrgm/internal/types"
)

// dialect is the name reported in unsupported feature errors.
const dialect = "postgres"

// valuePrefix namespaces placeholders generated for bound literals.
const valuePrefix = "trgm_"

// Placeholder selects how parameters appear in rendered SQL.
type Placeholder int

const (
	// Named renders :name, for sqlx.Named and NamedExec.
	Named Placeholder = iota
	// At renders @name, for pgx.NamedArgs.
	At
	// Positional renders $1, $2, ... in first-use order.
	Positional
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlaceholder sets the placeholder style. The default is Named.
func WithPlaceholder(p Placeholder) Option {
	return func(r *Renderer) {
		r.placeholder = p
	}
}

// WithServerVersion restricts rendering to the pg_trgm features available on a server
// with the given server_version_num.
func WithServerVersion(versionNum int) Option {
	return func(r *Renderer) {
		r.version = versionNum
		r.caps = render.CapabilitiesFor(versionNum)
	}
}

// renderContext tracks placeholders shared by all fragments of one Render call.
type renderContext struct {
	values      map[string]any
	index       map[string]int
	params      []string
	placeholder Placeholder
}

func newRenderContext(p Placeholder) *renderContext {
	return &renderContext{
		values:      make(map[string]any),
		index:       make(map[string]int),
		placeholder: p,
	}
}

// addParam registers a named parameter and returns its placeholder.
// Repeated names share one placeholder.
func (ctx *renderContext) addParam(name string) string {
	i, ok := ctx.index[name]
	if !ok {
		i = len(ctx.params)
		ctx.index[name] = i
		ctx.params = append(ctx.params, name)
	}

	switch ctx.placeholder {
	case At:
		return "@" + name
	case Positional:
		return "$" + strconv.Itoa(i+1)
	default:
		return ":" + name
	}
}

// addValue binds a literal under a generated name.
func (ctx *renderContext) addValue(v any) string {
	name := valuePrefix + strconv.Itoa(len(ctx.values)+1)
	ctx.values[name] = v
	return ctx.addParam(name)
}

// Renderer implements the PostgreSQL renderer.
type Renderer struct {
	caps        render.Capabilities
	placeholder Placeholder
	version     int
}

// New creates a new PostgreSQL renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{caps: render.CapabilitiesFor(0)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts expression trees to SQL fragments sharing one placeholder namespace.
func (r *Renderer) Render(nodes []types.Node) (*types.QueryResult, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no expressions to render")
	}

	ctx := newRenderContext(r.placeholder)
	fragments := make([]string, len(nodes))
	for i, node := range nodes {
		sql, err := r.renderTop(node, ctx)
		if err != nil {
			return nil, fmt.Errorf("expression %d: %w", i, err)
		}
		fragments[i] = sql
	}

	return &types.QueryResult{
		SQL:            strings.Join(fragments, ", "),
		Fragments:      fragments,
		RequiredParams: ctx.params,
		Values:         ctx.values,
	}, nil
}

// renderTop renders a fragment root, where ORDER BY and select-list items are allowed.
func (r *Renderer) renderTop(node types.Node, ctx *renderContext) (string, error) {
	switch n := node.(type) {
	case types.Ordering:
		expr, err := r.renderNode(n.Expr, ctx)
		if err != nil {
			return "", err
		}
		switch n.Direction {
		case types.ASC, types.DESC:
		default:
			return "", fmt.Errorf("invalid sort direction: %q", n.Direction)
		}
		return expr + " " + string(n.Direction), nil
	case types.Selection:
		if n.Alias == "" {
			return "", fmt.Errorf("selection alias is required")
		}
		expr, err := r.renderNode(n.Expr, ctx)
		if err != nil {
			return "", err
		}
		return expr + " AS " + r.quoteIdentifier(n.Alias), nil
	default:
		return r.renderNode(node, ctx)
	}
}

func (r *Renderer) renderNode(node types.Node, ctx *renderContext) (string, error) {
	switch n := node.(type) {
	case nil:
		return "", fmt.Errorf("nil expression")
	case types.Column:
		if n.GetName() == "" {
			return "", fmt.Errorf("column name is required")
		}
		return r.renderColumn(n), nil
	case types.Param:
		if err := validateParamName(n.GetName()); err != nil {
			return "", err
		}
		return ctx.addParam(n.GetName()), nil
	case types.Value:
		return ctx.addValue(n.Value), nil
	case types.Binary:
		return r.renderBinary(n, ctx)
	case types.Call:
		return r.renderCall(n, ctx)
	case types.Compare:
		return r.renderCompare(n, ctx)
	case types.Ordering, types.Selection:
		return "", fmt.Errorf("%T cannot be nested inside another expression", n)
	default:
		return "", fmt.Errorf("unknown expression type: %T", n)
	}
}

// validateParamName rejects names that cannot appear in a placeholder or that collide
// with the names generated for bound literals.
func validateParamName(name string) error {
	if name == "" {
		return fmt.Errorf("parameter name is required")
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		if !letter && (i == 0 || !(ch >= '0' && ch <= '9') && ch != '_') {
			return fmt.Errorf("invalid parameter name %q: must be alphanumeric with underscores, starting with letter", name)
		}
	}
	if strings.HasPrefix(strings.ToLower(name), valuePrefix) {
		return fmt.Errorf("invalid parameter name %q: prefix %q is reserved for bound values", name, valuePrefix)
	}
	return nil
}

func (r *Renderer) renderBinary(n types.Binary, ctx *renderContext) (string, error) {
	info, ok := types.LookupOperator(n.Operator)
	if !ok {
		return "", fmt.Errorf("unknown operator: %q", n.Operator)
	}
	if err := r.checkFeature("operator "+string(n.Operator), info.Word, info.Strict); err != nil {
		return "", err
	}

	left, err := r.renderNode(n.Left, ctx)
	if err != nil {
		return "", err
	}
	right, err := r.renderNode(n.Right, ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", left, r.renderOperator(n.Operator), right), nil
}

func (r *Renderer) renderCall(n types.Call, ctx *renderContext) (string, error) {
	info, ok := types.LookupFunction(n.Function)
	if !ok {
		return "", fmt.Errorf("unknown function: %q", n.Function)
	}
	if len(n.Args) != len(info.Args) {
		return "", fmt.Errorf("%s expects %d arguments, got %d", n.Function, len(info.Args), len(n.Args))
	}
	word := n.Function == types.FnWordSimilarity
	strict := n.Function == types.FnStrictWordSimilarity
	if err := r.checkFeature(string(n.Function)+"()", word || strict, strict); err != nil {
		return "", err
	}

	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		sql, err := r.renderNode(arg, ctx)
		if err != nil {
			return "", err
		}
		if info.Args[i] == types.TextArray && isPlaceholder(arg) {
			// array_to_string takes anyarray, so an untyped parameter cannot be resolved
			sql = castPlaceholder(sql, info.Args[i])
		}
		args[i] = sql
	}
	return fmt.Sprintf("%s(%s)", n.Function, strings.Join(args, ", ")), nil
}

// renderCompare parenthesizes operator operands so the comparison reads unambiguously.
func (r *Renderer) renderCompare(n types.Compare, ctx *renderContext) (string, error) {
	if !n.Operator.IsValid() {
		return "", fmt.Errorf("unknown comparison operator: %q", n.Operator)
	}

	left, err := r.renderNode(n.Left, ctx)
	if err != nil {
		return "", err
	}
	if _, ok := n.Left.(types.Binary); ok {
		left = "(" + left + ")"
	}
	right, err := r.renderNode(n.Right, ctx)
	if err != nil {
		return "", err
	}
	if _, ok := n.Right.(types.Binary); ok {
		right = "(" + right + ")"
	}
	return fmt.Sprintf("%s %s %s", left, n.Operator, right), nil
}

// isPlaceholder reports whether a node renders as a bare parameter placeholder.
func isPlaceholder(node types.Node) bool {
	switch node.(type) {
	case types.Param, types.Value:
		return true
	}
	return false
}

// castPlaceholder types a placeholder with CAST rather than ::, which sqlx treats as
// a named parameter marker.
func castPlaceholder(placeholder string, t types.SQLType) string {
	return "CAST(" + placeholder + " AS " + string(t) + ")"
}

func (r *Renderer) checkFeature(feature string, word, strict bool) error {
	switch {
	case strict && !r.caps.StrictWordSimilarity:
		return render.NewUnsupportedFeatureError(r.dialectName(), feature, "requires PostgreSQL 11 (pg_trgm 1.4)")
	case word && !r.caps.WordSimilarity:
		return render.NewUnsupportedFeatureError(r.dialectName(), feature, "requires PostgreSQL 9.6 (pg_trgm 1.2)")
	}
	return nil
}

func (r *Renderer) dialectName() string {
	if r.version == 0 {
		return dialect
	}
	return dialect + " " + strconv.Itoa(r.version)
}

// quoteIdentifier quotes a PostgreSQL identifier to handle reserved words and special characters.
func (r *Renderer) quoteIdentifier(name string) string {
	// Identifiers are quoted with double quotes; embedded quotes are doubled
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

func (r *Renderer) renderColumn(col types.Column) string {
	quotedName := r.quoteIdentifier(col.GetName())
	if table := col.GetTable(); table != "" {
		// Table prefixes are validated identifiers and stay unquoted
		return fmt.Sprintf("%s.%s", table, quotedName)
	}
	return quotedName
}

func (r *Renderer) renderOperator(op types.Operator) string {
	switch op {
	case types.Similar:
		return "%"
	case types.WordSimilarLeft:
		return "<%"
	case types.WordSimilarRight:
		return "%>"
	case types.StrictWordSimilarLeft:
		return "<<%"
	case types.StrictWordSimilarRight:
		return "%>>"
	case types.Distance:
		return "<->"
	case types.WordDistanceLeft:
		return "<<->"
	case types.WordDistanceRight:
		return "<->>"
	case types.StrictWordDistanceLeft:
		return "<<<->"
	case types.StrictWordDistanceRight:
		return "<->>>"
	default:
		return string(op)
	}
}

// Capabilities returns the pg_trgm features this renderer will emit.
func (r *Renderer) Capabilities() render.Capabilities {
	return r.caps
}
