package pgtrgm

import (
	"fmt"
	"strings"

	"github.com/martsokha/pgtrgm/internal/types"
)

// reservedParamPrefix is used by renderers for bound literals.
const reservedParamPrefix = "trgm_"

// Param represents a named parameter supplied at execution time.
// A Param can stand in for text, text[] and real operands.
type Param struct {
	Name string
}

// TryP creates a validated parameter reference, returning an error if invalid.
func TryP(name string) (Param, error) {
	if !isValidParamName(name) {
		return Param{}, fmt.Errorf("invalid parameter name '%s': must be alphanumeric with underscores, starting with letter", name)
	}
	if strings.HasPrefix(strings.ToLower(name), reservedParamPrefix) {
		return Param{}, fmt.Errorf("invalid parameter name '%s': prefix %q is reserved for bound values", name, reservedParamPrefix)
	}
	return Param{Name: name}, nil
}

// P creates a validated parameter reference.
// This is the primary way to reference user values in expressions.
func P(name string) Param {
	p, err := TryP(name)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Param) node() types.Node {
	return types.Param{Name: p.Name}
}

func (p Param) textNode() (types.Node, bool)  { return p.node(), false }
func (p Param) arrayNode() (types.Node, bool) { return p.node(), false }
func (p Param) floatNode() (types.Node, bool) { return p.node(), false }

// StringValue is a text literal bound as a parameter.
type StringValue struct {
	value string
}

// String binds a text literal.
func String(s string) StringValue {
	return StringValue{value: s}
}

func (v StringValue) node() types.Node             { return types.Value{Value: v.value} }
func (v StringValue) textNode() (types.Node, bool) { return v.node(), false }

// StringsValue is a text[] literal bound as a parameter.
type StringsValue struct {
	values []string
}

// Strings binds a text[] literal. The slice is copied.
func Strings(values []string) StringsValue {
	return StringsValue{values: append([]string(nil), values...)}
}

func (v StringsValue) node() types.Node              { return types.Value{Value: v.values} }
func (v StringsValue) arrayNode() (types.Node, bool) { return v.node(), false }

// FloatValue is a real literal bound as a parameter.
type FloatValue struct {
	value float64
}

// Float binds a real literal, such as a similarity threshold.
func Float(f float64) FloatValue {
	return FloatValue{value: f}
}

func (v FloatValue) node() types.Node              { return types.Value{Value: v.value} }
func (v FloatValue) floatNode() (types.Node, bool) { return v.node(), false }

// Only allows alphanumeric characters and underscores, must start with letter.
func isValidParamName(name string) bool {
	if name == "" {
		return false
	}

	// Must start with letter (not underscore for params)
	first := name[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z')) {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(name); i++ {
		ch := name[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Reject SQL keywords that could be confusing
	lower := strings.ToLower(name)
	sqlKeywords := []string{
		"select", "insert", "update", "delete", "drop",
		"create", "alter", "table", "from", "where",
		"and", "or", "not", "null", "true", "false",
		"union", "join", "having", "group", "order",
	}
	for _, keyword := range sqlKeywords {
		if lower == keyword {
			return false
		}
	}

	return true
}
