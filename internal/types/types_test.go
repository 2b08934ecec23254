package types

import (
	"errors"
	"strings"
	"testing"
)

// =============================================================================
// Column Tests
// =============================================================================

func TestColumn_GetName(t *testing.T) {
	c := Column{Name: "name", Table: "users"}
	if got := c.GetName(); got != "name" {
		t.Errorf("GetName() = %q, want %q", got, "name")
	}
}

func TestColumn_GetTable(t *testing.T) {
	c := Column{Name: "name", Table: "users"}
	if got := c.GetTable(); got != "users" {
		t.Errorf("GetTable() = %q, want %q", got, "users")
	}
}

func TestColumn_WithTable(t *testing.T) {
	SetTableValidator(nil)

	c := Column{Name: "name"}
	result := c.WithTable("u")

	if result.Table != "u" {
		t.Errorf("WithTable().Table = %q, want %q", result.Table, "u")
	}
	if c.Table != "" {
		t.Errorf("Original column modified: Table = %q, want empty", c.Table)
	}
}

func TestColumn_WithTable_InvalidValidator_Panics(t *testing.T) {
	SetTableValidator(func(s string) error {
		return errors.New("invalid table: " + s)
	})
	defer SetTableValidator(nil)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when validator fails")
		}
	}()

	Column{Name: "id"}.WithTable("bad table")
}

// =============================================================================
// Operator Catalog Tests
// =============================================================================

func TestOperators_Count(t *testing.T) {
	if got := len(Operators()); got != 10 {
		t.Fatalf("len(Operators()) = %d, want 10", got)
	}
}

func TestOperators_Distinct(t *testing.T) {
	seen := make(map[Operator]bool)
	names := make(map[string]bool)
	for _, info := range Operators() {
		if seen[info.Operator] {
			t.Errorf("duplicate operator token %q", info.Operator)
		}
		if names[info.Name] {
			t.Errorf("duplicate operator name %q", info.Name)
		}
		seen[info.Operator] = true
		names[info.Name] = true
	}
}

func TestOperators_Tokens(t *testing.T) {
	want := map[string]Operator{
		"similar_to":                "%",
		"word_similar":              "<%",
		"word_similar_to":           "%>",
		"strict_word_similar":       "<<%",
		"strict_word_similar_to":    "%>>",
		"distance":                  "<->",
		"word_distance_left":        "<<->",
		"word_distance":             "<->>",
		"strict_word_distance_left": "<<<->",
		"strict_word_distance":      "<->>>",
	}
	for _, info := range Operators() {
		if want[info.Name] != info.Operator {
			t.Errorf("%s: token = %q, want %q", info.Name, info.Operator, want[info.Name])
		}
	}
}

func TestOperators_ResultTypes(t *testing.T) {
	for _, info := range Operators() {
		isDistance := strings.Contains(string(info.Operator), "->")
		if info.Distance != isDistance {
			t.Errorf("%s: Distance = %v, want %v", info.Operator, info.Distance, isDistance)
		}
		want := Bool
		if isDistance {
			want = Float
		}
		if info.Result != want {
			t.Errorf("%s: Result = %s, want %s", info.Operator, info.Result, want)
		}
	}
}

func TestOperators_Commutators(t *testing.T) {
	for _, info := range Operators() {
		other, ok := LookupOperator(info.Commutator)
		if !ok {
			t.Errorf("%s: commutator %q not in catalog", info.Operator, info.Commutator)
			continue
		}
		if other.Commutator != info.Operator {
			t.Errorf("%s: commutator of commutator = %q", info.Operator, other.Commutator)
		}
		if other.Word != info.Word || other.Strict != info.Strict || other.Distance != info.Distance {
			t.Errorf("%s and %s disagree on semantics", info.Operator, other.Operator)
		}
	}
}

func TestOperators_ReturnsCopy(t *testing.T) {
	ops := Operators()
	ops[0].Operator = "="
	if info, _ := LookupOperator(Similar); info.Name != "similar_to" {
		t.Error("mutating Operators() result changed the catalog")
	}
}

func TestLookupOperator_Unknown(t *testing.T) {
	if _, ok := LookupOperator("<#>"); ok {
		t.Error("expected unknown operator")
	}
}

func TestCompareOperator_IsValid(t *testing.T) {
	for _, op := range []CompareOperator{LT, LE, GT, GE} {
		if !op.IsValid() {
			t.Errorf("%s should be valid", op)
		}
	}
	if CompareOperator("=").IsValid() {
		t.Error("= should not be valid")
	}
}

// =============================================================================
// Function Catalog Tests
// =============================================================================

func TestFunctions_Signatures(t *testing.T) {
	tests := []struct {
		fn     Function
		args   int
		result SQLType
	}{
		{FnSimilarity, 2, Float},
		{FnWordSimilarity, 2, Float},
		{FnStrictWordSimilarity, 2, Float},
		{FnShowTrgm, 1, TextArray},
		{FnShowLimit, 0, Float},
		{FnSetLimit, 1, Float},
		{FnArrayToString, 2, Text},
	}

	if got := len(Functions()); got != len(tests) {
		t.Fatalf("len(Functions()) = %d, want %d", got, len(tests))
	}

	for _, tt := range tests {
		t.Run(string(tt.fn), func(t *testing.T) {
			info, ok := LookupFunction(tt.fn)
			if !ok {
				t.Fatalf("%s not in catalog", tt.fn)
			}
			if len(info.Args) != tt.args {
				t.Errorf("args = %d, want %d", len(info.Args), tt.args)
			}
			if info.Result != tt.result {
				t.Errorf("result = %s, want %s", info.Result, tt.result)
			}
		})
	}
}

func TestFunctions_ReturnsCopy(t *testing.T) {
	fns := Functions()
	fns[0].Args[0] = Bool
	if info, _ := LookupFunction(FnSimilarity); info.Args[0] != Text {
		t.Error("mutating Functions() result changed the catalog")
	}
}

// =============================================================================
// QueryResult Tests
// =============================================================================

func TestQueryResult_Args(t *testing.T) {
	r := &QueryResult{
		RequiredParams: []string{"q", "trgm_1"},
		Values:         map[string]any{"trgm_1": " "},
	}

	args, err := r.Args(map[string]any{"q": "john"})
	if err != nil {
		t.Fatalf("Args() error = %v", err)
	}
	if len(args) != 2 || args[0] != "john" || args[1] != " " {
		t.Errorf("Args() = %v, want [john  ]", args)
	}
}

func TestQueryResult_MissingParam(t *testing.T) {
	r := &QueryResult{RequiredParams: []string{"q", "min"}}

	_, err := r.NamedArgs(map[string]any{"q": "john"})
	if err == nil {
		t.Fatal("expected error for missing parameter")
	}
	if !strings.Contains(err.Error(), "min") {
		t.Errorf("error %q should name the missing parameter", err)
	}
}

func TestQueryResult_BoundValuesWin(t *testing.T) {
	r := &QueryResult{
		RequiredParams: []string{"trgm_1"},
		Values:         map[string]any{"trgm_1": "bound"},
	}

	named, err := r.NamedArgs(map[string]any{"trgm_1": "caller"})
	if err != nil {
		t.Fatalf("NamedArgs() error = %v", err)
	}
	if named["trgm_1"] != "bound" {
		t.Errorf("trgm_1 = %v, want bound", named["trgm_1"])
	}
}
