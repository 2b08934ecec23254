package types

// Operator represents a pg_trgm infix operator token.
type Operator string

const (
	// Similarity predicates.
	Similar                Operator = "%"
	WordSimilarLeft        Operator = "<%"
	WordSimilarRight       Operator = "%>"
	StrictWordSimilarLeft  Operator = "<<%"
	StrictWordSimilarRight Operator = "%>>"

	// Distance operators.
	Distance                Operator = "<->"
	WordDistanceLeft        Operator = "<<->"
	WordDistanceRight       Operator = "<->>"
	StrictWordDistanceLeft  Operator = "<<<->"
	StrictWordDistanceRight Operator = "<->>>"
)

// CompareOperator represents a float comparison applied to a similarity or distance score.
type CompareOperator string

const (
	LT CompareOperator = "<"
	LE CompareOperator = "<="
	GT CompareOperator = ">"
	GE CompareOperator = ">="
)

// OperatorInfo describes a single pg_trgm operator.
type OperatorInfo struct {
	Operator   Operator
	Name       string
	Commutator Operator
	Result     SQLType
	Word       bool // compares against word extents rather than the whole string
	Strict     bool // extents must match word boundaries
	Distance   bool // returns 1 - similarity instead of a threshold test
}

// operators is the fixed operator catalog, in documentation order.
var operators = []OperatorInfo{
	{Operator: Similar, Name: "similar_to", Commutator: Similar, Result: Bool},
	{Operator: WordSimilarLeft, Name: "word_similar", Commutator: WordSimilarRight, Result: Bool, Word: true},
	{Operator: WordSimilarRight, Name: "word_similar_to", Commutator: WordSimilarLeft, Result: Bool, Word: true},
	{Operator: StrictWordSimilarLeft, Name: "strict_word_similar", Commutator: StrictWordSimilarRight, Result: Bool, Word: true, Strict: true},
	{Operator: StrictWordSimilarRight, Name: "strict_word_similar_to", Commutator: StrictWordSimilarLeft, Result: Bool, Word: true, Strict: true},
	{Operator: Distance, Name: "distance", Commutator: Distance, Result: Float, Distance: true},
	{Operator: WordDistanceLeft, Name: "word_distance_left", Commutator: WordDistanceRight, Result: Float, Word: true, Distance: true},
	{Operator: WordDistanceRight, Name: "word_distance", Commutator: WordDistanceLeft, Result: Float, Word: true, Distance: true},
	{Operator: StrictWordDistanceLeft, Name: "strict_word_distance_left", Commutator: StrictWordDistanceRight, Result: Float, Word: true, Strict: true, Distance: true},
	{Operator: StrictWordDistanceRight, Name: "strict_word_distance", Commutator: StrictWordDistanceLeft, Result: Float, Word: true, Strict: true, Distance: true},
}

// Operators returns a copy of the operator catalog.
func Operators() []OperatorInfo {
	out := make([]OperatorInfo, len(operators))
	copy(out, operators)
	return out
}

// LookupOperator returns the descriptor for an operator token.
func LookupOperator(op Operator) (OperatorInfo, bool) {
	for _, info := range operators {
		if info.Operator == op {
			return info, true
		}
	}
	return OperatorInfo{}, false
}

// IsValid reports whether the comparison operator is one of the supported forms.
func (op CompareOperator) IsValid() bool {
	switch op {
	case LT, LE, GT, GE:
		return true
	default:
		return false
	}
}
