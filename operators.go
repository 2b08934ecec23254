package pgtrgm

import "github.com/martsokha/pgtrgm/internal/types"

func binary(left TextOperand, op types.Operator, right TextOperand) (types.Node, bool) {
	l, ln := left.textNode()
	r, rn := right.textNode()
	return types.Binary{Left: l, Operator: op, Right: r}, ln || rn
}

func predicate(left TextOperand, op types.Operator, right TextOperand) BoolExpr {
	n, nullable := binary(left, op, right)
	return BoolExpr{n: n, nullable: nullable}
}

func distance(left TextOperand, op types.Operator, right TextOperand) FloatExpr {
	n, nullable := binary(left, op, right)
	return FloatExpr{n: n, nullable: nullable}
}

// SimilarTo reports whether e and other have a similarity greater than
// pg_trgm.similarity_threshold.
//
// Uses the % operator:
//
//	pgtrgm.Col("name").SimilarTo(pgtrgm.P("q")) // "name" % :q
func (e TextExpr[K]) SimilarTo(other TextOperand) BoolExpr {
	return predicate(e, types.Similar, other)
}

// WordSimilarTo reports whether e contains a continuous extent similar to other,
// above pg_trgm.word_similarity_threshold. Uses the %> operator.
func (e TextExpr[K]) WordSimilarTo(other TextOperand) BoolExpr {
	return predicate(e, types.WordSimilarRight, other)
}

// StrictWordSimilarTo is WordSimilarTo with extent boundaries forced to word
// boundaries. Uses the %>> operator.
func (e TextExpr[K]) StrictWordSimilarTo(other TextOperand) BoolExpr {
	return predicate(e, types.StrictWordSimilarRight, other)
}

// Distance returns one minus similarity(e, other). Lower is closer, so order
// ascending; a GiST index serves this as a nearest-neighbour scan.
//
// Uses the <-> operator:
//
//	pgtrgm.Col("name").Distance(pgtrgm.P("q")).Asc() // "name" <-> :q ASC
func (e TextExpr[K]) Distance(other TextOperand) FloatExpr {
	return distance(e, types.Distance, other)
}

// WordDistance returns one minus word_similarity(other, e). Uses the <->> operator.
func (e TextExpr[K]) WordDistance(other TextOperand) FloatExpr {
	return distance(e, types.WordDistanceRight, other)
}

// StrictWordDistance returns one minus strict_word_similarity(other, e).
// Uses the <->>> operator.
func (e TextExpr[K]) StrictWordDistance(other TextOperand) FloatExpr {
	return distance(e, types.StrictWordDistanceRight, other)
}

// WordSimilar reports whether right has a word extent similar to left.
// Uses the <% operator, the commutator of WordSimilarTo:
//
//	pgtrgm.WordSimilar(pgtrgm.P("q"), pgtrgm.Col("name")) // :q <% "name"
func WordSimilar(left, right TextOperand) BoolExpr {
	return predicate(left, types.WordSimilarLeft, right)
}

// StrictWordSimilar reports whether right has a word-bounded extent similar to left.
// Uses the <<% operator.
func StrictWordSimilar(left, right TextOperand) BoolExpr {
	return predicate(left, types.StrictWordSimilarLeft, right)
}

// WordDistanceLeft returns one minus word_similarity(left, right).
// Uses the <<-> operator.
func WordDistanceLeft(left, right TextOperand) FloatExpr {
	return distance(left, types.WordDistanceLeft, right)
}

// StrictWordDistanceLeft returns one minus strict_word_similarity(left, right).
// Uses the <<<-> operator.
func StrictWordDistanceLeft(left, right TextOperand) FloatExpr {
	return distance(left, types.StrictWordDistanceLeft, right)
}
