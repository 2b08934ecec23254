// Package raw provides pg_trgm operators and functions as plain SQL text for
// hand-written queries.
//
// Helpers substitute their arguments verbatim. Nothing is quoted or escaped, so
// pass trusted identifiers and placeholders such as "$1" or ":q", never user input.
//
//	query := "SELECT id FROM users WHERE " + raw.SimilarityFilter("name", "$1") +
//		" ORDER BY " + raw.DistanceOrder("name", "$1") + " LIMIT 10"
package raw

import "github.com/martsokha/pgtrgm/internal/types"

// Operator tokens with surrounding spaces, ready to place between two operands.
const (
	// Similar is true when similarity exceeds pg_trgm.similarity_threshold.
	Similar = " " + string(types.Similar) + " "
	// WordSimilarLeft is the commutator of WordSimilarRight.
	WordSimilarLeft = " " + string(types.WordSimilarLeft) + " "
	// WordSimilarRight is true when word_similarity exceeds pg_trgm.word_similarity_threshold.
	WordSimilarRight = " " + string(types.WordSimilarRight) + " "
	// StrictWordSimilarLeft is the commutator of StrictWordSimilarRight.
	StrictWordSimilarLeft = " " + string(types.StrictWordSimilarLeft) + " "
	// StrictWordSimilarRight is true when strict_word_similarity exceeds
	// pg_trgm.strict_word_similarity_threshold.
	StrictWordSimilarRight = " " + string(types.StrictWordSimilarRight) + " "

	// Distance returns one minus similarity.
	Distance = " " + string(types.Distance) + " "
	// WordDistanceLeft returns one minus word_similarity(left, right).
	WordDistanceLeft = " " + string(types.WordDistanceLeft) + " "
	// WordDistanceRight returns one minus word_similarity(right, left).
	WordDistanceRight = " " + string(types.WordDistanceRight) + " "
	// StrictWordDistanceLeft returns one minus strict_word_similarity(left, right).
	StrictWordDistanceLeft = " " + string(types.StrictWordDistanceLeft) + " "
	// StrictWordDistanceRight returns one minus strict_word_similarity(right, left).
	StrictWordDistanceRight = " " + string(types.StrictWordDistanceRight) + " "
)

// ArrayDelimiter is the SQL literal used to join text[] values before comparison.
const ArrayDelimiter = "' '"
