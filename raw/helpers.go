package raw

import (
	"fmt"
	"strings"

	"github.com/martsokha/pgtrgm/internal/types"
)

// SimilarityFilter returns "column % param".
func SimilarityFilter(column, param string) string {
	return column + Similar + param
}

// WordSimilarityFilter returns "column %> param": column has a word extent similar to param.
func WordSimilarityFilter(column, param string) string {
	return column + WordSimilarRight + param
}

// StrictWordSimilarityFilter returns "column %>> param".
func StrictWordSimilarityFilter(column, param string) string {
	return column + StrictWordSimilarRight + param
}

// WordSimilarityLeftFilter returns "param <% column", the commutated form of
// WordSimilarityFilter.
func WordSimilarityLeftFilter(param, column string) string {
	return param + WordSimilarLeft + column
}

// StrictWordSimilarityLeftFilter returns "param <<% column".
func StrictWordSimilarityLeftFilter(param, column string) string {
	return param + StrictWordSimilarLeft + column
}

// DistanceOrder returns "column <-> param" for ORDER BY, nearest first when ascending.
func DistanceOrder(column, param string) string {
	return column + Distance + param
}

// WordDistanceOrder returns "column <->> param".
func WordDistanceOrder(column, param string) string {
	return column + WordDistanceRight + param
}

// StrictWordDistanceOrder returns "column <->>> param".
func StrictWordDistanceOrder(column, param string) string {
	return column + StrictWordDistanceRight + param
}

// WordDistanceLeftOrder returns "param <<-> column".
func WordDistanceLeftOrder(param, column string) string {
	return param + WordDistanceLeft + column
}

// StrictWordDistanceLeftOrder returns "param <<<-> column".
func StrictWordDistanceLeftOrder(param, column string) string {
	return param + StrictWordDistanceLeft + column
}

// SimilarityArrayFilter returns "column % array_to_string(array, ' ')".
// A bound array needs an explicit type, as in "CAST($1 AS text[])".
func SimilarityArrayFilter(column, array string) string {
	return SimilarityFilter(column, ArrayToStringFn(array, ArrayDelimiter))
}

// DistanceArrayOrder returns "column <-> array_to_string(array, ' ')".
func DistanceArrayOrder(column, array string) string {
	return DistanceOrder(column, ArrayToStringFn(array, ArrayDelimiter))
}

func fn(name types.Function, args ...string) string {
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

// SimilarityFn returns "similarity(a, b)".
func SimilarityFn(a, b string) string {
	return fn(types.FnSimilarity, a, b)
}

// WordSimilarityFn returns "word_similarity(a, b)".
func WordSimilarityFn(a, b string) string {
	return fn(types.FnWordSimilarity, a, b)
}

// StrictWordSimilarityFn returns "strict_word_similarity(a, b)".
func StrictWordSimilarityFn(a, b string) string {
	return fn(types.FnStrictWordSimilarity, a, b)
}

// ShowTrgmFn returns "show_trgm(text)".
func ShowTrgmFn(text string) string {
	return fn(types.FnShowTrgm, text)
}

// ShowLimitFn returns "show_limit()".
//
// Deprecated: use ShowSimilarityThresholdSQL.
func ShowLimitFn() string {
	return fn(types.FnShowLimit)
}

// SetLimitFn returns "set_limit(threshold)".
//
// Deprecated: use SetSimilarityThresholdSQL.
func SetLimitFn(threshold string) string {
	return fn(types.FnSetLimit, threshold)
}

// ArrayToStringFn returns "array_to_string(array, delimiter)".
func ArrayToStringFn(array, delimiter string) string {
	return fn(types.FnArrayToString, array, delimiter)
}
