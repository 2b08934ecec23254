package raw

import "strconv"

// Session thresholds. Each SET applies to the current session only.
const (
	SimilarityThreshold           = "pg_trgm.similarity_threshold"
	WordSimilarityThreshold       = "pg_trgm.word_similarity_threshold"
	StrictWordSimilarityThreshold = "pg_trgm.strict_word_similarity_threshold"
)

// Statements reading the current thresholds.
const (
	ShowSimilarityThresholdSQL           = "SHOW " + SimilarityThreshold
	ShowWordSimilarityThresholdSQL       = "SHOW " + WordSimilarityThreshold
	ShowStrictWordSimilarityThresholdSQL = "SHOW " + StrictWordSimilarityThreshold
)

func setSQL(name string, v float64) string {
	return "SET " + name + " = " + strconv.FormatFloat(v, 'g', -1, 64)
}

// SetSimilarityThresholdSQL returns "SET pg_trgm.similarity_threshold = v".
// The server rejects values outside [0, 1]; the default is 0.3.
func SetSimilarityThresholdSQL(v float64) string {
	return setSQL(SimilarityThreshold, v)
}

// SetWordSimilarityThresholdSQL returns "SET pg_trgm.word_similarity_threshold = v".
// The default is 0.6.
func SetWordSimilarityThresholdSQL(v float64) string {
	return setSQL(WordSimilarityThreshold, v)
}

// SetStrictWordSimilarityThresholdSQL returns "SET pg_trgm.strict_word_similarity_threshold = v".
// The default is 0.5.
func SetStrictWordSimilarityThresholdSQL(v float64) string {
	return setSQL(StrictWordSimilarityThreshold, v)
}
