package pgtrgm

import "github.com/martsokha/pgtrgm/internal/types"

// ArrayDelimiter is the separator used when comparing against text[] values.
const ArrayDelimiter = " "

func call(fn types.Function, args ...types.Node) types.Call {
	return types.Call{Function: fn, Args: args}
}

func textCall(fn types.Function, a, b TextOperand) FloatExpr {
	an, anull := a.textNode()
	bn, bnull := b.textNode()
	return FloatExpr{n: call(fn, an, bn), nullable: anull || bnull}
}

// Similarity returns how similar a and b are, from 0 (no shared trigrams) to 1
// (identical trigram sets).
func Similarity(a, b TextOperand) FloatExpr {
	return textCall(types.FnSimilarity, a, b)
}

// WordSimilarity returns the greatest similarity between the trigrams of a and any
// continuous extent of the ordered trigrams of b.
func WordSimilarity(a, b TextOperand) FloatExpr {
	return textCall(types.FnWordSimilarity, a, b)
}

// StrictWordSimilarity is WordSimilarity with extent boundaries forced to match word
// boundaries.
func StrictWordSimilarity(a, b TextOperand) FloatExpr {
	return textCall(types.FnStrictWordSimilarity, a, b)
}

// ShowTrgm returns the trigrams of a string. Seldom useful except for debugging.
func ShowTrgm(text TextOperand) TextArrayExpr {
	n, nullable := text.textNode()
	return TextArrayExpr{n: call(types.FnShowTrgm, n), nullable: nullable}
}

// ShowLimit returns the session's similarity threshold.
//
// Deprecated: PostgreSQL recommends SHOW pg_trgm.similarity_threshold; see raw.ShowSimilarityThresholdSQL.
func ShowLimit() FloatExpr {
	return FloatExpr{n: call(types.FnShowLimit)}
}

// SetLimit sets the session's similarity threshold, between 0 and 1 (default 0.3),
// and returns it.
//
// Deprecated: PostgreSQL recommends SET pg_trgm.similarity_threshold; see raw.SetSimilarityThresholdSQL.
func SetLimit(threshold FloatOperand) FloatExpr {
	n, nullable := threshold.floatNode()
	return FloatExpr{n: call(types.FnSetLimit, n), nullable: nullable}
}

// ArrayToString joins array elements with delim using PostgreSQL's array_to_string.
func ArrayToString(arr TextArrayOperand, delim TextOperand) TextExpr[Text] {
	an, anull := arr.arrayNode()
	dn, dnull := delim.textNode()
	return newText[Text](call(types.FnArrayToString, an, dn), anull || dnull)
}

// SimilarToArray reports whether e is similar to the elements of arr joined with
// spaces. It renders exactly as e.SimilarTo(ArrayToString(arr, String(" "))).
func (e TextExpr[K]) SimilarToArray(arr TextArrayOperand) BoolExpr {
	return e.SimilarTo(ArrayToString(arr, String(ArrayDelimiter)))
}

// DistanceToArray returns the trigram distance between e and the elements of arr
// joined with spaces. It renders exactly as e.Distance(ArrayToString(arr, String(" "))).
func (e TextExpr[K]) DistanceToArray(arr TextArrayOperand) FloatExpr {
	return e.Distance(ArrayToString(arr, String(ArrayDelimiter)))
}
