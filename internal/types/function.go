package types

// SQLType represents the PostgreSQL type of an expression.
type SQLType string

const (
	Bool      SQLType = "boolean"
	Float     SQLType = "real"
	Text      SQLType = "text"
	TextArray SQLType = "text[]"
)

// Function represents a SQL function name.
type Function string

const (
	FnSimilarity           Function = "similarity"
	FnWordSimilarity       Function = "word_similarity"
	FnStrictWordSimilarity Function = "strict_word_similarity"
	FnShowTrgm             Function = "show_trgm"
	FnShowLimit            Function = "show_limit"
	FnSetLimit             Function = "set_limit"
	FnArrayToString        Function = "array_to_string"
)

// FunctionInfo describes a SQL function and its signature.
type FunctionInfo struct {
	Function   Function
	Args       []SQLType
	Result     SQLType
	Deprecated bool // superseded by a pg_trgm GUC
}

var functions = []FunctionInfo{
	{Function: FnSimilarity, Args: []SQLType{Text, Text}, Result: Float},
	{Function: FnWordSimilarity, Args: []SQLType{Text, Text}, Result: Float},
	{Function: FnStrictWordSimilarity, Args: []SQLType{Text, Text}, Result: Float},
	{Function: FnShowTrgm, Args: []SQLType{Text}, Result: TextArray},
	{Function: FnShowLimit, Args: nil, Result: Float, Deprecated: true},
	{Function: FnSetLimit, Args: []SQLType{Float}, Result: Float, Deprecated: true},
	// array_to_string is a PostgreSQL built-in, used for array comparisons.
	{Function: FnArrayToString, Args: []SQLType{TextArray, Text}, Result: Text},
}

// Functions returns a copy of the function catalog.
func Functions() []FunctionInfo {
	out := make([]FunctionInfo, len(functions))
	for i, fn := range functions {
		out[i] = fn
		out[i].Args = append([]SQLType(nil), fn.Args...)
	}
	return out
}

// LookupFunction returns the descriptor for a function name.
func LookupFunction(fn Function) (FunctionInfo, bool) {
	for _, info := range functions {
		if info.Function == fn {
			return info, true
		}
	}
	return FunctionInfo{}, false
}
