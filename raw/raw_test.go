package raw_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martsokha/pgtrgm"
	"github.com/martsokha/pgtrgm/postgres"
	"github.com/martsokha/pgtrgm/raw"
)

// =============================================================================
// Constants
// =============================================================================

func TestConstants_MatchCatalog(t *testing.T) {
	constants := map[pgtrgm.Operator]string{
		pgtrgm.OpSimilar:                 raw.Similar,
		pgtrgm.OpWordSimilarLeft:         raw.WordSimilarLeft,
		pgtrgm.OpWordSimilarRight:        raw.WordSimilarRight,
		pgtrgm.OpStrictWordSimilarLeft:   raw.StrictWordSimilarLeft,
		pgtrgm.OpStrictWordSimilarRight:  raw.StrictWordSimilarRight,
		pgtrgm.OpDistance:                raw.Distance,
		pgtrgm.OpWordDistanceLeft:        raw.WordDistanceLeft,
		pgtrgm.OpWordDistanceRight:       raw.WordDistanceRight,
		pgtrgm.OpStrictWordDistanceLeft:  raw.StrictWordDistanceLeft,
		pgtrgm.OpStrictWordDistanceRight: raw.StrictWordDistanceRight,
	}
	require.Len(t, constants, len(pgtrgm.Operators()))

	seen := make(map[string]bool)
	for op, c := range constants {
		assert.Equal(t, string(op), strings.TrimSpace(c))
		assert.True(t, strings.HasPrefix(c, " ") && strings.HasSuffix(c, " "), "constant %q needs surrounding spaces", c)
		assert.False(t, seen[c], "duplicate constant %q", c)
		seen[c] = true
	}

	assert.Equal(t, " <-> ", raw.Distance)
	assert.Equal(t, " <<<-> ", raw.StrictWordDistanceLeft)
}

// =============================================================================
// Helpers
// =============================================================================

func TestHelpers(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"similarity filter", raw.SimilarityFilter("name", "$1"), "name % $1"},
		{"word similarity filter", raw.WordSimilarityFilter("name", "$1"), "name %> $1"},
		{"strict word similarity filter", raw.StrictWordSimilarityFilter("name", "$1"), "name %>> $1"},
		{"word similarity left filter", raw.WordSimilarityLeftFilter("$1", "name"), "$1 <% name"},
		{"strict word similarity left filter", raw.StrictWordSimilarityLeftFilter("$1", "name"), "$1 <<% name"},
		{"distance order", raw.DistanceOrder("name", "$1"), "name <-> $1"},
		{"word distance order", raw.WordDistanceOrder("name", "$1"), "name <->> $1"},
		{"strict word distance order", raw.StrictWordDistanceOrder("name", "$1"), "name <->>> $1"},
		{"word distance left order", raw.WordDistanceLeftOrder("$1", "name"), "$1 <<-> name"},
		{"strict word distance left order", raw.StrictWordDistanceLeftOrder("$1", "name"), "$1 <<<-> name"},
		{"similarity fn", raw.SimilarityFn("name", "$1"), "similarity(name, $1)"},
		{"word similarity fn", raw.WordSimilarityFn("$1", "name"), "word_similarity($1, name)"},
		{"strict word similarity fn", raw.StrictWordSimilarityFn("$1", "name"), "strict_word_similarity($1, name)"},
		{"show_trgm fn", raw.ShowTrgmFn("$1"), "show_trgm($1)"},
		{"show_limit fn", raw.ShowLimitFn(), "show_limit()"},
		{"set_limit fn", raw.SetLimitFn("0.4"), "set_limit(0.4)"},
		{"array_to_string fn", raw.ArrayToStringFn("tags", "','"), "array_to_string(tags, ',')"},
		{"similarity array filter", raw.SimilarityArrayFilter("name", "tags"), "name % array_to_string(tags, ' ')"},
		{"distance array order", raw.DistanceArrayOrder("name", "CAST($1 AS text[])"), "name <-> array_to_string(CAST($1 AS text[]), ' ')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestHelpers_NoEscaping(t *testing.T) {
	// Inputs are substituted verbatim
	assert.Equal(t, `"Name" % 'x'`, raw.SimilarityFilter(`"Name"`, "'x'"))
	assert.Equal(t, " % ", raw.SimilarityFilter("", ""))
}

// TestHelpers_MatchRenderer checks the string helpers against the typed renderer
// for the same operands.
func TestHelpers_MatchRenderer(t *testing.T) {
	name := pgtrgm.Col("name")
	q := pgtrgm.P("q")
	const col, ph = `"name"`, "$1"

	tests := []struct {
		name string
		expr pgtrgm.Expression
		raw  string
	}{
		{"%", name.SimilarTo(q), raw.SimilarityFilter(col, ph)},
		{"%>", name.WordSimilarTo(q), raw.WordSimilarityFilter(col, ph)},
		{"%>>", name.StrictWordSimilarTo(q), raw.StrictWordSimilarityFilter(col, ph)},
		{"<%", pgtrgm.WordSimilar(q, name), raw.WordSimilarityLeftFilter(ph, col)},
		{"<<%", pgtrgm.StrictWordSimilar(q, name), raw.StrictWordSimilarityLeftFilter(ph, col)},
		{"<->", name.Distance(q), raw.DistanceOrder(col, ph)},
		{"<->>", name.WordDistance(q), raw.WordDistanceOrder(col, ph)},
		{"<->>>", name.StrictWordDistance(q), raw.StrictWordDistanceOrder(col, ph)},
		{"<<->", pgtrgm.WordDistanceLeft(q, name), raw.WordDistanceLeftOrder(ph, col)},
		{"<<<->", pgtrgm.StrictWordDistanceLeft(q, name), raw.StrictWordDistanceLeftOrder(ph, col)},
		{"similarity", pgtrgm.Similarity(name, q), raw.SimilarityFn(col, ph)},
		{"word_similarity", pgtrgm.WordSimilarity(q, name), raw.WordSimilarityFn(ph, col)},
		{"strict_word_similarity", pgtrgm.StrictWordSimilarity(q, name), raw.StrictWordSimilarityFn(ph, col)},
		{"show_trgm", pgtrgm.ShowTrgm(q), raw.ShowTrgmFn(ph)},
		{"show_limit", pgtrgm.ShowLimit(), raw.ShowLimitFn()},
		{"set_limit", pgtrgm.SetLimit(q), raw.SetLimitFn(ph)},
		{"array_to_string", pgtrgm.ArrayToString(q, pgtrgm.P("sep")), raw.ArrayToStringFn("CAST($1 AS text[])", "$2")},
		{"array column", name.SimilarTo(pgtrgm.ArrayToString(pgtrgm.ArrayCol("tags"), q)), raw.SimilarityFilter(col, raw.ArrayToStringFn(`"tags"`, ph))},
	}

	r := postgres.New(postgres.WithPlaceholder(postgres.Positional))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := pgtrgm.Render(r, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, result.SQL)
		})
	}
}

// =============================================================================
// Index DDL
// =============================================================================

func TestIndexSQL(t *testing.T) {
	assert.Equal(t, "CREATE INDEX idx ON tbl USING gin (col gin_trgm_ops)", raw.GINIndexSQL("idx", "tbl", "col"))
	assert.Equal(t, "CREATE INDEX idx ON tbl USING gist (col gist_trgm_ops)", raw.GiSTIndexSQL("idx", "tbl", "col"))
	assert.Equal(t, raw.GINIndexSQL("a", "b", "c"), raw.IndexSQL(raw.GIN, "a", "b", "c"))
	assert.Empty(t, raw.IndexSQL("brin", "a", "b", "c"))
}

func TestIndexTemplates(t *testing.T) {
	for _, m := range []raw.Method{raw.GIN, raw.GiST} {
		tmpl := m.Template()
		for _, placeholder := range []string{"{index_name}", "{table}", "{column}"} {
			assert.Contains(t, tmpl, placeholder)
		}
		assert.Contains(t, tmpl, "USING "+string(m)+" ")
		assert.Contains(t, tmpl, string(m)+"_trgm_ops")
	}
	assert.Equal(t, "CREATE EXTENSION IF NOT EXISTS pg_trgm", raw.CreateExtensionSQL)
}

// =============================================================================
// Thresholds
// =============================================================================

func TestThresholdSQL(t *testing.T) {
	assert.Equal(t, "SET pg_trgm.similarity_threshold = 0.4", raw.SetSimilarityThresholdSQL(0.4))
	assert.Equal(t, "SET pg_trgm.word_similarity_threshold = 0.55", raw.SetWordSimilarityThresholdSQL(0.55))
	assert.Equal(t, "SET pg_trgm.strict_word_similarity_threshold = 1", raw.SetStrictWordSimilarityThresholdSQL(1))
	assert.Equal(t, "SHOW pg_trgm.similarity_threshold", raw.ShowSimilarityThresholdSQL)
	assert.Equal(t, "SHOW pg_trgm.word_similarity_threshold", raw.ShowWordSimilarityThresholdSQL)
	assert.Equal(t, "SHOW pg_trgm.strict_word_similarity_threshold", raw.ShowStrictWordSimilarityThresholdSQL)
}

// =============================================================================
// Golden
// =============================================================================

func TestGolden_SearchQueries(t *testing.T) {
	queries := []string{
		"SELECT id, " + raw.SimilarityFn("name", "$1") + " AS score FROM products WHERE " +
			raw.SimilarityFilter("name", "$1") + " ORDER BY " + raw.DistanceOrder("name", "$1") + " LIMIT 10",
		"SELECT id FROM articles WHERE " + raw.WordSimilarityLeftFilter("$1", "body") +
			" ORDER BY " + raw.WordDistanceLeftOrder("$1", "body"),
		"SELECT id FROM articles WHERE " + raw.StrictWordSimilarityLeftFilter("$1", "title") +
			" ORDER BY " + raw.StrictWordDistanceLeftOrder("$1", "title"),
		"SELECT id FROM products WHERE " + raw.SimilarityArrayFilter("$1", "tags"),
		"SELECT " + raw.ShowTrgmFn("'word'"),
		raw.SetSimilarityThresholdSQL(0.45),
		raw.CreateExtensionSQL,
		raw.GINIndexSQL("products_name_trgm_idx", "products", "name"),
		raw.GiSTIndexSQL("articles_title_trgm_idx", "articles", "title"),
	}

	g := goldie.New(t)
	g.Assert(t, "search_queries", []byte(strings.Join(queries, ";\n")+";\n"))
}
