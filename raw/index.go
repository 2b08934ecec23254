package raw

import "strings"

// Index DDL templates. Substitute {index_name}, {table} and {column}.
const (
	GINIndexTemplate  = "CREATE INDEX {index_name} ON {table} USING gin ({column} gin_trgm_ops)"
	GiSTIndexTemplate = "CREATE INDEX {index_name} ON {table} USING gist ({column} gist_trgm_ops)"
)

// CreateExtensionSQL installs pg_trgm. Run it before creating trigram indexes.
const CreateExtensionSQL = "CREATE EXTENSION IF NOT EXISTS pg_trgm"

// Method is a trigram index access method.
type Method string

const (
	// GIN is faster to search and slower to update. It serves %, %> and LIKE/ILIKE.
	GIN Method = "gin"
	// GiST additionally serves <-> nearest-neighbour ordering.
	GiST Method = "gist"
)

// Template returns the DDL template for the method, or "" if unknown.
func (m Method) Template() string {
	switch m {
	case GIN:
		return GINIndexTemplate
	case GiST:
		return GiSTIndexTemplate
	default:
		return ""
	}
}

// IndexSQL fills the method's template. Unknown methods yield "".
func IndexSQL(m Method, indexName, table, column string) string {
	tmpl := m.Template()
	if tmpl == "" {
		return ""
	}
	return strings.NewReplacer(
		"{index_name}", indexName,
		"{table}", table,
		"{column}", column,
	).Replace(tmpl)
}

// GINIndexSQL returns "CREATE INDEX index_name ON table USING gin (column gin_trgm_ops)".
func GINIndexSQL(indexName, table, column string) string {
	return IndexSQL(GIN, indexName, table, column)
}

// GiSTIndexSQL returns "CREATE INDEX index_name ON table USING gist (column gist_trgm_ops)".
func GiSTIndexSQL(indexName, table, column string) string {
	return IndexSQL(GiST, indexName, table, column)
}
