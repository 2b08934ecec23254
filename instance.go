package pgtrgm

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
)

// Schema validates column references against a DBML schema.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> field -> column
}

// NewFromDBML creates a Schema from a DBML project.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.fields[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// lookup finds table.column and checks its declared type with accept.
func (s *Schema) lookup(table, column, want string, accept func(string) bool) (*dbml.Column, error) {
	if _, ok := s.tables[table]; !ok {
		return nil, fmt.Errorf("table '%s' not found in schema", table)
	}
	col, ok := s.fields[table][column]
	if !ok {
		return nil, fmt.Errorf("field '%s' not found in table '%s'", column, table)
	}
	if !accept(col.Type) {
		return nil, fmt.Errorf("field '%s.%s' has type %s, pg_trgm requires %s", table, column, col.Type, want)
	}
	return col, nil
}

func qualifier(table string, alias []string) (string, error) {
	if len(alias) == 0 {
		return "", nil
	}
	if len(alias) > 1 {
		return "", fmt.Errorf("only one alias allowed")
	}
	if alias[0] == table {
		return table, nil
	}
	if !isValidTableAlias(alias[0]) {
		return "", fmt.Errorf("alias must be single lowercase letter (a-z), got: %s", alias[0])
	}
	return alias[0], nil
}

func (s *Schema) tryColumn(table, column, want string, accept func(string) bool, notNull bool, alias []string) (string, error) {
	col, err := s.lookup(table, column, want, accept)
	if err != nil {
		return "", fmt.Errorf("invalid column: %w", err)
	}
	if notNull && isNullable(col) {
		return "", fmt.Errorf("invalid column: field '%s.%s' is nullable, use NullableText", table, column)
	}
	q, err := qualifier(table, alias)
	if err != nil {
		return "", fmt.Errorf("invalid column: %w", err)
	}
	if q == "" {
		return column, nil
	}
	return q + "." + column, nil
}

// TryText references a NOT NULL text-like column, returning an error if the column
// is missing, not text-like or declared null. An optional table name or
// single-letter alias qualifies the column.
func (s *Schema) TryText(table, column string, alias ...string) (TextExpr[Text], error) {
	name, err := s.tryColumn(table, column, "a text column", isTextType, true, alias)
	if err != nil {
		return TextExpr[Text]{}, err
	}
	return TryCol(name)
}

// Text references a NOT NULL text-like column.
func (s *Schema) Text(table, column string, alias ...string) TextExpr[Text] {
	e, err := s.TryText(table, column, alias...)
	if err != nil {
		panic(err)
	}
	return e
}

// TryNullableText references a text-like column that may be NULL, returning an
// error if the column is missing or not text-like. NOT NULL columns are accepted.
func (s *Schema) TryNullableText(table, column string, alias ...string) (TextExpr[NullableText], error) {
	name, err := s.tryColumn(table, column, "a text column", isTextType, false, alias)
	if err != nil {
		return TextExpr[NullableText]{}, err
	}
	return TryNullableCol(name)
}

// NullableText references a nullable text-like column.
func (s *Schema) NullableText(table, column string, alias ...string) TextExpr[NullableText] {
	e, err := s.TryNullableText(table, column, alias...)
	if err != nil {
		panic(err)
	}
	return e
}

// TryTextArray references a text[] column, returning an error if the column is
// missing or not a text array.
func (s *Schema) TryTextArray(table, column string, alias ...string) (TextArrayExpr, error) {
	name, err := s.tryColumn(table, column, "a text[] column", isTextArrayType, false, alias)
	if err != nil {
		return TextArrayExpr{}, err
	}
	return TryArrayCol(name)
}

// TextArray references a text[] column.
func (s *Schema) TextArray(table, column string, alias ...string) TextArrayExpr {
	e, err := s.TryTextArray(table, column, alias...)
	if err != nil {
		panic(err)
	}
	return e
}

// textTypes are the column types pg_trgm's gin_trgm_ops and gist_trgm_ops accept,
// directly or through an implicit cast to text.
var textTypes = map[string]bool{
	"text":              true,
	"varchar":           true,
	"character varying": true,
	"char":              true,
	"character":         true,
	"bpchar":            true,
	"citext":            true,
	"name":              true,
}

func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	// varchar(255), character varying(40)
	if i := strings.IndexByte(t, '('); i != -1 {
		if j := strings.IndexByte(t[i:], ')'); j != -1 {
			t = strings.TrimSpace(t[:i]) + t[i+j+1:]
		}
	}
	return t
}

func isNullable(col *dbml.Column) bool {
	return col.Settings != nil && col.Settings.Null
}

func isTextType(t string) bool {
	return textTypes[normalizeType(t)]
}

func isTextArrayType(t string) bool {
	t = normalizeType(t)
	if t == "_text" || t == "_varchar" {
		return true
	}
	if base, ok := strings.CutSuffix(t, "[]"); ok {
		return textTypes[strings.TrimSpace(base)]
	}
	return false
}
