package pgtrgm

import (
	"fmt"
	"strings"

	"github.com/martsokha/pgtrgm/internal/types"
)

// TryCol creates a NOT NULL text column reference, returning an error if invalid.
func TryCol(name string) (TextExpr[Text], error) {
	col, err := tryColumn(name)
	if err != nil {
		return TextExpr[Text]{}, err
	}
	return newText[Text](col, false), nil
}

// Col creates a NOT NULL text column reference.
func Col(name string) TextExpr[Text] {
	e, err := TryCol(name)
	if err != nil {
		panic(err)
	}
	return e
}

// TryNullableCol creates a nullable text column reference, returning an error if invalid.
func TryNullableCol(name string) (TextExpr[NullableText], error) {
	col, err := tryColumn(name)
	if err != nil {
		return TextExpr[NullableText]{}, err
	}
	return newText[NullableText](col, true), nil
}

// NullableCol creates a nullable text column reference.
func NullableCol(name string) TextExpr[NullableText] {
	e, err := TryNullableCol(name)
	if err != nil {
		panic(err)
	}
	return e
}

// TryArrayCol creates a text[] column reference, returning an error if invalid.
func TryArrayCol(name string) (TextArrayExpr, error) {
	col, err := tryColumn(name)
	if err != nil {
		return TextArrayExpr{}, err
	}
	return TextArrayExpr{n: col}, nil
}

// ArrayCol creates a text[] column reference.
func ArrayCol(name string) TextArrayExpr {
	e, err := TryArrayCol(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Column names may carry a "t.name" qualifier.
func tryColumn(name string) (types.Column, error) {
	table, column := "", name
	if dot := strings.LastIndexByte(name, '.'); dot != -1 {
		table, column = name[:dot], name[dot+1:]
		if err := validateTableOrAlias(table); err != nil {
			return types.Column{}, fmt.Errorf("invalid column: %w", err)
		}
	}
	if !isValidSQLIdentifier(column) {
		return types.Column{}, fmt.Errorf("invalid column: '%s' is not a valid identifier", name)
	}
	return types.Column{Name: column, Table: table}, nil
}

// validateTableOrAlias validates both table names and aliases.
// This is used as the validator callback for types.Column.WithTable.
func validateTableOrAlias(tableOrAlias string) error {
	if isValidTableAlias(tableOrAlias) || isValidSQLIdentifier(tableOrAlias) {
		return nil
	}
	return fmt.Errorf("WithTable requires single-letter alias (a-z) or valid table name, got: %s", tableOrAlias)
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}

// Only allows alphanumeric characters and underscores, must start with letter or underscore.
func isValidSQLIdentifier(s string) bool {
	if s == "" || len(s) > maxIdentifierLength {
		return false
	}

	// Must start with letter or underscore
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	return true
}

// maxIdentifierLength is PostgreSQL's NAMEDATALEN - 1.
const maxIdentifierLength = 63

// Set up column validator on init.
func init() {
	types.SetTableValidator(validateTableOrAlias)
}
