// Package testing provides test utilities for pgtrgm.
package testing

import (
	"strings"
	"testing"

	"github.com/martsokha/pgtrgm"
	"github.com/zoobzio/dbml"
)

// TestSchema creates a Schema for testing.
// Includes users, products and articles tables with text, varchar, citext and
// text[] columns, plus non-text columns for negative cases.
func TestSchema(t *testing.T) *pgtrgm.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	// Users table
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "citext"))
	users.AddColumn(dbml.NewColumn("nickname", "varchar(40)").WithNull())
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("tags", "text[]"))
	project.AddTable(users)

	// Products table
	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "bigint"))
	products.AddColumn(dbml.NewColumn("name", "text"))
	products.AddColumn(dbml.NewColumn("sku", "char(12)"))
	products.AddColumn(dbml.NewColumn("price", "numeric"))
	products.AddColumn(dbml.NewColumn("keywords", "_text"))
	project.AddTable(products)

	// Articles table
	articles := dbml.NewTable("articles")
	articles.AddColumn(dbml.NewColumn("id", "bigint"))
	articles.AddColumn(dbml.NewColumn("title", "character varying(200)"))
	articles.AddColumn(dbml.NewColumn("body", "text"))
	articles.AddColumn(dbml.NewColumn("metadata", "jsonb"))
	project.AddTable(articles)

	schema, err := pgtrgm.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertFragments compares rendered fragments in order.
func AssertFragments(t *testing.T, expected []string, result *pgtrgm.QueryResult) {
	t.Helper()
	if result == nil {
		t.Fatal("Expected result, got nil")
	}
	if len(expected) != len(result.Fragments) {
		t.Errorf("Fragment count mismatch: expected %d, got %d\nExpected: %q\nActual:   %q",
			len(expected), len(result.Fragments), expected, result.Fragments)
		return
	}
	for i := range expected {
		if expected[i] != result.Fragments[i] {
			t.Errorf("Fragment %d mismatch:\nExpected: %s\nActual:   %s", i, expected[i], result.Fragments[i])
		}
	}
}

// AssertParams checks that the required params match expected values, in order.
func AssertParams(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Param count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Param %d mismatch: expected %s, got %s\nExpected: %v\nActual: %v",
				i, expected[i], actual[i], expected, actual)
		}
	}
}

// AssertContainsParam checks that a specific param is in the list.
func AssertContainsParam(t *testing.T, params []string, param string) {
	t.Helper()
	for _, p := range params {
		if p == param {
			return
		}
	}
	t.Errorf("Expected param %q not found in %v", param, params)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
