package render

import (
	"errors"
	"testing"
)

func TestUnsupportedFeatureError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UnsupportedFeatureError
		expected string
	}{
		{
			name: "without hint",
			err: UnsupportedFeatureError{
				Feature: "operator <<%",
				Dialect: "postgres 100012",
			},
			expected: "postgres 100012: operator <<% is not supported",
		},
		{
			name: "with hint",
			err: UnsupportedFeatureError{
				Feature: "strict_word_similarity()",
				Dialect: "postgres 100012",
				Hint:    "requires PostgreSQL 11 (pg_trgm 1.4)",
			},
			expected: "postgres 100012: strict_word_similarity() is not supported: requires PostgreSQL 11 (pg_trgm 1.4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewUnsupportedFeatureError(t *testing.T) {
	err := NewUnsupportedFeatureError("postgres 90500", "operator <%", "requires PostgreSQL 9.6")
	var ufErr UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatal("expected UnsupportedFeatureError")
	}
	if ufErr.Feature != "operator <%" {
		t.Errorf("Feature = %q, want %q", ufErr.Feature, "operator <%")
	}
	if ufErr.Hint != "requires PostgreSQL 9.6" {
		t.Errorf("Hint = %q, want %q", ufErr.Hint, "requires PostgreSQL 9.6")
	}
}

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		version int
		word    bool
		strict  bool
	}{
		{0, true, true},
		{90500, false, false},
		{90600, true, false},
		{100012, true, false},
		{110000, true, true},
		{160002, true, true},
	}

	for _, tt := range tests {
		caps := CapabilitiesFor(tt.version)
		if caps.WordSimilarity != tt.word {
			t.Errorf("CapabilitiesFor(%d).WordSimilarity = %v, want %v", tt.version, caps.WordSimilarity, tt.word)
		}
		if caps.StrictWordSimilarity != tt.strict {
			t.Errorf("CapabilitiesFor(%d).StrictWordSimilarity = %v, want %v", tt.version, caps.StrictWordSimilarity, tt.strict)
		}
	}
}
