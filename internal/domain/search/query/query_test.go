package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/quiltly/searchd/internal/domain"
	"github.com/quiltly/searchd/internal/domain/search/tab"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  hello  ", "hello"},
		{"collapses runs", "vintage   denim\t jacket", "vintage denim jacket"},
		{"lowercases", "Vintage Jacket", "vintage jacket"},
		{"empty", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Truncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Normalize(long)
	if len([]rune(got)) != MaxLength {
		t.Errorf("expected %d chars, got %d", MaxLength, len([]rune(got)))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"hello world", "  Mixed  Case  ", strings.Repeat("xy ", 60)}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("vintage denim jacket vintage")
	want := []string{"vintage", "denim", "jacket"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenize_CapsAtMax(t *testing.T) {
	tokens := Tokenize("a b c d e f g h i j")
	if len(tokens) != MaxTokens {
		t.Errorf("expected %d tokens, got %d", MaxTokens, len(tokens))
	}
	// first appearance order, extras dropped
	if tokens[0] != "a" || tokens[MaxTokens-1] != "h" {
		t.Errorf("unexpected token order: %v", tokens)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if tokens := Tokenize(""); tokens != nil {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestNew_InvalidTab(t *testing.T) {
	_, err := New("nike", "bogus", 0, 0, 0)
	if !errors.Is(err, domain.ErrInvalidTab) {
		t.Fatalf("expected ErrInvalidTab, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	q, err := New("nike", "users", 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Tab() != tab.Users {
		t.Errorf("expected users tab, got %q", q.Tab())
	}
	if q.Limit() != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, q.Limit())
	}
	if q.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", q.Offset())
	}
	if q.SectionLimit() != DefaultSectionLimit {
		t.Errorf("expected default section limit %d, got %d", DefaultSectionLimit, q.SectionLimit())
	}
}

func TestNew_Clamps(t *testing.T) {
	q, err := New("nike", "users", 500, -3, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit() != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, q.Limit())
	}
	if q.Offset() != 0 {
		t.Errorf("expected offset clamped to 0, got %d", q.Offset())
	}
	if q.SectionLimit() != MaxSectionLimit {
		t.Errorf("expected section limit clamped to %d, got %d", MaxSectionLimit, q.SectionLimit())
	}
}

func TestTooShort(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"a", true},
		{" a ", true},
		{"", true},
		{"ni", false},
		{"nike", false},
	}

	for _, tc := range tests {
		q, err := New(tc.raw, "users", 0, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := q.TooShort(); got != tc.want {
			t.Errorf("TooShort(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNew_TokensFromNormalized(t *testing.T) {
	q, err := New("  Vintage   JACKET  ", "overall", 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Normalized() != "vintage jacket" {
		t.Errorf("unexpected normalized: %q", q.Normalized())
	}
	tokens := q.Tokens()
	if len(tokens) != 2 || tokens[0] != "vintage" || tokens[1] != "jacket" {
		t.Errorf("unexpected tokens: %v", tokens)
	}
}
