// Package score implements the weighted-field text scoring for each entity
// type. The weight tables are pure data reproduced exactly from the ranking
// contract; changing any constant changes user-observable ordering.
package score

import (
	"math"
	"strings"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

// Weights holds the per-field match weights. Exact matches score highest,
// prefix matches next, loose containment least; token matches are weaker
// echoes of the same ladder.
type Weights struct {
	Exact         int
	Prefix        int
	Contains      int
	TokenPrefix   int
	TokenContains int
}

// tokenExactFactor scales Exact for a field equal to a single token rather
// than the whole query.
const tokenExactFactor = 0.55

// Per-field weight tables. Identity fields (username, name) are stronger
// signals than free text (bio, caption, description).
var (
	userUsername = Weights{Exact: 130, Prefix: 95, Contains: 68, TokenPrefix: 22, TokenContains: 10}
	userName     = Weights{Exact: 110, Prefix: 78, Contains: 54, TokenPrefix: 18, TokenContains: 8}
	userBio      = Weights{Exact: 42, Prefix: 26, Contains: 16, TokenPrefix: 7, TokenContains: 4}

	postCaption        = Weights{Exact: 95, Prefix: 68, Contains: 48, TokenPrefix: 15, TokenContains: 7}
	postAuthorUsername = Weights{Exact: 110, Prefix: 82, Contains: 58, TokenPrefix: 18, TokenContains: 8}
	postAuthorName     = Weights{Exact: 88, Prefix: 64, Contains: 45, TokenPrefix: 14, TokenContains: 6}

	quiltName          = Weights{Exact: 125, Prefix: 92, Contains: 65, TokenPrefix: 21, TokenContains: 9}
	quiltDescription   = Weights{Exact: 48, Prefix: 30, Contains: 18, TokenPrefix: 8, TokenContains: 4}
	quiltOwnerUsername = Weights{Exact: 92, Prefix: 66, Contains: 46, TokenPrefix: 14, TokenContains: 6}
	quiltOwnerName     = Weights{Exact: 76, Prefix: 56, Contains: 38, TokenPrefix: 12, TokenContains: 5}
)

// User scores a user candidate against the normalized query and token set.
func User(u catalog.User, q string, tokens []string) int {
	return Field(u.Username, q, tokens, userUsername) +
		Field(u.Name, q, tokens, userName) +
		Field(u.Bio, q, tokens, userBio)
}

// Post scores a social or marketplace post candidate.
func Post(p catalog.Post, q string, tokens []string) int {
	return Field(p.Caption, q, tokens, postCaption) +
		Field(p.Author.Username, q, tokens, postAuthorUsername) +
		Field(p.Author.Name, q, tokens, postAuthorName)
}

// Quilt scores a quilt candidate.
func Quilt(qu catalog.Quilt, q string, tokens []string) int {
	return Field(qu.Name, q, tokens, quiltName) +
		Field(qu.Description, q, tokens, quiltDescription) +
		Field(qu.Owner.Username, q, tokens, quiltOwnerUsername) +
		Field(qu.Owner.Name, q, tokens, quiltOwnerName)
}

// Field sums the weighted contributions of one field value:
//   - exact equality with the query, or else a query prefix match;
//   - query containment, independent of the above;
//   - per token (distinct from the query): exact equality at
//     round(Exact*0.55), or else token prefix / token containment.
//
// Empty fields contribute 0.
func Field(value, q string, tokens []string, w Weights) int {
	v := normalize(value)
	if v == "" || q == "" {
		return 0
	}

	s := 0
	if v == q {
		s += w.Exact
	} else if strings.HasPrefix(v, q) {
		s += w.Prefix
	}
	if strings.Contains(v, q) {
		s += w.Contains
	}

	for _, t := range tokens {
		if t == q {
			continue
		}
		switch {
		case v == t:
			s += int(math.Round(float64(w.Exact) * tokenExactFactor))
		case strings.HasPrefix(v, t):
			s += w.TokenPrefix
		case strings.Contains(v, t):
			s += w.TokenContains
		}
	}
	return s
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
