package query

import (
	"strings"

	"github.com/quiltly/searchd/internal/domain/search/tab"
)

// Search parameter limits.
const (
	// MinLength is the minimum normalized query length for a real search;
	// shorter queries short-circuit to an empty result.
	MinLength = 2
	// MaxLength is the normalized query truncation bound.
	MaxLength = 80
	// MaxTokens caps how many distinct words are kept for token matching.
	MaxTokens = 8

	DefaultLimit        = 20
	MaxLimit            = 50
	DefaultSectionLimit = 5
	MaxSectionLimit     = 10
)

// Query is a validated, normalized search query.
type Query struct {
	raw          string
	normalized   string
	tokens       []string
	searchTab    tab.Tab
	limit        int
	offset       int
	sectionLimit int
}

// New validates the tab and normalizes the query and paging parameters.
// Out-of-range paging values are clamped, never rejected; only an
// unrecognized tab is an error.
func New(raw, rawTab string, limit, offset, sectionLimit int) (Query, error) {
	t, err := tab.Parse(rawTab)
	if err != nil {
		return Query{}, err
	}

	normalized := Normalize(raw)

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	if sectionLimit <= 0 {
		sectionLimit = DefaultSectionLimit
	}
	if sectionLimit > MaxSectionLimit {
		sectionLimit = MaxSectionLimit
	}

	return Query{
		raw:          raw,
		normalized:   normalized,
		tokens:       Tokenize(normalized),
		searchTab:    t,
		limit:        limit,
		offset:       offset,
		sectionLimit: sectionLimit,
	}, nil
}

// Normalize trims, collapses whitespace runs to single spaces, lower-cases,
// and truncates to MaxLength. Normalizing an already-normalized query is a
// no-op.
func Normalize(raw string) string {
	collapsed := strings.Join(strings.Fields(raw), " ")
	collapsed = strings.ToLower(collapsed)
	runes := []rune(collapsed)
	if len(runes) > MaxLength {
		collapsed = string(runes[:MaxLength])
	}
	return collapsed
}

// Tokenize splits a normalized query on whitespace, deduplicates in order of
// first appearance, and caps the set at MaxTokens.
func Tokenize(normalized string) []string {
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(words))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, w)
		if len(tokens) == MaxTokens {
			break
		}
	}
	return tokens
}

// Raw returns the query text as received.
func (q *Query) Raw() string { return q.raw }

// Normalized returns the sanitized query text used for scoring.
func (q *Query) Normalized() string { return q.normalized }

// Tokens returns the bounded token set derived from the normalized query.
func (q *Query) Tokens() []string { return q.tokens }

// Tab returns the requested search view.
func (q *Query) Tab() tab.Tab { return q.searchTab }

// Limit returns the tab-mode page size.
func (q *Query) Limit() int { return q.limit }

// Offset returns the tab-mode page offset.
func (q *Query) Offset() int { return q.offset }

// SectionLimit returns the overview-mode per-section cap.
func (q *Query) SectionLimit() int { return q.sectionLimit }

// TooShort reports whether the query is below the searchable minimum and the
// engine should short-circuit without touching the store.
func (q *Query) TooShort() bool {
	return len([]rune(q.normalized)) < MinLength
}
