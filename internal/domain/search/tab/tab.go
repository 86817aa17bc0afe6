package tab

import (
	"fmt"
	"strings"

	"github.com/quiltly/searchd/internal/domain"
)

// Tab is the requested search view.
type Tab string

// Search tab constants.
const (
	// Overall is the four-section preview aggregating top results per entity type.
	Overall     Tab = "overall"
	Users       Tab = "users"
	Social      Tab = "social"
	Marketplace Tab = "marketplace"
	Quilts      Tab = "quilts"
)

// IsValid checks if the tab is one of the supported values.
func (t Tab) IsValid() bool {
	return t == Overall || t == Users || t == Social || t == Marketplace || t == Quilts
}

// Parse lower-cases the raw tab string and validates it. An empty tab defaults
// to Overall; anything unrecognized is a validation error, not a fallback.
func Parse(raw string) (Tab, error) {
	if raw == "" {
		return Overall, nil
	}
	t := Tab(strings.ToLower(raw))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTab, raw)
	}
	return t, nil
}
