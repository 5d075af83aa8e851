package catalog

import (
	"strings"

	"github.com/studentperksph/perks-api/internal/domain/entity"
)

// FilterState is the pair of UI-owned filter inputs. The zero value means
// "show everything" once Category is normalized through NewFilterState.
type FilterState struct {
	Query    string
	Category entity.Category
}

// NewFilterState returns the default state: empty query, category ALL.
func NewFilterState() FilterState {
	return FilterState{Category: entity.CategoryAll}
}

// Clear resets both inputs together ("clear filters").
func (f *FilterState) Clear() {
	f.Query = ""
	f.Category = entity.CategoryAll
}

// ResetCategory drops only the category constraint, leaving the query
// untouched.
func (f *FilterState) ResetCategory() {
	f.Category = entity.CategoryAll
}

// Filter derives the visible subset of the catalog from the filter state
// and the current user's favorites. The result preserves catalog order; no
// re-sorting happens. favorites may be nil (no user logged in), in which
// case the FAVORITES category yields nothing.
func Filter(c *Catalog, f FilterState, favorites []string) []entity.Benefit {
	q := strings.ToLower(f.Query)
	out := make([]entity.Benefit, 0, c.Len())
	for _, b := range c.items {
		if matchesText(&b, q) && matchesCategory(&b, f.Category, favorites) {
			out = append(out, b)
		}
	}
	return out
}

func matchesText(b *entity.Benefit, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(b.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Provider), q) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func matchesCategory(b *entity.Benefit, cat entity.Category, favorites []string) bool {
	switch cat {
	case entity.CategoryAll, "":
		return true
	case entity.CategoryFavorites:
		for _, id := range favorites {
			if id == b.ID {
				return true
			}
		}
		return false
	default:
		return b.Category == cat
	}
}
