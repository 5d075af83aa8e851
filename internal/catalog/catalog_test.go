package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentperksph/perks-api/internal/domain/entity"
)

func TestCatalogIntegrity(t *testing.T) {
	c := New()

	t.Run("ids are unique and resolvable", func(t *testing.T) {
		seen := make(map[string]bool, c.Len())
		for _, b := range c.Benefits() {
			require.NotEmpty(t, b.ID)
			require.False(t, seen[b.ID], "duplicate id %s", b.ID)
			seen[b.ID] = true

			got, ok := c.ByID(b.ID)
			require.True(t, ok)
			assert.Equal(t, b.Name, got.Name)
		}
	})

	t.Run("every entry carries a real category", func(t *testing.T) {
		real := make(map[entity.Category]bool)
		for _, cat := range Categories() {
			real[cat] = true
		}
		for _, b := range c.Benefits() {
			assert.True(t, real[b.Category], "%s has pseudo or unknown category %q", b.ID, b.Category)
		}
	})

	t.Run("popular is the flagged subset in catalog order", func(t *testing.T) {
		var want []string
		for _, b := range c.Benefits() {
			if b.Popular {
				want = append(want, b.ID)
			}
		}
		assert.Equal(t, want, ids(c.Popular()))
		assert.NotEmpty(t, want)
	})

	t.Run("lookup misses report ok=false", func(t *testing.T) {
		_, ok := c.ByID("nope")
		assert.False(t, ok)
	})
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  entity.Category
		ok    bool
	}{
		{"", entity.CategoryAll, true},
		{"All", entity.CategoryAll, true},
		{"My Favorites", entity.CategoryFavorites, true},
		{"Design", entity.CategoryDesign, true},
		{"AI & Machine Learning", entity.CategoryAIML, true},
		{"design", "", false}, // labels are exact, not folded
		{"Gaming", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.label)
		assert.Equal(t, tt.ok, ok, "label %q", tt.label)
		if tt.ok {
			assert.Equal(t, tt.want, got, "label %q", tt.label)
		}
	}
}

func TestCategoriesExcludePseudoValues(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 8)
	for _, cat := range cats {
		assert.False(t, cat.Pseudo(), "%q must not appear in the category strip", cat)
	}
}
