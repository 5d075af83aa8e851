package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentperksph/perks-api/internal/domain/entity"
)

func fixtureCatalog() *Catalog {
	return newFrom([]entity.Benefit{
		{ID: "a", Name: "Alpha Editor", Provider: "Alpha", Category: entity.CategoryDevTools, Tags: []string{"Coding", "IDE"}},
		{ID: "b", Name: "Beats Stream", Provider: "Beats", Category: entity.CategoryEntertainment, Tags: []string{"Music"}, Popular: true},
		{ID: "c", Name: "Campus Cloud", Provider: "Nimbus", Category: entity.CategoryDevTools, Tags: []string{"Cloud", "Hosting"}},
		{ID: "d", Name: "Draft Deck", Provider: "Studio", Category: entity.CategoryDesign, Tags: []string{"Design"}, Popular: true},
	})
}

func ids(items []entity.Benefit) []string {
	out := make([]string, 0, len(items))
	for _, b := range items {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterEmptyStateReturnsEverything(t *testing.T) {
	c := fixtureCatalog()
	got := Filter(c, NewFilterState(), nil)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got), "catalog order must be preserved")
}

func TestFilterTextMatching(t *testing.T) {
	c := fixtureCatalog()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name substring", "alpha", []string{"a"}},
		{"case insensitive", "ALPHA", []string{"a"}},
		{"matches provider", "nimbus", []string{"c"}},
		{"matches tag", "music", []string{"b"}},
		{"partial across fields", "d", []string{"a", "c", "d"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(c, FilterState{Query: tt.query, Category: entity.CategoryAll}, nil)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterCategory(t *testing.T) {
	c := fixtureCatalog()

	t.Run("exact category", func(t *testing.T) {
		got := Filter(c, FilterState{Category: entity.CategoryDevTools}, nil)
		assert.Equal(t, []string{"a", "c"}, ids(got))
	})

	t.Run("favorites with membership", func(t *testing.T) {
		got := Filter(c, FilterState{Category: entity.CategoryFavorites}, []string{"d", "b"})
		assert.Equal(t, []string{"b", "d"}, ids(got), "favorites render in catalog order, not selection order")
	})

	t.Run("favorites with nil favorites is empty", func(t *testing.T) {
		got := Filter(c, FilterState{Category: entity.CategoryFavorites}, nil)
		assert.Empty(t, got)

		got = Filter(c, FilterState{Query: "alpha", Category: entity.CategoryFavorites}, nil)
		assert.Empty(t, got, "a query must not resurrect favorites for an anonymous caller")
	})

	t.Run("text and category conjoin", func(t *testing.T) {
		got := Filter(c, FilterState{Query: "cloud", Category: entity.CategoryDevTools}, nil)
		assert.Equal(t, []string{"c"}, ids(got))
	})
}

func TestFilterStateTransitions(t *testing.T) {
	f := FilterState{Query: "alpha", Category: entity.CategoryDesign}

	f.ResetCategory()
	assert.Equal(t, entity.CategoryAll, f.Category)
	assert.Equal(t, "alpha", f.Query, "reset must not touch the query")

	f.Category = entity.CategoryFavorites
	f.Clear()
	assert.Equal(t, entity.CategoryAll, f.Category)
	assert.Empty(t, f.Query)
}

func TestFilterTwoEntryScenario(t *testing.T) {
	c := newFrom([]entity.Benefit{
		{ID: "1", Name: "GitHub Student Pack", Provider: "GitHub", Category: entity.CategoryDevTools, Popular: true},
		{ID: "2", Name: "Spotify Premium", Provider: "Spotify", Category: entity.CategoryEntertainment},
	})

	got := Filter(c, FilterState{Query: "git", Category: entity.CategoryAll}, nil)
	assert.Equal(t, []string{"1"}, ids(got))

	got = Filter(c, FilterState{Category: entity.CategoryEntertainment}, nil)
	assert.Equal(t, []string{"2"}, ids(got))

	assert.Equal(t, []string{"1"}, ids(c.Popular()), "popular ignores filter state")
}

func TestFilterAgainstRealCatalog(t *testing.T) {
	c := New()

	t.Run("spot narrows to spotify only", func(t *testing.T) {
		got := Filter(c, FilterState{Query: "spot", Category: entity.CategoryAll}, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "Spotify Premium", got[0].Name)
	})

	t.Run("unfiltered equals full catalog", func(t *testing.T) {
		got := Filter(c, NewFilterState(), nil)
		assert.Len(t, got, c.Len())
	})
}
