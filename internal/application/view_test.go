package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentperksph/perks-api/internal/catalog"
	"github.com/studentperksph/perks-api/internal/domain/entity"
)

func TestComposeViewLoading(t *testing.T) {
	c := catalog.New()
	s := NewSessionStore(newFakeRecords(), nil, testLogger(), "")

	vm := ComposeView(c, catalog.NewFilterState(), s)
	assert.True(t, vm.Loading, "an uninitialized session must render as loading")
	assert.Empty(t, vm.Items)
}

func TestComposeViewAnonymous(t *testing.T) {
	c := catalog.New()

	vm := ComposeView(c, catalog.NewFilterState(), nil)
	assert.False(t, vm.Loading)
	assert.Equal(t, c.Len(), vm.Total)
	assert.Len(t, vm.Items, vm.Total)
	assert.True(t, vm.ShowPopular)
	assert.Len(t, vm.Categories, 8)
}

func TestComposeViewPopularVisibility(t *testing.T) {
	c := catalog.New()

	tests := []struct {
		name string
		f    catalog.FilterState
		want bool
	}{
		{"default view", catalog.NewFilterState(), true},
		{"query hides it", catalog.FilterState{Query: "spot", Category: entity.CategoryAll}, false},
		{"category hides it", catalog.FilterState{Category: entity.CategoryDesign}, false},
		{"zero-value category counts as all", catalog.FilterState{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := ComposeView(c, tt.f, nil)
			assert.Equal(t, tt.want, vm.ShowPopular)
		})
	}
}

func TestComposeViewFavoritesFollowSession(t *testing.T) {
	c := catalog.New()
	s := NewSessionStore(newFakeRecords(), nil, testLogger(), "")
	_, err := s.Login(context.Background(), "ana@x.io", "Ana")
	require.NoError(t, err)

	f := catalog.FilterState{Category: entity.CategoryFavorites}

	vm := ComposeView(c, f, s)
	assert.Zero(t, vm.Total)

	_, err = s.ToggleFavorite(context.Background(), "6")
	require.NoError(t, err)

	vm = ComposeView(c, f, s)
	require.Equal(t, 1, vm.Total)
	assert.Equal(t, "6", vm.Items[0].ID)
	assert.False(t, vm.ShowPopular)
}

func TestCheckUnlock(t *testing.T) {
	assert.Equal(t, UnlockNeedsLogin, CheckUnlock(nil))
	assert.Equal(t, UnlockNeedsVerification, CheckUnlock(&entity.User{ID: "u1"}))
	assert.Equal(t, UnlockGranted, CheckUnlock(&entity.User{ID: "u1", IsVerified: true}))
}
