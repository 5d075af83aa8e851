package application

import (
	"github.com/studentperksph/perks-api/internal/catalog"
	"github.com/studentperksph/perks-api/internal/domain/entity"
)

// ViewModel is the derived state rendering consumes: the visible benefit
// subset, the result count, the popular carousel, and the loading flag.
type ViewModel struct {
	Loading     bool              `json:"loading"`
	Items       []entity.Benefit  `json:"items"`
	Total       int               `json:"total"`
	Popular     []entity.Benefit  `json:"popular"`
	ShowPopular bool              `json:"show_popular"`
	Categories  []entity.Category `json:"categories"`
}

// ComposeView recomputes the view model from the catalog, the filter
// state, and the session. It is a pure recomputation on every call; the
// catalog is small enough that no incremental index is warranted.
//
// The popular carousel is shown only for the unfiltered view (category
// ALL with an empty query) so search results stay uncluttered. sess may
// be nil for an anonymous composition.
func ComposeView(c *catalog.Catalog, f catalog.FilterState, sess *SessionStore) ViewModel {
	if sess != nil && !sess.Ready() {
		return ViewModel{Loading: true}
	}

	var favorites []string
	if sess != nil {
		if u := sess.User(); u != nil {
			favorites = u.Favorites
		}
	}

	items := catalog.Filter(c, f, favorites)
	return ViewModel{
		Items:       items,
		Total:       len(items),
		Popular:     c.Popular(),
		ShowPopular: (f.Category == entity.CategoryAll || f.Category == "") && f.Query == "",
		Categories:  catalog.Categories(),
	}
}
