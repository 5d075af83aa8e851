package catalog

import "github.com/studentperksph/perks-api/internal/domain/entity"

// Catalog is the immutable benefit directory loaded at startup. All
// accessors return shared slices; callers must not mutate them.
type Catalog struct {
	items   []entity.Benefit
	popular []entity.Benefit
	byID    map[string]*entity.Benefit
}

// New builds the catalog from the compiled-in benefit table. The popular
// subset is computed once here; it is independent of any filter state.
func New() *Catalog {
	return newFrom(benefits)
}

func newFrom(items []entity.Benefit) *Catalog {
	c := &Catalog{items: items, byID: make(map[string]*entity.Benefit, len(items))}
	for i := range items {
		b := &items[i]
		c.byID[b.ID] = b
		if b.Popular {
			c.popular = append(c.popular, *b)
		}
	}
	return c
}

// Benefits returns all entries in catalog order.
func (c *Catalog) Benefits() []entity.Benefit { return c.items }

// Popular returns the stable sub-sequence of entries flagged popular.
func (c *Catalog) Popular() []entity.Benefit { return c.popular }

// ByID looks up a benefit by id.
func (c *Catalog) ByID(id string) (*entity.Benefit, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Len reports the number of entries.
func (c *Catalog) Len() int { return len(c.items) }

// Categories returns the real catalog categories in display order,
// excluding the ALL and FAVORITES pseudo-values.
func Categories() []entity.Category {
	return []entity.Category{
		entity.CategoryAIML,
		entity.CategoryDevTools,
		entity.CategoryDesign,
		entity.CategoryProductivity,
		entity.CategoryEntertainment,
		entity.CategoryLifestyle,
		entity.CategoryEducation,
		entity.CategoryHardware,
	}
}

// ParseCategory maps a label to a Category, accepting pseudo-values. An
// empty label means ALL. Unknown labels are rejected so a typoed filter
// reads as a validation problem instead of an empty result set.
func ParseCategory(label string) (entity.Category, bool) {
	if label == "" {
		return entity.CategoryAll, true
	}
	c := entity.Category(label)
	if c == entity.CategoryAll || c == entity.CategoryFavorites {
		return c, true
	}
	for _, real := range Categories() {
		if c == real {
			return c, true
		}
	}
	return "", false
}
