package entity

// Category labels a benefit in the catalog. CategoryAll and
// CategoryFavorites are filter-only pseudo-values and never appear on a
// Benefit record.
type Category string

const (
	CategoryAll           Category = "All"
	CategoryAIML          Category = "AI & Machine Learning"
	CategoryDevTools      Category = "Dev Tools"
	CategoryDesign        Category = "Design"
	CategoryProductivity  Category = "Productivity"
	CategoryEntertainment Category = "Entertainment"
	CategoryLifestyle     Category = "Lifestyle & Travel"
	CategoryEducation     Category = "Education"
	CategoryHardware      Category = "Hardware & Gear"
	CategoryFavorites     Category = "My Favorites"
)

// Pseudo reports whether the category is a filter-only value.
func (c Category) Pseudo() bool {
	return c == CategoryAll || c == CategoryFavorites
}

// Benefit is a single discount/offer entry in the static catalog.
// Records are immutable after startup.
type Benefit struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Provider      string   `json:"provider"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Category      Category `json:"category"`
	Tags          []string `json:"tags"`
	Link          string   `json:"link"`
	StudentPrice  string   `json:"student_price"`
	OriginalPrice string   `json:"original_price"`
	Popular       bool     `json:"popular"`
	BrandColor    string   `json:"brand_color"`
	LogoURL       string   `json:"logo_url"`
	CoverImage    string   `json:"cover_image"`
}
