package domain

// Category is the closed set of display buckets. Anything outside the five
// named categories lands in CategoryOther.
type Category string

const (
	CategoryAutomation Category = "automation"
	CategorySystem     Category = "system"
	CategoryAPI        Category = "api"
	CategoryWeb        Category = "web"
	CategoryMobile     Category = "mobile"
	CategoryOther      Category = "other"
)

// Categories lists all buckets in display order.
var Categories = []Category{
	CategorySystem,
	CategoryAutomation,
	CategoryAPI,
	CategoryWeb,
	CategoryMobile,
	CategoryOther,
}

// NormalizeCategory maps any string onto the closed set, defaulting to other.
func NormalizeCategory(s string) Category {
	switch Category(s) {
	case CategoryAutomation, CategorySystem, CategoryAPI, CategoryWeb, CategoryMobile:
		return Category(s)
	default:
		return CategoryOther
	}
}

// CategorizedProjects partitions unified projects into the fixed buckets.
// All six keys are always present, possibly empty.
type CategorizedProjects map[Category][]UnifiedProject

// NewCategorizedProjects returns a partition with every bucket present.
func NewCategorizedProjects() CategorizedProjects {
	out := make(CategorizedProjects, len(Categories))
	for _, c := range Categories {
		out[c] = []UnifiedProject{}
	}
	return out
}
