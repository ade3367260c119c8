package model

// ItemCategory is the closed set of grocery item categories. The member list
// is fixed; forms render it as a select and reject anything outside it.
type ItemCategory struct {
	Code  string
	Label string
}

var itemCategories = []ItemCategory{
	{"produce", "Produce"},
	{"dairy", "Dairy"},
	{"bakery", "Bakery"},
	{"meat", "Meat"},
	{"seafood", "Seafood"},
	{"frozen", "Frozen"},
	{"pantry", "Pantry"},
	{"snacks", "Snacks"},
	{"beverages", "Beverages"},
	{"household", "Household"},
	{"other", "Other"},
}

// Categories returns the full category list in display order.
func Categories() []ItemCategory {
	return itemCategories
}

// ValidCategory reports whether code is a member of the category set.
func ValidCategory(code string) bool {
	for _, c := range itemCategories {
		if c.Code == code {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display label for a category code, or the code
// itself when it is not a known member.
func CategoryLabel(code string) string {
	for _, c := range itemCategories {
		if c.Code == code {
			return c.Label
		}
	}
	return code
}
