package constants

// Category is the classification label assigned to a receipt. The label
// doubles as the output subdirectory name, so values stay lowercase.
type Category string

const (
	Restaurant  Category = "restaurant"
	Grocery     Category = "grocery"
	Electronics Category = "electronics"
	Warranty    Category = "warranty"
	Other       Category = "other"
)

// allCategories lists every label in its fixed evaluation order.
var allCategories = []Category{
	Restaurant,
	Grocery,
	Electronics,
	Warranty,
	Other,
}

// AllCategories returns the labels in evaluation order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}
