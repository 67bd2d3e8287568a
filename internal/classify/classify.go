// Package classify assigns a category to receipt text by keyword lookup.
package classify

import (
	"strings"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/constants"
)

// rule binds one category to the substrings that select it.
type rule struct {
	category constants.Category
	keywords []string
}

// rules is evaluated strictly in order: the first category with any
// keyword present in the text wins, regardless of where in the text a
// later category's keyword appears. Keep this a slice, never a map.
var rules = []rule{
	{constants.Restaurant, []string{"restaurant", "cafe", "diner"}},
	{constants.Grocery, []string{"grocery", "supermarket", "food", "walmart"}},
	{constants.Electronics, []string{"electronics", "technology", "gadget"}},
	{constants.Warranty, []string{"warranty", "warrenty", "valid until", "expiry"}},
}

// Categorize returns the category for the given receipt text. Matching is
// case-insensitive substring containment; text matching no rule lands in
// Other. The result is always one of the labels in constants.AllCategories.
func Categorize(text string) constants.Category {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.category
			}
		}
	}
	return constants.Other
}
