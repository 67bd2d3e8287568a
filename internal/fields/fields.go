// Package fields pulls structured values out of normalized receipt text
// with fixed regular expressions. The patterns are deliberately loose:
// boundary-blind matches (a "Subtotal 12.99" line reads as a product) are
// an accepted limitation, not something to paper over with heuristics.
package fields

import (
	"regexp"
	"strings"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
)

var (
	// warrantyDatePattern wants the word "warranty" and a MM/DD/YYYY date
	// on the same line, date after the word. Matching is case-insensitive;
	// the dot never crosses a newline.
	warrantyDatePattern = regexp.MustCompile(`(?i)warranty.*?(\d{2}/\d{2}/\d{4})`)

	// lineItemPattern pairs an alphabetic product name with a price that
	// has exactly two fraction digits.
	lineItemPattern = regexp.MustCompile(`([A-Za-z\s]+)\s+(\d+\.\d{2})`)
)

// ExtractWarrantyDate returns the first warranty expiry date found in text.
// The date comes back exactly as written; ok is false when no line pairs a
// "warranty" token with a two-digit MM/DD/YYYY date after it.
func ExtractWarrantyDate(text string) (string, bool) {
	m := warrantyDatePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractLineItems returns every (name, price) pair in text, in match
// order. Names are trimmed of surrounding whitespace; a pair whose name
// trims to nothing is discarded. Prices keep their printed form.
func ExtractLineItems(text string) []entity.LineItem {
	matches := lineItemPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	items := make([]entity.LineItem, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		items = append(items, entity.LineItem{Name: name, Price: m[2]})
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
