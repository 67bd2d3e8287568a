// Package artifact renders processed receipts into plain-text files laid
// out under one subdirectory per category.
package artifact

import (
	"fmt"
	"strings"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
)

// Render produces the artifact body for one receipt. The layout is fixed:
// category header, blank line, extracted text block, blank line, the
// warranty date line only when a date was detected, then the product
// list. Consumers parse these files, so the order never changes.
func Render(res entity.ReceiptResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n\n", res.Category)
	fmt.Fprintf(&b, "Extracted Text:\n%s\n\n", res.RawText)
	if res.WarrantyDate != "" {
		fmt.Fprintf(&b, "Warranty Date: %s\n", res.WarrantyDate)
	}
	b.WriteString("Products:\n")
	for _, item := range res.LineItems {
		fmt.Fprintf(&b, "%s: %s\n", item.Name, item.Price)
	}
	return b.String()
}
