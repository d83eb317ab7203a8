package docfrag

import (
	"fmt"

	"github.com/unidoc/unioffice/document"
)

// AddBlankLines appends n empty paragraphs to doc, in call order.  n must be
// non-negative; zero appends nothing.
func AddBlankLines(doc *document.Document, n int) error {
	if doc == nil {
		return NewInvalidArgumentError("doc", "document is nil")
	}
	if n < 0 {
		return NewInvalidArgumentError("count", fmt.Sprintf("count %d is negative", n))
	}
	for i := 0; i < n; i++ {
		doc.AddParagraph()
	}
	return nil
}
