package loader

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFParser extracts text from PDF documents, one segment per page.
// Pages without extractable text are skipped.
type PDFParser struct{}

var _ Parser = (*PDFParser)(nil)

// Parse extracts the plain text of every readable page in order.
func (*PDFParser) Parse(_ context.Context, _ string, data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty pdf content")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := extractPageText(page)
		if err != nil {
			continue // skip unreadable pages
		}
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func extractPageText(page pdf.Page) (string, error) {
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
