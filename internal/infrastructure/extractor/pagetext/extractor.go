// Package pagetext extracts ordered per-page text from uploaded bytes.
// PDFs go through github.com/ledongthuc/pdf; anything else must decode as
// UTF-8 text, with form feeds treated as page breaks.
package pagetext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/claimsight/claimsight/internal/core/domain"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Pages(_ context.Context, data []byte, isPDF bool) ([]string, error) {
	if isPDF {
		return pdfPages(data)
	}
	return textPages(data)
}

func textPages(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, domain.WrapError(domain.ErrUnsupportedEncoding, "decode text", errors.New("bytes are not valid utf-8"))
	}
	pages := strings.Split(string(data), "\f")
	return pages, nil
}

// pdfPages reads the document page by page. The pdf library panics on some
// malformed inputs, so every page visit runs behind a recover; a page that
// cannot be read stays in the sequence as empty text to keep page numbers
// aligned.
func pdfPages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = domain.WrapError(domain.ErrInvalidInput, "parse pdf", fmt.Errorf("pdf reader panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "parse pdf", err)
	}

	total := reader.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		pages = append(pages, extractPage(reader, i))
	}
	return pages, nil
}

func extractPage(reader *pdf.Reader, number int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	page := reader.Page(number)
	if page.V.IsNull() {
		return ""
	}

	var b strings.Builder
	for _, item := range page.Content().Text {
		b.WriteString(item.S)
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String())
}
