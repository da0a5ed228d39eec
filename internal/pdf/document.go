// Package pdf gives the extraction pipeline page-addressed access to
// PDF files: plain text per page, rendered page images and outline
// writing.
package pdf

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/jackzampolin/outliner/internal/toc"
)

// Document is an open PDF file. It is safe for sequential use only;
// callers own Close.
type Document struct {
	path     string
	file     *os.File
	reader   *pdflib.Reader
	numPages int
}

// Open opens a PDF for reading.
func Open(path string) (*Document, error) {
	numPages, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &Document{
		path:     path,
		file:     f,
		reader:   reader,
		numPages: numPages,
	}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// NumPages returns the document's page count.
func (d *Document) NumPages() int {
	return d.numPages
}

// PageText returns the plain text of each page in the range, in order.
// Pages outside the document are clamped away; pages with no text
// layer yield an empty string rather than an error.
func (d *Document) PageText(r toc.PageRange) ([]string, error) {
	start, end := r.Start, r.End
	if start < 1 {
		start = 1
	}
	if end > d.numPages {
		end = d.numPages
	}
	if end < start {
		return nil, fmt.Errorf("page range %s outside document (%d pages)", r, d.numPages)
	}

	texts := make([]string, 0, end-start+1)
	for p := start; p <= end; p++ {
		page := d.reader.Page(p)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single undecodable page degrades to empty text; the
			// caller's tier ladder handles the rest.
			texts = append(texts, "")
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}
