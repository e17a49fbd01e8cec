// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls plain text out of the leading pages of a PDF.
// It reads only the embedded text layer; scanned (image-only) pages yield
// no text, which callers treat as "skip this document" rather than an error.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdfbatch/internal/diag"
)

// PDF extracts text through the pure-Go PDF parser. It implements the
// rename package's Extractor.
type PDF struct{}

// Text returns the concatenated text of up to maxPages leading pages of the
// document at path, non-empty page texts joined by newlines. An empty string
// with a nil error means the document has no usable text layer. Any parser
// failure is returned as an error with the text empty; one diagnostic line
// is written to w per invocation, success or failure.
func (PDF) Text(path string, maxPages int, w io.Writer) (text string, err error) {
	text, pages, err := leadingPages(path, maxPages)
	if err != nil {
		diag.Errorf(w, "failed to extract from %s: %v", filepath.Base(path), err)
		return "", err
	}
	diag.Infof(w, "extracted %d page(s) from %s", pages, filepath.Base(path))
	return text, nil
}

// leadingPages reads min(page count, maxPages) pages in order and joins the
// non-empty ones. It reports how many pages were processed.
func leadingPages(path string, maxPages int) (text string, pages int, err error) {
	if maxPages < 1 {
		return "", 0, fmt.Errorf("max pages must be at least 1, got %d", maxPages)
	}

	// The pure-Go parser panics on some malformed documents; fold that into
	// the ordinary error path so a corrupt file only skips one document.
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("parsing %s: %v", filepath.Base(path), r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", path, err)
	}

	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return "", 0, fmt.Errorf("reading %s: %w", path, err)
	}

	pages = r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	fonts := make(map[string]*pdf.Font)
	var parts []string
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; ok {
				continue
			}
			fnt := p.Font(name)
			fonts[name] = &fnt
		}
		pageText, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return "", 0, fmt.Errorf("page %d of %s: %w", i, filepath.Base(path), pageErr)
		}
		if pageText != "" {
			parts = append(parts, pageText)
		}
	}

	return strings.Join(parts, "\n"), pages, nil
}
