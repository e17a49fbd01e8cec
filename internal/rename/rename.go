// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename renames PDF files in bulk, deriving each file's new name
// from a regular expression matched against the text of its leading pages.
package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/pdfbatch/internal/diag"
	"github.com/pdiddy/pdfbatch/pkg/types"
)

// Extractor yields the plain text of a document's leading pages. An empty
// string with a nil error means the document has no usable text layer.
type Extractor interface {
	Text(path string, maxPages int, w io.Writer) (string, error)
}

// Result summarizes a batch rename run. Matched counts files whose rename was
// planned (preview) or performed (apply); the two modes count alike.
type Result struct {
	Matched int
	Total   int
	Planned []types.Plan
	Skipped []types.Skip
}

const separator = "------------------------------------------------------------"

// Batch scans folder for *.pdf files and processes each one in turn: extract
// text, search the pattern, render the template into a new name, and rename
// (or, in preview mode, report the planned rename). Per-file failures are
// logged to w and skipped; the batch always runs to completion. A malformed
// pattern or an empty candidate set aborts before any file is touched.
func Batch(ex Extractor, folder string, opts types.RenameOptions, w io.Writer) Result {
	rx, err := regexp.Compile("(?im)" + opts.Pattern)
	if err != nil {
		diag.Errorf(w, "invalid pattern: %v", err)
		return Result{}
	}

	pdfs, err := candidates(folder)
	if err != nil {
		diag.Errorf(w, "reading folder %s: %v", folder, err)
		return Result{}
	}
	if len(pdfs) == 0 {
		diag.Warnf(w, "no PDF files found in %s", folder)
		return Result{}
	}

	diag.Infof(w, "processing %d PDF(s) in %s", len(pdfs), folder)
	diag.Infof(w, "pattern: %s", opts.Pattern)
	diag.Infof(w, "template: %s", opts.Template)
	mode := "DRY RUN"
	if opts.Apply {
		mode = "APPLY CHANGES"
	}
	diag.Infof(w, "mode: %s", mode)
	fmt.Fprintln(w, separator)

	res := Result{Total: len(pdfs)}
	for _, path := range pdfs {
		res.processFile(ex, path, rx, opts, w)
	}

	fmt.Fprintln(w, separator)
	verb := "renamed"
	if !opts.Apply {
		verb = "would be renamed"
	}
	diag.Infof(w, "summary: %d/%d files %s", res.Matched, res.Total, verb)
	if !opts.Apply {
		diag.Infof(w, "run with --apply to execute changes")
	}
	return res
}

// candidates lists the direct children of folder whose names match *.pdf,
// sorted by name. The match is case-sensitive: Scan.PDF is not a candidate.
func candidates(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match("*.pdf", entry.Name()); ok {
			pdfs = append(pdfs, filepath.Join(folder, entry.Name()))
		}
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

// processFile runs the per-file pipeline for one candidate and records the
// outcome on res. Every skip produces a log line naming the file and reason.
func (res *Result) processFile(ex Extractor, path string, rx *regexp.Regexp, opts types.RenameOptions, w io.Writer) {
	base := filepath.Base(path)

	text, err := ex.Text(path, opts.MaxPages, w)
	if err != nil {
		diag.Warnf(w, "%s: no text extracted", base)
		res.skip(base, types.SkipExtractFailed, err.Error())
		return
	}
	if text == "" {
		diag.Warnf(w, "%s: no text extracted", base)
		res.skip(base, types.SkipNoText, "")
		return
	}

	loc := rx.FindStringSubmatchIndex(text)
	if loc == nil {
		diag.Warnf(w, "%s: pattern not found", base)
		res.skip(base, types.SkipNoMatch, "")
		return
	}

	groups, named := captures(rx, text, loc)
	newName, err := Render(opts.Template, groups, named)
	if err != nil {
		diag.Errorf(w, "%s: template error: %v", base, err)
		diag.Infof(w, "    captured: %s", describeCaptures(groups, named))
		res.skip(base, types.SkipTemplate, err.Error())
		return
	}
	if !strings.HasSuffix(newName, ".pdf") {
		newName += ".pdf"
	}

	dest := filepath.Join(filepath.Dir(path), newName)
	if dest != path {
		if _, err := os.Stat(dest); err == nil {
			diag.Errorf(w, "%s: target %q already exists, skipping", base, newName)
			res.skip(base, types.SkipCollision, newName)
			return
		}
	}

	if opts.Apply {
		if err := os.Rename(path, dest); err != nil {
			diag.Errorf(w, "%s: rename failed: %v", base, err)
			res.skip(base, types.SkipRenameFailed, err.Error())
			return
		}
		diag.Infof(w, "%s -> %s", base, newName)
	} else {
		diag.Infof(w, "[DRY] %s -> %s", base, newName)
	}

	res.Matched++
	res.Planned = append(res.Planned, types.Plan{Source: base, Dest: newName, Applied: opts.Apply})
}

func (res *Result) skip(source string, reason types.SkipReason, detail string) {
	res.Skipped = append(res.Skipped, types.Skip{Source: source, Reason: reason, Detail: detail})
}

// captures converts a FindStringSubmatchIndex result into positional and
// named capture values. groups[0] is capture group 1; group 0 (the whole
// match) is not included. A group with a -1 offset did not participate.
func captures(rx *regexp.Regexp, text string, loc []int) ([]Capture, map[string]Capture) {
	n := rx.NumSubexp()
	groups := make([]Capture, n)
	for i := 1; i <= n; i++ {
		start, end := loc[2*i], loc[2*i+1]
		if start >= 0 {
			groups[i-1] = Capture{Value: text[start:end], Present: true}
		}
	}

	named := make(map[string]Capture)
	for i, name := range rx.SubexpNames() {
		if name == "" || i == 0 {
			continue
		}
		named[name] = groups[i-1]
	}
	return groups, named
}

// describeCaptures formats what the pattern actually captured, for the
// diagnostic that accompanies a template error.
func describeCaptures(groups []Capture, named map[string]Capture) string {
	vals := make([]string, len(groups))
	for i, g := range groups {
		if g.Present {
			vals[i] = fmt.Sprintf("%q", g.Value)
		} else {
			vals[i] = absentMarker
		}
	}

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = fmt.Sprintf("%s=%s", name, named[name])
	}

	return fmt.Sprintf("groups [%s] named {%s}", strings.Join(vals, ", "), strings.Join(pairs, ", "))
}
