// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfbatch/pkg/types"
)

// WriteReport writes the outcome of a batch run to path as YAML, so a batch
// can be audited after the fact. The report records only what the run already
// printed: the options, every planned rename, and every skip with its reason.
func WriteReport(path, folder string, opts types.RenameOptions, res Result) error {
	mode := "preview"
	if opts.Apply {
		mode = "apply"
	}

	rep := types.Report{
		Folder:   folder,
		Pattern:  opts.Pattern,
		Template: opts.Template,
		Mode:     mode,
		Matched:  res.Matched,
		Total:    res.Total,
		Planned:  res.Planned,
		Skipped:  res.Skipped,
	}

	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
