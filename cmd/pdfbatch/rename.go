package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfbatch/internal/extract"
	"github.com/pdiddy/pdfbatch/internal/rename"
	"github.com/pdiddy/pdfbatch/pkg/types"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Batch-rename PDFs from patterns found in their text",
	Long: `Rename scans every *.pdf file in a folder, extracts the text of each
file's leading pages, searches it with a regular expression, and renames the
file from a template filled with the captured groups.

Positional groups substitute as {1}, {2}, ...; named groups declared with
(?P<name>...) substitute as {name}. A rendered name without a .pdf suffix
gets one appended, and an existing file is never overwritten.

Without --apply the run is a dry run: planned renames are reported but
nothing on disk changes. Exits 0 when at least one file matched, 1 when none
did, and 2 when the folder does not exist.`,
	Example: `  # Preview renaming invoices by their invoice number
  pdfbatch rename --folder ./invoices --pattern 'Invoice #(\d+)' --template 'INV_{1}.pdf'

  # Apply a rename driven by named groups across the first two pages
  pdfbatch rename --folder ./bills \
    --pattern 'Invoice: (?P<num>\d+).*Date: (?P<date>\d{4}-\d{2}-\d{2})' \
    --template '{date}_INV_{num}.pdf' --pages 2 --apply`,
	RunE: runRename,
}

func init() {
	renameCmd.Flags().String("folder", "", "folder containing PDF files")
	renameCmd.Flags().String("pattern", "", "regex searched in the extracted text, e.g. 'Invoice #(\\d+)'")
	renameCmd.Flags().String("template", "", "new filename template, e.g. 'INV_{1}.pdf' or 'DOC_{id}.pdf'")
	renameCmd.Flags().Int("pages", 0, "pages to scan per PDF (default 1)")
	renameCmd.Flags().Bool("apply", false, "apply changes (otherwise dry run)")
	renameCmd.Flags().String("report", "", "write the run's plan and skips to this YAML file")
	_ = renameCmd.MarkFlagRequired("folder")
	_ = renameCmd.MarkFlagRequired("pattern")
	_ = renameCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	folder, _ := cmd.Flags().GetString("folder")
	pattern, _ := cmd.Flags().GetString("pattern")
	template, _ := cmd.Flags().GetString("template")
	apply, _ := cmd.Flags().GetBool("apply")
	report, _ := cmd.Flags().GetString("report")

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return exitf(2, "folder not found: %s", folder)
	}

	opts := types.RenameOptions{
		Pattern:  pattern,
		Template: template,
		MaxPages: pagesFlag(cmd),
		Apply:    apply,
	}

	res := rename.Batch(extract.PDF{}, folder, opts, os.Stderr)

	if report != "" {
		if err := rename.WriteReport(report, folder, opts, res); err != nil {
			return exitf(2, "%v", err)
		}
	}

	if res.Matched == 0 {
		return &exitError{code: 1}
	}
	return nil
}
