package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfbatch/internal/diag"
	"github.com/pdiddy/pdfbatch/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text from the leading pages of a PDF",
	Long: `Extract prints the plain text of a PDF's first pages to standard output,
framed by separator lines. Use it to see what text the rename command would
match against before writing a pattern.

Exits 0 when text was extracted, 1 when the document yields no text, and
2 when the file does not exist.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("pdf", "", "PDF file path")
	extractCmd.Flags().Int("pages", 0, "number of pages to extract (default 1)")
	_ = extractCmd.MarkFlagRequired("pdf")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("pdf")

	if _, err := os.Stat(path); err != nil {
		return exitf(2, "file not found: %s", path)
	}

	text, _ := extract.PDF{}.Text(path, pagesFlag(cmd), os.Stderr)
	if text == "" {
		diag.Warnf(os.Stderr, "no text extracted")
		return &exitError{code: 1}
	}

	sep := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(sep)
	fmt.Println(text)
	fmt.Println(sep)
	return nil
}
