// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfbatch/pkg/types"
)

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	opts := types.RenameOptions{
		Pattern:  `Invoice #(\d+)`,
		Template: "INV_{1}.pdf",
		MaxPages: 2,
	}
	res := Result{
		Matched: 1,
		Total:   3,
		Planned: []types.Plan{{Source: "scan001.pdf", Dest: "INV_4521.pdf"}},
		Skipped: []types.Skip{
			{Source: "blank.pdf", Reason: types.SkipNoText},
			{Source: "other.pdf", Reason: types.SkipNoMatch},
		},
	}

	require.NoError(t, WriteReport(path, "/invoices", opts, res))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rep types.Report
	require.NoError(t, yaml.Unmarshal(data, &rep))

	assert.Equal(t, "/invoices", rep.Folder)
	assert.Equal(t, opts.Pattern, rep.Pattern)
	assert.Equal(t, "preview", rep.Mode)
	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, 3, rep.Total)
	require.Len(t, rep.Planned, 1)
	assert.Equal(t, "INV_4521.pdf", rep.Planned[0].Dest)
	require.Len(t, rep.Skipped, 2)
	assert.Equal(t, types.SkipNoText, rep.Skipped[0].Reason)
}

func TestWriteReportApplyMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	opts := types.RenameOptions{Pattern: `x`, Template: "y", MaxPages: 1, Apply: true}

	require.NoError(t, WriteReport(path, ".", opts, Result{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rep types.Report
	require.NoError(t, yaml.Unmarshal(data, &rep))
	assert.Equal(t, "apply", rep.Mode)
}

func TestWriteReportBadPath(t *testing.T) {
	err := WriteReport(filepath.Join(t.TempDir(), "missing", "run.yaml"), ".", types.RenameOptions{}, Result{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing report")
}
