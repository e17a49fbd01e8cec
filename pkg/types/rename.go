// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RenameOptions configures a batch rename run.
type RenameOptions struct {
	// Pattern is the regular expression searched against each document's
	// extracted text. It is compiled with case-insensitive and multiline
	// matching; capture groups may be positional or named ((?P<name>...)).
	Pattern string

	// Template is the destination filename template. {1}, {2}, ... refer to
	// positional capture groups and {name} to named groups. A rendered name
	// without a .pdf suffix gets one appended.
	Template string

	// MaxPages is the number of leading pages scanned per document.
	MaxPages int

	// Apply performs the renames. When false the run is a preview: planned
	// renames are reported but the filesystem is not touched.
	Apply bool
}

// Plan records one computed rename. Source and Dest are filenames relative to
// the batch folder. Applied reports whether the rename was performed or only
// previewed.
type Plan struct {
	Source  string `json:"source" yaml:"source"`
	Dest    string `json:"dest" yaml:"dest"`
	Applied bool   `json:"applied" yaml:"applied"`
}

// SkipReason categorizes why a candidate file was left untouched.
type SkipReason string

const (
	SkipExtractFailed SkipReason = "extract-failed"
	SkipNoText        SkipReason = "no-text"
	SkipNoMatch       SkipReason = "no-match"
	SkipTemplate      SkipReason = "template-error"
	SkipCollision     SkipReason = "collision"
	SkipRenameFailed  SkipReason = "rename-failed"
)

// Skip records one candidate file that was not renamed, with the reason and
// optional detail (the underlying error text, or the colliding name).
type Skip struct {
	Source string     `json:"source" yaml:"source"`
	Reason SkipReason `json:"reason" yaml:"reason"`
	Detail string     `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report is the document written by the rename command's --report flag: a
// record of what a batch run planned, applied, and skipped.
type Report struct {
	Folder   string `json:"folder" yaml:"folder"`
	Pattern  string `json:"pattern" yaml:"pattern"`
	Template string `json:"template" yaml:"template"`

	// Mode is "preview" or "apply".
	Mode string `json:"mode" yaml:"mode"`

	Matched int    `json:"matched" yaml:"matched"`
	Total   int    `json:"total" yaml:"total"`
	Planned []Plan `json:"planned,omitempty" yaml:"planned,omitempty"`
	Skipped []Skip `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}
