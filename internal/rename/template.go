// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"fmt"
	"strconv"
	"strings"
)

// Capture is one capture group's contribution to a match. Present is false
// when the group did not participate in the match (an unentered alternative
// or an unmatched optional group).
type Capture struct {
	Value   string
	Present bool
}

// absentMarker is substituted for a capture group that did not participate in
// the match. Propagating a visible marker instead of an empty string lets the
// operator spot the gap in a preview and fix the pattern.
const absentMarker = "<none>"

// String renders the capture for template substitution.
func (c Capture) String() string {
	if !c.Present {
		return absentMarker
	}
	return c.Value
}

// Render substitutes {1}, {2}, ... and {name} placeholders in tpl from a
// match's captures. Positional placeholders are 1-indexed: {1} reads
// groups[0]. Doubled braces ({{ and }}) emit literal braces. Referencing an
// index or name with no corresponding capture group is an error; the caller
// decides what to do with the file.
func Render(tpl string, groups []Capture, named map[string]Capture) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tpl); {
		switch {
		case strings.HasPrefix(tpl[i:], "{{"):
			b.WriteByte('{')
			i += 2
		case strings.HasPrefix(tpl[i:], "}}"):
			b.WriteByte('}')
			i += 2
		case tpl[i] == '{':
			end := strings.IndexByte(tpl[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unclosed placeholder at offset %d", i)
			}
			val, err := lookup(tpl[i+1:i+end], groups, named)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
			i += end + 1
		case tpl[i] == '}':
			return "", fmt.Errorf("unmatched '}' at offset %d", i)
		default:
			b.WriteByte(tpl[i])
			i++
		}
	}
	return b.String(), nil
}

// lookup resolves a single placeholder reference: a decimal index into the
// positional groups or a named group.
func lookup(ref string, groups []Capture, named map[string]Capture) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("empty placeholder {}")
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(groups) {
			return "", fmt.Errorf("no capture group %d (pattern has %d)", n, len(groups))
		}
		return groups[n-1].String(), nil
	}
	c, ok := named[ref]
	if !ok {
		return "", fmt.Errorf("no capture group named %q", ref)
	}
	return c.String(), nil
}
