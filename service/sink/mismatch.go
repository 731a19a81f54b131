package sink

import (
	"bytes"
	"fmt"

	sgdiff "github.com/sourcegraph/go-diff/diff"
)

// Mismatch summarises a unified trace diff
type Mismatch struct {
	Hunks   int
	Added   int
	Removed int
	// FirstLine is the expected trace line number of the first divergence.
	FirstLine int
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("trace differs at line %d: %d hunk(s), +%d -%d", m.FirstLine, m.Hunks, m.Added, m.Removed)
}

// Inspect parses a unified diff produced by Diff; an empty diff yields nil.
func Inspect(unified string) (*Mismatch, error) {
	if unified == "" {
		return nil, nil
	}
	fd, err := sgdiff.ParseFileDiff([]byte(unified))
	if err != nil {
		return nil, fmt.Errorf("parse trace diff: %w", err)
	}
	ret := &Mismatch{}
	for _, hunk := range fd.Hunks {
		ret.Hunks++
		line := int(hunk.OrigStartLine)
		for _, text := range bytes.Split(hunk.Body, []byte("\n")) {
			if len(text) == 0 {
				continue
			}
			switch text[0] {
			case '+':
				ret.Added++
			case '-':
				ret.Removed++
			default:
				line++
				continue
			}
			if ret.FirstLine == 0 {
				ret.FirstLine = line
			}
		}
	}
	return ret, nil
}
