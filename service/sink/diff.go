package sink

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff produces a unified diff between an expected and an actual trace.
// Equal traces yield an empty string. Line endings are normalised first.
func Diff(expected, actual []byte) (string, error) {
	expected = bytes.ReplaceAll(expected, []byte("\r\n"), []byte("\n"))
	actual = bytes.ReplaceAll(actual, []byte("\r\n"), []byte("\n"))
	if bytes.Equal(expected, actual) {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(expected)),
		B:        difflib.SplitLines(string(actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}
