// Package report prints the per-class console summary of a run.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/processor"
)

// Summary writes one line per pass, in pass order, listing the processes the
// class admitted. Classes without a pass are skipped.
func Summary(w io.Writer, passes []*processor.Pass, admitted map[process.Class][]*process.Process) error {
	writer := bufio.NewWriter(w)
	for _, pass := range passes {
		if pass == nil {
			continue
		}
		fmt.Fprintf(writer, "%s queue (%s, %s) ->", pass.CPU, pass.Class, pass.Label())
		for _, p := range admitted[pass.Class] {
			writer.WriteString(" ")
			writer.WriteString(p.ID)
		}
		writer.WriteString("\n")
	}
	return writer.Flush()
}
