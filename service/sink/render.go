// Package sink renders a dispatch log into the line oriented event trace and
// persists it.
package sink

import (
	"bytes"
	"fmt"

	"github.com/viant/cpusched/model/dispatch"
)

// Line renders a single event
func Line(event *dispatch.Event) string {
	switch event.Kind {
	case dispatch.KindQueued:
		return fmt.Sprintf("Process %s is queued to be assigned to %s.", event.ProcessID, event.CPU)
	case dispatch.KindRejected:
		return fmt.Sprintf("Process %s is rejected due to insufficient memory.", event.ProcessID)
	case dispatch.KindAssigned:
		return fmt.Sprintf("Process %s is assigned to %s.", event.ProcessID, event.CPU)
	case dispatch.KindRequeued:
		return fmt.Sprintf("Process %s run until the defined quantum time and is queued again because the process is not completed.", event.ProcessID)
	case dispatch.KindCompleted:
		return fmt.Sprintf("Process %s is completed and terminated.", event.ProcessID)
	}
	return fmt.Sprintf("Process %s: %s.", event.ProcessID, event.Kind)
}

// Render renders every event in log order
func Render(log *dispatch.Log) []string {
	ret := make([]string, 0, log.Len())
	for event := range log.All() {
		ret = append(ret, Line(event))
	}
	return ret
}

// Encode renders the log as newline terminated lines
func Encode(log *dispatch.Log) []byte {
	buf := bytes.Buffer{}
	for _, line := range Render(log) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
