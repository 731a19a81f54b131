package dispatch

import "iter"

// Log is an append-only, ordered sequence of events. The order of Append
// calls is preserved and is the order the sink renders.
type Log struct {
	events []*Event
}

// NewLog creates an empty log
func NewLog() *Log {
	return &Log{}
}

// Append adds an event at the end of the log
func (l *Log) Append(event *Event) {
	l.events = append(l.events, event)
}

// Len returns the number of events
func (l *Log) Len() int {
	return len(l.events)
}

// Events returns a copy of all events
func (l *Log) Events() []*Event {
	return append([]*Event(nil), l.events...)
}

// All iterates over events in production order
func (l *Log) All() iter.Seq[*Event] {
	return func(yield func(*Event) bool) {
		for _, event := range l.events {
			if !yield(event) {
				return
			}
		}
	}
}

// Of returns events of the supplied process
func (l *Log) Of(processID string) []*Event {
	var ret []*Event
	for _, event := range l.events {
		if event.ProcessID == processID {
			ret = append(ret, event)
		}
	}
	return ret
}

// Count returns the number of events of the supplied kind
func (l *Log) Count(kind Kind) int {
	count := 0
	for _, event := range l.events {
		if event.Kind == kind {
			count++
		}
	}
	return count
}

// Kinds returns the event kinds in production order
func (l *Log) Kinds() []Kind {
	ret := make([]Kind, len(l.events))
	for i, event := range l.events {
		ret[i] = event.Kind
	}
	return ret
}
