// Package ingest reads process records in the line format
// id,arrival,priority,burst,ram,cpu.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/cpusched/model/process"
	"github.com/viant/parsly"
)

var (
	// ErrMalformedRecord is matched by every *MalformedRecordError
	ErrMalformedRecord = errors.New("ingest: malformed record")
	// ErrTooManyRecords is returned when the input exceeds the record cap
	ErrTooManyRecords = errors.New("ingest: too many records")
)

// MalformedRecordError describes a line that does not follow the record format
type MalformedRecordError struct {
	Line  int
	Text  string
	Cause error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("ingest: malformed record at line %d %q: %v", e.Line, e.Text, e.Cause)
}

func (e *MalformedRecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Cause}
}

// numeric fields in record order, after the id
var numericFields = []string{"arrival", "priority", "burst", "ram", "cpu"}

// Parse parses all records; blank lines are skipped.
func Parse(data []byte) ([]*process.Process, error) {
	var ret []*process.Process
	lines := bytes.Split(data, []byte{'\n'})
	for i, line := range lines {
		line = bytes.TrimRight(line, "\r")
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		record, err := ParseRecord(line)
		if err != nil {
			return nil, &MalformedRecordError{Line: i + 1, Text: string(line), Cause: err}
		}
		ret = append(ret, record)
	}
	return ret, nil
}

// ParseRecord parses a single record line
func ParseRecord(line []byte) (*process.Process, error) {
	cursor := parsly.NewCursor("", line, 0)

	matched := cursor.MatchAfterOptional(whitespaceToken, fieldToken)
	if matched.Code != fieldToken.Code {
		return nil, cursor.NewError(fieldToken)
	}
	id := strings.TrimSpace(matched.Text(cursor))
	if id == "" {
		return nil, fmt.Errorf("empty id")
	}

	values := make([]int, len(numericFields))
	for i, name := range numericFields {
		matched = cursor.MatchAfterOptional(whitespaceToken, commaToken)
		if matched.Code != commaToken.Code {
			return nil, cursor.NewError(commaToken)
		}
		matched = cursor.MatchAfterOptional(whitespaceToken, integerToken)
		if matched.Code != integerToken.Code {
			return nil, fmt.Errorf("%s: %w", name, cursor.NewError(integerToken))
		}
		value, err := strconv.Atoi(matched.Text(cursor))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		values[i] = value
	}

	cursor.MatchOne(whitespaceToken)
	if cursor.Pos < cursor.InputSize {
		return nil, fmt.Errorf("unexpected trailing input %q", line[cursor.Pos:])
	}

	class, err := process.ParseClass(values[1])
	if err != nil {
		return nil, err
	}
	return &process.Process{
		ID:      id,
		Arrival: values[0],
		Class:   class,
		Burst:   values[2],
		RAM:     values[3],
		CPURate: values[4],
	}, nil
}
