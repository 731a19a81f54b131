package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/cpusched/model/process"
)

func TestParseRecord(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    *process.Process
		shouldError bool
	}{
		{
			description: "basic record",
			input:       "P1,0,2,20,100,1",
			expected:    &process.Process{ID: "P1", Arrival: 0, Class: process.ClassMedium, Burst: 20, RAM: 100, CPURate: 1},
		},
		{
			description: "whitespace around fields",
			input:       "  P2 , 5,\t0 ,7, 64 ,3  ",
			expected:    &process.Process{ID: "P2", Arrival: 5, Class: process.ClassZero, Burst: 7, RAM: 64, CPURate: 3},
		},
		{
			description: "id with inner space",
			input:       "job 1,1,3,40,10,1",
			expected:    &process.Process{ID: "job 1", Arrival: 1, Class: process.ClassLow, Burst: 40, RAM: 10, CPURate: 1},
		},
		{
			description: "missing field",
			input:       "P1,0,2,20,100",
			shouldError: true,
		},
		{
			description: "extra field",
			input:       "P1,0,2,20,100,1,9",
			shouldError: true,
		},
		{
			description: "non numeric burst",
			input:       "P1,0,2,x,100,1",
			shouldError: true,
		},
		{
			description: "negative ram",
			input:       "P1,0,2,20,-100,1",
			shouldError: true,
		},
		{
			description: "trailing garbage",
			input:       "P1,0,2,20,100,1abc",
			shouldError: true,
		},
		{
			description: "empty id",
			input:       " ,0,2,20,100,1",
			shouldError: true,
		},
		{
			description: "priority out of range",
			input:       "P1,0,4,20,100,1",
			shouldError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result, err := ParseRecord([]byte(tc.input))
			if tc.shouldError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tc.expected, result)
		})
	}
}

func TestParse(t *testing.T) {
	records, err := Parse([]byte("A,0,1,30,10,1\r\n\nB,0,1,10,10,1\n   \nC,0,1,20,10,1"))
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "A", records[0].ID)
	assert.Equal(t, "C", records[2].ID)

	_, err = Parse([]byte("A,0,1,30,10,1\nB,0,1,ten,10,1\n"))
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	var malformed *MalformedRecordError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, "B,0,1,ten,10,1", malformed.Text)

	_, err = Parse([]byte("A,0,9,30,10,1\n"))
	assert.True(t, errors.Is(err, process.ErrInvalidClass))

	records, err = Parse(nil)
	assert.NoError(t, err)
	assert.Empty(t, records)
}
