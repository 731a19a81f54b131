package ingest

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	fieldCode
	commaCode
	integerCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	fieldToken      = parsly.NewToken(fieldCode, "Identifier", &fieldMatcher{})
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
	integerToken    = parsly.NewToken(integerCode, "Integer", &integerMatcher{})
)

// fieldMatcher matches everything up to the next comma
type fieldMatcher struct{}

func (m *fieldMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if cursor.Input[i] == ',' {
			break
		}
		matched++
	}
	return matched
}

// integerMatcher matches an unsigned decimal number
type integerMatcher struct{}

func (m *integerMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if !isDigit(cursor.Input[i]) {
			break
		}
		matched++
	}
	return matched
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
