package notation

import (
	"fmt"
	"strings"
)

// SyntaxError reports the offending token, where it sits in the source
// (byte offset plus 1-based line/column) and a hint about what went wrong.
// Callers of the compiler are expected to pass it through unchanged.
type SyntaxError struct {
	Token  string
	Offset int
	Line   int
	Col    int
	Hint   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %v, col %v near %q: %v", e.Line, e.Col, e.Token, e.Hint)
}

const hintBareNumber = "numeric literal without a modifier prefix; numbers attach to elements as d<n> (duration), v<n> (velocity) or u<n> (time until next)"

const hintBareDot = "bare decimal point; write a duration like 0.5 or 1/2"

func hintUnexpected(ch byte) string {
	return fmt.Sprintf("unexpected character %q; expected a note (c3), rest (r), chord ( c3 e3 ), grouping { ... } or repetition x2{ ... }", string(ch))
}

func syntaxErrorAt(src string, offset int, token, hint string) *SyntaxError {
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return &SyntaxError{
		Token:  token,
		Offset: offset,
		Line:   line,
		Col:    col,
		Hint:   hint,
	}
}
