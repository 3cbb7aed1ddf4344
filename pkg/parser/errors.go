package parser

import "fmt"

// ParseError reports a failed parse. Remaining is the count of unconsumed
// trailing bytes at the deepest failure point, so the failure offset is
// len(Text) - Remaining. Message describes what the parser expected there.
type ParseError struct {
	Text      string
	Remaining int
	Message   string
}

// Position returns the byte offset of the failure within Text.
func (e *ParseError) Position() int {
	return len(e.Text) - e.Remaining
}

func (e *ParseError) Error() string {
	pos := e.Position()
	line, col := 1, 1
	for _, c := range e.Text[:pos] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Sprintf("parse error at %d:%d: expected %s", line, col, e.Message)
}

// IsIncomplete reports whether err is a parse failure at end of input, i.e.
// the source so far is a valid prefix. REPLs use this to prompt for more.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Remaining == 0
}
