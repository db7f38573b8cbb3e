package parser

import (
	"fmt"
	"strings"
)

// ErrorKind identifies a class of parse failure.
type ErrorKind int

const (
	// NoSuchSyntax indicates an expected single-character token was not
	// found at the expected position.
	NoSuchSyntax ErrorKind = iota

	// InvalidIdentifier indicates an identifier was required but no
	// alphabetic characters were present at the position.
	InvalidIdentifier

	// UnknownProperty indicates a well-formed declaration name that is
	// not a recognized property.
	UnknownProperty
)

func (k ErrorKind) String() string {
	switch k {
	case NoSuchSyntax:
		return "no such syntax"
	case InvalidIdentifier:
		return "invalid identifier"
	case UnknownProperty:
		return "unknown property"
	}
	return "unknown"
}

// Pos specifies a location within an input buffer. Line is 1-based,
// Col is the 0-based column within that line, and Offset is the byte
// offset from the start of the input.
type Pos struct {
	Line   int
	Col    int
	Offset int
}

// Error represents a syntax error and the diagnostic pointing at it.
// Src holds the source text of the offending line.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     Pos
	Src     string
}

// Error returns the formatted diagnostic: a header naming the line,
// column, and message, then the offending source line, then a caret
// under the offending column.
func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %s\n%s\n%s^",
		e.Pos.Line, e.Pos.Col, e.Message, e.Src, strings.Repeat(" ", e.Pos.Col))
}

// position computes the line, column, and enclosing line text for a
// byte offset by scanning the input from the start. It depends only
// on (input, offset), never on parser state, so it reports correctly
// no matter how deep in the grammar the failure happened.
//
// Newlines strictly before the offset advance the line counter; the
// scan ends at the first newline at or after the offset, which bounds
// the printed line. An offset sitting on a newline is therefore
// attributed to the line that newline terminates. An offset on the
// last line, or at end of input, is bounded by len(input).
func position(input string, offset int) (Pos, string) {
	line, lineStart := 1, 0
	lineEnd := len(input)
	found := false
	for i := 0; i < len(input); i++ {
		if i == offset {
			found = true
		}
		if input[i] == '\n' {
			if found {
				lineEnd = i
				break
			}
			line++
			lineStart = i + 1
		}
	}
	return Pos{Line: line, Col: offset - lineStart, Offset: offset}, input[lineStart:lineEnd]
}
