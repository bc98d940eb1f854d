/*
File    : wisp/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/wisp-lang/wisp/lexer"
)

// ParseError is one entry in a failure's context chain: a detail
// message paired with the source position it concerns.
type ParseError struct {
	Detail string
	Pos    lexer.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Pos, e.Detail)
}

// ErrorChain is one parse failure's stack of context, ordered
// innermost first. Error prints the entries in that order: the
// innermost failure first, then each enclosing context.
type ErrorChain []*ParseError

func (c ErrorChain) Error() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n  caused by: ")
}

func newParseError(pos lexer.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{Detail: fmt.Sprintf(format, args...), Pos: pos}
}

// wrap appends outer context to an inner failure's chain, keeping
// innermost-to-outermost order.
func wrap(inner ErrorChain, outer *ParseError) ErrorChain {
	return append(append(ErrorChain{}, inner...), outer)
}
