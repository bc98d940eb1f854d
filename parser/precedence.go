/*
File    : wisp/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/wisp-lang/wisp/lexer"

// precedence levels, lowest to highest. INDEX sits above CALL to parse
// arr[0](...) and fn()[0] without ambiguity.
const (
	_ int = iota
	LOWEST
	OR      // ||
	AND     // &&
	BITOR   // |
	BITAND  // &
	EQUALS  // == !=
	CMP     // < <= > >=
	SUM     // + -
	PRODUCT // * / %
	PREFIX  // -x !x
	CALL    // fn(x)
	INDEX   // arr[x]
)

var precedences = map[lexer.Kind]int{
	lexer.OR:       OR,
	lexer.AND:      AND,
	lexer.BIT_OR:   BITOR,
	lexer.BIT_AND:  BITAND,
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       CMP,
	lexer.LE:       CMP,
	lexer.GT:       CMP,
	lexer.GE:       CMP,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.STAR:     PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
}
