/*
File    : wisp/eval/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/wisp-lang/wisp/lexer"
)

// Kind is the closed set of ways evaluation can fail.
type Kind string

const (
	LetStatementValueIsNone      Kind = "LetStatementValueIsNone"
	EvaluationOfExpressionIsNone Kind = "EvaluationOfExpressionIsNone"
	LeftExpressionIsNone         Kind = "LeftExpressionIsNone"
	RightExpressionIsNone        Kind = "RightExpressionIsNone"
	NotABoolean                  Kind = "NotABoolean"
	NotAFunction                 Kind = "NotAFunction"
	ConditionIsNone              Kind = "ConditionIsNone"
	FunctionIsNone               Kind = "FunctionIsNone"
	IdentifierNotFound           Kind = "IdentifierNotFound"
	NotSameType                  Kind = "NotSameType"
	DivideWithZero               Kind = "DivideWithZero"
	FunctionArgLengthNotMatched  Kind = "FunctionArgLengthNotMatched"
	InvalidPrefixOperationTarget Kind = "InvalidPrefixOperationTarget"
	InvalidInfixOperationTarget  Kind = "InvalidInfixOperationTarget"
	InvalidIntegerInfixOperation Kind = "InvalidIntegerInfixOperation"
	InvalidIntegerPrefixOperation Kind = "InvalidIntegerPrefixOperation"
	InvalidBoolInfixOperation    Kind = "InvalidBoolInfixOperation"
	InvalidBoolPrefixOperation   Kind = "InvalidBoolPrefixOperation"
	InvalidStringInfixOperation  Kind = "InvalidStringInfixOperation"
	EnvironmentHasDropped        Kind = "EnvironmentHasDropped"
	ArrayIsNone                  Kind = "ArrayIsNone"
	NotArray                     Kind = "NotArray"
	IndexIsNotAInt               Kind = "IndexIsNotAInt"
	IndexIsNegative               Kind = "IndexIsNegative"
	IndexOutOfRange              Kind = "IndexOutOfRange"
)

// Error is the one error type the evaluator produces. Detail carries
// the operand snapshot a Kind calls for (a value's Inspect(), an
// identifier name, an operator) formatted into a human-readable
// message; Pos is the position of the AST node being evaluated when
// the failure was detected.
type Error struct {
	Kind   Kind
	Detail string
	Pos    lexer.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Pos, e.Kind, e.Detail)
}

func newError(kind Kind, pos lexer.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Pos: pos}
}
