/*
File    : wisp/eval/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/object"
)

func (e *Evaluator) evalStatement(stmt ast.Statement, f frame) (object.Value, *Error) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return e.evalLetStatement(s, f)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(s, f)
	case *ast.ExpressionStatement:
		return e.evalExpression(s.Expression, f)
	case *ast.BlockStatement:
		return e.evalBlockStatement(s, f)
	}
	return nil, newError(EvaluationOfExpressionIsNone, stmt.Pos(), "unrecognized statement %T", stmt)
}

func (e *Evaluator) evalLetStatement(s *ast.LetStatement, f frame) (object.Value, *Error) {
	if s.Value == nil {
		return nil, newError(LetStatementValueIsNone, s.Pos(), "let %s has no initializer", s.Name.Value)
	}
	val, err := e.require(s.Value, f)
	if err != nil {
		return nil, err
	}
	// A named function literal already carries its own name; an
	// anonymous one bound through `let` gets stamped with the
	// binding's name, which Inspect shows. Recursion through that name
	// relies on the binding below, not on the stamp.
	if fn, ok := val.(*object.Function); ok && fn.Name == "" {
		fn.Name = s.Name.Value
	}
	f.env.Set(s.Name.Value, val)
	return val, nil
}

func (e *Evaluator) evalReturnStatement(s *ast.ReturnStatement, f frame) (object.Value, *Error) {
	if s.Value == nil {
		return &object.Return{Value: nil}, nil
	}
	val, err := e.require(s.Value, f)
	if err != nil {
		return nil, err
	}
	return &object.Return{Value: val}, nil
}

// evalBlockStatement runs statements in a fresh child frame. A
// *object.Return produced by any statement short-circuits the block
// and is propagated UNCHANGED (not unwrapped) — only Program and
// function Call unwrap a Return marker. Unwrapping at every nested
// block boundary would turn a return inside a nested `if` into a
// plain value before the enclosing function body's statement loop
// ever saw it, letting execution fall through to the next statement
// instead of stopping.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, f frame) (object.Value, *Error) {
	inner := e.child(f)
	var result object.Value
	for _, stmt := range block.Statements {
		val, err := e.evalStatement(stmt, inner)
		if err != nil {
			return nil, err
		}
		if _, ok := val.(*object.Return); ok {
			return val, nil
		}
		result = val
	}
	return result, nil
}
