/*
File    : wisp/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks a wisp ast.Program against a chained lexical
// object.Environment and produces runtime object.Value results. It is
// a pure recursive tree walk: no suspension points, no goroutines, no
// recovery from a failed sub-evaluation — the first Error aborts the
// whole walk and is returned to the caller unchanged.
package eval

import (
	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/object"
)

// Evaluator owns the Arena every Environment frame this walk creates
// is registered in, so Function values can capture a Handle back to
// their defining frame instead of a bare pointer.
type Evaluator struct {
	Arena  *object.Arena
	Global *object.Environment
	global object.Handle
}

// New returns an Evaluator with a fresh global frame, suitable for one
// REPL session or one file run.
func New() *Evaluator {
	arena := object.NewArena()
	global := object.NewEnvironment()
	return &Evaluator{
		Arena:  arena,
		Global: global,
		global: arena.Put(global),
	}
}

// Eval runs the Program against the Evaluator's global frame.
func (e *Evaluator) Eval(program *ast.Program) (object.Value, *Error) {
	return e.evalProgram(program)
}

// frame is an (Environment, Handle) pair threaded through the walk so
// every new child frame gets registered in the Arena before any
// closure can capture it.
type frame struct {
	env    *object.Environment
	handle object.Handle
}

func (e *Evaluator) globalFrame() frame {
	return frame{env: e.Global, handle: e.global}
}

func (e *Evaluator) child(f frame) frame {
	child := object.NewEnclosedEnvironment(f.env)
	return frame{env: child, handle: e.Arena.Put(child)}
}

// evalProgram evaluates top-level statements in order. A *object.Return
// produced by any statement halts the program and yields its wrapped
// value (or absence) as the program's result — the one other boundary
// besides a function Call that unwraps a Return marker.
func (e *Evaluator) evalProgram(program *ast.Program) (object.Value, *Error) {
	f := e.globalFrame()
	var result object.Value
	for _, stmt := range program.Statements {
		val, err := e.evalStatement(stmt, f)
		if err != nil {
			return nil, err
		}
		if ret, ok := val.(*object.Return); ok {
			return ret.Value, nil
		}
		result = val
	}
	return result, nil
}

// require evaluates expr and turns a nil (no-value) result into the
// EvaluationOfExpressionIsNone error — used everywhere a construct
// needs a value to keep going (let's initializer, a return value,
// array elements, call arguments). Operator operands report
// LeftExpressionIsNone/RightExpressionIsNone instead.
func (e *Evaluator) require(expr ast.Expression, f frame) (object.Value, *Error) {
	val, err := e.evalExpression(expr, f)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, newError(EvaluationOfExpressionIsNone, expr.Pos(), "%s", expr.String())
	}
	return val, nil
}
