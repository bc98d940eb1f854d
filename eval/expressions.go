/*
File    : wisp/eval/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/object"
)

func (e *Evaluator) evalExpression(expr ast.Expression, f frame) (object.Value, *Error) {
	switch n := expr.(type) {
	case *ast.Identifier:
		return e.evalIdentifier(n, f)
	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}, nil
	case *ast.BooleanLiteral:
		return &object.Boolean{Value: n.Value}, nil
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}, nil
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, f)
	case *ast.FunctionLiteral:
		return e.evalFunctionLiteral(n, f)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n, f)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n, f)
	case *ast.IfExpression:
		return e.evalIfExpression(n, f)
	case *ast.CallExpression:
		return e.evalCallExpression(n, f)
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, f)
	case *ast.BlockStatement:
		return e.evalBlockStatement(n, f)
	}
	return nil, newError(EvaluationOfExpressionIsNone, expr.Pos(), "unrecognized expression %T", expr)
}

func (e *Evaluator) evalIdentifier(id *ast.Identifier, f frame) (object.Value, *Error) {
	if val, ok := f.env.Get(id.Value); ok {
		return val, nil
	}
	return nil, newError(IdentifierNotFound, id.Pos(), "%s", id.Value)
}

func (e *Evaluator) evalArrayLiteral(lit *ast.ArrayLiteral, f frame) (object.Value, *Error) {
	elems := make([]object.Value, len(lit.Elements))
	for i, elExpr := range lit.Elements {
		val, err := e.require(elExpr, f)
		if err != nil {
			return nil, err
		}
		elems[i] = val
	}
	return &object.Array{Elements: elems}, nil
}

func (e *Evaluator) evalFunctionLiteral(lit *ast.FunctionLiteral, f frame) (object.Value, *Error) {
	fn := &object.Function{
		Name:       lit.Name,
		Parameters: lit.Parameters,
		Body:       lit.Body,
		EnvHandle:  f.handle,
		Arena:      e.Arena,
	}
	if lit.Name != "" {
		f.env.Set(lit.Name, fn)
	}
	return fn, nil
}

func (e *Evaluator) evalIfExpression(ie *ast.IfExpression, f frame) (object.Value, *Error) {
	cond, err := e.evalExpression(ie.Condition, f)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, newError(ConditionIsNone, ie.Pos(), "%s", ie.Condition.String())
	}
	b, ok := cond.(*object.Boolean)
	if !ok {
		return nil, newError(NotABoolean, ie.Pos(), "%s", cond.Inspect())
	}
	if b.Value {
		return e.evalBlockStatement(ie.Consequence, f)
	}
	if ie.Alternative != nil {
		return e.evalBlockStatement(ie.Alternative, f)
	}
	return nil, nil
}

func (e *Evaluator) evalCallExpression(ce *ast.CallExpression, f frame) (object.Value, *Error) {
	calleeVal, err := e.evalExpression(ce.Function, f)
	if err != nil {
		return nil, err
	}
	if calleeVal == nil {
		return nil, newError(FunctionIsNone, ce.Pos(), "%s", ce.Function.String())
	}
	fn, ok := calleeVal.(*object.Function)
	if !ok {
		return nil, newError(NotAFunction, ce.Pos(), "%s", calleeVal.Inspect())
	}

	args := make([]object.Value, len(ce.Arguments))
	for i, argExpr := range ce.Arguments {
		val, err := e.require(argExpr, f)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	if len(args) != len(fn.Parameters) {
		return nil, newError(FunctionArgLengthNotMatched, ce.Pos(),
			"expected %d, got %d", len(fn.Parameters), len(args))
	}

	definingEnv, ok := fn.Arena.Get(fn.EnvHandle)
	if !ok {
		return nil, newError(EnvironmentHasDropped, ce.Pos(), "%s", fn.Inspect())
	}

	callFrame := e.child(frame{env: definingEnv, handle: fn.EnvHandle})
	for i, param := range fn.Parameters {
		callFrame.env.Set(param.Value, args[i])
	}

	result, evalErr := e.evalBlockStatement(fn.Body, callFrame)
	if evalErr != nil {
		return nil, evalErr
	}
	if ret, ok := result.(*object.Return); ok {
		return ret.Value, nil
	}
	return result, nil
}

func (e *Evaluator) evalIndexExpression(ix *ast.IndexExpression, f frame) (object.Value, *Error) {
	leftVal, err := e.evalExpression(ix.Left, f)
	if err != nil {
		return nil, err
	}
	if leftVal == nil {
		return nil, newError(ArrayIsNone, ix.Pos(), "%s", ix.Left.String())
	}
	arr, ok := leftVal.(*object.Array)
	if !ok {
		return nil, newError(NotArray, ix.Pos(), "%s", leftVal.Inspect())
	}

	idxVal, err := e.evalExpression(ix.Index, f)
	if err != nil {
		return nil, err
	}
	if idxVal == nil {
		return nil, newError(IndexIsNotAInt, ix.Pos(), "%s", ix.Index.String())
	}
	idx, ok := idxVal.(*object.Integer)
	if !ok {
		return nil, newError(IndexIsNotAInt, ix.Pos(), "%s", idxVal.Inspect())
	}
	if idx.Value < 0 {
		return nil, newError(IndexIsNegative, ix.Pos(), "%d", idx.Value)
	}
	if idx.Value >= int64(len(arr.Elements)) {
		return nil, newError(IndexOutOfRange, ix.Pos(), "len=%d got=%d", len(arr.Elements), idx.Value)
	}
	return arr.Elements[idx.Value], nil
}
