/*
File    : wisp/eval/operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/object"
)

func (e *Evaluator) evalPrefixExpression(pe *ast.PrefixExpression, f frame) (object.Value, *Error) {
	right, err := e.evalExpression(pe.Right, f)
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, newError(RightExpressionIsNone, pe.Pos(), "%s", pe.Right.String())
	}

	switch operand := right.(type) {
	case *object.Integer:
		switch pe.Operator {
		case "-":
			return &object.Integer{Value: -operand.Value}, nil
		case "!":
			return &object.Integer{Value: ^operand.Value}, nil
		default:
			return nil, newError(InvalidIntegerPrefixOperation, pe.Pos(), "%s", pe.Operator)
		}
	case *object.Boolean:
		switch pe.Operator {
		case "!":
			return &object.Boolean{Value: !operand.Value}, nil
		default:
			return nil, newError(InvalidBoolPrefixOperation, pe.Pos(), "%s", pe.Operator)
		}
	default:
		return nil, newError(InvalidPrefixOperationTarget, pe.Pos(), "%s %s", right.Type(), pe.Operator)
	}
}

func (e *Evaluator) evalInfixExpression(ie *ast.InfixExpression, f frame) (object.Value, *Error) {
	left, err := e.evalExpression(ie.Left, f)
	if err != nil {
		return nil, err
	}
	if left == nil {
		return nil, newError(LeftExpressionIsNone, ie.Pos(), "%s", ie.Left.String())
	}
	right, err := e.evalExpression(ie.Right, f)
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, newError(RightExpressionIsNone, ie.Pos(), "%s", ie.Right.String())
	}

	if left.Type() != right.Type() {
		return nil, newError(NotSameType, ie.Pos(), "%s %s %s", left.Type(), ie.Operator, right.Type())
	}

	switch l := left.(type) {
	case *object.Integer:
		r := right.(*object.Integer)
		return evalIntegerInfix(ie, l, r)
	case *object.Boolean:
		r := right.(*object.Boolean)
		return evalBooleanInfix(ie, l, r)
	case *object.String:
		r := right.(*object.String)
		return evalStringInfix(ie, l, r)
	default:
		return nil, newError(InvalidInfixOperationTarget, ie.Pos(), "%s %s", left.Type(), ie.Operator)
	}
}

func evalIntegerInfix(ie *ast.InfixExpression, l, r *object.Integer) (object.Value, *Error) {
	switch ie.Operator {
	case "+":
		return &object.Integer{Value: l.Value + r.Value}, nil
	case "-":
		return &object.Integer{Value: l.Value - r.Value}, nil
	case "*":
		return &object.Integer{Value: l.Value * r.Value}, nil
	case "/":
		if r.Value == 0 {
			return nil, newError(DivideWithZero, ie.Pos(), "%d / 0", l.Value)
		}
		return &object.Integer{Value: l.Value / r.Value}, nil
	case "%":
		if r.Value == 0 {
			return nil, newError(DivideWithZero, ie.Pos(), "%d %% 0", l.Value)
		}
		return &object.Integer{Value: l.Value % r.Value}, nil
	case "<":
		return &object.Boolean{Value: l.Value < r.Value}, nil
	case "<=":
		return &object.Boolean{Value: l.Value <= r.Value}, nil
	case ">":
		return &object.Boolean{Value: l.Value > r.Value}, nil
	case ">=":
		return &object.Boolean{Value: l.Value >= r.Value}, nil
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}, nil
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}, nil
	case "&":
		return &object.Integer{Value: l.Value & r.Value}, nil
	case "|":
		return &object.Integer{Value: l.Value | r.Value}, nil
	default:
		return nil, newError(InvalidIntegerInfixOperation, ie.Pos(), "%s", ie.Operator)
	}
}

// evalBooleanInfix treats & as && and | as || on booleans: both the
// logical and bitwise spellings are accepted on boolean operands.
func evalBooleanInfix(ie *ast.InfixExpression, l, r *object.Boolean) (object.Value, *Error) {
	switch ie.Operator {
	case "&&", "&":
		return &object.Boolean{Value: l.Value && r.Value}, nil
	case "||", "|":
		return &object.Boolean{Value: l.Value || r.Value}, nil
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}, nil
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}, nil
	default:
		return nil, newError(InvalidBoolInfixOperation, ie.Pos(), "%s", ie.Operator)
	}
}

func evalStringInfix(ie *ast.InfixExpression, l, r *object.String) (object.Value, *Error) {
	switch ie.Operator {
	case "+":
		return &object.String{Value: l.Value + r.Value}, nil
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}, nil
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}, nil
	default:
		return nil, newError(InvalidStringInfixOperation, ie.Pos(), "%s", ie.Operator)
	}
}
