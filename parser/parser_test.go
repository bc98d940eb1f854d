/*
File    : wisp/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisp-lang/wisp/ast"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(input)
	program, errs := p.ParseProgram()
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	return program
}

func TestLetStatements(t *testing.T) {
	program := parseProgram(t, `
let x = 5;
let y = true;
let foobar = y;
`)
	require.Len(t, program.Statements, 3)

	names := []string{"x", "y", "foobar"}
	for i, name := range names {
		stmt, ok := program.Statements[i].(*ast.LetStatement)
		require.True(t, ok, "statement %d is not a LetStatement", i)
		assert.Equal(t, "let", stmt.TokenLiteral())
		assert.Equal(t, name, stmt.Name.Value)
		assert.NotNil(t, stmt.Value)
	}
}

func TestLetStatementWithoutInitializer(t *testing.T) {
	program := parseProgram(t, `let x;`)
	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.LetStatement)
	assert.Equal(t, "x", stmt.Name.Value)
	assert.Nil(t, stmt.Value)
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, `
return 5;
return true;
return;
`)
	require.Len(t, program.Statements, 3)
	for i, hasValue := range []bool{true, true, false} {
		stmt, ok := program.Statements[i].(*ast.ReturnStatement)
		require.True(t, ok)
		assert.Equal(t, "return", stmt.TokenLiteral())
		if hasValue {
			assert.NotNil(t, stmt.Value)
		} else {
			assert.Nil(t, stmt.Value)
		}
	}
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, `foobar;`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ident, ok := stmt.Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "foobar", ident.Value)
}

func TestIntegerLiteralExpression(t *testing.T) {
	program := parseProgram(t, `5;`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
}

func TestPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
		value    int64
	}{
		{"!5;", "!", 5},
		{"-15;", "-", 15},
	}
	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		expr, ok := stmt.Expression.(*ast.PrefixExpression)
		require.True(t, ok)
		assert.Equal(t, tt.operator, expr.Operator)
		lit := expr.Right.(*ast.IntegerLiteral)
		assert.Equal(t, tt.value, lit.Value)
	}
}

func TestInfixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		left     int64
		operator string
		right    int64
	}{
		{"5 + 5;", 5, "+", 5},
		{"5 - 5;", 5, "-", 5},
		{"5 * 5;", 5, "*", 5},
		{"5 / 5;", 5, "/", 5},
		{"5 % 5;", 5, "%", 5},
		{"5 > 5;", 5, ">", 5},
		{"5 < 5;", 5, "<", 5},
		{"5 == 5;", 5, "==", 5},
		{"5 != 5;", 5, "!=", 5},
		{"5 <= 5;", 5, "<=", 5},
		{"5 >= 5;", 5, ">=", 5},
	}
	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		expr, ok := stmt.Expression.(*ast.InfixExpression)
		require.True(t, ok)
		assert.Equal(t, tt.operator, expr.Operator)
		assert.Equal(t, tt.left, expr.Left.(*ast.IntegerLiteral).Value)
		assert.Equal(t, tt.right, expr.Right.(*ast.IntegerLiteral).Value)
	}
}

func TestOperatorPrecedenceString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"10 * 10 + 20 * 20 + 100", "(((10 * 10) + (20 * 20)) + 100)"},
		{"!(true && !(10 < 20))", "!((true && !((10 < 20))))"},
		{"a + b * c", "(a + (b * c))"},
		{"a + b + c", "((a + b) + c)"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true == true", "(true == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"a || b && c", "(a || (b && c))"},
		{"a & b | c", "((a & b) | c)"},
	}
	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String(), tt.input)
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, `if (x < y) { x }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.Len(t, expr.Consequence.Statements, 1)
	assert.Nil(t, expr.Alternative)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, `if (x < y) { x } else { y }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.NotNil(t, expr.Alternative)
	require.Len(t, expr.Alternative.Statements, 1)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, `fn(x, y) { x + y; }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	assert.Equal(t, "", fn.Name)
	require.Len(t, fn.Body.Statements, 1)
}

func TestNamedFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, `fn fact(n) { return n; }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	assert.Equal(t, "fact", fn.Name)
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, `add(1, 2 * 3, 4 + 5);`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	ident := expr.Function.(*ast.Identifier)
	assert.Equal(t, "add", ident.Value)
	require.Len(t, expr.Arguments, 3)
}

func TestArrayLiteralParsing(t *testing.T) {
	program := parseProgram(t, `[1, 2 * 2, 3 + 3]`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	arr, ok := stmt.Expression.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestIndexExpressionParsing(t *testing.T) {
	program := parseProgram(t, `myArray[1 + 1]`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.IndexExpression)
	require.True(t, ok)
	ident := idx.Left.(*ast.Identifier)
	assert.Equal(t, "myArray", ident.Value)
	require.NotNil(t, idx.Index)
}

func TestStringLiteralParsing(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello world", lit.Value)
}

func TestParserErrorChain(t *testing.T) {
	p := New(`let 5;`)
	_, errs := p.ParseProgram()
	require.NotEmpty(t, errs)
	// the innermost cause should name the mismatched token.
	assert.Contains(t, errs[0][0].Error(), "expected next token to be")
}

func TestParserReportsMultipleStatementFailures(t *testing.T) {
	p := New(`let 5; let 10;`)
	_, errs := p.ParseProgram()
	assert.Len(t, errs, 2)
}
