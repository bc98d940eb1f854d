/*
File    : wisp/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisp-lang/wisp/object"
	"github.com/wisp-lang/wisp/parser"
)

func mustEval(t *testing.T, input string) object.Value {
	t.Helper()
	p := parser.New(input)
	program, errs := p.ParseProgram()
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	val, err := New().Eval(program)
	require.Nil(t, err, "unexpected eval error: %v", err)
	return val
}

func mustEvalErr(t *testing.T, input string) *Error {
	t.Helper()
	p := parser.New(input)
	program, errs := p.ParseProgram()
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	_, err := New().Eval(program)
	require.NotNil(t, err, "expected an eval error for %q", input)
	return err
}

func TestIntegerArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5 + 5 + 5 + 5 - 10", 10},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"10 % 3", 1},
		{"5 & 3", 1},
		{"5 | 2", 7},
		{"!5", ^int64(5)},
	}
	for _, tt := range tests {
		val := mustEval(t, tt.input)
		require.IsType(t, &object.Integer{}, val)
		assert.Equal(t, tt.expected, val.(*object.Integer).Value, tt.input)
	}
}

func TestPrecedenceLaw(t *testing.T) {
	assert.Equal(t, int64(14), mustEval(t, "2 + 3 * 4").(*object.Integer).Value)
	assert.Equal(t, int64(14), mustEval(t, "2 * 3 + 4 * 2").(*object.Integer).Value)
}

func TestBooleanExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"true == true", true},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"true && false", false},
		{"true || false", true},
		{"true & false", false},
		{"true | false", true},
		{"!true", false},
		{"!!true", true},
		{`"Hello" == "Hello"`, true},
		{`"Hello" != "World"`, true},
	}
	for _, tt := range tests {
		val := mustEval(t, tt.input)
		require.IsType(t, &object.Boolean{}, val, tt.input)
		assert.Equal(t, tt.expected, val.(*object.Boolean).Value, tt.input)
	}
}

func TestStringConcatenation(t *testing.T) {
	val := mustEval(t, `"foo" + " " + "bar"`)
	require.IsType(t, &object.String{}, val)
	assert.Equal(t, "foo bar", val.(*object.String).Value)
}

func TestIfElseExpressions(t *testing.T) {
	val := mustEval(t, "if (1 < 2) { 10 } else { 20 }")
	require.IsType(t, &object.Integer{}, val)
	assert.Equal(t, int64(10), val.(*object.Integer).Value)

	val = mustEval(t, "if (1 > 2) { 10 }")
	assert.Nil(t, val)
}

func TestLetStatements(t *testing.T) {
	val := mustEval(t, "let a = 100; let b = a + 1; let c = b + 20; a+b+c")
	require.IsType(t, &object.Integer{}, val)
	assert.Equal(t, int64(322), val.(*object.Integer).Value)
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{`
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }
  return 1;
}
`, 10},
	}
	for _, tt := range tests {
		val := mustEval(t, tt.input)
		require.IsType(t, &object.Integer{}, val, tt.input)
		assert.Equal(t, tt.expected, val.(*object.Integer).Value, tt.input)
	}
}

func TestClosures(t *testing.T) {
	val := mustEval(t, `
let createAdder = fn(x){ let adder = fn(y){ return y + x; }; return adder; }
let addTen = createAdder(10);
addTen(10)
`)
	require.IsType(t, &object.Integer{}, val)
	assert.Equal(t, int64(20), val.(*object.Integer).Value)
}

func TestLexicalScopingLaw(t *testing.T) {
	val := mustEval(t, `
let outer = fn(x){ fn(y){ x + y } };
let once = outer(3);
once(4)
`)
	require.IsType(t, &object.Integer{}, val)
	assert.Equal(t, int64(7), val.(*object.Integer).Value)
}

func TestNamedFunctionRecursion(t *testing.T) {
	val := mustEval(t, `
let fact = fn fact(n) {
  if (n < 2) { return 1; }
  return n * fact(n - 1);
};
fact(5)
`)
	require.IsType(t, &object.Integer{}, val)
	assert.Equal(t, int64(120), val.(*object.Integer).Value)
}

func TestArrays(t *testing.T) {
	val := mustEval(t, "let a = [1, 2 * 2, 3 + 3]; a[1]")
	require.IsType(t, &object.Integer{}, val)
	assert.Equal(t, int64(4), val.(*object.Integer).Value)
}

func TestErrorScenarios(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"let foo;", LetStatementValueIsNone},
		{"foo", IdentifierNotFound},
		{"5 + false", NotSameType},
		{"100 / 0", DivideWithZero},
		{"100 % 0", DivideWithZero},
		{"fn(x,y){x+y}(1,2,3)", FunctionArgLengthNotMatched},
		{"if (1) { true }", NotABoolean},
		{"5()", NotAFunction},
		{`"a" - "b"`, InvalidStringInfixOperation},
		{"true - false", InvalidBoolInfixOperation},
		{"5 % true", NotSameType},
		{"[1,2,3][5]", IndexOutOfRange},
		{"[1,2,3][-1]", IndexIsNegative},
		{`[1,2,3]["x"]`, IndexIsNotAInt},
		{"1[0]", NotArray},
	}
	for _, tt := range tests {
		err := mustEvalErr(t, tt.input)
		assert.Equal(t, tt.kind, err.Kind, tt.input)
	}
}

func TestEnvironmentHasDropped(t *testing.T) {
	ev := New()

	define := parser.New(`let f = fn(x) { x };`)
	defProgram, errs := define.ParseProgram()
	require.Empty(t, errs)
	_, err := ev.Eval(defProgram)
	require.Nil(t, err)

	fnVal, ok := ev.Global.Get("f")
	require.True(t, ok)
	fn := fnVal.(*object.Function)
	ev.Arena.Release(fn.EnvHandle)

	call := parser.New(`f(1)`)
	callProgram, errs := call.ParseProgram()
	require.Empty(t, errs)
	_, callErr := ev.Eval(callProgram)
	require.NotNil(t, callErr)
	assert.Equal(t, EnvironmentHasDropped, callErr.Kind)
}
