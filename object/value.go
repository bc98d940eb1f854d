/*
File    : wisp/object/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object holds wisp's runtime value model and the lexical
// environment closures capture.
package object

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wisp-lang/wisp/ast"
)

// ValueType tags a Value's concrete kind.
type ValueType string

const (
	IntegerType ValueType = "INTEGER"
	BooleanType ValueType = "BOOLEAN"
	StringType  ValueType = "STRING"
	ArrayType   ValueType = "ARRAY"
	FunctionType ValueType = "FUNCTION"
	ReturnType  ValueType = "RETURN"
)

// Value is anything wisp's evaluator can produce.
type Value interface {
	Type() ValueType
	Inspect() string
}

// Integer is a 64-bit signed integer.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType { return IntegerType }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean is true or false.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BooleanType }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// String is a wisp string value.
type String struct {
	Value string
}

func (s *String) Type() ValueType { return StringType }
func (s *String) Inspect() string { return s.Value }

// Array is an ordered, heterogeneous sequence of values.
type Array struct {
	Elements []Value
}

func (a *Array) Type() ValueType { return ArrayType }
func (a *Array) Inspect() string {
	var out bytes.Buffer
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.Inspect()
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elems, ", "))
	out.WriteString("]")
	return out.String()
}

// Function is a closure: its parameter list, body, and a handle back
// to the environment frame that was active at its definition site.
//
// The frame is referenced through an Arena handle rather than a bare
// pointer so a closure never keeps its defining frame alive on its
// own; resolving the handle after the frame is released fails
// explicitly instead of silently. Name is filled in either by a named
// function literal (`fn add(...) {...}`) or, for an anonymous
// literal, by the let statement it is bound through, purely for
// Inspect's benefit.
type Function struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	EnvHandle  Handle
	Arena      *Arena
}

func (f *Function) Type() ValueType { return FunctionType }
func (f *Function) Inspect() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Value
	}
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("fn %s(%s)", name, strings.Join(params, ", "))
}

// Return wraps the value of a `return` statement so the evaluator can
// tell a produced value apart from a value that should stop statement
// execution as it bubbles up to the nearest function/program boundary.
type Return struct {
	Value Value // nil for a bare `return;`
}

func (r *Return) Type() ValueType { return ReturnType }
func (r *Return) Inspect() string {
	if r.Value == nil {
		return "return"
	}
	return r.Value.Inspect()
}
