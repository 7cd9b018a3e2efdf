// Package script reads the loosely typed key/value notation used by the game's
// data files into an ordered document tree.
//
// A document is an Object: an ordered list of fields where keys may repeat.
// Callers pick the merge semantics per field with First, Last or All. Values
// are untyped until read; the typed readers fail with a *ShapeError when the
// stored shape does not match the request.
package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the stored shape of a Value.
type Kind int

const (
	// KindScalar is a bare or quoted token.
	KindScalar Kind = iota
	// KindBlock is a brace-delimited container of fields and/or items.
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Operator is the relation written between a key and its value.
type Operator string

const (
	OpEqual        Operator = "="
	OpLess         Operator = "<"
	OpGreater      Operator = ">"
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
	OpNotEqual     Operator = "!="
	OpExists       Operator = "?="
)

// Value is one untyped value in the tree.
type Value struct {
	kind   Kind
	text   string
	quoted bool
	tag    string
	block  *Object
}

// Scalar builds a scalar value. It is mostly useful in tests.
func Scalar(text string) Value {
	return Value{kind: KindScalar, text: text}
}

// Quoted builds a quoted scalar value.
func Quoted(text string) Value {
	return Value{kind: KindScalar, text: text, quoted: true}
}

// Block wraps an object as a value.
func Block(obj *Object) Value {
	if obj == nil {
		obj = &Object{}
	}
	return Value{kind: KindBlock, block: obj}
}

// Kind reports the stored shape.
func (v Value) Kind() Kind { return v.kind }

// IsBlock reports whether the value is a brace-delimited container.
func (v Value) IsBlock() bool { return v.kind == KindBlock }

// Quoted reports whether a scalar was written inside double quotes.
func (v Value) Quoted() bool { return v.quoted }

// Tag returns the token written before a block value, as in "rgb { 1 2 3 }".
func (v Value) Tag() string { return v.tag }

// Raw returns the scalar text, or "" for blocks.
func (v Value) Raw() string {
	if v.kind != KindScalar {
		return ""
	}
	return v.text
}

// Text reads a scalar value as a string.
func (v Value) Text() (string, error) {
	if v.kind != KindScalar {
		return "", &ShapeError{Want: "string", Got: v.kind}
	}
	return v.text, nil
}

// Object reads the value as an object. Empty blocks and blocks holding both
// fields and items read successfully; item-only blocks do not.
func (v Value) Object() (*Object, error) {
	if v.kind != KindBlock {
		return nil, &ShapeError{Want: "object", Got: v.kind}
	}
	if len(v.block.fields) == 0 && len(v.block.items) > 0 {
		return nil, &ShapeError{Want: "object", Got: v.kind, Detail: "block holds only bare items"}
	}
	return v.block, nil
}

// Array reads the bare items of a block.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindBlock {
		return nil, &ShapeError{Want: "array", Got: v.kind}
	}
	if len(v.block.items) == 0 && len(v.block.fields) > 0 {
		return nil, &ShapeError{Want: "array", Got: v.kind, Detail: "block holds only fields"}
	}
	return append([]Value(nil), v.block.items...), nil
}

// Strings reads the bare items of a block as strings, skipping nested blocks.
func (v Value) Strings() ([]string, error) {
	items, err := v.Array()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, err := item.Text(); err == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

// Float reads the value as a signed decimal number.
func (v Value) Float() (float64, error) {
	s, err := v.Text()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
	if err != nil {
		return 0, &ShapeError{Want: "number", Got: v.kind, Detail: fmt.Sprintf("%q", s)}
	}
	return f, nil
}

// Uint reads the value as an unsigned integer.
func (v Value) Uint() (uint64, error) {
	s, err := v.Text()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ShapeError{Want: "unsigned integer", Got: v.kind, Detail: fmt.Sprintf("%q", s)}
	}
	return n, nil
}

// Bool reads yes/no.
func (v Value) Bool() (bool, error) {
	s, err := v.Text()
	if err != nil {
		return false, err
	}
	switch s {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, &ShapeError{Want: "yes/no", Got: v.kind, Detail: fmt.Sprintf("%q", s)}
	}
}

// ShapeError reports a value read with the wrong type.
type ShapeError struct {
	Want   string
	Got    Kind
	Detail string
}

func (e *ShapeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("expected %s, got %s: %s", e.Want, e.Got, e.Detail)
	}
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// FieldError is a field skipped because its value could not be read.
type FieldError struct {
	Key  string
	Line int
	Err  error
}

// NewFieldError records a failed read of f.
func NewFieldError(f Field, err error) *FieldError {
	return &FieldError{Key: f.Key, Line: f.Line, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: field %s: %v", e.Line, e.Key, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
