package script

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Field is one key/operator/value triple.
type Field struct {
	Key   string
	Op    Operator
	Value Value
	Line  int
}

// Object is an ordered multi-map of fields plus any bare items written in the
// same block.
type Object struct {
	fields []Field
	items  []Value
}

// NewObject builds an object from fields, in order.
func NewObject(fields ...Field) *Object {
	return &Object{fields: append([]Field(nil), fields...)}
}

// Add appends a field.
func (o *Object) Add(key string, value Value) *Object {
	o.fields = append(o.fields, Field{Key: key, Op: OpEqual, Value: value})
	return o
}

// AddItem appends a bare item.
func (o *Object) AddItem(value Value) *Object {
	o.items = append(o.items, value)
	return o
}

// Fields returns the fields in source order.
func (o *Object) Fields() []Field {
	if o == nil {
		return nil
	}
	return o.fields
}

// Items returns the bare items in source order.
func (o *Object) Items() []Value {
	if o == nil {
		return nil
	}
	return o.items
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// First returns the first value stored under key.
func (o *Object) First(key string) (Value, bool) {
	for _, f := range o.Fields() {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Last returns the last value stored under key.
func (o *Object) Last(key string) (Value, bool) {
	fields := o.Fields()
	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i].Key == key {
			return fields[i].Value, true
		}
	}
	return Value{}, false
}

// All returns every value stored under key, in order.
func (o *Object) All(key string) []Value {
	var out []Value
	for _, f := range o.Fields() {
		if f.Key == key {
			out = append(out, f.Value)
		}
	}
	return out
}

// FirstText is First followed by Text; a missing key or a non-scalar value
// reports false.
func (o *Object) FirstText(key string) (string, bool) {
	v, ok := o.First(key)
	if !ok {
		return "", false
	}
	s, err := v.Text()
	return s, err == nil
}

// LastText is Last followed by Text.
func (o *Object) LastText(key string) (string, bool) {
	v, ok := o.Last(key)
	if !ok {
		return "", false
	}
	s, err := v.Text()
	return s, err == nil
}

// AllText collects every scalar stored under key, skipping blocks.
func (o *Object) AllText(key string) []string {
	var out []string
	for _, v := range o.All(key) {
		if s, err := v.Text(); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// MarshalJSON renders the object with repeated keys grouped into arrays, in
// first-seen key order. Bare items are rendered under the empty key.
func (o *Object) MarshalJSON() ([]byte, error) {
	var keys []string
	grouped := map[string][]Value{}
	for _, f := range o.Fields() {
		if _, seen := grouped[f.Key]; !seen {
			keys = append(keys, f.Key)
		}
		grouped[f.Key] = append(grouped[f.Key], f.Value)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		values := grouped[key]
		if len(values) == 1 {
			if err := writeJSONValue(&buf, values[0]); err != nil {
				return nil, err
			}
			continue
		}
		buf.WriteByte('[')
		for j, v := range values {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(&buf, v); err != nil {
				return nil, err
			}
		}
		buf.WriteByte(']')
	}
	if len(o.Items()) > 0 {
		if len(keys) > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"":`)
		if err := writeJSONItems(&buf, o.Items()); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v Value) error {
	if v.kind == KindScalar {
		return writeJSONScalar(buf, v)
	}
	if len(v.block.fields) == 0 && len(v.block.items) > 0 {
		return writeJSONItems(buf, v.block.items)
	}
	data, err := v.block.MarshalJSON()
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

func writeJSONItems(buf *bytes.Buffer, items []Value) error {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// Unquoted numbers and yes/no become JSON numbers and booleans.
func writeJSONScalar(buf *bytes.Buffer, v Value) error {
	if !v.quoted {
		switch v.text {
		case "yes":
			buf.WriteString("true")
			return nil
		case "no":
			buf.WriteString("false")
			return nil
		}
		if f, err := strconv.ParseFloat(v.text, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
			return nil
		}
	}
	data, err := json.Marshal(v.text)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
