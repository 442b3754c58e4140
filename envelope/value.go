/*
NAME
  value.go

DESCRIPTION
  value.go models a JSON value as a closed sum type rather than the untyped
  map[string]interface{} the binaric prototype used for its message header.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package envelope defines the binaric message envelope: a header object, a
// content byte sequence and a footer string, plus the JSON variant type used
// to represent the header.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is a JSON value: null, bool, number, string, array or object. It is
// a closed sum type — the only implementations are the ones in this file.
type Value interface {
	isValue()
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number, held as a float64 as encoding/json does.
type Number float64

// String is a JSON string.
type String string

// Array is an ordered JSON array.
type Array []Value

// Object is a JSON object. Marshaling a Go map always emits its keys in
// sorted order, which is what gives header encoding its canonical form.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// MarshalJSON renders Null as the JSON literal null rather than the default
// empty-struct encoding.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Parse decodes a JSON document into a Value.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("envelope: parsing json value: %w", err)
	}
	return fromInterface(raw)
}

func fromInterface(v interface{}) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("envelope: decoding number %q: %w", t, err)
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case []interface{}:
		arr := make(Array, len(t))
		for i, e := range t {
			val, err := fromInterface(e)
			if err != nil {
				return nil, err
			}
			arr[i] = val
		}
		return arr, nil
	case map[string]interface{}:
		obj := make(Object, len(t))
		for k, e := range t {
			val, err := fromInterface(e)
			if err != nil {
				return nil, err
			}
			obj[k] = val
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("envelope: unsupported json value type %T", v)
	}
}

// UnmarshalJSON lets Object be used directly as a struct field type.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case Object:
		*o = t
	case Null:
		*o = Object{}
	default:
		return fmt.Errorf("envelope: expected a json object, got %T", v)
	}
	return nil
}

// UnmarshalJSON lets Array be used directly as a struct field type.
func (a *Array) UnmarshalJSON(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	arr, ok := v.(Array)
	if !ok {
		return fmt.Errorf("envelope: expected a json array, got %T", v)
	}
	*a = arr
	return nil
}
