// Copyright 2021 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package json5

import (
	"fmt"
	"math"
	"sort"
)

// Kind identifies which member of the Value variant is populated.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Value is one JSON5 value, a tagged variant over null, boolean,
// integer, float, string, array and object.  Only the field selected by
// Kind is meaningful.
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Float  float64
	Str    string
	Values []*Value // ArrayKind elements, in source order
	Object *Object  // ObjectKind members
}

func NullValue() *Value           { return &Value{Kind: NullKind} }
func BoolValue(b bool) *Value     { return &Value{Kind: BoolKind, Bool: b} }
func IntValue(i int64) *Value     { return &Value{Kind: IntKind, Int: i} }
func FloatValue(f float64) *Value { return &Value{Kind: FloatKind, Float: f} }
func StringValue(s string) *Value { return &Value{Kind: StringKind, Str: s} }

// ArrayValue returns an array value holding elems.
func ArrayValue(elems ...*Value) *Value {
	return &Value{Kind: ArrayKind, Values: elems}
}

// ObjectValue returns an object value holding o.  A nil o is replaced
// with an empty object.
func ObjectValue(o *Object) *Value {
	if o == nil {
		o = NewObject()
	}
	return &Value{Kind: ObjectKind, Object: o}
}

// Equal reports whether v and w hold the same value.  Floats compare
// equal when both are NaN; -0.0 and 0.0 compare equal.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}
	if v.Kind != w.Kind {
		return false
	}
	switch v.Kind {
	case NullKind:
		return true
	case BoolKind:
		return v.Bool == w.Bool
	case IntKind:
		return v.Int == w.Int
	case FloatKind:
		if math.IsNaN(v.Float) && math.IsNaN(w.Float) {
			return true
		}
		return v.Float == w.Float
	case StringKind:
		return v.Str == w.Str
	case ArrayKind:
		if len(v.Values) != len(w.Values) {
			return false
		}
		for i := range v.Values {
			if !v.Values[i].Equal(w.Values[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		return v.Object.Equal(w.Object)
	}
	return false
}

// String returns v encoded as compact JSON5.
func (v *Value) String() string {
	s, err := NewEncoder().Encode(v)
	if err != nil {
		return fmt.Sprintf("<invalid JSON5: %v>", err)
	}
	return s
}

// A Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// An Object is an ordered collection of members.  Iteration order is
// construction order.  In the default mode a duplicate key keeps the
// position of its first insertion and the value of its last; an object
// created with NewPairsObject appends every member and so preserves
// duplicates, which is what the decoder builds when an ObjectPairsHook
// is installed.
type Object struct {
	members []Member
	index   map[string]int
	pairs   bool
}

// NewObject returns an empty object with map semantics.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// NewPairsObject returns an empty object that preserves duplicate keys.
func NewPairsObject() *Object {
	return &Object{pairs: true}
}

// Set inserts or replaces the member for key.
func (o *Object) Set(key string, v *Value) {
	if !o.pairs {
		if i, ok := o.index[key]; ok {
			o.members[i].Value = v
			return
		}
		o.index[key] = len(o.members)
	}
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value for key.  In pairs mode the first occurrence
// wins.
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	if !o.pairs {
		if i, ok := o.index[key]; ok {
			return o.members[i].Value, true
		}
		return nil, false
	}
	for _, m := range o.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Keys returns the keys in iteration order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for _, m := range o.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// Members returns the members in iteration order.  The slice is the
// object's backing store and must not be modified.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Equal reports whether o and p hold equal members in the same order.
func (o *Object) Equal(p *Object) bool {
	if o == nil || p == nil {
		return o.Len() == p.Len()
	}
	if len(o.members) != len(p.members) {
		return false
	}
	for i := range o.members {
		if o.members[i].Key != p.members[i].Key {
			return false
		}
		if !o.members[i].Value.Equal(p.members[i].Value) {
			return false
		}
	}
	return true
}

// FromGo converts a native Go value into a Value tree.  Maps contribute
// members in sorted key order as Go maps carry no insertion order; use
// an Object directly when order matters.
func FromGo(v interface{}) (*Value, error) {
	switch t := v.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case int8:
		return IntValue(int64(t)), nil
	case int16:
		return IntValue(int64(t)), nil
	case int32:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case uint:
		return IntValue(int64(t)), nil
	case uint8:
		return IntValue(int64(t)), nil
	case uint16:
		return IntValue(int64(t)), nil
	case uint32:
		return IntValue(int64(t)), nil
	case uint64:
		return IntValue(int64(t)), nil
	case float32:
		return FloatValue(float64(t)), nil
	case float64:
		return FloatValue(t), nil
	case string:
		return StringValue(t), nil
	case *Value:
		return t, nil
	case *Object:
		return ObjectValue(t), nil
	case []interface{}:
		elems := make([]*Value, 0, len(t))
		for _, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ev)
		}
		return ArrayValue(elems...), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			ev, err := FromGo(t[k])
			if err != nil {
				return nil, err
			}
			o.Set(k, ev)
		}
		return ObjectValue(o), nil
	}
	return nil, &EncodeError{Msg: errUnableToEncode(v)}
}
