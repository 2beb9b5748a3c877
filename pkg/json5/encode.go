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

// This file implements the encoder.  An Encoder holds configuration
// only; the mutable state of one Encode or Write call (the output sink,
// the cycle-detection set and the comment cache) lives in an
// encodeState, so an Encoder may be reused across calls.

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// KeyQuotation selects how object keys are written.
type KeyQuotation int

const (
	// DoubleQuote wraps keys in double quotes.
	DoubleQuote KeyQuotation = iota
	// SingleQuote wraps keys in single quotes.
	SingleQuote
	// BareKeys writes keys without quotes when the key is a valid,
	// non-reserved identifier; other keys fall back to double quotes.
	BareKeys
)

// TrailingComma selects whether the last member of a container is
// followed by a comma.
type TrailingComma int

const (
	// CommaDefault emits trailing commas exactly when pretty-printing.
	CommaDefault TrailingComma = iota
	// CommaAlways emits trailing commas unconditionally.
	CommaAlways
	// CommaNever suppresses trailing commas.
	CommaNever
)

// An Encoder holds encoding configuration.  Use NewEncoder for the
// defaults; a zero Encoder pretty-prints with an Indent of 0 (a newline
// but no indentation per level, and trailing commas), with no escaping
// of non-ASCII text, no cycle checking, and NaN rejection, which is
// rarely what is wanted.  An Encoder is reusable and carries no state between
// calls; distinct instances may run concurrently.
type Encoder struct {
	// SkipKeys drops map members whose key type cannot be converted to
	// a string instead of failing the encode.
	SkipKeys bool

	// EnsureASCII escapes DEL (U+007F) and every non-ASCII character as
	// \uHHHH, using surrogate pairs beyond the basic multilingual plane.
	EnsureASCII bool

	// CheckCircular tracks the containers on the encoding stack and
	// fails on re-entry.  Without it a cyclic value diverges.
	CheckCircular bool

	// AllowNaN admits NaN and the infinities, written as NaN, Infinity
	// and -Infinity.
	AllowNaN bool

	// Indent enables pretty-printing with that many spaces per level.
	// A negative value (as set by NewEncoder) writes compact output.
	Indent int

	// ItemSeparator and KeySeparator override the separators.  When
	// empty the item separator is ", " compact and "," pretty, and the
	// key separator is ": ".
	ItemSeparator string
	KeySeparator  string

	// SortKeys writes object members in ascending key order instead of
	// insertion order.
	SortKeys bool

	// KeyQuotation selects the quoting style for object keys.
	KeyQuotation KeyQuotation

	// TrailingComma selects the trailing comma policy.
	TrailingComma TrailingComma

	// Default converts a value the encoder does not support into one
	// it does.  Without it such values fail the encode.
	Default func(v interface{}) (interface{}, error)

	// Schema supplies comments to inject when pretty-printing.  With
	// no indent set comments are suppressed.
	Schema CommentSource
}

// NewEncoder returns an Encoder with the default configuration:
// ensure-ascii, cycle checking and NaN support on, compact output,
// double-quoted keys.
func NewEncoder() *Encoder {
	return &Encoder{
		EnsureASCII:   true,
		CheckCircular: true,
		AllowNaN:      true,
		Indent:        -1,
	}
}

// Encode returns the JSON5 encoding of v using the default
// configuration.
func Encode(v interface{}) (string, error) {
	return NewEncoder().Encode(v)
}

// Write writes the JSON5 encoding of v to w followed by a newline,
// using the default configuration.
func Write(w io.Writer, v interface{}) error {
	return NewEncoder().Write(w, v)
}

// Encode returns the JSON5 encoding of v.
func (e *Encoder) Encode(v interface{}) (string, error) {
	var sb strings.Builder
	if err := e.encode(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write streams the JSON5 encoding of v into w and appends a trailing
// newline.
func (e *Encoder) Write(w io.Writer, v interface{}) error {
	if err := e.encode(w, v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (e *Encoder) encode(w io.Writer, v interface{}) error {
	s := &encodeState{
		e:       e,
		w:       w,
		itemSep: e.ItemSeparator,
		keySep:  e.KeySeparator,
		pretty:  e.Indent >= 0,
	}
	if s.itemSep == "" {
		if s.pretty {
			s.itemSep = ","
		} else {
			s.itemSep = ", "
		}
	}
	if s.keySep == "" {
		s.keySep = ": "
	}
	s.trailing = e.TrailingComma == CommaAlways ||
		(e.TrailingComma == CommaDefault && s.pretty)
	if s.pretty {
		s.indent = strings.Repeat(" ", e.Indent)
	}
	if e.CheckCircular {
		s.markers = map[uintptr]bool{}
	}
	if e.Schema != nil && s.pretty {
		s.comments = map[string]EntryComments{}
	}
	return s.value(v, 0, "")
}

// encodeState is the per-call state of one encode.
type encodeState struct {
	e        *Encoder
	w        io.Writer
	itemSep  string
	keySep   string
	indent   string
	pretty   bool
	trailing bool
	markers  map[uintptr]bool          // containers on the stack
	comments map[string]EntryComments // memoized schema lookups
}

func (s *encodeState) ws(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

// enter records a container identity before its members are written.
// The zero identity (unaddressable containers) is not tracked.
func (s *encodeState) enter(id uintptr) error {
	if s.markers == nil || id == 0 {
		return nil
	}
	if s.markers[id] {
		return &EncodeError{Msg: errCircularReference}
	}
	s.markers[id] = true
	return nil
}

func (s *encodeState) leave(id uintptr) {
	if s.markers != nil && id != 0 {
		delete(s.markers, id)
	}
}

// identity returns a stable per-object identity for cycle detection.
func identity(v interface{}) uintptr {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.Pointer()
	}
	return 0
}

// fieldComments returns the schema comments for path, consulting the
// source once per path.
func (s *encodeState) fieldComments(path string) ([]string, string) {
	if s.comments == nil {
		return nil, ""
	}
	if ec, ok := s.comments[path]; ok {
		return ec.Block, ec.Inline
	}
	block, inline, ok := s.e.Schema.FieldComments(path)
	if !ok {
		block, inline = nil, ""
	}
	s.comments[path] = EntryComments{Block: block, Inline: inline}
	return block, inline
}

// value writes one value of any supported type.
func (s *encodeState) value(v interface{}, level int, path string) error {
	switch t := v.(type) {
	case nil:
		return s.ws("null")
	case bool:
		if t {
			return s.ws("true")
		}
		return s.ws("false")
	case string:
		return s.ws(s.quoteString(t, '"'))
	case int:
		return s.ws(strconv.FormatInt(int64(t), 10))
	case int8:
		return s.ws(strconv.FormatInt(int64(t), 10))
	case int16:
		return s.ws(strconv.FormatInt(int64(t), 10))
	case int32:
		return s.ws(strconv.FormatInt(int64(t), 10))
	case int64:
		return s.ws(strconv.FormatInt(t, 10))
	case uint:
		return s.ws(strconv.FormatUint(uint64(t), 10))
	case uint8:
		return s.ws(strconv.FormatUint(uint64(t), 10))
	case uint16:
		return s.ws(strconv.FormatUint(uint64(t), 10))
	case uint32:
		return s.ws(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return s.ws(strconv.FormatUint(t, 10))
	case float32:
		return s.float(float64(t))
	case float64:
		return s.float(t)
	case *Value:
		return s.jsonValue(t, level, path)
	case *Object:
		return s.object(objectMembers(t), identity(t), level, path)
	case []interface{}:
		return s.list(len(t), func(i int) interface{} { return t[i] }, identity(t), level, path)
	case map[string]interface{}:
		return s.object(stringMapMembers(t), identity(t), level, path)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return s.list(rv.Len(), func(i int) interface{} { return rv.Index(i).Interface() },
			identity(v), level, path)
	case reflect.Map:
		members, err := s.reflectMapMembers(rv)
		if err != nil {
			return err
		}
		return s.object(members, identity(v), level, path)
	}
	return s.fallback(v, level, path)
}

// jsonValue writes a decoded Value tree.
func (s *encodeState) jsonValue(v *Value, level int, path string) error {
	if v == nil {
		return s.ws("null")
	}
	switch v.Kind {
	case NullKind:
		return s.ws("null")
	case BoolKind:
		if v.Bool {
			return s.ws("true")
		}
		return s.ws("false")
	case IntKind:
		return s.ws(strconv.FormatInt(v.Int, 10))
	case FloatKind:
		return s.float(v.Float)
	case StringKind:
		return s.ws(s.quoteString(v.Str, '"'))
	case ArrayKind:
		return s.list(len(v.Values), func(i int) interface{} { return v.Values[i] },
			identity(v), level, path)
	case ObjectKind:
		return s.object(objectMembers(v.Object), identity(v), level, path)
	}
	return &EncodeError{Msg: errUnableToEncode(v)}
}

// fallback routes an unsupported value through the Default hook.
func (s *encodeState) fallback(v interface{}, level int, path string) error {
	if s.e.Default == nil {
		return &EncodeError{Msg: errUnableToEncode(v)}
	}
	id := identity(v)
	if err := s.enter(id); err != nil {
		return err
	}
	defer s.leave(id)
	nv, err := s.e.Default(v)
	if err != nil {
		return err
	}
	return s.value(nv, level, path)
}

// float writes one float, honoring AllowNaN.  Finite values use the
// shortest representation that round-trips, with a fractional part
// forced so that re-decoding yields a float again.
func (s *encodeState) float(f float64) error {
	var text string
	switch {
	case math.IsNaN(f):
		text = "NaN"
	case math.IsInf(f, 1):
		text = "Infinity"
	case math.IsInf(f, -1):
		text = "-Infinity"
	default:
		text = strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
		return s.ws(text)
	}
	if !s.e.AllowNaN {
		return &EncodeError{Msg: errFloatOutOfRange(f)}
	}
	return s.ws(text)
}

// scalarKey renders a non-string key's scalar form for use as a key
// string, or fails when the kind is unsupported.
func (s *encodeState) scalarKey(v interface{}) (string, bool, error) {
	switch t := v.(type) {
	case nil:
		return "null", true, nil
	case bool:
		if t {
			return "true", true, nil
		}
		return "false", true, nil
	case string:
		return t, true, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), true, nil
	case float32:
		return s.floatKey(float64(t))
	case float64:
		return s.floatKey(t)
	}
	if s.e.SkipKeys {
		return "", false, nil
	}
	return "", false, &EncodeError{Msg: errInvalidKeyType(v)}
}

func (s *encodeState) floatKey(f float64) (string, bool, error) {
	switch {
	case math.IsNaN(f):
		if !s.e.AllowNaN {
			return "", false, &EncodeError{Msg: errFloatOutOfRange(f)}
		}
		return "NaN", true, nil
	case math.IsInf(f, 1):
		if !s.e.AllowNaN {
			return "", false, &EncodeError{Msg: errFloatOutOfRange(f)}
		}
		return "Infinity", true, nil
	case math.IsInf(f, -1):
		if !s.e.AllowNaN {
			return "", false, &EncodeError{Msg: errFloatOutOfRange(f)}
		}
		return "-Infinity", true, nil
	}
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return text, true, nil
}

// An objMember is one member to be written: a stringified key and its
// value.
type objMember struct {
	key string
	val interface{}
}

func objectMembers(o *Object) []objMember {
	members := make([]objMember, 0, o.Len())
	for _, m := range o.Members() {
		members = append(members, objMember{key: m.Key, val: m.Value})
	}
	return members
}

// stringMapMembers returns a map's members in sorted key order; Go maps
// carry no insertion order, so sorting keeps the output deterministic.
func stringMapMembers(m map[string]interface{}) []objMember {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	members := make([]objMember, 0, len(m))
	for _, k := range keys {
		members = append(members, objMember{key: k, val: m[k]})
	}
	return members
}

// reflectMapMembers converts an arbitrary map's members, coercing
// non-string keys to their scalar text.
func (s *encodeState) reflectMapMembers(rv reflect.Value) ([]objMember, error) {
	members := make([]objMember, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, ok, err := s.scalarKey(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue // skipped key
		}
		members = append(members, objMember{key: key, val: iter.Value().Interface()})
	}
	sort.SliceStable(members, func(i, j int) bool { return members[i].key < members[j].key })
	return members, nil
}

// list writes an array of n elements.
func (s *encodeState) list(n int, elem func(i int) interface{}, id uintptr, level int, path string) error {
	if n == 0 {
		return s.ws("[]")
	}
	if err := s.enter(id); err != nil {
		return err
	}
	defer s.leave(id)

	if err := s.ws("["); err != nil {
		return err
	}
	nl := ""
	if s.pretty {
		level++
		nl = "\n" + strings.Repeat(s.indent, level)
		if err := s.ws(nl); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := s.ws(s.itemSep + nl); err != nil {
				return err
			}
		}
		if err := s.value(elem(i), level, path); err != nil {
			return err
		}
	}
	if s.trailing {
		if err := s.ws(s.itemSep); err != nil {
			return err
		}
	}
	if s.pretty {
		level--
		if err := s.ws("\n" + strings.Repeat(s.indent, level)); err != nil {
			return err
		}
	}
	return s.ws("]")
}

// object writes an object's members, injecting schema comments when
// pretty-printing.
func (s *encodeState) object(members []objMember, id uintptr, level int, path string) error {
	if len(members) == 0 {
		return s.ws("{}")
	}
	if err := s.enter(id); err != nil {
		return err
	}
	defer s.leave(id)

	if s.e.SortKeys {
		sort.SliceStable(members, func(i, j int) bool { return members[i].key < members[j].key })
	}

	if err := s.ws("{"); err != nil {
		return err
	}
	nl := ""
	if s.pretty {
		level++
		nl = "\n" + strings.Repeat(s.indent, level)
		if err := s.ws(nl); err != nil {
			return err
		}
	}
	for i, m := range members {
		if i > 0 && s.pretty {
			if err := s.ws(nl); err != nil {
				return err
			}
		}
		memberPath := ExtendKeyPath(path, m.key)
		block, inline := s.fieldComments(memberPath)
		if s.pretty {
			for _, bc := range block {
				if err := s.ws("// " + bc + nl); err != nil {
					return err
				}
			}
		}
		if err := s.ws(s.quoteKey(m.key)); err != nil {
			return err
		}
		if err := s.ws(s.keySep); err != nil {
			return err
		}
		if err := s.value(m.val, level, memberPath); err != nil {
			return err
		}
		if i != len(members)-1 || s.trailing {
			if err := s.ws(s.itemSep); err != nil {
				return err
			}
		}
		if inline != "" && s.pretty {
			if err := s.ws("  // " + inline); err != nil {
				return err
			}
		}
	}
	if s.pretty {
		level--
		if err := s.ws("\n" + strings.Repeat(s.indent, level)); err != nil {
			return err
		}
	}
	return s.ws("}")
}

// quoteKey writes one object key per the configured quotation style.
func (s *encodeState) quoteKey(key string) string {
	switch s.e.KeyQuotation {
	case SingleQuote:
		return s.quoteString(key, '\'')
	case BareKeys:
		// A bare key cannot carry escapes, so under EnsureASCII a
		// non-ASCII identifier is quoted instead.
		if isBareKey(key) && !(s.e.EnsureASCII && !isASCII(key)) {
			return key
		}
	}
	return s.quoteString(key, '"')
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7e {
			return false
		}
	}
	return true
}

// isBareKey reports whether key may be written without quotes: a valid
// identifier that is not a reserved word.
func isBareKey(key string) bool {
	if key == "" || reservedWords[key] {
		return false
	}
	for i, r := range key {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

// quoteString returns str wrapped in quote characters with the
// mandatory escapes applied: backslash, the control shorthands, other
// controls as \uHHHH, the active quote, and (under EnsureASCII) every
// character from U+007F up, using surrogate pairs beyond the BMP.
func (s *encodeState) quoteString(str string, quote byte) string {
	var b strings.Builder
	b.Grow(len(str) + 2)
	b.WriteByte(quote)
	for _, r := range str {
		switch r {
		case '\\':
			b.WriteString(`\\`)
			continue
		case '\b':
			b.WriteString(`\b`)
			continue
		case '\f':
			b.WriteString(`\f`)
			continue
		case '\n':
			b.WriteString(`\n`)
			continue
		case '\r':
			b.WriteString(`\r`)
			continue
		case '\t':
			b.WriteString(`\t`)
			continue
		}
		switch {
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r < 0x20:
			fmt.Fprintf(&b, `\u%04x`, r)
		case s.e.EnsureASCII && r > 0x7e:
			if r > 0xFFFF {
				// Split into a surrogate pair.
				c := r - 0x10000
				fmt.Fprintf(&b, `\u%04x\u%04x`, 0xD800|(c>>10)&0x3FF, 0xDC00|c&0x3FF)
			} else {
				fmt.Fprintf(&b, `\u%04x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
