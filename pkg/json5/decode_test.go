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
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
	"github.com/openconfig/gnmi/errdiff"
)

// O builds an object value from alternating keys and values.
func O(pairs ...interface{}) *Value {
	o := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1].(*Value))
	}
	return ObjectValue(o)
}

func TestParseScalars(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		want *Value
	}{
		{line(), "null", NullValue()},
		{line(), "true", BoolValue(true)},
		{line(), "false", BoolValue(false)},
		{line(), `"string"`, StringValue("string")},
		{line(), `"with \"escaped quotes\""`, StringValue(`with "escaped quotes"`)},
		{line(), `'single'`, StringValue("single")},
		{line(), `'I can use "double quotes" here'`, StringValue(`I can use "double quotes" here`)},
		{line(), "123", IntValue(123)},
		{line(), "-42", IntValue(-42)},
		{line(), "+7", IntValue(7)},
		{line(), "123.456", FloatValue(123.456)},
		{line(), "0x23", IntValue(0x23)},
		{line(), "-0xFF", IntValue(-255)},
		{line(), "23e-2", FloatValue(23e-2)},
		{line(), "123.", FloatValue(123)},
		{line(), ".5", FloatValue(0.5)},
		{line(), "1e+0", FloatValue(1)},
		{line(), "Infinity", FloatValue(math.Inf(1))},
		{line(), "-Infinity", FloatValue(math.Inf(-1))},
		{line(), "+Infinity", FloatValue(math.Inf(1))},
		{line(), "NaN", FloatValue(math.NaN())},
		{line(), "-NaN", FloatValue(math.NaN())},
		{line(), `"\x41A"`, StringValue("AA")},
		{line(), `"é"`, StringValue("é")},
		{line(), `"😀"`, StringValue("😀")},
		{line(), `"\b\f\v"`, StringValue("\b\f\v")},
		{line(), `'\''`, StringValue("'")},
		{line(), "'a\\\nb'", StringValue("ab")},
		{line(), "'a\\\n  b'", StringValue("ab")},
		{line(), "'a\\  \nb'", StringValue("ab")},
		{line(), `""`, StringValue("")},
	} {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("%d: %q: unexpected error %v", tt.line, tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("%d: %q: got %s, want %s", tt.line, tt.in, got, tt.want)
		}
	}
}

func TestParseDocuments(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		want *Value
	}{
		{line(), "[]", ArrayValue()},
		{line(), "{}", O()},
		{line(), "[1, 2, 3]", ArrayValue(IntValue(1), IntValue(2), IntValue(3))},
		{line(), "[1, 2,]", ArrayValue(IntValue(1), IntValue(2))},
		{line(), `{"key": "value"}`, O("key", StringValue("value"))},
		{line(), `{key: 'v', "k2": 0xFF, arr: [1, 2,], }`,
			O("key", StringValue("v"),
				"k2", IntValue(255),
				"arr", ArrayValue(IntValue(1), IntValue(2)))},
		{line(), `{a: {b: [true, null]}}`,
			O("a", O("b", ArrayValue(BoolValue(true), NullValue())))},
		{line(), `[[],[[]]]`,
			ArrayValue(ArrayValue(), ArrayValue(ArrayValue()))},
		{line(), `{$_: 1, _x: 2}`, O("$_", IntValue(1), "_x", IntValue(2))},
		{line(), `{'quoted key': 1}`, O("quoted key", IntValue(1))},
		{line(), `{a: 1, a: 2}`, O("a", IntValue(2))},
		{line(), `// leading comment
{a: /* inline */ 1}`, O("a", IntValue(1))},
	} {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("%d: %q: unexpected error %v", tt.line, tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("%d: %q: got diff:\n%s", tt.line, tt.in, pretty.Compare(tt.want.String(), got.String()))
		}
	}
}

func TestParseOrderPreserved(t *testing.T) {
	root, err := Parse(`{z: 1, a: 2, m: 3}`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, root.Object.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestParseInfinityArray(t *testing.T) {
	root, err := Parse("[Infinity, -Infinity, NaN]")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(root.Values); n != 3 {
		t.Fatalf("got %d elements, want 3", n)
	}
	if !math.IsInf(root.Values[0].Float, 1) {
		t.Errorf("element 0: got %v, want +Inf", root.Values[0].Float)
	}
	if !math.IsInf(root.Values[1].Float, -1) {
		t.Errorf("element 1: got %v, want -Inf", root.Values[1].Float)
	}
	if !math.IsNaN(root.Values[2].Float) {
		t.Errorf("element 2: got %v, want NaN", root.Values[2].Float)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		line    int
		in      string
		wantErr string
	}{
		{line(), "", "Empty JSON5 document"},
		{line(), "// only a comment", "Empty JSON5 document"},
		{line(), "1 2", "Multiple root elements"},
		{line(), "{} 1", "Multiple root elements"},
		{line(), "{} {}", "Multiple root elements"},
		{line(), "{", "Expecting value"},
		{line(), "[1, 2", "Expecting value"},
		{line(), "}", "Unexpected punctuation: <}>"},
		{line(), "]", "Unexpected punctuation: <]>"},
		{line(), "[}", "Unexpected punctuation: <}>"},
		{line(), "{]", "Unexpected punctuation: <]>"},
		{line(), "{1: 2}", "Expecting property name"},
		{line(), "{a}", "Expecting punctuation: <:>"},
		{line(), "{a 1}", "Expecting punctuation: <:>"},
		{line(), `{a: 1 b: 2}`, "Expecting punctuation: <,>"},
		{line(), "{a: }", "Unexpected token: '}' after ':'"},
		{line(), "{a: ,}", "Unexpected token: ',' after ':'"},
		{line(), "{a: : 1}", "Unexpected token: ':' after ':'"},
		{line(), "{a: 1, : 2}", "Expecting property name"},
		{line(), "{a: 1,, b: 2}", "Expecting property name"},
		{line(), "[1,, 2]", "Expecting value"},
		{line(), "[1 2]", "Expecting punctuation: <,>"},
		{line(), "[,]", "Expecting value"},
		{line(), ", 1", "Unexpected punctuation: <,>"},
		{line(), ": 1", "Expecting value"},
		{line(), "{a: 1 :}", "Unexpected punctuation: <:>"},
		{line(), `{"a" "b"}`, "Expecting punctuation: <:>"},
	} {
		_, err := Parse(tt.in)
		if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
			t.Errorf("%d: %q: %s", tt.line, tt.in, diff)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("{\n  a: 01\n}")
	if err == nil {
		t.Fatal("expected error")
	}
	derr, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("got %T, want *DecodeError", err)
	}
	if derr.Line != 2 {
		t.Errorf("got line %d, want 2", derr.Line)
	}
	if derr.Pos != 8 {
		t.Errorf("got pos %d, want 8", derr.Pos)
	}
	if derr.Column != 7 {
		t.Errorf("got column %d, want 7", derr.Column)
	}
	if !strings.Contains(err.Error(), "line 2 column 7 (char 8)") {
		t.Errorf("unexpected rendering %q", err.Error())
	}
}

func TestStrictControlChars(t *testing.T) {
	for _, tt := range []struct {
		line    int
		in      string
		allow   bool
		wantErr string
		want    string
	}{
		{line(), `"a\nb"`, false, "Invalid control character in string", ""},
		{line(), `"a\rb"`, false, "Invalid control character in string", ""},
		{line(), `"a\tb"`, false, "Invalid control character in string", ""},
		{line(), `"a\0b"`, false, "Invalid control character in string", ""},
		{line(), `"a\nb"`, true, "", "a\nb"},
		{line(), `"a\tb"`, true, "", "a\tb"},
		{line(), `"a\0b"`, true, "", "a\x00b"},
		// The \uHHHH spellings are accepted even in strict mode.
		{line(), `"a\u000Ab"`, false, "", "a\nb"},
		{line(), `"a\u0009b"`, false, "", "a\tb"},
		// \b, \f and \v are never rejected.
		{line(), `"a\b\f\vb"`, false, "", "a\b\f\vb"},
	} {
		d := Decoder{AllowControlChars: tt.allow}
		got, err := d.Decode(tt.in)
		if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
			t.Errorf("%d: %q: %s", tt.line, tt.in, diff)
			continue
		}
		if err == nil && got.Str != tt.want {
			t.Errorf("%d: %q: got %q, want %q", tt.line, tt.in, got.Str, tt.want)
		}
	}
}

func TestRawDecode(t *testing.T) {
	for _, tt := range []struct {
		line    int
		in      string
		wantEnd int
	}{
		{line(), "42", 2},
		{line(), "[1, 2]", 6},
		{line(), "42  ", 2},
		{line(), "{a: 1} // trailing", 6},
	} {
		var d Decoder
		_, end, err := d.RawDecode(tt.in)
		if err != nil {
			t.Errorf("%d: %q: unexpected error %v", tt.line, tt.in, err)
			continue
		}
		if end != tt.wantEnd {
			t.Errorf("%d: %q: got end %d, want %d", tt.line, tt.in, end, tt.wantEnd)
		}
	}
}

func TestParseHooks(t *testing.T) {
	d := Decoder{
		ParseInt: func(text string) (*Value, error) {
			i, err := strconv.ParseInt(text, 0, 64)
			if err != nil {
				return nil, err
			}
			return IntValue(i * 2), nil
		},
		ParseFloat: func(text string) (*Value, error) {
			return StringValue("float:" + text), nil
		},
		ParseConstant: func(text string) (*Value, error) {
			return StringValue("const:" + text), nil
		},
	}
	got, err := d.Decode(`[21, 1.5, Infinity, -NaN, 0x10]`)
	if err != nil {
		t.Fatal(err)
	}
	want := ArrayValue(
		IntValue(42),
		StringValue("float:1.5"),
		StringValue("const:Infinity"),
		StringValue("const:-NaN"),
		IntValue(32),
	)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestObjectHook(t *testing.T) {
	// Replace every object with its member count, children first.
	d := Decoder{
		ObjectHook: func(o *Object) *Value {
			return IntValue(int64(o.Len()))
		},
	}
	got, err := d.Decode(`{a: 1, b: {c: 2, d: 3, e: 4}, f: [{g: 5}]}`)
	if err != nil {
		t.Fatal(err)
	}
	// The nested objects collapse to 3 and 1 before the root is
	// counted: the root still has its 3 members.
	if !got.Equal(IntValue(3)) {
		t.Errorf("got %s, want 3", got)
	}

	// A non-object root never invokes the hook.
	called := false
	d = Decoder{ObjectHook: func(o *Object) *Value {
		called = true
		return nil
	}}
	if _, err := d.Decode(`[{a: 1}]`); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("hook called for a non-object root")
	}
}

func TestObjectPairsHook(t *testing.T) {
	var gotPairs []Member
	d := Decoder{
		ObjectPairsHook: func(members []Member) *Value {
			gotPairs = append([]Member{}, members...)
			return StringValue("hooked")
		},
	}
	got, err := d.Decode(`{a: 1, a: 2, b: 3}`)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(StringValue("hooked")) {
		t.Errorf("got %s, want the hook result", got)
	}
	// Duplicates are preserved in order on the pairs path.
	wantKeys := []string{"a", "a", "b"}
	var keys []string
	for _, m := range gotPairs {
		keys = append(keys, m.Key)
	}
	if diff := cmp.Diff(wantKeys, keys); diff != "" {
		t.Errorf("pair keys (-want +got):\n%s", diff)
	}

	// A scalar root passes through unchanged.
	got, err = d.Decode("7")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(IntValue(7)) {
		t.Errorf("got %s, want 7", got)
	}
}

func TestParseReader(t *testing.T) {
	got, err := ParseReader(strings.NewReader(`{a: [1, true]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := O("a", ArrayValue(IntValue(1), BoolValue(true)))
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

// TestParseOfficialExample exercises the example document from the
// JSON5 specification.
func TestParseOfficialExample(t *testing.T) {
	const in = `{
  // comments
  unquoted: 'and you can quote me on that',
  singleQuotes: 'I can use "double quotes" here',
  lineBreaks: "Look, Mom! \
No \u000An's!",
  hexadecimal: 0xdecaf,
  leadingDecimalPoint: .8675309, andTrailing: 8675309.,
  positiveSign: +1,
  trailingComma: 'in objects', andIn: ['arrays',],
  "backwardsCompatible": "with JSON",
}`
	root, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	wantKeys := []string{
		"unquoted", "singleQuotes", "lineBreaks", "hexadecimal",
		"leadingDecimalPoint", "andTrailing", "positiveSign",
		"trailingComma", "andIn", "backwardsCompatible",
	}
	if diff := cmp.Diff(wantKeys, root.Object.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if v, _ := root.Object.Get("hexadecimal"); !v.Equal(IntValue(0xdecaf)) {
		t.Errorf("hexadecimal: got %s", v)
	}
	if v, _ := root.Object.Get("lineBreaks"); v.Str != "Look, Mom! No \nn's!" {
		t.Errorf("lineBreaks: got %q", v.Str)
	}
	if v, _ := root.Object.Get("positiveSign"); !v.Equal(IntValue(1)) {
		t.Errorf("positiveSign: got %s", v)
	}
}
