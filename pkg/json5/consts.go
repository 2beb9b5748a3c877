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

// This file defines the character classes shared by the lexer, the
// decoder and the encoder.

import "unicode"

const (
	zwnj = '\u200C' // zero width non-joiner
	zwj  = '\u200D' // zero width joiner
	bom  = '\uFEFF' // byte order mark
)

// escapeSequence maps the character following a backslash in a string
// literal to the character it denotes.
var escapeSequence = map[rune]rune{
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'0':  0,
}

// reservedWords is the ECMAScript 5.1 reserved word list.  JSON5 member
// names are IdentifierNames, which admit reserved words, so the decoder
// never rejects them; the encoder consults this set when deciding
// whether a key may be written without quotes.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
}

// isWhitespace reports whether r is JSON5 whitespace: space, horizontal
// tab, vertical tab, form feed, line terminators, non-breaking space,
// the byte order mark, or any Unicode space separator.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\n', '\r', '\u00A0', '\u2028', '\u2029', bom:
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isPunctuator(r rune) bool {
	switch r {
	case '{', '}', '[', ']', ':', ',':
		return true
	}
	return false
}

// isIdentStart reports whether r may begin an identifier: $, _, or a
// Unicode letter (categories L and Nl).  Unicode escapes are handled by
// the lexer itself.
func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.In(r, unicode.L, unicode.Nl)
}

// isIdentPart reports whether r may continue an identifier: any start
// character, combining marks (Mn, Mc), decimal digits (Nd), connector
// punctuation (Pc), or the zero width joiners.
func isIdentPart(r rune) bool {
	return isIdentStart(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) ||
		r == zwj || r == zwnj
}

// isHexString reports whether s consists solely of hexadecimal digits.
func isHexString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}
