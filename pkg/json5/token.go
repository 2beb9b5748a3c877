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

import "fmt"

// A tokenType classifies one lexical token.
type tokenType int

const (
	tIdentifier tokenType = iota
	tString
	tNumber
	tBoolean
	tNull
	tOpenBrace
	tCloseBrace
	tOpenBracket
	tCloseBracket
	tColon
	tComma
)

// String returns t's name for diagnostics.
func (t tokenType) String() string {
	switch t {
	case tIdentifier:
		return "Identifier"
	case tString:
		return "String"
	case tNumber:
		return "Number"
	case tBoolean:
		return "Boolean"
	case tNull:
		return "Null"
	case tOpenBrace:
		return "'{'"
	case tCloseBrace:
		return "'}'"
	case tOpenBracket:
		return "'['"
	case tCloseBracket:
		return "']'"
	case tColon:
		return "':'"
	case tComma:
		return "','"
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

// A token is one lexical unit of a document.  Its span is the half-open
// byte interval [start, end) of the source buffer; the token carries no
// copy of the text.  Tokens are only valid for the lifetime of the
// buffer they index.
type token struct {
	typ   tokenType
	start int
	end   int
}

// text returns the source text the token spans.
func (t token) text(buffer string) string { return buffer[t.start:t.end] }

// isValue reports whether the token closes a value: a scalar or a
// closing bracket or brace.
func (t token) isValue() bool {
	switch t.typ {
	case tString, tNumber, tBoolean, tNull, tCloseBrace, tCloseBracket:
		return true
	}
	return false
}

// startsValue reports whether the token may begin a value.
func (t token) startsValue() bool {
	switch t.typ {
	case tString, tNumber, tBoolean, tNull, tOpenBrace, tOpenBracket:
		return true
	}
	return false
}

// punctuatorType maps a punctuator rune to its token type.
func punctuatorType(r rune) tokenType {
	switch r {
	case '{':
		return tOpenBrace
	case '}':
		return tCloseBrace
	case '[':
		return tOpenBracket
	case ']':
		return tCloseBracket
	case ':':
		return tColon
	}
	return tComma
}
