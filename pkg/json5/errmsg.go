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

// Message texts for every decode and encode failure.  The error values
// carry these verbatim in their Msg field; tests match on substrings.

import "fmt"

// General lexical errors.
const (
	errUnexpectedEOF = "Unexpected end of file"
	errEmptyDocument = "Empty JSON5 document"
)

// Number lexer errors.
const (
	errLeadingZero          = "Leading '0' cannot be followed by more digits"
	errNoNumber             = "No number found"
	errTrailingDot          = "Trailing dot in number"
	errTrailingExponent     = "Trailing exponent in number"
	errTrailingExponentSign = "Trailing sign in exponent"
	errNoHexDigits          = "No hexadecimal digits found"
)

func errUnexpectedCharInNumber(r rune) string {
	return fmt.Sprintf("Unexpected character '%c' in number", r)
}

func errInvalidNumberConstant(expected, actual string) string {
	return fmt.Sprintf("Invalid constant, expected %s, got %s", expected, actual)
}

// String lexer errors.
const errUnexpectedEndOfString = "Unexpected end of string"

func errStringInvalidStart(r rune) string {
	return fmt.Sprintf("Invalid start of string: <%c>", r)
}

func errUnexpectedEscape(seq string) string {
	return fmt.Sprintf("Unexpected escape sequence: <%s>", seq)
}

// Identifier lexer errors.
func errInvalidIdentifierStart(seq string) string {
	return fmt.Sprintf("Invalid start of identifier: <%s>", seq)
}

func errInvalidIdentifierChar(r rune) string {
	return fmt.Sprintf("Invalid character in identifier: <%c>", r)
}

// Structural errors.
const (
	errExpectingValue        = "Expecting value"
	errExpectingPropertyName = "Expecting property name followed by ':'"
	errMultipleRoot          = "Multiple root elements"
	errBadStringContinuation = "Bad string continuation. `\\` must be followed by a newline"
	errInvalidControlChar    = "Invalid control character in string"
)

func errUnexpectedPunctuation(actual string) string {
	return fmt.Sprintf("Unexpected punctuation: <%s>", actual)
}

func errExpectingPunctuation(expected string) string {
	return fmt.Sprintf("Expecting punctuation: <%s>", expected)
}

func errUnexpectedTokenAfterColon(t tokenType) string {
	return fmt.Sprintf("Unexpected token: %v after ':'", t)
}

// Encoder errors.
const errCircularReference = "Circular reference detected"

func errFloatOutOfRange(f float64) string {
	return fmt.Sprintf("Out of range float values are not allowed: %v", f)
}

func errInvalidKeyType(key interface{}) string {
	return fmt.Sprintf("keys must be a string, number, boolean or nil, not %T", key)
}

func errUnableToEncode(v interface{}) string {
	return fmt.Sprintf("Object of type %T is not JSON serializable", v)
}
