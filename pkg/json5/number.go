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

// The number scanner is an explicit finite state machine.  A token
// terminates on whitespace, a comma, a closing brace or bracket, or end
// of input; if the machine is then in an accepting state the token is a
// number, otherwise the state determines the diagnostic.

import "strings"

type numberState int

const (
	numStart      numberState = iota // waiting for a number
	numSign                          // read a leading + or -
	numInfinity                      // read Infinity (accepting)
	numNaN                           // read NaN (accepting)
	numIntZero                       // read a zero integer part (accepting)
	numIntNonzero                    // read a non-zero integer part (accepting)
	numDotNoInt                      // read a dot with no integer part
	numDotInt                        // read a dot after an integer part (accepting)
	numFraction                      // read fraction digits (accepting)
	numExpStart                      // read the exponent indicator
	numExpSign                       // read the exponent sign
	numExpDigits                     // read exponent digits (accepting)
	numHexStart                      // read the 0x prefix
	numHexDigits                     // read hex digits (accepting)
)

var numberAccepting = map[numberState]bool{
	numInfinity:   true,
	numNaN:        true,
	numIntZero:    true,
	numIntNonzero: true,
	numDotInt:     true,
	numFraction:   true,
	numExpDigits:  true,
	numHexDigits:  true,
}

// isNumberTerminator reports whether r ends a number token.
func isNumberTerminator(r rune) bool {
	return isWhitespace(r) || r == ',' || r == ']' || r == '}'
}

// constantEnd returns the offset of the first whitespace at or after i,
// used to report the actual text of a misspelled Infinity or NaN.
func (l *lexer) constantEnd(i int) int {
	for i < len(l.input) {
		r, w := l.rune(i)
		if isWhitespace(r) {
			break
		}
		i += w
	}
	return i
}

// lexNumber consumes one numeric literal.  The cursor is on the first
// character (a digit, sign, or dot); Infinity and NaN reached without a
// sign arrive via the identifier scanner instead.
func (l *lexer) lexNumber() error {
	state := numStart
	start := l.pos
	i := start
	n := len(l.input)

	for i < n {
		r, _ := l.rune(i)
		if isNumberTerminator(r) {
			break
		}

		switch state {
		case numStart, numSign:
			switch {
			case state == numStart && (r == '+' || r == '-'):
				state = numSign
				i++
			case r == 'I':
				if !strings.HasPrefix(l.input[i:], "Infinity") {
					actual := l.input[start:l.constantEnd(i)]
					return newDecodeError(errInvalidNumberConstant("Infinity", actual), l.input, i)
				}
				state = numInfinity
				i += len("Infinity")
			case r == 'N':
				if !strings.HasPrefix(l.input[i:], "NaN") {
					actual := l.input[start:l.constantEnd(i)]
					return newDecodeError(errInvalidNumberConstant("NaN", actual), l.input, i)
				}
				state = numNaN
				i += len("NaN")
			case r == '0':
				state = numIntZero
				i++
			case r >= '1' && r <= '9':
				state = numIntNonzero
				i++
			case r == '.':
				state = numDotNoInt
				i++
			default:
				return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
			}
		case numInfinity, numNaN:
			return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
		case numIntZero:
			switch {
			case r == 'x' || r == 'X':
				state = numHexStart
			case r == '.':
				state = numDotInt
			case r == 'e' || r == 'E':
				state = numExpStart
			case isDigit(r):
				return newDecodeError(errLeadingZero, l.input, i)
			default:
				return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
			}
			i++
		case numIntNonzero:
			switch {
			case isDigit(r):
			case r == '.':
				state = numDotInt
			case r == 'e' || r == 'E':
				state = numExpStart
			default:
				return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
			}
			i++
		case numDotNoInt, numDotInt:
			if !isDigit(r) {
				return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
			}
			state = numFraction
			i++
		case numFraction:
			switch {
			case isDigit(r):
			case r == 'e' || r == 'E':
				state = numExpStart
			default:
				return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
			}
			i++
		case numExpStart:
			switch {
			case r == '+' || r == '-':
				state = numExpSign
			case isDigit(r):
				state = numExpDigits
			default:
				return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
			}
			i++
		case numExpSign, numExpDigits:
			if !isDigit(r) {
				return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
			}
			state = numExpDigits
			i++
		case numHexStart, numHexDigits:
			if !isHexDigit(r) {
				return newDecodeError(errUnexpectedCharInNumber(r), l.input, i)
			}
			state = numHexDigits
			i++
		}
	}

	if numberAccepting[state] {
		l.emit(tNumber, start, i)
		l.pos = i
		return nil
	}
	switch state {
	case numDotNoInt:
		return newDecodeError(errTrailingDot, l.input, i)
	case numExpStart:
		return newDecodeError(errTrailingExponent, l.input, i)
	case numExpSign:
		return newDecodeError(errTrailingExponentSign, l.input, i)
	case numHexStart:
		return newDecodeError(errNoHexDigits, l.input, i)
	}
	// numStart or numSign: no digits were ever seen.
	return newDecodeError(errNoNumber, l.input, i)
}
