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
	"strings"
)

// A DecodeError describes a failure to decode a JSON5 document.  Pos is
// the byte offset of the first offending byte; Line and Column are
// derived from it (both 1-based).
type DecodeError struct {
	Msg    string // unformatted message
	Doc    string // the document being decoded
	Pos    int    // byte offset of the failure
	Line   int    // line containing Pos
	Column int    // column of Pos within its line
}

// newDecodeError returns a DecodeError for doc at pos, deriving the
// line and column from the newlines preceding pos.
func newDecodeError(msg, doc string, pos int) *DecodeError {
	if pos > len(doc) {
		pos = len(doc)
	}
	if pos < 0 {
		pos = 0
	}
	return &DecodeError{
		Msg:    msg,
		Doc:    doc,
		Pos:    pos,
		Line:   strings.Count(doc[:pos], "\n") + 1,
		Column: pos - strings.LastIndex(doc[:pos], "\n"),
	}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Pos)
}

// An EncodeError describes a failure to encode a value as JSON5.
type EncodeError struct {
	Msg string
}

func (e *EncodeError) Error() string { return e.Msg }
