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

// Package json5 reads and writes JSON5 documents.
//
// JSON5 is a superset of JSON that admits unquoted member names,
// single-quoted strings, comments, trailing commas, hexadecimal and
// signed numeric literals, Infinity and NaN, and string line
// continuations.  This package tokenizes a source buffer, decodes the
// token stream into a Value tree, and encodes Value trees (or native Go
// values) back to JSON5 text.
//
// Decoding a document:
//
//	root, err := json5.Parse(`{ key: 'value', list: [1, 2,] }`)
//
// A Decoder carries configuration only and may be reused across calls;
// the same holds for an Encoder:
//
//	enc := json5.NewEncoder()
//	enc.Indent = 2
//	text, err := enc.Encode(root)
//
// Comments are discarded on decode.  On encode they can be synthesized
// from a CommentSource keyed by qualified member paths; see the schema
// package for an adapter that builds one from a schema document.
//
// Decoder and Encoder instances must not be shared between goroutines
// concurrently.  Distinct instances are independent.
package json5
