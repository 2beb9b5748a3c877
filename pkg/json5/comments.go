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

// EntryComments holds the comment lines attached to one object member:
// zero or more block comment lines written above the key and an
// optional inline comment written after the member.
type EntryComments struct {
	Block  []string
	Inline string
}

// A CommentSource supplies comments for qualified key paths.  A path is
// the /-joined chain of member keys from the root, with the empty
// string as the root prefix (the member "b" of the object at key "a" is
// "/a/b").  The encoder consults the source once per path per encode
// call when pretty-printing with a schema.
type CommentSource interface {
	// FieldComments returns the comments for the member at path and
	// whether any are defined.
	FieldComments(path string) (block []string, inline string, ok bool)
}

// CommentMap is a CommentSource backed by a map from qualified key path
// to comments.
type CommentMap map[string]EntryComments

// FieldComments implements CommentSource.
func (m CommentMap) FieldComments(path string) ([]string, string, bool) {
	ec, ok := m[path]
	if !ok {
		return nil, "", false
	}
	return ec.Block, ec.Inline, true
}

// ExtendKeyPath returns the qualified path of key below base.
func ExtendKeyPath(base, key string) string {
	return base + "/" + key
}
