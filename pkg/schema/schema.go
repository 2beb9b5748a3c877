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

// Package schema builds JSON5 comment maps from schema documents.
//
// The encoder in the json5 package injects comments from a
// CommentSource keyed by qualified member paths.  This package derives
// such a source from a JSON-Schema-style document: every entry under a
// "properties" mapping contributes its "description" lines as block
// comments and its "comment" line as the inline comment for the member
// of the same name.  An "items" mapping descends into array elements
// without extending the path.
//
//	type: object
//	properties:
//	  host:
//	    description: Address the server binds to.
//	    comment: IPv4 only
//	  ports:
//	    items:
//	      properties:
//	        name:
//	          description: Port name.
//
// yields comments for the paths /host, /ports/name.
package schema

import (
	"strings"

	"github.com/openconfig/gojson5/pkg/json5"
	yaml "gopkg.in/yaml.v2"
)

// FromYAML parses a YAML (or JSON) schema document and collects its
// comment annotations into a json5.CommentMap.  A document whose root
// is not a mapping is rejected with an EncodeError.
func FromYAML(data []byte) (json5.CommentMap, error) {
	var root interface{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &json5.EncodeError{Msg: "Invalid schema descriptor: " + err.Error()}
	}
	doc, ok := root.(map[interface{}]interface{})
	if !ok {
		return nil, &json5.EncodeError{Msg: "Invalid schema descriptor: document root is not a mapping"}
	}
	m := json5.CommentMap{}
	walk(doc, "", m)
	return m, nil
}

// walk descends one schema node, recording comments for its properties.
func walk(node map[interface{}]interface{}, path string, out json5.CommentMap) {
	if props, ok := node["properties"].(map[interface{}]interface{}); ok {
		for name, sub := range props {
			key, ok := name.(string)
			if !ok {
				continue
			}
			memberPath := json5.ExtendKeyPath(path, key)
			subNode, ok := sub.(map[interface{}]interface{})
			if !ok {
				continue
			}
			ec := json5.EntryComments{}
			if desc, ok := subNode["description"].(string); ok {
				ec.Block = splitLines(desc)
			}
			if inline, ok := subNode["comment"].(string); ok {
				ec.Inline = inline
			}
			if len(ec.Block) > 0 || ec.Inline != "" {
				out[memberPath] = ec
			}
			walk(subNode, memberPath, out)
		}
	}
	// Array element schemas comment the members of the element
	// objects; the path does not grow through the array itself.
	if items, ok := node["items"].(map[interface{}]interface{}); ok {
		walk(items, path, out)
	}
}

// splitLines breaks a description into trimmed, non-empty lines.
func splitLines(desc string) []string {
	var lines []string
	for _, line := range strings.Split(desc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
