// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


// Package htmltree describes the element structure of an HTML fragment,
// ignoring text, so tests can assert on nesting.
package htmltree

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Outline returns one line per element in document order,
// indented by two spaces per level of nesting.
// Attributes are listed after the tag name, sorted by key.
// Text and comments are omitted.
func Outline(b []byte) string {
	tok := html.NewTokenizer(bytes.NewReader(b))
	sb := new(strings.Builder)
	depth := 0
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			writeTag(sb, tok, depth)
			depth++
		case html.SelfClosingTagToken:
			writeTag(sb, tok, depth)
		case html.EndTagToken:
			if depth > 0 {
				depth--
			}
		}
	}
}

// MaxDepth returns the deepest level of element nesting in b.
// A lone element has a depth of 1.
func MaxDepth(b []byte) int {
	tok := html.NewTokenizer(bytes.NewReader(b))
	depth, deepest := 0, 0
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return deepest
		case html.StartTagToken:
			depth++
			if depth > deepest {
				deepest = depth
			}
		case html.SelfClosingTagToken:
			if depth+1 > deepest {
				deepest = depth + 1
			}
		case html.EndTagToken:
			if depth > 0 {
				depth--
			}
		}
	}
}

func writeTag(sb *strings.Builder, tok *html.Tokenizer, depth int) {
	type htmlAttribute struct {
		key   string
		value string
	}

	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	tagBytes, hasAttr := tok.TagName()
	sb.Write(tagBytes)
	if hasAttr {
		var attrs []htmlAttribute
		for {
			k, v, more := tok.TagAttr()
			attrs = append(attrs, htmlAttribute{string(k), string(v)})
			if !more {
				break
			}
		}
		sort.Slice(attrs, func(i, j int) bool {
			return attrs[i].key < attrs[j].key
		})
		for _, attr := range attrs {
			sb.WriteString(" ")
			sb.WriteString(attr.key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(attr.value))
			sb.WriteString(`"`)
		}
	}
	sb.WriteString("\n")
}
