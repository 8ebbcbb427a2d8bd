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

package sitemark

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// containerTag is the element that wraps each block and the whole document.
const containerTag = atom.Div

var headingTags = [maxHeadingLevel]atom.Atom{
	atom.H1,
	atom.H2,
	atom.H3,
	atom.H4,
	atom.H5,
	atom.H6,
}

// BuildBlock converts a single block of Markdown into a node tree.
// The block's element is always wrapped in a div,
// so the result is at least two levels deep.
func BuildBlock(block string) (*Node, error) {
	kind := Classify(block)
	var n *Node
	var err error
	switch kind {
	case UnorderedListKind:
		n, err = buildList(atom.Ul, block, stripUnorderedMarker)
	case OrderedListKind:
		n, err = buildList(atom.Ol, block, stripOrderedMarker)
	default:
		n, err = buildInlineBlock(blockTag(kind), stripBlockMarkup(kind, block))
	}
	if err != nil {
		return nil, err
	}
	return NewParent(containerTag.String(), []*Node{n}), nil
}

// blockTag returns the element for a non-list block kind.
func blockTag(kind BlockKind) atom.Atom {
	if level := kind.HeadingLevel(); level > 0 {
		return headingTags[level-1]
	}
	switch kind {
	case CodeBlockKind:
		return atom.Pre
	case QuoteKind:
		return atom.Blockquote
	default:
		return atom.P
	}
}

// stripBlockMarkup removes block-level syntax from a non-list block.
// Code blocks keep their fences:
// the inline tokenizer turns the fenced content into a code span.
func stripBlockMarkup(kind BlockKind, block string) string {
	if level := kind.HeadingLevel(); level > 0 {
		return block[level+len(" "):]
	}
	if kind == QuoteKind {
		lines := strings.Split(block, "\n")
		for i, line := range lines {
			lines[i] = stripQuoteMarker(line)
		}
		return strings.Join(lines, "\n")
	}
	return block
}

func stripQuoteMarker(line string) string {
	if rest, ok := strings.CutPrefix(line, "> "); ok {
		return rest
	}
	return strings.TrimPrefix(line, ">")
}

func stripUnorderedMarker(i int, line string) string {
	// Both markers are two bytes long.
	return line[len("- "):]
}

func stripOrderedMarker(i int, line string) string {
	return line[len(orderedMarker(i+1)):]
}

func buildInlineBlock(tag atom.Atom, text string) (*Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	children, err := spanNodes(spans)
	if err != nil {
		return nil, err
	}
	return NewParent(tag.String(), children), nil
}

// buildList tokenizes each line of a list block independently
// and wraps each line in its own list item.
func buildList(tag atom.Atom, block string, stripMarker func(i int, line string) string) (*Node, error) {
	list := NewParent(tag.String(), nil)
	for i, line := range strings.Split(block, "\n") {
		item, err := buildInlineBlock(atom.Li, stripMarker(i, line))
		if err != nil {
			return nil, err
		}
		list.AppendChild(item)
	}
	return list, nil
}
