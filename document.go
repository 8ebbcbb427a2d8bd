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

// Package sitemark converts a small dialect of Markdown into HTML.
//
// A document is split into blocks on blank lines.
// Each block is classified (heading, paragraph, code, quote, or list),
// its inline text is split into spans
// (plain, bold, italic, code, link, or image),
// and the result is assembled into a tree of [Node] values.
// Every block is wrapped in a div, and the document is wrapped in another div.
//
// The dialect does not nest emphasis, escape special characters,
// or pass through raw HTML.
package sitemark

import "fmt"

// BuildDocument converts a Markdown document into a node tree.
// The root is a div with one child per block, in document order.
// An error in any block fails the whole document.
func BuildDocument(text string) (*Node, error) {
	blocks := SplitBlocks(text)
	root := NewParent(containerTag.String(), make([]*Node, 0, len(blocks)))
	for i, block := range blocks {
		n, err := BuildBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		root.AppendChild(n)
	}
	return root, nil
}

// RenderDocument converts a Markdown document into an HTML string.
func RenderDocument(text string) (string, error) {
	root, err := BuildDocument(text)
	if err != nil {
		return "", fmt.Errorf("render markdown to html: %w", err)
	}
	s, err := root.Render()
	if err != nil {
		return "", fmt.Errorf("render markdown to html: %w", err)
	}
	return s, nil
}

// ExtractTitle returns the text of the first level 1 heading in the document,
// without its "# " marker.
// It returns an error wrapping [ErrNoTitle] if the document has no such heading.
func ExtractTitle(text string) (string, error) {
	for _, block := range SplitBlocks(text) {
		if kind := Classify(block); kind == Heading1Kind {
			return stripBlockMarkup(kind, block), nil
		}
	}
	return "", ErrNoTitle
}
