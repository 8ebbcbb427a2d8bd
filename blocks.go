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
	"fmt"
	"strconv"
	"strings"
)

const (
	blockSeparator  = "\n\n"
	codeFence       = "```"
	maxHeadingLevel = 6
)

// SplitBlocks splits a document into blocks
// separated by a blank line ("\n\n").
// Blocks are not trimmed and runs of blank lines are not collapsed,
// so three newlines in a row produce a block that starts with a newline
// and four produce an empty block.
// SplitBlocks always returns at least one block.
func SplitBlocks(document string) []string {
	return strings.Split(document, blockSeparator)
}

// BlockKind is an enumeration of block types returned by [Classify].
type BlockKind uint16

const (
	ParagraphKind BlockKind = 1 + iota
	Heading1Kind
	Heading2Kind
	Heading3Kind
	Heading4Kind
	Heading5Kind
	Heading6Kind
	CodeBlockKind
	QuoteKind
	UnorderedListKind
	OrderedListKind
)

var blockKindNames = [...]string{
	ParagraphKind:     "ParagraphKind",
	Heading1Kind:      "Heading1Kind",
	Heading2Kind:      "Heading2Kind",
	Heading3Kind:      "Heading3Kind",
	Heading4Kind:      "Heading4Kind",
	Heading5Kind:      "Heading5Kind",
	Heading6Kind:      "Heading6Kind",
	CodeBlockKind:     "CodeBlockKind",
	QuoteKind:         "QuoteKind",
	UnorderedListKind: "UnorderedListKind",
	OrderedListKind:   "OrderedListKind",
}

func (kind BlockKind) String() string {
	if int(kind) < len(blockKindNames) && blockKindNames[kind] != "" {
		return blockKindNames[kind]
	}
	return fmt.Sprintf("BlockKind(%d)", uint16(kind))
}

// HeadingLevel returns the level (1-6) of a heading kind
// or 0 if kind is not a heading.
func (kind BlockKind) HeadingLevel() int {
	if kind < Heading1Kind || kind > Heading6Kind {
		return 0
	}
	return int(kind-Heading1Kind) + 1
}

// IsList reports whether kind is an ordered or unordered list.
func (kind BlockKind) IsList() bool {
	return kind == UnorderedListKind || kind == OrderedListKind
}

// Classify determines the kind of a block.
// Rules are tried in order and the first match wins:
// headings, fenced code, quotes, unordered lists, ordered lists.
// Anything else (including the empty block) is a paragraph.
func Classify(block string) BlockKind {
	if level := headingLevel(block); level > 0 {
		return Heading1Kind + BlockKind(level-1)
	}
	if strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return CodeBlockKind
	}
	lines := strings.Split(block, "\n")
	switch {
	case allLines(lines, isQuoteLine):
		return QuoteKind
	case allLines(lines, isUnorderedItem):
		return UnorderedListKind
	case isOrderedList(lines):
		return OrderedListKind
	default:
		return ParagraphKind
	}
}

// headingLevel returns the number of leading '#' characters
// if they are followed by a space,
// or 0 if block does not start with a heading marker.
func headingLevel(block string) int {
	n := 0
	for n < len(block) && block[n] == '#' {
		n++
	}
	if n == 0 || n > maxHeadingLevel || n >= len(block) || block[n] != ' ' {
		return 0
	}
	return n
}

func allLines(lines []string, f func(string) bool) bool {
	for _, line := range lines {
		if !f(line) {
			return false
		}
	}
	return true
}

func isQuoteLine(line string) bool {
	return strings.HasPrefix(line, ">")
}

func isUnorderedItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, orderedMarker(i+1)) {
			return false
		}
	}
	return true
}

func orderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}
